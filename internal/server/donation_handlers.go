package server

import (
	"time"

	"warmshare/internal/models"
	"warmshare/internal/observability"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RecordDonation handles POST /api/v1/donations.
//
// Two writes happen in sequence: the donating user is credited first, then
// the per-item ledger record is incremented or inserted. The pair is not
// atomic across the two collections; a failure after the credit leaves the
// ledger behind. Each individual write is atomic on its own document.
func (s *Server) RecordDonation(c *fiber.Ctx) error {
	var req struct {
		ClotheID    string  `json:"clotheId"`
		ClotheTitle string  `json:"clotheTitle"`
		ClotheImage string  `json:"clotheImage"`
		UserID      string  `json:"userId"`
		UserImage   string  `json:"userImage"`
		Price       float64 `json:"price"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.ClotheID == "" || req.UserID == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("clotheId and userId are required"))
	}

	userID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid user ID"))
	}

	// Credit the donor: bump the cumulative total and overwrite the stored
	// image with the one submitted on this donation.
	if _, err := s.userRepo.CreditDonation(c.Context(), userID, req.Price, req.UserImage); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	existing, err := s.donationRepo.GetByClotheID(c.Context(), req.ClotheID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	var result any
	if existing != nil {
		result, err = s.donationRepo.Increment(c.Context(), req.ClotheID)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusInternalServerError, err)
		}
		observability.DonationsRecorded.WithLabelValues("incremented").Inc()
	} else {
		donation := &models.Donation{
			ClotheID:    req.ClotheID,
			ClotheTitle: req.ClotheTitle,
			ClotheImage: req.ClotheImage,
			UserID:      req.UserID,
			Quantity:    1,
			Timestamp:   time.Now(),
		}
		result, err = s.donationRepo.Create(c.Context(), donation)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusInternalServerError, err)
		}
		observability.DonationsRecorded.WithLabelValues("created").Inc()
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "successfully create donations!",
		"data":    result,
	})
}

// ListDonations handles GET /api/v1/donations, most recent first.
func (s *Server) ListDonations(c *fiber.Ctx) error {
	donations, err := s.donationRepo.List(c.Context())
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "successfully retrieve donations!",
		"data":    donations,
	})
}

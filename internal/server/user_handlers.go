package server

import (
	"warmshare/internal/models"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetUser handles GET /api/v1/users/:id. A malformed or unknown id is not an
// error here; the response just carries null data.
func (s *Server) GetUser(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.JSON(fiber.Map{
			"success": true,
			"message": "successfully retrieve user!",
			"data":    nil,
		})
	}

	user, err := s.userRepo.GetByID(c.Context(), id)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "successfully retrieve user!",
		"data":    user,
	})
}

// GetMyProfile handles GET /api/v1/me (bearer token required)
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Locals("userID").(string))
	if err != nil {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Invalid user ID in token"))
	}

	user, err := s.userRepo.GetByID(c.Context(), id)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	if user == nil {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("User", id.Hex()))
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "successfully retrieve profile!",
		"data":    user,
	})
}

// RegisterVolunteer handles POST /api/v1/volunteers/:id. The submitted fields
// are merged into the user record along with the volunteer marker; calling it
// again simply re-merges.
func (s *Server) RegisterVolunteer(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid user ID"))
	}

	var req struct {
		Name         string `json:"name"`
		Image        string `json:"image"`
		Phone        string `json:"phone"`
		Location     string `json:"location"`
		Availability string `json:"availability"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	fields := bson.M{"volunteer": true}
	if req.Name != "" {
		fields["name"] = req.Name
	}
	if req.Image != "" {
		fields["image"] = req.Image
	}
	if req.Phone != "" {
		fields["phone"] = req.Phone
	}
	if req.Location != "" {
		fields["location"] = req.Location
	}
	if req.Availability != "" {
		fields["availability"] = req.Availability
	}

	result, err := s.userRepo.Merge(c.Context(), id, fields)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "successfully register volunteer!",
		"data":    result,
	})
}

// ListVolunteers handles GET /api/v1/volunteers
func (s *Server) ListVolunteers(c *fiber.Ctx) error {
	users, err := s.userRepo.ListVolunteers(c.Context())
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "successfully retrieve volunteers!",
		"data":    users,
	})
}

// ListDonors handles GET /api/v1/donors
func (s *Server) ListDonors(c *fiber.Ctx) error {
	users, err := s.userRepo.ListDonors(c.Context())
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "successfully retrieve donors!",
		"data":    users,
	})
}

// AddTestimonial handles POST /api/v1/testimonials/:id. Same-name fields
// overwrite whatever was stored before.
func (s *Server) AddTestimonial(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid user ID"))
	}

	var req struct {
		Testimonial string `json:"testimonial"`
		Rating      *int   `json:"rating"`
		Name        string `json:"name"`
		Image       string `json:"image"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	fields := bson.M{}
	if req.Testimonial != "" {
		fields["testimonial"] = req.Testimonial
	}
	if req.Rating != nil {
		fields["rating"] = *req.Rating
	}
	if req.Name != "" {
		fields["name"] = req.Name
	}
	if req.Image != "" {
		fields["image"] = req.Image
	}
	if len(fields) == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("No testimonial fields provided"))
	}

	result, err := s.userRepo.Merge(c.Context(), id, fields)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "successfully add testimonial!",
		"data":    result,
	})
}

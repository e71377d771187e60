package server

import (
	"time"

	"warmshare/internal/models"
	"warmshare/internal/observability"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PostComment handles POST /api/v1/comments/:id. The commenting user's name
// and image are copied onto the comment at post time; later profile edits do
// not rewrite it.
func (s *Server) PostComment(c *fiber.Ctx) error {
	userID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid user ID"))
	}

	var req struct {
		Comment string `json:"comment"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.Comment == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Comment is required"))
	}

	user, err := s.userRepo.GetByID(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	if user == nil {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("User", userID.Hex()))
	}

	comment := &models.Comment{
		UserID:    userID.Hex(),
		Name:      user.Name,
		Image:     user.Image,
		Comment:   req.Comment,
		Timestamp: time.Now(),
	}

	result, err := s.commentRepo.Create(c.Context(), comment)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	observability.CommentsPosted.Inc()

	return c.JSON(fiber.Map{
		"success": true,
		"message": "successfully create comment!",
		"data":    result,
	})
}

// ListComments handles GET /api/v1/comments, most recent first.
func (s *Server) ListComments(c *fiber.Ctx) error {
	comments, err := s.commentRepo.List(c.Context())
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "successfully retrieve comments!",
		"data":    comments,
	})
}

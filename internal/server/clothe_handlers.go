package server

import (
	"warmshare/internal/models"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateClothe handles POST /api/v1/clothes
func (s *Server) CreateClothe(c *fiber.Ctx) error {
	var req struct {
		Image       string  `json:"image"`
		Title       string  `json:"title"`
		Category    string  `json:"category"`
		Size        string  `json:"size"`
		Description string  `json:"des"`
		Price       float64 `json:"price"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	clothe := &models.Clothe{
		Image:       req.Image,
		Title:       req.Title,
		Category:    req.Category,
		Size:        req.Size,
		Description: req.Description,
		Price:       req.Price,
	}

	result, err := s.clotheRepo.Create(c.Context(), clothe)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Successfully clothes create!",
		"result":  result,
	})
}

// ListClothes handles GET /api/v1/clothes
func (s *Server) ListClothes(c *fiber.Ctx) error {
	clothes, err := s.clotheRepo.List(c.Context())
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "successfully retrieve clothes!",
		"data":    clothes,
	})
}

// GetClothe handles GET /api/v1/clothes/:id
func (s *Server) GetClothe(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid clothe ID"))
	}

	clothe, err := s.clotheRepo.GetByID(c.Context(), id)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "successfully retrieve clothe!",
		"data":    clothe,
	})
}

// UpdateClothe handles PATCH /api/v1/clothes/:id. Only the provided fields
// are written; updating an id that does not exist reports zero matched
// documents, not an error.
func (s *Server) UpdateClothe(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid clothe ID"))
	}

	var req struct {
		Image       *string  `json:"image"`
		Title       *string  `json:"title"`
		Category    *string  `json:"category"`
		Size        *string  `json:"size"`
		Description *string  `json:"des"`
		Price       *float64 `json:"price"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	fields := bson.M{}
	if req.Image != nil {
		fields["image"] = *req.Image
	}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.Size != nil {
		fields["size"] = *req.Size
	}
	if req.Description != nil {
		fields["des"] = *req.Description
	}
	if req.Price != nil {
		fields["price"] = *req.Price
	}
	if len(fields) == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("No fields to update"))
	}

	result, err := s.clotheRepo.Update(c.Context(), id, fields)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "successfully update clothe!",
		"data":    result,
	})
}

// DeleteClothe handles DELETE /api/v1/clothes/:id
func (s *Server) DeleteClothe(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid clothe ID"))
	}

	result, err := s.clotheRepo.Delete(c.Context(), id)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "successfully delete clothe!",
		"data":    result,
	})
}

package server

import (
	"errors"

	"blogicum/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetCategories handles GET /api/categories, listing published categories
// alphabetically.
func (s *Server) GetCategories(c *fiber.Ctx) error {
	categories, err := s.categoryRepo.ListPublished(c.UserContext())
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(categories)
}

// GetCategory handles GET /api/categories/:slug. Unpublished categories are
// hidden the same way missing ones are.
func (s *Server) GetCategory(c *fiber.Ctx) error {
	slug := c.Params("slug")

	category, err := s.categoryRepo.GetBySlug(c.UserContext(), slug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("category", slug))
	}
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	if !category.IsPublished {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("category", slug))
	}

	return c.JSON(category)
}

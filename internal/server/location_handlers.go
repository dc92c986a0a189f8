package server

import (
	"blogicum/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetLocations handles GET /api/locations, listing published locations.
func (s *Server) GetLocations(c *fiber.Ctx) error {
	locations, err := s.locationRepo.ListPublished(c.UserContext())
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(locations)
}

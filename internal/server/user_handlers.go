package server

import (
	"errors"

	"blogicum/internal/models"
	"blogicum/internal/validation"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// profileResponse is the public view of a user. Email stays private to the
// account owner.
type profileResponse struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

// GetProfile handles GET /api/users/:username (public)
func (s *Server) GetProfile(c *fiber.Ctx) error {
	ctx := c.UserContext()
	username := c.Params("username")
	viewerID, _ := s.optionalUserID(c)

	user, err := s.userRepo.GetByUsername(ctx, username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("user", username))
	}
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	if viewerID == user.ID {
		return c.JSON(user)
	}

	return c.JSON(profileResponse{
		ID:        user.ID,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	})
}

// GetMyProfile handles GET /api/users/me (protected)
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	user, err := s.userRepo.GetByID(c.UserContext(), userID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("user", userID))
	}

	return c.JSON(user)
}

// UpdateMyProfile handles PUT /api/users/me (protected)
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	var req struct {
		Username  string `json:"username"`
		Email     string `json:"email"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("user", userID))
	}

	if req.Username != "" && req.Username != user.Username {
		if err := validation.ValidateUsername(req.Username); err != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError(err.Error()))
		}
		taken, err := s.userRepo.GetByUsername(ctx, req.Username)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return models.RespondWithError(c, fiber.StatusInternalServerError, err)
		}
		if taken != nil {
			return models.RespondWithError(c, fiber.StatusConflict,
				models.NewValidationError("Username is already taken"))
		}
		user.Username = req.Username
	}

	if req.Email != "" && req.Email != user.Email {
		if err := validation.ValidateEmail(req.Email); err != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError(err.Error()))
		}
		taken, err := s.userRepo.GetByEmail(ctx, req.Email)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusInternalServerError, err)
		}
		if taken != nil {
			return models.RespondWithError(c, fiber.StatusConflict,
				models.NewValidationError("Email is already in use"))
		}
		user.Email = req.Email
	}

	user.FirstName = req.FirstName
	user.LastName = req.LastName

	if err := s.userRepo.Update(ctx, user); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(user)
}

// DeleteMyAccount handles DELETE /api/users/me (protected). Deleting the
// account removes the user's posts and every comment on them.
func (s *Server) DeleteMyAccount(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	if err := s.userRepo.Delete(c.UserContext(), userID); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.SendStatus(fiber.StatusOK)
}

package server

import (
	"errors"

	"blogicum/internal/models"
	"blogicum/internal/policy"
	"blogicum/internal/validation"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type commentInput struct {
	Text string `json:"text" validate:"required,max=4096"`
}

// GetComments returns a post's comments, oldest first (public). Comments on
// a post the viewer cannot see are as invisible as the post itself.
func (s *Server) GetComments(c *fiber.Ctx) error {
	ctx := c.UserContext()
	postID, ok := parseIDParam(c, "id")
	if !ok {
		return nil
	}
	viewerID, _ := s.optionalUserID(c)

	if post, err := s.visiblePost(c, postID, viewerID); post == nil {
		return err
	}

	comments, err := s.commentRepo.ListByPost(ctx, postID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(comments)
}

// CreateComment creates a comment on a post (protected)
func (s *Server) CreateComment(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)
	postID, ok := parseIDParam(c, "id")
	if !ok {
		return nil
	}

	post, err := s.visiblePost(c, postID, userID)
	if post == nil {
		return err
	}

	var req commentInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if fields := validation.Struct(&req); fields != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewFieldValidationError(fields))
	}

	comment := &models.Comment{
		Text:     req.Text,
		AuthorID: userID,
		PostID:   postID,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	created, err := s.commentRepo.GetByIDForPost(ctx, comment.ID, postID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// UpdateComment updates a comment (owner only). A comment is addressed
// through its post, so a valid comment ID under the wrong post is a 404.
func (s *Server) UpdateComment(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)
	postID, ok := parseIDParam(c, "id")
	if !ok {
		return nil
	}
	commentID, ok := parseIDParam(c, "commentId")
	if !ok {
		return nil
	}

	comment, err := s.ownComment(c, commentID, postID, userID)
	if comment == nil {
		return err
	}

	var req commentInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if fields := validation.Struct(&req); fields != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewFieldValidationError(fields))
	}

	comment.Text = req.Text
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	updated, err := s.commentRepo.GetByIDForPost(ctx, comment.ID, postID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(updated)
}

// DeleteComment deletes a comment (owner only)
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)
	postID, ok := parseIDParam(c, "id")
	if !ok {
		return nil
	}
	commentID, ok := parseIDParam(c, "commentId")
	if !ok {
		return nil
	}

	comment, err := s.ownComment(c, commentID, postID, userID)
	if comment == nil {
		return err
	}

	if err := s.commentRepo.Delete(ctx, commentID); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.SendStatus(fiber.StatusOK)
}

// ownComment resolves a comment for mutation: the post must be visible to
// the viewer, the comment must belong to that post, and the viewer must own
// the comment. A non-owner who can see the post is redirected to it rather
// than told no. On any miss the response is already written and the comment
// is nil.
func (s *Server) ownComment(c *fiber.Ctx, commentID, postID, userID uint) (*models.Comment, error) {
	post, err := s.visiblePost(c, postID, userID)
	if post == nil {
		return nil, err
	}

	comment, err := s.commentRepo.GetByIDForPost(c.UserContext(), commentID, postID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("comment", commentID))
	}
	if err != nil {
		return nil, models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	if !policy.CanModify(comment, userID) {
		return nil, redirectToPost(c, postID)
	}
	return comment, nil
}

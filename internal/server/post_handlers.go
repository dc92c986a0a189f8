package server

import (
	"errors"
	"time"

	"blogicum/internal/cache"
	"blogicum/internal/models"
	"blogicum/internal/observability"
	"blogicum/internal/policy"
	"blogicum/internal/repository"
	"blogicum/internal/validation"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type postInput struct {
	Title      string     `json:"title" validate:"required,max=256"`
	Text       string     `json:"text" validate:"required"`
	PubDate    *time.Time `json:"pub_date"`
	CategoryID *uint      `json:"category_id"`
	LocationID *uint      `json:"location_id"`
	ImageURL   string     `json:"image_url" validate:"omitempty,url,max=2048"`
}

// GetFeed handles GET /api/posts?page=N, the public chronological feed.
// The result is viewer-independent, so pages are served through the cache.
func (s *Server) GetFeed(c *fiber.Ctx) error {
	ctx := c.UserContext()
	pageNum := pageQuery(c)
	observability.PostListings.WithLabelValues("feed").Inc()

	var page models.PostPage
	err := cache.Aside(ctx, cache.FeedKey(pageNum), &page, cache.FeedTTL, func() error {
		p, err := repository.PaginatePosts(ctx, s.postRepo, repository.PostFilter{}, pageNum)
		if err != nil {
			return err
		}
		page = *p
		return nil
	})
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(page)
}

// GetCategoryPosts handles GET /api/categories/:slug/posts?page=N. A missing
// or unpublished category is a 404, not an empty listing.
func (s *Server) GetCategoryPosts(c *fiber.Ctx) error {
	ctx := c.UserContext()
	slug := c.Params("slug")
	observability.PostListings.WithLabelValues("category").Inc()

	category, err := s.categoryRepo.GetBySlug(ctx, slug)
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

	page, err := repository.PaginatePosts(ctx, s.postRepo,
		repository.PostFilter{CategoryID: &category.ID}, pageQuery(c))
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(fiber.Map{
		"category": category,
		"posts":    page,
	})
}

// GetUserPosts handles GET /api/users/:username/posts?page=N. A profile
// owner browsing their own page sees everything they wrote, drafts and
// scheduled posts included; everyone else gets the public view.
func (s *Server) GetUserPosts(c *fiber.Ctx) error {
	ctx := c.UserContext()
	username := c.Params("username")
	viewerID, _ := s.optionalUserID(c)
	observability.PostListings.WithLabelValues("profile").Inc()

	user, err := s.userRepo.GetByUsername(ctx, username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("user", username))
	}
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	filter := repository.PostFilter{
		AuthorID:      &user.ID,
		IncludeHidden: viewerID == user.ID,
	}
	page, err := repository.PaginatePosts(ctx, s.postRepo, filter, pageQuery(c))
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(page)
}

// GetPost handles GET /api/posts/:id. A post the viewer is not allowed to
// see returns the same 404 as a post that does not exist.
func (s *Server) GetPost(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id, ok := parseIDParam(c, "id")
	if !ok {
		return nil
	}
	viewerID, _ := s.optionalUserID(c)

	post, err := s.visiblePost(c, id, viewerID)
	if post == nil {
		return err
	}

	comments, err := s.commentRepo.ListByPost(ctx, id)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(fiber.Map{
		"post":     post,
		"comments": comments,
	})
}

// CreatePost handles POST /api/posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	var req postInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if fields := validation.Struct(&req); fields != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewFieldValidationError(fields))
	}

	pubDate := time.Now()
	if req.PubDate != nil {
		pubDate = *req.PubDate
	}

	post := &models.Post{
		Title:       req.Title,
		Text:        req.Text,
		PubDate:     pubDate,
		AuthorID:    userID,
		CategoryID:  req.CategoryID,
		LocationID:  req.LocationID,
		ImageURL:    req.ImageURL,
		IsPublished: true,
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	created, err := s.postRepo.GetByID(ctx, post.ID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// UpdatePost handles PUT /api/posts/:id (owner only)
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)
	id, ok := parseIDParam(c, "id")
	if !ok {
		return nil
	}

	post, err := s.visiblePost(c, id, userID)
	if post == nil {
		return err
	}
	if !policy.CanModify(post, userID) {
		return redirectToPost(c, post.ID)
	}

	var req postInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if fields := validation.Struct(&req); fields != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewFieldValidationError(fields))
	}

	post.Title = req.Title
	post.Text = req.Text
	post.CategoryID = req.CategoryID
	post.LocationID = req.LocationID
	post.ImageURL = req.ImageURL
	if req.PubDate != nil {
		post.PubDate = *req.PubDate
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	updated, err := s.postRepo.GetByID(ctx, post.ID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(updated)
}

// DeletePost handles DELETE /api/posts/:id (owner only)
func (s *Server) DeletePost(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)
	id, ok := parseIDParam(c, "id")
	if !ok {
		return nil
	}

	post, err := s.visiblePost(c, id, userID)
	if post == nil {
		return err
	}
	if !policy.CanModify(post, userID) {
		return redirectToPost(c, post.ID)
	}

	if err := s.postRepo.Delete(ctx, id); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.SendStatus(fiber.StatusOK)
}

// visiblePost loads a post and applies the visibility policy for the viewer.
// On a miss, either kind, it writes the 404 response and returns a nil post
// with the written error, so callers can simply return.
func (s *Server) visiblePost(c *fiber.Ctx, id uint, viewerID uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(c.UserContext(), id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("post", id))
	}
	if err != nil {
		return nil, models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	if !policy.IsVisible(post, viewerID) {
		return nil, models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("post", id))
	}
	return post, nil
}

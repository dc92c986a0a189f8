package server

import (
	"fmt"

	"blogicum/internal/models"

	"github.com/gofiber/fiber/v2"
)

// parseIDParam reads a numeric route parameter, or writes a 400 and returns
// ok=false.
func parseIDParam(c *fiber.Ctx, name string) (uint, bool) {
	var id uint
	if _, err := fmt.Sscan(c.Params(name), &id); err != nil || id == 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(fmt.Sprintf("Invalid %s", name)))
		return 0, false
	}
	return id, true
}

// pageQuery reads the ?page= query parameter. Out-of-range values are
// clamped later by the pagination pipeline, so any integer is accepted.
func pageQuery(c *fiber.Ctx) int {
	return c.QueryInt("page", 1)
}

// redirectToPost sends the viewer to the post detail view. Used as the soft
// denial for edit and delete attempts on a resource the viewer can see but
// does not own.
func redirectToPost(c *fiber.Ctx, postID uint) error {
	return c.Redirect(fmt.Sprintf("/api/posts/%d", postID), fiber.StatusSeeOther)
}

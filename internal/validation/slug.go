package validation

import (
	"fmt"
	"regexp"
	"strings"
)

var categorySlugRegex = regexp.MustCompile(`^[a-z0-9_-]{1,64}$`)

var reservedCategorySlugs = map[string]struct{}{
	"api":        {},
	"auth":       {},
	"posts":      {},
	"comments":   {},
	"categories": {},
	"locations":  {},
	"users":      {},
	"profile":    {},
	"login":      {},
	"signup":     {},
	"metrics":    {},
	"health":     {},
}

// ValidateCategorySlug validates category slug format and reserved names.
func ValidateCategorySlug(slug string) error {
	if !categorySlugRegex.MatchString(slug) {
		return fmt.Errorf("slug must be 1-64 characters and contain only lowercase letters, numbers, hyphens, and underscores")
	}

	if strings.HasPrefix(slug, "-") || strings.HasSuffix(slug, "-") {
		return fmt.Errorf("slug cannot start or end with a hyphen")
	}

	if _, exists := reservedCategorySlugs[slug]; exists {
		return fmt.Errorf("slug is reserved")
	}

	return nil
}

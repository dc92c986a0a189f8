package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePassword(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"Valid", "SecurePass12!@", false},
		{"Exactly Min Length", "Abcdefghij1!", false},
		{"Too Short", "Small1!", true},
		{"Too Long", "A" + strings.Repeat("b", 126) + "1!", true},
		{"No Upper", "securepass12!", true},
		{"No Lower", "SECUREPASS12!", true},
		{"No Digit", "SecurePass!!", true},
		{"No Special", "SecurePass123", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateUsername(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{"Valid", "blog_author-1", false},
		{"Too Short", "ab", true},
		{"Too Long", strings.Repeat("a", 31), true},
		{"Invalid Characters", "user name", true},
		{"Leading Underscore", "_user", true},
		{"Trailing Hyphen", "user-", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateCategorySlug(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		slug    string
		wantErr bool
	}{
		{"Valid", "city-life", false},
		{"Valid With Underscore", "city_life", false},
		{"Uppercase", "CityLife", true},
		{"Spaces", "city life", true},
		{"Leading Hyphen", "-city", true},
		{"Reserved", "posts", true},
		{"Empty", "", true},
		{"Too Long", strings.Repeat("a", 65), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCategorySlug(tt.slug)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestStruct(t *testing.T) {
	t.Parallel()

	type input struct {
		Title string `validate:"required,max=10"`
		Text  string `validate:"required"`
		Image string `validate:"omitempty,url"`
	}

	t.Run("valid input returns nil", func(t *testing.T) {
		fields := Struct(input{Title: "Hello", Text: "world"})
		assert.Nil(t, fields)
	})

	t.Run("missing fields reported by name", func(t *testing.T) {
		fields := Struct(input{})
		assert.Equal(t, "is required", fields["title"])
		assert.Equal(t, "is required", fields["text"])
	})

	t.Run("length and url tags produce messages", func(t *testing.T) {
		fields := Struct(input{Title: strings.Repeat("x", 11), Text: "ok", Image: "not-a-url"})
		assert.Contains(t, fields["title"], "must not exceed 10")
		assert.Equal(t, "must be a valid URL", fields["image"])
	})
}

package server

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"blogicum/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCategories_PublishedOnlyAlphabetical(t *testing.T) {
	_, app, db := setupTestServer(t)

	createTestCategory(t, db, "zoology", true)
	createTestCategory(t, db, "art", true)
	createTestCategory(t, db, "secret", false)

	req := httptest.NewRequest("GET", "/api/categories", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var categories []models.Category
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&categories))
	require.Len(t, categories, 2)
	assert.Equal(t, "art", categories[0].Slug)
	assert.Equal(t, "zoology", categories[1].Slug)
}

func TestGetCategory_UnpublishedIsNotFound(t *testing.T) {
	_, app, db := setupTestServer(t)
	createTestCategory(t, db, "secret", false)

	req := httptest.NewRequest("GET", "/api/categories/secret", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestGetLocations(t *testing.T) {
	_, app, db := setupTestServer(t)

	require.NoError(t, db.Create(&models.Location{Name: "Reykjavik", IsPublished: true}).Error)
	require.NoError(t, db.Create(&models.Location{Name: "Atlantis", IsPublished: false}).Error)

	req := httptest.NewRequest("GET", "/api/locations", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var locations []models.Location
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&locations))
	require.Len(t, locations, 1)
	assert.Equal(t, "Reykjavik", locations[0].Name)
}

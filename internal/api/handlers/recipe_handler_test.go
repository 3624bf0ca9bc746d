package handlers

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"recipe-room-backend/domain"
	"recipe-room-backend/internal/utils"
	"recipe-room-backend/pkg/recipe"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRecipeService struct {
	recipe.RecipeService
	bookmarked map[string]bool
}

func (f *fakeRecipeService) BookmarkRecipe(_ context.Context, recipeID, userID string) (bool, error) {
	key := userID + "/" + recipeID
	if f.bookmarked[key] {
		return false, nil
	}
	f.bookmarked[key] = true
	return true, nil
}

func (f *fakeRecipeService) RateRecipe(_ context.Context, recipeID string, req domain.RateRecipeRequest, userID string) error {
	return nil
}

func newHandlerApp(service recipe.RecipeService) *fiber.App {
	utils.InitValidator()
	handler := NewRecipeHandler(service, utils.Validate)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", "2a0a4bc2-47f3-4e5e-b239-5a6ff79f3c71")
		return c.Next()
	})
	app.Post("/api/recipes/:id/bookmark", handler.BookmarkRecipe)
	app.Post("/api/recipes/:id/rate", handler.RateRecipe)
	return app
}

func TestBookmarkStatusCodes(t *testing.T) {
	service := &fakeRecipeService{bookmarked: map[string]bool{}}
	app := newHandlerApp(service)

	req := httptest.NewRequest("POST", "/api/recipes/abc/bookmark", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// Second bookmark is a no-op success, not a conflict
	resp, err = app.Test(httptest.NewRequest("POST", "/api/recipes/abc/bookmark", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRateRecipeValidationError(t *testing.T) {
	service := &fakeRecipeService{bookmarked: map[string]bool{}}
	app := newHandlerApp(service)

	req := httptest.NewRequest("POST", "/api/recipes/abc/rate", strings.NewReader(`{"value":9}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"errors"`)
	assert.Contains(t, string(body), `"value"`)
}

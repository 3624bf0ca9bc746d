package handlers

import (
	"recipe-room-backend/domain"
	"recipe-room-backend/internal/api/presenters"
	"recipe-room-backend/pkg/recipe"

	"github.com/gofiber/fiber/v2"
)

type (
	SearchHandler interface {
		SearchRecipes(c *fiber.Ctx) error
	}

	searchHandler struct {
		recipeService recipe.RecipeService
	}
)

func NewSearchHandler(recipeService recipe.RecipeService) SearchHandler {
	return &searchHandler{recipeService: recipeService}
}

func (h *searchHandler) SearchRecipes(c *fiber.Ctx) error {
	req := parseDiscoverRequest(c)

	res, err := h.recipeService.DiscoverRecipes(c.Context(), req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedSearchRecipes, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"recipes": res,
		"count":   len(res),
	}, fiber.StatusOK, domain.MessageSuccessSearchRecipes)
}

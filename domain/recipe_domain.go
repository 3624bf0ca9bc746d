package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessCreateRecipe    = "recipe created successfully"
	MessageSuccessUpdateRecipe    = "recipe updated successfully"
	MessageSuccessDeleteRecipe    = "recipe deleted successfully"
	MessageSuccessGetHistory      = "success get recipe edit history"
	MessageSuccessSaveRating      = "rating saved successfully"
	MessageSuccessGetRating       = "success get recipe rating"
	MessageSuccessBookmark        = "recipe bookmarked successfully"
	MessageSuccessAlreadyBookmark = "recipe already bookmarked"
	MessageSuccessRemoveBookmark  = "bookmark removed successfully"
	MessageSuccessDiscoverRecipes = "success discover recipes"
	MessageSuccessSearchRecipes   = "success search recipes"

	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedCreateRecipe    = "failed to create recipe"
	MessageFailedUpdateRecipe    = "failed to update recipe"
	MessageFailedDeleteRecipe    = "failed to delete recipe"
	MessageFailedGetHistory      = "failed to get recipe edit history"
	MessageFailedSaveRating      = "failed to save rating"
	MessageFailedGetRating       = "failed to get recipe rating"
	MessageFailedBookmark        = "failed to bookmark recipe"
	MessageFailedRemoveBookmark  = "failed to remove bookmark"
	MessageFailedDiscoverRecipes = "failed to discover recipes"
	MessageFailedSearchRecipes   = "failed to search recipes"

	ErrRecipeNotFound           = errors.New("recipe not found")
	ErrUnauthorizedRecipeAccess = errors.New("unauthorized access to recipe")
	ErrOnlyOwnerCanDelete       = errors.New("only the recipe owner can delete it")
	ErrInvalidRatingValue       = errors.New("rating must be between 1 and 5")
	ErrBookmarkNotFound         = errors.New("bookmark not found")
)

// History action tags, one per recipe mutation.
const (
	HistoryActionCreated = "created"
	HistoryActionUpdated = "updated"
	HistoryActionDeleted = "deleted"
)

type (
	Ingredient struct {
		Name     string `json:"name" validate:"required"`
		Quantity string `json:"quantity" validate:"required"`
	}

	ProcedureStep struct {
		Step        int    `json:"step" validate:"required,min=1"`
		Instruction string `json:"instruction" validate:"required"`
	}

	CreateRecipeRequest struct {
		Title        string          `json:"title" validate:"required"`
		Description  string          `json:"description,omitempty"`
		Country      string          `json:"country,omitempty"`
		Ingredients  []Ingredient    `json:"ingredients" validate:"required,min=1,dive"`
		Procedure    []ProcedureStep `json:"procedure" validate:"required,min=1,dive"`
		PeopleServed int             `json:"people_served" validate:"required,min=1"`
		PrepTime     int             `json:"prep_time,omitempty"`
		CookTime     int             `json:"cook_time,omitempty"`

		Image *multipart.FileHeader `json:"-"`
	}

	// UpdateRecipeRequest uses pointers so absent fields stay untouched.
	UpdateRecipeRequest struct {
		Title        *string          `json:"title,omitempty"`
		Description  *string          `json:"description,omitempty"`
		Country      *string          `json:"country,omitempty"`
		Ingredients  []Ingredient     `json:"ingredients,omitempty" validate:"omitempty,min=1,dive"`
		Procedure    []ProcedureStep  `json:"procedure,omitempty" validate:"omitempty,min=1,dive"`
		PeopleServed *int             `json:"people_served,omitempty" validate:"omitempty,min=1"`
		PrepTime     *int             `json:"prep_time,omitempty"`
		CookTime     *int             `json:"cook_time,omitempty"`

		Image *multipart.FileHeader `json:"-"`
	}

	DiscoverRecipesRequest struct {
		Name         string
		Ingredient   string
		PeopleServed int
		Country      string
		MinRating    float64
	}

	RateRecipeRequest struct {
		Value int `json:"value" validate:"required,min=1,max=5"`
	}

	RecipeResponse struct {
		ID            string          `json:"recipe_id"`
		Title         string          `json:"title"`
		Description   string          `json:"description,omitempty"`
		Country       string          `json:"country,omitempty"`
		Ingredients   []Ingredient    `json:"ingredients"`
		Procedure     []ProcedureStep `json:"procedure"`
		PeopleServed  int             `json:"people_served"`
		PrepTime      int             `json:"prep_time,omitempty"`
		CookTime      int             `json:"cook_time,omitempty"`
		ImageURL      string          `json:"image_url,omitempty"`
		Owner         *UserProfile    `json:"owner,omitempty"`
		AverageRating float64         `json:"average_rating"`
		RatingCount   int64           `json:"rating_count"`
		CreatedAt     time.Time       `json:"created_at"`
		UpdatedAt     time.Time       `json:"updated_at"`
	}

	RecipeListResponse struct {
		Recipes    []RecipeResponse `json:"recipes"`
		Pagination Pagination       `json:"pagination"`
	}

	FieldChange struct {
		Old any `json:"old"`
		New any `json:"new"`
	}

	EditHistoryEntry struct {
		ID        string         `json:"id"`
		UserID    string         `json:"user_id"`
		Username  string         `json:"username,omitempty"`
		Action    string         `json:"action"`
		Changes   map[string]any `json:"changes"`
		Timestamp time.Time      `json:"timestamp"`
	}

	RecipeRatingResponse struct {
		Average float64 `json:"average"`
		Count   int64   `json:"count"`
	}
)

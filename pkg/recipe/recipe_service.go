package recipe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"recipe-room-backend/domain"
	"recipe-room-backend/entities"
	"recipe-room-backend/internal/utils/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.RecipeResponse, error)
		GetRecipes(ctx context.Context, page, limit int) (domain.RecipeListResponse, error)
		GetRecipeByID(ctx context.Context, id string) (domain.RecipeResponse, error)
		GetRecipesByUser(ctx context.Context, ownerID string, page, limit int) (domain.RecipeListResponse, error)
		UpdateRecipe(ctx context.Context, id string, req domain.UpdateRecipeRequest, userID string) (domain.RecipeResponse, error)
		DeleteRecipe(ctx context.Context, id string, userID string) error
		DiscoverRecipes(ctx context.Context, req domain.DiscoverRecipesRequest) ([]domain.RecipeResponse, error)
		GetEditHistory(ctx context.Context, recipeID string, userID string) ([]domain.EditHistoryEntry, error)
		RateRecipe(ctx context.Context, recipeID string, req domain.RateRecipeRequest, userID string) error
		GetRecipeRating(ctx context.Context, recipeID string) (domain.RecipeRatingResponse, error)
		BookmarkRecipe(ctx context.Context, recipeID, userID string) (bool, error)
		RemoveBookmark(ctx context.Context, recipeID, userID string) error
	}

	recipeService struct {
		recipeRepository RecipeRepository
		s3               storage.AwsS3
	}
)

func NewRecipeService(recipeRepository RecipeRepository, s3 storage.AwsS3) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		s3:               s3,
	}
}

func marshalBlob(v any) string {
	raw, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(raw)
}

func (s *recipeService) toResponse(recipe *entities.Recipe, stats RatingStats) domain.RecipeResponse {
	var ingredients []domain.Ingredient
	var procedure []domain.ProcedureStep
	_ = json.Unmarshal([]byte(recipe.Ingredients), &ingredients)
	_ = json.Unmarshal([]byte(recipe.Procedure), &procedure)

	res := domain.RecipeResponse{
		ID:            recipe.ID.String(),
		Title:         recipe.Title,
		Description:   recipe.Description,
		Country:       recipe.Country,
		Ingredients:   ingredients,
		Procedure:     procedure,
		PeopleServed:  recipe.PeopleServed,
		PrepTime:      recipe.PrepTimeMinutes,
		CookTime:      recipe.CookTimeMinutes,
		ImageURL:      recipe.ImageURL,
		AverageRating: stats.Average,
		RatingCount:   stats.Count,
		CreatedAt:     recipe.CreatedAt,
		UpdatedAt:     recipe.UpdatedAt,
	}

	if recipe.Owner != nil {
		res.Owner = &domain.UserProfile{
			ID:       recipe.Owner.ID.String(),
			Username: recipe.Owner.Username,
			ImageURL: recipe.Owner.ImageURL,
		}
	}

	return res
}

func (s *recipeService) toResponses(ctx context.Context, recipes []*entities.Recipe) ([]domain.RecipeResponse, error) {
	ids := make([]uuid.UUID, 0, len(recipes))
	for _, recipe := range recipes {
		ids = append(ids, recipe.ID)
	}

	stats, err := s.recipeRepository.GetRatingStats(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make([]domain.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		result = append(result, s.toResponse(recipe, stats[recipe.ID]))
	}
	return result, nil
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.RecipeResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.RecipeResponse{}, domain.ErrParseUUID
	}

	recipe := &entities.Recipe{
		ID:              uuid.New(),
		OwnerID:         userUUID,
		Title:           req.Title,
		Description:     req.Description,
		Country:         req.Country,
		Ingredients:     marshalBlob(req.Ingredients),
		Procedure:       marshalBlob(req.Procedure),
		PeopleServed:    req.PeopleServed,
		PrepTimeMinutes: req.PrepTime,
		CookTimeMinutes: req.CookTime,
		Status:          entities.RecipeStatusActive,
	}

	// Image upload failures never fail the create itself
	if req.Image != nil {
		fileName := fmt.Sprintf("recipe-%s", recipe.ID.String())
		objectKey, uploadErr := s.s3.UploadFile(fileName, req.Image, "recipe-images", storage.AllowImage...)
		if uploadErr != nil {
			log.Printf("recipe image upload failed: %v", uploadErr)
		} else {
			recipe.ImageKey = objectKey
			recipe.ImageURL = s.s3.GetPublicLink(objectKey)
		}
	}

	history := &entities.RecipeEditHistory{
		ID:      uuid.New(),
		UserID:  userUUID,
		Action:  domain.HistoryActionCreated,
		Changes: marshalBlob(map[string]any{"initial_creation": true}),
	}

	if err := s.recipeRepository.CreateRecipe(ctx, recipe, history); err != nil {
		return domain.RecipeResponse{}, err
	}

	return s.toResponse(recipe, RatingStats{}), nil
}

func (s *recipeService) GetRecipes(ctx context.Context, page, limit int) (domain.RecipeListResponse, error) {
	recipes, count, err := s.recipeRepository.GetRecipes(ctx, page, limit)
	if err != nil {
		return domain.RecipeListResponse{}, err
	}

	responses, err := s.toResponses(ctx, recipes)
	if err != nil {
		return domain.RecipeListResponse{}, err
	}

	return domain.RecipeListResponse{
		Recipes:    responses,
		Pagination: domain.NewPagination(page, limit, count),
	}, nil
}

func (s *recipeService) GetRecipeByID(ctx context.Context, id string) (domain.RecipeResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeResponse{}, err
	}

	responses, err := s.toResponses(ctx, []*entities.Recipe{recipe})
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	return responses[0], nil
}

func (s *recipeService) GetRecipesByUser(ctx context.Context, ownerID string, page, limit int) (domain.RecipeListResponse, error) {
	recipes, count, err := s.recipeRepository.GetRecipesByOwner(ctx, ownerID, page, limit)
	if err != nil {
		return domain.RecipeListResponse{}, err
	}

	responses, err := s.toResponses(ctx, recipes)
	if err != nil {
		return domain.RecipeListResponse{}, err
	}

	return domain.RecipeListResponse{
		Recipes:    responses,
		Pagination: domain.NewPagination(page, limit, count),
	}, nil
}

func (s *recipeService) canEdit(ctx context.Context, recipe *entities.Recipe, userID string) (bool, error) {
	if recipe.OwnerID.String() == userID {
		return true, nil
	}
	return s.recipeRepository.IsGroupMemberForRecipe(ctx, recipe.ID.String(), userID)
}

func (s *recipeService) UpdateRecipe(ctx context.Context, id string, req domain.UpdateRecipeRequest, userID string) (domain.RecipeResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeResponse{}, err
	}

	allowed, err := s.canEdit(ctx, recipe, userID)
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	if !allowed {
		return domain.RecipeResponse{}, domain.ErrUnauthorizedRecipeAccess
	}

	changes := map[string]any{}

	if req.Title != nil && *req.Title != recipe.Title {
		changes["title"] = domain.FieldChange{Old: recipe.Title, New: *req.Title}
		recipe.Title = *req.Title
	}
	if req.Description != nil && *req.Description != recipe.Description {
		changes["description"] = domain.FieldChange{Old: recipe.Description, New: *req.Description}
		recipe.Description = *req.Description
	}
	if req.Country != nil && *req.Country != recipe.Country {
		changes["country"] = domain.FieldChange{Old: recipe.Country, New: *req.Country}
		recipe.Country = *req.Country
	}
	if req.Ingredients != nil {
		serialized := marshalBlob(req.Ingredients)
		if serialized != recipe.Ingredients {
			var old []domain.Ingredient
			_ = json.Unmarshal([]byte(recipe.Ingredients), &old)
			changes["ingredients"] = domain.FieldChange{Old: old, New: req.Ingredients}
			recipe.Ingredients = serialized
		}
	}
	if req.Procedure != nil {
		serialized := marshalBlob(req.Procedure)
		if serialized != recipe.Procedure {
			var old []domain.ProcedureStep
			_ = json.Unmarshal([]byte(recipe.Procedure), &old)
			changes["procedure"] = domain.FieldChange{Old: old, New: req.Procedure}
			recipe.Procedure = serialized
		}
	}
	if req.PeopleServed != nil && *req.PeopleServed != recipe.PeopleServed {
		changes["people_served"] = domain.FieldChange{Old: recipe.PeopleServed, New: *req.PeopleServed}
		recipe.PeopleServed = *req.PeopleServed
	}
	if req.PrepTime != nil && *req.PrepTime != recipe.PrepTimeMinutes {
		changes["prep_time"] = domain.FieldChange{Old: recipe.PrepTimeMinutes, New: *req.PrepTime}
		recipe.PrepTimeMinutes = *req.PrepTime
	}
	if req.CookTime != nil && *req.CookTime != recipe.CookTimeMinutes {
		changes["cook_time"] = domain.FieldChange{Old: recipe.CookTimeMinutes, New: *req.CookTime}
		recipe.CookTimeMinutes = *req.CookTime
	}

	if req.Image != nil {
		var objectKey string
		var uploadErr error
		if recipe.ImageKey != "" {
			objectKey, uploadErr = s.s3.UpdateFile(recipe.ImageKey, req.Image, storage.AllowImage...)
		} else {
			fileName := fmt.Sprintf("recipe-%s", recipe.ID.String())
			objectKey, uploadErr = s.s3.UploadFile(fileName, req.Image, "recipe-images", storage.AllowImage...)
		}
		if uploadErr != nil {
			log.Printf("recipe image update failed: %v", uploadErr)
		} else {
			recipe.ImageKey = objectKey
			recipe.ImageURL = s.s3.GetPublicLink(objectKey)
			changes["image"] = "updated"
		}
	}

	// History entry only when something actually changed
	var history *entities.RecipeEditHistory
	if len(changes) > 0 {
		userUUID, err := uuid.Parse(userID)
		if err != nil {
			return domain.RecipeResponse{}, domain.ErrParseUUID
		}
		history = &entities.RecipeEditHistory{
			ID:       uuid.New(),
			RecipeID: recipe.ID,
			UserID:   userUUID,
			Action:   domain.HistoryActionUpdated,
			Changes:  marshalBlob(changes),
		}
	}

	if err := s.recipeRepository.UpdateRecipe(ctx, recipe, history); err != nil {
		return domain.RecipeResponse{}, err
	}

	responses, err := s.toResponses(ctx, []*entities.Recipe{recipe})
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	return responses[0], nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id string, userID string) error {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	if recipe.OwnerID.String() != userID {
		return domain.ErrOnlyOwnerCanDelete
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	history := &entities.RecipeEditHistory{
		ID:       uuid.New(),
		RecipeID: recipe.ID,
		UserID:   userUUID,
		Action:   domain.HistoryActionDeleted,
		Changes:  marshalBlob(map[string]any{"soft_delete": true}),
	}

	return s.recipeRepository.SoftDeleteRecipe(ctx, recipe, history)
}

func (s *recipeService) DiscoverRecipes(ctx context.Context, req domain.DiscoverRecipesRequest) ([]domain.RecipeResponse, error) {
	recipes, err := s.recipeRepository.DiscoverRecipes(ctx, req)
	if err != nil {
		return nil, err
	}
	return s.toResponses(ctx, recipes)
}

func (s *recipeService) GetEditHistory(ctx context.Context, recipeID string, userID string) ([]domain.EditHistoryEntry, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}

	allowed, err := s.canEdit(ctx, recipe, userID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, domain.ErrUnauthorizedRecipeAccess
	}

	entries, err := s.recipeRepository.GetEditHistory(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.EditHistoryEntry, 0, len(entries))
	for _, entry := range entries {
		changes := map[string]any{}
		_ = json.Unmarshal([]byte(entry.Changes), &changes)

		item := domain.EditHistoryEntry{
			ID:        entry.ID.String(),
			UserID:    entry.UserID.String(),
			Action:    entry.Action,
			Changes:   changes,
			Timestamp: entry.CreatedAt,
		}
		if entry.User != nil {
			item.Username = entry.User.Username
		}
		result = append(result, item)
	}

	return result, nil
}

func (s *recipeService) RateRecipe(ctx context.Context, recipeID string, req domain.RateRecipeRequest, userID string) error {
	if req.Value < 1 || req.Value > 5 {
		return domain.ErrInvalidRatingValue
	}

	if _, err := s.recipeRepository.GetRecipeByID(ctx, recipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	return s.recipeRepository.SaveRating(ctx, userID, recipeID, req.Value)
}

func (s *recipeService) GetRecipeRating(ctx context.Context, recipeID string) (domain.RecipeRatingResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeRatingResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeRatingResponse{}, err
	}

	stats, err := s.recipeRepository.GetRatingStats(ctx, []uuid.UUID{recipe.ID})
	if err != nil {
		return domain.RecipeRatingResponse{}, err
	}

	stat := stats[recipe.ID]
	return domain.RecipeRatingResponse{
		Average: stat.Average,
		Count:   stat.Count,
	}, nil
}

// BookmarkRecipe reports whether a new bookmark row was created.
func (s *recipeService) BookmarkRecipe(ctx context.Context, recipeID, userID string) (bool, error) {
	if _, err := s.recipeRepository.GetRecipeByID(ctx, recipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, domain.ErrRecipeNotFound
		}
		return false, err
	}

	return s.recipeRepository.CreateBookmark(ctx, userID, recipeID)
}

func (s *recipeService) RemoveBookmark(ctx context.Context, recipeID, userID string) error {
	removed, err := s.recipeRepository.RemoveBookmark(ctx, userID, recipeID)
	if err != nil {
		return err
	}
	if !removed {
		return domain.ErrBookmarkNotFound
	}
	return nil
}

package recipe

import (
	"context"
	"errors"
	"time"

	"recipe-room-backend/domain"
	"recipe-room-backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RatingStats struct {
		RecipeID uuid.UUID
		Average  float64
		Count    int64
	}

	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe, history *entities.RecipeEditHistory) error
		GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error)
		GetRecipes(ctx context.Context, page, limit int) ([]*entities.Recipe, int64, error)
		GetRecipesByOwner(ctx context.Context, ownerID string, page, limit int) ([]*entities.Recipe, int64, error)
		DiscoverRecipes(ctx context.Context, req domain.DiscoverRecipesRequest) ([]*entities.Recipe, error)
		UpdateRecipe(ctx context.Context, recipe *entities.Recipe, history *entities.RecipeEditHistory) error
		SoftDeleteRecipe(ctx context.Context, recipe *entities.Recipe, history *entities.RecipeEditHistory) error
		GetEditHistory(ctx context.Context, recipeID string) ([]*entities.RecipeEditHistory, error)
		IsGroupMemberForRecipe(ctx context.Context, recipeID, userID string) (bool, error)

		SaveRating(ctx context.Context, userID, recipeID string, value int) error
		GetRatingStats(ctx context.Context, recipeIDs []uuid.UUID) (map[uuid.UUID]RatingStats, error)

		CreateBookmark(ctx context.Context, userID, recipeID string) (bool, error)
		RemoveBookmark(ctx context.Context, userID, recipeID string) (bool, error)
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe, history *entities.RecipeEditHistory) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(recipe).Error; err != nil {
			return err
		}
		history.RecipeID = recipe.ID
		return tx.Create(history).Error
	})
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Owner").
		Where("id = ? AND status = ?", id, entities.RecipeStatusActive).
		First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetRecipes(ctx context.Context, page, limit int) ([]*entities.Recipe, int64, error) {
	var recipes []*entities.Recipe
	var count int64
	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("status = ?", entities.RecipeStatusActive).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Preload("Owner").
		Where("status = ?", entities.RecipeStatusActive).
		Offset(offset).
		Limit(limit).
		Order("created_at desc").
		Find(&recipes).Error; err != nil {
		return nil, 0, err
	}

	return recipes, count, nil
}

func (r *recipeRepository) GetRecipesByOwner(ctx context.Context, ownerID string, page, limit int) ([]*entities.Recipe, int64, error) {
	var recipes []*entities.Recipe
	var count int64
	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("owner_id = ? AND status = ?", ownerID, entities.RecipeStatusActive).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Preload("Owner").
		Where("owner_id = ? AND status = ?", ownerID, entities.RecipeStatusActive).
		Offset(offset).
		Limit(limit).
		Order("created_at desc").
		Find(&recipes).Error; err != nil {
		return nil, 0, err
	}

	return recipes, count, nil
}

func (r *recipeRepository) DiscoverRecipes(ctx context.Context, req domain.DiscoverRecipesRequest) ([]*entities.Recipe, error) {
	query := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Preload("Owner").
		Where("recipes.status = ?", entities.RecipeStatusActive)

	if req.Name != "" {
		query = query.Where("recipes.title ILIKE ?", "%"+req.Name+"%")
	}
	if req.Ingredient != "" {
		query = query.Where("recipes.ingredients ILIKE ?", "%"+req.Ingredient+"%")
	}
	if req.PeopleServed > 0 {
		query = query.Where("recipes.people_served = ?", req.PeopleServed)
	}
	if req.Country != "" {
		query = query.Where("recipes.country = ?", req.Country)
	}
	if req.MinRating > 0 {
		query = query.
			Joins("JOIN ratings ON ratings.recipe_id = recipes.id").
			Group("recipes.id").
			Having("AVG(ratings.value) >= ?", req.MinRating)
	}

	var recipes []*entities.Recipe
	if err := query.Order("recipes.created_at desc").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) UpdateRecipe(ctx context.Context, recipe *entities.Recipe, history *entities.RecipeEditHistory) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(recipe).Error; err != nil {
			return err
		}
		if history == nil {
			return nil
		}
		return tx.Create(history).Error
	})
}

func (r *recipeRepository) SoftDeleteRecipe(ctx context.Context, recipe *entities.Recipe, history *entities.RecipeEditHistory) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		recipe.Status = entities.RecipeStatusDeleted
		if err := tx.Save(recipe).Error; err != nil {
			return err
		}
		return tx.Create(history).Error
	})
}

func (r *recipeRepository) GetEditHistory(ctx context.Context, recipeID string) ([]*entities.RecipeEditHistory, error) {
	var history []*entities.RecipeEditHistory
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("recipe_id = ?", recipeID).
		Order("created_at desc").
		Find(&history).Error; err != nil {
		return nil, err
	}
	return history, nil
}

func (r *recipeRepository) IsGroupMemberForRecipe(ctx context.Context, recipeID, userID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.GroupRecipe{}).
		Joins("JOIN group_members ON group_members.group_id = group_recipes.group_id").
		Where("group_recipes.recipe_id = ? AND group_members.user_id = ?", recipeID, userID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *recipeRepository) SaveRating(ctx context.Context, userID, recipeID string, value int) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}
	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return domain.ErrParseUUID
	}

	// Re-rating overwrites the previous value
	var existing entities.Rating
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userUUID, recipeUUID).
		First(&existing).Error; err == nil {
		existing.Value = value
		return r.db.WithContext(ctx).Save(&existing).Error
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	rating := entities.Rating{
		ID:       uuid.New(),
		UserID:   userUUID,
		RecipeID: recipeUUID,
		Value:    value,
	}
	return r.db.WithContext(ctx).Create(&rating).Error
}

func (r *recipeRepository) GetRatingStats(ctx context.Context, recipeIDs []uuid.UUID) (map[uuid.UUID]RatingStats, error) {
	stats := make(map[uuid.UUID]RatingStats, len(recipeIDs))
	if len(recipeIDs) == 0 {
		return stats, nil
	}

	var rows []RatingStats
	if err := r.db.WithContext(ctx).
		Model(&entities.Rating{}).
		Select("recipe_id, AVG(value) as average, COUNT(*) as count").
		Where("recipe_id IN ?", recipeIDs).
		Group("recipe_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	for _, row := range rows {
		stats[row.RecipeID] = row
	}
	return stats, nil
}

// CreateBookmark reports whether a new row was created; a second bookmark
// from the same user is a no-op success.
func (r *recipeRepository) CreateBookmark(ctx context.Context, userID, recipeID string) (bool, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return false, domain.ErrParseUUID
	}
	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return false, domain.ErrParseUUID
	}

	var existing entities.Bookmark
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userUUID, recipeUUID).
		First(&existing).Error; err == nil {
		return false, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	bookmark := entities.Bookmark{
		ID:        uuid.New(),
		UserID:    userUUID,
		RecipeID:  recipeUUID,
		CreatedAt: time.Now(),
	}
	if err := r.db.WithContext(ctx).Create(&bookmark).Error; err != nil {
		return false, err
	}
	return true, nil
}

func (r *recipeRepository) RemoveBookmark(ctx context.Context, userID, recipeID string) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&entities.Bookmark{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

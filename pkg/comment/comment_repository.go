package comment

import (
	"context"

	"recipe-room-backend/entities"

	"gorm.io/gorm"
)

type (
	CommentRepository interface {
		CreateComment(ctx context.Context, comment *entities.Comment) error
		GetCommentByID(ctx context.Context, id string) (*entities.Comment, error)
		GetCommentsByRecipe(ctx context.Context, recipeID string, page, limit int) ([]*entities.Comment, int64, error)
		UpdateComment(ctx context.Context, comment *entities.Comment) error
	}

	commentRepository struct {
		db *gorm.DB
	}
)

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) CreateComment(ctx context.Context, comment *entities.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *commentRepository) GetCommentByID(ctx context.Context, id string) (*entities.Comment, error) {
	var comment entities.Comment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND status = ?", id, entities.CommentStatusActive).
		First(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) GetCommentsByRecipe(ctx context.Context, recipeID string, page, limit int) ([]*entities.Comment, int64, error) {
	var comments []*entities.Comment
	var count int64
	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).
		Model(&entities.Comment{}).
		Where("recipe_id = ? AND status = ?", recipeID, entities.CommentStatusActive).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("recipe_id = ? AND status = ?", recipeID, entities.CommentStatusActive).
		Offset(offset).
		Limit(limit).
		Order("created_at desc").
		Find(&comments).Error; err != nil {
		return nil, 0, err
	}

	return comments, count, nil
}

func (r *commentRepository) UpdateComment(ctx context.Context, comment *entities.Comment) error {
	return r.db.WithContext(ctx).Save(comment).Error
}

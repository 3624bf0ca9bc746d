package comment

import (
	"context"
	"errors"
	"strings"

	"recipe-room-backend/domain"
	"recipe-room-backend/entities"
	"recipe-room-backend/pkg/recipe"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CommentService interface {
		GetRecipeComments(ctx context.Context, recipeID string, page, limit int) (domain.CommentListResponse, error)
		CreateComment(ctx context.Context, req domain.CreateCommentRequest, userID string) (domain.CommentResponse, error)
		UpdateComment(ctx context.Context, commentID string, req domain.UpdateCommentRequest, userID string) (domain.CommentResponse, error)
		DeleteComment(ctx context.Context, commentID string, userID string) error
	}

	commentService struct {
		commentRepository CommentRepository
		recipeRepository  recipe.RecipeRepository
	}
)

func NewCommentService(commentRepository CommentRepository, recipeRepository recipe.RecipeRepository) CommentService {
	return &commentService{
		commentRepository: commentRepository,
		recipeRepository:  recipeRepository,
	}
}

func toCommentResponse(comment *entities.Comment) domain.CommentResponse {
	res := domain.CommentResponse{
		ID:        comment.ID.String(),
		RecipeID:  comment.RecipeID.String(),
		UserID:    comment.UserID.String(),
		Text:      comment.Text,
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
	}
	if comment.User != nil {
		res.Username = comment.User.Username
	}
	return res
}

func (s *commentService) GetRecipeComments(ctx context.Context, recipeID string, page, limit int) (domain.CommentListResponse, error) {
	if _, err := s.recipeRepository.GetRecipeByID(ctx, recipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CommentListResponse{}, domain.ErrRecipeNotFound
		}
		return domain.CommentListResponse{}, err
	}

	comments, count, err := s.commentRepository.GetCommentsByRecipe(ctx, recipeID, page, limit)
	if err != nil {
		return domain.CommentListResponse{}, err
	}

	result := make([]domain.CommentResponse, 0, len(comments))
	for _, comment := range comments {
		result = append(result, toCommentResponse(comment))
	}

	return domain.CommentListResponse{
		Comments:   result,
		Pagination: domain.NewPagination(page, limit, count),
	}, nil
}

func (s *commentService) CreateComment(ctx context.Context, req domain.CreateCommentRequest, userID string) (domain.CommentResponse, error) {
	recipeEntity, err := s.recipeRepository.GetRecipeByID(ctx, req.RecipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CommentResponse{}, domain.ErrRecipeNotFound
		}
		return domain.CommentResponse{}, err
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.CommentResponse{}, domain.ErrParseUUID
	}

	comment := &entities.Comment{
		ID:       uuid.New(),
		RecipeID: recipeEntity.ID,
		UserID:   userUUID,
		Text:     strings.TrimSpace(req.Text),
		Status:   entities.CommentStatusActive,
	}

	if err := s.commentRepository.CreateComment(ctx, comment); err != nil {
		return domain.CommentResponse{}, err
	}

	return toCommentResponse(comment), nil
}

func (s *commentService) UpdateComment(ctx context.Context, commentID string, req domain.UpdateCommentRequest, userID string) (domain.CommentResponse, error) {
	comment, err := s.commentRepository.GetCommentByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CommentResponse{}, domain.ErrCommentNotFound
		}
		return domain.CommentResponse{}, err
	}

	if comment.UserID.String() != userID {
		return domain.CommentResponse{}, domain.ErrNotCommentAuthor
	}

	comment.Text = strings.TrimSpace(req.Text)
	if err := s.commentRepository.UpdateComment(ctx, comment); err != nil {
		return domain.CommentResponse{}, err
	}

	return toCommentResponse(comment), nil
}

func (s *commentService) DeleteComment(ctx context.Context, commentID string, userID string) error {
	comment, err := s.commentRepository.GetCommentByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCommentNotFound
		}
		return err
	}

	if comment.UserID.String() != userID {
		return domain.ErrNotCommentAuthor
	}

	comment.Status = entities.CommentStatusDeleted
	return s.commentRepository.UpdateComment(ctx, comment)
}

package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetComments   = "success get comments"
	MessageSuccessCreateComment = "comment created successfully"
	MessageSuccessUpdateComment = "comment updated successfully"
	MessageSuccessDeleteComment = "comment deleted successfully"

	MessageFailedGetComments   = "failed to get comments"
	MessageFailedCreateComment = "failed to create comment"
	MessageFailedUpdateComment = "failed to update comment"
	MessageFailedDeleteComment = "failed to delete comment"

	ErrCommentNotFound  = errors.New("comment not found")
	ErrNotCommentAuthor = errors.New("you can only modify your own comments")
)

type (
	CreateCommentRequest struct {
		RecipeID string `json:"recipe_id" validate:"required,uuid"`
		Text     string `json:"comment_text" validate:"required"`
	}

	UpdateCommentRequest struct {
		Text string `json:"comment_text" validate:"required"`
	}

	CommentResponse struct {
		ID        string    `json:"id"`
		RecipeID  string    `json:"recipe_id"`
		UserID    string    `json:"user_id"`
		Username  string    `json:"username,omitempty"`
		Text      string    `json:"comment_text"`
		CreatedAt time.Time `json:"created_at"`
		UpdatedAt time.Time `json:"updated_at"`
	}

	CommentListResponse struct {
		Comments   []CommentResponse `json:"comments"`
		Pagination Pagination        `json:"pagination"`
	}
)

package entities

import (
	"github.com/google/uuid"
)

const (
	CommentStatusActive  = "active"
	CommentStatusDeleted = "deleted"
)

type Comment struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecipeID uuid.UUID `json:"recipe_id"`
	UserID   uuid.UUID `json:"user_id"`
	Text     string    `gorm:"type:text" json:"text"`
	Status   string    `gorm:"default:active" json:"status"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID"`
	User   *User   `gorm:"foreignKey:UserID"`
	Timestamp
}

package entities

import (
	"time"

	"github.com/google/uuid"
)

const (
	RecipeStatusActive  = "active"
	RecipeStatusDeleted = "deleted"
)

type Recipe struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	OwnerID         uuid.UUID `json:"owner_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Country         string    `json:"country"`
	Ingredients     string    `gorm:"type:text" json:"ingredients"`
	Procedure       string    `gorm:"type:text" json:"procedure"`
	PeopleServed    int       `json:"people_served"`
	PrepTimeMinutes int       `json:"prep_time_minutes"`
	CookTimeMinutes int       `json:"cook_time_minutes"`
	ImageURL        string    `json:"image_url,omitempty"`
	ImageKey        string    `json:"-"`
	Status          string    `gorm:"default:active" json:"status"`

	Owner *User `gorm:"foreignKey:OwnerID"`
	Timestamp
}

type RecipeEditHistory struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecipeID  uuid.UUID `json:"recipe_id"`
	UserID    uuid.UUID `json:"user_id"`
	Action    string    `json:"action"` // created, updated, deleted
	Changes   string    `gorm:"type:text" json:"changes"`
	CreatedAt time.Time `gorm:"type:timestamp;autoCreateTime" json:"created_at"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID"`
	User   *User   `gorm:"foreignKey:UserID"`
}

type Rating struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID   uuid.UUID `gorm:"uniqueIndex:idx_ratings_user_recipe" json:"user_id"`
	RecipeID uuid.UUID `gorm:"uniqueIndex:idx_ratings_user_recipe" json:"recipe_id"`
	Value    int       `gorm:"check:value >= 1 AND value <= 5" json:"value"`

	User   *User   `gorm:"foreignKey:UserID"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID"`
	Timestamp
}

type Bookmark struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID    uuid.UUID `gorm:"uniqueIndex:idx_bookmarks_user_recipe" json:"user_id"`
	RecipeID  uuid.UUID `gorm:"uniqueIndex:idx_bookmarks_user_recipe" json:"recipe_id"`
	CreatedAt time.Time `gorm:"type:timestamp;autoCreateTime" json:"created_at"`

	User   *User   `gorm:"foreignKey:UserID"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID"`
}

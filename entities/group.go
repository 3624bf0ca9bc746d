package entities

import (
	"time"

	"github.com/google/uuid"
)

type RecipeGroup struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	MaxMembers  int       `json:"max_members,omitempty"`

	Owner   *User          `gorm:"foreignKey:OwnerID"`
	Members []*GroupMember `gorm:"foreignKey:GroupID"`
	Recipes []*GroupRecipe `gorm:"foreignKey:GroupID"`
	Timestamp
}

type GroupMember struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	GroupID  uuid.UUID `gorm:"uniqueIndex:idx_group_members_group_user" json:"group_id"`
	UserID   uuid.UUID `gorm:"uniqueIndex:idx_group_members_group_user" json:"user_id"`
	JoinedAt time.Time `gorm:"type:timestamp;autoCreateTime" json:"joined_at"`

	Group *RecipeGroup `gorm:"foreignKey:GroupID"`
	User  *User        `gorm:"foreignKey:UserID"`
}

// GroupRecipe links a recipe into a group and records which member shared it.
type GroupRecipe struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	GroupID  uuid.UUID `gorm:"uniqueIndex:idx_group_recipes_group_recipe" json:"group_id"`
	RecipeID uuid.UUID `gorm:"uniqueIndex:idx_group_recipes_group_recipe" json:"recipe_id"`
	AddedBy  uuid.UUID `json:"added_by"`
	AddedAt  time.Time `gorm:"type:timestamp;autoCreateTime" json:"added_at"`

	Group  *RecipeGroup `gorm:"foreignKey:GroupID"`
	Recipe *Recipe      `gorm:"foreignKey:RecipeID"`
	User   *User        `gorm:"foreignKey:AddedBy"`
}

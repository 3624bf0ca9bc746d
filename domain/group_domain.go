package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetGroups         = "success get groups"
	MessageSuccessGetGroupDetail    = "success get group detail"
	MessageSuccessCreateGroup       = "group created successfully"
	MessageSuccessUpdateGroup       = "group updated successfully"
	MessageSuccessDeleteGroup       = "group deleted successfully"
	MessageSuccessAddMember         = "member added successfully"
	MessageSuccessRemoveMember      = "member removed successfully"
	MessageSuccessGetGroupRecipes   = "success get group recipes"
	MessageSuccessAddGroupRecipe    = "recipe added to group successfully"
	MessageSuccessRemoveGroupRecipe = "recipe removed from group successfully"

	MessageFailedGetGroups         = "failed to get groups"
	MessageFailedGetGroupDetail    = "failed to get group detail"
	MessageFailedCreateGroup       = "failed to create group"
	MessageFailedUpdateGroup       = "failed to update group"
	MessageFailedDeleteGroup       = "failed to delete group"
	MessageFailedAddMember         = "failed to add member"
	MessageFailedRemoveMember      = "failed to remove member"
	MessageFailedGetGroupRecipes   = "failed to get group recipes"
	MessageFailedAddGroupRecipe    = "failed to add recipe to group"
	MessageFailedRemoveGroupRecipe = "failed to remove recipe from group"

	ErrGroupNotFound        = errors.New("group not found")
	ErrOnlyGroupOwner       = errors.New("only the group owner can do this")
	ErrNotGroupMember       = errors.New("you are not a member of this group")
	ErrAlreadyGroupMember   = errors.New("user is already a member of this group")
	ErrGroupFull            = errors.New("group has reached its member limit")
	ErrOwnerCannotLeave     = errors.New("the group owner cannot be removed")
	ErrRecipeAlreadyInGroup = errors.New("recipe is already in this group")
	ErrRecipeNotInGroup     = errors.New("recipe is not in this group")
)

type (
	CreateGroupRequest struct {
		Name        string `json:"name" validate:"required,min=3,max=100"`
		Description string `json:"description,omitempty"`
		MaxMembers  int    `json:"max_members,omitempty" validate:"omitempty,min=2"`
	}

	UpdateGroupRequest struct {
		Name        *string `json:"name,omitempty" validate:"omitempty,min=3,max=100"`
		Description *string `json:"description,omitempty"`
		MaxMembers  *int    `json:"max_members,omitempty" validate:"omitempty,min=2"`
	}

	AddMemberRequest struct {
		UserID string `json:"user_id" validate:"required,uuid"`
	}

	GroupMemberInfo struct {
		UserID   string    `json:"user_id"`
		Username string    `json:"username,omitempty"`
		JoinedAt time.Time `json:"joined_at"`
		IsOwner  bool      `json:"is_owner"`
	}

	GroupResponse struct {
		ID          string            `json:"group_id"`
		Name        string            `json:"name"`
		Description string            `json:"description,omitempty"`
		OwnerID     string            `json:"owner_id"`
		MaxMembers  int               `json:"max_members,omitempty"`
		Members     []GroupMemberInfo `json:"members,omitempty"`
		MemberCount int               `json:"member_count"`
		CreatedAt   time.Time         `json:"created_at"`
	}

	GroupRecipeResponse struct {
		RecipeResponse
		AddedBy string    `json:"added_by"`
		AddedAt time.Time `json:"added_at"`
	}
)

package group

import (
	"context"

	"recipe-room-backend/entities"

	"gorm.io/gorm"
)

type (
	GroupRepository interface {
		CreateGroup(ctx context.Context, group *entities.RecipeGroup, owner *entities.GroupMember) error
		GetGroupByID(ctx context.Context, id string) (*entities.RecipeGroup, error)
		GetGroupsByMember(ctx context.Context, userID string) ([]*entities.RecipeGroup, error)
		UpdateGroup(ctx context.Context, group *entities.RecipeGroup) error
		DeleteGroup(ctx context.Context, groupID string) error

		IsMember(ctx context.Context, groupID, userID string) (bool, error)
		CountMembers(ctx context.Context, groupID string) (int64, error)
		AddMember(ctx context.Context, member *entities.GroupMember) error
		RemoveMember(ctx context.Context, groupID, userID string) (bool, error)

		GetGroupRecipes(ctx context.Context, groupID string) ([]*entities.GroupRecipe, error)
		HasRecipe(ctx context.Context, groupID, recipeID string) (bool, error)
		AddRecipe(ctx context.Context, groupRecipe *entities.GroupRecipe) error
		RemoveRecipe(ctx context.Context, groupID, recipeID string) (bool, error)
	}

	groupRepository struct {
		db *gorm.DB
	}
)

func NewGroupRepository(db *gorm.DB) GroupRepository {
	return &groupRepository{db: db}
}

func (r *groupRepository) CreateGroup(ctx context.Context, group *entities.RecipeGroup, owner *entities.GroupMember) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(group).Error; err != nil {
			return err
		}
		owner.GroupID = group.ID
		return tx.Create(owner).Error
	})
}

func (r *groupRepository) GetGroupByID(ctx context.Context, id string) (*entities.RecipeGroup, error) {
	var group entities.RecipeGroup
	if err := r.db.WithContext(ctx).
		Preload("Members").
		Preload("Members.User").
		Where("id = ?", id).
		First(&group).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *groupRepository) GetGroupsByMember(ctx context.Context, userID string) ([]*entities.RecipeGroup, error) {
	var groups []*entities.RecipeGroup
	if err := r.db.WithContext(ctx).
		Preload("Members").
		Joins("JOIN group_members ON group_members.group_id = recipe_groups.id").
		Where("group_members.user_id = ?", userID).
		Order("recipe_groups.created_at desc").
		Find(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}

func (r *groupRepository) UpdateGroup(ctx context.Context, group *entities.RecipeGroup) error {
	return r.db.WithContext(ctx).Save(group).Error
}

// DeleteGroup removes the group row together with its membership and
// recipe-sharing associations. Shared recipes themselves are untouched.
func (r *groupRepository) DeleteGroup(ctx context.Context, groupID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("group_id = ?", groupID).Delete(&entities.GroupRecipe{}).Error; err != nil {
			return err
		}
		if err := tx.Where("group_id = ?", groupID).Delete(&entities.GroupMember{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", groupID).Delete(&entities.RecipeGroup{}).Error
	})
}

func (r *groupRepository) IsMember(ctx context.Context, groupID, userID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.GroupMember{}).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *groupRepository) CountMembers(ctx context.Context, groupID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.GroupMember{}).
		Where("group_id = ?", groupID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *groupRepository) AddMember(ctx context.Context, member *entities.GroupMember) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *groupRepository) RemoveMember(ctx context.Context, groupID, userID string) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Delete(&entities.GroupMember{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *groupRepository) GetGroupRecipes(ctx context.Context, groupID string) ([]*entities.GroupRecipe, error) {
	var groupRecipes []*entities.GroupRecipe
	if err := r.db.WithContext(ctx).
		Preload("Recipe").
		Preload("Recipe.Owner").
		Joins("JOIN recipes ON recipes.id = group_recipes.recipe_id").
		Where("group_recipes.group_id = ? AND recipes.status = ?", groupID, entities.RecipeStatusActive).
		Order("group_recipes.added_at desc").
		Find(&groupRecipes).Error; err != nil {
		return nil, err
	}
	return groupRecipes, nil
}

func (r *groupRepository) HasRecipe(ctx context.Context, groupID, recipeID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.GroupRecipe{}).
		Where("group_id = ? AND recipe_id = ?", groupID, recipeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *groupRepository) AddRecipe(ctx context.Context, groupRecipe *entities.GroupRecipe) error {
	return r.db.WithContext(ctx).Create(groupRecipe).Error
}

func (r *groupRepository) RemoveRecipe(ctx context.Context, groupID, recipeID string) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("group_id = ? AND recipe_id = ?", groupID, recipeID).
		Delete(&entities.GroupRecipe{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

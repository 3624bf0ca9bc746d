package group

import (
	"context"
	"encoding/json"
	"errors"

	"recipe-room-backend/domain"
	"recipe-room-backend/entities"
	"recipe-room-backend/pkg/recipe"
	"recipe-room-backend/pkg/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	GroupService interface {
		CreateGroup(ctx context.Context, req domain.CreateGroupRequest, userID string) (domain.GroupResponse, error)
		GetUserGroups(ctx context.Context, userID string) ([]domain.GroupResponse, error)
		GetGroupByID(ctx context.Context, groupID string, userID string) (domain.GroupResponse, error)
		UpdateGroup(ctx context.Context, groupID string, req domain.UpdateGroupRequest, userID string) (domain.GroupResponse, error)
		DeleteGroup(ctx context.Context, groupID string, userID string) error
		AddMember(ctx context.Context, groupID string, req domain.AddMemberRequest, userID string) error
		RemoveMember(ctx context.Context, groupID, targetUserID, userID string) error
		GetGroupRecipes(ctx context.Context, groupID string, userID string) ([]domain.GroupRecipeResponse, error)
		AddRecipeToGroup(ctx context.Context, groupID, recipeID, userID string) error
		RemoveRecipeFromGroup(ctx context.Context, groupID, recipeID, userID string) error
	}

	groupService struct {
		groupRepository  GroupRepository
		recipeRepository recipe.RecipeRepository
		userRepository   user.UserRepository
	}
)

func NewGroupService(groupRepository GroupRepository, recipeRepository recipe.RecipeRepository, userRepository user.UserRepository) GroupService {
	return &groupService{
		groupRepository:  groupRepository,
		recipeRepository: recipeRepository,
		userRepository:   userRepository,
	}
}

func toGroupResponse(group *entities.RecipeGroup) domain.GroupResponse {
	res := domain.GroupResponse{
		ID:          group.ID.String(),
		Name:        group.Name,
		Description: group.Description,
		OwnerID:     group.OwnerID.String(),
		MaxMembers:  group.MaxMembers,
		MemberCount: len(group.Members),
		CreatedAt:   group.CreatedAt,
	}

	for _, member := range group.Members {
		info := domain.GroupMemberInfo{
			UserID:   member.UserID.String(),
			JoinedAt: member.JoinedAt,
			IsOwner:  member.UserID == group.OwnerID,
		}
		if member.User != nil {
			info.Username = member.User.Username
		}
		res.Members = append(res.Members, info)
	}

	return res
}

func (s *groupService) getGroup(ctx context.Context, groupID string) (*entities.RecipeGroup, error) {
	group, err := s.groupRepository.GetGroupByID(ctx, groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrGroupNotFound
		}
		return nil, err
	}
	return group, nil
}

func (s *groupService) requireMember(ctx context.Context, groupID, userID string) error {
	isMember, err := s.groupRepository.IsMember(ctx, groupID, userID)
	if err != nil {
		return err
	}
	if !isMember {
		return domain.ErrNotGroupMember
	}
	return nil
}

func (s *groupService) CreateGroup(ctx context.Context, req domain.CreateGroupRequest, userID string) (domain.GroupResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.GroupResponse{}, domain.ErrParseUUID
	}

	group := &entities.RecipeGroup{
		ID:          uuid.New(),
		OwnerID:     userUUID,
		Name:        req.Name,
		Description: req.Description,
		MaxMembers:  req.MaxMembers,
	}

	// The owner is always a member of their own group
	owner := &entities.GroupMember{
		ID:     uuid.New(),
		UserID: userUUID,
	}

	if err := s.groupRepository.CreateGroup(ctx, group, owner); err != nil {
		return domain.GroupResponse{}, err
	}

	group.Members = []*entities.GroupMember{owner}
	return toGroupResponse(group), nil
}

func (s *groupService) GetUserGroups(ctx context.Context, userID string) ([]domain.GroupResponse, error) {
	groups, err := s.groupRepository.GetGroupsByMember(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.GroupResponse, 0, len(groups))
	for _, group := range groups {
		result = append(result, toGroupResponse(group))
	}
	return result, nil
}

func (s *groupService) GetGroupByID(ctx context.Context, groupID string, userID string) (domain.GroupResponse, error) {
	group, err := s.getGroup(ctx, groupID)
	if err != nil {
		return domain.GroupResponse{}, err
	}

	if err := s.requireMember(ctx, groupID, userID); err != nil {
		return domain.GroupResponse{}, err
	}

	return toGroupResponse(group), nil
}

func (s *groupService) UpdateGroup(ctx context.Context, groupID string, req domain.UpdateGroupRequest, userID string) (domain.GroupResponse, error) {
	group, err := s.getGroup(ctx, groupID)
	if err != nil {
		return domain.GroupResponse{}, err
	}

	if group.OwnerID.String() != userID {
		return domain.GroupResponse{}, domain.ErrOnlyGroupOwner
	}

	if req.Name != nil {
		group.Name = *req.Name
	}
	if req.Description != nil {
		group.Description = *req.Description
	}
	if req.MaxMembers != nil {
		group.MaxMembers = *req.MaxMembers
	}

	if err := s.groupRepository.UpdateGroup(ctx, group); err != nil {
		return domain.GroupResponse{}, err
	}

	return toGroupResponse(group), nil
}

func (s *groupService) DeleteGroup(ctx context.Context, groupID string, userID string) error {
	group, err := s.getGroup(ctx, groupID)
	if err != nil {
		return err
	}

	if group.OwnerID.String() != userID {
		return domain.ErrOnlyGroupOwner
	}

	return s.groupRepository.DeleteGroup(ctx, groupID)
}

func (s *groupService) AddMember(ctx context.Context, groupID string, req domain.AddMemberRequest, userID string) error {
	group, err := s.getGroup(ctx, groupID)
	if err != nil {
		return err
	}

	if group.OwnerID.String() != userID {
		return domain.ErrOnlyGroupOwner
	}

	if _, err := s.userRepository.GetUserByID(ctx, req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	isMember, err := s.groupRepository.IsMember(ctx, groupID, req.UserID)
	if err != nil {
		return err
	}
	if isMember {
		return domain.ErrAlreadyGroupMember
	}

	if group.MaxMembers > 0 {
		count, err := s.groupRepository.CountMembers(ctx, groupID)
		if err != nil {
			return err
		}
		if count >= int64(group.MaxMembers) {
			return domain.ErrGroupFull
		}
	}

	memberUUID, err := uuid.Parse(req.UserID)
	if err != nil {
		return domain.ErrParseUUID
	}

	member := &entities.GroupMember{
		ID:      uuid.New(),
		GroupID: group.ID,
		UserID:  memberUUID,
	}
	return s.groupRepository.AddMember(ctx, member)
}

func (s *groupService) RemoveMember(ctx context.Context, groupID, targetUserID, userID string) error {
	group, err := s.getGroup(ctx, groupID)
	if err != nil {
		return err
	}

	if group.OwnerID.String() != userID {
		return domain.ErrOnlyGroupOwner
	}

	if group.OwnerID.String() == targetUserID {
		return domain.ErrOwnerCannotLeave
	}

	removed, err := s.groupRepository.RemoveMember(ctx, groupID, targetUserID)
	if err != nil {
		return err
	}
	if !removed {
		return domain.ErrNotGroupMember
	}
	return nil
}

func (s *groupService) GetGroupRecipes(ctx context.Context, groupID string, userID string) ([]domain.GroupRecipeResponse, error) {
	if _, err := s.getGroup(ctx, groupID); err != nil {
		return nil, err
	}

	if err := s.requireMember(ctx, groupID, userID); err != nil {
		return nil, err
	}

	groupRecipes, err := s.groupRepository.GetGroupRecipes(ctx, groupID)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(groupRecipes))
	for _, gr := range groupRecipes {
		ids = append(ids, gr.RecipeID)
	}
	stats, err := s.recipeRepository.GetRatingStats(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make([]domain.GroupRecipeResponse, 0, len(groupRecipes))
	for _, gr := range groupRecipes {
		if gr.Recipe == nil {
			continue
		}

		var ingredients []domain.Ingredient
		var procedure []domain.ProcedureStep
		_ = json.Unmarshal([]byte(gr.Recipe.Ingredients), &ingredients)
		_ = json.Unmarshal([]byte(gr.Recipe.Procedure), &procedure)

		item := domain.GroupRecipeResponse{
			RecipeResponse: domain.RecipeResponse{
				ID:            gr.Recipe.ID.String(),
				Title:         gr.Recipe.Title,
				Description:   gr.Recipe.Description,
				Country:       gr.Recipe.Country,
				Ingredients:   ingredients,
				Procedure:     procedure,
				PeopleServed:  gr.Recipe.PeopleServed,
				PrepTime:      gr.Recipe.PrepTimeMinutes,
				CookTime:      gr.Recipe.CookTimeMinutes,
				ImageURL:      gr.Recipe.ImageURL,
				AverageRating: stats[gr.RecipeID].Average,
				RatingCount:   stats[gr.RecipeID].Count,
				CreatedAt:     gr.Recipe.CreatedAt,
				UpdatedAt:     gr.Recipe.UpdatedAt,
			},
			AddedBy: gr.AddedBy.String(),
			AddedAt: gr.AddedAt,
		}
		if gr.Recipe.Owner != nil {
			item.Owner = &domain.UserProfile{
				ID:       gr.Recipe.Owner.ID.String(),
				Username: gr.Recipe.Owner.Username,
				ImageURL: gr.Recipe.Owner.ImageURL,
			}
		}
		result = append(result, item)
	}

	return result, nil
}

// AddRecipeToGroup is open to every member, not just the owner, so curation
// stays collaborative.
func (s *groupService) AddRecipeToGroup(ctx context.Context, groupID, recipeID, userID string) error {
	group, err := s.getGroup(ctx, groupID)
	if err != nil {
		return err
	}

	if err := s.requireMember(ctx, groupID, userID); err != nil {
		return err
	}

	if _, err := s.recipeRepository.GetRecipeByID(ctx, recipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	exists, err := s.groupRepository.HasRecipe(ctx, groupID, recipeID)
	if err != nil {
		return err
	}
	if exists {
		return domain.ErrRecipeAlreadyInGroup
	}

	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return domain.ErrParseUUID
	}
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	groupRecipe := &entities.GroupRecipe{
		ID:       uuid.New(),
		GroupID:  group.ID,
		RecipeID: recipeUUID,
		AddedBy:  userUUID,
	}
	return s.groupRepository.AddRecipe(ctx, groupRecipe)
}

// RemoveRecipeFromGroup deletes the association row only, never the recipe.
func (s *groupService) RemoveRecipeFromGroup(ctx context.Context, groupID, recipeID, userID string) error {
	if _, err := s.getGroup(ctx, groupID); err != nil {
		return err
	}

	if err := s.requireMember(ctx, groupID, userID); err != nil {
		return err
	}

	removed, err := s.groupRepository.RemoveRecipe(ctx, groupID, recipeID)
	if err != nil {
		return err
	}
	if !removed {
		return domain.ErrRecipeNotInGroup
	}
	return nil
}

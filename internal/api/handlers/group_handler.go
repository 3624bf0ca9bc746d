package handlers

import (
	"recipe-room-backend/domain"
	"recipe-room-backend/internal/api/presenters"
	"recipe-room-backend/pkg/group"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	GroupHandler interface {
		GetUserGroups(c *fiber.Ctx) error
		GetGroupByID(c *fiber.Ctx) error
		CreateGroup(c *fiber.Ctx) error
		UpdateGroup(c *fiber.Ctx) error
		DeleteGroup(c *fiber.Ctx) error
		AddMember(c *fiber.Ctx) error
		RemoveMember(c *fiber.Ctx) error
		GetGroupRecipes(c *fiber.Ctx) error
		AddRecipeToGroup(c *fiber.Ctx) error
		RemoveRecipeFromGroup(c *fiber.Ctx) error
	}

	groupHandler struct {
		groupService group.GroupService
		validator    *validator.Validate
	}
)

func NewGroupHandler(groupService group.GroupService, validator *validator.Validate) GroupHandler {
	return &groupHandler{
		groupService: groupService,
		validator:    validator,
	}
}

func (h *groupHandler) GetUserGroups(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.groupService.GetUserGroups(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetGroups, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"groups": res}, fiber.StatusOK, domain.MessageSuccessGetGroups)
}

func (h *groupHandler) GetGroupByID(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	groupID := c.Params("id")

	res, err := h.groupService.GetGroupByID(c.Context(), groupID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetGroupDetail, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"group": res}, fiber.StatusOK, domain.MessageSuccessGetGroupDetail)
}

func (h *groupHandler) CreateGroup(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateGroupRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateGroup, err)
	}

	res, err := h.groupService.CreateGroup(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedCreateGroup, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"group": res}, fiber.StatusCreated, domain.MessageSuccessCreateGroup)
}

func (h *groupHandler) UpdateGroup(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	groupID := c.Params("id")
	req := new(domain.UpdateGroupRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateGroup, err)
	}

	res, err := h.groupService.UpdateGroup(c.Context(), groupID, *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedUpdateGroup, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"group": res}, fiber.StatusOK, domain.MessageSuccessUpdateGroup)
}

func (h *groupHandler) DeleteGroup(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	groupID := c.Params("id")

	if err := h.groupService.DeleteGroup(c.Context(), groupID, userID); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedDeleteGroup, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteGroup)
}

func (h *groupHandler) AddMember(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	groupID := c.Params("id")
	req := new(domain.AddMemberRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddMember, err)
	}

	if err := h.groupService.AddMember(c.Context(), groupID, *req, userID); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedAddMember, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusCreated, domain.MessageSuccessAddMember)
}

func (h *groupHandler) RemoveMember(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	groupID := c.Params("id")
	targetUserID := c.Params("user_id")

	if err := h.groupService.RemoveMember(c.Context(), groupID, targetUserID, userID); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedRemoveMember, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRemoveMember)
}

func (h *groupHandler) GetGroupRecipes(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	groupID := c.Params("id")

	res, err := h.groupService.GetGroupRecipes(c.Context(), groupID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetGroupRecipes, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"recipes": res}, fiber.StatusOK, domain.MessageSuccessGetGroupRecipes)
}

func (h *groupHandler) AddRecipeToGroup(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	groupID := c.Params("id")
	recipeID := c.Params("recipe_id")

	if err := h.groupService.AddRecipeToGroup(c.Context(), groupID, recipeID, userID); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedAddGroupRecipe, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusCreated, domain.MessageSuccessAddGroupRecipe)
}

func (h *groupHandler) RemoveRecipeFromGroup(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	groupID := c.Params("id")
	recipeID := c.Params("recipe_id")

	if err := h.groupService.RemoveRecipeFromGroup(c.Context(), groupID, recipeID, userID); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedRemoveGroupRecipe, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRemoveGroupRecipe)
}

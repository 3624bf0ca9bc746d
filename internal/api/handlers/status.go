package handlers

import (
	"errors"
	"strconv"

	"recipe-room-backend/domain"
	"recipe-room-backend/internal/utils/storage"

	"github.com/gofiber/fiber/v2"
)

// statusFor maps domain errors onto HTTP status codes. Anything unknown is a
// server error so persistence failures never leak as client faults.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrRecipeNotFound),
		errors.Is(err, domain.ErrGroupNotFound),
		errors.Is(err, domain.ErrCommentNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrBookmarkNotFound),
		errors.Is(err, domain.ErrPaymentNotFound),
		errors.Is(err, domain.ErrRecipeNotInGroup):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrUnauthorizedRecipeAccess),
		errors.Is(err, domain.ErrOnlyOwnerCanDelete),
		errors.Is(err, domain.ErrOnlyGroupOwner),
		errors.Is(err, domain.ErrNotGroupMember),
		errors.Is(err, domain.ErrNotCommentAuthor),
		errors.Is(err, domain.ErrOwnerCannotLeave):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrCredentialsInvalid):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrInvalidRatingValue),
		errors.Is(err, domain.ErrEmailAlreadyUsed),
		errors.Is(err, domain.ErrUsernameTaken),
		errors.Is(err, domain.ErrAlreadyGroupMember),
		errors.Is(err, domain.ErrGroupFull),
		errors.Is(err, domain.ErrRecipeAlreadyInGroup),
		errors.Is(err, domain.ErrInvalidPaymentAmount),
		errors.Is(err, domain.ErrImageRequired),
		errors.Is(err, storage.ErrFileTypeNotAllowed),
		errors.Is(err, domain.ErrParseUUID):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// parsePagination reads page/per_page query params with the capped page size.
func parsePagination(c *fiber.Ctx) (int, int) {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("per_page", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}
	if limit > domain.MaxPerPage {
		limit = domain.MaxPerPage
	}

	return page, limit
}

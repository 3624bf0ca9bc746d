package handlers

import (
	"errors"
	"testing"

	"recipe-room-backend/domain"
	"recipe-room-backend/internal/utils/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestStatusForMapsDomainErrors(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{domain.ErrRecipeNotFound, fiber.StatusNotFound},
		{domain.ErrBookmarkNotFound, fiber.StatusNotFound},
		{domain.ErrOnlyOwnerCanDelete, fiber.StatusForbidden},
		{domain.ErrNotGroupMember, fiber.StatusForbidden},
		{domain.ErrCredentialsInvalid, fiber.StatusUnauthorized},
		{domain.ErrInvalidRatingValue, fiber.StatusBadRequest},
		{domain.ErrGroupFull, fiber.StatusBadRequest},
		{storage.ErrFileTypeNotAllowed, fiber.StatusBadRequest},
		{errors.New("connection reset"), fiber.StatusInternalServerError},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.status, statusFor(tc.err), "error %v", tc.err)
	}
}

package handlers

import (
	"recipe-room-backend/domain"
	"recipe-room-backend/internal/api/presenters"
	"recipe-room-backend/pkg/payment"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	PaymentHandler interface {
		InitiatePayment(c *fiber.Ctx) error
		MidtransWebhook(c *fiber.Ctx) error
	}

	paymentHandler struct {
		paymentService payment.PaymentService
		validator      *validator.Validate
	}
)

func NewPaymentHandler(paymentService payment.PaymentService, validator *validator.Validate) PaymentHandler {
	return &paymentHandler{
		paymentService: paymentService,
		validator:      validator,
	}
}

func (h *paymentHandler) InitiatePayment(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.InitiatePaymentRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedInitiatePayment, err)
	}

	res, err := h.paymentService.InitiatePayment(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedInitiatePayment, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessInitiatePayment)
}

func (h *paymentHandler) MidtransWebhook(c *fiber.Ctx) error {
	notification := new(domain.PaymentNotification)

	if err := c.BodyParser(notification); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.paymentService.HandleNotification(c.Context(), *notification); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedPaymentWebhook, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessPaymentWebhook)
}

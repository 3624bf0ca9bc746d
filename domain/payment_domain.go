package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessInitiatePayment = "payment initiated successfully"
	MessageSuccessPaymentWebhook  = "payment notification processed"

	MessageFailedInitiatePayment = "failed to initiate payment"
	MessageFailedPaymentWebhook  = "failed to process payment notification"

	ErrPaymentFailed        = errors.New("payment gateway rejected the transaction")
	ErrPaymentNotFound      = errors.New("payment transaction not found")
	ErrInvalidPaymentAmount = errors.New("payment amount must be positive")
)

// Payment transaction statuses.
const (
	PaymentStatusPending    = "pending"
	PaymentStatusSettlement = "settlement"
	PaymentStatusFailed     = "failed"
)

type (
	InitiatePaymentRequest struct {
		Amount      int64  `json:"amount" validate:"required,min=1"`
		PhoneNumber string `json:"phone_number" validate:"required"`
		Currency    string `json:"currency,omitempty"`
	}

	InitiatePaymentResponse struct {
		OrderID    string `json:"order_id"`
		InvoiceURL string `json:"invoice_url"`
		Status     string `json:"status"`
	}

	PaymentNotification struct {
		OrderID           string `json:"order_id"`
		TransactionStatus string `json:"transaction_status"`
		FraudStatus       string `json:"fraud_status,omitempty"`
	}

	PaymentTransactionResponse struct {
		OrderID   string    `json:"order_id"`
		Amount    int64     `json:"amount"`
		Currency  string    `json:"currency"`
		Status    string    `json:"status"`
		CreatedAt time.Time `json:"created_at"`
	}
)

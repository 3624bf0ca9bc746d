package entities

import (
	"github.com/google/uuid"
)

type PaymentTransaction struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	OrderID     string    `gorm:"uniqueIndex" json:"order_id"`
	Amount      int64     `json:"amount"`
	Currency    string    `json:"currency"`
	PhoneNumber string    `json:"phone_number,omitempty"`
	Status      string    `json:"status"` // pending, settlement, failed
	InvoiceURL  string    `json:"invoice_url,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}

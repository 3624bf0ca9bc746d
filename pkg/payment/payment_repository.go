package payment

import (
	"context"

	"recipe-room-backend/entities"

	"gorm.io/gorm"
)

type (
	PaymentRepository interface {
		CreateTransaction(ctx context.Context, transaction *entities.PaymentTransaction) error
		GetTransactionByOrderID(ctx context.Context, orderID string) (*entities.PaymentTransaction, error)
		UpdateTransaction(ctx context.Context, transaction *entities.PaymentTransaction) error
	}

	paymentRepository struct {
		db *gorm.DB
	}
)

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) CreateTransaction(ctx context.Context, transaction *entities.PaymentTransaction) error {
	return r.db.WithContext(ctx).Create(transaction).Error
}

func (r *paymentRepository) GetTransactionByOrderID(ctx context.Context, orderID string) (*entities.PaymentTransaction, error) {
	var transaction entities.PaymentTransaction
	if err := r.db.WithContext(ctx).Where("order_id = ?", orderID).First(&transaction).Error; err != nil {
		return nil, err
	}
	return &transaction, nil
}

func (r *paymentRepository) UpdateTransaction(ctx context.Context, transaction *entities.PaymentTransaction) error {
	return r.db.WithContext(ctx).Save(transaction).Error
}

package payment

import (
	"context"
	"errors"
	"fmt"
	"os"

	"recipe-room-backend/domain"
	"recipe-room-backend/entities"
	"recipe-room-backend/pkg/user"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"gorm.io/gorm"
)

type (
	// SnapClient is the slice of the midtrans snap client this service needs.
	SnapClient interface {
		CreateTransaction(req *snap.Request) (*snap.Response, *midtrans.Error)
	}

	PaymentService interface {
		InitiatePayment(ctx context.Context, req domain.InitiatePaymentRequest, userID string) (domain.InitiatePaymentResponse, error)
		HandleNotification(ctx context.Context, notification domain.PaymentNotification) error
	}

	paymentService struct {
		paymentRepository PaymentRepository
		userRepository    user.UserRepository
		snapClient        SnapClient
	}
)

func NewSnapClient() SnapClient {
	env := midtrans.Sandbox
	if os.Getenv("IS_PROD") == "true" {
		env = midtrans.Production
	}

	client := &snap.Client{}
	client.New(os.Getenv("SERVER_KEY"), env)
	return client
}

func NewPaymentService(paymentRepository PaymentRepository, userRepository user.UserRepository, snapClient SnapClient) PaymentService {
	return &paymentService{
		paymentRepository: paymentRepository,
		userRepository:    userRepository,
		snapClient:        snapClient,
	}
}

func (s *paymentService) InitiatePayment(ctx context.Context, req domain.InitiatePaymentRequest, userID string) (domain.InitiatePaymentResponse, error) {
	if req.Amount <= 0 {
		return domain.InitiatePaymentResponse{}, domain.ErrInvalidPaymentAmount
	}

	payer, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.InitiatePaymentResponse{}, domain.ErrUserNotFound
		}
		return domain.InitiatePaymentResponse{}, err
	}

	currency := req.Currency
	if currency == "" {
		currency = "KES"
	}

	orderID := fmt.Sprintf("RR-%s", uuid.New().String())

	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: req.Amount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: payer.Username,
			Email: payer.Email,
			Phone: req.PhoneNumber,
		},
	}

	snapResp, snapErr := s.snapClient.CreateTransaction(snapReq)
	if snapErr != nil {
		return domain.InitiatePaymentResponse{}, domain.ErrPaymentFailed
	}

	transaction := &entities.PaymentTransaction{
		ID:          uuid.New(),
		UserID:      payer.ID,
		OrderID:     orderID,
		Amount:      req.Amount,
		Currency:    currency,
		PhoneNumber: req.PhoneNumber,
		Status:      domain.PaymentStatusPending,
		InvoiceURL:  snapResp.RedirectURL,
	}

	if err := s.paymentRepository.CreateTransaction(ctx, transaction); err != nil {
		return domain.InitiatePaymentResponse{}, err
	}

	return domain.InitiatePaymentResponse{
		OrderID:    orderID,
		InvoiceURL: snapResp.RedirectURL,
		Status:     transaction.Status,
	}, nil
}

func (s *paymentService) HandleNotification(ctx context.Context, notification domain.PaymentNotification) error {
	transaction, err := s.paymentRepository.GetTransactionByOrderID(ctx, notification.OrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrPaymentNotFound
		}
		return err
	}

	switch notification.TransactionStatus {
	case "capture", "settlement":
		transaction.Status = domain.PaymentStatusSettlement
	case "deny", "cancel", "expire", "failure":
		transaction.Status = domain.PaymentStatusFailed
	default:
		transaction.Status = domain.PaymentStatusPending
	}

	return s.paymentRepository.UpdateTransaction(ctx, transaction)
}

package payment

import (
	"context"
	"testing"

	"recipe-room-backend/domain"
	"recipe-room-backend/entities"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakePaymentRepository struct {
	transactions map[string]*entities.PaymentTransaction
}

func (f *fakePaymentRepository) CreateTransaction(_ context.Context, transaction *entities.PaymentTransaction) error {
	f.transactions[transaction.OrderID] = transaction
	return nil
}

func (f *fakePaymentRepository) GetTransactionByOrderID(_ context.Context, orderID string) (*entities.PaymentTransaction, error) {
	transaction, ok := f.transactions[orderID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return transaction, nil
}

func (f *fakePaymentRepository) UpdateTransaction(_ context.Context, transaction *entities.PaymentTransaction) error {
	f.transactions[transaction.OrderID] = transaction
	return nil
}

type fakeUserRepository struct {
	users map[uuid.UUID]*entities.User
}

func (f *fakeUserRepository) CreateUser(_ context.Context, user *entities.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepository) GetUserByID(_ context.Context, id string) (*entities.User, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	user, ok := f.users[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (f *fakeUserRepository) GetUserByEmail(_ context.Context, email string) (*entities.User, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) GetUserByUsername(_ context.Context, username string) (*entities.User, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) UpdateUser(_ context.Context, user *entities.User) error {
	f.users[user.ID] = user
	return nil
}

type fakeSnapClient struct {
	response *snap.Response
	err      *midtrans.Error
}

func (f *fakeSnapClient) CreateTransaction(req *snap.Request) (*snap.Response, *midtrans.Error) {
	return f.response, f.err
}

func newPaymentFixture(client SnapClient) (PaymentService, *fakePaymentRepository, uuid.UUID) {
	paymentRepo := &fakePaymentRepository{transactions: map[string]*entities.PaymentTransaction{}}
	userRepo := &fakeUserRepository{users: map[uuid.UUID]*entities.User{}}

	userID := uuid.New()
	userRepo.users[userID] = &entities.User{
		ID:       userID,
		Username: "wanjiku",
		Email:    "wanjiku@example.com",
	}

	return NewPaymentService(paymentRepo, userRepo, client), paymentRepo, userID
}

func TestInitiatePayment(t *testing.T) {
	client := &fakeSnapClient{response: &snap.Response{RedirectURL: "https://pay.test/invoice/1"}}
	service, repo, userID := newPaymentFixture(client)

	res, err := service.InitiatePayment(context.Background(), domain.InitiatePaymentRequest{
		Amount:      2500,
		PhoneNumber: "+254712345678",
	}, userID.String())
	require.NoError(t, err)
	assert.Equal(t, "https://pay.test/invoice/1", res.InvoiceURL)
	assert.Equal(t, domain.PaymentStatusPending, res.Status)

	transaction, ok := repo.transactions[res.OrderID]
	require.True(t, ok)
	assert.Equal(t, int64(2500), transaction.Amount)
	assert.Equal(t, "KES", transaction.Currency)
}

func TestInitiatePaymentInvalidAmount(t *testing.T) {
	service, _, userID := newPaymentFixture(&fakeSnapClient{})

	_, err := service.InitiatePayment(context.Background(), domain.InitiatePaymentRequest{Amount: 0}, userID.String())
	assert.ErrorIs(t, err, domain.ErrInvalidPaymentAmount)
}

func TestInitiatePaymentGatewayFailure(t *testing.T) {
	client := &fakeSnapClient{err: &midtrans.Error{Message: "gateway down"}}
	service, repo, userID := newPaymentFixture(client)

	_, err := service.InitiatePayment(context.Background(), domain.InitiatePaymentRequest{
		Amount:      1000,
		PhoneNumber: "+254712345678",
	}, userID.String())
	assert.ErrorIs(t, err, domain.ErrPaymentFailed)
	assert.Empty(t, repo.transactions)
}

func TestHandleNotificationTransitions(t *testing.T) {
	client := &fakeSnapClient{response: &snap.Response{RedirectURL: "https://pay.test/invoice/2"}}
	service, repo, userID := newPaymentFixture(client)

	res, err := service.InitiatePayment(context.Background(), domain.InitiatePaymentRequest{
		Amount:      1500,
		PhoneNumber: "+254712345678",
	}, userID.String())
	require.NoError(t, err)

	require.NoError(t, service.HandleNotification(context.Background(), domain.PaymentNotification{
		OrderID:           res.OrderID,
		TransactionStatus: "settlement",
	}))
	assert.Equal(t, domain.PaymentStatusSettlement, repo.transactions[res.OrderID].Status)

	require.NoError(t, service.HandleNotification(context.Background(), domain.PaymentNotification{
		OrderID:           res.OrderID,
		TransactionStatus: "expire",
	}))
	assert.Equal(t, domain.PaymentStatusFailed, repo.transactions[res.OrderID].Status)
}

func TestHandleNotificationUnknownOrder(t *testing.T) {
	service, _, _ := newPaymentFixture(&fakeSnapClient{})

	err := service.HandleNotification(context.Background(), domain.PaymentNotification{
		OrderID:           "RR-missing",
		TransactionStatus: "settlement",
	})
	assert.ErrorIs(t, err, domain.ErrPaymentNotFound)
}

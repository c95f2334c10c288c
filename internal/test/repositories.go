package test

import (
	"context"
	"sort"
	"time"

	domainErrors "github.com/skobelin/paytrack/internal/domain/errors"
	"github.com/skobelin/paytrack/internal/domain/model"
	"github.com/skobelin/paytrack/internal/domain/repository"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Create registers user unless the email is taken or an error is forced.
func (s *UserRepositoryStub) Create(ctx context.Context, name, email string, role model.UserRole, passwordHash string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, exists := s.Users[email]; exists {
		return nil, domainErrors.ErrEmailInUse
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user := &model.User{ID: s.Next, Name: name, Email: email, Role: role, PasswordHash: passwordHash, CreatedAt: time.Now()}
	s.Next++
	s.Users[email] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// OrderRepositoryStub keeps orders in-memory and allows overrides per call.
type OrderRepositoryStub struct {
	CreateFn          func(context.Context, int64, string, []model.LineItem, float64) (*model.Order, error)
	GetByIDFn         func(context.Context, int64) (*model.Order, error)
	GetByExternalIDFn func(context.Context, string) (*model.Order, error)
	ListFn            func(context.Context, repository.OrderFilter) ([]model.Order, error)
	UpdateStatusFn    func(context.Context, int64, model.OrderStatus) (*model.Order, error)

	Orders []model.Order
	Next   int64
}

// Create stores a new pending order unless overridden.
func (s *OrderRepositoryStub) Create(ctx context.Context, userID int64, externalID string, items []model.LineItem, totalAmount float64) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, userID, externalID, items, totalAmount)
	}
	for _, o := range s.Orders {
		if o.ExternalID == externalID {
			return nil, domainErrors.ErrDuplicateOrderID
		}
	}
	s.Next++
	order := model.Order{
		ID:          s.Next,
		ExternalID:  externalID,
		UserID:      userID,
		Items:       items,
		TotalAmount: totalAmount,
		Status:      model.OrderStatusPending,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	s.Orders = append(s.Orders, order)
	return &order, nil
}

// GetByID returns matched order either via override or stored slice.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	for _, o := range s.Orders {
		if o.ID == id {
			order := o
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// GetByExternalID returns matched order either via override or stored slice.
func (s *OrderRepositoryStub) GetByExternalID(ctx context.Context, externalID string) (*model.Order, error) {
	if s.GetByExternalIDFn != nil {
		return s.GetByExternalIDFn(ctx, externalID)
	}
	for _, o := range s.Orders {
		if o.ExternalID == externalID {
			order := o
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// List applies the filter over stored orders, newest first.
func (s *OrderRepositoryStub) List(ctx context.Context, filter repository.OrderFilter) ([]model.Order, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, filter)
	}
	var result []model.Order
	for _, o := range s.Orders {
		if filter.UserID != nil && o.UserID != *filter.UserID {
			continue
		}
		if filter.Status != nil && o.Status != *filter.Status {
			continue
		}
		result = append(result, o)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

// UpdateStatus overwrites the stored status unconditionally.
func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) (*model.Order, error) {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, orderID, status)
	}
	for i := range s.Orders {
		if s.Orders[i].ID == orderID {
			s.Orders[i].Status = status
			s.Orders[i].UpdatedAt = time.Now()
			order := s.Orders[i]
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// TransactionRepositoryStub keeps transactions in-memory with uniqueness on
// the external identifier.
type TransactionRepositoryStub struct {
	CreateFn func(context.Context, string, int64, float64, string, time.Time) (*model.Transaction, error)
	ListFn   func(context.Context) ([]model.Transaction, error)

	Transactions []model.Transaction
	Next         int64
}

// Create stores a transaction unless the external id was already used.
func (s *TransactionRepositoryStub) Create(ctx context.Context, externalID string, orderID int64, amount float64, paymentMethod string, occurredAt time.Time) (*model.Transaction, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, externalID, orderID, amount, paymentMethod, occurredAt)
	}
	for _, t := range s.Transactions {
		if t.ExternalID == externalID {
			return nil, domainErrors.ErrDuplicateTransactionID
		}
	}
	s.Next++
	tx := model.Transaction{
		ID:            s.Next,
		ExternalID:    externalID,
		OrderID:       orderID,
		Amount:        amount,
		PaymentMethod: paymentMethod,
		OccurredAt:    occurredAt,
		CreatedAt:     time.Now(),
	}
	s.Transactions = append(s.Transactions, tx)
	return &tx, nil
}

// List returns stored transactions newest first.
func (s *TransactionRepositoryStub) List(ctx context.Context) ([]model.Transaction, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	result := make([]model.Transaction, len(s.Transactions))
	copy(result, s.Transactions)
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

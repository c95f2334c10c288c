package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/skobelin/paytrack/internal/bus"
	domainErrors "github.com/skobelin/paytrack/internal/domain/errors"
	"github.com/skobelin/paytrack/internal/domain/model"
	testhelpers "github.com/skobelin/paytrack/internal/test"
)

type recordingFeed struct {
	mu     sync.Mutex
	events []bus.TransactionEvent
}

func (f *recordingFeed) Publish(event bus.TransactionEvent) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
}

func (f *recordingFeed) published() []bus.TransactionEvent {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]bus.TransactionEvent(nil), f.events...)
}

func newTransactionUseCase(orders *testhelpers.OrderRepositoryStub) (*TransactionUseCase, *testhelpers.TransactionRepositoryStub, *recordingFeed) {
	repo := &testhelpers.TransactionRepositoryStub{}
	feed := &recordingFeed{}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return NewTransactionUseCase(repo, orders, feed, logger), repo, feed
}

func seedOrder(t *testing.T, orders *testhelpers.OrderRepositoryStub) *model.Order {
	t.Helper()
	order, err := orders.Create(context.Background(), 1, "ORD-1", testItems(), 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return order
}

func TestTransactionCreatePersistsAndPublishesOnce(t *testing.T) {
	orders := &testhelpers.OrderRepositoryStub{}
	uc, repo, feed := newTransactionUseCase(orders)
	order := seedOrder(t, orders)

	occurred := time.Now().Add(-time.Minute)
	tx, err := uc.Create(context.Background(), "TX-1", order.ID, 100, "card", occurred)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tx.ExternalID != "TX-1" || tx.OrderID != order.ID {
		t.Fatalf("unexpected transaction %+v", tx)
	}
	if len(repo.Transactions) != 1 {
		t.Fatalf("expected one persisted transaction, got %d", len(repo.Transactions))
	}

	events := feed.published()
	if len(events) != 1 {
		t.Fatalf("expected exactly one broadcast, got %d", len(events))
	}
	if events[0].TransactionID != "TX-1" || events[0].OrderID != order.ID || events[0].Amount != 100 {
		t.Fatalf("unexpected event %+v", events[0])
	}
}

func TestTransactionCreateRejectsUnknownOrder(t *testing.T) {
	orders := &testhelpers.OrderRepositoryStub{}
	uc, repo, feed := newTransactionUseCase(orders)

	if _, err := uc.Create(context.Background(), "TX-1", 404, 100, "card", time.Now()); !errors.Is(err, domainErrors.ErrInvalidOrderRef) {
		t.Fatalf("expected invalid order reference, got %v", err)
	}
	if len(repo.Transactions) != 0 {
		t.Fatal("no transaction must be persisted for a missing order")
	}
	if len(feed.published()) != 0 {
		t.Fatal("nothing must be broadcast for a failed create")
	}
}

func TestTransactionCreateDuplicateExternalID(t *testing.T) {
	orders := &testhelpers.OrderRepositoryStub{}
	uc, repo, feed := newTransactionUseCase(orders)
	order := seedOrder(t, orders)

	if _, err := uc.Create(context.Background(), "TX-1", order.ID, 100, "card", time.Now()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.Create(context.Background(), "TX-1", order.ID, 50, "cash", time.Now()); !errors.Is(err, domainErrors.ErrDuplicateTransactionID) {
		t.Fatalf("expected duplicate transaction id, got %v", err)
	}

	// The original record and its single broadcast stay untouched.
	if len(repo.Transactions) != 1 || repo.Transactions[0].Amount != 100 {
		t.Fatalf("original transaction must be unaffected, got %+v", repo.Transactions)
	}
	if len(feed.published()) != 1 {
		t.Fatalf("expected one broadcast, got %d", len(feed.published()))
	}
}

func TestTransactionCreateAllowsMultiplePerOrder(t *testing.T) {
	orders := &testhelpers.OrderRepositoryStub{}
	uc, repo, _ := newTransactionUseCase(orders)
	order := seedOrder(t, orders)

	if _, err := uc.Create(context.Background(), "TX-1", order.ID, 60, "card", time.Now()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.Create(context.Background(), "TX-2", order.ID, 40, "card", time.Now()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.Transactions) != 2 {
		t.Fatalf("expected two transactions for one order, got %d", len(repo.Transactions))
	}
}

func TestTransactionCreateValidatesInput(t *testing.T) {
	orders := &testhelpers.OrderRepositoryStub{}
	uc, _, _ := newTransactionUseCase(orders)
	order := seedOrder(t, orders)

	if _, err := uc.Create(context.Background(), "", order.ID, 100, "card", time.Now()); err == nil {
		t.Fatal("expected error for empty transaction id")
	}
	if _, err := uc.Create(context.Background(), "TX-1", order.ID, 100, "", time.Now()); err == nil {
		t.Fatal("expected error for empty payment method")
	}
	if _, err := uc.Create(context.Background(), "TX-1", order.ID, -5, "card", time.Now()); !errors.Is(err, domainErrors.ErrInvalidAmount) {
		t.Fatalf("expected invalid amount, got %v", err)
	}
}

func TestTransactionList(t *testing.T) {
	orders := &testhelpers.OrderRepositoryStub{}
	uc, _, _ := newTransactionUseCase(orders)
	order := seedOrder(t, orders)

	if _, err := uc.Create(context.Background(), "TX-1", order.ID, 100, "card", time.Now()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	transactions, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(transactions) != 1 || transactions[0].ExternalID != "TX-1" {
		t.Fatalf("unexpected transactions %+v", transactions)
	}
}

package bus

import (
	"log/slog"
	"sync"
	"time"
)

// TransactionEvent is the payload broadcast to live feed subscribers right
// after a transaction is persisted.
type TransactionEvent struct {
	TransactionID string    `json:"transactionId"`
	OrderID       int64     `json:"orderId"`
	Amount        float64   `json:"amount"`
	PaymentMethod string    `json:"paymentMethod"`
	OccurredAt    time.Time `json:"timestamp"`
}

// Subscriber receives broadcast events until unsubscribed.
type Subscriber struct {
	events chan TransactionEvent
}

// Events exposes the subscriber delivery channel. The channel is closed on
// unsubscribe.
func (s *Subscriber) Events() <-chan TransactionEvent {
	return s.events
}

// Broadcaster fans out transaction events to all current subscribers.
// Delivery is best effort: there is no persistence, no replay for late
// subscribers, and a full subscriber buffer drops the event for that
// subscriber only.
type Broadcaster struct {
	mu     sync.RWMutex
	subs   map[*Subscriber]struct{}
	buffer int
	logger *slog.Logger
}

// NewBroadcaster creates broadcaster with per-subscriber buffer size.
func NewBroadcaster(buffer int, logger *slog.Logger) *Broadcaster {
	if buffer <= 0 {
		buffer = 1
	}
	return &Broadcaster{
		subs:   make(map[*Subscriber]struct{}),
		buffer: buffer,
		logger: logger,
	}
}

// Subscribe registers a new observer. The observer sees only events
// published after this call returns.
func (b *Broadcaster) Subscribe() *Subscriber {
	sub := &Subscriber{events: make(chan TransactionEvent, b.buffer)}
	b.mu.Lock()
	b.subs[sub] = struct{}{}
	b.mu.Unlock()
	return sub
}

// Unsubscribe removes the observer and closes its channel. Safe to call more
// than once.
func (b *Broadcaster) Unsubscribe(sub *Subscriber) {
	if sub == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.subs[sub]; !ok {
		return
	}
	delete(b.subs, sub)
	close(sub.events)
}

// Publish delivers the event to every current subscriber without blocking.
// A subscriber that cannot keep up misses the event.
func (b *Broadcaster) Publish(event TransactionEvent) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for sub := range b.subs {
		select {
		case sub.events <- event:
		default:
			b.logger.Warn("dropping event for slow subscriber",
				slog.String("transaction", event.TransactionID))
		}
	}
}

// Subscribers reports the current observer count.
func (b *Broadcaster) Subscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

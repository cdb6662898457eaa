// Package bus is the in-process publish/subscribe core. Delivery is
// synchronous and ordered; it guarantees nothing beyond handing each event to
// the handlers registered at publish time.
package bus

import (
	"sync"

	"github.com/rs/zerolog"

	"stayoffers/internal/adapters/observability"
	"stayoffers/internal/domain"
)

// Registered event names — the stable inter-module contract.
const (
	EventSearch       = "SEARCH"
	EventHold         = "HOLD"
	EventBooked       = "BOOKED"
	EventCancelled    = "CANCELLED"
	EventPayment      = "PAYMENT"
	EventPriceChanged = "PRICE_CHANGED"
)

// Names lists every registered event name.
var Names = []string{
	EventSearch, EventHold, EventBooked, EventCancelled, EventPayment, EventPriceChanged,
}

type Handler func(domain.Event)

// Subscription identifies one registration. Function values are not
// comparable in Go, so unsubscribing takes the token Subscribe returned
// rather than the handler itself.
type Subscription struct {
	name string
	id   uint64
}

type entry struct {
	id uint64
	h  Handler
}

// Bus lifetime is owned by the process bootstrap; tests construct a fresh one.
type Bus struct {
	mu     sync.Mutex
	nextID uint64
	subs   map[string][]entry
	log    zerolog.Logger
}

func New(log zerolog.Logger) *Bus {
	return &Bus{subs: make(map[string][]entry), log: log}
}

// Subscribe appends handler to the dispatch order for name. Registering the
// same handler twice results in two invocations per publish.
func (b *Bus) Subscribe(name string, h Handler) Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	b.subs[name] = append(b.subs[name], entry{id: b.nextID, h: h})
	return Subscription{name: name, id: b.nextID}
}

// Unsubscribe removes the registration sub refers to; no-op when absent.
func (b *Bus) Unsubscribe(sub Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()
	entries := b.subs[sub.name]
	for i, e := range entries {
		if e.id == sub.id {
			b.subs[sub.name] = append(entries[:i:i], entries[i+1:]...)
			return
		}
	}
}

// Publish dispatches e synchronously, in subscription order, to every handler
// registered for e.Name. Unregistered names are skipped. A panicking handler
// is logged and swallowed; the remaining handlers still run and nothing
// propagates to the publisher.
func (b *Bus) Publish(e domain.Event) {
	b.mu.Lock()
	entries := make([]entry, len(b.subs[e.Name]))
	copy(entries, b.subs[e.Name])
	b.mu.Unlock()

	observability.ObserveEvent(e.Name)
	for _, en := range entries {
		b.dispatch(en.h, e)
	}
}

func (b *Bus) dispatch(h Handler, e domain.Event) {
	defer func() {
		if r := recover(); r != nil {
			b.log.Error().Str("event", e.Name).Any("panic", r).Msg("event handler failed")
		}
	}()
	h(e)
}

// Clear removes all subscriptions; used at process shutdown.
func (b *Bus) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs = make(map[string][]entry)
}

func (b *Bus) SubscriberCount(name string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs[name])
}

// Package store provides the key-value backends user preferences are kept in
// and a typed Preference handle on top of them.
//
// Values are opaque bytes to a Store. Preference encodes them as JSON so the
// same document can be read back by any backend.
package store

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// Op is the kind of change an Event reports.
type Op string

const (
	OpSet    Op = "set"
	OpRemove Op = "remove"
)

// Event reports a change to one key.
type Event struct {
	Key   string
	Op    Op
	Value []byte
}

// Store is a key-value backend. Implementations are safe for concurrent use.
type Store interface {
	// Get returns the value for key and whether it exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set writes a value and notifies subscribers.
	Set(ctx context.Context, key string, value []byte) error
	// Remove deletes a key. Removing a missing key is not an error.
	Remove(ctx context.Context, key string) error
	// Keys lists the stored keys in ascending order.
	Keys(ctx context.Context) ([]string, error)
	// Subscribe returns a channel of change events and a function that
	// cancels the subscription.
	Subscribe() (<-chan Event, func())
	// Close releases the backend. Subscriptions are closed.
	Close() error
}

// Kind selects which backend a preference lives in.
type Kind string

const (
	// KindLocal persists to disk.
	KindLocal Kind = "local"
	// KindSession lives for the lifetime of the process.
	KindSession Kind = "session"
	// KindMemory keeps the value on the preference handle only.
	KindMemory Kind = "memory"
	// KindInfer uses the kind stored under StoragePrefKey.
	KindInfer Kind = "infer"
)

// StoragePrefKey holds the user's preferred storage kind in the local store.
const StoragePrefKey = "user-storage-pref"

// Kinds lists the kinds a user can choose as their preference.
func Kinds() []Kind {
	return []Kind{KindLocal, KindSession, KindMemory}
}

// ParseKind validates a kind name.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindLocal, KindSession, KindMemory, KindInfer:
		return k, nil
	}
	return "", fmt.Errorf("unknown storage kind %q (want local, session, memory or infer)", s)
}

// subscriberBuffer is the per-subscriber channel capacity. Events for slow
// subscribers are dropped once it fills.
const subscriberBuffer = 32

// hub fans events out to subscribers.
type hub struct {
	mu     sync.Mutex
	next   int
	subs   map[int]chan Event
	closed bool
}

func newHub() *hub {
	return &hub{subs: make(map[int]chan Event)}
}

func (h *hub) subscribe() (<-chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan Event, subscriberBuffer)
	if h.closed {
		close(ch)
		return ch, func() {}
	}

	id := h.next
	h.next++
	h.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			if sub, ok := h.subs[id]; ok {
				delete(h.subs, id)
				close(sub)
			}
		})
	}
}

func (h *hub) publish(ev Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, ch := range h.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

func (h *hub) close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true
	for id, ch := range h.subs {
		delete(h.subs, id)
		close(ch)
	}
}

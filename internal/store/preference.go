package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"sync"

	hueyerrors "github.com/alexisbeaulieu97/huey/pkg/errors"
)

// Backends groups the stores a preference can resolve to.
type Backends struct {
	Local   Store
	Session Store
}

// NewBackends pairs a persistent store with a fresh session store.
func NewBackends(local Store) *Backends {
	return &Backends{Local: local, Session: NewMemory()}
}

// Close releases both stores.
func (b *Backends) Close() error {
	serr := b.Session.Close()
	if err := b.Local.Close(); err != nil {
		return err
	}
	return serr
}

// PreferredKind reads the user's storage choice from the local store. It
// falls back to KindLocal when nothing usable is stored.
func (b *Backends) PreferredKind(ctx context.Context) Kind {
	raw, ok, err := b.Local.Get(ctx, StoragePrefKey)
	if err != nil || !ok {
		return KindLocal
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return KindLocal
	}
	kind, err := ParseKind(s)
	if err != nil || kind == KindInfer {
		return KindLocal
	}
	return kind
}

// SetPreferredKind stores the user's storage choice.
func (b *Backends) SetPreferredKind(ctx context.Context, kind Kind) error {
	if kind == KindInfer {
		kind = KindLocal
	}
	raw, err := json.Marshal(string(kind))
	if err != nil {
		return err
	}
	return b.Local.Set(ctx, StoragePrefKey, raw)
}

// Resolve turns a requested kind into a concrete one.
func (b *Backends) Resolve(ctx context.Context, kind Kind) Kind {
	if kind == KindInfer || kind == "" {
		return b.PreferredKind(ctx)
	}
	return kind
}

// PreferenceOption customises a Preference.
type PreferenceOption func(*prefConfig)

type prefConfig struct {
	kind          Kind
	retainDefault bool
}

// WithKind selects the backend. The default is KindInfer.
func WithKind(kind Kind) PreferenceOption {
	return func(c *prefConfig) { c.kind = kind }
}

// RetainDefault keeps a value in the store even when it equals the default.
func RetainDefault() PreferenceOption {
	return func(c *prefConfig) { c.retainDefault = true }
}

// Preference is a typed, JSON-encoded value stored under one key.
type Preference[T any] struct {
	backends *Backends
	key      string
	def      T
	cfg      prefConfig

	mu       sync.Mutex
	memory   T
	hasValue bool
}

// NewPreference creates a handle for key with the given default.
func NewPreference[T any](b *Backends, key string, def T, opts ...PreferenceOption) *Preference[T] {
	cfg := prefConfig{kind: KindInfer}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Preference[T]{backends: b, key: key, def: def, cfg: cfg}
}

// Key returns the storage key.
func (p *Preference[T]) Key() string { return p.key }

// Default returns the default value.
func (p *Preference[T]) Default() T { return p.def }

// Kind returns the backend the preference currently resolves to.
func (p *Preference[T]) Kind(ctx context.Context) Kind {
	if p.key == StoragePrefKey {
		return KindLocal
	}
	return p.backends.Resolve(ctx, p.cfg.kind)
}

// Get returns the stored value or the default. A stored value that cannot be
// decoded yields the default together with a *errors.ParseError.
func (p *Preference[T]) Get(ctx context.Context) (T, error) {
	kind := p.Kind(ctx)
	if kind == KindMemory {
		p.mu.Lock()
		defer p.mu.Unlock()
		if p.hasValue {
			return p.memory, nil
		}
		return p.def, nil
	}

	raw, ok, err := p.store(kind).Get(ctx, p.key)
	if err != nil {
		return p.def, err
	}
	if !ok {
		return p.def, nil
	}
	return p.decode(raw)
}

// Set writes v to the resolved backend and clears the key from the others.
// A value equal to the default is removed rather than written unless the
// preference retains defaults.
func (p *Preference[T]) Set(ctx context.Context, v T) error {
	_, err := p.Write(ctx, v)
	return err
}

// Write is Set that also reports whether subscribers were notified. Memory
// preferences never notify, and removing a default that was never stored
// changes nothing.
func (p *Preference[T]) Write(ctx context.Context, v T) (bool, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return false, hueyerrors.NewStoreError(string(p.cfg.kind), p.key, err)
	}

	kind := p.Kind(ctx)
	if kind != KindSession {
		if err := p.backends.Session.Remove(ctx, p.key); err != nil {
			return false, err
		}
	}
	if kind != KindLocal {
		if err := p.backends.Local.Remove(ctx, p.key); err != nil {
			return false, err
		}
	}

	if kind == KindMemory {
		p.mu.Lock()
		p.memory, p.hasValue = v, true
		p.mu.Unlock()
		return false, nil
	}

	target := p.store(kind)
	if !p.cfg.retainDefault && p.isDefault(raw) {
		_, stored, err := target.Get(ctx, p.key)
		if err != nil {
			return false, err
		}
		if !stored {
			return false, nil
		}
		if err := target.Remove(ctx, p.key); err != nil {
			return false, err
		}
		return true, nil
	}
	if err := target.Set(ctx, p.key, raw); err != nil {
		return false, err
	}
	return true, nil
}

// Update applies fn to the current value and stores the result.
func (p *Preference[T]) Update(ctx context.Context, fn func(T) T) (T, error) {
	current, err := p.Get(ctx)
	var pe *hueyerrors.ParseError
	if err != nil && !errors.As(err, &pe) {
		return current, err
	}
	next := fn(current)
	return next, p.Set(ctx, next)
}

// Reset returns the preference to its default, removing the stored value
// unless defaults are retained.
func (p *Preference[T]) Reset(ctx context.Context) error {
	kind := p.Kind(ctx)
	if kind == KindMemory {
		p.mu.Lock()
		var zero T
		p.memory, p.hasValue = zero, false
		p.mu.Unlock()
		return nil
	}
	if p.cfg.retainDefault {
		return nil
	}
	return p.store(kind).Remove(ctx, p.key)
}

// Exists reports whether a value is stored. Memory preferences never exist.
func (p *Preference[T]) Exists(ctx context.Context) (bool, error) {
	kind := p.Kind(ctx)
	if kind == KindMemory {
		return false, nil
	}
	_, ok, err := p.store(kind).Get(ctx, p.key)
	return ok, err
}

// Subscribe streams the decoded value every time the key changes in the
// resolved backend. Removals yield the default.
func (p *Preference[T]) Subscribe(ctx context.Context) (<-chan T, func()) {
	out := make(chan T, subscriberBuffer)
	kind := p.Kind(ctx)
	if kind == KindMemory {
		close(out)
		return out, func() {}
	}

	events, cancel := p.store(kind).Subscribe()
	go func() {
		defer close(out)
		for ev := range events {
			if ev.Key != p.key {
				continue
			}
			value := p.def
			if ev.Op == OpSet {
				decoded, err := p.decode(ev.Value)
				if err != nil {
					continue
				}
				value = decoded
			}
			select {
			case out <- value:
			default:
			}
		}
	}()
	return out, cancel
}

func (p *Preference[T]) store(kind Kind) Store {
	if kind == KindSession {
		return p.backends.Session
	}
	return p.backends.Local
}

func (p *Preference[T]) decode(raw []byte) (T, error) {
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return p.def, hueyerrors.NewParseError(p.key, "stored preference", err)
	}
	return v, nil
}

func (p *Preference[T]) isDefault(raw []byte) bool {
	def, err := json.Marshal(p.def)
	if err != nil {
		return false
	}
	return bytes.Equal(def, raw)
}

// Package cart holds the client-side shopping cart and keeps it persisted in
// device storage.
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/shadecart/shadecart/storage"
)

// StorageKey is the device storage slot holding the JSON encoded cart.
const StorageKey = "@user_cart"

type state int

const (
	stateLoading state = iota
	stateReady
)

// Store is the authoritative list of items the user intends to order.
//
// A new Store starts out loading. Mutations made before Load are queued and
// replayed over the stored cart once it has been read, so the stored cart is
// never overwritten by an empty one. After Load every mutation is written
// through to storage and a failed write is returned as a *PersistenceError.
type Store struct {
	mu      sync.Mutex
	kv      storage.KV
	logger  *zap.Logger
	state   state
	items   map[Key]*LineItem
	order   []Key
	pending []func()
}

func NewStore(kv storage.KV, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		kv:     kv,
		logger: logger.Named("cart"),
		items:  make(map[Key]*LineItem),
	}
}

// Load hydrates the store from device storage and marks it ready. A missing
// or unreadable cart leaves the store empty; the read error is logged and
// returned, but the store is ready either way. Stored items missing a
// category or color hex are dropped.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == stateReady {
		return nil
	}

	var loadErr error
	stored, err := s.read(ctx)
	if err != nil {
		s.logger.Warn("failed to load cart, starting empty", zap.Error(err))
		loadErr = &PersistenceError{Op: "load", Err: err}
		stored = nil
	}

	s.items = make(map[Key]*LineItem, len(stored))
	s.order = s.order[:0]
	for _, item := range stored {
		if item.Category == "" || item.ColorHex == "" {
			s.logger.Warn("dropping stored cart item without category or color",
				zap.String("category", item.Category),
				zap.String("color_hex", item.ColorHex))
			continue
		}
		s.applyAdd(item)
	}
	s.state = stateReady

	deferred := s.pending
	s.pending = nil
	for _, op := range deferred {
		op()
	}

	if len(deferred) > 0 {
		if err := s.persist(ctx); err != nil && loadErr == nil {
			loadErr = err
		}
	}

	s.logger.Debug("cart loaded", zap.Int("items", len(s.order)), zap.Int("replayed", len(deferred)))
	return loadErr
}

func (s *Store) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == stateReady
}

// Add puts item in the cart. An item with the same category and color hex is
// replaced, quantity included; quantities are not summed. A quantity below 1
// removes the item.
func (s *Store) Add(ctx context.Context, item LineItem) error {
	return s.mutate(ctx, func() { s.applyAdd(item) })
}

// Remove drops the matching item. Removing an absent item is a no-op.
func (s *Store) Remove(ctx context.Context, category, colorHex string) error {
	return s.mutate(ctx, func() { s.applyRemove(Key{Category: category, ColorHex: colorHex}) })
}

// UpdateQuantity sets the quantity of the matching item, or removes it when
// quantity is below 1.
func (s *Store) UpdateQuantity(ctx context.Context, category, colorHex string, quantity int) error {
	key := Key{Category: category, ColorHex: colorHex}
	return s.mutate(ctx, func() {
		if quantity < 1 {
			s.applyRemove(key)
			return
		}
		if item, ok := s.items[key]; ok {
			item.Quantity = quantity
		}
	})
}

// UpdateQuantityString is UpdateQuantity for raw user input. Anything that
// is not a base 10 integer removes the item.
func (s *Store) UpdateQuantityString(ctx context.Context, category, colorHex, raw string) error {
	quantity, ok := ParseQuantity(raw)
	if !ok {
		return s.Remove(ctx, category, colorHex)
	}
	return s.UpdateQuantity(ctx, category, colorHex, quantity)
}

// Clear empties the cart.
func (s *Store) Clear(ctx context.Context) error {
	return s.mutate(ctx, func() {
		s.items = make(map[Key]*LineItem)
		s.order = s.order[:0]
	})
}

// Snapshot returns a copy of the items in the order they were first added.
func (s *Store) Snapshot() []LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.order)
}

func (s *Store) IsEmpty() bool {
	return s.Len() == 0
}

// ParseQuantity reads a positive quantity from user input.
func ParseQuantity(raw string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

func (s *Store) mutate(ctx context.Context, op func()) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == stateLoading {
		s.pending = append(s.pending, op)
		return nil
	}

	op()
	return s.persist(ctx)
}

func (s *Store) applyAdd(item LineItem) {
	key := item.Key()
	if item.Quantity < 1 {
		s.applyRemove(key)
		return
	}

	if existing, ok := s.items[key]; ok {
		*existing = item
		return
	}

	stored := item
	s.items[key] = &stored
	s.order = append(s.order, key)
}

func (s *Store) applyRemove(key Key) {
	if _, ok := s.items[key]; !ok {
		return
	}
	delete(s.items, key)
	for i, k := range s.order {
		if k == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *Store) snapshot() []LineItem {
	out := make([]LineItem, 0, len(s.order))
	for _, key := range s.order {
		out = append(out, *s.items[key])
	}
	return out
}

func (s *Store) read(ctx context.Context) ([]LineItem, error) {
	data, err := s.kv.Get(ctx, StorageKey)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var items []LineItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) persist(ctx context.Context) error {
	data, err := json.Marshal(s.snapshot())
	if err != nil {
		return &PersistenceError{Op: "encode", Err: err}
	}

	if err := s.kv.Set(ctx, StorageKey, data); err != nil {
		s.logger.Error("failed to save cart", zap.Error(err))
		return &PersistenceError{Op: "save", Err: err}
	}
	return nil
}

package cart

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/nikolayk812/apnadairy/internal/domain"
	"github.com/nikolayk812/apnadairy/internal/port"
)

// StorageKey is the fixed durable-storage key the serialized cart lives under.
const StorageKey = "cartItems"

// Store holds the ordered cart line collection for one shopper session.
// It is the sole source of truth for the cart: every mutation is written
// through to the CartStorage, and the collection is rehydrated exactly once
// at construction time.
type Store struct {
	mu       sync.Mutex
	storage  port.CartStorage
	notifier port.Notifier
	logger   *log.Entry

	lines []domain.CartLine
}

// NewStore loads any previously saved cart before the store accepts
// mutations, so a fresh session can never clobber saved lines with an
// empty write. Missing or corrupt stored data starts the cart empty.
func NewStore(storage port.CartStorage, notifier port.Notifier, logger *log.Entry) (*Store, error) {
	if storage == nil {
		return nil, fmt.Errorf("storage is nil")
	}
	if notifier == nil {
		return nil, fmt.Errorf("notifier is nil")
	}
	if logger == nil {
		logger = log.WithField("component", "cart")
	}

	s := &Store{
		storage:  storage,
		notifier: notifier,
		logger:   logger,
	}

	raw, ok, err := storage.Get(StorageKey)
	if err != nil {
		// An unreadable store behaves like an absent one.
		logger.WithError(err).Warn("failed to read saved cart, starting empty")
		return s, nil
	}
	if !ok {
		return s, nil
	}

	var lines []domain.CartLine
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		logger.WithError(err).Warn("failed to decode saved cart, starting empty")
		return s, nil
	}
	s.lines = lines

	return s, nil
}

// Add appends a new line or, when a line with the same (product, unit)
// already exists, merges the quantities. There is no capacity limit and
// no stock check.
func (s *Store) Add(line domain.CartLine) error {
	if err := line.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	merged := false
	key := line.Key()
	for i := range s.lines {
		if s.lines[i].Key() == key {
			s.lines[i].Quantity += line.Quantity
			merged = true
			break
		}
	}
	if !merged {
		s.lines = append(s.lines, line)
	}

	s.notifier.Notify(domain.Notification{
		Title:       "Added to cart",
		Description: fmt.Sprintf("%s (%d %s) has been added to your cart.", line.Name, line.Quantity, line.Unit),
		Severity:    domain.SeverityInfo,
	})

	return s.persistLocked()
}

// UpdateQuantity replaces the matching line's quantity exactly. A quantity
// of zero or less removes the line. Updating a non-existent line is a no-op.
func (s *Store) UpdateQuantity(productID uuid.UUID, unit domain.Unit, quantity int64) error {
	if quantity <= 0 {
		_, err := s.Remove(productID, unit)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := domain.LineKey{ProductID: productID, Unit: unit}
	for i := range s.lines {
		if s.lines[i].Key() == key {
			s.lines[i].Quantity = quantity
			break
		}
	}

	return s.persistLocked()
}

// Remove deletes the matching line if present and reports whether anything
// was removed. Removing an absent line is not an error.
func (s *Store) Remove(productID uuid.UUID, unit domain.Unit) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := domain.LineKey{ProductID: productID, Unit: unit}
	removed := false
	kept := s.lines[:0]
	for _, line := range s.lines {
		if line.Key() == key {
			removed = true
			continue
		}
		kept = append(kept, line)
	}
	s.lines = kept

	if removed {
		s.notifier.Notify(domain.Notification{
			Title:    "Removed from cart",
			Severity: domain.SeverityDestructive,
		})
	}

	return removed, s.persistLocked()
}

// Clear empties the whole cart unconditionally.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil
	return s.persistLocked()
}

// Count is the number of distinct (product, unit) lines, not the sum of
// their quantities; the cart badge counts lines.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.lines)
}

// Lines returns a snapshot of the cart in insertion order.
func (s *Store) Lines() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make([]domain.CartLine, len(s.lines))
	copy(snapshot, s.lines)
	return snapshot
}

// persistLocked writes the full line collection through to storage.
// The in-memory collection is already updated at this point: a failed
// write loses durability, not the session state.
func (s *Store) persistLocked() error {
	raw, err := json.Marshal(s.lines)
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	if err := s.storage.Set(StorageKey, string(raw)); err != nil {
		return fmt.Errorf("storage.Set: %w", err)
	}

	return nil
}

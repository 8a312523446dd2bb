// Package softres provides an in-memory, TTL-based implementation of the
// soft reservation store. Reservations live in process memory only: a restart
// drops them, which is acceptable because they merely bound oversell between
// checkout and order confirmation.
package softres

import (
	"context"
	"sync"
	"time"

	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/pkg/errs"
)

// stockKey identifies one (node, product, channel) stock position.
type stockKey struct {
	nodeCode  string
	productID kernel.UUID
	channel   string
}

type reservation struct {
	key       stockKey
	qty       int
	expiresAt time.Time
}

// InMemoryStore is a concurrency-safe TTL map of soft reservations.
// Expired entries are skipped on read and swept in bulk by a background
// janitor started via StartJanitor.
type InMemoryStore struct {
	mu           sync.RWMutex
	reservations map[kernel.UUID]reservation
	now          func() time.Time
}

// NewInMemoryStore creates an empty soft reservation store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		reservations: make(map[kernel.UUID]reservation),
		now:          time.Now,
	}
}

// Hold reserves qty units under the reservation ID. Holding again under the
// same ID replaces the previous entry and refreshes its TTL.
func (s *InMemoryStore) Hold(
	_ context.Context,
	reservationID kernel.UUID,
	nodeCode string,
	productID kernel.UUID,
	channel string,
	qty int,
	ttl time.Duration,
) error {
	if err := reservationID.Validate(); err != nil {
		return err
	}
	if err := productID.Validate(); err != nil {
		return err
	}
	if nodeCode == "" {
		return errs.NewValueIsRequiredError("nodeCode")
	}
	if qty <= 0 {
		return errs.NewValueIsInvalidError("qty")
	}
	if ttl <= 0 {
		return errs.NewValueIsInvalidError("ttl")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.reservations[reservationID] = reservation{
		key:       stockKey{nodeCode: nodeCode, productID: productID, channel: channel},
		qty:       qty,
		expiresAt: s.now().Add(ttl),
	}

	return nil
}

// Release drops a reservation. Unknown IDs are a no-op.
func (s *InMemoryStore) Release(_ context.Context, reservationID kernel.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.reservations, reservationID)
	return nil
}

// ReservedQty sums live reserved units for one stock position.
func (s *InMemoryStore) ReservedQty(
	_ context.Context,
	nodeCode string,
	productID kernel.UUID,
	channel string,
) (int, error) {
	key := stockKey{nodeCode: nodeCode, productID: productID, channel: channel}
	now := s.now()

	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for _, entry := range s.reservations {
		if entry.key == key && entry.expiresAt.After(now) {
			total += entry.qty
		}
	}

	return total, nil
}

// StartJanitor sweeps expired reservations at the given interval until the
// context is canceled. Sweeping only bounds memory; correctness does not
// depend on it because reads skip expired entries.
func (s *InMemoryStore) StartJanitor(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.sweep()
			}
		}
	}()
}

func (s *InMemoryStore) sweep() {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	for id, entry := range s.reservations {
		if !entry.expiresAt.After(now) {
			delete(s.reservations, id)
		}
	}
}

// Len reports the number of stored entries, live or expired.
func (s *InMemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.reservations)
}

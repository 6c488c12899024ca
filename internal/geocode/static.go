package geocode

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"volunteer-dispatch/internal/apperr"
)

// Static resolves addresses from a fixed address book.
type Static struct {
	mu   sync.RWMutex
	book map[string][2]float64
}

// NewStatic creates an empty Static geocoder.
func NewStatic() *Static {
	return &Static{book: make(map[string][2]float64)}
}

func normalize(address string) string {
	return strings.ToLower(strings.Join(strings.Fields(address), " "))
}

// Add registers the coordinates of address.
func (s *Static) Add(address string, lat, lon float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.book[normalize(address)] = [2]float64{lat, lon}
}

// Resolve looks address up in the book. Unknown addresses are invalid.
func (s *Static) Resolve(ctx context.Context, address string) (float64, float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, 0, err
	}
	s.mu.RLock()
	p, ok := s.book[normalize(address)]
	s.mu.RUnlock()
	if !ok {
		return 0, 0, fmt.Errorf("address %q not found: %w", address, apperr.ErrInvalid)
	}
	return p[0], p[1], nil
}

// Validate reports whether address is in the book.
func (s *Static) Validate(ctx context.Context, address string) bool {
	return validate(ctx, s, address)
}

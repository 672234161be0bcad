package rides

import (
	"context"
	"sync"

	"github.com/ride-mitra/ride_mitra/internal/apperr"
)

// MemoryRepository is an in-memory ride store used for tests and
// database-less runs.
type MemoryRepository struct {
	mu    sync.RWMutex
	rides []Ride
}

// NewMemoryRepository builds an empty in-memory ride store.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Create(_ context.Context, ride Ride) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rides = append(r.rides, ride)
	return nil
}

func (r *MemoryRepository) Get(_ context.Context, id string) (Ride, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, ride := range r.rides {
		if ride.ID == id {
			return ride, nil
		}
	}
	return Ride{}, apperr.NotFound("ride %s not found", id)
}

func (r *MemoryRepository) ListByCustomer(_ context.Context, customerPhone string, limit int) ([]Ride, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Ride, 0, limit)
	for i := len(r.rides) - 1; i >= 0 && len(out) < limit; i-- {
		if r.rides[i].CustomerPhone == customerPhone {
			out = append(out, r.rides[i])
		}
	}
	return out, nil
}

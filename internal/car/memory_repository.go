package car

import (
	"context"
	"sync"

	"github.com/ride-mitra/ride_mitra/internal/apperr"
)

type memoryRepository struct {
	mu   sync.RWMutex
	cars map[string]Car
}

// NewMemoryRepository constructs an in-memory repository for tests and dev mode.
func NewMemoryRepository() Repository {
	return &memoryRepository{cars: make(map[string]Car)}
}

func (r *memoryRepository) Create(_ context.Context, car Car) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.cars[car.PlateNo]; exists {
		return apperr.Conflict("car with plate %s already registered", car.PlateNo)
	}
	r.cars[car.PlateNo] = car
	return nil
}

func (r *memoryRepository) GetByPlate(_ context.Context, plateNo string) (Car, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	car, ok := r.cars[plateNo]
	if !ok {
		return Car{}, apperr.NotFound("car with plate %s not found", plateNo)
	}
	return car, nil
}

func (r *memoryRepository) ListByVendor(_ context.Context, vendorPhone string) ([]Car, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Car
	for _, c := range r.cars {
		if c.VendorPhone == vendorPhone {
			out = append(out, c)
		}
	}
	return out, nil
}

package customer

import (
	"context"
	"sync"

	"github.com/ride-mitra/ride_mitra/internal/apperr"
)

type memoryRepository struct {
	mu        sync.RWMutex
	customers map[string]Customer
}

// NewMemoryRepository constructs an in-memory repository for tests and dev mode.
func NewMemoryRepository() Repository {
	return &memoryRepository{customers: make(map[string]Customer)}
}

func (r *memoryRepository) Create(_ context.Context, customer Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.customers[customer.Phone]; exists {
		return apperr.Conflict("customer %s already exists", customer.Phone)
	}
	r.customers[customer.Phone] = customer
	return nil
}

func (r *memoryRepository) Get(_ context.Context, phone string) (Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	customer, ok := r.customers[phone]
	if !ok {
		return Customer{}, apperr.NotFound("customer %s not found", phone)
	}
	return customer, nil
}

func (r *memoryRepository) SetActive(_ context.Context, phone string, active bool) (Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	customer, ok := r.customers[phone]
	if !ok {
		return Customer{}, apperr.NotFound("customer %s not found", phone)
	}
	customer.Active = active
	r.customers[phone] = customer
	return customer, nil
}

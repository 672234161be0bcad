package feedback

import (
	"context"
	"sync"
)

type memoryRepository struct {
	mu      sync.RWMutex
	entries map[string][]Feedback
}

// NewMemoryRepository constructs an in-memory repository for tests and dev mode.
func NewMemoryRepository() Repository {
	return &memoryRepository{entries: make(map[string][]Feedback)}
}

func (r *memoryRepository) Create(_ context.Context, fb Feedback) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[fb.VendorPhone] = append(r.entries[fb.VendorPhone], fb)
	return nil
}

func (r *memoryRepository) Exists(_ context.Context, vendorPhone, customerPhone string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, fb := range r.entries[vendorPhone] {
		if fb.CustomerPhone == customerPhone {
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryRepository) ListByVendor(_ context.Context, vendorPhone string) ([]Feedback, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Feedback, len(r.entries[vendorPhone]))
	copy(out, r.entries[vendorPhone])
	return out, nil
}

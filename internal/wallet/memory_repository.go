package wallet

import (
	"context"
	"sync"

	"github.com/ride-mitra/ride_mitra/internal/apperr"
)

type memoryAccountStore struct {
	mu       sync.RWMutex
	accounts map[string]Account
}

// NewMemoryAccountStore constructs an in-memory account store for tests and
// development mode. Update applies the same compare-and-swap semantics as the
// Postgres store.
func NewMemoryAccountStore() AccountStore {
	return &memoryAccountStore{accounts: make(map[string]Account)}
}

func (s *memoryAccountStore) Create(_ context.Context, account Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.accounts[account.VendorPhone]; exists {
		return apperr.Conflict("wallet for vendor %s already exists", account.VendorPhone)
	}
	account.Version = 1
	s.accounts[account.VendorPhone] = account
	return nil
}

func (s *memoryAccountStore) Get(_ context.Context, vendorPhone string) (Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	account, ok := s.accounts[vendorPhone]
	if !ok {
		return Account{}, apperr.NotFound("wallet for vendor %s not found", vendorPhone)
	}
	return account, nil
}

func (s *memoryAccountStore) Update(_ context.Context, account Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.accounts[account.VendorPhone]
	if !ok {
		return apperr.NotFound("wallet for vendor %s not found", account.VendorPhone)
	}
	if stored.Version != account.Version {
		return ErrVersionConflict
	}
	account.Version++
	s.accounts[account.VendorPhone] = account
	return nil
}

type memoryPaymentStore struct {
	mu      sync.RWMutex
	records map[string][]Payment
}

// NewMemoryPaymentStore constructs an in-memory append-only payment log.
func NewMemoryPaymentStore() PaymentStore {
	return &memoryPaymentStore{records: make(map[string][]Payment)}
}

func (s *memoryPaymentStore) Append(_ context.Context, payment Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[payment.VendorPhone] = append(s.records[payment.VendorPhone], payment)
	return nil
}

func (s *memoryPaymentStore) ListRecent(_ context.Context, vendorPhone string, limit int) ([]Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	history := s.records[vendorPhone]
	if limit > len(history) {
		limit = len(history)
	}
	out := make([]Payment, 0, limit)
	for i := len(history) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, history[i])
	}
	return out, nil
}

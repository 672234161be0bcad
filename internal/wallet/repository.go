package wallet

import (
	"context"
	"errors"
)

// ErrVersionConflict reports that a conditional account update targeted a
// version that is no longer current. Callers re-read and retry.
var ErrVersionConflict = errors.New("wallet account version conflict")

// AccountStore persists the mutable wallet account, one row per vendor.
type AccountStore interface {
	// Create inserts a new account. A duplicate vendor reference yields a
	// conflict error.
	Create(ctx context.Context, account Account) error
	// Get fetches the account with its current version marker.
	Get(ctx context.Context, vendorPhone string) (Account, error)
	// Update writes the account only if the stored version still matches
	// account.Version, returning ErrVersionConflict otherwise.
	Update(ctx context.Context, account Account) error
}

// PaymentStore is the append-only payment history. Records are never mutated
// or deleted once written.
type PaymentStore interface {
	Append(ctx context.Context, payment Payment) error
	// ListRecent returns up to limit records for the vendor, newest first.
	// A vendor with no history yields an empty slice, not an error.
	ListRecent(ctx context.Context, vendorPhone string, limit int) ([]Payment, error)
}

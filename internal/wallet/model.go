package wallet

import (
	"time"

	"github.com/ride-mitra/ride_mitra/internal/apperr"
)

// Scheme is the billing policy governing how a wallet responds to a recharge.
// Exactly one scheme is active per account at any time.
type Scheme string

const (
	// SchemeMonthly bills a flat fee for a one-month validity window. The
	// wallet balance is not authoritative under this scheme; the billing
	// period is.
	SchemeMonthly Scheme = "MONTHLY"
	// SchemePerTrip maintains a prepaid balance debited per completed trip.
	SchemePerTrip Scheme = "PER_TRIP"
)

// ParseScheme normalizes a caller-provided scheme identifier. The numeric
// forms predate the named ones and are still accepted from older clients.
func ParseScheme(s string) (Scheme, error) {
	switch s {
	case string(SchemeMonthly), "monthly", "1":
		return SchemeMonthly, nil
	case string(SchemePerTrip), "per_trip", "2":
		return SchemePerTrip, nil
	default:
		return "", apperr.InvalidArgument("invalid scheme %q: use MONTHLY (1) or PER_TRIP (2)", s)
	}
}

// Account is the mutable wallet state for one vendor. Version carries the
// optimistic-concurrency marker: every successful update increments it, and a
// conditional write only succeeds against the version it was read at.
type Account struct {
	VendorPhone string
	Scheme      Scheme
	Balance     int64
	PeriodStart time.Time
	PeriodEnd   time.Time
	Active      bool
	Version     int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Payment statuses.
const (
	PaymentCompleted = "COMPLETED"
	PaymentPending   = "PENDING"
	PaymentFailed    = "FAILED"
)

// Payment channels written by the service itself.
const (
	ChannelLaunchOffer   = "ON_LAUNCH_OFFER"
	ChannelTripDeduction = "TRIP_DEDUCTION"
)

// Payment is a single immutable audit entry. Credits carry a positive amount
// and debits a negative one, so replaying completed records in order yields
// the per-trip balance.
type Payment struct {
	ID          string
	VendorPhone string
	Channel     string
	Amount      int64
	Status      string
	RecordedAt  time.Time
}

// ReplayBalance folds completed payment records into the balance they imply.
// Reconciliation compares this against the stored account balance to detect
// orphan records.
func ReplayBalance(records []Payment) int64 {
	var balance int64
	for _, r := range records {
		if r.Status == PaymentCompleted {
			balance += r.Amount
		}
	}
	return balance
}

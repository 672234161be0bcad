package wallet

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ride-mitra/ride_mitra/internal/apperr"
	"github.com/ride-mitra/ride_mitra/internal/metrics"
	"github.com/ride-mitra/ride_mitra/internal/notification"
)

const defaultHistoryLimit = 10

// VendorInfo is the slice of the vendor directory the ledger cares about.
type VendorInfo struct {
	Name   string
	Phone  string
	Active bool
}

// VendorDirectory answers whether a vendor exists and is activated. It gates
// wallet creation only.
type VendorDirectory interface {
	Lookup(ctx context.Context, phone string) (VendorInfo, error)
}

// Service orchestrates the vendor wallet ledger: it validates preconditions,
// writes the audit record, applies the scheme strategy and commits the new
// account state under optimistic concurrency.
type Service struct {
	accounts   AccountStore
	payments   PaymentStore
	vendors    VendorDirectory
	notifier   notification.Notifier
	logger     *slog.Logger
	retryLimit int
}

// Option customises a Service.
type Option func(*Service)

// WithNotifier attaches a notifier invoked after successful balance events.
func WithNotifier(n notification.Notifier) Option {
	return func(s *Service) { s.notifier = n }
}

// WithLogger attaches a structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// WithRetryLimit bounds the compare-and-swap retry loop for account updates.
func WithRetryLimit(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.retryLimit = n
		}
	}
}

// NewService builds a wallet ledger service.
func NewService(accounts AccountStore, payments PaymentStore, vendors VendorDirectory, opts ...Option) *Service {
	s := &Service{
		accounts:   accounts,
		payments:   payments,
		vendors:    vendors,
		retryLimit: 5,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateWallet provisions the wallet for a vendor on first setup. The vendor
// must already exist and be activated. New wallets always start on the
// per-trip scheme with a zero balance and a collapsed billing window; the
// launch-offer amount lands in the payment history only.
func (s *Service) CreateWallet(ctx context.Context, vendorPhone string, initialAmount int64) (Account, error) {
	if vendorPhone == "" {
		return Account{}, apperr.InvalidArgument("vendor phone number is mandatory")
	}
	if initialAmount < 0 {
		return Account{}, apperr.InvalidArgument("initial amount must not be negative")
	}

	vendor, err := s.vendors.Lookup(ctx, vendorPhone)
	if err != nil {
		return Account{}, err
	}
	if !vendor.Active {
		return Account{}, apperr.FailedPrecondition("vendor %s (%s) profile is not activated", vendor.Name, vendorPhone)
	}

	now := time.Now().UTC()
	account := Account{
		VendorPhone: vendorPhone,
		Scheme:      SchemePerTrip,
		Balance:     0,
		PeriodStart: now,
		PeriodEnd:   now,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.accounts.Create(ctx, account); err != nil {
		return Account{}, err
	}
	account.Version = 1

	if err := s.appendPayment(ctx, vendorPhone, ChannelLaunchOffer, initialAmount, PaymentCompleted); err != nil {
		return Account{}, err
	}

	return account, nil
}

// RechargeInput carries one recharge request.
type RechargeInput struct {
	VendorPhone   string
	Scheme        string
	Amount        int64
	Channel       string
	PaymentStatus string
}

// Recharge applies a top-up under the requested scheme. The scheme identifier
// and amount are validated before the audit record is written so a malformed
// request leaves no orphan entry; a failure after the audit write does, which
// is the accepted trade-off for a complete trail. The account update targets
// the version the account was read at and retries on conflict.
func (s *Service) Recharge(ctx context.Context, input RechargeInput) (Account, error) {
	account, err := s.accounts.Get(ctx, input.VendorPhone)
	if err != nil {
		return Account{}, err
	}

	scheme, err := ParseScheme(input.Scheme)
	if err != nil {
		return Account{}, err
	}
	strat, err := strategyFor(scheme)
	if err != nil {
		return Account{}, err
	}
	if input.Amount < 0 {
		return Account{}, apperr.InvalidArgument("recharge amount must not be negative")
	}

	status := input.PaymentStatus
	if status == "" {
		status = PaymentCompleted
	}
	if err := s.appendPayment(ctx, input.VendorPhone, input.Channel, input.Amount, status); err != nil {
		return Account{}, err
	}

	updated, err := s.commit(ctx, account, func(a Account, now time.Time) (Account, error) {
		return strat.apply(a, input.Amount, now)
	})
	if err != nil {
		return Account{}, err
	}

	metrics.WalletRecharges.WithLabelValues(string(scheme)).Inc()
	s.notify(ctx, notification.Message{
		Kind:        notification.KindWalletRecharge,
		Destination: input.VendorPhone,
		Body:        fmt.Sprintf("Recharge of %d applied under %s scheme", input.Amount, scheme),
	})
	return updated, nil
}

// Debit deducts a completed trip from the vendor wallet. Under the per-trip
// scheme the balance must cover the amount; under the monthly scheme the
// billing period must cover the deduction time and the balance is untouched.
// The audit record carries a negative amount.
func (s *Service) Debit(ctx context.Context, vendorPhone string, amount int64) (Account, error) {
	if amount <= 0 {
		return Account{}, apperr.InvalidArgument("debit amount must be positive")
	}

	account, err := s.accounts.Get(ctx, vendorPhone)
	if err != nil {
		return Account{}, err
	}
	if err := checkDebit(account, amount, time.Now().UTC()); err != nil {
		return Account{}, err
	}

	if err := s.appendPayment(ctx, vendorPhone, ChannelTripDeduction, -amount, PaymentCompleted); err != nil {
		return Account{}, err
	}

	updated, err := s.commit(ctx, account, func(a Account, now time.Time) (Account, error) {
		if err := checkDebit(a, amount, now); err != nil {
			return Account{}, err
		}
		if a.Scheme == SchemePerTrip {
			a.Balance -= amount
		}
		return a, nil
	})
	if err != nil {
		return Account{}, err
	}

	metrics.WalletDebits.Inc()
	s.notify(ctx, notification.Message{
		Kind:        notification.KindTripDeduction,
		Destination: vendorPhone,
		Body:        fmt.Sprintf("Trip deduction of %d applied", amount),
	})
	return updated, nil
}

func checkDebit(account Account, amount int64, now time.Time) error {
	switch account.Scheme {
	case SchemePerTrip:
		if account.Balance < amount {
			return apperr.FailedPrecondition("wallet balance %d cannot cover deduction of %d", account.Balance, amount)
		}
	case SchemeMonthly:
		if now.After(account.PeriodEnd) {
			return apperr.FailedPrecondition("monthly scheme expired on %s", account.PeriodEnd.Format(time.DateOnly))
		}
	}
	return nil
}

// GetWalletDetail fetches the current account state. It never mutates.
func (s *Service) GetWalletDetail(ctx context.Context, vendorPhone string) (Account, error) {
	return s.accounts.Get(ctx, vendorPhone)
}

// GetPaymentHistory returns the most recent audit records, newest first. A
// vendor with no history gets an empty list.
func (s *Service) GetPaymentHistory(ctx context.Context, vendorPhone string, limit int) ([]Payment, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	return s.payments.ListRecent(ctx, vendorPhone, limit)
}

// commit runs the read-apply-update loop under optimistic concurrency. The
// conditional write targets the version the account was read at; a conflict
// re-reads and reapplies, bounded by the retry limit.
func (s *Service) commit(ctx context.Context, account Account, apply func(Account, time.Time) (Account, error)) (Account, error) {
	for attempt := 0; attempt < s.retryLimit; attempt++ {
		updated, err := apply(account, time.Now().UTC())
		if err != nil {
			return Account{}, err
		}
		updated.UpdatedAt = time.Now().UTC()

		err = s.accounts.Update(ctx, updated)
		if err == nil {
			updated.Version++
			return updated, nil
		}
		if !errors.Is(err, ErrVersionConflict) {
			return Account{}, err
		}

		metrics.WalletUpdateConflicts.Inc()
		if s.logger != nil {
			s.logger.Debug("wallet update conflict", "vendor", account.VendorPhone, "attempt", attempt+1)
		}
		account, err = s.accounts.Get(ctx, account.VendorPhone)
		if err != nil {
			return Account{}, err
		}
	}
	return Account{}, apperr.Aborted("wallet update for vendor %s abandoned after %d attempts", account.VendorPhone, s.retryLimit)
}

func (s *Service) appendPayment(ctx context.Context, vendorPhone, channel string, amount int64, status string) error {
	if channel == "" {
		channel = "UNKNOWN"
	}
	payment := Payment{
		ID:          uuid.NewString(),
		VendorPhone: vendorPhone,
		Channel:     channel,
		Amount:      amount,
		Status:      status,
		RecordedAt:  time.Now().UTC(),
	}
	if err := s.payments.Append(ctx, payment); err != nil {
		return err
	}
	metrics.PaymentRecords.Inc()
	return nil
}

func (s *Service) notify(ctx context.Context, msg notification.Message) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Send(ctx, msg); err != nil && s.logger != nil {
		s.logger.Warn("notification failed", "kind", msg.Kind, "error", err)
	}
}

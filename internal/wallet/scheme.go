package wallet

import (
	"time"

	"github.com/ride-mitra/ride_mitra/internal/apperr"
)

// strategy computes the account state a recharge produces. Implementations
// are pure: they never touch storage and never mutate their input.
type strategy interface {
	apply(account Account, amount int64, now time.Time) (Account, error)
}

func strategyFor(scheme Scheme) (strategy, error) {
	switch scheme {
	case SchemeMonthly:
		return monthlyScheme{}, nil
	case SchemePerTrip:
		return perTripScheme{}, nil
	default:
		return nil, apperr.InvalidArgument("invalid scheme %q: use MONTHLY (1) or PER_TRIP (2)", string(scheme))
	}
}

type monthlyScheme struct{}

// apply extends the billing window by one month from the existing period end,
// not from now, so an early renewal keeps the unused days. The recharge amount
// is recorded in the payment history but does not alter the balance.
func (monthlyScheme) apply(account Account, _ int64, now time.Time) (Account, error) {
	account.Scheme = SchemeMonthly
	account.PeriodStart = now
	account.PeriodEnd = addOneMonth(account.PeriodEnd)
	account.Active = true
	return account, nil
}

type perTripScheme struct{}

func (perTripScheme) apply(account Account, amount int64, _ time.Time) (Account, error) {
	if amount < 0 {
		return Account{}, apperr.InvalidArgument("recharge amount must not be negative")
	}
	account.Scheme = SchemePerTrip
	account.Balance += amount
	account.Active = true
	return account, nil
}

func addOneMonth(t time.Time) time.Time {
	return t.AddDate(0, 1, 0)
}

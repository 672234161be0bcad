package rides

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ride-mitra/ride_mitra/internal/apperr"
	"github.com/ride-mitra/ride_mitra/internal/wallet"
)

// BookRequest carries the details of a ride booking.
type BookRequest struct {
	CustomerPhone string
	VendorPhone   string
	PickupPoint   string
	DropPoint     string
	Fare          int64
}

// Service books rides and charges vendor wallets for each trip.
type Service struct {
	rides   Repository
	wallets *wallet.Service
	logger  *slog.Logger
	now     func() time.Time
}

// NewService builds a ride service on top of the given stores.
func NewService(rides Repository, wallets *wallet.Service, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{rides: rides, wallets: wallets, logger: logger, now: time.Now}
}

// Book confirms a ride after debiting the vendor's wallet for the trip.
// The debit is the commission gate: a vendor whose wallet cannot cover
// the trip does not receive the booking.
func (s *Service) Book(ctx context.Context, req BookRequest) (Ride, error) {
	if req.CustomerPhone == "" {
		return Ride{}, apperr.InvalidArgument("customer phone is mandatory")
	}
	if req.VendorPhone == "" {
		return Ride{}, apperr.InvalidArgument("vendor phone is mandatory")
	}
	if req.Fare <= 0 {
		return Ride{}, apperr.InvalidArgument("fare must be positive, got %d", req.Fare)
	}

	if _, err := s.wallets.Debit(ctx, req.VendorPhone, req.Fare); err != nil {
		return Ride{}, err
	}

	ride := Ride{
		ID:            uuid.NewString(),
		CustomerPhone: req.CustomerPhone,
		VendorPhone:   req.VendorPhone,
		PickupPoint:   req.PickupPoint,
		DropPoint:     req.DropPoint,
		Fare:          req.Fare,
		Status:        StatusConfirmed,
		BookedAt:      s.now().UTC(),
	}
	if err := s.rides.Create(ctx, ride); err != nil {
		// The wallet was already charged. Surface the failure and keep
		// the deduction record as the audit trail for reconciliation.
		s.logger.Error("ride persist failed after wallet debit",
			"vendor_phone", req.VendorPhone, "fare", req.Fare, "error", err)
		return Ride{}, err
	}

	s.logger.Info("ride booked",
		"ride_id", ride.ID, "customer_phone", ride.CustomerPhone,
		"vendor_phone", ride.VendorPhone, "fare", ride.Fare)
	return ride, nil
}

// Get returns a single ride by identifier.
func (s *Service) Get(ctx context.Context, id string) (Ride, error) {
	if id == "" {
		return Ride{}, apperr.InvalidArgument("ride id is mandatory")
	}
	return s.rides.Get(ctx, id)
}

// History returns the customer's most recent rides, newest first.
func (s *Service) History(ctx context.Context, customerPhone string, limit int) ([]Ride, error) {
	if customerPhone == "" {
		return nil, apperr.InvalidArgument("customer phone is mandatory")
	}
	if limit <= 0 {
		limit = 10
	}
	return s.rides.ListByCustomer(ctx, customerPhone, limit)
}

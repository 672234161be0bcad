package car

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ride-mitra/ride_mitra/internal/apperr"
	"github.com/ride-mitra/ride_mitra/internal/vendor"
)

// Service manages vehicle registrations against the vendor directory.
type Service struct {
	repo    Repository
	vendors *vendor.Service
}

// NewService builds a car registration service.
func NewService(repo Repository, vendors *vendor.Service) *Service {
	return &Service{repo: repo, vendors: vendors}
}

// RegisterInput captures data required to register a car.
type RegisterInput struct {
	VendorPhone string
	Maker       string
	Model       string
	PlateNo     string
	Seats       int
	Category    string
}

// Register maps a car to an activated vendor profile.
func (s *Service) Register(ctx context.Context, input RegisterInput) (Car, error) {
	if input.VendorPhone == "" {
		return Car{}, apperr.InvalidArgument("vendor phone number is mandatory")
	}
	if input.PlateNo == "" {
		return Car{}, apperr.InvalidArgument("number plate is mandatory")
	}

	owner, err := s.vendors.Get(ctx, input.VendorPhone)
	if err != nil {
		return Car{}, err
	}
	if !owner.Active {
		return Car{}, apperr.FailedPrecondition("vendor %s (%s) profile is not activated", owner.Name, owner.Phone)
	}

	car := Car{
		ID:           uuid.NewString(),
		VendorPhone:  input.VendorPhone,
		Maker:        input.Maker,
		Model:        input.Model,
		PlateNo:      input.PlateNo,
		Seats:        input.Seats,
		Category:     input.Category,
		RegisteredAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, car); err != nil {
		return Car{}, err
	}
	return car, nil
}

// GetByPlate fetches a registered car.
func (s *Service) GetByPlate(ctx context.Context, plateNo string) (Car, error) {
	return s.repo.GetByPlate(ctx, plateNo)
}

// ListByVendor returns every car mapped to the vendor.
func (s *Service) ListByVendor(ctx context.Context, vendorPhone string) ([]Car, error) {
	return s.repo.ListByVendor(ctx, vendorPhone)
}

package customer

import (
	"context"
	"time"

	"github.com/ride-mitra/ride_mitra/internal/apperr"
)

// Service manages customer profiles.
type Service struct {
	repo Repository
}

// NewService creates a customer service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateInput captures data required to register a customer.
type CreateInput struct {
	Phone string
	Name  string
	Email string
}

// Create registers a customer profile. Customers are active immediately.
func (s *Service) Create(ctx context.Context, input CreateInput) (Customer, error) {
	if input.Phone == "" {
		return Customer{}, apperr.InvalidArgument("customer phone number is mandatory")
	}
	customer := Customer{
		Phone:     input.Phone,
		Name:      input.Name,
		Email:     input.Email,
		Active:    true,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, customer); err != nil {
		return Customer{}, err
	}
	return customer, nil
}

// Get fetches a customer profile.
func (s *Service) Get(ctx context.Context, phone string) (Customer, error) {
	return s.repo.Get(ctx, phone)
}

// Activate re-enables a suspended customer profile.
func (s *Service) Activate(ctx context.Context, phone string) (Customer, error) {
	return s.repo.SetActive(ctx, phone, true)
}

// Deactivate suspends a customer profile.
func (s *Service) Deactivate(ctx context.Context, phone string) (Customer, error) {
	return s.repo.SetActive(ctx, phone, false)
}

package car

import (
	"context"
	"testing"

	"github.com/ride-mitra/ride_mitra/internal/apperr"
	"github.com/ride-mitra/ride_mitra/internal/vendor"
)

func setupVendors(t *testing.T) *vendor.Service {
	t.Helper()
	vendors := vendor.NewService(vendor.NewMemoryRepository())
	ctx := context.Background()
	if _, err := vendors.Create(ctx, vendor.CreateInput{Phone: "919800000001", Name: "Ravi"}); err != nil {
		t.Fatalf("create vendor: %v", err)
	}
	if _, err := vendors.Create(ctx, vendor.CreateInput{Phone: "919800000002", Name: "Sita"}); err != nil {
		t.Fatalf("create vendor: %v", err)
	}
	if _, err := vendors.Activate(ctx, "919800000001"); err != nil {
		t.Fatalf("activate vendor: %v", err)
	}
	return vendors
}

func TestRegisterOnActivatedVendor(t *testing.T) {
	svc := NewService(NewMemoryRepository(), setupVendors(t))
	ctx := context.Background()

	car, err := svc.Register(ctx, RegisterInput{VendorPhone: "919800000001", Maker: "Maruti", Model: "Dzire", PlateNo: "TN01AB1234", Seats: 4, Category: "sedan"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if car.ID == "" {
		t.Fatalf("expected generated car id")
	}

	cars, err := svc.ListByVendor(ctx, "919800000001")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(cars) != 1 {
		t.Fatalf("expected one car, got %d", len(cars))
	}
}

func TestRegisterRejectsInactiveVendor(t *testing.T) {
	svc := NewService(NewMemoryRepository(), setupVendors(t))
	_, err := svc.Register(context.Background(), RegisterInput{VendorPhone: "919800000002", PlateNo: "TN02XY9999"})
	if apperr.KindOf(err) != apperr.KindFailedPrecondition {
		t.Fatalf("expected failed_precondition, got %v", err)
	}
}

func TestRegisterDuplicatePlate(t *testing.T) {
	svc := NewService(NewMemoryRepository(), setupVendors(t))
	ctx := context.Background()
	if _, err := svc.Register(ctx, RegisterInput{VendorPhone: "919800000001", PlateNo: "TN01AB1234"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	_, err := svc.Register(ctx, RegisterInput{VendorPhone: "919800000001", PlateNo: "TN01AB1234"})
	if apperr.KindOf(err) != apperr.KindConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
}

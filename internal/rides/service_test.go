package rides

import (
	"context"
	"testing"

	"github.com/ride-mitra/ride_mitra/internal/apperr"
	"github.com/ride-mitra/ride_mitra/internal/logging"
	"github.com/ride-mitra/ride_mitra/internal/wallet"
)

type stubDirectory struct {
	vendors map[string]wallet.VendorInfo
}

func (d stubDirectory) Lookup(_ context.Context, phone string) (wallet.VendorInfo, error) {
	v, ok := d.vendors[phone]
	if !ok {
		return wallet.VendorInfo{}, apperr.NotFound("vendor %s not found", phone)
	}
	return v, nil
}

func newTestService(t *testing.T) (*Service, *wallet.Service) {
	t.Helper()
	dir := stubDirectory{vendors: map[string]wallet.VendorInfo{
		"919800000001": {Name: "Ravi", Phone: "919800000001", Active: true},
	}}
	wallets := wallet.NewService(
		wallet.NewMemoryAccountStore(),
		wallet.NewMemoryPaymentStore(),
		dir,
		wallet.WithLogger(logging.Discard()),
	)
	svc := NewService(NewMemoryRepository(), wallets, logging.Discard())
	return svc, wallets
}

func TestBookDebitsVendorWallet(t *testing.T) {
	ctx := context.Background()
	svc, wallets := newTestService(t)

	if _, err := wallets.CreateWallet(ctx, "919800000001", 0); err != nil {
		t.Fatalf("CreateWallet: %v", err)
	}
	if _, err := wallets.Recharge(ctx, wallet.RechargeInput{
		VendorPhone: "919800000001",
		Scheme:      "PER_TRIP",
		Amount:      100,
	}); err != nil {
		t.Fatalf("Recharge: %v", err)
	}

	ride, err := svc.Book(ctx, BookRequest{
		CustomerPhone: "919700000001",
		VendorPhone:   "919800000001",
		PickupPoint:   "Station Road",
		DropPoint:     "City Mall",
		Fare:          30,
	})
	if err != nil {
		t.Fatalf("Book: %v", err)
	}
	if ride.Status != StatusConfirmed {
		t.Fatalf("status = %q, want %q", ride.Status, StatusConfirmed)
	}

	account, err := wallets.GetWalletDetail(ctx, "919800000001")
	if err != nil {
		t.Fatalf("GetWalletDetail: %v", err)
	}
	if account.Balance != 70 {
		t.Fatalf("balance after booking = %d, want 70", account.Balance)
	}
}

func TestBookFailsWhenWalletCannotCoverFare(t *testing.T) {
	ctx := context.Background()
	svc, wallets := newTestService(t)

	if _, err := wallets.CreateWallet(ctx, "919800000001", 0); err != nil {
		t.Fatalf("CreateWallet: %v", err)
	}
	if _, err := wallets.Recharge(ctx, wallet.RechargeInput{
		VendorPhone: "919800000001",
		Scheme:      "PER_TRIP",
		Amount:      20,
	}); err != nil {
		t.Fatalf("Recharge: %v", err)
	}

	_, err := svc.Book(ctx, BookRequest{
		CustomerPhone: "919700000001",
		VendorPhone:   "919800000001",
		PickupPoint:   "Station Road",
		DropPoint:     "Airport",
		Fare:          50,
	})
	if apperr.KindOf(err) != apperr.KindFailedPrecondition {
		t.Fatalf("kind = %v, want failed precondition", apperr.KindOf(err))
	}

	rides, err := svc.History(ctx, "919700000001", 10)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(rides) != 0 {
		t.Fatalf("rides after failed booking = %d, want 0", len(rides))
	}
}

func TestBookValidatesInput(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	cases := []struct {
		name string
		req  BookRequest
	}{
		{"missing customer", BookRequest{VendorPhone: "919800000001", Fare: 10}},
		{"missing vendor", BookRequest{CustomerPhone: "919700000001", Fare: 10}},
		{"zero fare", BookRequest{CustomerPhone: "919700000001", VendorPhone: "919800000001"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Book(ctx, tc.req); apperr.KindOf(err) != apperr.KindInvalidArgument {
				t.Fatalf("kind = %v, want invalid argument", apperr.KindOf(err))
			}
		})
	}
}

func TestHistoryNewestFirst(t *testing.T) {
	ctx := context.Background()
	svc, wallets := newTestService(t)

	if _, err := wallets.CreateWallet(ctx, "919800000001", 0); err != nil {
		t.Fatalf("CreateWallet: %v", err)
	}
	if _, err := wallets.Recharge(ctx, wallet.RechargeInput{
		VendorPhone: "919800000001",
		Scheme:      "PER_TRIP",
		Amount:      500,
	}); err != nil {
		t.Fatalf("Recharge: %v", err)
	}

	drops := []string{"A", "B", "C"}
	for _, drop := range drops {
		if _, err := svc.Book(ctx, BookRequest{
			CustomerPhone: "919700000001",
			VendorPhone:   "919800000001",
			PickupPoint:   "Station Road",
			DropPoint:     drop,
			Fare:          10,
		}); err != nil {
			t.Fatalf("Book %s: %v", drop, err)
		}
	}

	rides, err := svc.History(ctx, "919700000001", 2)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(rides) != 2 {
		t.Fatalf("len = %d, want 2", len(rides))
	}
	if rides[0].DropPoint != "C" || rides[1].DropPoint != "B" {
		t.Fatalf("order = [%s %s], want [C B]", rides[0].DropPoint, rides[1].DropPoint)
	}
}

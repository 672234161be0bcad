package wallet

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ride-mitra/ride_mitra/internal/apperr"
)

func TestMemoryAccountStoreConditionalUpdate(t *testing.T) {
	store := NewMemoryAccountStore()
	ctx := context.Background()

	now := time.Now().UTC()
	account := Account{VendorPhone: "919800000001", Scheme: SchemePerTrip, Active: true, CreatedAt: now, UpdatedAt: now}
	if err := store.Create(ctx, account); err != nil {
		t.Fatalf("create: %v", err)
	}

	read, err := store.Get(ctx, "919800000001")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if read.Version != 1 {
		t.Fatalf("expected version 1 after create, got %d", read.Version)
	}

	stale := read
	read.Balance = 100
	if err := store.Update(ctx, read); err != nil {
		t.Fatalf("update: %v", err)
	}

	// A second writer holding the old version must not clobber the first.
	stale.Balance = 999
	if err := store.Update(ctx, stale); !errors.Is(err, ErrVersionConflict) {
		t.Fatalf("expected version conflict, got %v", err)
	}

	current, _ := store.Get(ctx, "919800000001")
	if current.Balance != 100 || current.Version != 2 {
		t.Fatalf("unexpected state after conflict: %+v", current)
	}
}

func TestMemoryAccountStoreUpdateMissing(t *testing.T) {
	store := NewMemoryAccountStore()
	err := store.Update(context.Background(), Account{VendorPhone: "none", Version: 1})
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Fatalf("expected not_found, got %v", err)
	}
}

func TestMemoryPaymentStoreListRecent(t *testing.T) {
	store := NewMemoryPaymentStore()
	ctx := context.Background()

	for i, amount := range []int64{5, 10, 15} {
		p := Payment{
			ID:          "p" + string(rune('a'+i)),
			VendorPhone: "919800000001",
			Channel:     "UPI",
			Amount:      amount,
			Status:      PaymentCompleted,
			RecordedAt:  time.Now().UTC(),
		}
		if err := store.Append(ctx, p); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	recent, err := store.ListRecent(ctx, "919800000001", 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(recent) != 2 || recent[0].Amount != 15 || recent[1].Amount != 10 {
		t.Fatalf("expected newest-first [15 10], got %+v", recent)
	}
}

package feedback

import (
	"context"
	"testing"

	"github.com/ride-mitra/ride_mitra/internal/apperr"
)

func TestCreateRejectsDuplicateReviewer(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	input := CreateInput{VendorPhone: "919800000001", CustomerPhone: "917700000001", StarRating: 5, ReviewerName: "Asha"}
	if _, err := svc.Create(ctx, input); err != nil {
		t.Fatalf("create: %v", err)
	}
	_, err := svc.Create(ctx, input)
	if apperr.KindOf(err) != apperr.KindConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestCreateValidatesRating(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	_, err := svc.Create(context.Background(), CreateInput{VendorPhone: "v", CustomerPhone: "c", StarRating: 6})
	if apperr.KindOf(err) != apperr.KindInvalidArgument {
		t.Fatalf("expected invalid_argument, got %v", err)
	}
}

func TestSummaryAggregation(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	ratings := []struct {
		customer string
		stars    int
		badges   []string
	}{
		{"917700000001", 5, []string{"Women Safe", "Clean Car"}},
		{"917700000002", 4, []string{"Women Safe"}},
		{"917700000003", 5, []string{"Women Safe", "Polite"}},
		{"917700000004", 2, nil},
		{"917700000005", 4, []string{"Clean Car"}},
	}
	for _, r := range ratings {
		if _, err := svc.Create(ctx, CreateInput{VendorPhone: "919800000001", CustomerPhone: r.customer, StarRating: r.stars, Badges: r.badges}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	summary, err := svc.SummaryFor(ctx, "919800000001")
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.TotalTrips != 5 {
		t.Fatalf("expected 5 trips, got %d", summary.TotalTrips)
	}
	if summary.AvgRating != 4.0 {
		t.Fatalf("expected avg 4.0, got %v", summary.AvgRating)
	}
	if summary.StarCounts != [5]int{2, 2, 0, 1, 0} {
		t.Fatalf("unexpected star counts: %v", summary.StarCounts)
	}

	wantBadges := []string{"Clean Car 40%", "Polite 20%", "Women Safe 60%"}
	if len(summary.Badges) != len(wantBadges) {
		t.Fatalf("unexpected badges: %v", summary.Badges)
	}
	for i, badge := range wantBadges {
		if summary.Badges[i] != badge {
			t.Fatalf("badge %d: want %q got %q", i, badge, summary.Badges[i])
		}
	}
}

func TestSummaryEmptyVendor(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	summary, err := svc.SummaryFor(context.Background(), "919899999999")
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.TotalTrips != 0 || summary.AvgRating != 0 {
		t.Fatalf("expected zero summary, got %+v", summary)
	}
}

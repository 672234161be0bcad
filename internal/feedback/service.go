package feedback

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/ride-mitra/ride_mitra/internal/apperr"
)

// Service manages vendor feedback and rating aggregation.
type Service struct {
	repo Repository
}

// NewService builds a feedback service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateInput captures one feedback submission.
type CreateInput struct {
	VendorPhone   string
	CustomerPhone string
	BookingID     string
	ReviewerName  string
	StarRating    int
	Comments      string
	Badges        []string
}

// Create records a feedback entry. A customer may rate a vendor only once.
func (s *Service) Create(ctx context.Context, input CreateInput) (Feedback, error) {
	if input.VendorPhone == "" || input.CustomerPhone == "" {
		return Feedback{}, apperr.InvalidArgument("vendor and customer phone numbers are mandatory")
	}
	if input.StarRating < 1 || input.StarRating > 5 {
		return Feedback{}, apperr.InvalidArgument("star rating must be between 1 and 5")
	}

	exists, err := s.repo.Exists(ctx, input.VendorPhone, input.CustomerPhone)
	if err != nil {
		return Feedback{}, err
	}
	if exists {
		return Feedback{}, apperr.Conflict("feedback from customer %s for vendor %s already exists", input.CustomerPhone, input.VendorPhone)
	}

	fb := Feedback{
		ID:            uuid.NewString(),
		VendorPhone:   input.VendorPhone,
		CustomerPhone: input.CustomerPhone,
		BookingID:     input.BookingID,
		ReviewerName:  input.ReviewerName,
		StarRating:    input.StarRating,
		Comments:      input.Comments,
		Badges:        input.Badges,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, fb); err != nil {
		return Feedback{}, err
	}
	return fb, nil
}

// SummaryFor aggregates all feedback for the vendor into display-ready form.
func (s *Service) SummaryFor(ctx context.Context, vendorPhone string) (Summary, error) {
	entries, err := s.repo.ListByVendor(ctx, vendorPhone)
	if err != nil {
		return Summary{}, err
	}
	summary := aggregate(entries)
	summary.VendorPhone = vendorPhone
	return summary, nil
}

// aggregate folds raw entries into per-star counts, the average rating and
// badge frequencies expressed as a share of total trips.
func aggregate(entries []Feedback) Summary {
	summary := Summary{TotalTrips: len(entries), Items: entries}
	if len(entries) == 0 {
		return summary
	}

	var ratingSum int
	badgeCounts := make(map[string]int)
	for _, fb := range entries {
		if fb.StarRating >= 1 && fb.StarRating <= 5 {
			ratingSum += fb.StarRating
			summary.StarCounts[5-fb.StarRating]++
		}
		for _, badge := range fb.Badges {
			badgeCounts[badge]++
		}
	}

	summary.AvgRating = math.Round(float64(ratingSum)/float64(len(entries))*10) / 10

	badges := make([]string, 0, len(badgeCounts))
	for badge, count := range badgeCounts {
		pct := int(math.Round(float64(count) / float64(len(entries)) * 100))
		badges = append(badges, fmt.Sprintf("%s %d%%", badge, pct))
	}
	sort.Strings(badges)
	summary.Badges = badges
	return summary
}

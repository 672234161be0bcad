package feedback

import "time"

// Feedback is one customer's rating of a vendor after a completed trip.
type Feedback struct {
	ID            string
	VendorPhone   string
	CustomerPhone string
	BookingID     string
	ReviewerName  string
	StarRating    int
	Comments      string
	Badges        []string
	CreatedAt     time.Time
}

// Summary aggregates every feedback entry for a vendor.
type Summary struct {
	VendorPhone string
	TotalTrips  int
	AvgRating   float64
	// StarCounts holds counts indexed from five stars down to one, so
	// StarCounts[0] is the number of five-star ratings.
	StarCounts [5]int
	// Badges lists each scored badge with the share of trips awarding it,
	// e.g. "Women Safe 80%".
	Badges []string
	Items  []Feedback
}

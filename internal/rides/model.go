package rides

import "time"

// Ride statuses.
const (
	StatusConfirmed = "CONFIRMED"
	StatusCompleted = "COMPLETED"
)

// Ride is one booking connecting a customer to a vendor.
type Ride struct {
	ID            string
	CustomerPhone string
	VendorPhone   string
	PickupPoint   string
	DropPoint     string
	Fare          int64
	Status        string
	BookedAt      time.Time
}

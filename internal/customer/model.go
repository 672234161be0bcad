package customer

import "time"

// Customer is a rider profile, keyed by phone number.
type Customer struct {
	Phone     string
	Name      string
	Email     string
	Active    bool
	CreatedAt time.Time
}

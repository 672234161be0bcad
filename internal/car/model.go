package car

import "time"

// Car is a vehicle registered against a vendor profile.
type Car struct {
	ID           string
	VendorPhone  string
	Maker        string
	Model        string
	PlateNo      string
	Seats        int
	Category     string
	RegisteredAt time.Time
}

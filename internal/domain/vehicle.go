package domain

import "time"

// Vehicle is an EV owned by a single user. Trips do not reference a
// vehicle; the fleet is tracked per owner only.
type Vehicle struct {
	ID              string
	OwnerID         string
	Make            string
	Model           string
	Year            int
	BatteryCapacity float64 // kWh
	CurrentBattery  float64 // kWh remaining
	CreatedAt       time.Time
}

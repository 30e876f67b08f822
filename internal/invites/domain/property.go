package domain

import "time"

// Property is the minimal registry record needed to issue codes against:
// ownership for authorization and a display name for validation results.
type Property struct {
	ID         string
	LandlordID string
	Name       string
	Address    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

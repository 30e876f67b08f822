package invitesdk

import "time"

// InviteCode is the wire representation of an invite code record.
type InviteCode struct {
	ID              string     `json:"id"`
	Code            string     `json:"code"`
	PropertyID      string     `json:"property_id"`
	LandlordID      string     `json:"landlord_id"`
	UnitID          string     `json:"unit_id,omitempty"`
	RestrictedEmail string     `json:"restricted_email,omitempty"`
	Status          string     `json:"status"`
	ExpiresAt       time.Time  `json:"expires_at"`
	UsedAt          *time.Time `json:"used_at,omitempty"`
	UsedBy          string     `json:"used_by,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// Tenancy is the wire representation of a tenant-property link.
type Tenancy struct {
	ID           string     `json:"id"`
	PropertyID   string     `json:"property_id"`
	UnitID       string     `json:"unit_id,omitempty"`
	TenantID     string     `json:"tenant_id"`
	InviteCodeID string     `json:"invite_code_id"`
	Status       string     `json:"status"`
	StartDate    time.Time  `json:"start_date"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Property is the wire representation of a property record.
type Property struct {
	ID         string    `json:"id"`
	LandlordID string    `json:"landlord_id"`
	Name       string    `json:"name"`
	Address    string    `json:"address,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// MintRequest asks for one invite code.
type MintRequest struct {
	PropertyID      string `json:"property_id"`
	UnitID          string `json:"unit_id,omitempty"`
	RestrictedEmail string `json:"restricted_email,omitempty"`
	ExpirationDays  int    `json:"expiration_days,omitempty"`
}

// BulkMintRequest asks for up to 50 codes sharing the same parameters.
type BulkMintRequest struct {
	MintRequest
	Count int `json:"count"`
}

// BulkMintItem is the per-position outcome of a bulk mint.
type BulkMintItem struct {
	Invite *InviteCode `json:"invite,omitempty"`
	Error  string      `json:"error,omitempty"`
}

// BulkMintResponse reports every position of a bulk mint, successes and
// failures alike.
type BulkMintResponse struct {
	Items     []BulkMintItem `json:"items"`
	Succeeded int            `json:"succeeded"`
	Failed    int            `json:"failed"`
}

// ValidateRequest presents a code for a read-only check.
type ValidateRequest struct {
	Code string `json:"code"`
}

// ValidateResponse is the verdict. Invalid codes are a 200 with
// is_valid=false; only infrastructure faults produce error statuses.
type ValidateResponse struct {
	IsValid bool   `json:"is_valid"`
	Reason  string `json:"reason,omitempty"`

	Code            string     `json:"code,omitempty"`
	PropertyID      string     `json:"property_id,omitempty"`
	PropertyName    string     `json:"property_name,omitempty"`
	UnitID          string     `json:"unit_id,omitempty"`
	RestrictedEmail string     `json:"restricted_email,omitempty"`
	ExpiresAt       *time.Time `json:"expires_at,omitempty"`
}

// RedeemRequest consumes a code for the authenticated tenant.
type RedeemRequest struct {
	Code string `json:"code"`
}

// RedeemResponse reports the winning redemption.
type RedeemResponse struct {
	Invite  InviteCode `json:"invite"`
	Tenancy Tenancy    `json:"tenancy"`
}

// ExtendRequest pushes an active code's deadline out.
type ExtendRequest struct {
	Days int `json:"days"`
}

// CreatePropertyRequest registers a property.
type CreatePropertyRequest struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
}

// PurgeRequest deletes terminal codes untouched for at least
// OlderThanDays days.
type PurgeRequest struct {
	OlderThanDays int `json:"older_than_days"`
}

// PurgeResponse reports how many records were deleted.
type PurgeResponse struct {
	Deleted int64 `json:"deleted"`
}

// InviteListResponse wraps a code listing.
type InviteListResponse struct {
	Invites []InviteCode `json:"invites"`
}

// TenancyListResponse wraps a tenancy listing.
type TenancyListResponse struct {
	Tenancies []Tenancy `json:"tenancies"`
}

// PropertyListResponse wraps a property listing.
type PropertyListResponse struct {
	Properties []Property `json:"properties"`
}

// HealthChecks reports the state of the service's dependencies.
type HealthChecks struct {
	Backend string `json:"backend"`
}

// HealthResponse is returned by the health probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

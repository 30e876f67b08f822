package domain

import (
	"strings"
	"time"
)

// TenancyStatus is the lifecycle state of a tenant-property relationship.
type TenancyStatus string

const (
	TenancyPending  TenancyStatus = "pending"
	TenancyActive   TenancyStatus = "active"
	TenancyArchived TenancyStatus = "archived"
)

// Tenancy links a tenant to a property. Exactly one is created per
// successful invite redemption and it records the code that created it.
// Ongoing tenancy management (rent, end dates, archival) belongs to the
// wider platform; this service only mints and lists them.
type Tenancy struct {
	ID           string
	PropertyID   string
	UnitID       string // "" if the code was not unit-scoped
	TenantID     string
	InviteCodeID string

	Status    TenancyStatus
	StartDate time.Time
	EndDate   *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Live reports whether the tenancy still occupies its property slot.
// Pending and active tenancies both block a second redemption for the
// same tenant and property.
func (t Tenancy) Live() bool {
	return t.Status == TenancyPending || t.Status == TenancyActive
}

// Tenant is the denormalized profile pointer updated at redemption so
// tenant-facing screens can resolve "my property" with a point read.
type Tenant struct {
	ID                string
	Email             string
	CurrentPropertyID string
	CurrentTenancyID  string
	UpdatedAt         time.Time
}

// equalEmail compares emails case-insensitively; the local-part/domain
// case distinction is not worth locking tenants out over.
func equalEmail(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

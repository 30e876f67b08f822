package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lodgeline/lodgeline/internal/invites/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")

	// ErrUnavailable marks transient infrastructure faults (connection
	// refused, timeout, backend overload). Callers may retry these with
	// backoff; every other error from this package is terminal.
	ErrUnavailable = errors.New("store: temporarily unavailable")

	// ErrEmailMismatch is returned by RedeemInviteCode when the code is
	// restricted to a different tenant identity.
	ErrEmailMismatch = errors.New("store: restricted email mismatch")

	// ErrTenancyExists is returned by RedeemInviteCode when the tenant
	// already holds a live tenancy on the code's property.
	ErrTenancyExists = errors.New("store: live tenancy already exists")
)

// StateError reports that a code was not in the active state a mutation
// required. Status is the state actually observed; UsedBy is set when that
// state is used, so a retrying client can recognise its own earlier win.
type StateError struct {
	Status domain.CodeStatus
	UsedBy string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("store: code is %s", e.Status)
}

// Store is the root data access interface. Concrete drivers (sqlite for
// durable direct writes, memory for dev/test) implement this. Sub-repos
// keep concerns tidy; multi-record atomicity lives inside the driver ops
// that need it rather than in a leaked transaction handle, so every driver
// can honour the same contract.
type Store interface {
	InviteCodes() InviteCodes
	Tenancies() Tenancies
	Properties() Properties

	ApplyMigrations() error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the backing store is reachable.
	Ping(ctx context.Context) error
}

// RedeemParams carries one redemption attempt into the store. The store
// re-checks every precondition inside its atomic unit; nothing from an
// earlier validation call is trusted.
type RedeemParams struct {
	Code        string // normalized code value
	TenantID    string
	TenantEmail string
	Now         time.Time
}

// RedeemResult is the all-or-nothing outcome of a winning redemption.
type RedeemResult struct {
	Code    domain.InviteCode
	Tenancy domain.Tenancy
}

type InviteCodes interface {
	// CreateInviteCode inserts a new code record. Returns ErrAlreadyExists
	// if another ACTIVE code holds the same code value; the unique
	// constraint at the persistence layer is the correctness guarantee,
	// generator pre-checks only reduce retries.
	CreateInviteCode(ctx context.Context, c domain.InviteCode) error

	// GetInviteCodeByID returns a code by record id.
	GetInviteCodeByID(ctx context.Context, id string) (domain.InviteCode, error)

	// GetInviteCodeByValue returns the record for a code value, preferring
	// the active one when historical reuse left terminal duplicates.
	GetInviteCodeByValue(ctx context.Context, code string) (domain.InviteCode, error)

	// ListInviteCodesByLandlord returns all codes issued by a landlord,
	// newest first.
	ListInviteCodesByLandlord(ctx context.Context, landlordID string) ([]domain.InviteCode, error)

	// ListInviteCodesByProperty returns all codes for a property, newest first.
	ListInviteCodesByProperty(ctx context.Context, propertyID string) ([]domain.InviteCode, error)

	// MarkInviteCodeExpired lazily transitions active -> expired. Idempotent:
	// re-applying to an already-terminal code is a no-op, not an error.
	MarkInviteCodeExpired(ctx context.Context, id string, now time.Time) error

	// RevokeInviteCode transitions active -> revoked and returns the updated
	// record. Returns *StateError if the code is not currently active
	// (a past deadline counts as expired even before the lazy write).
	RevokeInviteCode(ctx context.Context, id string, now time.Time) (domain.InviteCode, error)

	// ExtendInviteCode moves an active code's deadline to newExpiry.
	// Returns *StateError for terminal codes; terminal states stay terminal.
	ExtendInviteCode(ctx context.Context, id string, newExpiry, now time.Time) (domain.InviteCode, error)

	// RedeemInviteCode performs the single state-changing transition as one
	// atomic unit: a compare-and-swap on status=active (with the deadline in
	// the guard) plus creation of the tenancy and the tenant profile
	// pointer. Of N concurrent attempts on one code exactly one receives a
	// RedeemResult; the rest get *StateError with Status=used. Other
	// failures: ErrNotFound, ErrEmailMismatch, ErrTenancyExists. No partial
	// state survives any failure.
	RedeemInviteCode(ctx context.Context, p RedeemParams) (RedeemResult, error)

	// SweepExpired bulk-transitions overdue active codes to expired and
	// reports how many changed. Housekeeping only; never deletes.
	SweepExpired(ctx context.Context, now time.Time) (int64, error)

	// PurgeTerminal deletes terminal-status codes last touched before the
	// cutoff. This is the only deletion path, reserved for admin purges.
	PurgeTerminal(ctx context.Context, before time.Time) (int64, error)
}

type Tenancies interface {
	// GetTenancyByID returns a tenancy by id.
	GetTenancyByID(ctx context.Context, id string) (domain.Tenancy, error)

	// GetLiveTenancy returns the pending/active tenancy for a
	// (property, tenant) pair, if one exists.
	GetLiveTenancy(ctx context.Context, propertyID, tenantID string) (domain.Tenancy, error)

	// ListTenanciesByTenant returns a tenant's tenancies, newest first.
	ListTenanciesByTenant(ctx context.Context, tenantID string) ([]domain.Tenancy, error)

	// ListTenanciesByProperty returns a property's tenancies, newest first.
	ListTenanciesByProperty(ctx context.Context, propertyID string) ([]domain.Tenancy, error)
}

type Properties interface {
	// CreateProperty inserts a new property (id is provided by app via ULID).
	CreateProperty(ctx context.Context, p domain.Property) error

	// GetPropertyByID returns a property by id.
	GetPropertyByID(ctx context.Context, id string) (domain.Property, error)

	// ListPropertiesByLandlord returns a landlord's properties, newest first.
	ListPropertiesByLandlord(ctx context.Context, landlordID string) ([]domain.Property, error)
}

package domain

import "time"

// CodeStatus is the lifecycle state of an invite code.
//
// active is the only non-terminal state:
//
//	active --(expiry passed)--> expired
//	active --(redeemed)-------> used
//	active --(landlord revoke)-> revoked
type CodeStatus string

const (
	CodeActive  CodeStatus = "active"
	CodeUsed    CodeStatus = "used"
	CodeExpired CodeStatus = "expired"
	CodeRevoked CodeStatus = "revoked"
)

// Terminal reports whether no further transitions may leave this status.
func (s CodeStatus) Terminal() bool { return s != CodeActive }

// InviteCode is a short typable token a landlord issues to let one tenant
// join one property (and optionally one unit).
type InviteCode struct {
	ID         string
	Code       string // 8-char draw from the codex alphabet
	PropertyID string
	LandlordID string // owning account; also the issuer
	UnitID     string // optional sub-unit label, "" if unscoped

	// RestrictedEmail, when set, binds the code to one tenant identity.
	RestrictedEmail string

	Status    CodeStatus
	ExpiresAt time.Time
	UsedAt    *time.Time
	UsedBy    string // tenant account id, "" until redeemed

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ExpiredAt reports whether the code's deadline has passed at t. A code
// past its deadline is invalid regardless of the stored status; the stored
// status only catches up lazily.
func (c InviteCode) ExpiredAt(t time.Time) bool {
	return !c.ExpiresAt.After(t)
}

// RedeemableBy reports whether the identity email satisfies the code's
// restriction. Unrestricted codes accept anyone.
func (c InviteCode) RedeemableBy(email string) bool {
	return c.RestrictedEmail == "" || equalEmail(c.RestrictedEmail, email)
}

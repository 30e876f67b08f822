package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRequest = errors.New("invalid request")

	// ErrCodeNotFound covers both genuinely unknown codes and codes the
	// caller is not allowed to see. The two are indistinguishable on
	// purpose; existence must not leak.
	ErrCodeNotFound = errors.New("invite code not found")

	ErrCodeExpired = errors.New("invite code has expired")
	ErrCodeRevoked = errors.New("invite code has been revoked")

	// ErrEmailMismatch means the code is restricted to a different tenant
	// identity. The restricted address is never echoed back.
	ErrEmailMismatch = errors.New("invite code is restricted to a different email")

	// ErrTenancyExists means the tenant already holds a live tenancy on the
	// code's property, so redeeming would double-link them.
	ErrTenancyExists = errors.New("tenant already linked to this property")

	ErrPropertyNotFound = errors.New("property not found")

	// ErrCodeSpaceExhausted is returned when the generator cannot find a
	// free code value within its attempt budget. With a 32^8 space this
	// indicates something badly wrong, not bad luck.
	ErrCodeSpaceExhausted = errors.New("could not allocate a unique invite code")
)

// AlreadyUsedError is the terminal outcome of redeeming a used code.
// UsedByYou lets a client that timed out on its own redemption recognise
// its earlier win without leaking who else holds the code.
type AlreadyUsedError struct {
	UsedByYou bool
}

func (e *AlreadyUsedError) Error() string {
	if e.UsedByYou {
		return "invite code already redeemed by this account"
	}
	return "invite code has already been used"
}

// IsBusinessError reports whether err is an expected business outcome
// rather than an infrastructure fault. Business outcomes are terminal and
// must never be retried.
func IsBusinessError(err error) bool {
	var used *AlreadyUsedError
	return errors.Is(err, ErrInvalidRequest) ||
		errors.Is(err, ErrCodeNotFound) ||
		errors.Is(err, ErrCodeExpired) ||
		errors.Is(err, ErrCodeRevoked) ||
		errors.Is(err, ErrEmailMismatch) ||
		errors.Is(err, ErrTenancyExists) ||
		errors.Is(err, ErrPropertyNotFound) ||
		errors.As(err, &used)
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, fmt.Sprintf(format, args...))
}

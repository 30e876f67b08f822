package backend

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/lodgeline/lodgeline/internal/invites/domain"
	"github.com/lodgeline/lodgeline/internal/invites/service"
	"github.com/lodgeline/lodgeline/pkg/httpx"
	"github.com/lodgeline/lodgeline/pkg/invitesdk"
)

const (
	remoteMaxRetries   = 3
	remoteInitialDelay = 200 * time.Millisecond
)

// Remote proxies every operation to another deployment through the SDK.
// The caller's own bearer token is forwarded, so the remote side enforces
// identity and scopes exactly as if the client had called it directly.
// Transient faults are retried with exponential backoff; business
// outcomes are never retried.
type Remote struct {
	base *invitesdk.Client
}

func NewRemote(baseURL string) *Remote {
	return &Remote{base: invitesdk.NewClient(baseURL, "")}
}

// client returns a per-request client carrying the caller's token.
func (r *Remote) client(ctx context.Context) *invitesdk.Client {
	c := *r.base
	c.Token = httpx.RawToken(ctx)
	return &c
}

// retry runs op with bounded exponential backoff, retrying only
// infrastructure faults. Everything else is permanent.
func retry[T any](ctx context.Context, op func() (T, error)) (T, error) {
	policy := backoff.WithContext(
		backoff.WithMaxRetries(newExponential(), remoteMaxRetries), ctx)

	return backoff.RetryWithData(func() (T, error) {
		v, err := op()
		if err != nil && !retryable(err) {
			return v, backoff.Permanent(err)
		}
		return v, err
	}, policy)
}

func newExponential() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = remoteInitialDelay
	return b
}

func retryable(err error) bool {
	var apiErr *invitesdk.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Retryable()
	}
	return false
}

func (r *Remote) Generate(ctx context.Context, p service.GenerateParams) (domain.InviteCode, error) {
	resp, err := retry(ctx, func() (invitesdk.InviteCode, error) {
		return r.client(ctx).MintInvite(ctx, invitesdk.MintRequest{
			PropertyID:      p.PropertyID,
			UnitID:          p.UnitID,
			RestrictedEmail: p.RestrictedEmail,
			ExpirationDays:  p.ExpirationDays,
		})
	})
	if err != nil {
		return domain.InviteCode{}, mapAPIError(err)
	}
	return fromWireInvite(resp), nil
}

func (r *Remote) GenerateBulk(ctx context.Context, p service.GenerateParams, count int) ([]service.BulkItem, error) {
	resp, err := retry(ctx, func() (invitesdk.BulkMintResponse, error) {
		return r.client(ctx).MintInvitesBulk(ctx, invitesdk.BulkMintRequest{
			MintRequest: invitesdk.MintRequest{
				PropertyID:      p.PropertyID,
				UnitID:          p.UnitID,
				RestrictedEmail: p.RestrictedEmail,
				ExpirationDays:  p.ExpirationDays,
			},
			Count: count,
		})
	})
	if err != nil {
		return nil, mapAPIError(err)
	}

	items := make([]service.BulkItem, len(resp.Items))
	for i, item := range resp.Items {
		if item.Invite != nil {
			c := fromWireInvite(*item.Invite)
			items[i] = service.BulkItem{Code: &c}
		} else {
			items[i] = service.BulkItem{Err: errors.New(item.Error)}
		}
	}
	return items, nil
}

func (r *Remote) Validate(ctx context.Context, rawCode, identityEmail string) (service.ValidationResult, error) {
	// The identity email travels inside the forwarded token; the remote
	// side re-derives it there.
	resp, err := retry(ctx, func() (invitesdk.ValidateResponse, error) {
		return r.client(ctx).ValidateInvite(ctx, invitesdk.ValidateRequest{Code: rawCode})
	})
	if err != nil {
		return service.ValidationResult{}, mapAPIError(err)
	}

	out := service.ValidationResult{
		Valid:           resp.IsValid,
		Reason:          resp.Reason,
		Code:            resp.Code,
		PropertyID:      resp.PropertyID,
		PropertyName:    resp.PropertyName,
		UnitID:          resp.UnitID,
		RestrictedEmail: resp.RestrictedEmail,
	}
	if resp.ExpiresAt != nil {
		out.ExpiresAt = *resp.ExpiresAt
	}
	return out, nil
}

func (r *Remote) Redeem(ctx context.Context, rawCode, tenantID, tenantEmail string) (service.RedeemOutcome, error) {
	resp, err := retry(ctx, func() (invitesdk.RedeemResponse, error) {
		return r.client(ctx).RedeemInvite(ctx, invitesdk.RedeemRequest{Code: rawCode})
	})
	if err != nil {
		return service.RedeemOutcome{}, mapAPIError(err)
	}
	return service.RedeemOutcome{
		Code:    fromWireInvite(resp.Invite),
		Tenancy: fromWireTenancy(resp.Tenancy),
	}, nil
}

func (r *Remote) Revoke(ctx context.Context, codeID, landlordID string) (domain.InviteCode, error) {
	resp, err := retry(ctx, func() (invitesdk.InviteCode, error) {
		return r.client(ctx).RevokeInvite(ctx, codeID)
	})
	if err != nil {
		return domain.InviteCode{}, mapAPIError(err)
	}
	return fromWireInvite(resp), nil
}

func (r *Remote) Extend(ctx context.Context, codeID, landlordID string, days int) (domain.InviteCode, error) {
	resp, err := retry(ctx, func() (invitesdk.InviteCode, error) {
		return r.client(ctx).ExtendInvite(ctx, codeID, invitesdk.ExtendRequest{Days: days})
	})
	if err != nil {
		return domain.InviteCode{}, mapAPIError(err)
	}
	return fromWireInvite(resp), nil
}

func (r *Remote) ListByLandlord(ctx context.Context, landlordID string) ([]domain.InviteCode, error) {
	resp, err := retry(ctx, func() (invitesdk.InviteListResponse, error) {
		return r.client(ctx).ListInvites(ctx)
	})
	if err != nil {
		return nil, mapAPIError(err)
	}
	return fromWireInvites(resp.Invites), nil
}

func (r *Remote) ListByProperty(ctx context.Context, propertyID, landlordID string) ([]domain.InviteCode, error) {
	resp, err := retry(ctx, func() (invitesdk.InviteListResponse, error) {
		return r.client(ctx).ListPropertyInvites(ctx, propertyID)
	})
	if err != nil {
		return nil, mapAPIError(err)
	}
	return fromWireInvites(resp.Invites), nil
}

func (r *Remote) GetOwned(ctx context.Context, codeID, landlordID string) (domain.InviteCode, error) {
	// No single-code read endpoint; filter the caller's listing.
	codes, err := r.ListByLandlord(ctx, landlordID)
	if err != nil {
		return domain.InviteCode{}, err
	}
	for _, c := range codes {
		if c.ID == codeID {
			return c, nil
		}
	}
	return domain.InviteCode{}, service.ErrCodeNotFound
}

func (r *Remote) Purge(ctx context.Context, before time.Time) (int64, error) {
	days := int(time.Since(before).Hours() / 24)
	resp, err := retry(ctx, func() (invitesdk.PurgeResponse, error) {
		return r.client(ctx).PurgeInvites(ctx, invitesdk.PurgeRequest{OlderThanDays: days})
	})
	if err != nil {
		return 0, mapAPIError(err)
	}
	return resp.Deleted, nil
}

func (r *Remote) Ping(ctx context.Context) error {
	if err := r.base.Ready(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// mapAPIError translates wire errors back into the service error
// taxonomy so callers cannot tell which strategy served them.
func mapAPIError(err error) error {
	var apiErr *invitesdk.APIError
	if !errors.As(err, &apiErr) {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	switch apiErr.Code {
	case invitesdk.ErrorCodeInvalidRequest:
		return fmt.Errorf("%w: %s", service.ErrInvalidRequest, apiErr.Message)
	case invitesdk.ErrorCodeNotFound:
		return service.ErrCodeNotFound
	case invitesdk.ErrorCodeExpired:
		return service.ErrCodeExpired
	case invitesdk.ErrorCodeRevoked:
		return service.ErrCodeRevoked
	case invitesdk.ErrorCodeAlreadyUsed:
		return &service.AlreadyUsedError{UsedByYou: apiErr.UsedByYou}
	case invitesdk.ErrorCodeEmailMismatch:
		return service.ErrEmailMismatch
	case invitesdk.ErrorCodeTenancyExists:
		return service.ErrTenancyExists
	default:
		return fmt.Errorf("%w: %v", ErrUnavailable, apiErr)
	}
}

func fromWireInvite(w invitesdk.InviteCode) domain.InviteCode {
	return domain.InviteCode{
		ID:              w.ID,
		Code:            w.Code,
		PropertyID:      w.PropertyID,
		LandlordID:      w.LandlordID,
		UnitID:          w.UnitID,
		RestrictedEmail: w.RestrictedEmail,
		Status:          domain.CodeStatus(w.Status),
		ExpiresAt:       w.ExpiresAt,
		UsedAt:          w.UsedAt,
		UsedBy:          w.UsedBy,
		CreatedAt:       w.CreatedAt,
		UpdatedAt:       w.UpdatedAt,
	}
}

func fromWireInvites(ws []invitesdk.InviteCode) []domain.InviteCode {
	out := make([]domain.InviteCode, len(ws))
	for i, w := range ws {
		out[i] = fromWireInvite(w)
	}
	return out
}

func fromWireTenancy(w invitesdk.Tenancy) domain.Tenancy {
	return domain.Tenancy{
		ID:           w.ID,
		PropertyID:   w.PropertyID,
		UnitID:       w.UnitID,
		TenantID:     w.TenantID,
		InviteCodeID: w.InviteCodeID,
		Status:       domain.TenancyStatus(w.Status),
		StartDate:    w.StartDate,
		EndDate:      w.EndDate,
		CreatedAt:    w.CreatedAt,
		UpdatedAt:    w.UpdatedAt,
	}
}

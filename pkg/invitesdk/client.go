// Package invitesdk is a typed client for the invite service HTTP API.
// The remote backend strategy and the e2e tests both drive the service
// through it.
package invitesdk

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client talks to one invite service deployment. Token is a bearer token
// whose scopes bound what the client may call; requests the token cannot
// satisfy fail server-side with insufficient_scope.
type Client struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

// NewClient creates a client with a 10 second request timeout.
func NewClient(baseURL, token string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		Token:   token,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// MintInvite generates one invite code.
func (c *Client) MintInvite(ctx context.Context, req MintRequest) (InviteCode, error) {
	var out InviteCode
	err := c.doJSON(ctx, http.MethodPost, "/v1/invites", req, &out, http.StatusCreated)
	return out, err
}

// MintInvitesBulk generates up to 50 codes with shared parameters.
func (c *Client) MintInvitesBulk(ctx context.Context, req BulkMintRequest) (BulkMintResponse, error) {
	var out BulkMintResponse
	err := c.doJSON(ctx, http.MethodPost, "/v1/invites/bulk", req, &out, http.StatusMultiStatus)
	return out, err
}

// ValidateInvite checks a code without consuming it.
func (c *Client) ValidateInvite(ctx context.Context, req ValidateRequest) (ValidateResponse, error) {
	var out ValidateResponse
	err := c.doJSON(ctx, http.MethodPost, "/v1/invites/validate", req, &out, http.StatusOK)
	return out, err
}

// RedeemInvite consumes a code for the token's identity.
func (c *Client) RedeemInvite(ctx context.Context, req RedeemRequest) (RedeemResponse, error) {
	var out RedeemResponse
	err := c.doJSON(ctx, http.MethodPost, "/v1/invites/redeem", req, &out, http.StatusOK)
	return out, err
}

// RevokeInvite invalidates an active code by record id.
func (c *Client) RevokeInvite(ctx context.Context, inviteID string) (InviteCode, error) {
	var out InviteCode
	err := c.doJSON(ctx, http.MethodPost, "/v1/invites/"+url.PathEscape(inviteID)+"/revoke", nil, &out, http.StatusOK)
	return out, err
}

// ExtendInvite pushes an active code's deadline out by days.
func (c *Client) ExtendInvite(ctx context.Context, inviteID string, req ExtendRequest) (InviteCode, error) {
	var out InviteCode
	err := c.doJSON(ctx, http.MethodPost, "/v1/invites/"+url.PathEscape(inviteID)+"/extend", req, &out, http.StatusOK)
	return out, err
}

// ListInvites returns every code the token's landlord has issued.
func (c *Client) ListInvites(ctx context.Context) (InviteListResponse, error) {
	var out InviteListResponse
	err := c.doJSON(ctx, http.MethodGet, "/v1/invites", nil, &out, http.StatusOK)
	return out, err
}

// ListPropertyInvites returns a property's codes.
func (c *Client) ListPropertyInvites(ctx context.Context, propertyID string) (InviteListResponse, error) {
	var out InviteListResponse
	err := c.doJSON(ctx, http.MethodGet, "/v1/properties/"+url.PathEscape(propertyID)+"/invites", nil, &out, http.StatusOK)
	return out, err
}

// PurgeInvites deletes terminal codes older than the cutoff.
func (c *Client) PurgeInvites(ctx context.Context, req PurgeRequest) (PurgeResponse, error) {
	var out PurgeResponse
	err := c.doJSON(ctx, http.MethodPost, "/v1/invites/purge", req, &out, http.StatusOK)
	return out, err
}

// CreateProperty registers a property for the token's landlord.
func (c *Client) CreateProperty(ctx context.Context, req CreatePropertyRequest) (Property, error) {
	var out Property
	err := c.doJSON(ctx, http.MethodPost, "/v1/properties", req, &out, http.StatusCreated)
	return out, err
}

// GetProperty returns one of the token's landlord's properties.
func (c *Client) GetProperty(ctx context.Context, propertyID string) (Property, error) {
	var out Property
	err := c.doJSON(ctx, http.MethodGet, "/v1/properties/"+url.PathEscape(propertyID), nil, &out, http.StatusOK)
	return out, err
}

// ListProperties returns the token's landlord's properties.
func (c *Client) ListProperties(ctx context.Context) (PropertyListResponse, error) {
	var out PropertyListResponse
	err := c.doJSON(ctx, http.MethodGet, "/v1/properties", nil, &out, http.StatusOK)
	return out, err
}

// ListTenancies returns the token identity's tenancies.
func (c *Client) ListTenancies(ctx context.Context) (TenancyListResponse, error) {
	var out TenancyListResponse
	err := c.doJSON(ctx, http.MethodGet, "/v1/tenancies", nil, &out, http.StatusOK)
	return out, err
}

// ListPropertyTenancies returns a property's tenancies.
func (c *Client) ListPropertyTenancies(ctx context.Context, propertyID string) (TenancyListResponse, error) {
	var out TenancyListResponse
	err := c.doJSON(ctx, http.MethodGet, "/v1/properties/"+url.PathEscape(propertyID)+"/tenancies", nil, &out, http.StatusOK)
	return out, err
}

// Ready reports whether the remote deployment answers its readiness probe.
func (c *Client) Ready(ctx context.Context) error {
	resp, err := c.doRequest(ctx, http.MethodGet, "/readyz", nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &APIError{
			StatusCode: resp.StatusCode,
			Code:       ErrorCodeUnavailable,
			Message:    "service not ready",
		}
	}
	return nil
}

// Package backend selects where invite-code operations execute: against
// the local store, against a remote deployment, or a failover pair of the
// two. The strategy is fixed by configuration at startup, never chosen
// per call site.
package backend

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lodgeline/lodgeline/internal/invites/domain"
	"github.com/lodgeline/lodgeline/internal/invites/service"
	"github.com/lodgeline/lodgeline/internal/invites/store"
)

// ErrUnavailable marks an infrastructure fault. It is the only error the
// failover composite acts on; business outcomes pass through untouched.
var ErrUnavailable = store.ErrUnavailable

// CodeStore carries the public invite-code operations. HTTP handlers call
// this instead of the services directly so deployments can proxy, serve
// locally, or fail over between the two.
type CodeStore interface {
	Generate(ctx context.Context, p service.GenerateParams) (domain.InviteCode, error)
	GenerateBulk(ctx context.Context, p service.GenerateParams, count int) ([]service.BulkItem, error)
	Validate(ctx context.Context, rawCode, identityEmail string) (service.ValidationResult, error)
	Redeem(ctx context.Context, rawCode, tenantID, tenantEmail string) (service.RedeemOutcome, error)
	Revoke(ctx context.Context, codeID, landlordID string) (domain.InviteCode, error)
	Extend(ctx context.Context, codeID, landlordID string, days int) (domain.InviteCode, error)
	ListByLandlord(ctx context.Context, landlordID string) ([]domain.InviteCode, error)
	ListByProperty(ctx context.Context, propertyID, landlordID string) ([]domain.InviteCode, error)

	// GetOwned resolves one code for owner-only reads (the QR endpoint).
	GetOwned(ctx context.Context, codeID, landlordID string) (domain.InviteCode, error)

	Purge(ctx context.Context, before time.Time) (int64, error)

	// Ping reports whether the backend can currently serve.
	Ping(ctx context.Context) error
}

// Options carries what the strategies need at construction time.
type Options struct {
	// Store backs the local strategy.
	Store store.Store

	// RemoteURL is the base URL of the remote deployment.
	RemoteURL string
}

// New builds the configured strategy. spec is a comma-separated ordered
// list of "local" and "remote"; more than one entry builds a failover
// composite in that order.
func New(spec string, opts Options) (CodeStore, error) {
	names := strings.Split(spec, ",")

	var chain []CodeStore
	for _, name := range names {
		switch strings.TrimSpace(name) {
		case "local":
			if opts.Store == nil {
				return nil, fmt.Errorf("backend %q requires a store", name)
			}
			chain = append(chain, NewLocal(opts.Store))
		case "remote":
			if opts.RemoteURL == "" {
				return nil, fmt.Errorf("backend %q requires a remote URL", name)
			}
			chain = append(chain, NewRemote(opts.RemoteURL))
		case "":
			continue
		default:
			return nil, fmt.Errorf("unknown backend %q", name)
		}
	}

	switch len(chain) {
	case 0:
		return nil, fmt.Errorf("no backend configured")
	case 1:
		return chain[0], nil
	default:
		return NewFailover(chain...), nil
	}
}

// infrastructure reports whether err should trigger failover or a retry.
// Business outcomes are terminal everywhere.
func infrastructure(err error) bool {
	return err != nil && !service.IsBusinessError(err)
}

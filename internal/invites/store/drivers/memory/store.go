// Package memory provides an in-process store driver. It backs the
// "memory" driver configuration for single-node deployments and keeps
// tests hermetic.
package memory

import (
	"context"
	"sync"

	"github.com/lodgeline/lodgeline/internal/invites/domain"
	"github.com/lodgeline/lodgeline/internal/invites/store"
)

type Store struct {
	mu sync.Mutex

	inviteCodes map[string]domain.InviteCode // keyed by id
	tenancies   map[string]domain.Tenancy    // keyed by id
	properties  map[string]domain.Property   // keyed by id
	tenants     map[string]domain.Tenant     // keyed by id
}

func NewStore() *Store {
	return &Store{
		inviteCodes: make(map[string]domain.InviteCode),
		tenancies:   make(map[string]domain.Tenancy),
		properties:  make(map[string]domain.Property),
		tenants:     make(map[string]domain.Tenant),
	}
}

func (s *Store) ApplyMigrations() error         { return nil }
func (s *Store) Close() error                   { return nil }
func (s *Store) Ping(ctx context.Context) error { return nil }

func (s *Store) InviteCodes() store.InviteCodes { return &inviteCodesRepo{s: s} }
func (s *Store) Tenancies() store.Tenancies     { return &tenanciesRepo{s: s} }
func (s *Store) Properties() store.Properties   { return &propertiesRepo{s: s} }

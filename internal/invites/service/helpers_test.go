package service

import (
	"context"
	"testing"
	"time"

	"github.com/lodgeline/lodgeline/internal/invites/domain"
	"github.com/lodgeline/lodgeline/internal/invites/store"
	"github.com/lodgeline/lodgeline/internal/invites/store/drivers/sqlite"
	"github.com/lodgeline/lodgeline/pkg/idx"
	"github.com/stretchr/testify/require"
)

// newTestStore spins up a migrated in-memory sqlite store.
func newTestStore(t *testing.T) store.Store {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, s.ApplyMigrations())
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func mustCreateProperty(t *testing.T, s store.Store, landlordID, name string) domain.Property {
	t.Helper()

	now := time.Now().UTC()
	p := domain.Property{
		ID:         idx.New().String(),
		LandlordID: landlordID,
		Name:       name,
		Address:    "1 Example St",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	require.NoError(t, s.Properties().CreateProperty(context.Background(), p))
	return p
}

// mustMint mints one active code with default expiry.
func mustMint(t *testing.T, s store.Store, propertyID, landlordID string) domain.InviteCode {
	t.Helper()

	svc := &InviteService{Store: s}
	c, err := svc.Generate(context.Background(), GenerateParams{
		PropertyID: propertyID,
		LandlordID: landlordID,
	})
	require.NoError(t, err)
	return c
}

package service

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/lodgeline/lodgeline/internal/invites/domain"
	"github.com/lodgeline/lodgeline/internal/invites/store/drivers/memory"
	"github.com/lodgeline/lodgeline/pkg/codex"
	"github.com/stretchr/testify/require"
)

func TestHousekeepingSweepsOnStartup(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s := memory.NewStore()
	now := time.Now().UTC()
	overdue := domain.InviteCode{
		ID:         "overdue",
		Code:       codex.Draw(),
		PropertyID: "prop-1",
		LandlordID: "landlord-1",
		Status:     domain.CodeActive,
		ExpiresAt:  now.Add(-time.Hour),
		CreatedAt:  now.Add(-48 * time.Hour),
		UpdatedAt:  now.Add(-48 * time.Hour),
	}
	require.NoError(t, s.InviteCodes().CreateInviteCode(ctx, overdue))

	hk := NewHousekeepingService(s, slog.Default(), time.Hour)
	hk.Start()
	defer hk.Stop()

	require.Eventually(t, func() bool {
		c, err := s.InviteCodes().GetInviteCodeByID(ctx, "overdue")
		return err == nil && c.Status == domain.CodeExpired
	}, 2*time.Second, 10*time.Millisecond)
}

func TestHousekeepingStopBlocksUntilDone(t *testing.T) {
	t.Parallel()

	hk := NewHousekeepingService(memory.NewStore(), slog.Default(), time.Hour)
	hk.Start()

	done := make(chan struct{})
	go func() {
		hk.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return")
	}
}

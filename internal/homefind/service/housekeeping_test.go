package service

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lagoshomes/homefind/internal/homefind/domain"
	"github.com/lagoshomes/homefind/pkg/idx"
)

func TestHousekeepingSweepsExpiredSessions(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	mail := &capturingMailer{}
	accounts := newAccountService(t, st, mail)

	user := registerActiveUser(t, accounts, mail, "alice@example.com", "alice", "long-enough-pw", domain.RoleCustomer)

	expired := domain.Session{
		ID:        idx.New(),
		UserID:    user.ID,
		TokenHash: "hash-expired",
		ExpiresAt: time.Now().Add(-time.Hour),
	}
	live := domain.Session{
		ID:        idx.New(),
		UserID:    user.ID,
		TokenHash: "hash-live",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, st.Sessions().CreateSession(ctx, expired))
	require.NoError(t, st.Sessions().CreateSession(ctx, live))

	hk := NewHousekeepingService(st, slog.Default(), time.Hour)
	hk.Start()
	hk.Stop()

	_, err := st.Sessions().GetSessionByID(ctx, expired.ID)
	require.Error(t, err)
	_, err = st.Sessions().GetSessionByID(ctx, live.ID)
	require.NoError(t, err)
}

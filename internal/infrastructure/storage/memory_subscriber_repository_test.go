package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"posture-monitor/internal/domain/entity"
)

func TestMemorySubscriberRepository_GetMissing(t *testing.T) {
	repo := NewMemorySubscriberRepository()

	s, err := repo.Get(context.Background(), 42)
	require.NoError(t, err)
	require.Nil(t, s)
}

func TestMemorySubscriberRepository_SaveAndActive(t *testing.T) {
	repo := NewMemorySubscriberRepository()
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, repo.Save(ctx, entity.NewSubscriber(30, now)))
	require.NoError(t, repo.Save(ctx, entity.NewSubscriber(10, now)))

	off := entity.NewSubscriber(20, now)
	off.SetState(entity.StateUnsubscribed, now)
	require.NoError(t, repo.Save(ctx, off))

	active, err := repo.Active(ctx)
	require.NoError(t, err)
	require.Len(t, active, 2)
	require.Equal(t, int64(10), active[0].ChatID)
	require.Equal(t, int64(30), active[1].ChatID)
}

func TestMemorySubscriberRepository_ReturnsCopies(t *testing.T) {
	repo := NewMemorySubscriberRepository()
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, repo.Save(ctx, entity.NewSubscriber(1, now)))

	s, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	s.SetState(entity.StateUnsubscribed, now)

	stored, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, entity.StateSubscribed, stored.State)
}

package container

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"posture-monitor/internal/domain/entity"
	"posture-monitor/internal/domain/port"
	"posture-monitor/internal/infrastructure/storage"
)

type emptySource struct{ closed bool }

func (s *emptySource) Next(ctx context.Context) (port.Frame, error) { return nil, port.ErrEndOfStream }
func (s *emptySource) Close() error                                 { s.closed = true; return nil }

type noPose struct{}

func (noPose) Estimate(ctx context.Context, frame port.Frame) (*entity.LandmarkSet, error) {
	return nil, nil
}
func (noPose) Close() error { return nil }

func TestContainer_Wiring(t *testing.T) {
	c := New(storage.NewMemorySubscriberRepository(), 0)
	require.NotNil(t, c.Subscriptions)
	require.Equal(t, entity.DefaultHeadTopOffset, c.Classifier.HeadTopOffset)
	require.Nil(t, c.Session)

	session := c.StartSession(nil, time.Second, time.Minute)
	require.Same(t, session, c.Session)

	source := &emptySource{}
	m := c.NewMonitor(source, noPose{}, nil)
	require.NoError(t, m.Run(context.Background()))
	require.True(t, source.closed)
	require.Zero(t, session.Snapshot().Frames)
}

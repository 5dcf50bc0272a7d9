package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSessionStats_GoodRatio(t *testing.T) {
	require.Equal(t, 0.0, SessionStats{}.GoodRatio())

	s := SessionStats{Detected: 4, GoodFrames: 3, BadFrames: 1}
	require.InDelta(t, 0.75, s.GoodRatio(), 1e-9)
}

func TestSessionStats_BadFor(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	require.Zero(t, SessionStats{}.BadFor(now))

	s := SessionStats{BadSince: now.Add(-45 * time.Second)}
	require.Equal(t, 45*time.Second, s.BadFor(now))
}

package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewSubscriber_DefaultState(t *testing.T) {
	now := time.Now()
	s := NewSubscriber(10, now)
	require.Equal(t, StateSubscribed, s.State)
	require.Equal(t, int64(10), s.ChatID)
	require.True(t, s.Active())
	require.Equal(t, now, s.Since)
}

func TestSubscriber_SetState(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := NewSubscriber(10, start)

	later := start.Add(time.Hour)
	s.SetState(StateUnsubscribed, later)
	require.False(t, s.Active())
	require.Equal(t, later, s.Since)

	// повторная установка того же состояния не сдвигает время
	s.SetState(StateUnsubscribed, later.Add(time.Hour))
	require.Equal(t, later, s.Since)
}

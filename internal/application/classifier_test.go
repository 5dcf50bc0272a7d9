package app

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"posture-monitor/internal/domain/entity"
)

const (
	frameWidth  = 640
	frameHeight = 480
)

// uprightLandmarks ровные плечи, голова над серединой плеч, ноги вертикально под бёдрами.
func uprightLandmarks() *entity.LandmarkSet {
	var set entity.LandmarkSet
	set.Set(entity.Nose, 0.5, 0.2, 0.9)
	set.Set(entity.LeftShoulder, 0.6, 0.3, 0.9)
	set.Set(entity.RightShoulder, 0.4, 0.3, 0.9)
	set.Set(entity.LeftHip, 0.58, 0.6, 0.9)
	set.Set(entity.RightHip, 0.42, 0.6, 0.9)
	set.Set(entity.LeftAnkle, 0.58, 0.95, 0.9)
	set.Set(entity.RightAnkle, 0.42, 0.95, 0.9)
	return &set
}

func TestPostureClassifier_Upright(t *testing.T) {
	c := NewPostureClassifier(entity.DefaultHeadTopOffset)

	a := c.Classify(uprightLandmarks(), frameWidth, frameHeight)

	require.InDelta(t, 90.0, a.Angles.Head, 1e-6)
	require.InDelta(t, 90.0, a.Angles.Leg, 1e-6)
	require.Equal(t, entity.PostureGood, a.Status)
	require.Equal(t, frameWidth, a.Width)
	require.Equal(t, frameHeight, a.Height)
}

func TestPostureClassifier_Geometry(t *testing.T) {
	c := NewPostureClassifier(entity.DefaultHeadTopOffset)

	g := c.Classify(uprightLandmarks(), frameWidth, frameHeight).Geometry

	require.InDelta(t, 320.0, g.ShoulderMid.X, 1e-9)
	require.InDelta(t, 144.0, g.ShoulderMid.Y, 1e-9)
	require.InDelta(t, 320.0, g.HeadTop.X, 1e-9)
	require.InDelta(t, 48.0, g.HeadTop.Y, 1e-9)
	require.InDelta(t, 320.0, g.HipMid.X, 1e-9)
	require.InDelta(t, 288.0, g.HipMid.Y, 1e-9)
}

func TestPostureClassifier_HeadTilted(t *testing.T) {
	c := NewPostureClassifier(entity.DefaultHeadTopOffset)
	set := uprightLandmarks()

	// Макушка отклонена на 30° от вертикали относительно середины плеч.
	const reach = 96.0
	tilt := 30 * math.Pi / 180
	headTopX := 320 + reach*math.Sin(tilt)
	headTopY := 144 - reach*math.Cos(tilt)
	noseY := headTopY + entity.DefaultHeadTopOffset*frameHeight
	set.Set(entity.Nose, headTopX/frameWidth, noseY/frameHeight, 0.9)

	a := c.Classify(set, frameWidth, frameHeight)

	require.InDelta(t, 60.0, a.Angles.Head, 1e-6)
	require.InDelta(t, 90.0, a.Angles.Leg, 1e-6)
	require.Equal(t, entity.PostureBad, a.Status)
}

func TestPostureClassifier_LegsSpread(t *testing.T) {
	c := NewPostureClassifier(entity.DefaultHeadTopOffset)
	set := uprightLandmarks()
	set.Set(entity.LeftAnkle, 0.75, 0.95, 0.9)
	set.Set(entity.RightAnkle, 0.25, 0.95, 0.9)

	a := c.Classify(set, frameWidth, frameHeight)

	require.InDelta(t, 90.0, a.Angles.Head, 1e-6)
	require.Greater(t, a.Angles.Leg, entity.LegAngleMax)
	require.Equal(t, entity.PostureBad, a.Status)
}

func TestPostureClassifier_DegenerateGeometry(t *testing.T) {
	c := NewPostureClassifier(entity.DefaultHeadTopOffset)
	set := uprightLandmarks()
	// Плечи слились в одну точку, середина совпадает с левым плечом.
	set.Set(entity.RightShoulder, 0.6, 0.3, 0.9)

	a := c.Classify(set, frameWidth, frameHeight)

	require.True(t, entity.IsUndefinedAngle(a.Angles.Head))
	require.Equal(t, entity.PostureBad, a.Status)

	set = uprightLandmarks()
	// Левая лодыжка на месте левого бедра.
	set.Set(entity.LeftAnkle, 0.58, 0.6, 0.9)

	a = c.Classify(set, frameWidth, frameHeight)

	require.True(t, entity.IsUndefinedAngle(a.Angles.Leg))
	require.Equal(t, entity.PostureBad, a.Status)
}

func TestPostureClassifier_Idempotent(t *testing.T) {
	c := NewPostureClassifier(entity.DefaultHeadTopOffset)
	set := uprightLandmarks()
	set.Set(entity.Nose, 0.53, 0.18, 0.9)

	first := c.Classify(set, frameWidth, frameHeight)
	second := c.Classify(set, frameWidth, frameHeight)

	require.Equal(t, first, second)
}

func TestNewPostureClassifier_DefaultOffset(t *testing.T) {
	require.Equal(t, entity.DefaultHeadTopOffset, NewPostureClassifier(0).HeadTopOffset)
	require.Equal(t, entity.DefaultHeadTopOffset, NewPostureClassifier(-1).HeadTopOffset)
	require.Equal(t, 0.2, NewPostureClassifier(0.2).HeadTopOffset)

	g := NewPostureClassifier(0.2).Classify(uprightLandmarks(), frameWidth, frameHeight).Geometry
	require.InDelta(t, 0.0, g.HeadTop.Y, 1e-9)
}

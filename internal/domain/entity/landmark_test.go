package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLandmarkString(t *testing.T) {
	require.Equal(t, "nose", Nose.String())
	require.Equal(t, "left_shoulder", LeftShoulder.String())
	require.Equal(t, "right_ankle", RightAnkle.String())
	require.Equal(t, "unknown", Landmark(NumLandmarks).String())
}

func TestLandmarkSet_Pixel(t *testing.T) {
	var set LandmarkSet
	set.Set(LeftHip, 0.25, 0.5, 0.9)

	require.Equal(t, Point2D{X: 0.25, Y: 0.5}, set.At(LeftHip))
	require.Equal(t, Point2D{X: 160, Y: 240}, set.Pixel(LeftHip, 640, 480))
	require.Equal(t, float32(0.9), set.Keypoints[LeftHip].Score)
}

package vision

import (
	"testing"

	"github.com/stretchr/testify/require"

	"posture-monitor/internal/domain/entity"
)

func TestSkeletonSegments_SkipsLowConfidence(t *testing.T) {
	var set entity.LandmarkSet
	set.Set(entity.LeftShoulder, 0.6, 0.3, 0.9)
	set.Set(entity.RightShoulder, 0.4, 0.3, 0.9)
	set.Set(entity.LeftHip, 0.6, 0.6, 0.9)
	set.Set(entity.RightHip, 0.4, 0.6, 0.2)

	segments := SkeletonSegments(&set, 100, 100)

	// плечи между собой и левое плечо с левым бедром
	require.Len(t, segments, 2)
	for _, s := range segments {
		require.NotEqual(t, entity.Point2D{X: 40, Y: 60}, s.From)
		require.NotEqual(t, entity.Point2D{X: 40, Y: 60}, s.To)
	}
}

func TestSkeletonJoints(t *testing.T) {
	var set entity.LandmarkSet
	set.Set(entity.Nose, 0.5, 0.1, 0.7)
	set.Set(entity.LeftAnkle, 0.5, 0.9, 0.1)

	joints := SkeletonJoints(&set, 200, 100)
	require.Equal(t, []entity.Point2D{{X: 100, Y: 10}}, joints)
}

package vision

import (
	"image/color"

	"posture-monitor/internal/domain/entity"
)

// MinKeypointScore точки с меньшей уверенностью не рисуются
const MinKeypointScore = 0.5

// skeleton пары точек, между которыми рисуются линии
var skeleton = [][2]entity.Landmark{
	{entity.RightAnkle, entity.RightKnee},
	{entity.RightKnee, entity.RightHip},
	{entity.LeftAnkle, entity.LeftKnee},
	{entity.LeftKnee, entity.LeftHip},
	{entity.RightHip, entity.LeftHip},
	{entity.RightShoulder, entity.RightHip},
	{entity.LeftShoulder, entity.LeftHip},
	{entity.RightShoulder, entity.LeftShoulder},
	{entity.RightShoulder, entity.RightElbow},
	{entity.LeftShoulder, entity.LeftElbow},
	{entity.RightElbow, entity.RightWrist},
	{entity.LeftElbow, entity.LeftWrist},
	{entity.LeftEye, entity.RightEye},
	{entity.Nose, entity.LeftEye},
	{entity.Nose, entity.RightEye},
	{entity.LeftEye, entity.LeftEar},
	{entity.RightEye, entity.RightEar},
	{entity.LeftEar, entity.LeftShoulder},
	{entity.RightEar, entity.RightShoulder},
}

var (
	clrText     = color.RGBA{R: 255, G: 255, A: 255}
	clrHeadLine = color.RGBA{B: 255, A: 255}
	clrLegLine  = color.RGBA{G: 255, A: 255}
	clrLimb     = color.RGBA{R: 245, G: 117, B: 66, A: 255}
	clrJoint    = color.RGBA{R: 245, G: 66, B: 230, A: 255}
)

// Segment отрезок скелета в пикселях
type Segment struct {
	From, To entity.Point2D
}

// SkeletonSegments возвращает отрезки скелета, у которых обе точки достаточно уверенные.
func SkeletonSegments(set *entity.LandmarkSet, width, height int) []Segment {
	segments := make([]Segment, 0, len(skeleton))
	for _, pair := range skeleton {
		if set.Keypoints[pair[0]].Score < MinKeypointScore || set.Keypoints[pair[1]].Score < MinKeypointScore {
			continue
		}
		segments = append(segments, Segment{
			From: set.Pixel(pair[0], width, height),
			To:   set.Pixel(pair[1], width, height),
		})
	}
	return segments
}

// SkeletonJoints возвращает уверенные точки в пикселях
func SkeletonJoints(set *entity.LandmarkSet, width, height int) []entity.Point2D {
	joints := make([]entity.Point2D, 0, entity.NumLandmarks)
	for i := 0; i < entity.NumLandmarks; i++ {
		if set.Keypoints[i].Score < MinKeypointScore {
			continue
		}
		joints = append(joints, set.Pixel(entity.Landmark(i), width, height))
	}
	return joints
}

package app

import (
	"gonum.org/v1/gonum/stat"

	"posture-monitor/internal/domain/entity"
)

// PostureClassifier считает углы головы и ног и определяет осанку.
// Состояния между кадрами не хранит.
type PostureClassifier struct {
	// HeadTopOffset смещение макушки над носом в долях высоты кадра
	HeadTopOffset float64
}

// NewPostureClassifier создаёт классификатор. Неположительное смещение заменяется значением по умолчанию.
func NewPostureClassifier(headTopOffset float64) *PostureClassifier {
	if headTopOffset <= 0 {
		headTopOffset = entity.DefaultHeadTopOffset
	}
	return &PostureClassifier{HeadTopOffset: headTopOffset}
}

// Classify оценивает осанку по ключевым точкам кадра размером width x height.
func (c *PostureClassifier) Classify(set *entity.LandmarkSet, width, height int) *entity.Assessment {
	g := c.geometry(set, width, height)

	headAngle := entity.Angle(g.ShoulderLeft, g.ShoulderMid, g.HeadTop)

	legLeft := entity.Angle(g.HipMid, g.HipLeft, g.AnkleLeft)
	legRight := entity.Angle(g.HipMid, g.HipRight, g.AnkleRight)

	angles := entity.PostureAngles{
		Head: headAngle,
		Leg:  stat.Mean([]float64{legLeft, legRight}, nil),
	}

	return &entity.Assessment{
		Status:    angles.Status(),
		Angles:    angles,
		Geometry:  g,
		Landmarks: set,
		Width:     width,
		Height:    height,
	}
}

func (c *PostureClassifier) geometry(set *entity.LandmarkSet, width, height int) entity.PostureGeometry {
	shoulderLeft := set.Pixel(entity.LeftShoulder, width, height)
	shoulderRight := set.Pixel(entity.RightShoulder, width, height)

	// Макушку модель не даёт, берём точку выше носа.
	nose := set.Pixel(entity.Nose, width, height)
	headTop := entity.Point2D{
		X: nose.X,
		Y: nose.Y - c.HeadTopOffset*float64(height),
	}

	hipLeft := set.Pixel(entity.LeftHip, width, height)
	hipRight := set.Pixel(entity.RightHip, width, height)

	return entity.PostureGeometry{
		ShoulderLeft: shoulderLeft,
		ShoulderMid:  entity.Midpoint(shoulderLeft, shoulderRight),
		HeadTop:      headTop,
		HipLeft:      hipLeft,
		HipRight:     hipRight,
		HipMid:       entity.Midpoint(hipLeft, hipRight),
		AnkleLeft:    set.Pixel(entity.LeftAnkle, width, height),
		AnkleRight:   set.Pixel(entity.RightAnkle, width, height),
	}
}

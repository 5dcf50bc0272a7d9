//go:build gocv
// +build gocv

package vision

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"posture-monitor/internal/domain/entity"
	"posture-monitor/internal/domain/port"
)

// Overlay рисует углы, статус, направляющие и скелет поверх кадра
type Overlay struct {
	// DrawSkeleton рисовать ли полный скелет
	DrawSkeleton bool
	// LineThickness толщина направляющих
	LineThickness int
}

// NewOverlay возвращает отрисовщик с настройками по умолчанию
func NewOverlay() *Overlay {
	return &Overlay{
		DrawSkeleton:  true,
		LineThickness: 3,
	}
}

// Annotate рисует результат оценки на кадре
func (o *Overlay) Annotate(frame port.Frame, a *entity.Assessment) error {
	f, ok := frame.(*MatFrame)
	if !ok {
		return fmt.Errorf("overlay: unsupported frame type %T", frame)
	}
	img := f.Mat()

	if o.DrawSkeleton && a.Landmarks != nil {
		o.skeleton(img, a.Landmarks, a.Width, a.Height)
	}

	o.guides(img, a.Geometry)

	gocv.PutText(img, "Head Angle: "+formatAngle(a.Angles.Head), image.Pt(50, 50),
		gocv.FontHersheySimplex, 0.6, clrText, 2)
	gocv.PutText(img, "Leg Angle: "+formatAngle(a.Angles.Leg), image.Pt(50, 80),
		gocv.FontHersheySimplex, 0.6, clrText, 2)
	gocv.PutText(img, a.Status.Label(), image.Pt(50, 120),
		gocv.FontHersheySimplex, 0.8, a.Status.Color(), 2)

	return nil
}

// guides линии и точки, по которым считались углы
func (o *Overlay) guides(img *gocv.Mat, g entity.PostureGeometry) {
	gocv.Line(img, g.ShoulderMid.Image(), g.HeadTop.Image(), clrHeadLine, o.LineThickness)
	gocv.Line(img, g.HipMid.Image(), g.HipLeft.Image(), clrLegLine, o.LineThickness)
	gocv.Line(img, g.HipLeft.Image(), g.AnkleLeft.Image(), clrLegLine, o.LineThickness)
	gocv.Line(img, g.HipRight.Image(), g.AnkleRight.Image(), clrLegLine, o.LineThickness)

	gocv.Circle(img, g.ShoulderMid.Image(), 5, clrHeadLine, -1)
	gocv.Circle(img, g.HeadTop.Image(), 5, clrHeadLine, -1)
	gocv.Circle(img, g.HipMid.Image(), 5, clrLegLine, -1)
	gocv.Circle(img, g.AnkleLeft.Image(), 5, clrLegLine, -1)
	gocv.Circle(img, g.AnkleRight.Image(), 5, clrLegLine, -1)
}

func (o *Overlay) skeleton(img *gocv.Mat, set *entity.LandmarkSet, width, height int) {
	for _, s := range SkeletonSegments(set, width, height) {
		gocv.Line(img, s.From.Image(), s.To.Image(), clrLimb, 2)
	}
	for _, p := range SkeletonJoints(set, width, height) {
		gocv.Circle(img, p.Image(), 3, clrJoint, -1)
	}
}

var _ port.Annotator = (*Overlay)(nil)

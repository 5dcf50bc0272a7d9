//go:build !gocv
// +build !gocv

package vision

import (
	"context"

	"posture-monitor/internal/domain/entity"
	"posture-monitor/internal/domain/port"
	"posture-monitor/internal/infrastructure/pose"
)

type Camera struct{}

// OpenCamera возвращает ошибку, если сборка без тега gocv.
func OpenCamera(device string) (*Camera, error) {
	_ = device
	return nil, ErrGoCVDisabled
}

func (c *Camera) Next(ctx context.Context) (port.Frame, error) { return nil, ErrGoCVDisabled }
func (c *Camera) Close() error                                 { return nil }

type MatFrame struct{}

// ReadImage возвращает ошибку, если сборка без тега gocv.
func ReadImage(path string) (*MatFrame, error) {
	_ = path
	return nil, ErrGoCVDisabled
}

func (f *MatFrame) Width() int   { return 0 }
func (f *MatFrame) Height() int  { return 0 }
func (f *MatFrame) Close() error { return nil }

type Window struct{}

// NewWindow создаёт окно-заглушку, которое сразу просит выход.
func NewWindow(title string) *Window {
	_ = title
	return &Window{}
}

func (w *Window) Present(frame port.Frame) error { return ErrGoCVDisabled }
func (w *Window) Quit() bool                     { return true }
func (w *Window) Close() error                   { return nil }

type Overlay struct {
	DrawSkeleton  bool
	LineThickness int
}

// NewOverlay создаёт отрисовщик-заглушку (без OpenCV).
func NewOverlay() *Overlay {
	return &Overlay{DrawSkeleton: true, LineThickness: 3}
}

// Annotate возвращает ошибку, если сборка без тега gocv.
func (o *Overlay) Annotate(frame port.Frame, a *entity.Assessment) error {
	_ = frame
	_ = a
	return ErrGoCVDisabled
}

type DNNEstimator struct{}

// NewDNNEstimator возвращает ошибку, если сборка без тега gocv.
func NewDNNEstimator(modelPath string, params pose.YOLOv8Params) (*DNNEstimator, error) {
	_ = modelPath
	_ = params
	return nil, ErrGoCVDisabled
}

func (e *DNNEstimator) Estimate(ctx context.Context, frame port.Frame) (*entity.LandmarkSet, error) {
	return nil, ErrGoCVDisabled
}

func (e *DNNEstimator) Close() error { return nil }

var (
	_ port.FrameSource   = (*Camera)(nil)
	_ port.Presenter     = (*Window)(nil)
	_ port.Annotator     = (*Overlay)(nil)
	_ port.PoseEstimator = (*DNNEstimator)(nil)
)

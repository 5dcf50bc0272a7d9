//go:build gocv
// +build gocv

package vision

import (
	"context"
	"errors"
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"posture-monitor/internal/domain/entity"
	"posture-monitor/internal/domain/port"
	"posture-monitor/internal/infrastructure/pose"
)

// DNNEstimator запускает YOLOv8-pose (ONNX) через модуль dnn OpenCV
type DNNEstimator struct {
	net    gocv.Net
	params pose.YOLOv8Params
}

// NewDNNEstimator загружает модель из modelPath
func NewDNNEstimator(modelPath string, params pose.YOLOv8Params) (*DNNEstimator, error) {
	net := gocv.ReadNetFromONNX(modelPath)
	if net.Empty() {
		net.Close()
		return nil, fmt.Errorf("failed to load pose model %s", modelPath)
	}

	net.SetPreferableBackend(gocv.NetBackendDefault)
	net.SetPreferableTarget(gocv.NetTargetCPU)

	return &DNNEstimator{net: net, params: params}, nil
}

// Estimate возвращает точки самого уверенного человека на кадре
func (e *DNNEstimator) Estimate(ctx context.Context, frame port.Frame) (*entity.LandmarkSet, error) {
	f, ok := frame.(*MatFrame)
	if !ok {
		return nil, fmt.Errorf("dnn estimator: unsupported frame type %T", frame)
	}

	// BGR → RGB, [0, 255] → [0, 1], растяжение до входа модели.
	blob := gocv.BlobFromImage(f.mat, 1.0/255.0,
		image.Pt(e.params.InputWidth, e.params.InputHeight),
		gocv.NewScalar(0, 0, 0, 0), true, false)
	defer blob.Close()

	e.net.SetInput(blob, "")
	out := e.net.Forward("")
	defer out.Close()

	if out.Empty() {
		return nil, errors.New("dnn estimator: empty model output")
	}

	data, err := out.DataPtrFloat32()
	if err != nil {
		return nil, fmt.Errorf("dnn estimator: read output: %w", err)
	}

	return pose.DecodeYOLOv8(data, e.params)
}

// Close освобождает сеть
func (e *DNNEstimator) Close() error {
	return e.net.Close()
}

var _ port.PoseEstimator = (*DNNEstimator)(nil)

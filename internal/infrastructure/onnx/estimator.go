// Package onnx запускает YOLOv8-pose через ONNX Runtime, без OpenCV.
package onnx

import (
	"context"
	"errors"
	"fmt"
	"image"
	"runtime"

	"github.com/disintegration/imaging"
	ort "github.com/yalue/onnxruntime_go"

	"posture-monitor/internal/domain/entity"
	"posture-monitor/internal/domain/port"
	"posture-monitor/internal/infrastructure/pose"
)

// ErrNotImageFrame кадр не умеет отдавать image.Image
var ErrNotImageFrame = errors.New("frame does not provide an image")

// Estimator оценивает позу моделью YOLOv8-pose в формате ONNX
type Estimator struct {
	params  pose.YOLOv8Params
	session *ort.AdvancedSession
	input   *ort.Tensor[float32]
	output  *ort.Tensor[float32]
}

// NewEstimator инициализирует ONNX Runtime из libPath (если пусто, путь по умолчанию) и загружает модель.
func NewEstimator(libPath, modelPath string, params pose.YOLOv8Params) (*Estimator, error) {
	if libPath != "" {
		ort.SetSharedLibraryPath(libPath)
	}
	if err := ort.InitializeEnvironment(); err != nil {
		return nil, fmt.Errorf("init onnxruntime: %w", err)
	}

	e, err := newEstimator(modelPath, params)
	if err != nil {
		ort.DestroyEnvironment()
		return nil, err
	}
	return e, nil
}

func newEstimator(modelPath string, params pose.YOLOv8Params) (*Estimator, error) {
	options, err := ort.NewSessionOptions()
	if err != nil {
		return nil, fmt.Errorf("create session options: %w", err)
	}
	defer options.Destroy()

	options.SetIntraOpNumThreads(runtime.NumCPU())

	input, err := ort.NewEmptyTensor[float32](ort.NewShape(1, 3, int64(params.InputHeight), int64(params.InputWidth)))
	if err != nil {
		return nil, fmt.Errorf("create input tensor: %w", err)
	}

	output, err := ort.NewEmptyTensor[float32](ort.NewShape(1, int64(params.Channels()), int64(params.Anchors)))
	if err != nil {
		input.Destroy()
		return nil, fmt.Errorf("create output tensor: %w", err)
	}

	session, err := ort.NewAdvancedSession(
		modelPath,
		[]string{"images"},
		[]string{"output0"},
		[]ort.ArbitraryTensor{input},
		[]ort.ArbitraryTensor{output},
		options,
	)
	if err != nil {
		input.Destroy()
		output.Destroy()
		return nil, fmt.Errorf("create session: %w", err)
	}

	return &Estimator{
		params:  params,
		session: session,
		input:   input,
		output:  output,
	}, nil
}

// Estimate прогоняет кадр через модель
func (e *Estimator) Estimate(ctx context.Context, frame port.Frame) (*entity.LandmarkSet, error) {
	f, ok := frame.(port.ImageFrame)
	if !ok {
		return nil, ErrNotImageFrame
	}

	img, err := f.Image()
	if err != nil {
		return nil, fmt.Errorf("frame image: %w", err)
	}

	// Кадр растягивается до входа модели без полей, точки потом нормализуются.
	resized := imaging.Resize(img, e.params.InputWidth, e.params.InputHeight, imaging.Linear)
	fillCHW(resized, e.input.GetData())

	if err := e.session.Run(); err != nil {
		return nil, fmt.Errorf("model inference: %w", err)
	}

	return pose.DecodeYOLOv8(e.output.GetData(), e.params)
}

// Close освобождает сессию и окружение ONNX Runtime
func (e *Estimator) Close() error {
	if e.session != nil {
		e.session.Destroy()
	}
	if e.input != nil {
		e.input.Destroy()
	}
	if e.output != nil {
		e.output.Destroy()
	}
	return ort.DestroyEnvironment()
}

// fillCHW раскладывает RGB изображения в тензор [3, H, W] со значениями [0, 1].
func fillCHW(img *image.NRGBA, dst []float32) {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	plane := w * h

	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride:]
		for x := 0; x < w; x++ {
			i := y*w + x
			px := row[x*4:]
			dst[i] = float32(px[0]) / 255.0
			dst[plane+i] = float32(px[1]) / 255.0
			dst[2*plane+i] = float32(px[2]) / 255.0
		}
	}
}

var _ port.PoseEstimator = (*Estimator)(nil)

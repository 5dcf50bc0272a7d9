// Package pose декодирует выход YOLOv8-pose в ключевые точки тела.
package pose

import (
	"fmt"

	"posture-monitor/internal/domain/entity"
)

// YOLOv8Params параметры постобработки YOLOv8-pose
type YOLOv8Params struct {
	// InputWidth, InputHeight размер входного тензора модели
	InputWidth  int
	InputHeight int
	// Anchors число предсказаний в выходном тензоре
	Anchors int
	// BoxThreshold минимальная уверенность, чтобы считать человека найденным
	BoxThreshold float32
	// KeyPointsNumber число ключевых точек COCO
	KeyPointsNumber int
}

// YOLOv8COCOParams параметры модели, обученной на COCO keypoints:
// - вход 640x640
// - 8400 предсказаний
// - порог 0.5
// - 17 точек
func YOLOv8COCOParams() YOLOv8Params {
	return YOLOv8Params{
		InputWidth:      640,
		InputHeight:     640,
		Anchors:         8400,
		BoxThreshold:    0.5,
		KeyPointsNumber: entity.NumLandmarks,
	}
}

// Channels число каналов выхода: 4 координаты рамки, уверенность и по 3 значения на точку.
func (p YOLOv8Params) Channels() int {
	return 5 + p.KeyPointsNumber*3
}

// OutputLen ожидаемая длина выходного тензора
func (p YOLOv8Params) OutputLen() int {
	return p.Channels() * p.Anchors
}

// DecodeYOLOv8 берёт выход [1, 56, anchors] и возвращает точки самого уверенного человека.
// Координаты нормализуются к [0, 1] относительно входа модели, поэтому при растяжении кадра
// до входа они сразу относительны и к исходному кадру. nil, если никого нет выше порога.
func DecodeYOLOv8(output []float32, p YOLOv8Params) (*entity.LandmarkSet, error) {
	if len(output) < p.OutputLen() {
		return nil, fmt.Errorf("yolov8 pose output too short: got %d, want %d", len(output), p.OutputLen())
	}

	// Канал 4: уверенность класса "person".
	confRow := output[4*p.Anchors : 5*p.Anchors]

	best := -1
	bestConf := p.BoxThreshold
	for i, conf := range confRow {
		if conf >= bestConf {
			best = i
			bestConf = conf
		}
	}
	if best < 0 {
		return nil, nil
	}

	set := &entity.LandmarkSet{}
	for k := 0; k < p.KeyPointsNumber && k < entity.NumLandmarks; k++ {
		base := (5 + k*3) * p.Anchors
		x := output[base+best]
		y := output[base+p.Anchors+best]
		score := output[base+2*p.Anchors+best]

		set.Set(entity.Landmark(k),
			float64(x)/float64(p.InputWidth),
			float64(y)/float64(p.InputHeight),
			score)
	}

	return set, nil
}

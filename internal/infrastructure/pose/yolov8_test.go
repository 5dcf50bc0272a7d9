package pose

import (
	"testing"

	"github.com/stretchr/testify/require"

	"posture-monitor/internal/domain/entity"
)

func smallParams() YOLOv8Params {
	p := YOLOv8COCOParams()
	p.Anchors = 4
	p.InputWidth = 100
	p.InputHeight = 200
	return p
}

// setAnchor записывает уверенность и точки одного предсказания.
func setAnchor(out []float32, p YOLOv8Params, anchor int, conf float32, kpOffset float32) {
	out[4*p.Anchors+anchor] = conf
	for k := 0; k < p.KeyPointsNumber; k++ {
		base := (5 + k*3) * p.Anchors
		out[base+anchor] = kpOffset + float32(k)
		out[base+p.Anchors+anchor] = 2 * (kpOffset + float32(k))
		out[base+2*p.Anchors+anchor] = 0.8
	}
}

func TestYOLOv8Params_Channels(t *testing.T) {
	p := YOLOv8COCOParams()
	require.Equal(t, 56, p.Channels())
	require.Equal(t, 56*8400, p.OutputLen())
}

func TestDecodeYOLOv8_PicksMostConfident(t *testing.T) {
	p := smallParams()
	out := make([]float32, p.OutputLen())
	setAnchor(out, p, 1, 0.6, 10)
	setAnchor(out, p, 3, 0.9, 50)

	set, err := DecodeYOLOv8(out, p)
	require.NoError(t, err)
	require.NotNil(t, set)

	nose := set.At(entity.Nose)
	require.InDelta(t, 0.5, nose.X, 1e-6)
	require.InDelta(t, 0.5, nose.Y, 1e-6)

	ankle := set.At(entity.RightAnkle)
	require.InDelta(t, 66.0/100, ankle.X, 1e-6)
	require.InDelta(t, 132.0/200, ankle.Y, 1e-6)
	require.InDelta(t, 0.8, set.Keypoints[entity.RightAnkle].Score, 1e-6)
}

func TestDecodeYOLOv8_NothingAboveThreshold(t *testing.T) {
	p := smallParams()
	out := make([]float32, p.OutputLen())
	setAnchor(out, p, 2, 0.3, 10)

	set, err := DecodeYOLOv8(out, p)
	require.NoError(t, err)
	require.Nil(t, set)
}

func TestDecodeYOLOv8_ShortOutput(t *testing.T) {
	_, err := DecodeYOLOv8(make([]float32, 10), smallParams())
	require.Error(t, err)
}

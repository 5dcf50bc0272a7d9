package imagefile

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/require"
)

func TestFrame_SizeAndJPEG(t *testing.T) {
	img := imaging.New(64, 48, color.NRGBA{R: 200, A: 255})
	f := NewFrame(img)

	require.Equal(t, 64, f.Width())
	require.Equal(t, 48, f.Height())

	data, err := f.JPEG()
	require.NoError(t, err)

	decoded, err := jpeg.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 64, 48), decoded.Bounds())
	require.NoError(t, f.Close())
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "still.png")
	require.NoError(t, imaging.Save(imaging.New(32, 16, color.NRGBA{B: 255, A: 255}), path))

	f, err := Open(path)
	require.NoError(t, err)
	require.Equal(t, 32, f.Width())
	require.Equal(t, 16, f.Height())

	_, err = Open(filepath.Join(t.TempDir(), "missing.png"))
	require.Error(t, err)
}

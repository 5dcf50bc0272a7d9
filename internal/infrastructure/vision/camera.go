//go:build gocv
// +build gocv

package vision

import (
	"context"
	"fmt"
	"image"
	"strconv"

	"gocv.io/x/gocv"

	"posture-monitor/internal/domain/port"
)

// MatFrame кадр поверх gocv.Mat
type MatFrame struct {
	mat gocv.Mat
}

// NewMatFrame забирает владение матрицей
func NewMatFrame(mat gocv.Mat) *MatFrame {
	return &MatFrame{mat: mat}
}

// Mat возвращает матрицу кадра (BGR)
func (f *MatFrame) Mat() *gocv.Mat { return &f.mat }

func (f *MatFrame) Width() int  { return f.mat.Cols() }
func (f *MatFrame) Height() int { return f.mat.Rows() }

// Image конвертирует кадр в image.Image
func (f *MatFrame) Image() (image.Image, error) {
	return f.mat.ToImage()
}

// JPEG кодирует кадр в JPEG
func (f *MatFrame) JPEG() ([]byte, error) {
	buf, err := gocv.IMEncode(gocv.JPEGFileExt, f.mat)
	if err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	defer buf.Close()

	// GetBytes указывает в память C, копируем до Close.
	data := make([]byte, buf.Len())
	copy(data, buf.GetBytes())
	return data, nil
}

func (f *MatFrame) Close() error {
	return f.mat.Close()
}

// Camera источник кадров с веб-камеры или из видеофайла
type Camera struct {
	capture *gocv.VideoCapture
}

// OpenCamera открывает устройство по номеру ("0") или файл по пути.
func OpenCamera(device string) (*Camera, error) {
	var src interface{} = device
	if id, err := strconv.Atoi(device); err == nil {
		src = id
	}

	capture, err := gocv.OpenVideoCapture(src)
	if err != nil {
		return nil, fmt.Errorf("open video capture %q: %w", device, err)
	}
	if !capture.IsOpened() {
		capture.Close()
		return nil, fmt.Errorf("video capture %q is not opened", device)
	}

	return &Camera{capture: capture}, nil
}

// Next читает следующий кадр. Неудачное чтение считается концом потока.
func (c *Camera) Next(ctx context.Context) (port.Frame, error) {
	mat := gocv.NewMat()
	if ok := c.capture.Read(&mat); !ok || mat.Empty() {
		mat.Close()
		return nil, port.ErrEndOfStream
	}
	return NewMatFrame(mat), nil
}

// Close освобождает устройство
func (c *Camera) Close() error {
	return c.capture.Close()
}

// ReadImage читает изображение с диска как кадр
func ReadImage(path string) (*MatFrame, error) {
	mat := gocv.IMRead(path, gocv.IMReadColor)
	if mat.Empty() {
		mat.Close()
		return nil, fmt.Errorf("failed to read image %s", path)
	}
	return NewMatFrame(mat), nil
}

var (
	_ port.FrameSource = (*Camera)(nil)
	_ port.ImageFrame  = (*MatFrame)(nil)
	_ port.JPEGFrame   = (*MatFrame)(nil)
)

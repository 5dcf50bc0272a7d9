// Package imagefile даёт кадры из обычных изображений без OpenCV.
package imagefile

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"posture-monitor/internal/domain/port"
)

// Frame кадр поверх image.Image
type Frame struct {
	img image.Image
}

// NewFrame оборачивает готовое изображение
func NewFrame(img image.Image) *Frame {
	return &Frame{img: img}
}

// Open читает изображение с диска с учётом EXIF-ориентации
func Open(path string) (*Frame, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("open image %s: %w", path, err)
	}
	return NewFrame(img), nil
}

func (f *Frame) Width() int  { return f.img.Bounds().Dx() }
func (f *Frame) Height() int { return f.img.Bounds().Dy() }

// Image возвращает исходное изображение
func (f *Frame) Image() (image.Image, error) {
	return f.img, nil
}

// JPEG кодирует кадр в JPEG
func (f *Frame) JPEG() ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, f.img, imaging.JPEG, imaging.JPEGQuality(90)); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

func (f *Frame) Close() error { return nil }

var (
	_ port.ImageFrame = (*Frame)(nil)
	_ port.JPEGFrame  = (*Frame)(nil)
)

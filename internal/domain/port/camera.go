package port

import (
	"context"
	"errors"
	"image"
)

// ErrEndOfStream возвращается источником, когда кадров больше нет
var ErrEndOfStream = errors.New("end of stream")

// Frame кадр видео. Владелец обязан вызвать Close.
type Frame interface {
	Width() int
	Height() int
	Close() error
}

// ImageFrame кадр, который можно получить как image.Image
type ImageFrame interface {
	Frame
	Image() (image.Image, error)
}

// JPEGFrame кадр, который умеет кодироваться в JPEG
type JPEGFrame interface {
	Frame
	JPEG() ([]byte, error)
}

// FrameSource интерфейс источника кадров (камера, видеофайл)
type FrameSource interface {
	// Next читает следующий кадр. При окончании потока возвращает ErrEndOfStream.
	Next(ctx context.Context) (Frame, error)

	// Close освобождает устройство
	Close() error
}

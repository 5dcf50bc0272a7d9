//go:build gocv
// +build gocv

package vision

import (
	"fmt"

	"gocv.io/x/gocv"

	"posture-monitor/internal/domain/port"
)

// quitKeyDelay сколько ждать нажатия клавиши на каждой итерации, мс
const quitKeyDelay = 10

// Window выводит кадры в окно OpenCV и ловит клавишу q
type Window struct {
	window *gocv.Window
}

// NewWindow создаёт окно с заголовком title
func NewWindow(title string) *Window {
	return &Window{window: gocv.NewWindow(title)}
}

// Present показывает кадр
func (w *Window) Present(frame port.Frame) error {
	f, ok := frame.(*MatFrame)
	if !ok {
		return fmt.Errorf("window: unsupported frame type %T", frame)
	}
	w.window.IMShow(f.mat)
	return nil
}

// Quit ждёт клавишу quitKeyDelay мс
func (w *Window) Quit() bool {
	return w.window.WaitKey(quitKeyDelay)&0xFF == 'q'
}

// Close закрывает окно
func (w *Window) Close() error {
	return w.window.Close()
}

var _ port.Presenter = (*Window)(nil)

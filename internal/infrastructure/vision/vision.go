// Package vision содержит адаптеры OpenCV: камера, окно, разметка кадра и модель позы.
// Без тега сборки gocv используются заглушки.
package vision

import "errors"

// ErrGoCVDisabled сборка без тега gocv
var ErrGoCVDisabled = errors.New("gocv build tag is not enabled")

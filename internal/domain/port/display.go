package port

import "posture-monitor/internal/domain/entity"

// Annotator рисует результат оценки поверх кадра
type Annotator interface {
	Annotate(frame Frame, assessment *entity.Assessment) error
}

// Presenter показывает кадр пользователю
type Presenter interface {
	// Present выводит кадр (окно, поток и т.п.)
	Present(frame Frame) error

	// Quit опрашивается раз в итерацию и сообщает, что пользователь попросил выход
	Quit() bool
}

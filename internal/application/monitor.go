package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"posture-monitor/internal/domain/entity"
	"posture-monitor/internal/domain/port"
)

// Monitor основной цикл: кадр → поза → осанка → отрисовка → показ.
// Выполняется в одной горутине.
type Monitor struct {
	source     port.FrameSource
	estimator  port.PoseEstimator
	classifier *PostureClassifier
	annotator  port.Annotator
	presenters []port.Presenter
	session    *SessionService
	now        func() time.Time
}

// NewMonitor собирает цикл. annotator и session могут быть nil.
func NewMonitor(
	source port.FrameSource,
	estimator port.PoseEstimator,
	classifier *PostureClassifier,
	annotator port.Annotator,
	session *SessionService,
	presenters ...port.Presenter,
) *Monitor {
	return &Monitor{
		source:     source,
		estimator:  estimator,
		classifier: classifier,
		annotator:  annotator,
		presenters: presenters,
		session:    session,
		now:        time.Now,
	}
}

// Run крутит цикл до конца потока, нажатия выхода или отмены ctx.
// Источник кадров закрывается при любом выходе.
func (m *Monitor) Run(ctx context.Context) error {
	defer func() {
		if err := m.source.Close(); err != nil {
			log.Printf("Error closing frame source: %v", err)
		}
	}()

	for {
		if ctx.Err() != nil {
			log.Println("Monitor cancelled")
			return nil
		}

		frame, err := m.source.Next(ctx)
		if err != nil {
			if errors.Is(err, port.ErrEndOfStream) {
				log.Println("End of stream")
				return nil
			}
			return fmt.Errorf("read frame: %w", err)
		}

		quit := m.step(ctx, frame)
		if err := frame.Close(); err != nil {
			log.Printf("Error closing frame: %v", err)
		}

		if quit {
			log.Println("Quit requested")
			return nil
		}
	}
}

// step обрабатывает один кадр и возвращает true, если пользователь попросил выход.
func (m *Monitor) step(ctx context.Context, frame port.Frame) bool {
	assessment := m.ProcessFrame(ctx, frame)

	if m.session != nil {
		m.session.Record(ctx, m.now(), assessment)
	}

	// Без детекции кадр показывается без разметки.
	if assessment != nil && m.annotator != nil {
		if err := m.annotator.Annotate(frame, assessment); err != nil {
			log.Printf("Error annotating frame: %v", err)
		}
	}

	quit := false
	for _, p := range m.presenters {
		if err := p.Present(frame); err != nil {
			log.Printf("Error presenting frame: %v", err)
		}
		// Опрашиваем всех: окно обрабатывает события только в WaitKey.
		if p.Quit() {
			quit = true
		}
	}

	return quit
}

// ProcessFrame оценивает осанку на кадре. Возвращает nil, если человека нет.
func (m *Monitor) ProcessFrame(ctx context.Context, frame port.Frame) *entity.Assessment {
	landmarks, err := m.estimator.Estimate(ctx, frame)
	if err != nil {
		log.Printf("Error estimating pose: %v", err)
		return nil
	}
	if landmarks == nil {
		return nil
	}

	return m.classifier.Classify(landmarks, frame.Width(), frame.Height())
}

package port

import (
	"context"

	"posture-monitor/internal/domain/entity"
)

// PoseEstimator интерфейс модели оценки позы
type PoseEstimator interface {
	// Estimate возвращает ключевые точки человека на кадре или nil, если никого не нашли
	Estimate(ctx context.Context, frame Frame) (*entity.LandmarkSet, error)

	// Close освобождает модель
	Close() error
}

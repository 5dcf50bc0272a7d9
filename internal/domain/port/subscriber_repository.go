package port

import (
	"context"

	"posture-monitor/internal/domain/entity"
)

// SubscriberRepository интерфейс хранилища подписчиков
type SubscriberRepository interface {
	// Get возвращает подписчика по ID чата, nil если не найден
	Get(ctx context.Context, chatID int64) (*entity.Subscriber, error)

	// Save сохраняет подписчика
	Save(ctx context.Context, subscriber *entity.Subscriber) error

	// Active возвращает подписчиков с включёнными уведомлениями
	Active(ctx context.Context) ([]*entity.Subscriber, error)
}

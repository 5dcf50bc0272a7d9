package port

import (
	"context"

	"posture-monitor/internal/domain/entity"
)

// Notifier интерфейс отправки уведомлений об осанке
type Notifier interface {
	Notify(ctx context.Context, alert entity.Alert) error
}

package storage

import (
	"context"
	"sort"
	"sync"

	"posture-monitor/internal/domain/entity"
	"posture-monitor/internal/domain/port"
)

// MemorySubscriberRepository in-memory хранилище подписчиков
type MemorySubscriberRepository struct {
	mu          sync.RWMutex
	subscribers map[int64]*entity.Subscriber
}

// NewMemorySubscriberRepository создаёт новое in-memory хранилище
func NewMemorySubscriberRepository() *MemorySubscriberRepository {
	return &MemorySubscriberRepository{
		subscribers: make(map[int64]*entity.Subscriber),
	}
}

// Get возвращает копию подписчика по ID чата
func (r *MemorySubscriberRepository) Get(ctx context.Context, chatID int64) (*entity.Subscriber, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, exists := r.subscribers[chatID]
	if !exists {
		return nil, nil
	}

	cp := *s
	return &cp, nil
}

// Save сохраняет состояние подписчика
func (r *MemorySubscriberRepository) Save(ctx context.Context, subscriber *entity.Subscriber) error {
	cp := *subscriber

	r.mu.Lock()
	r.subscribers[subscriber.ChatID] = &cp
	r.mu.Unlock()

	return nil
}

// Active возвращает активных подписчиков, отсортированных по ID чата
func (r *MemorySubscriberRepository) Active(ctx context.Context) ([]*entity.Subscriber, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	active := make([]*entity.Subscriber, 0, len(r.subscribers))
	for _, s := range r.subscribers {
		if s.Active() {
			cp := *s
			active = append(active, &cp)
		}
	}

	sort.Slice(active, func(i, j int) bool {
		return active[i].ChatID < active[j].ChatID
	})

	return active, nil
}

// Проверка реализации интерфейса
var _ port.SubscriberRepository = (*MemorySubscriberRepository)(nil)

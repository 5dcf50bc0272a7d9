package app

import (
	"context"
	"time"

	"posture-monitor/internal/domain/entity"
	"posture-monitor/internal/domain/port"
)

type SubscriptionService struct {
	repo port.SubscriberRepository
	now  func() time.Time
}

func NewSubscriptionService(repo port.SubscriberRepository) *SubscriptionService {
	return &SubscriptionService{repo: repo, now: time.Now}
}

func (s *SubscriptionService) SetState(ctx context.Context, chatID int64, state entity.SubscriberState) (*entity.Subscriber, error) {
	sub, err := s.repo.Get(ctx, chatID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if sub == nil {
		sub = entity.NewSubscriber(chatID, now)
	}

	sub.SetState(state, now)
	if err := s.repo.Save(ctx, sub); err != nil {
		return nil, err
	}

	return sub, nil
}

func (s *SubscriptionService) Subscribe(ctx context.Context, chatID int64) (*entity.Subscriber, error) {
	return s.SetState(ctx, chatID, entity.StateSubscribed)
}

func (s *SubscriptionService) Unsubscribe(ctx context.Context, chatID int64) (*entity.Subscriber, error) {
	return s.SetState(ctx, chatID, entity.StateUnsubscribed)
}

func (s *SubscriptionService) Active(ctx context.Context) ([]*entity.Subscriber, error) {
	return s.repo.Active(ctx)
}

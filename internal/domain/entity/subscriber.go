package entity

import "time"

// SubscriberState состояние подписки чата на уведомления
type SubscriberState string

const (
	StateSubscribed   SubscriberState = "subscribed"   // Получает уведомления
	StateUnsubscribed SubscriberState = "unsubscribed" // Уведомления отключены
)

// Subscriber представляет чат Telegram, получающий уведомления
type Subscriber struct {
	ChatID int64           // Telegram Chat ID
	State  SubscriberState // Текущее состояние подписки
	Since  time.Time       // Когда состояние изменилось
}

// NewSubscriber создаёт подписчика с включёнными уведомлениями
func NewSubscriber(chatID int64, now time.Time) *Subscriber {
	return &Subscriber{
		ChatID: chatID,
		State:  StateSubscribed,
		Since:  now,
	}
}

// SetState обновляет состояние подписки
func (s *Subscriber) SetState(state SubscriberState, now time.Time) {
	if s.State == state {
		return
	}
	s.State = state
	s.Since = now
}

// Active сообщает, нужно ли отправлять уведомления
func (s *Subscriber) Active() bool {
	return s.State == StateSubscribed
}

package telegram

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	app "posture-monitor/internal/application"
	"posture-monitor/internal/domain/entity"
	"posture-monitor/internal/domain/port"
)

const (
	msgStart = `👋 Привет! Я слежу за осанкой перед веб-камерой.

🔔 Уведомления включены: напишу, если плохая осанка держится слишком долго.

📋 Команды:
/status — статистика текущей сессии
/subscribe — включить уведомления
/unsubscribe — отключить уведомления
/help — справка`

	msgHelp = `ℹ️ Как это работает:

1️⃣ Камера снимает вас в полный рост
2️⃣ По положению головы, плеч, бёдер и лодыжек считаются два угла
3️⃣ Если углы долго вне нормы — приходит уведомление

📋 Команды:
/status — статистика
/subscribe — включить уведомления
/unsubscribe — отключить уведомления`

	msgSubscribed     = "🔔 Уведомления включены."
	msgUnsubscribed   = "🔕 Уведомления отключены. /subscribe — включить снова."
	msgUnknownCommand = "❓ Неизвестная команда. Используйте /help для справки."
	msgUseCommands    = "💬 Я понимаю только команды. Используйте /help для справки."
	msgNoStats        = "📭 Статистика пока недоступна."
	msgError          = "⚠️ Не удалось выполнить команду. Попробуйте позже."
)

// StatsProvider источник статистики сессии
type StatsProvider interface {
	Snapshot() entity.SessionStats
}

// Bot представляет Telegram-бота уведомлений об осанке
type Bot struct {
	api           *tgbotapi.BotAPI
	subscriptions *app.SubscriptionService

	// Stats задаётся после создания: сервис сессии сам зависит от бота как от Notifier.
	Stats StatsProvider
}

// NewBot создаёт нового бота
func NewBot(token string, subscriptions *app.SubscriptionService) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	log.Printf("Authorized on account %s", api.Self.UserName)

	return &Bot{
		api:           api,
		subscriptions: subscriptions,
	}, nil
}

// Run запускает основной цикл обработки сообщений до отмены ctx
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	defer b.api.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil {
				continue
			}
			b.handleMessage(ctx, update.Message)
		}
	}
}

// Notify рассылает уведомление всем подписчикам
func (b *Bot) Notify(ctx context.Context, alert entity.Alert) error {
	subscribers, err := b.subscriptions.Active(ctx)
	if err != nil {
		return fmt.Errorf("list subscribers: %w", err)
	}

	text := formatAlert(alert)

	var errs []error
	for _, s := range subscribers {
		if _, err := b.api.Send(tgbotapi.NewMessage(s.ChatID, text)); err != nil {
			errs = append(errs, fmt.Errorf("send to chat %d: %w", s.ChatID, err))
		}
	}

	return errors.Join(errs...)
}

// handleMessage обрабатывает входящее сообщение
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if !msg.IsCommand() {
		b.sendMessage(msg.Chat.ID, msgUseCommands)
		return
	}

	switch msg.Command() {
	case "start":
		if _, err := b.subscriptions.Subscribe(ctx, msg.Chat.ID); err != nil {
			log.Printf("Error subscribing chat %d: %v", msg.Chat.ID, err)
			b.sendMessage(msg.Chat.ID, msgError)
			return
		}
		b.sendMessage(msg.Chat.ID, msgStart)

	case "help":
		b.sendMessage(msg.Chat.ID, msgHelp)

	case "status":
		if b.Stats == nil {
			b.sendMessage(msg.Chat.ID, msgNoStats)
			return
		}
		b.sendMessage(msg.Chat.ID, formatStats(b.Stats.Snapshot(), time.Now()))

	case "subscribe":
		if _, err := b.subscriptions.Subscribe(ctx, msg.Chat.ID); err != nil {
			log.Printf("Error subscribing chat %d: %v", msg.Chat.ID, err)
			b.sendMessage(msg.Chat.ID, msgError)
			return
		}
		b.sendMessage(msg.Chat.ID, msgSubscribed)

	case "unsubscribe":
		if _, err := b.subscriptions.Unsubscribe(ctx, msg.Chat.ID); err != nil {
			log.Printf("Error unsubscribing chat %d: %v", msg.Chat.ID, err)
			b.sendMessage(msg.Chat.ID, msgError)
			return
		}
		b.sendMessage(msg.Chat.ID, msgUnsubscribed)

	default:
		b.sendMessage(msg.Chat.ID, msgUnknownCommand)
	}
}

// sendMessage отправляет текстовое сообщение
func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Error sending message: %v", err)
	}
}

var _ port.Notifier = (*Bot)(nil)

package telegram

import (
	"fmt"
	"strings"
	"time"

	"posture-monitor/internal/domain/entity"
)

// formatAlert текст уведомления о плохой осанке
func formatAlert(alert entity.Alert) string {
	return fmt.Sprintf("🪑 Плохая осанка уже %s.\nУгол головы: %s°, угол ног: %s°.\nВыпрямитесь!",
		alert.Duration.Round(time.Second), formatAngle(alert.Angles.Head), formatAngle(alert.Angles.Leg))
}

// formatStats текст ответа на /status
func formatStats(stats entity.SessionStats, now time.Time) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "📊 Сессия идёт %s\n", now.Sub(stats.StartedAt).Round(time.Second))
	fmt.Fprintf(&sb, "Кадров: %d, с человеком: %d\n", stats.Frames, stats.Detected)
	fmt.Fprintf(&sb, "Хорошая осанка: %d, плохая: %d (%.0f%% хорошей)\n",
		stats.GoodFrames, stats.BadFrames, stats.GoodRatio()*100)

	if stats.Last != nil {
		fmt.Fprintf(&sb, "Сейчас: %s (голова %s°, ноги %s°)",
			statusText(stats.Last.Status), formatAngle(stats.Last.Angles.Head), formatAngle(stats.Last.Angles.Leg))
	} else {
		sb.WriteString("Сейчас: человек не найден")
	}

	if badFor := stats.BadFor(now); badFor > 0 {
		fmt.Fprintf(&sb, "\nПлохая осанка уже %s", badFor.Round(time.Second))
	}

	return sb.String()
}

func statusText(s entity.PostureStatus) string {
	if s == entity.PostureGood {
		return "✅ хорошая осанка"
	}
	return "❌ плохая осанка"
}

func formatAngle(angle float64) string {
	if entity.IsUndefinedAngle(angle) {
		return "--"
	}
	return fmt.Sprintf("%.0f", angle)
}

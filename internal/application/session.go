package app

import (
	"context"
	"log"
	"sync"
	"time"

	"posture-monitor/internal/domain/entity"
	"posture-monitor/internal/domain/port"
)

// SessionService ведёт статистику запуска и отправляет уведомления,
// когда плохая осанка держится дольше alertAfter.
type SessionService struct {
	notifier   port.Notifier
	alertAfter time.Duration
	cooldown   time.Duration

	mu        sync.RWMutex
	stats     entity.SessionStats
	lastAlert time.Time
}

// NewSessionService создаёт сервис. notifier может быть nil, тогда уведомления не отправляются.
func NewSessionService(notifier port.Notifier, alertAfter, cooldown time.Duration, startedAt time.Time) *SessionService {
	return &SessionService{
		notifier:   notifier,
		alertAfter: alertAfter,
		cooldown:   cooldown,
		stats:      entity.SessionStats{StartedAt: startedAt},
	}
}

// Record учитывает результат одного кадра. assessment == nil означает, что человека не нашли.
func (s *SessionService) Record(ctx context.Context, now time.Time, assessment *entity.Assessment) {
	alert, ok := s.record(now, assessment)
	if !ok {
		return
	}

	if err := s.notifier.Notify(ctx, alert); err != nil {
		log.Printf("Error sending posture alert: %v", err)
	}
}

func (s *SessionService) record(now time.Time, assessment *entity.Assessment) (entity.Alert, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stats.Frames++
	if assessment == nil {
		// Пропуск детекции не прерывает и не начинает серию.
		return entity.Alert{}, false
	}

	s.stats.Detected++
	last := *assessment
	s.stats.Last = &last

	if assessment.Status == entity.PostureGood {
		s.stats.GoodFrames++
		s.stats.BadSince = time.Time{}
		return entity.Alert{}, false
	}

	s.stats.BadFrames++
	if s.stats.BadSince.IsZero() {
		s.stats.BadSince = now
	}

	if s.notifier == nil || s.alertAfter <= 0 {
		return entity.Alert{}, false
	}

	badFor := s.stats.BadFor(now)
	if badFor < s.alertAfter {
		return entity.Alert{}, false
	}
	if !s.lastAlert.IsZero() && now.Sub(s.lastAlert) < s.cooldown {
		return entity.Alert{}, false
	}

	s.lastAlert = now
	return entity.Alert{Duration: badFor, Angles: assessment.Angles, At: now}, true
}

// Snapshot возвращает копию текущей статистики
func (s *SessionService) Snapshot() entity.SessionStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.stats
	if s.stats.Last != nil {
		last := *s.stats.Last
		snap.Last = &last
	}
	return snap
}

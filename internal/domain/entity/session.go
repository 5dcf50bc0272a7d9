package entity

import "time"

// SessionStats накопленная статистика текущего запуска монитора
type SessionStats struct {
	StartedAt  time.Time   `json:"started_at"`
	Frames     int         `json:"frames"`
	Detected   int         `json:"detected"`
	GoodFrames int         `json:"good_frames"`
	BadFrames  int         `json:"bad_frames"`
	BadSince   time.Time   `json:"bad_since,omitempty"`
	Last       *Assessment `json:"last,omitempty"`
}

// GoodRatio доля кадров с хорошей осанкой среди кадров с детекцией
func (s SessionStats) GoodRatio() float64 {
	if s.Detected == 0 {
		return 0
	}
	return float64(s.GoodFrames) / float64(s.Detected)
}

// BadFor длительность текущей серии плохой осанки
func (s SessionStats) BadFor(now time.Time) time.Duration {
	if s.BadSince.IsZero() {
		return 0
	}
	return now.Sub(s.BadSince)
}

// Alert уведомление о затянувшейся плохой осанке
type Alert struct {
	Duration time.Duration `json:"duration"`
	Angles   PostureAngles `json:"angles"`
	At       time.Time     `json:"at"`
}

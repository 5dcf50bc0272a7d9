package stream

import (
	"time"

	"posture-monitor/internal/domain/entity"
)

// StatusResponse ответ /status
type StatusResponse struct {
	StartedAt  time.Time     `json:"started_at"`
	Frames     int           `json:"frames"`
	Detected   int           `json:"detected"`
	GoodFrames int           `json:"good_frames"`
	BadFrames  int           `json:"bad_frames"`
	GoodRatio  float64       `json:"good_ratio"`
	BadForSec  float64       `json:"bad_for_seconds"`
	Last       *LastResponse `json:"last,omitempty"`
}

// LastResponse последняя оценка. Неопределённый угол отдаётся как null.
type LastResponse struct {
	Status    entity.PostureStatus `json:"status"`
	HeadAngle *float64             `json:"head_angle"`
	LegAngle  *float64             `json:"leg_angle"`
}

func newStatusResponse(stats entity.SessionStats) StatusResponse {
	resp := StatusResponse{
		StartedAt:  stats.StartedAt,
		Frames:     stats.Frames,
		Detected:   stats.Detected,
		GoodFrames: stats.GoodFrames,
		BadFrames:  stats.BadFrames,
		GoodRatio:  stats.GoodRatio(),
		BadForSec:  stats.BadFor(time.Now()).Seconds(),
	}

	if stats.Last != nil {
		resp.Last = &LastResponse{
			Status:    stats.Last.Status,
			HeadAngle: angle(stats.Last.Angles.Head),
			LegAngle:  angle(stats.Last.Angles.Leg),
		}
	}

	return resp
}

// angle NaN не кодируется в JSON, поэтому заменяется на null
func angle(v float64) *float64 {
	if entity.IsUndefinedAngle(v) {
		return nil
	}
	return &v
}

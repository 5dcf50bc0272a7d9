package vision

import (
	"strconv"

	"posture-monitor/internal/domain/entity"
)

// formatAngle целые градусы, "--" для неопределённого угла
func formatAngle(angle float64) string {
	if entity.IsUndefinedAngle(angle) {
		return "--"
	}
	return strconv.Itoa(int(angle))
}

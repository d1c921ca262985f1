package service

import (
	"time"

	"workforce-bot-api/internal/dto"
	"workforce-bot-api/internal/entity"
	"workforce-bot-api/internal/pkg/logger"
	"workforce-bot-api/internal/repository/specification"
	"workforce-bot-api/pkg/payroll"
)

// Clock returns the current time. Tests inject a fixed one.
type Clock func() time.Time

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// periodWindow maps a reporting period onto a start_time range. "today" is
// the current calendar day; anything else is the trailing week starting at
// midnight seven days ago.
func periodWindow(period string, now time.Time) specification.StartedBetween {
	midnight := startOfDay(now)
	if period == dto.PeriodToday {
		return specification.StartedBetween{From: midnight, To: midnight.AddDate(0, 0, 1)}
	}
	return specification.StartedBetween{From: midnight.AddDate(0, 0, -7)}
}

// sumSessionHours totals the sessions' durations, logging rows that cannot
// be parsed instead of failing the request.
func sumSessionHours(log logger.ILogger, sessions []*entity.WorkSession) float64 {
	values := make([]*string, len(sessions))
	for i, s := range sessions {
		values[i] = s.TotalHours
	}
	return payroll.SumDurations(values, func(index int, value string, err error) {
		log.Warn("PAYROLL", "Skipping malformed session duration", map[string]interface{}{
			"session_id": sessions[index].Id,
			"value":      value,
			"error":      err.Error(),
		})
	})
}

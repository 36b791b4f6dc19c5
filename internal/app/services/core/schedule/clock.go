package schedule

import (
	"edunexus-service/internal/app/models"
	"edunexus-service/internal/pkg/constvars"
	"edunexus-service/internal/pkg/exceptions"
	"fmt"
	"time"
)

// PeriodTimeRange computes the wall-clock start and end of a period. Periods
// run back to back from the configured start of day; the break is inserted
// once, immediately after the configured break period. The computation is pure
// and always derives from the settings passed in, so a settings change is
// reflected on the next call without any cache to invalidate.
func PeriodTimeRange(period int, settings models.TimetableSettings) (string, string, error) {
	if period <= 0 {
		return "", "", exceptions.ErrInvalidPeriodNumber(period)
	}
	// Request validation guards the HTTP path, but settings can also arrive
	// from a snapshot; degenerate durations would invert ranges silently.
	if settings.PeriodDuration <= 0 || settings.BreakDuration < 0 {
		return "", "", exceptions.ErrInvalidSessionTiming(settings.PeriodDuration, settings.BreakDuration)
	}

	startOfDay, err := time.Parse(constvars.TimeOfDayLayout, settings.StartTime)
	if err != nil {
		return "", "", exceptions.ErrInputValidation(err)
	}
	dayStart := startOfDay.Hour()*60 + startOfDay.Minute()

	offset := (period - 1) * settings.PeriodDuration
	if settings.BreakAfterPeriod >= 1 && period > settings.BreakAfterPeriod {
		offset += settings.BreakDuration
	}

	start := dayStart + offset
	end := start + settings.PeriodDuration
	return formatClock(start), formatClock(end), nil
}

// formatClock renders minutes-since-midnight as HH:MM, wrapping at 24h. School
// days never span midnight; the wrap only guards display against misconfigured
// settings.
func formatClock(minutes int) string {
	minutes = minutes % constvars.MinutesPerDay
	if minutes < 0 {
		minutes += constvars.MinutesPerDay
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

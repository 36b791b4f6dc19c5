package schedule

import (
	"edunexus-service/internal/pkg/constvars"
	"edunexus-service/internal/pkg/utils"
)

// PeriodsForDay returns the valid period numbers for a weekday: eight periods
// Monday through Thursday, five on Friday, none on any other label. Every
// place that iterates period ranges consults this so a nonexistent slot (a
// Friday period 7, a Sunday anything) is never rendered, checked, or written.
func PeriodsForDay(day string) []int {
	count := periodCountForDay(day)
	periods := make([]int, 0, count)
	for p := 1; p <= count; p++ {
		periods = append(periods, p)
	}
	return periods
}

// IsValidSlot reports whether (day, period) exists under the day-length rules.
func IsValidSlot(day string, period int) bool {
	return period >= 1 && period <= periodCountForDay(day)
}

// InstructionalDays returns the school week in rendering order.
func InstructionalDays() []string {
	days := make([]string, len(constvars.WeekDays))
	copy(days, constvars.WeekDays)
	return days
}

func periodCountForDay(day string) int {
	switch utils.CanonicalDay(day) {
	case constvars.ShortDay:
		return constvars.ShortDayPeriods
	case "Monday", "Tuesday", "Wednesday", "Thursday":
		return constvars.FullDayPeriods
	default:
		return 0
	}
}

// dayOrder gives a sort key for weekday names; unknown labels sort last.
func dayOrder(day string) int {
	canonical := utils.CanonicalDay(day)
	for i, d := range constvars.WeekDays {
		if d == canonical {
			return i
		}
	}
	return len(constvars.WeekDays)
}

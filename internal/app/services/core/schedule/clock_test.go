package schedule

import (
	"edunexus-service/internal/app/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func defaultTestSettings() models.TimetableSettings {
	return models.TimetableSettings{
		SessionName:      "Summer",
		StartTime:        "08:00",
		PeriodDuration:   35,
		BreakDuration:    15,
		BreakAfterPeriod: 5,
	}
}

func TestPeriodTimeRange(t *testing.T) {
	settings := defaultTestSettings()

	t.Run("First Period Starts At The Configured Start Of Day", func(t *testing.T) {
		start, end, err := PeriodTimeRange(1, settings)

		assert.NoError(t, err)
		assert.Equal(t, "08:00", start)
		assert.Equal(t, "08:35", end)
	})

	t.Run("Periods Before The Break Run Back To Back", func(t *testing.T) {
		start, end, err := PeriodTimeRange(5, settings)

		assert.NoError(t, err)
		assert.Equal(t, "10:20", start)
		assert.Equal(t, "10:55", end)
	})

	t.Run("Break Shifts Every Later Period", func(t *testing.T) {
		start, _, err := PeriodTimeRange(6, settings)
		assert.NoError(t, err)
		assert.Equal(t, "11:10", start, "period 6 should start after the 15-minute break")

		start, end, err := PeriodTimeRange(8, settings)
		assert.NoError(t, err)
		assert.Equal(t, "12:20", start)
		assert.Equal(t, "12:55", end)
	})

	t.Run("Invalid Period Number Fails", func(t *testing.T) {
		_, _, err := PeriodTimeRange(0, settings)
		assert.Error(t, err)

		_, _, err = PeriodTimeRange(-3, settings)
		assert.Error(t, err)
	})

	t.Run("Non Positive Period Duration Fails", func(t *testing.T) {
		zero := settings
		zero.PeriodDuration = 0

		_, _, err := PeriodTimeRange(1, zero)
		assert.Error(t, err)

		negative := settings
		negative.PeriodDuration = -35

		_, _, err = PeriodTimeRange(3, negative)
		assert.Error(t, err)
	})

	t.Run("Negative Break Duration Fails", func(t *testing.T) {
		bad := settings
		bad.BreakDuration = -15

		_, _, err := PeriodTimeRange(6, bad)
		assert.Error(t, err)
	})

	t.Run("Unparseable Start Time Fails", func(t *testing.T) {
		bad := settings
		bad.StartTime = "8 o'clock"

		_, _, err := PeriodTimeRange(1, bad)
		assert.Error(t, err)
	})

	t.Run("Break After Last Period Never Applies", func(t *testing.T) {
		noBreak := settings
		noBreak.BreakAfterPeriod = 9

		start, end, err := PeriodTimeRange(8, noBreak)
		assert.NoError(t, err)
		assert.Equal(t, "12:05", start)
		assert.Equal(t, "12:40", end)
	})

	t.Run("Consecutive Periods Never Overlap", func(t *testing.T) {
		previousEnd := ""
		for period := 1; period <= 8; period++ {
			start, end, err := PeriodTimeRange(period, settings)
			assert.NoError(t, err)
			assert.Less(t, start, end, "period %d must start before it ends", period)
			if previousEnd != "" {
				assert.LessOrEqual(t, previousEnd, start, "period %d must not overlap its predecessor", period)
			}
			previousEnd = end
		}
	})

	t.Run("Exactly One Gap Of Break Duration", func(t *testing.T) {
		_, endFive, err := PeriodTimeRange(5, settings)
		assert.NoError(t, err)
		startSix, _, err := PeriodTimeRange(6, settings)
		assert.NoError(t, err)

		assert.Equal(t, "10:55", endFive)
		assert.Equal(t, "11:10", startSix)

		for period := 2; period <= 8; period++ {
			if period == 6 {
				continue
			}
			_, prevEnd, err := PeriodTimeRange(period-1, settings)
			assert.NoError(t, err)
			nextStart, _, err := PeriodTimeRange(period, settings)
			assert.NoError(t, err)
			assert.Equal(t, prevEnd, nextStart, "no gap expected before period %d", period)
		}
	})
}

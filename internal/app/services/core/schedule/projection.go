package schedule

import (
	"edunexus-service/internal/app/models"
	"edunexus-service/internal/pkg/constvars"
	"edunexus-service/internal/pkg/dto/responses"
	"edunexus-service/internal/pkg/utils"
)

// ProjectClassWeek fixes a class and varies day x period, labelling each cell
// with the clock times derived from the settings. Cells the day-length rules
// exclude (Friday periods 6 to 8) are simply absent from the short day's
// column.
func ProjectClassWeek(idx *Index, classID string, settings models.TimetableSettings, teacherNameByID map[string]string) (responses.ClassWeek, error) {
	week := responses.ClassWeek{ClassID: classID}
	for _, day := range InstructionalDays() {
		column := responses.DayColumn{Day: day}
		for _, period := range PeriodsForDay(day) {
			cell, err := renderCell(idx, day, period, classID, settings, teacherNameByID)
			if err != nil {
				return responses.ClassWeek{}, err
			}
			column.Cells = append(column.Cells, cell)
		}
		week.Days = append(week.Days, column)
	}
	return week, nil
}

// ProjectMasterDay fixes a day and varies class x period across the full set
// of class labels.
func ProjectMasterDay(idx *Index, day string, settings models.TimetableSettings, teacherNameByID map[string]string) (responses.MasterDay, error) {
	canonical := utils.CanonicalDay(day)
	master := responses.MasterDay{Day: canonical}
	for _, classID := range constvars.ClassLabels {
		row := responses.ClassRow{ClassID: classID}
		for _, period := range PeriodsForDay(canonical) {
			cell, err := renderCell(idx, canonical, period, classID, settings, teacherNameByID)
			if err != nil {
				return responses.MasterDay{}, err
			}
			row.Cells = append(row.Cells, cell)
		}
		master.Classes = append(master.Classes, row)
	}
	return master, nil
}

func renderCell(idx *Index, day string, period int, classID string, settings models.TimetableSettings, teacherNameByID map[string]string) (responses.TimetableCell, error) {
	start, end, err := PeriodTimeRange(period, settings)
	if err != nil {
		return responses.TimetableCell{}, err
	}
	cell := responses.TimetableCell{
		Period:    period,
		StartTime: start,
		EndTime:   end,
	}
	if entry, ok := idx.EntryForClass(day, period, classID); ok {
		cell.Subject = entry.Subject
		cell.TeacherID = entry.TeacherID
		cell.Teacher = teacherNameByID[entry.TeacherID]
		cell.ClassID = entry.ClassID
	}
	return cell, nil
}

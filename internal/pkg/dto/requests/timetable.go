package requests

type SaveTimetableEntry struct {
	Day       string `json:"day" validate:"required,schoolday"`
	Period    int    `json:"period" validate:"required,gt=0"`
	Subject   string `json:"subject" validate:"required"`
	TeacherID string `json:"teacherId" validate:"required"`
	ClassID   string `json:"classId" validate:"required,classlabel"`
}

type ClearTimetableEntry struct {
	Day     string `json:"day" validate:"required,schoolday"`
	Period  int    `json:"period" validate:"required,gt=0"`
	ClassID string `json:"classId" validate:"required,classlabel"`
}

type UpdateTimetableSettings struct {
	SessionName      string `json:"sessionName" validate:"required,oneof=Summer Winter"`
	StartTime        string `json:"startTime" validate:"required,datetime=15:04"`
	PeriodDuration   int    `json:"periodDuration" validate:"required,gt=0,lte=180"`
	BreakDuration    int    `json:"breakDuration" validate:"gte=0,lte=120"`
	BreakAfterPeriod int    `json:"breakAfterPeriod" validate:"required,gte=1"`
}

type GenerateTimetable struct {
	ClassIDs []string `json:"classIds" validate:"required,min=1,dive,classlabel"`
}

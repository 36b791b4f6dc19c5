package models

// TimetableEntry is the atomic schedule fact. Entries have no id of their
// own; (Day, Period, ClassID) identifies a cell, and (Day, Period, TeacherID)
// must also be unique so a teacher is never double-booked.
type TimetableEntry struct {
	Day       string `json:"day" bson:"day"`
	Period    int    `json:"period" bson:"period"`
	Subject   string `json:"subject" bson:"subject"`
	TeacherID string `json:"teacherId" bson:"teacher_id"`
	ClassID   string `json:"classId" bson:"class_id"`
}

// TimetableSettings is the singleton session-timing configuration. It is
// threaded explicitly into every clock computation rather than held as
// package state, so a settings change can never leave a stale derived time.
type TimetableSettings struct {
	SessionName      string `json:"sessionName" bson:"session_name"`
	StartTime        string `json:"startTime" bson:"start_time"`
	PeriodDuration   int    `json:"periodDuration" bson:"period_duration"`
	BreakDuration    int    `json:"breakDuration" bson:"break_duration"`
	BreakAfterPeriod int    `json:"breakAfterPeriod" bson:"break_after_period"`
}

// SubstitutionSuggestion is what the external scheduler proposes for one
// impacted slot. Suggestions are advisory; they are never written to the
// timetable without explicit confirmation.
type SubstitutionSuggestion struct {
	Day              string `json:"day" bson:"day"`
	Period           int    `json:"period" bson:"period"`
	AbsentTeacher    string `json:"absentTeacher" bson:"absent_teacher"`
	SuggestedTeacher string `json:"suggestedTeacher" bson:"suggested_teacher"`
	Reason           string `json:"reason" bson:"reason"`
}

package responses

// TimetableCell is one rendered slot: the entry (if any) plus its clock
// times derived from the current settings.
type TimetableCell struct {
	Period    int    `json:"period"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Subject   string `json:"subject,omitempty"`
	TeacherID string `json:"teacherId,omitempty"`
	Teacher   string `json:"teacher,omitempty"`
	ClassID   string `json:"classId,omitempty"`
}

// ClassWeek fixes a class and varies day x period.
type ClassWeek struct {
	ClassID string      `json:"classId"`
	Days    []DayColumn `json:"days"`
}

type DayColumn struct {
	Day   string          `json:"day"`
	Cells []TimetableCell `json:"cells"`
}

// MasterDay fixes a day and varies class x period.
type MasterDay struct {
	Day     string     `json:"day"`
	Classes []ClassRow `json:"classes"`
}

type ClassRow struct {
	ClassID string          `json:"classId"`
	Cells   []TimetableCell `json:"cells"`
}

type ConflictDTO struct {
	Day     string           `json:"day"`
	Period  int              `json:"period"`
	Kind    string           `json:"kind"`
	Subject string           `json:"subject,omitempty"`
	Entries []TimetableEntry `json:"entries"`
}

type TimetableEntry struct {
	Day       string `json:"day"`
	Period    int    `json:"period"`
	Subject   string `json:"subject"`
	TeacherID string `json:"teacherId"`
	ClassID   string `json:"classId"`
}

type ValidationReport struct {
	Valid     bool          `json:"valid"`
	Conflicts []ConflictDTO `json:"conflicts"`
}

type RejectedEntry struct {
	Entry  TimetableEntry `json:"entry"`
	Reason string         `json:"reason"`
}

type GenerateResult struct {
	Requested []string         `json:"requestedClasses"`
	Merged    int              `json:"merged"`
	Rejected  []RejectedEntry  `json:"rejected,omitempty"`
	Entries   []TimetableEntry `json:"entries"`
}

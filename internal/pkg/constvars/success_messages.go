package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Student messages
	CreateStudentSuccessMessage = "student created successfully"
	UpdateStudentSuccessMessage = "student updated successfully"
	DeleteStudentSuccessMessage = "student deleted successfully"
	GetStudentsSuccessMessage   = "get students successfully"

	// Teacher messages
	CreateTeacherSuccessMessage      = "teacher created successfully"
	UpdateTeacherSuccessMessage      = "teacher updated successfully"
	DeleteTeacherSuccessMessage      = "teacher deleted successfully"
	GetTeachersSuccessMessage        = "get teachers successfully"
	UpdateTeacherLeaveSuccessMessage = "teacher leave status updated successfully"

	// Subject messages
	CreateSubjectSuccessMessage = "subject created successfully"
	UpdateSubjectSuccessMessage = "subject updated successfully"
	DeleteSubjectSuccessMessage = "subject deleted successfully"
	GetSubjectsSuccessMessage   = "get subjects successfully"

	// Timetable messages
	GetTimetableSuccessMessage      = "get timetable successfully"
	SaveEntrySuccessMessage         = "timetable entry saved successfully"
	ClearEntrySuccessMessage        = "timetable entry cleared successfully"
	GetSettingsSuccessMessage       = "get timetable settings successfully"
	UpdateSettingsSuccessMessage    = "timetable settings updated successfully"
	ValidateTimetableSuccessMessage = "timetable validated successfully"
	GenerateTimetableSuccessMessage = "timetable generated successfully"

	// Substitution messages
	SuggestSubstitutionsSuccessMessage = "substitution suggestions ready"

	// Report messages
	GetSummarySuccessMessage = "get summary successfully"
)

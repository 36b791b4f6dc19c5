package constvars

const (
	ResourceStudents      = "students"
	ResourceTeachers      = "teachers"
	ResourceSubjects      = "subjects"
	ResourceTimetable     = "timetable"
	ResourceSubstitutions = "substitutions"
	ResourceReports       = "reports"
)

// Snapshot collection keys. Each key holds the serialized full collection,
// written as a whole on every mutation.
const (
	CollectionStudents  = "edunexus_students"
	CollectionTeachers  = "edunexus_teachers"
	CollectionSubjects  = "edunexus_subjects"
	CollectionTimetable = "edunexus_timetable"
	CollectionSettings  = "edunexus_timetable_settings"
)

// Instructional days. Saturday and Sunday are non-instructional.
var WeekDays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

const (
	FullDayPeriods   = 8
	ShortDayPeriods  = 5
	ShortDay         = "Friday"
	MinutesPerDay    = 1440
	TimeOfDayLayout  = "15:04"
	SessionTermFirst = "Summer"
	SessionTermLast  = "Winter"
)

// The fixed set of class labels the school schedules. Class membership is
// implicit; classes are not stored entities.
var ClassLabels = []string{
	"Nursery", "Prep",
	"1", "2", "3", "4", "5",
	"6", "7", "8",
	"9", "10", "11", "12",
}

// Default session timing, used to seed settings when no snapshot exists.
const (
	DefaultSessionName      = SessionTermFirst
	DefaultStartTime        = "08:00"
	DefaultPeriodDuration   = 35
	DefaultBreakDuration    = 15
	DefaultBreakAfterPeriod = 5
)

// Distributed lock keys.
const (
	LockKeyGenerateTimetable = "timetable:generate"
	LockKeyAuditLeader       = "timetable:audit:leader"
)

// Notification event routing keys.
const (
	EventTimetableReplaced     = "timetable.replaced"
	EventSubstitutionSuggested = "substitution.suggested"
	EventTimetableAudit        = "timetable.audit"
)

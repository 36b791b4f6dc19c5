package constvars

// Validation messages, mapped by validator tag.
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"min":      "must be at least %s",
	"max":      "must be at most %s",
	"gt":       "must be greater than %s",
	"gte":      "must be greater than or equal to %s",
	"lte":      "must be less than or equal to %s",
	"oneof":      "must be one of [%s]",
	"datauri":    "must be a valid data URI",
	"schoolday":  "must be an instructional day (Monday to Friday)",
	"classlabel": "must be a known class label",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"gt":    true,
	"gte":   true,
	"lte":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientResourceNotFound              = "the requested record was not found"
	ErrClientScheduleConflict              = "the change would double-book a teacher or a class"
	ErrClientInvalidDayOrPeriod            = "the day or period is outside the school week"
	ErrClientSchedulerUnavailable          = "the schedule generator is unavailable, existing timetable is unchanged"
	ErrClientGenerationInProgress          = "a timetable generation is already running"
	ErrClientUnknownSubject                = "one or more subjects are not in the subject list"
	ErrClientTooManyRequests               = "too many requests, please slow down"
)

// Error messages for developers
const (
	ErrDevInvalidInput      = "invalid input"
	ErrDevCannotParseJSON   = "cannot parse JSON"
	ErrDevCannotMarshalJSON = "cannot marshal JSON"
	ErrDevDocumentNotFound  = "document not found"
	ErrDevCreateHTTPRequest = "failed to create HTTP request"
	ErrDevSendHTTPRequest   = "failed to send HTTP request"

	// Validation messages
	ErrDevValidationFailed      = "validation failed"
	ErrDevInvalidRequestPayload = "invalid request payload"
	ErrDevMissingRequiredFields = "missing required fields"

	// Snapshot store messages
	ErrDevSnapshotRead     = "failed to read collection snapshot"
	ErrDevSnapshotWrite    = "failed to write collection snapshot"
	ErrDevSnapshotDecode   = "failed to decode collection snapshot"
	ErrDevLockAcquire      = "failed to acquire lock"
	ErrDevLockRelease      = "failed to release lock"

	// Scheduler adapter messages
	ErrDevSchedulerRequest          = "scheduler request failed"
	ErrDevSchedulerBadStatus        = "scheduler returned non-success status"
	ErrDevSchedulerEmptyResponse    = "scheduler returned an empty response"
	ErrDevSchedulerDecode           = "failed to decode scheduler response"
	ErrDevSchedulerNoCredentials    = "scheduler API key is not configured"
	ErrDevSchedulerStaleResponse    = "scheduler response arrived after the generation window expired"
	ErrDevSchedulerUnusableProposal = "scheduler proposal contained no entries that passed validation"
	ErrDevNoTeachersAvailable       = "no teachers available to build a timetable from"

	// Schedule integrity messages
	ErrDevScheduleConflict     = "schedule conflict detected"
	ErrDevInvalidDayOrPeriod   = "day/period pair is outside the day-length policy"
	ErrDevInvalidPeriodNumber  = "period number must be positive"
	ErrDevInvalidSessionTiming = "session settings contain a non-positive duration"
	ErrDevUnknownTeacher       = "entry references an unknown teacher"
	ErrDevUnknownSubjectName   = "subject name not present in subject list"

	// Notifier messages
	ErrDevNotifierPublish = "failed to publish notification event"

	// Photo storage messages
	ErrDevPhotoDecode = "failed to decode photo data URI"
	ErrDevPhotoUpload = "failed to upload photo to object storage"

	// Server messages
	ErrDevServerInternalError    = "internal server error"
	ErrDevServerNotFound         = "resource not found"
	ErrDevServerDeadlineExceeded = "deadline exceeded"
)

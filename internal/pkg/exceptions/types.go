package exceptions

import (
	"edunexus-service/internal/pkg/constvars"
	"fmt"
)

// Request and validation errors.
var (
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrURLParamValidation = func(err error, paramName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf("invalid URL parameter %q", paramName))
	}
	ErrUnknownSubjectName = func(name string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientUnknownSubject, fmt.Sprintf("%s: %q", constvars.ErrDevUnknownSubjectName, name))
	}
)

// NotFound errors.
var (
	ErrResourceNotFound = func(resource, id string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusNotFound, constvars.ErrClientResourceNotFound, fmt.Sprintf("%s: %s %q", constvars.ErrDevDocumentNotFound, resource, id))
	}
)

// Integrity violations. Never silently fixed; the dev message carries the
// conflicting (day, period) pair so the caller can decide remediation.
var (
	ErrScheduleConflict = func(day string, period int, detail string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusConflict, constvars.ErrClientScheduleConflict, fmt.Sprintf("%s at (%s, period %d): %s", constvars.ErrDevScheduleConflict, day, period, detail))
	}
	ErrInvalidDayOrPeriod = func(day string, period int) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientInvalidDayOrPeriod, fmt.Sprintf("%s: (%s, period %d)", constvars.ErrDevInvalidDayOrPeriod, day, period))
	}
	ErrInvalidPeriodNumber = func(period int) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientInvalidDayOrPeriod, fmt.Sprintf("%s: %d", constvars.ErrDevInvalidPeriodNumber, period))
	}
	ErrInvalidSessionTiming = func(periodDuration, breakDuration int) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf("%s: period %d, break %d", constvars.ErrDevInvalidSessionTiming, periodDuration, breakDuration))
	}
)

// Snapshot store errors.
var (
	ErrSnapshotRead = func(err error, collection string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf("%s %q", constvars.ErrDevSnapshotRead, collection))
	}
	ErrSnapshotWrite = func(err error, collection string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf("%s %q", constvars.ErrDevSnapshotWrite, collection))
	}
	ErrSnapshotDecode = func(err error, collection string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf("%s %q", constvars.ErrDevSnapshotDecode, collection))
	}
	ErrLockAcquire = func(err error, key string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf("%s %q", constvars.ErrDevLockAcquire, key))
	}
	ErrGenerationInProgress = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusConflict, constvars.ErrClientGenerationInProgress, "generation lock already held")
	}
	ErrTooManyRequests = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusTooManyRequests, constvars.ErrClientTooManyRequests, "scheduler endpoint rate limit exceeded")
	}
)

// Scheduler adapter errors. All recoverable; prior entity state stays intact.
var (
	ErrSchedulerNoCredentials = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusServiceUnavailable, constvars.ErrClientSchedulerUnavailable, constvars.ErrDevSchedulerNoCredentials)
	}
	ErrSchedulerRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientSchedulerUnavailable, constvars.ErrDevSchedulerRequest)
	}
	ErrSchedulerBadStatus = func(statusCode int, body string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadGateway, constvars.ErrClientSchedulerUnavailable, fmt.Sprintf("%s: %d %s", constvars.ErrDevSchedulerBadStatus, statusCode, body))
	}
	ErrSchedulerEmptyResponse = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadGateway, constvars.ErrClientSchedulerUnavailable, constvars.ErrDevSchedulerEmptyResponse)
	}
	ErrSchedulerDecode = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientSchedulerUnavailable, constvars.ErrDevSchedulerDecode)
	}
	ErrSchedulerStaleResponse = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadGateway, constvars.ErrClientSchedulerUnavailable, constvars.ErrDevSchedulerStaleResponse)
	}
	ErrSchedulerUnusableProposal = func(proposed, rejected int) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadGateway, constvars.ErrClientSchedulerUnavailable, fmt.Sprintf("%s: %d proposed, %d rejected", constvars.ErrDevSchedulerUnusableProposal, proposed, rejected))
	}
	ErrNoTeachersAvailable = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevNoTeachersAvailable)
	}
)

// Notifier and photo storage errors.
var (
	ErrNotifierPublish = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevNotifierPublish)
	}
	ErrPhotoDecode = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevPhotoDecode)
	}
	ErrPhotoUpload = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevPhotoUpload)
	}
)

// Server errors.
var (
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCreateHTTPRequest)
	}
	ErrSendHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevSendHTTPRequest)
	}
)

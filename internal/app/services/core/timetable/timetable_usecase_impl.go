package timetable

import (
	"context"
	"edunexus-service/internal/app/config"
	"edunexus-service/internal/app/contracts"
	"edunexus-service/internal/app/models"
	"edunexus-service/internal/app/services/core/schedule"
	"edunexus-service/internal/pkg/constvars"
	"edunexus-service/internal/pkg/dto/requests"
	"edunexus-service/internal/pkg/dto/responses"
	"edunexus-service/internal/pkg/exceptions"
	"edunexus-service/internal/pkg/utils"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

type timetableUsecase struct {
	TimetableRepository contracts.TimetableRepository
	TeacherRepository   contracts.TeacherRepository
	Scheduler           contracts.SchedulerClient
	Locker              contracts.LockerService
	Notifier            contracts.EventNotifier
	SchedulerConfig     config.AppScheduler
	Log                 *zap.Logger
}

var (
	timetableUsecaseInstance contracts.TimetableUsecase
	onceTimetableUsecase     sync.Once
)

func NewTimetableUsecase(
	timetableRepository contracts.TimetableRepository,
	teacherRepository contracts.TeacherRepository,
	schedulerClient contracts.SchedulerClient,
	lockerService contracts.LockerService,
	notifier contracts.EventNotifier,
	schedulerConfig config.AppScheduler,
	logger *zap.Logger,
) contracts.TimetableUsecase {
	onceTimetableUsecase.Do(func() {
		timetableUsecaseInstance = &timetableUsecase{
			TimetableRepository: timetableRepository,
			TeacherRepository:   teacherRepository,
			Scheduler:           schedulerClient,
			Locker:              lockerService,
			Notifier:            notifier,
			SchedulerConfig:     schedulerConfig,
			Log:                 logger,
		}
	})
	return timetableUsecaseInstance
}

func (uc *timetableUsecase) FindAllEntries(ctx context.Context) ([]models.TimetableEntry, error) {
	return uc.TimetableRepository.FindAllEntries(ctx)
}

func (uc *timetableUsecase) SaveEntry(ctx context.Context, request *requests.SaveTimetableEntry) (*models.TimetableEntry, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("timetableUsecase.SaveEntry called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDayKey, request.Day),
		zap.Int(constvars.LoggingPeriodKey, request.Period),
		zap.String(constvars.LoggingClassIDKey, request.ClassID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	day := utils.CanonicalDay(request.Day)
	if !schedule.IsValidSlot(day, request.Period) {
		return nil, exceptions.ErrInvalidDayOrPeriod(day, request.Period)
	}
	teacher, err := uc.TeacherRepository.FindByID(ctx, request.TeacherID)
	if err != nil {
		return nil, err
	}
	if teacher == nil {
		return nil, exceptions.ErrResourceNotFound(constvars.ResourceTeachers, request.TeacherID)
	}

	entries, err := uc.TimetableRepository.FindAllEntries(ctx)
	if err != nil {
		return nil, err
	}

	// Saving into an occupied class cell replaces it; the conflict gate only
	// rejects double-booking the teacher against some other class.
	kept := entries[:0]
	for _, e := range entries {
		if !(utils.CanonicalDay(e.Day) == day && e.Period == request.Period && e.ClassID == request.ClassID) {
			kept = append(kept, e)
		}
	}
	idx := schedule.NewIndex(kept)
	if other, busy := idx.EntryForTeacher(day, request.Period, request.TeacherID); busy {
		return nil, exceptions.ErrScheduleConflict(day, request.Period,
			fmt.Sprintf("teacher %s already teaches class %s", request.TeacherID, other.ClassID))
	}

	entry := models.TimetableEntry{
		Day:       day,
		Period:    request.Period,
		Subject:   request.Subject,
		TeacherID: request.TeacherID,
		ClassID:   request.ClassID,
	}
	if err := uc.TimetableRepository.ReplaceAllEntries(ctx, append(kept, entry)); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (uc *timetableUsecase) ClearEntry(ctx context.Context, request *requests.ClearTimetableEntry) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("timetableUsecase.ClearEntry called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDayKey, request.Day),
		zap.Int(constvars.LoggingPeriodKey, request.Period),
		zap.String(constvars.LoggingClassIDKey, request.ClassID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return exceptions.ErrInputValidation(err)
	}
	day := utils.CanonicalDay(request.Day)

	entries, err := uc.TimetableRepository.FindAllEntries(ctx)
	if err != nil {
		return err
	}
	kept := entries[:0]
	for _, e := range entries {
		if !(utils.CanonicalDay(e.Day) == day && e.Period == request.Period && e.ClassID == request.ClassID) {
			kept = append(kept, e)
		}
	}
	return uc.TimetableRepository.ReplaceAllEntries(ctx, kept)
}

func (uc *timetableUsecase) ClassWeek(ctx context.Context, classID string) (*responses.ClassWeek, error) {
	if !isKnownClassLabel(classID) {
		return nil, exceptions.ErrURLParamValidation(nil, "classId")
	}

	idx, settings, teacherNames, err := uc.loadProjectionInputs(ctx)
	if err != nil {
		return nil, err
	}
	week, err := schedule.ProjectClassWeek(idx, classID, *settings, teacherNames)
	if err != nil {
		return nil, err
	}
	return &week, nil
}

func (uc *timetableUsecase) MasterDay(ctx context.Context, day string) (*responses.MasterDay, error) {
	canonical := utils.CanonicalDay(day)
	if len(schedule.PeriodsForDay(canonical)) == 0 {
		return nil, exceptions.ErrURLParamValidation(nil, "day")
	}

	idx, settings, teacherNames, err := uc.loadProjectionInputs(ctx)
	if err != nil {
		return nil, err
	}
	master, err := schedule.ProjectMasterDay(idx, canonical, *settings, teacherNames)
	if err != nil {
		return nil, err
	}
	return &master, nil
}

func (uc *timetableUsecase) Validate(ctx context.Context) (*responses.ValidationReport, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("timetableUsecase.Validate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	entries, err := uc.TimetableRepository.FindAllEntries(ctx)
	if err != nil {
		return nil, err
	}
	conflicts := schedule.NewIndex(entries).Validate()

	report := &responses.ValidationReport{
		Valid:     len(conflicts) == 0,
		Conflicts: make([]responses.ConflictDTO, 0, len(conflicts)),
	}
	for _, c := range conflicts {
		report.Conflicts = append(report.Conflicts, responses.ConflictDTO{
			Day:     c.Day,
			Period:  c.Period,
			Kind:    c.Kind,
			Entries: toResponseEntries(c.Entries),
		})
	}
	return report, nil
}

func (uc *timetableUsecase) GetSettings(ctx context.Context) (*models.TimetableSettings, error) {
	settings, err := uc.TimetableRepository.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	if settings != nil {
		return settings, nil
	}

	defaults := models.TimetableSettings{
		SessionName:      constvars.DefaultSessionName,
		StartTime:        constvars.DefaultStartTime,
		PeriodDuration:   constvars.DefaultPeriodDuration,
		BreakDuration:    constvars.DefaultBreakDuration,
		BreakAfterPeriod: constvars.DefaultBreakAfterPeriod,
	}
	if err := uc.TimetableRepository.SaveSettings(ctx, defaults); err != nil {
		return nil, err
	}
	return &defaults, nil
}

func (uc *timetableUsecase) UpdateSettings(ctx context.Context, request *requests.UpdateTimetableSettings) (*models.TimetableSettings, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("timetableUsecase.UpdateSettings called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	settings := models.TimetableSettings{
		SessionName:      request.SessionName,
		StartTime:        request.StartTime,
		PeriodDuration:   request.PeriodDuration,
		BreakDuration:    request.BreakDuration,
		BreakAfterPeriod: request.BreakAfterPeriod,
	}
	if err := uc.TimetableRepository.SaveSettings(ctx, settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// Generate asks the external scheduler for a full timetable covering the
// requested classes and merges the validated result. The busy-flag lock makes
// the action non re-entrant; a reply arriving after the lock expired is
// discarded rather than applied blindly.
func (uc *timetableUsecase) Generate(ctx context.Context, request *requests.GenerateTimetable) (*responses.GenerateResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("timetableUsecase.Generate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Strings("class_ids", request.ClassIDs),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	lockTTL := time.Duration(uc.SchedulerConfig.LockTTLInSeconds) * time.Second
	acquired, lockValue, err := uc.Locker.TryLock(ctx, constvars.LockKeyGenerateTimetable, lockTTL)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrGenerationInProgress()
	}
	defer func() {
		if err := uc.Locker.Unlock(context.Background(), constvars.LockKeyGenerateTimetable, lockValue); err != nil {
			uc.Log.Warn("timetableUsecase.Generate failed to release lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
	}()

	teachers, err := uc.TeacherRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(teachers) == 0 {
		return nil, exceptions.ErrNoTeachersAvailable()
	}
	settings, err := uc.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	callCtx, cancel := context.WithTimeout(ctx, time.Duration(uc.SchedulerConfig.RequestTimeoutInSeconds)*time.Second)
	defer cancel()
	proposed, err := uc.Scheduler.GenerateTimetable(callCtx, teachers, request.ClassIDs, *settings)
	if err != nil {
		return nil, err
	}

	held, err := uc.Locker.IsHeld(ctx, constvars.LockKeyGenerateTimetable, lockValue)
	if err != nil {
		return nil, err
	}
	if !held {
		uc.Log.Warn("timetableUsecase.Generate discarding stale scheduler response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrSchedulerStaleResponse()
	}

	existing, err := uc.TimetableRepository.FindAllEntries(ctx)
	if err != nil {
		return nil, err
	}
	requested := make(map[string]bool, len(request.ClassIDs))
	for _, classID := range request.ClassIDs {
		requested[classID] = true
	}
	retained := make([]models.TimetableEntry, 0, len(existing))
	for _, e := range existing {
		if !requested[e.ClassID] {
			retained = append(retained, e)
		}
	}
	knownTeacherIDs := make(map[string]bool, len(teachers))
	for _, t := range teachers {
		knownTeacherIDs[t.ID] = true
	}

	accepted, rejected := schedule.ValidateProposal(proposed, request.ClassIDs, retained, knownTeacherIDs)
	// An empty accepted set must never reach the merge: wholesale replacement
	// would wipe the requested classes' existing entries with nothing.
	if len(accepted) == 0 {
		uc.Log.Warn("timetableUsecase.Generate discarding proposal with no accepted entries",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int("proposed", len(proposed)),
			zap.Int("rejected", len(rejected)),
		)
		return nil, exceptions.ErrSchedulerUnusableProposal(len(proposed), len(rejected))
	}
	merged := schedule.MergeReplace(existing, request.ClassIDs, accepted)
	if err := uc.TimetableRepository.ReplaceAllEntries(ctx, merged); err != nil {
		return nil, err
	}

	if err := uc.Notifier.Publish(ctx, constvars.EventTimetableReplaced, map[string]interface{}{
		"classIds":   request.ClassIDs,
		"merged":     len(accepted),
		"rejected":   len(rejected),
		"entryCount": len(merged),
	}); err != nil {
		uc.Log.Warn("timetableUsecase.Generate failed to publish event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEventKey, constvars.EventTimetableReplaced),
			zap.Error(err),
		)
	}

	result := &responses.GenerateResult{
		Requested: request.ClassIDs,
		Merged:    len(accepted),
		Entries:   toResponseEntries(accepted),
	}
	for _, r := range rejected {
		result.Rejected = append(result.Rejected, responses.RejectedEntry{
			Entry:  toResponseEntry(r.Entry),
			Reason: r.Reason,
		})
	}
	return result, nil
}

func (uc *timetableUsecase) loadProjectionInputs(ctx context.Context) (*schedule.Index, *models.TimetableSettings, map[string]string, error) {
	entries, err := uc.TimetableRepository.FindAllEntries(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	settings, err := uc.GetSettings(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	teachers, err := uc.TeacherRepository.FindAll(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	teacherNames := make(map[string]string, len(teachers))
	for _, t := range teachers {
		teacherNames[t.ID] = t.Name
	}
	return schedule.NewIndex(entries), settings, teacherNames, nil
}

func isKnownClassLabel(classID string) bool {
	for _, label := range constvars.ClassLabels {
		if label == classID {
			return true
		}
	}
	return false
}

func toResponseEntry(entry models.TimetableEntry) responses.TimetableEntry {
	return responses.TimetableEntry{
		Day:       entry.Day,
		Period:    entry.Period,
		Subject:   entry.Subject,
		TeacherID: entry.TeacherID,
		ClassID:   entry.ClassID,
	}
}

func toResponseEntries(entries []models.TimetableEntry) []responses.TimetableEntry {
	out := make([]responses.TimetableEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, toResponseEntry(e))
	}
	return out
}

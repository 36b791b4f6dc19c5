package substitutions

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
	"sync"
	"time"

	"go.uber.org/zap"
)

type substitutionUsecase struct {
	TeacherRepository   contracts.TeacherRepository
	TimetableRepository contracts.TimetableRepository
	Scheduler           contracts.SchedulerClient
	Notifier            contracts.EventNotifier
	SchedulerConfig     config.AppScheduler
	Log                 *zap.Logger
}

var (
	substitutionUsecaseInstance contracts.SubstitutionUsecase
	onceSubstitutionUsecase     sync.Once
)

func NewSubstitutionUsecase(
	teacherRepository contracts.TeacherRepository,
	timetableRepository contracts.TimetableRepository,
	schedulerClient contracts.SchedulerClient,
	notifier contracts.EventNotifier,
	schedulerConfig config.AppScheduler,
	logger *zap.Logger,
) contracts.SubstitutionUsecase {
	onceSubstitutionUsecase.Do(func() {
		substitutionUsecaseInstance = &substitutionUsecase{
			TeacherRepository:   teacherRepository,
			TimetableRepository: timetableRepository,
			Scheduler:           schedulerClient,
			Notifier:            notifier,
			SchedulerConfig:     schedulerConfig,
			Log:                 logger,
		}
	})
	return substitutionUsecaseInstance
}

// Suggest computes the slots impacted by a teacher's absence and asks the
// external scheduler for cover. Suggestions are advisory; nothing is written
// to the timetable here, and each suggestion carries the outcome of a local
// feasibility check.
func (uc *substitutionUsecase) Suggest(ctx context.Context, request *requests.SuggestSubstitutions) (*responses.SuggestSubstitutions, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("substitutionUsecase.Suggest called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTeacherIDKey, request.TeacherID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	absent, err := uc.TeacherRepository.FindByID(ctx, request.TeacherID)
	if err != nil {
		return nil, err
	}
	if absent == nil {
		return nil, exceptions.ErrResourceNotFound(constvars.ResourceTeachers, request.TeacherID)
	}

	entries, err := uc.TimetableRepository.FindAllEntries(ctx)
	if err != nil {
		return nil, err
	}
	idx := schedule.NewIndex(entries)
	impacted := idx.EntriesForTeacher(absent.ID)

	result := &responses.SuggestSubstitutions{
		AbsentTeacherID: absent.ID,
		AbsentTeacher:   absent.Name,
		ImpactedSlots:   toResponseEntries(impacted),
		Suggestions:     []responses.SubstitutionAdvice{},
	}
	if len(impacted) == 0 {
		uc.Log.Info("substitutionUsecase.Suggest absence impacts no slots",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingTeacherIDKey, absent.ID),
		)
		return result, nil
	}

	teachers, err := uc.TeacherRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	available := make([]models.Teacher, 0, len(teachers))
	teacherByName := make(map[string]models.Teacher, len(teachers))
	for _, t := range teachers {
		teacherByName[t.Name] = t
		if t.ID != absent.ID && !t.IsOnLeave {
			available = append(available, t)
		}
	}

	callCtx, cancel := context.WithTimeout(ctx, time.Duration(uc.SchedulerConfig.RequestTimeoutInSeconds)*time.Second)
	defer cancel()
	suggestions, err := uc.Scheduler.SuggestSubstitutions(callCtx, *absent, impacted, available)
	if err != nil {
		return nil, err
	}

	result.Suggestions = schedule.ReviewSuggestions(suggestions, *absent, idx, teacherByName)

	if err := uc.Notifier.Publish(ctx, constvars.EventSubstitutionSuggested, result); err != nil {
		uc.Log.Warn("substitutionUsecase.Suggest failed to publish event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEventKey, constvars.EventSubstitutionSuggested),
			zap.Error(err),
		)
	}
	return result, nil
}

func toResponseEntries(entries []models.TimetableEntry) []responses.TimetableEntry {
	out := make([]responses.TimetableEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, responses.TimetableEntry{
			Day:       e.Day,
			Period:    e.Period,
			Subject:   e.Subject,
			TeacherID: e.TeacherID,
			ClassID:   e.ClassID,
		})
	}
	return out
}

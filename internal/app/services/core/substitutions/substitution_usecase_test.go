package substitutions

import (
	"context"
	"edunexus-service/internal/app/config"
	"edunexus-service/internal/app/models"
	"edunexus-service/internal/pkg/constvars"
	"edunexus-service/internal/pkg/dto/requests"
	"edunexus-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type mockTeacherRepository struct{ mock.Mock }

func (m *mockTeacherRepository) FindAll(ctx context.Context) ([]models.Teacher, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Teacher), args.Error(1)
}

func (m *mockTeacherRepository) FindByID(ctx context.Context, teacherID string) (*models.Teacher, error) {
	args := m.Called(ctx, teacherID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Teacher), args.Error(1)
}

func (m *mockTeacherRepository) Upsert(ctx context.Context, teacher models.Teacher) error {
	args := m.Called(ctx, teacher)
	return args.Error(0)
}

func (m *mockTeacherRepository) Delete(ctx context.Context, teacherID string) error {
	args := m.Called(ctx, teacherID)
	return args.Error(0)
}

type mockTimetableRepository struct{ mock.Mock }

func (m *mockTimetableRepository) FindAllEntries(ctx context.Context) ([]models.TimetableEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TimetableEntry), args.Error(1)
}

func (m *mockTimetableRepository) ReplaceAllEntries(ctx context.Context, entries []models.TimetableEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *mockTimetableRepository) GetSettings(ctx context.Context) (*models.TimetableSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TimetableSettings), args.Error(1)
}

func (m *mockTimetableRepository) SaveSettings(ctx context.Context, settings models.TimetableSettings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

type mockSchedulerClient struct{ mock.Mock }

func (m *mockSchedulerClient) GenerateTimetable(ctx context.Context, teachers []models.Teacher, classIDs []string, settings models.TimetableSettings) ([]models.TimetableEntry, error) {
	args := m.Called(ctx, teachers, classIDs, settings)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TimetableEntry), args.Error(1)
}

func (m *mockSchedulerClient) SuggestSubstitutions(ctx context.Context, absent models.Teacher, impacted []models.TimetableEntry, available []models.Teacher) ([]models.SubstitutionSuggestion, error) {
	args := m.Called(ctx, absent, impacted, available)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SubstitutionSuggestion), args.Error(1)
}

type mockEventNotifier struct{ mock.Mock }

func (m *mockEventNotifier) Publish(ctx context.Context, event string, payload interface{}) error {
	args := m.Called(ctx, event, payload)
	return args.Error(0)
}

func newTestUsecase(teacherRepo *mockTeacherRepository, repo *mockTimetableRepository, scheduler *mockSchedulerClient, notifier *mockEventNotifier) *substitutionUsecase {
	return &substitutionUsecase{
		TeacherRepository:   teacherRepo,
		TimetableRepository: repo,
		Scheduler:           scheduler,
		Notifier:            notifier,
		SchedulerConfig:     config.AppScheduler{RequestTimeoutInSeconds: 30},
		Log:                 zap.NewNop(),
	}
}

func TestSuggest(t *testing.T) {
	absent := &models.Teacher{ID: "T1", Name: "Asha Verma", Subjects: []string{"Mathematics"}}
	roster := []models.Teacher{
		*absent,
		{ID: "T2", Name: "Rohit Gupta", Subjects: []string{"Mathematics"}},
		{ID: "T3", Name: "Meena Nair", Subjects: []string{"English"}, IsOnLeave: true},
	}
	entries := []models.TimetableEntry{
		{Day: "Monday", Period: 1, Subject: "Mathematics", TeacherID: "T1", ClassID: "5"},
		{Day: "Monday", Period: 3, Subject: "Mathematics", TeacherID: "T1", ClassID: "6"},
		{Day: "Tuesday", Period: 2, Subject: "English", TeacherID: "T2", ClassID: "5"},
	}

	t.Run("Impacted Slots And Reviewed Suggestions Are Returned", func(t *testing.T) {
		teacherRepo := new(mockTeacherRepository)
		repo := new(mockTimetableRepository)
		scheduler := new(mockSchedulerClient)
		notifier := new(mockEventNotifier)
		uc := newTestUsecase(teacherRepo, repo, scheduler, notifier)

		teacherRepo.On("FindByID", mock.Anything, "T1").Return(absent, nil)
		teacherRepo.On("FindAll", mock.Anything).Return(roster, nil)
		repo.On("FindAllEntries", mock.Anything).Return(entries, nil)
		scheduler.On("SuggestSubstitutions", mock.Anything, *absent, mock.Anything, mock.MatchedBy(func(available []models.Teacher) bool {
			// absent and on-leave teachers must not be offered as candidates
			return len(available) == 1 && available[0].ID == "T2"
		})).Return([]models.SubstitutionSuggestion{
			{Day: "Monday", Period: 1, AbsentTeacher: "Asha Verma", SuggestedTeacher: "Rohit Gupta", Reason: "same subject"},
		}, nil)
		notifier.On("Publish", mock.Anything, constvars.EventSubstitutionSuggested, mock.Anything).Return(nil)

		result, err := uc.Suggest(context.Background(), &requests.SuggestSubstitutions{TeacherID: "T1"})

		assert.NoError(t, err)
		assert.Equal(t, "Asha Verma", result.AbsentTeacher)
		assert.Len(t, result.ImpactedSlots, 2)
		assert.Len(t, result.Suggestions, 1)
		assert.Equal(t, "ok", result.Suggestions[0].Status)
		scheduler.AssertExpectations(t)
	})

	t.Run("No Impacted Slots Skips The Scheduler", func(t *testing.T) {
		teacherRepo := new(mockTeacherRepository)
		repo := new(mockTimetableRepository)
		scheduler := new(mockSchedulerClient)
		uc := newTestUsecase(teacherRepo, repo, scheduler, new(mockEventNotifier))

		free := &models.Teacher{ID: "T4", Name: "Sara Khan"}
		teacherRepo.On("FindByID", mock.Anything, "T4").Return(free, nil)
		repo.On("FindAllEntries", mock.Anything).Return(entries, nil)

		result, err := uc.Suggest(context.Background(), &requests.SuggestSubstitutions{TeacherID: "T4"})

		assert.NoError(t, err)
		assert.Empty(t, result.ImpactedSlots)
		assert.Empty(t, result.Suggestions)
		scheduler.AssertNotCalled(t, "SuggestSubstitutions", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Unknown Teacher Is Not Found", func(t *testing.T) {
		teacherRepo := new(mockTeacherRepository)
		uc := newTestUsecase(teacherRepo, new(mockTimetableRepository), new(mockSchedulerClient), new(mockEventNotifier))

		teacherRepo.On("FindByID", mock.Anything, "T9").Return(nil, nil)

		_, err := uc.Suggest(context.Background(), &requests.SuggestSubstitutions{TeacherID: "T9"})

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})

	t.Run("Busy Suggested Teacher Is Flagged", func(t *testing.T) {
		teacherRepo := new(mockTeacherRepository)
		repo := new(mockTimetableRepository)
		scheduler := new(mockSchedulerClient)
		notifier := new(mockEventNotifier)
		uc := newTestUsecase(teacherRepo, repo, scheduler, notifier)

		teacherRepo.On("FindByID", mock.Anything, "T1").Return(absent, nil)
		teacherRepo.On("FindAll", mock.Anything).Return(roster, nil)
		repo.On("FindAllEntries", mock.Anything).Return([]models.TimetableEntry{
			{Day: "Monday", Period: 1, Subject: "Mathematics", TeacherID: "T1", ClassID: "5"},
			{Day: "Monday", Period: 1, Subject: "English", TeacherID: "T2", ClassID: "6"},
		}, nil)
		scheduler.On("SuggestSubstitutions", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return([]models.SubstitutionSuggestion{
				{Day: "Monday", Period: 1, AbsentTeacher: "Asha Verma", SuggestedTeacher: "Rohit Gupta", Reason: "same subject"},
			}, nil)
		notifier.On("Publish", mock.Anything, constvars.EventSubstitutionSuggested, mock.Anything).Return(nil)

		result, err := uc.Suggest(context.Background(), &requests.SuggestSubstitutions{TeacherID: "T1"})

		assert.NoError(t, err)
		assert.Len(t, result.Suggestions, 1)
		assert.Equal(t, "flagged", result.Suggestions[0].Status)
	})
}

package timetable

import (
	"context"
	"edunexus-service/internal/app/config"
	"edunexus-service/internal/app/models"
	"edunexus-service/internal/pkg/constvars"
	"edunexus-service/internal/pkg/dto/requests"
	"edunexus-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

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

type mockLockerService struct{ mock.Mock }

func (m *mockLockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *mockLockerService) Unlock(ctx context.Context, key, lockValue string) error {
	args := m.Called(ctx, key, lockValue)
	return args.Error(0)
}

func (m *mockLockerService) IsHeld(ctx context.Context, key, lockValue string) (bool, error) {
	args := m.Called(ctx, key, lockValue)
	return args.Bool(0), args.Error(1)
}

type mockEventNotifier struct{ mock.Mock }

func (m *mockEventNotifier) Publish(ctx context.Context, event string, payload interface{}) error {
	args := m.Called(ctx, event, payload)
	return args.Error(0)
}

func newTestUsecase(repo *mockTimetableRepository, teacherRepo *mockTeacherRepository, scheduler *mockSchedulerClient, locker *mockLockerService, notifier *mockEventNotifier) *timetableUsecase {
	return &timetableUsecase{
		TimetableRepository: repo,
		TeacherRepository:   teacherRepo,
		Scheduler:           scheduler,
		Locker:              locker,
		Notifier:            notifier,
		SchedulerConfig: config.AppScheduler{
			RequestTimeoutInSeconds: 30,
			LockTTLInSeconds:        60,
		},
		Log: zap.NewNop(),
	}
}

func testSettings() *models.TimetableSettings {
	return &models.TimetableSettings{
		SessionName:      "Summer",
		StartTime:        "08:00",
		PeriodDuration:   35,
		BreakDuration:    15,
		BreakAfterPeriod: 5,
	}
}

func TestSaveEntry(t *testing.T) {
	teacher := &models.Teacher{ID: "T1", Name: "Asha Verma", Subjects: []string{"Mathematics"}}

	t.Run("Occupied Class Cell Is Replaced", func(t *testing.T) {
		repo := new(mockTimetableRepository)
		teacherRepo := new(mockTeacherRepository)
		uc := newTestUsecase(repo, teacherRepo, nil, nil, nil)

		teacherRepo.On("FindByID", mock.Anything, "T1").Return(teacher, nil)
		repo.On("FindAllEntries", mock.Anything).Return([]models.TimetableEntry{
			{Day: "Monday", Period: 1, Subject: "English", TeacherID: "T2", ClassID: "5"},
		}, nil)
		repo.On("ReplaceAllEntries", mock.Anything, mock.MatchedBy(func(entries []models.TimetableEntry) bool {
			return len(entries) == 1 && entries[0].Subject == "Mathematics" && entries[0].TeacherID == "T1"
		})).Return(nil)

		entry, err := uc.SaveEntry(context.Background(), &requests.SaveTimetableEntry{
			Day: "Monday", Period: 1, Subject: "Mathematics", TeacherID: "T1", ClassID: "5",
		})

		assert.NoError(t, err)
		assert.Equal(t, "Monday", entry.Day)
		repo.AssertExpectations(t)
	})

	t.Run("Teacher Double Booking Is Rejected With Conflict", func(t *testing.T) {
		repo := new(mockTimetableRepository)
		teacherRepo := new(mockTeacherRepository)
		uc := newTestUsecase(repo, teacherRepo, nil, nil, nil)

		teacherRepo.On("FindByID", mock.Anything, "T1").Return(teacher, nil)
		repo.On("FindAllEntries", mock.Anything).Return([]models.TimetableEntry{
			{Day: "Monday", Period: 1, Subject: "Mathematics", TeacherID: "T1", ClassID: "6"},
		}, nil)

		_, err := uc.SaveEntry(context.Background(), &requests.SaveTimetableEntry{
			Day: "Monday", Period: 1, Subject: "Mathematics", TeacherID: "T1", ClassID: "5",
		})

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
		repo.AssertNotCalled(t, "ReplaceAllEntries", mock.Anything, mock.Anything)
	})

	t.Run("Friday Period Six Is Rejected Before Any Read", func(t *testing.T) {
		repo := new(mockTimetableRepository)
		teacherRepo := new(mockTeacherRepository)
		uc := newTestUsecase(repo, teacherRepo, nil, nil, nil)

		_, err := uc.SaveEntry(context.Background(), &requests.SaveTimetableEntry{
			Day: "Friday", Period: 6, Subject: "Mathematics", TeacherID: "T1", ClassID: "5",
		})

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})

	t.Run("Unknown Teacher Is Rejected", func(t *testing.T) {
		repo := new(mockTimetableRepository)
		teacherRepo := new(mockTeacherRepository)
		uc := newTestUsecase(repo, teacherRepo, nil, nil, nil)

		teacherRepo.On("FindByID", mock.Anything, "T9").Return(nil, nil)

		_, err := uc.SaveEntry(context.Background(), &requests.SaveTimetableEntry{
			Day: "Monday", Period: 1, Subject: "Mathematics", TeacherID: "T9", ClassID: "5",
		})

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}

func TestGetSettings(t *testing.T) {
	t.Run("Missing Snapshot Is Seeded With Defaults", func(t *testing.T) {
		repo := new(mockTimetableRepository)
		uc := newTestUsecase(repo, new(mockTeacherRepository), nil, nil, nil)

		repo.On("GetSettings", mock.Anything).Return(nil, nil)
		repo.On("SaveSettings", mock.Anything, mock.MatchedBy(func(s models.TimetableSettings) bool {
			return s.StartTime == "08:00" && s.PeriodDuration == 35 && s.BreakAfterPeriod == 5
		})).Return(nil)

		settings, err := uc.GetSettings(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, "Summer", settings.SessionName)
		repo.AssertExpectations(t)
	})

	t.Run("Stored Settings Are Returned As Is", func(t *testing.T) {
		repo := new(mockTimetableRepository)
		uc := newTestUsecase(repo, new(mockTeacherRepository), nil, nil, nil)

		stored := testSettings()
		stored.SessionName = "Winter"
		repo.On("GetSettings", mock.Anything).Return(stored, nil)

		settings, err := uc.GetSettings(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, "Winter", settings.SessionName)
		repo.AssertNotCalled(t, "SaveSettings", mock.Anything, mock.Anything)
	})
}

func TestGenerate(t *testing.T) {
	teachers := []models.Teacher{
		{ID: "T1", Name: "Asha Verma", Subjects: []string{"Mathematics"}},
		{ID: "T2", Name: "Rohit Gupta", Subjects: []string{"English"}},
	}

	t.Run("Valid Proposal Replaces The Requested Class", func(t *testing.T) {
		repo := new(mockTimetableRepository)
		teacherRepo := new(mockTeacherRepository)
		scheduler := new(mockSchedulerClient)
		locker := new(mockLockerService)
		notifier := new(mockEventNotifier)
		uc := newTestUsecase(repo, teacherRepo, scheduler, locker, notifier)

		locker.On("TryLock", mock.Anything, constvars.LockKeyGenerateTimetable, mock.Anything).Return(true, "lock-1", nil)
		locker.On("IsHeld", mock.Anything, constvars.LockKeyGenerateTimetable, "lock-1").Return(true, nil)
		locker.On("Unlock", mock.Anything, constvars.LockKeyGenerateTimetable, "lock-1").Return(nil)
		teacherRepo.On("FindAll", mock.Anything).Return(teachers, nil)
		repo.On("GetSettings", mock.Anything).Return(testSettings(), nil)

		proposal := []models.TimetableEntry{
			{Day: "Monday", Period: 1, Subject: "Mathematics", TeacherID: "T1", ClassID: "5"},
			{Day: "Friday", Period: 7, Subject: "English", TeacherID: "T2", ClassID: "5"},
			{Day: "Monday", Period: 2, Subject: "Art", TeacherID: "T9", ClassID: "5"},
		}
		scheduler.On("GenerateTimetable", mock.Anything, teachers, []string{"5"}, *testSettings()).Return(proposal, nil)

		existing := []models.TimetableEntry{
			{Day: "Monday", Period: 1, Subject: "Old", TeacherID: "T2", ClassID: "5"},
			{Day: "Monday", Period: 1, Subject: "Science", TeacherID: "T2", ClassID: "6"},
		}
		repo.On("FindAllEntries", mock.Anything).Return(existing, nil)
		repo.On("ReplaceAllEntries", mock.Anything, mock.MatchedBy(func(merged []models.TimetableEntry) bool {
			hasRetained := false
			hasNew := false
			for _, e := range merged {
				if e.ClassID == "6" && e.Subject == "Science" {
					hasRetained = true
				}
				if e.ClassID == "5" && e.Subject == "Mathematics" {
					hasNew = true
				}
				if e.ClassID == "5" && e.Subject == "Old" {
					return false
				}
			}
			return hasRetained && hasNew && len(merged) == 2
		})).Return(nil)
		notifier.On("Publish", mock.Anything, constvars.EventTimetableReplaced, mock.Anything).Return(nil)

		result, err := uc.Generate(context.Background(), &requests.GenerateTimetable{ClassIDs: []string{"5"}})

		assert.NoError(t, err)
		assert.Equal(t, 1, result.Merged)
		assert.Len(t, result.Rejected, 2, "invalid slot and unknown teacher should both be rejected")
		repo.AssertExpectations(t)
		locker.AssertExpectations(t)
	})

	t.Run("Second Generate While Busy Is Refused", func(t *testing.T) {
		locker := new(mockLockerService)
		scheduler := new(mockSchedulerClient)
		uc := newTestUsecase(new(mockTimetableRepository), new(mockTeacherRepository), scheduler, locker, new(mockEventNotifier))

		locker.On("TryLock", mock.Anything, constvars.LockKeyGenerateTimetable, mock.Anything).Return(false, "", nil)

		_, err := uc.Generate(context.Background(), &requests.GenerateTimetable{ClassIDs: []string{"5"}})

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
		scheduler.AssertNotCalled(t, "GenerateTimetable", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Stale Response Is Discarded", func(t *testing.T) {
		repo := new(mockTimetableRepository)
		teacherRepo := new(mockTeacherRepository)
		scheduler := new(mockSchedulerClient)
		locker := new(mockLockerService)
		uc := newTestUsecase(repo, teacherRepo, scheduler, locker, new(mockEventNotifier))

		locker.On("TryLock", mock.Anything, constvars.LockKeyGenerateTimetable, mock.Anything).Return(true, "lock-2", nil)
		locker.On("IsHeld", mock.Anything, constvars.LockKeyGenerateTimetable, "lock-2").Return(false, nil)
		locker.On("Unlock", mock.Anything, constvars.LockKeyGenerateTimetable, "lock-2").Return(nil)
		teacherRepo.On("FindAll", mock.Anything).Return(teachers, nil)
		repo.On("GetSettings", mock.Anything).Return(testSettings(), nil)
		scheduler.On("GenerateTimetable", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return([]models.TimetableEntry{{Day: "Monday", Period: 1, Subject: "Mathematics", TeacherID: "T1", ClassID: "5"}}, nil)

		_, err := uc.Generate(context.Background(), &requests.GenerateTimetable{ClassIDs: []string{"5"}})

		assert.Error(t, err)
		repo.AssertNotCalled(t, "ReplaceAllEntries", mock.Anything, mock.Anything)
	})

	t.Run("Fully Rejected Proposal Leaves Existing Entries Intact", func(t *testing.T) {
		repo := new(mockTimetableRepository)
		teacherRepo := new(mockTeacherRepository)
		scheduler := new(mockSchedulerClient)
		locker := new(mockLockerService)
		uc := newTestUsecase(repo, teacherRepo, scheduler, locker, new(mockEventNotifier))

		locker.On("TryLock", mock.Anything, constvars.LockKeyGenerateTimetable, mock.Anything).Return(true, "lock-4", nil)
		locker.On("IsHeld", mock.Anything, constvars.LockKeyGenerateTimetable, "lock-4").Return(true, nil)
		locker.On("Unlock", mock.Anything, constvars.LockKeyGenerateTimetable, "lock-4").Return(nil)
		teacherRepo.On("FindAll", mock.Anything).Return(teachers, nil)
		repo.On("GetSettings", mock.Anything).Return(testSettings(), nil)

		// Every proposed entry fails the gate (unknown teacher), so nothing
		// may replace class 5's existing schedule.
		scheduler.On("GenerateTimetable", mock.Anything, teachers, []string{"5"}, *testSettings()).
			Return([]models.TimetableEntry{{Day: "Monday", Period: 1, Subject: "Art", TeacherID: "T9", ClassID: "5"}}, nil)
		repo.On("FindAllEntries", mock.Anything).Return([]models.TimetableEntry{
			{Day: "Monday", Period: 1, Subject: "Mathematics", TeacherID: "T1", ClassID: "5"},
		}, nil)

		_, err := uc.Generate(context.Background(), &requests.GenerateTimetable{ClassIDs: []string{"5"}})

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusBadGateway, customErr.StatusCode)
		repo.AssertNotCalled(t, "ReplaceAllEntries", mock.Anything, mock.Anything)
	})

	t.Run("Empty Proposal Leaves Existing Entries Intact", func(t *testing.T) {
		repo := new(mockTimetableRepository)
		teacherRepo := new(mockTeacherRepository)
		scheduler := new(mockSchedulerClient)
		locker := new(mockLockerService)
		uc := newTestUsecase(repo, teacherRepo, scheduler, locker, new(mockEventNotifier))

		locker.On("TryLock", mock.Anything, constvars.LockKeyGenerateTimetable, mock.Anything).Return(true, "lock-5", nil)
		locker.On("IsHeld", mock.Anything, constvars.LockKeyGenerateTimetable, "lock-5").Return(true, nil)
		locker.On("Unlock", mock.Anything, constvars.LockKeyGenerateTimetable, "lock-5").Return(nil)
		teacherRepo.On("FindAll", mock.Anything).Return(teachers, nil)
		repo.On("GetSettings", mock.Anything).Return(testSettings(), nil)
		scheduler.On("GenerateTimetable", mock.Anything, teachers, []string{"5"}, *testSettings()).
			Return([]models.TimetableEntry{}, nil)
		repo.On("FindAllEntries", mock.Anything).Return([]models.TimetableEntry{
			{Day: "Monday", Period: 1, Subject: "Mathematics", TeacherID: "T1", ClassID: "5"},
		}, nil)

		_, err := uc.Generate(context.Background(), &requests.GenerateTimetable{ClassIDs: []string{"5"}})

		assert.Error(t, err)
		repo.AssertNotCalled(t, "ReplaceAllEntries", mock.Anything, mock.Anything)
	})

	t.Run("No Teachers Means No Call To The Scheduler", func(t *testing.T) {
		repo := new(mockTimetableRepository)
		teacherRepo := new(mockTeacherRepository)
		scheduler := new(mockSchedulerClient)
		locker := new(mockLockerService)
		uc := newTestUsecase(repo, teacherRepo, scheduler, locker, new(mockEventNotifier))

		locker.On("TryLock", mock.Anything, constvars.LockKeyGenerateTimetable, mock.Anything).Return(true, "lock-3", nil)
		locker.On("Unlock", mock.Anything, constvars.LockKeyGenerateTimetable, "lock-3").Return(nil)
		teacherRepo.On("FindAll", mock.Anything).Return([]models.Teacher{}, nil)

		_, err := uc.Generate(context.Background(), &requests.GenerateTimetable{ClassIDs: []string{"5"}})

		assert.Error(t, err)
		scheduler.AssertNotCalled(t, "GenerateTimetable", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

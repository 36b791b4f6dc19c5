package routers

import (
	"bytes"
	"context"
	"edunexus-service/internal/app/delivery/http/middlewares"
	"edunexus-service/internal/app/models"
	"edunexus-service/internal/app/services/core/timetable"
	"edunexus-service/internal/pkg/dto/requests"
	"edunexus-service/internal/pkg/dto/responses"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockTimetableUsecase struct {
	mock.Mock
}

func (m *MockTimetableUsecase) FindAllEntries(ctx context.Context) ([]models.TimetableEntry, error) {
	args := m.Called(ctx)
	entries, _ := args.Get(0).([]models.TimetableEntry)
	return entries, args.Error(1)
}

func (m *MockTimetableUsecase) SaveEntry(ctx context.Context, request *requests.SaveTimetableEntry) (*models.TimetableEntry, error) {
	args := m.Called(ctx, request)
	entry, _ := args.Get(0).(*models.TimetableEntry)
	return entry, args.Error(1)
}

func (m *MockTimetableUsecase) ClearEntry(ctx context.Context, request *requests.ClearTimetableEntry) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockTimetableUsecase) ClassWeek(ctx context.Context, classID string) (*responses.ClassWeek, error) {
	args := m.Called(ctx, classID)
	week, _ := args.Get(0).(*responses.ClassWeek)
	return week, args.Error(1)
}

func (m *MockTimetableUsecase) MasterDay(ctx context.Context, day string) (*responses.MasterDay, error) {
	args := m.Called(ctx, day)
	master, _ := args.Get(0).(*responses.MasterDay)
	return master, args.Error(1)
}

func (m *MockTimetableUsecase) Validate(ctx context.Context) (*responses.ValidationReport, error) {
	args := m.Called(ctx)
	report, _ := args.Get(0).(*responses.ValidationReport)
	return report, args.Error(1)
}

func (m *MockTimetableUsecase) GetSettings(ctx context.Context) (*models.TimetableSettings, error) {
	args := m.Called(ctx)
	settings, _ := args.Get(0).(*models.TimetableSettings)
	return settings, args.Error(1)
}

func (m *MockTimetableUsecase) UpdateSettings(ctx context.Context, request *requests.UpdateTimetableSettings) (*models.TimetableSettings, error) {
	args := m.Called(ctx, request)
	settings, _ := args.Get(0).(*models.TimetableSettings)
	return settings, args.Error(1)
}

func (m *MockTimetableUsecase) Generate(ctx context.Context, request *requests.GenerateTimetable) (*responses.GenerateResult, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.GenerateResult)
	return result, args.Error(1)
}

func newTimetableTestRouter(t *testing.T) (*chi.Mux, *MockTimetableUsecase) {
	t.Helper()

	logger := zap.NewNop()

	mockUsecase := new(MockTimetableUsecase)
	timetableController := timetable.NewTimetableController(logger, mockUsecase)

	middlewareInstance := &middlewares.Middlewares{
		Log: logger,
	}
	schedulerLimiter := middlewares.NewRateLimiter(logger, 100, time.Second, time.Minute)

	router := chi.NewRouter()
	attachTimetableRoutes(router, middlewareInstance, schedulerLimiter, timetableController)
	return router, mockUsecase
}

func TestTimetableRouter_Entries(t *testing.T) {
	router, mockUsecase := newTimetableTestRouter(t)

	t.Run("List Entries", func(t *testing.T) {
		mockUsecase.On("FindAllEntries", mock.Anything).Return([]models.TimetableEntry{
			{Day: "Monday", Period: 1, Subject: "Mathematics", TeacherID: "T1", ClassID: "1"},
		}, nil).Once()

		req := httptest.NewRequest("GET", "/entries", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Mathematics")
		mockUsecase.AssertExpectations(t)
	})

	t.Run("Save Entry", func(t *testing.T) {
		saved := &models.TimetableEntry{Day: "Monday", Period: 2, Subject: "Physics", TeacherID: "T2", ClassID: "9"}
		mockUsecase.On("SaveEntry", mock.Anything, mock.AnythingOfType("*requests.SaveTimetableEntry")).Return(saved, nil).Once()

		requestBody := requests.SaveTimetableEntry{
			Day:       "Monday",
			Period:    2,
			Subject:   "Physics",
			TeacherID: "T2",
			ClassID:   "9",
		}
		jsonBody, _ := json.Marshal(requestBody)

		req := httptest.NewRequest("PUT", "/entries", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockUsecase.AssertExpectations(t)
	})

	t.Run("Clear Entry", func(t *testing.T) {
		mockUsecase.On("ClearEntry", mock.Anything, mock.AnythingOfType("*requests.ClearTimetableEntry")).Return(nil).Once()

		requestBody := requests.ClearTimetableEntry{Day: "Monday", Period: 2, ClassID: "9"}
		jsonBody, _ := json.Marshal(requestBody)

		req := httptest.NewRequest("DELETE", "/entries", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockUsecase.AssertExpectations(t)
	})
}

func TestTimetableRouter_Views(t *testing.T) {
	router, mockUsecase := newTimetableTestRouter(t)

	t.Run("Class Week Passes URL Param", func(t *testing.T) {
		mockUsecase.On("ClassWeek", mock.Anything, "Nursery").Return(&responses.ClassWeek{ClassID: "Nursery"}, nil).Once()

		req := httptest.NewRequest("GET", "/class/Nursery", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockUsecase.AssertExpectations(t)
	})

	t.Run("Master Day Passes URL Param", func(t *testing.T) {
		mockUsecase.On("MasterDay", mock.Anything, "Friday").Return(&responses.MasterDay{Day: "Friday"}, nil).Once()

		req := httptest.NewRequest("GET", "/master/Friday", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockUsecase.AssertExpectations(t)
	})

	t.Run("Validate", func(t *testing.T) {
		mockUsecase.On("Validate", mock.Anything).Return(&responses.ValidationReport{Valid: true}, nil).Once()

		req := httptest.NewRequest("GET", "/validate", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"valid":true`)
		mockUsecase.AssertExpectations(t)
	})
}

func TestTimetableRouter_Generate(t *testing.T) {
	t.Run("Generate Calls Usecase", func(t *testing.T) {
		router, mockUsecase := newTimetableTestRouter(t)

		mockUsecase.On("Generate", mock.Anything, mock.AnythingOfType("*requests.GenerateTimetable")).
			Return(&responses.GenerateResult{Requested: []string{"1"}, Merged: 5}, nil).Once()

		requestBody := requests.GenerateTimetable{ClassIDs: []string{"1"}}
		jsonBody, _ := json.Marshal(requestBody)

		req := httptest.NewRequest("POST", "/generate", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		req.RemoteAddr = "10.0.0.1:51000"
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockUsecase.AssertExpectations(t)
	})

	t.Run("Generate Is Rate Limited Per IP", func(t *testing.T) {
		logger := zap.NewNop()
		mockUsecase := new(MockTimetableUsecase)
		timetableController := timetable.NewTimetableController(logger, mockUsecase)
		middlewareInstance := &middlewares.Middlewares{Log: logger}

		// One request per minute with no burst headroom beyond the first.
		schedulerLimiter := middlewares.NewRateLimiter(logger, 1, time.Minute, time.Minute)

		router := chi.NewRouter()
		attachTimetableRoutes(router, middlewareInstance, schedulerLimiter, timetableController)

		mockUsecase.On("Generate", mock.Anything, mock.AnythingOfType("*requests.GenerateTimetable")).
			Return(&responses.GenerateResult{Requested: []string{"1"}}, nil)

		requestBody := requests.GenerateTimetable{ClassIDs: []string{"1"}}
		jsonBody, _ := json.Marshal(requestBody)

		first := httptest.NewRequest("POST", "/generate", bytes.NewBuffer(jsonBody))
		first.Header.Set("Content-Type", "application/json")
		first.RemoteAddr = "10.0.0.2:51000"
		firstRec := httptest.NewRecorder()
		router.ServeHTTP(firstRec, first)
		assert.Equal(t, http.StatusOK, firstRec.Code)

		second := httptest.NewRequest("POST", "/generate", bytes.NewBuffer(jsonBody))
		second.Header.Set("Content-Type", "application/json")
		second.RemoteAddr = "10.0.0.2:51000"
		secondRec := httptest.NewRecorder()
		router.ServeHTTP(secondRec, second)
		assert.Equal(t, http.StatusTooManyRequests, secondRec.Code)
	})
}

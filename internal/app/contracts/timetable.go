package contracts

import (
	"context"
	"edunexus-service/internal/app/models"
	"edunexus-service/internal/pkg/dto/requests"
	"edunexus-service/internal/pkg/dto/responses"
)

type TimetableUsecase interface {
	FindAllEntries(ctx context.Context) ([]models.TimetableEntry, error)
	SaveEntry(ctx context.Context, request *requests.SaveTimetableEntry) (*models.TimetableEntry, error)
	ClearEntry(ctx context.Context, request *requests.ClearTimetableEntry) error
	ClassWeek(ctx context.Context, classID string) (*responses.ClassWeek, error)
	MasterDay(ctx context.Context, day string) (*responses.MasterDay, error)
	Validate(ctx context.Context) (*responses.ValidationReport, error)
	GetSettings(ctx context.Context) (*models.TimetableSettings, error)
	UpdateSettings(ctx context.Context, request *requests.UpdateTimetableSettings) (*models.TimetableSettings, error)
	Generate(ctx context.Context, request *requests.GenerateTimetable) (*responses.GenerateResult, error)
}

type TimetableRepository interface {
	FindAllEntries(ctx context.Context) ([]models.TimetableEntry, error)
	ReplaceAllEntries(ctx context.Context, entries []models.TimetableEntry) error
	GetSettings(ctx context.Context) (*models.TimetableSettings, error)
	SaveSettings(ctx context.Context, settings models.TimetableSettings) error
}

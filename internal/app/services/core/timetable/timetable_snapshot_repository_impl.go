package timetable

import (
	"context"
	"edunexus-service/internal/app/contracts"
	"edunexus-service/internal/app/models"
	"edunexus-service/internal/pkg/constvars"
	"edunexus-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

type TimetableSnapshotRepository struct {
	Store contracts.SnapshotStore
}

func NewTimetableSnapshotRepository(store contracts.SnapshotStore) contracts.TimetableRepository {
	return &TimetableSnapshotRepository{Store: store}
}

func (repo *TimetableSnapshotRepository) FindAllEntries(ctx context.Context) ([]models.TimetableEntry, error) {
	data, err := repo.Store.Read(ctx, constvars.CollectionTimetable)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return []models.TimetableEntry{}, nil
	}
	var entries []models.TimetableEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, exceptions.ErrSnapshotDecode(err, constvars.CollectionTimetable)
	}
	return entries, nil
}

func (repo *TimetableSnapshotRepository) ReplaceAllEntries(ctx context.Context, entries []models.TimetableEntry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	return repo.Store.Write(ctx, constvars.CollectionTimetable, data)
}

func (repo *TimetableSnapshotRepository) GetSettings(ctx context.Context) (*models.TimetableSettings, error) {
	data, err := repo.Store.Read(ctx, constvars.CollectionSettings)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}
	var settings models.TimetableSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, exceptions.ErrSnapshotDecode(err, constvars.CollectionSettings)
	}
	return &settings, nil
}

func (repo *TimetableSnapshotRepository) SaveSettings(ctx context.Context, settings models.TimetableSettings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	return repo.Store.Write(ctx, constvars.CollectionSettings, data)
}

package subjects

import (
	"context"
	"edunexus-service/internal/app/contracts"
	"edunexus-service/internal/app/models"
	"edunexus-service/internal/pkg/constvars"
	"edunexus-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

type SubjectSnapshotRepository struct {
	Store contracts.SnapshotStore
}

func NewSubjectSnapshotRepository(store contracts.SnapshotStore) contracts.SubjectRepository {
	return &SubjectSnapshotRepository{Store: store}
}

func (repo *SubjectSnapshotRepository) FindAll(ctx context.Context) ([]models.Subject, error) {
	data, err := repo.Store.Read(ctx, constvars.CollectionSubjects)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}
	var subjects []models.Subject
	if err := json.Unmarshal(data, &subjects); err != nil {
		return nil, exceptions.ErrSnapshotDecode(err, constvars.CollectionSubjects)
	}
	return subjects, nil
}

func (repo *SubjectSnapshotRepository) FindByID(ctx context.Context, subjectID string) (*models.Subject, error) {
	subjects, err := repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range subjects {
		if subjects[i].ID == subjectID {
			return &subjects[i], nil
		}
	}
	return nil, nil
}

func (repo *SubjectSnapshotRepository) Upsert(ctx context.Context, subject models.Subject) error {
	subjects, err := repo.FindAll(ctx)
	if err != nil {
		return err
	}
	replaced := false
	for i := range subjects {
		if subjects[i].ID == subject.ID {
			subjects[i] = subject
			replaced = true
			break
		}
	}
	if !replaced {
		subjects = append(subjects, subject)
	}
	return repo.SaveAll(ctx, subjects)
}

func (repo *SubjectSnapshotRepository) Delete(ctx context.Context, subjectID string) error {
	subjects, err := repo.FindAll(ctx)
	if err != nil {
		return err
	}
	kept := subjects[:0]
	for _, s := range subjects {
		if s.ID != subjectID {
			kept = append(kept, s)
		}
	}
	return repo.SaveAll(ctx, kept)
}

func (repo *SubjectSnapshotRepository) SaveAll(ctx context.Context, subjects []models.Subject) error {
	data, err := json.Marshal(subjects)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	return repo.Store.Write(ctx, constvars.CollectionSubjects, data)
}

package teachers

import (
	"context"
	"edunexus-service/internal/app/contracts"
	"edunexus-service/internal/app/models"
	"edunexus-service/internal/pkg/constvars"
	"edunexus-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

type TeacherSnapshotRepository struct {
	Store contracts.SnapshotStore
}

func NewTeacherSnapshotRepository(store contracts.SnapshotStore) contracts.TeacherRepository {
	return &TeacherSnapshotRepository{Store: store}
}

func (repo *TeacherSnapshotRepository) FindAll(ctx context.Context) ([]models.Teacher, error) {
	data, err := repo.Store.Read(ctx, constvars.CollectionTeachers)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return []models.Teacher{}, nil
	}
	var teachers []models.Teacher
	if err := json.Unmarshal(data, &teachers); err != nil {
		return nil, exceptions.ErrSnapshotDecode(err, constvars.CollectionTeachers)
	}
	return teachers, nil
}

func (repo *TeacherSnapshotRepository) FindByID(ctx context.Context, teacherID string) (*models.Teacher, error) {
	teachers, err := repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range teachers {
		if teachers[i].ID == teacherID {
			return &teachers[i], nil
		}
	}
	return nil, nil
}

func (repo *TeacherSnapshotRepository) Upsert(ctx context.Context, teacher models.Teacher) error {
	teachers, err := repo.FindAll(ctx)
	if err != nil {
		return err
	}
	replaced := false
	for i := range teachers {
		if teachers[i].ID == teacher.ID {
			teachers[i] = teacher
			replaced = true
			break
		}
	}
	if !replaced {
		teachers = append(teachers, teacher)
	}
	return repo.saveAll(ctx, teachers)
}

func (repo *TeacherSnapshotRepository) Delete(ctx context.Context, teacherID string) error {
	teachers, err := repo.FindAll(ctx)
	if err != nil {
		return err
	}
	kept := teachers[:0]
	for _, t := range teachers {
		if t.ID != teacherID {
			kept = append(kept, t)
		}
	}
	return repo.saveAll(ctx, kept)
}

func (repo *TeacherSnapshotRepository) saveAll(ctx context.Context, teachers []models.Teacher) error {
	data, err := json.Marshal(teachers)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	return repo.Store.Write(ctx, constvars.CollectionTeachers, data)
}

package students

import (
	"context"
	"edunexus-service/internal/app/contracts"
	"edunexus-service/internal/app/models"
	"edunexus-service/internal/pkg/constvars"
	"edunexus-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

type StudentSnapshotRepository struct {
	Store contracts.SnapshotStore
}

func NewStudentSnapshotRepository(store contracts.SnapshotStore) contracts.StudentRepository {
	return &StudentSnapshotRepository{Store: store}
}

func (repo *StudentSnapshotRepository) FindAll(ctx context.Context) ([]models.Student, error) {
	data, err := repo.Store.Read(ctx, constvars.CollectionStudents)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return []models.Student{}, nil
	}
	var students []models.Student
	if err := json.Unmarshal(data, &students); err != nil {
		return nil, exceptions.ErrSnapshotDecode(err, constvars.CollectionStudents)
	}
	return students, nil
}

func (repo *StudentSnapshotRepository) FindByID(ctx context.Context, studentID string) (*models.Student, error) {
	students, err := repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range students {
		if students[i].ID == studentID {
			return &students[i], nil
		}
	}
	return nil, nil
}

func (repo *StudentSnapshotRepository) Upsert(ctx context.Context, student models.Student) error {
	students, err := repo.FindAll(ctx)
	if err != nil {
		return err
	}
	replaced := false
	for i := range students {
		if students[i].ID == student.ID {
			students[i] = student
			replaced = true
			break
		}
	}
	if !replaced {
		students = append(students, student)
	}
	return repo.saveAll(ctx, students)
}

func (repo *StudentSnapshotRepository) Delete(ctx context.Context, studentID string) error {
	students, err := repo.FindAll(ctx)
	if err != nil {
		return err
	}
	kept := students[:0]
	for _, s := range students {
		if s.ID != studentID {
			kept = append(kept, s)
		}
	}
	return repo.saveAll(ctx, kept)
}

func (repo *StudentSnapshotRepository) saveAll(ctx context.Context, students []models.Student) error {
	data, err := json.Marshal(students)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	return repo.Store.Write(ctx, constvars.CollectionStudents, data)
}

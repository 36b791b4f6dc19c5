package contracts

import (
	"context"
	"edunexus-service/internal/app/models"
	"edunexus-service/internal/pkg/dto/requests"
)

type SubjectUsecase interface {
	Create(ctx context.Context, request *requests.CreateSubject) (*models.Subject, error)
	FindAll(ctx context.Context) ([]models.Subject, error)
	FindByID(ctx context.Context, subjectID string) (*models.Subject, error)
	Update(ctx context.Context, subjectID string, request *requests.UpdateSubject) (*models.Subject, error)
	Delete(ctx context.Context, subjectID string) error
}

// SubjectRepository reads the subject snapshot. FindAll returns nil (not an
// empty slice) when the snapshot has never been written, which is the signal
// to seed the default subject list.
type SubjectRepository interface {
	FindAll(ctx context.Context) ([]models.Subject, error)
	SaveAll(ctx context.Context, subjects []models.Subject) error
	FindByID(ctx context.Context, subjectID string) (*models.Subject, error)
	Upsert(ctx context.Context, subject models.Subject) error
	Delete(ctx context.Context, subjectID string) error
}

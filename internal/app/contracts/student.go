package contracts

import (
	"context"
	"edunexus-service/internal/app/models"
	"edunexus-service/internal/pkg/dto/requests"
)

type StudentUsecase interface {
	Create(ctx context.Context, request *requests.CreateStudent) (*models.Student, error)
	FindAll(ctx context.Context) ([]models.Student, error)
	FindByID(ctx context.Context, studentID string) (*models.Student, error)
	Update(ctx context.Context, studentID string, request *requests.UpdateStudent) (*models.Student, error)
	Delete(ctx context.Context, studentID string) error
}

type StudentRepository interface {
	FindAll(ctx context.Context) ([]models.Student, error)
	FindByID(ctx context.Context, studentID string) (*models.Student, error)
	Upsert(ctx context.Context, student models.Student) error
	Delete(ctx context.Context, studentID string) error
}

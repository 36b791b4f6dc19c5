package contracts

import (
	"context"
	"edunexus-service/internal/app/models"
	"edunexus-service/internal/pkg/dto/requests"
)

type TeacherUsecase interface {
	Create(ctx context.Context, request *requests.CreateTeacher) (*models.Teacher, error)
	FindAll(ctx context.Context) ([]models.Teacher, error)
	FindByID(ctx context.Context, teacherID string) (*models.Teacher, error)
	Update(ctx context.Context, teacherID string, request *requests.UpdateTeacher) (*models.Teacher, error)
	SetLeave(ctx context.Context, teacherID string, request *requests.SetTeacherLeave) (*models.Teacher, error)
	Delete(ctx context.Context, teacherID string) error
}

type TeacherRepository interface {
	FindAll(ctx context.Context) ([]models.Teacher, error)
	FindByID(ctx context.Context, teacherID string) (*models.Teacher, error)
	Upsert(ctx context.Context, teacher models.Teacher) error
	Delete(ctx context.Context, teacherID string) error
}

package subjects

import (
	"context"
	"edunexus-service/internal/app/contracts"
	"edunexus-service/internal/app/models"
	"edunexus-service/internal/pkg/constvars"
	"edunexus-service/internal/pkg/dto/requests"
	"edunexus-service/internal/pkg/exceptions"
	"edunexus-service/internal/pkg/utils"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// defaultSubjects seeds the subject list the first time the snapshot is read.
var defaultSubjects = []models.Subject{
	{ID: "1", Name: "Mathematics", Code: "MATH"},
	{ID: "2", Name: "Physics", Code: "PHY"},
	{ID: "3", Name: "Chemistry", Code: "CHEM"},
	{ID: "4", Name: "Biology", Code: "BIO"},
	{ID: "5", Name: "English", Code: "ENG"},
	{ID: "6", Name: "Urdu", Code: "URD"},
	{ID: "7", Name: "Islamiyat", Code: "ISL"},
	{ID: "8", Name: "Computer Science", Code: "CS"},
	{ID: "9", Name: "Pakistan Studies", Code: "PST"},
	{ID: "10", Name: "General Science", Code: "GSC"},
}

type subjectUsecase struct {
	SubjectRepository contracts.SubjectRepository
	Log               *zap.Logger
}

var (
	subjectUsecaseInstance contracts.SubjectUsecase
	onceSubjectUsecase     sync.Once
	subjectUsecaseError    error
)

func NewSubjectUsecase(
	subjectRepository contracts.SubjectRepository,
	logger *zap.Logger,
) (contracts.SubjectUsecase, error) {
	onceSubjectUsecase.Do(func() {
		instance := &subjectUsecase{
			SubjectRepository: subjectRepository,
			Log:               logger,
		}
		if err := instance.initializeData(context.Background()); err != nil {
			subjectUsecaseError = err
			return
		}
		subjectUsecaseInstance = instance
	})
	return subjectUsecaseInstance, subjectUsecaseError
}

func (uc *subjectUsecase) initializeData(ctx context.Context) error {
	existing, err := uc.SubjectRepository.FindAll(ctx)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	uc.Log.Info("subjectUsecase.initializeData seeding default subjects",
		zap.Int("count", len(defaultSubjects)),
	)
	return uc.SubjectRepository.SaveAll(ctx, defaultSubjects)
}

func (uc *subjectUsecase) Create(ctx context.Context, request *requests.CreateSubject) (*models.Subject, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("subjectUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	subject := models.Subject{
		ID:   utils.GenerateEntityID(),
		Name: strings.TrimSpace(request.Name),
		Code: strings.ToUpper(strings.TrimSpace(request.Code)),
	}
	if err := uc.SubjectRepository.Upsert(ctx, subject); err != nil {
		return nil, err
	}
	return &subject, nil
}

func (uc *subjectUsecase) FindAll(ctx context.Context) ([]models.Subject, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("subjectUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	subjects, err := uc.SubjectRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if subjects == nil {
		return []models.Subject{}, nil
	}
	return subjects, nil
}

func (uc *subjectUsecase) FindByID(ctx context.Context, subjectID string) (*models.Subject, error) {
	subject, err := uc.SubjectRepository.FindByID(ctx, subjectID)
	if err != nil {
		return nil, err
	}
	if subject == nil {
		return nil, exceptions.ErrResourceNotFound(constvars.ResourceSubjects, subjectID)
	}
	return subject, nil
}

func (uc *subjectUsecase) Update(ctx context.Context, subjectID string, request *requests.UpdateSubject) (*models.Subject, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("subjectUsecase.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	existing, err := uc.FindByID(ctx, subjectID)
	if err != nil {
		return nil, err
	}

	subject := *existing
	subject.Name = strings.TrimSpace(request.Name)
	subject.Code = strings.ToUpper(strings.TrimSpace(request.Code))
	if err := uc.SubjectRepository.Upsert(ctx, subject); err != nil {
		return nil, err
	}
	return &subject, nil
}

// Delete removes the subject only; teachers keep any denormalized copies of
// its name.
func (uc *subjectUsecase) Delete(ctx context.Context, subjectID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("subjectUsecase.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if _, err := uc.FindByID(ctx, subjectID); err != nil {
		return err
	}
	return uc.SubjectRepository.Delete(ctx, subjectID)
}

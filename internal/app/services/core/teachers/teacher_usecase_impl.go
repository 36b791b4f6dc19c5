package teachers

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

type teacherUsecase struct {
	TeacherRepository contracts.TeacherRepository
	SubjectRepository contracts.SubjectRepository
	Log               *zap.Logger
}

var (
	teacherUsecaseInstance contracts.TeacherUsecase
	onceTeacherUsecase     sync.Once
)

func NewTeacherUsecase(
	teacherRepository contracts.TeacherRepository,
	subjectRepository contracts.SubjectRepository,
	logger *zap.Logger,
) contracts.TeacherUsecase {
	onceTeacherUsecase.Do(func() {
		teacherUsecaseInstance = &teacherUsecase{
			TeacherRepository: teacherRepository,
			SubjectRepository: subjectRepository,
			Log:               logger,
		}
	})
	return teacherUsecaseInstance
}

func (uc *teacherUsecase) Create(ctx context.Context, request *requests.CreateTeacher) (*models.Teacher, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("teacherUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	subjects, err := uc.resolveSubjects(ctx, request.Subjects)
	if err != nil {
		return nil, err
	}

	teacher := models.Teacher{
		ID:            utils.GenerateEntityID(),
		Name:          strings.TrimSpace(request.Name),
		Designation:   strings.TrimSpace(request.Designation),
		Qualification: strings.TrimSpace(request.Qualification),
		Experience:    strings.TrimSpace(request.Experience),
		Subjects:      subjects,
	}
	if err := uc.TeacherRepository.Upsert(ctx, teacher); err != nil {
		return nil, err
	}
	return &teacher, nil
}

func (uc *teacherUsecase) FindAll(ctx context.Context) ([]models.Teacher, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("teacherUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return uc.TeacherRepository.FindAll(ctx)
}

func (uc *teacherUsecase) FindByID(ctx context.Context, teacherID string) (*models.Teacher, error) {
	teacher, err := uc.TeacherRepository.FindByID(ctx, teacherID)
	if err != nil {
		return nil, err
	}
	if teacher == nil {
		return nil, exceptions.ErrResourceNotFound(constvars.ResourceTeachers, teacherID)
	}
	return teacher, nil
}

func (uc *teacherUsecase) Update(ctx context.Context, teacherID string, request *requests.UpdateTeacher) (*models.Teacher, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("teacherUsecase.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTeacherIDKey, teacherID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	existing, err := uc.FindByID(ctx, teacherID)
	if err != nil {
		return nil, err
	}
	subjects, err := uc.resolveSubjects(ctx, request.Subjects)
	if err != nil {
		return nil, err
	}

	teacher := *existing
	teacher.Name = strings.TrimSpace(request.Name)
	teacher.Designation = strings.TrimSpace(request.Designation)
	teacher.Qualification = strings.TrimSpace(request.Qualification)
	teacher.Experience = strings.TrimSpace(request.Experience)
	teacher.Subjects = subjects

	if err := uc.TeacherRepository.Upsert(ctx, teacher); err != nil {
		return nil, err
	}
	return &teacher, nil
}

func (uc *teacherUsecase) SetLeave(ctx context.Context, teacherID string, request *requests.SetTeacherLeave) (*models.Teacher, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("teacherUsecase.SetLeave called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTeacherIDKey, teacherID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	existing, err := uc.FindByID(ctx, teacherID)
	if err != nil {
		return nil, err
	}

	teacher := *existing
	teacher.IsOnLeave = *request.IsOnLeave
	if err := uc.TeacherRepository.Upsert(ctx, teacher); err != nil {
		return nil, err
	}
	return &teacher, nil
}

func (uc *teacherUsecase) Delete(ctx context.Context, teacherID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("teacherUsecase.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTeacherIDKey, teacherID),
	)

	if _, err := uc.FindByID(ctx, teacherID); err != nil {
		return err
	}
	return uc.TeacherRepository.Delete(ctx, teacherID)
}

// resolveSubjects sanitizes the requested subject names and checks each one
// against the subject list. Names are copied onto the teacher at assignment
// time; deleting a subject later does not rewrite teachers referencing it.
func (uc *teacherUsecase) resolveSubjects(ctx context.Context, requested []string) ([]string, error) {
	sanitized := utils.SanitizeSubjectNames(requested)
	if len(sanitized) == 0 {
		return []string{}, nil
	}

	known, err := uc.SubjectRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	knownNames := make(map[string]bool, len(known))
	for _, s := range known {
		knownNames[s.Name] = true
	}
	for _, name := range sanitized {
		if !knownNames[name] {
			return nil, exceptions.ErrUnknownSubjectName(name)
		}
	}
	return sanitized, nil
}

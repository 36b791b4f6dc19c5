package students

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

type studentUsecase struct {
	StudentRepository contracts.StudentRepository
	PhotoStorage      contracts.PhotoStorage
	Log               *zap.Logger
}

var (
	studentUsecaseInstance contracts.StudentUsecase
	onceStudentUsecase     sync.Once
)

// NewStudentUsecase wires the student CRUD flow. photoStorage may be nil when
// photo offloading is disabled; data URIs are then stored inline.
func NewStudentUsecase(
	studentRepository contracts.StudentRepository,
	photoStorage contracts.PhotoStorage,
	logger *zap.Logger,
) contracts.StudentUsecase {
	onceStudentUsecase.Do(func() {
		studentUsecaseInstance = &studentUsecase{
			StudentRepository: studentRepository,
			PhotoStorage:      photoStorage,
			Log:               logger,
		}
	})
	return studentUsecaseInstance
}

func (uc *studentUsecase) Create(ctx context.Context, request *requests.CreateStudent) (*models.Student, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("studentUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	student := models.Student{
		ID:             utils.GenerateEntityID(),
		FullName:       strings.TrimSpace(request.FullName),
		FatherName:     strings.TrimSpace(request.FatherName),
		AdmissionNo:    strings.TrimSpace(request.AdmissionNo),
		FormBNo:        strings.TrimSpace(request.FormBNo),
		Address:        strings.TrimSpace(request.Address),
		AdmissionClass: request.AdmissionClass,
		PhotoURL:       request.PhotoURL,
		Leaves:         []models.LeaveRecord{},
		Attendance:     []models.AttendanceRecord{},
	}

	if err := uc.offloadPhoto(ctx, &student); err != nil {
		return nil, err
	}
	if err := uc.StudentRepository.Upsert(ctx, student); err != nil {
		return nil, err
	}
	return &student, nil
}

func (uc *studentUsecase) FindAll(ctx context.Context) ([]models.Student, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("studentUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return uc.StudentRepository.FindAll(ctx)
}

func (uc *studentUsecase) FindByID(ctx context.Context, studentID string) (*models.Student, error) {
	student, err := uc.StudentRepository.FindByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, exceptions.ErrResourceNotFound(constvars.ResourceStudents, studentID)
	}
	return student, nil
}

func (uc *studentUsecase) Update(ctx context.Context, studentID string, request *requests.UpdateStudent) (*models.Student, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("studentUsecase.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	existing, err := uc.FindByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	student := *existing
	student.FullName = strings.TrimSpace(request.FullName)
	student.FatherName = strings.TrimSpace(request.FatherName)
	student.AdmissionNo = strings.TrimSpace(request.AdmissionNo)
	student.FormBNo = strings.TrimSpace(request.FormBNo)
	student.Address = strings.TrimSpace(request.Address)
	student.AdmissionClass = request.AdmissionClass
	if request.PhotoURL != "" {
		student.PhotoURL = request.PhotoURL
		if err := uc.offloadPhoto(ctx, &student); err != nil {
			return nil, err
		}
	}

	if err := uc.StudentRepository.Upsert(ctx, student); err != nil {
		return nil, err
	}
	return &student, nil
}

func (uc *studentUsecase) Delete(ctx context.Context, studentID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("studentUsecase.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if _, err := uc.FindByID(ctx, studentID); err != nil {
		return err
	}
	return uc.StudentRepository.Delete(ctx, studentID)
}

// offloadPhoto moves an inline data-URI photo to object storage when a photo
// store is configured, replacing the field with the stored object URL.
func (uc *studentUsecase) offloadPhoto(ctx context.Context, student *models.Student) error {
	if uc.PhotoStorage == nil || !strings.HasPrefix(student.PhotoURL, "data:") {
		return nil
	}
	url, err := uc.PhotoStorage.UploadDataURI(ctx, student.ID, student.PhotoURL)
	if err != nil {
		return err
	}
	student.PhotoURL = url
	return nil
}

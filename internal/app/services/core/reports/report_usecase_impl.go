package reports

import (
	"context"
	"edunexus-service/internal/app/contracts"
	"edunexus-service/internal/pkg/constvars"
	"edunexus-service/internal/pkg/dto/responses"
	"sync"

	"go.uber.org/zap"
)

type reportUsecase struct {
	StudentRepository contracts.StudentRepository
	TeacherRepository contracts.TeacherRepository
	SubjectRepository contracts.SubjectRepository
	Log               *zap.Logger
}

var (
	reportUsecaseInstance contracts.ReportUsecase
	onceReportUsecase     sync.Once
)

func NewReportUsecase(
	studentRepository contracts.StudentRepository,
	teacherRepository contracts.TeacherRepository,
	subjectRepository contracts.SubjectRepository,
	logger *zap.Logger,
) contracts.ReportUsecase {
	onceReportUsecase.Do(func() {
		reportUsecaseInstance = &reportUsecase{
			StudentRepository: studentRepository,
			TeacherRepository: teacherRepository,
			SubjectRepository: subjectRepository,
			Log:               logger,
		}
	})
	return reportUsecaseInstance
}

func (uc *reportUsecase) Summary(ctx context.Context) (*responses.Summary, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("reportUsecase.Summary called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	students, err := uc.StudentRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	teachers, err := uc.TeacherRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	subjects, err := uc.SubjectRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	absent := 0
	for _, t := range teachers {
		if t.IsOnLeave {
			absent++
		}
	}

	return &responses.Summary{
		Students:       len(students),
		Teachers:       len(teachers),
		Subjects:       len(subjects),
		AbsentTeachers: absent,
	}, nil
}

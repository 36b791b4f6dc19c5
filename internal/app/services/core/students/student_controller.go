package students

import (
	"context"
	"edunexus-service/internal/app/contracts"
	"edunexus-service/internal/pkg/constvars"
	"edunexus-service/internal/pkg/dto/requests"
	"edunexus-service/internal/pkg/exceptions"
	"edunexus-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type StudentController struct {
	Log            *zap.Logger
	StudentUsecase contracts.StudentUsecase
}

func NewStudentController(logger *zap.Logger, studentUsecase contracts.StudentUsecase) *StudentController {
	return &StudentController{
		Log:            logger,
		StudentUsecase: studentUsecase,
	}
}

func (ctrl *StudentController) Create(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var request requests.CreateStudent
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	result, err := ctrl.StudentUsecase.Create(ctx, &request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateStudentSuccessMessage, result)
}

func (ctrl *StudentController) FindAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.StudentUsecase.FindAll(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetStudentsSuccessMessage, result)
}

func (ctrl *StudentController) FindByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	studentID := chi.URLParam(r, "studentID")
	result, err := ctrl.StudentUsecase.FindByID(ctx, studentID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetStudentsSuccessMessage, result)
}

func (ctrl *StudentController) Update(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var request requests.UpdateStudent
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	studentID := chi.URLParam(r, "studentID")
	result, err := ctrl.StudentUsecase.Update(ctx, studentID, &request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateStudentSuccessMessage, result)
}

func (ctrl *StudentController) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	studentID := chi.URLParam(r, "studentID")
	if err := ctrl.StudentUsecase.Delete(ctx, studentID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteStudentSuccessMessage, nil)
}

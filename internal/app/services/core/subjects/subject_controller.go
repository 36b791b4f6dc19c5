package subjects

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

type SubjectController struct {
	Log            *zap.Logger
	SubjectUsecase contracts.SubjectUsecase
}

func NewSubjectController(logger *zap.Logger, subjectUsecase contracts.SubjectUsecase) *SubjectController {
	return &SubjectController{
		Log:            logger,
		SubjectUsecase: subjectUsecase,
	}
}

func (ctrl *SubjectController) Create(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var request requests.CreateSubject
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	result, err := ctrl.SubjectUsecase.Create(ctx, &request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateSubjectSuccessMessage, result)
}

func (ctrl *SubjectController) FindAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.SubjectUsecase.FindAll(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetSubjectsSuccessMessage, result)
}

func (ctrl *SubjectController) FindByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	subjectID := chi.URLParam(r, "subjectID")
	result, err := ctrl.SubjectUsecase.FindByID(ctx, subjectID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetSubjectsSuccessMessage, result)
}

func (ctrl *SubjectController) Update(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var request requests.UpdateSubject
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	subjectID := chi.URLParam(r, "subjectID")
	result, err := ctrl.SubjectUsecase.Update(ctx, subjectID, &request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateSubjectSuccessMessage, result)
}

func (ctrl *SubjectController) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	subjectID := chi.URLParam(r, "subjectID")
	if err := ctrl.SubjectUsecase.Delete(ctx, subjectID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteSubjectSuccessMessage, nil)
}

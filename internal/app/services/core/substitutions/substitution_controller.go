package substitutions

import (
	"context"
	"edunexus-service/internal/app/contracts"
	"edunexus-service/internal/pkg/constvars"
	"edunexus-service/internal/pkg/dto/requests"
	"edunexus-service/internal/pkg/exceptions"
	"edunexus-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type SubstitutionController struct {
	Log                 *zap.Logger
	SubstitutionUsecase contracts.SubstitutionUsecase
}

func NewSubstitutionController(logger *zap.Logger, substitutionUsecase contracts.SubstitutionUsecase) *SubstitutionController {
	return &SubstitutionController{
		Log:                 logger,
		SubstitutionUsecase: substitutionUsecase,
	}
}

// Suggest waits on the external scheduler, so it gets the wider deadline.
func (ctrl *SubstitutionController) Suggest(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	var request requests.SuggestSubstitutions
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	result, err := ctrl.SubstitutionUsecase.Suggest(ctx, &request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SuggestSubstitutionsSuccessMessage, result)
}

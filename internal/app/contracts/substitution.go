package contracts

import (
	"context"
	"edunexus-service/internal/pkg/dto/requests"
	"edunexus-service/internal/pkg/dto/responses"
)

type SubstitutionUsecase interface {
	Suggest(ctx context.Context, request *requests.SuggestSubstitutions) (*responses.SuggestSubstitutions, error)
}

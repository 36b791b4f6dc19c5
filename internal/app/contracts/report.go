package contracts

import (
	"context"
	"edunexus-service/internal/pkg/dto/responses"
)

type ReportUsecase interface {
	Summary(ctx context.Context) (*responses.Summary, error)
}

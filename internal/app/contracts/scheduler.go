package contracts

import (
	"context"
	"edunexus-service/internal/app/models"
)

// SchedulerClient is the boundary to the external generative scheduler. Both
// methods return untrusted proposals; callers must validate every returned
// day/period pair and teacher reference before acting on them.
type SchedulerClient interface {
	GenerateTimetable(ctx context.Context, teachers []models.Teacher, classIDs []string, settings models.TimetableSettings) ([]models.TimetableEntry, error)
	SuggestSubstitutions(ctx context.Context, absent models.Teacher, impacted []models.TimetableEntry, available []models.Teacher) ([]models.SubstitutionSuggestion, error)
}

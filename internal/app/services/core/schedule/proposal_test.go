package schedule

import (
	"edunexus-service/internal/app/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateProposal(t *testing.T) {
	knownTeachers := map[string]bool{"T1": true, "T2": true}

	t.Run("Valid Entries Pass Through", func(t *testing.T) {
		proposed := []models.TimetableEntry{
			entry("Monday", 1, "Math", "T1", "5"),
			entry("Monday", 2, "English", "T2", "5"),
		}

		accepted, rejected := ValidateProposal(proposed, []string{"5"}, nil, knownTeachers)

		assert.Len(t, accepted, 2)
		assert.Empty(t, rejected)
	})

	t.Run("Unknown Teacher Is Rejected", func(t *testing.T) {
		proposed := []models.TimetableEntry{
			entry("Monday", 1, "Math", "T9", "5"),
		}

		accepted, rejected := ValidateProposal(proposed, []string{"5"}, nil, knownTeachers)

		assert.Empty(t, accepted)
		assert.Len(t, rejected, 1)
		assert.Equal(t, RejectUnknownTeacher, rejected[0].Reason)
	})

	t.Run("Friday Period Six Is Rejected", func(t *testing.T) {
		proposed := []models.TimetableEntry{
			entry("Friday", 6, "Math", "T1", "5"),
		}

		_, rejected := ValidateProposal(proposed, []string{"5"}, nil, knownTeachers)

		assert.Len(t, rejected, 1)
		assert.Equal(t, RejectInvalidSlot, rejected[0].Reason)
	})

	t.Run("Entries For Unrequested Classes Are Rejected", func(t *testing.T) {
		proposed := []models.TimetableEntry{
			entry("Monday", 1, "Math", "T1", "7"),
		}

		_, rejected := ValidateProposal(proposed, []string{"5"}, nil, knownTeachers)

		assert.Len(t, rejected, 1)
		assert.Equal(t, RejectClassNotRequested, rejected[0].Reason)
	})

	t.Run("Teacher Conflicts Within The Proposal Keep The First Entry", func(t *testing.T) {
		proposed := []models.TimetableEntry{
			entry("Monday", 1, "Math", "T1", "5"),
			entry("Monday", 1, "Math", "T1", "6"),
		}

		accepted, rejected := ValidateProposal(proposed, []string{"5", "6"}, nil, knownTeachers)

		assert.Len(t, accepted, 1)
		assert.Equal(t, "5", accepted[0].ClassID)
		assert.Len(t, rejected, 1)
		assert.Equal(t, RejectTeacherDoubleBooked, rejected[0].Reason)
	})

	t.Run("Teacher Conflicts Against Retained Entries Are Rejected", func(t *testing.T) {
		retained := []models.TimetableEntry{
			entry("Monday", 1, "Math", "T1", "9"),
		}
		proposed := []models.TimetableEntry{
			entry("Monday", 1, "Math", "T1", "5"),
		}

		_, rejected := ValidateProposal(proposed, []string{"5"}, retained, knownTeachers)

		assert.Len(t, rejected, 1)
		assert.Equal(t, RejectTeacherDoubleBooked, rejected[0].Reason)
	})

	t.Run("Proposal Days Are Canonicalized", func(t *testing.T) {
		proposed := []models.TimetableEntry{
			entry("monday", 1, "Math", "T1", "5"),
		}

		accepted, rejected := ValidateProposal(proposed, []string{"5"}, nil, knownTeachers)

		assert.Empty(t, rejected)
		assert.Len(t, accepted, 1)
		assert.Equal(t, "Monday", accepted[0].Day)
	})
}

func TestMergeReplace(t *testing.T) {
	existing := []models.TimetableEntry{
		entry("Monday", 1, "Math", "T1", "5"),
		entry("Monday", 2, "English", "T2", "5"),
		entry("Monday", 1, "Science", "T2", "6"),
	}

	t.Run("Requested Classes Are Wholesale Replaced", func(t *testing.T) {
		accepted := []models.TimetableEntry{
			entry("Tuesday", 3, "Art", "T1", "5"),
		}

		merged := MergeReplace(existing, []string{"5"}, accepted)

		assert.Len(t, merged, 2)
		assert.Equal(t, entry("Monday", 1, "Science", "T2", "6"), merged[0])
		assert.Equal(t, entry("Tuesday", 3, "Art", "T1", "5"), merged[1])
	})

	t.Run("Empty Proposal Clears The Requested Class", func(t *testing.T) {
		merged := MergeReplace(existing, []string{"5"}, nil)

		assert.Len(t, merged, 1)
		assert.Equal(t, "6", merged[0].ClassID)
	})

	t.Run("Untouched Classes Survive Byte For Byte", func(t *testing.T) {
		merged := MergeReplace(existing, []string{"6"}, nil)

		assert.Len(t, merged, 2)
		for _, m := range merged {
			assert.Equal(t, "5", m.ClassID)
		}
	})
}

func TestReviewSuggestions(t *testing.T) {
	absent := models.Teacher{ID: "T1", Name: "Asha Verma", Subjects: []string{"Math"}}
	teacherByName := map[string]models.Teacher{
		"Asha Verma":  absent,
		"Rohit Gupta": {ID: "T2", Name: "Rohit Gupta", Subjects: []string{"Math"}},
		"Meena Nair":  {ID: "T3", Name: "Meena Nair", Subjects: []string{"English"}, IsOnLeave: true},
	}
	idx := NewIndex([]models.TimetableEntry{
		entry("Monday", 1, "Math", "T1", "5"),
		entry("Monday", 3, "Math", "T1", "6"),
		entry("Monday", 3, "English", "T2", "5"),
	})

	suggestion := func(day string, period int, suggested string) models.SubstitutionSuggestion {
		return models.SubstitutionSuggestion{
			Day:              day,
			Period:           period,
			AbsentTeacher:    "Asha Verma",
			SuggestedTeacher: suggested,
			Reason:           "same subject",
		}
	}

	t.Run("Free Qualified Teacher Is Ok", func(t *testing.T) {
		advice := ReviewSuggestions([]models.SubstitutionSuggestion{
			suggestion("Monday", 1, "Rohit Gupta"),
		}, absent, idx, teacherByName)

		assert.Len(t, advice, 1)
		assert.Equal(t, "ok", advice[0].Status)
		assert.Empty(t, advice[0].Note)
	})

	t.Run("Busy Teacher Is Flagged", func(t *testing.T) {
		advice := ReviewSuggestions([]models.SubstitutionSuggestion{
			suggestion("Monday", 3, "Rohit Gupta"),
		}, absent, idx, teacherByName)

		assert.Equal(t, "flagged", advice[0].Status)
		assert.Contains(t, advice[0].Note, "already teaches")
	})

	t.Run("Teacher On Leave Is Flagged", func(t *testing.T) {
		advice := ReviewSuggestions([]models.SubstitutionSuggestion{
			suggestion("Monday", 1, "Meena Nair"),
		}, absent, idx, teacherByName)

		assert.Equal(t, "flagged", advice[0].Status)
		assert.Contains(t, advice[0].Note, "on leave")
	})

	t.Run("Unknown Teacher Name Is Flagged", func(t *testing.T) {
		advice := ReviewSuggestions([]models.SubstitutionSuggestion{
			suggestion("Monday", 1, "Nobody Here"),
		}, absent, idx, teacherByName)

		assert.Equal(t, "flagged", advice[0].Status)
		assert.Contains(t, advice[0].Note, "not a known teacher")
	})

	t.Run("Slot Outside The Absence Is Flagged", func(t *testing.T) {
		advice := ReviewSuggestions([]models.SubstitutionSuggestion{
			suggestion("Wednesday", 2, "Rohit Gupta"),
		}, absent, idx, teacherByName)

		assert.Equal(t, "flagged", advice[0].Status)
		assert.Contains(t, advice[0].Note, "not impacted")
	})

	t.Run("Suggesting The Absent Teacher Is Flagged", func(t *testing.T) {
		advice := ReviewSuggestions([]models.SubstitutionSuggestion{
			suggestion("Monday", 1, "Asha Verma"),
		}, absent, idx, teacherByName)

		assert.Equal(t, "flagged", advice[0].Status)
		assert.Contains(t, advice[0].Note, "absent teacher")
	})
}

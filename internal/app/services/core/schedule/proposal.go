package schedule

import (
	"edunexus-service/internal/app/models"
	"edunexus-service/internal/pkg/dto/responses"
	"edunexus-service/internal/pkg/utils"
	"fmt"
)

// Rejection reasons attached to dropped proposal entries.
const (
	RejectInvalidSlot         = "day/period pair does not exist"
	RejectUnknownTeacher      = "teacher id is not a known teacher"
	RejectClassNotRequested   = "class was not part of the generation request"
	RejectClassSlotTaken      = "class already has an entry at this slot in the proposal"
	RejectTeacherDoubleBooked = "teacher is already booked at this slot"
)

// Rejection pairs a dropped proposed entry with the reason it was dropped.
type Rejection struct {
	Entry  models.TimetableEntry
	Reason string
}

// ValidateProposal filters an untrusted generated timetable down to the
// entries that can be merged safely. retained is the part of the current
// timetable that survives the merge (entries of classes outside the request);
// proposed entries must not double-book a teacher against it or against each
// other. Entries are considered in order and the first occupant of a slot
// wins.
func ValidateProposal(proposed []models.TimetableEntry, requestedClasses []string, retained []models.TimetableEntry, knownTeacherIDs map[string]bool) ([]models.TimetableEntry, []Rejection) {
	requested := make(map[string]bool, len(requestedClasses))
	for _, classID := range requestedClasses {
		requested[classID] = true
	}
	retainedIdx := NewIndex(retained)

	accepted := make([]models.TimetableEntry, 0, len(proposed))
	var rejected []Rejection
	classSlots := make(map[slotRef]bool)
	teacherSlots := make(map[slotRef]bool)

	for _, entry := range proposed {
		entry.Day = utils.CanonicalDay(entry.Day)

		reason := ""
		classKey := slotRef{Day: entry.Day, Period: entry.Period, ID: entry.ClassID}
		teacherKey := slotRef{Day: entry.Day, Period: entry.Period, ID: entry.TeacherID}
		_, teacherRetained := retainedIdx.EntryForTeacher(entry.Day, entry.Period, entry.TeacherID)

		switch {
		case !IsValidSlot(entry.Day, entry.Period):
			reason = RejectInvalidSlot
		case !knownTeacherIDs[entry.TeacherID]:
			reason = RejectUnknownTeacher
		case !requested[entry.ClassID]:
			reason = RejectClassNotRequested
		case classSlots[classKey]:
			reason = RejectClassSlotTaken
		case teacherSlots[teacherKey] || teacherRetained:
			reason = RejectTeacherDoubleBooked
		}

		if reason != "" {
			rejected = append(rejected, Rejection{Entry: entry, Reason: reason})
			continue
		}
		classSlots[classKey] = true
		teacherSlots[teacherKey] = true
		accepted = append(accepted, entry)
	}
	return accepted, rejected
}

// MergeReplace applies a validated proposal: entries for the requested
// classes are wholesale replaced, never partially patched, while entries of
// all other classes pass through untouched.
func MergeReplace(existing []models.TimetableEntry, requestedClasses []string, accepted []models.TimetableEntry) []models.TimetableEntry {
	requested := make(map[string]bool, len(requestedClasses))
	for _, classID := range requestedClasses {
		requested[classID] = true
	}

	merged := make([]models.TimetableEntry, 0, len(existing)+len(accepted))
	for _, entry := range existing {
		if !requested[entry.ClassID] {
			merged = append(merged, entry)
		}
	}
	merged = append(merged, accepted...)
	sortEntries(merged)
	return merged
}

// ReviewSuggestions runs the local validation pass over untrusted
// substitution suggestions. Suggestions stay advisory either way; a flagged
// one carries a note explaining what the check found.
func ReviewSuggestions(suggestions []models.SubstitutionSuggestion, absent models.Teacher, idx *Index, teacherByName map[string]models.Teacher) []responses.SubstitutionAdvice {
	impactedIdx := make(map[slotRef]bool)
	for _, entry := range idx.EntriesForTeacher(absent.ID) {
		impactedIdx[slotRef{Day: entry.Day, Period: entry.Period, ID: absent.ID}] = true
	}

	advice := make([]responses.SubstitutionAdvice, 0, len(suggestions))
	for _, suggestion := range suggestions {
		day := utils.CanonicalDay(suggestion.Day)
		item := responses.SubstitutionAdvice{
			Day:              day,
			Period:           suggestion.Period,
			AbsentTeacher:    suggestion.AbsentTeacher,
			SuggestedTeacher: suggestion.SuggestedTeacher,
			Reason:           suggestion.Reason,
			Status:           "ok",
		}

		substitute, known := teacherByName[suggestion.SuggestedTeacher]
		switch {
		case !impactedIdx[slotRef{Day: day, Period: suggestion.Period, ID: absent.ID}]:
			item.Status = "flagged"
			item.Note = "slot is not impacted by this absence"
		case !known:
			item.Status = "flagged"
			item.Note = fmt.Sprintf("suggested teacher %q is not a known teacher", suggestion.SuggestedTeacher)
		case substitute.ID == absent.ID:
			item.Status = "flagged"
			item.Note = "suggested teacher is the absent teacher"
		case substitute.IsOnLeave:
			item.Status = "flagged"
			item.Note = "suggested teacher is on leave"
		default:
			if _, busy := idx.EntryForTeacher(day, suggestion.Period, substitute.ID); busy {
				item.Status = "flagged"
				item.Note = "suggested teacher already teaches at this slot"
			}
		}
		advice = append(advice, item)
	}
	return advice
}

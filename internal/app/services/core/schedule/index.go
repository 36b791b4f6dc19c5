package schedule

import (
	"edunexus-service/internal/app/models"
	"edunexus-service/internal/pkg/utils"
	"sort"
)

// Conflict kinds reported by Validate.
const (
	ConflictClassDoubleBooked   = "class_double_booked"
	ConflictTeacherDoubleBooked = "teacher_double_booked"
	ConflictInvalidSlot         = "invalid_slot"
)

// Conflict is one detected integrity violation with the entries involved.
type Conflict struct {
	Day     string                  `json:"day"`
	Period  int                     `json:"period"`
	Kind    string                  `json:"kind"`
	Entries []models.TimetableEntry `json:"entries"`
}

type slotRef struct {
	Day    string
	Period int
	ID     string
}

// Index is a lookup structure over the flat entry list, queryable by
// (day, period, class) and (day, period, teacher). It is rebuilt from the
// stored entries on each use; entry counts are bounded by
// classes x days x periods so rebuilding is cheap.
type Index struct {
	entries   []models.TimetableEntry
	byClass   map[slotRef][]models.TimetableEntry
	byTeacher map[slotRef][]models.TimetableEntry
}

func NewIndex(entries []models.TimetableEntry) *Index {
	idx := &Index{
		entries:   make([]models.TimetableEntry, 0, len(entries)),
		byClass:   make(map[slotRef][]models.TimetableEntry),
		byTeacher: make(map[slotRef][]models.TimetableEntry),
	}
	for _, entry := range entries {
		entry.Day = utils.CanonicalDay(entry.Day)
		idx.entries = append(idx.entries, entry)

		classKey := slotRef{Day: entry.Day, Period: entry.Period, ID: entry.ClassID}
		idx.byClass[classKey] = append(idx.byClass[classKey], entry)

		teacherKey := slotRef{Day: entry.Day, Period: entry.Period, ID: entry.TeacherID}
		idx.byTeacher[teacherKey] = append(idx.byTeacher[teacherKey], entry)
	}
	return idx
}

// EntryForClass returns the entry occupying (day, period) for a class.
func (idx *Index) EntryForClass(day string, period int, classID string) (models.TimetableEntry, bool) {
	key := slotRef{Day: utils.CanonicalDay(day), Period: period, ID: classID}
	entries := idx.byClass[key]
	if len(entries) == 0 {
		return models.TimetableEntry{}, false
	}
	return entries[0], true
}

// EntryForTeacher returns the entry occupying (day, period) for a teacher.
func (idx *Index) EntryForTeacher(day string, period int, teacherID string) (models.TimetableEntry, bool) {
	key := slotRef{Day: utils.CanonicalDay(day), Period: period, ID: teacherID}
	entries := idx.byTeacher[key]
	if len(entries) == 0 {
		return models.TimetableEntry{}, false
	}
	return entries[0], true
}

// EntriesForTeacher returns every slot a teacher occupies across the week,
// ordered by day then period. This is the substitution-impact query: marking
// a teacher absent impacts exactly these entries.
func (idx *Index) EntriesForTeacher(teacherID string) []models.TimetableEntry {
	var impacted []models.TimetableEntry
	for _, entry := range idx.entries {
		if entry.TeacherID == teacherID {
			impacted = append(impacted, entry)
		}
	}
	sortEntries(impacted)
	return impacted
}

// Entries returns a copy of the indexed entries, ordered by day, period,
// class.
func (idx *Index) Entries() []models.TimetableEntry {
	entries := make([]models.TimetableEntry, len(idx.entries))
	copy(entries, idx.entries)
	sortEntries(entries)
	return entries
}

// Validate reports every integrity violation in the indexed entries: more
// than one entry per (day, period, class), more than one per (day, period,
// teacher), and entries sitting on slots the day-length rules say do not
// exist. Violations are reported, never repaired.
func (idx *Index) Validate() []Conflict {
	var conflicts []Conflict

	for key, entries := range idx.byClass {
		if len(entries) > 1 {
			conflicts = append(conflicts, Conflict{
				Day:     key.Day,
				Period:  key.Period,
				Kind:    ConflictClassDoubleBooked,
				Entries: sortedCopy(entries),
			})
		}
	}
	for key, entries := range idx.byTeacher {
		if len(entries) > 1 {
			conflicts = append(conflicts, Conflict{
				Day:     key.Day,
				Period:  key.Period,
				Kind:    ConflictTeacherDoubleBooked,
				Entries: sortedCopy(entries),
			})
		}
	}
	for _, entry := range idx.entries {
		if !IsValidSlot(entry.Day, entry.Period) {
			conflicts = append(conflicts, Conflict{
				Day:     entry.Day,
				Period:  entry.Period,
				Kind:    ConflictInvalidSlot,
				Entries: []models.TimetableEntry{entry},
			})
		}
	}

	sort.SliceStable(conflicts, func(i, j int) bool {
		if dayOrder(conflicts[i].Day) != dayOrder(conflicts[j].Day) {
			return dayOrder(conflicts[i].Day) < dayOrder(conflicts[j].Day)
		}
		if conflicts[i].Period != conflicts[j].Period {
			return conflicts[i].Period < conflicts[j].Period
		}
		return conflicts[i].Kind < conflicts[j].Kind
	})
	return conflicts
}

func sortEntries(entries []models.TimetableEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if dayOrder(entries[i].Day) != dayOrder(entries[j].Day) {
			return dayOrder(entries[i].Day) < dayOrder(entries[j].Day)
		}
		if entries[i].Period != entries[j].Period {
			return entries[i].Period < entries[j].Period
		}
		return entries[i].ClassID < entries[j].ClassID
	})
}

func sortedCopy(entries []models.TimetableEntry) []models.TimetableEntry {
	out := make([]models.TimetableEntry, len(entries))
	copy(out, entries)
	sortEntries(out)
	return out
}

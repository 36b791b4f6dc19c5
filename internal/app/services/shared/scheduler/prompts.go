package scheduler

import (
	"edunexus-service/internal/app/models"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

func buildGenerateTimetablePrompt(teachers []models.Teacher, classIDs []string, settings models.TimetableSettings) string {
	teacherLines := make([]string, 0, len(teachers))
	for _, t := range teachers {
		teacherLines = append(teacherLines, fmt.Sprintf("%s (ID: %s) teaches %s", t.Name, t.ID, strings.Join(t.Subjects, ", ")))
	}

	return fmt.Sprintf(`Create a Master Academic Year Timetable (Weekly Schedule) for the entire school.
Classes to schedule: %s.

Structure & Timing Rules:
1. Monday to Thursday: 8 Periods (Period 1 to 8).
2. Friday: 5 Periods ONLY (Period 1 to 5). Do NOT schedule periods 6, 7, or 8 on Friday.
3. Period Duration: %d minutes each.
4. Break: There is a %d-minute break after Period %d.

Faculty Available:
%s

Strategic Scheduling Rules:
1. SUBJECT EXPERTISE: Assign subjects strictly based on teacher qualification.
2. WORKLOAD BALANCE: Distribute hard subjects (Math, Science) evenly across the week for students.
3. TEACHER CONFLICTS: A teacher CANNOT be in two classes at the same time. This is a hard constraint.
4. YEARLY CONSISTENCY: This schedule will be used for the whole academic year, so ensure it is robust and complete.
5. Return a single flat JSON array containing entries for ALL requested classes.`,
		strings.Join(classIDs, ", "),
		settings.PeriodDuration,
		settings.BreakDuration,
		settings.BreakAfterPeriod,
		strings.Join(teacherLines, "\n"),
	)
}

func buildSuggestSubstitutionsPrompt(absent models.Teacher, impacted []models.TimetableEntry, available []models.Teacher) string {
	impactedJSON, _ := json.Marshal(impacted)

	type candidate struct {
		Name     string   `json:"name"`
		Subjects []string `json:"subjects"`
		ID       string   `json:"id"`
	}
	candidates := make([]candidate, 0, len(available))
	for _, t := range available {
		candidates = append(candidates, candidate{Name: t.Name, Subjects: t.Subjects, ID: t.ID})
	}
	candidatesJSON, _ := json.Marshal(candidates)

	return fmt.Sprintf(`The teacher %s (Subjects: %s) is absent.
They have the following classes scheduled:
%s

Available teachers:
%s

Please suggest a substitution for each impacted slot.
Try to match the subject if possible, or assign a relevant subject.`,
		absent.Name,
		strings.Join(absent.Subjects, ", "),
		impactedJSON,
		candidatesJSON,
	)
}

// JSON response schemas sent alongside each prompt so the model returns
// machine-readable arrays instead of prose.
const timetableResponseSchema = `{
  "type": "ARRAY",
  "items": {
    "type": "OBJECT",
    "properties": {
      "day": {"type": "STRING"},
      "period": {"type": "NUMBER"},
      "subject": {"type": "STRING"},
      "teacherId": {"type": "STRING"},
      "classId": {"type": "STRING"}
    },
    "required": ["day", "period", "subject", "teacherId", "classId"]
  }
}`

const substitutionResponseSchema = `{
  "type": "ARRAY",
  "items": {
    "type": "OBJECT",
    "properties": {
      "period": {"type": "NUMBER"},
      "day": {"type": "STRING"},
      "absentTeacher": {"type": "STRING"},
      "suggestedTeacher": {"type": "STRING"},
      "reason": {"type": "STRING"}
    }
  }
}`

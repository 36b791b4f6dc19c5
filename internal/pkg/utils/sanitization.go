package utils

import (
	"strings"
	"unicode"
)

func trimEachStringOfAnArray(input []string) []string {
	sanitizedArray := make([]string, len(input))
	for i, v := range input {
		sanitizedArray[i] = strings.TrimSpace(v)
	}
	return sanitizedArray
}

func capitalizeFirstLetter(s string) string {
	if len(s) == 0 {
		return s
	}

	first := string(unicode.ToUpper(rune(s[0])))

	return first + strings.ToLower(s[1:])
}

// CanonicalDay normalizes any casing of a weekday label to the capitalized
// form stored in timetable entries ("friday" -> "Friday").
func CanonicalDay(day string) string {
	return capitalizeFirstLetter(strings.TrimSpace(day))
}

// SanitizeSubjectNames trims every subject name and drops empties.
func SanitizeSubjectNames(subjects []string) []string {
	trimmed := trimEachStringOfAnArray(subjects)
	out := make([]string, 0, len(trimmed))
	for _, s := range trimmed {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

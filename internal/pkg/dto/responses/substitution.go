package responses

// SubstitutionAdvice wraps one suggestion with the outcome of the local
// validation pass. Status is "ok" when the suggested teacher exists, is not
// on leave and is free at that slot; otherwise "flagged" with a note.
type SubstitutionAdvice struct {
	Day              string `json:"day"`
	Period           int    `json:"period"`
	AbsentTeacher    string `json:"absentTeacher"`
	SuggestedTeacher string `json:"suggestedTeacher"`
	Reason           string `json:"reason"`
	Status           string `json:"status"`
	Note             string `json:"note,omitempty"`
}

type SuggestSubstitutions struct {
	AbsentTeacherID string               `json:"absentTeacherId"`
	AbsentTeacher   string               `json:"absentTeacher"`
	ImpactedSlots   []TimetableEntry     `json:"impactedSlots"`
	Suggestions     []SubstitutionAdvice `json:"suggestions"`
}

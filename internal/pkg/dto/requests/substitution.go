package requests

type SuggestSubstitutions struct {
	TeacherID string `json:"teacherId" validate:"required"`
}

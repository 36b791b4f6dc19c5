package requests

type CreateTeacher struct {
	Name          string   `json:"name" validate:"required"`
	Designation   string   `json:"designation"`
	Qualification string   `json:"qualification"`
	Experience    string   `json:"experience"`
	Subjects      []string `json:"subjects"`
}

type UpdateTeacher struct {
	Name          string   `json:"name" validate:"required"`
	Designation   string   `json:"designation"`
	Qualification string   `json:"qualification"`
	Experience    string   `json:"experience"`
	Subjects      []string `json:"subjects"`
}

type SetTeacherLeave struct {
	IsOnLeave *bool `json:"isOnLeave" validate:"required"`
}

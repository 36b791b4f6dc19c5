package responses

type Summary struct {
	Students       int `json:"students"`
	Teachers       int `json:"teachers"`
	Subjects       int `json:"subjects"`
	AbsentTeachers int `json:"absentTeachers"`
}

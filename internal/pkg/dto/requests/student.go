package requests

type CreateStudent struct {
	FullName       string `json:"fullName" validate:"required"`
	FatherName     string `json:"fatherName"`
	AdmissionNo    string `json:"admissionNo" validate:"required"`
	FormBNo        string `json:"formBNo"`
	Address        string `json:"address"`
	AdmissionClass string `json:"admissionClass" validate:"required,classlabel"`
	PhotoURL       string `json:"photoUrl" validate:"omitempty,datauri"`
}

type UpdateStudent struct {
	FullName       string `json:"fullName" validate:"required"`
	FatherName     string `json:"fatherName"`
	AdmissionNo    string `json:"admissionNo" validate:"required"`
	FormBNo        string `json:"formBNo"`
	Address        string `json:"address"`
	AdmissionClass string `json:"admissionClass" validate:"required,classlabel"`
	PhotoURL       string `json:"photoUrl"`
}

package requests

type CreateSubject struct {
	Name string `json:"name" validate:"required"`
	Code string `json:"code"`
}

type UpdateSubject struct {
	Name string `json:"name" validate:"required"`
	Code string `json:"code"`
}

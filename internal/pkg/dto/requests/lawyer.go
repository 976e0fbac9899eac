package requests

type CreateLawyer struct {
	Fullname  string `json:"fullname" validate:"required,min=2,max=100"`
	Specialty string `json:"specialty" validate:"required,min=2,max=100"`
	Bio       string `json:"bio" validate:"max=2000"`
	PhotoURL  string `json:"photo_url" validate:"omitempty,url"`
}

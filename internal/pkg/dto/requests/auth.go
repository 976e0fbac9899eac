package requests

type RegisterUser struct {
	Email          string `json:"email" validate:"required,email"`
	Fullname       string `json:"fullname" validate:"required,min=2,max=100"`
	Phone          string `json:"phone" validate:"omitempty,phone_number"`
	Password       string `json:"password" validate:"password"`
	RetypePassword string `json:"retype_password"`
}

type LoginUser struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

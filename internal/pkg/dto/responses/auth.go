package responses

type RegisterUser struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

type LoginUser struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

package responses

type RegisterUser struct {
	UserID string `json:"user_id"`
}

type LoginUser struct {
	Token string `json:"token"`
}

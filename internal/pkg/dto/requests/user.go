package requests

type UpdateProfile struct {
	Fullname  string `json:"fullname" validate:"omitempty,max=100"`
	BirthDate string `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	Phone     string `json:"phone" validate:"omitempty,max=20"`
}

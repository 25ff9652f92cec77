package models

type User struct {
	ID        string `bson:"_id,omitempty"`
	Email     string `bson:"email"`
	Username  string `bson:"username"`
	Password  string `bson:"password"`
	Fullname  string `bson:"fullname,omitempty"`
	BirthDate string `bson:"birthDate,omitempty"`
	Phone     string `bson:"phone,omitempty"`
	Role      string `bson:"role"`
	TimeModel `bson:",inline"`
}

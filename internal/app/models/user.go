package models

type User struct {
	ID        string `bson:"_id,omitempty"`
	Email     string `bson:"email"`
	Fullname  string `bson:"fullname"`
	Phone     string `bson:"phone,omitempty"`
	Password  string `bson:"password"`
	Role      string `bson:"role"`
	TimeModel `bson:",inline"`
}

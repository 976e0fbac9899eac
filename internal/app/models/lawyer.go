package models

type Lawyer struct {
	ID        string `bson:"_id,omitempty"`
	Fullname  string `bson:"fullname"`
	Specialty string `bson:"specialty"`
	Bio       string `bson:"bio,omitempty"`
	PhotoURL  string `bson:"photoUrl,omitempty"`
	Active    bool   `bson:"active"`
	TimeModel `bson:",inline"`
}

type LawyerWithStats struct {
	Lawyer                `bson:",inline"`
	TotalAppointments     int `bson:"totalAppointments"`
	ConfirmedAppointments int `bson:"confirmedAppointments"`
}

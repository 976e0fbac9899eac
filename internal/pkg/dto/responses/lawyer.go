package responses

type Lawyer struct {
	LawyerID  string `json:"lawyer_id"`
	Fullname  string `json:"fullname"`
	Specialty string `json:"specialty"`
	Bio       string `json:"bio,omitempty"`
	PhotoURL  string `json:"photo_url,omitempty"`
	Active    bool   `json:"active"`
}

type LawyerWithStats struct {
	Lawyer
	TotalAppointments     int `json:"total_appointments"`
	ConfirmedAppointments int `json:"confirmed_appointments"`
}

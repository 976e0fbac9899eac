package responses

type CreateAppointment struct {
	AppointmentID string `json:"appointment_id"`
	TimeSlotID    string `json:"time_slot_id"`
	Status        string `json:"status"`
	PaymentURL    string `json:"payment_url"`
	AccountNotice string `json:"account_notice,omitempty"`
}

type Appointment struct {
	AppointmentID string `json:"appointment_id"`
	TimeSlotID    string `json:"time_slot_id"`
	LawyerID      string `json:"lawyer_id,omitempty"`
	ClientName    string `json:"client_name"`
	ClientEmail   string `json:"client_email"`
	ClientPhone   string `json:"client_phone,omitempty"`
	Comment       string `json:"comment,omitempty"`
	Status        string `json:"status"`
	Date          string `json:"date,omitempty"`
	StartTime     string `json:"start_time,omitempty"`
	EndTime       string `json:"end_time,omitempty"`
	PaymentID     string `json:"payment_id,omitempty"`
	CreatedAt     string `json:"created_at"`
}

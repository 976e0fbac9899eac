package requests

type CreateAppointment struct {
	TimeSlotID  string `json:"time_slot_id" validate:"required"`
	ClientName  string `json:"client_name" validate:"required,min=2,max=100"`
	ClientEmail string `json:"client_email" validate:"required,email"`
	ClientPhone string `json:"client_phone" validate:"omitempty,phone_number"`
	Comment     string `json:"comment" validate:"max=1000"`
}

type ListAppointments struct {
	LawyerID string
	Status   string
	Date     string
	Pagination
}

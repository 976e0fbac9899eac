package requests

type CreateTimeSlot struct {
	LawyerID  string `json:"lawyer_id" validate:"required"`
	Date      string `json:"date" validate:"required,slot_date"`
	StartTime string `json:"start_time" validate:"required,slot_time"`
	EndTime   string `json:"end_time" validate:"required,slot_time"`
}

type ListTimeSlots struct {
	LawyerID      string
	Date          string
	AvailableOnly bool
}

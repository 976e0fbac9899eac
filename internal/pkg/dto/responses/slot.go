package responses

type TimeSlot struct {
	TimeSlotID  string `json:"time_slot_id"`
	LawyerID    string `json:"lawyer_id"`
	Date        string `json:"date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	IsAvailable bool   `json:"is_available"`
}

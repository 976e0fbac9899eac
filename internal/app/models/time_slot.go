package models

// TimeSlot is a bookable interval owned by a lawyer. Date is the calendar
// day as YYYY-MM-DD, StartTime and EndTime are wall-clock HH:MM.
type TimeSlot struct {
	ID          string `bson:"_id,omitempty"`
	LawyerID    string `bson:"lawyerId"`
	Date        string `bson:"date"`
	StartTime   string `bson:"startTime"`
	EndTime     string `bson:"endTime"`
	IsAvailable bool   `bson:"isAvailable"`
	TimeModel   `bson:",inline"`
}

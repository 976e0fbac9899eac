package contracts

import "context"

const (
	EventAppointmentCreated   = "appointment.created"
	EventAppointmentConfirmed = "appointment.confirmed"
	EventAppointmentCancelled = "appointment.cancelled"
)

type BookingEvent struct {
	Event         string `json:"event"`
	AppointmentID string `json:"appointment_id"`
	TimeSlotID    string `json:"time_slot_id,omitempty"`
	ClientEmail   string `json:"client_email,omitempty"`
	PaymentID     string `json:"payment_id,omitempty"`
	OccurredAt    int64  `json:"occurred_at"`
}

type EventPublisher interface {
	Publish(ctx context.Context, event *BookingEvent) error
}

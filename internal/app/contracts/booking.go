package contracts

import (
	"context"

	"lexbook-service/internal/pkg/dto/requests"
	"lexbook-service/internal/pkg/dto/responses"
)

type BookingUsecase interface {
	// CreateAppointment reserves the slot for the client. The slot flip is
	// conditional on it still being available; the loser of a race gets a
	// conflict and the pending appointment is rolled back.
	CreateAppointment(ctx context.Context, request *requests.CreateAppointment) (*responses.CreateAppointment, error)

	// CancelAppointment marks the appointment cancelled and restores the
	// slot's availability.
	CancelAppointment(ctx context.Context, appointmentID string) error

	// ConfirmAppointment records a successful payment. Called by the payment
	// callback only; idempotent under gateway retries.
	ConfirmAppointment(ctx context.Context, appointmentID, operationID string) error

	GetAppointment(ctx context.Context, appointmentID string) (*responses.Appointment, error)
	ListAppointments(ctx context.Context, request *requests.ListAppointments) ([]responses.Appointment, int, error)
}

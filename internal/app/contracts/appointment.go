package contracts

import (
	"context"

	"lexbook-service/internal/app/models"
	"lexbook-service/internal/pkg/dto/requests"
)

type AppointmentRepository interface {
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	FindAll(ctx context.Context, filter *requests.ListAppointments) ([]models.Appointment, int, error)
	Insert(ctx context.Context, appointment *models.Appointment) (string, error)
	UpdateStatus(ctx context.Context, appointmentID, status string) error
	SetTransactionID(ctx context.Context, appointmentID, transactionID string) error
	UpdateStatusAndPaymentID(ctx context.Context, appointmentID, status, paymentID string) error
	Delete(ctx context.Context, appointmentID string) error
}

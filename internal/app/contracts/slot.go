package contracts

import (
	"context"

	"lexbook-service/internal/app/models"
	"lexbook-service/internal/pkg/dto/requests"
	"lexbook-service/internal/pkg/dto/responses"
)

type SlotRepository interface {
	FindByID(ctx context.Context, slotID string) (*models.TimeSlot, error)
	FindByLawyer(ctx context.Context, lawyerID string, date string, availableOnly bool) ([]models.TimeSlot, error)
	FindAvailableDates(ctx context.Context, lawyerID string) ([]string, error)
	Insert(ctx context.Context, slot *models.TimeSlot) (string, error)
	Delete(ctx context.Context, slotID string) error

	// ConditionalSetAvailable flips isAvailable only when its current value
	// equals expected. It reports whether the document was modified, which is
	// the sole mutual-exclusion primitive for booking.
	ConditionalSetAvailable(ctx context.Context, slotID string, expected, value bool) (bool, error)

	// SetAvailable writes isAvailable unconditionally.
	SetAvailable(ctx context.Context, slotID string, value bool) error
}

type SlotUsecase interface {
	CreateTimeSlot(ctx context.Context, request *requests.CreateTimeSlot) (*responses.TimeSlot, error)
	DeleteTimeSlot(ctx context.Context, slotID string) error
	ListTimeSlots(ctx context.Context, request *requests.ListTimeSlots) ([]responses.TimeSlot, error)
	ListAvailableDates(ctx context.Context, lawyerID string) ([]string, error)
}

package slots

import (
	"context"
	"fmt"
	"sync"

	"lexbook-service/internal/app/contracts"
	"lexbook-service/internal/app/models"
	"lexbook-service/internal/pkg/constvars"
	"lexbook-service/internal/pkg/dto/requests"
	"lexbook-service/internal/pkg/dto/responses"
	"lexbook-service/internal/pkg/exceptions"
	"lexbook-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type slotUsecase struct {
	SlotRepository   contracts.SlotRepository
	LawyerRepository contracts.LawyerRepository
	Log              *zap.Logger
}

var (
	slotUsecaseInstance contracts.SlotUsecase
	onceSlotUsecase     sync.Once
)

func NewSlotUsecase(
	slotRepository contracts.SlotRepository,
	lawyerRepository contracts.LawyerRepository,
	logger *zap.Logger,
) contracts.SlotUsecase {
	onceSlotUsecase.Do(func() {
		slotUsecaseInstance = &slotUsecase{
			SlotRepository:   slotRepository,
			LawyerRepository: lawyerRepository,
			Log:              logger,
		}
	})
	return slotUsecaseInstance
}

func (uc *slotUsecase) CreateTimeSlot(ctx context.Context, request *requests.CreateTimeSlot) (*responses.TimeSlot, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("slotUsecase.CreateTimeSlot called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingLawyerIDKey, request.LawyerID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	if request.StartTime >= request.EndTime {
		return nil, exceptions.ErrInputValidation(fmt.Errorf("start_time %s is not before end_time %s", request.StartTime, request.EndTime))
	}

	lawyer, err := uc.LawyerRepository.FindByID(ctx, request.LawyerID)
	if err != nil {
		return nil, err
	}
	if lawyer == nil {
		return nil, exceptions.ErrLawyerNotFound(fmt.Errorf("lawyer %s not found", request.LawyerID))
	}

	existing, err := uc.SlotRepository.FindByLawyer(ctx, request.LawyerID, request.Date, false)
	if err != nil {
		uc.Log.Error("slotUsecase.CreateTimeSlot error listing same-day slots",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	for _, each := range existing {
		if overlaps(request.StartTime, request.EndTime, each.StartTime, each.EndTime) {
			return nil, exceptions.ErrSlotOverlaps(fmt.Errorf("interval %s-%s overlaps slot %s", request.StartTime, request.EndTime, each.ID))
		}
	}

	slot := &models.TimeSlot{
		LawyerID:    request.LawyerID,
		Date:        request.Date,
		StartTime:   request.StartTime,
		EndTime:     request.EndTime,
		IsAvailable: true,
	}
	slotID, err := uc.SlotRepository.Insert(ctx, slot)
	if err != nil {
		uc.Log.Error("slotUsecase.CreateTimeSlot error inserting slot",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("slotUsecase.CreateTimeSlot slot created",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTimeSlotIDKey, slotID),
	)

	return &responses.TimeSlot{
		TimeSlotID:  slotID,
		LawyerID:    slot.LawyerID,
		Date:        slot.Date,
		StartTime:   slot.StartTime,
		EndTime:     slot.EndTime,
		IsAvailable: true,
	}, nil
}

func (uc *slotUsecase) DeleteTimeSlot(ctx context.Context, slotID string) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("slotUsecase.DeleteTimeSlot called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTimeSlotIDKey, slotID),
	)

	slot, err := uc.SlotRepository.FindByID(ctx, slotID)
	if err != nil {
		return err
	}
	if slot == nil {
		return exceptions.ErrSlotNotFound(fmt.Errorf("slot %s not found", slotID))
	}
	if !slot.IsAvailable {
		return exceptions.ErrSlotStillBooked(fmt.Errorf("slot %s has an active booking", slotID))
	}

	return uc.SlotRepository.Delete(ctx, slotID)
}

func (uc *slotUsecase) ListTimeSlots(ctx context.Context, request *requests.ListTimeSlots) ([]responses.TimeSlot, error) {
	slots, err := uc.SlotRepository.FindByLawyer(ctx, request.LawyerID, request.Date, request.AvailableOnly)
	if err != nil {
		return nil, err
	}

	response := make([]responses.TimeSlot, 0, len(slots))
	for _, each := range slots {
		response = append(response, responses.TimeSlot{
			TimeSlotID:  each.ID,
			LawyerID:    each.LawyerID,
			Date:        each.Date,
			StartTime:   each.StartTime,
			EndTime:     each.EndTime,
			IsAvailable: each.IsAvailable,
		})
	}
	return response, nil
}

func (uc *slotUsecase) ListAvailableDates(ctx context.Context, lawyerID string) ([]string, error) {
	return uc.SlotRepository.FindAvailableDates(ctx, lawyerID)
}

// overlaps reports whether [startA, endA) and [startB, endB) intersect.
// HH:MM strings compare correctly as plain strings.
func overlaps(startA, endA, startB, endB string) bool {
	return startA < endB && startB < endA
}

package bookings

import (
	"context"
	"fmt"
	"sync"
	"time"

	"lexbook-service/internal/app/contracts"
	"lexbook-service/internal/app/models"
	"lexbook-service/internal/pkg/constvars"
	"lexbook-service/internal/pkg/dto/requests"
	"lexbook-service/internal/pkg/dto/responses"
	"lexbook-service/internal/pkg/exceptions"
	"lexbook-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type bookingUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	SlotRepository        contracts.SlotRepository
	AccountProvisioner    contracts.AccountProvisioner
	PaymentLinkBuilder    contracts.PaymentLinkBuilder
	EventPublisher        contracts.EventPublisher
	Log                   *zap.Logger
}

var (
	bookingUsecaseInstance contracts.BookingUsecase
	onceBookingUsecase     sync.Once
)

func NewBookingUsecase(
	appointmentRepository contracts.AppointmentRepository,
	slotRepository contracts.SlotRepository,
	accountProvisioner contracts.AccountProvisioner,
	paymentLinkBuilder contracts.PaymentLinkBuilder,
	eventPublisher contracts.EventPublisher,
	logger *zap.Logger,
) contracts.BookingUsecase {
	onceBookingUsecase.Do(func() {
		bookingUsecaseInstance = &bookingUsecase{
			AppointmentRepository: appointmentRepository,
			SlotRepository:        slotRepository,
			AccountProvisioner:    accountProvisioner,
			PaymentLinkBuilder:    paymentLinkBuilder,
			EventPublisher:        eventPublisher,
			Log:                   logger,
		}
	})
	return bookingUsecaseInstance
}

func (uc *bookingUsecase) CreateAppointment(ctx context.Context, request *requests.CreateAppointment) (*responses.CreateAppointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("bookingUsecase.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTimeSlotIDKey, request.TimeSlotID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	slot, err := uc.SlotRepository.FindByID(ctx, request.TimeSlotID)
	if err != nil {
		return nil, err
	}
	if slot == nil {
		return nil, exceptions.ErrSlotNotFound(fmt.Errorf("slot %s not found", request.TimeSlotID))
	}
	if !slot.IsAvailable {
		return nil, exceptions.ErrSlotNotAvailable(fmt.Errorf("slot %s already taken", request.TimeSlotID))
	}

	// Account creation must not block the booking. A race with a parallel
	// registration just means the account already exists.
	accountNotice := ""
	account, err := uc.AccountProvisioner.EnsureAccount(ctx, request.ClientEmail, request.ClientName, request.ClientPhone)
	if err != nil {
		uc.Log.Warn("bookingUsecase.CreateAppointment account provisioning failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	} else if account != nil && account.Created {
		accountNotice = fmt.Sprintf("account created for %s, temporary password: %s", request.ClientEmail, account.TemporaryPassword)
	}

	appointment := &models.Appointment{
		TimeSlotID:  request.TimeSlotID,
		ClientName:  request.ClientName,
		ClientEmail: request.ClientEmail,
		ClientPhone: request.ClientPhone,
		Comment:     request.Comment,
		Status:      models.AppointmentStatusPending,
	}
	appointmentID, err := uc.AppointmentRepository.Insert(ctx, appointment)
	if err != nil {
		uc.Log.Error("bookingUsecase.CreateAppointment error inserting appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	flipped, err := uc.SlotRepository.ConditionalSetAvailable(ctx, request.TimeSlotID, true, false)
	if err != nil {
		uc.rollbackAppointment(ctx, appointmentID, requestID)
		return nil, err
	}
	if !flipped {
		// Lost the race: another booking took the slot between the
		// availability check and the flip.
		uc.rollbackAppointment(ctx, appointmentID, requestID)
		return nil, exceptions.ErrSlotNotAvailable(fmt.Errorf("slot %s taken concurrently", request.TimeSlotID))
	}

	transactionID := uc.PaymentLinkBuilder.NewTransactionID(appointmentID)
	if err := uc.AppointmentRepository.SetTransactionID(ctx, appointmentID, transactionID); err != nil {
		uc.Log.Error("bookingUsecase.CreateAppointment error storing transaction id",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.Error(err),
		)
		return nil, err
	}

	description := fmt.Sprintf("Lawyer consultation %s %s-%s", slot.Date, slot.StartTime, slot.EndTime)
	paymentURL := uc.PaymentLinkBuilder.PaymentURL(transactionID, request.ClientEmail, description)

	uc.publishEvent(ctx, requestID, &contracts.BookingEvent{
		Event:         contracts.EventAppointmentCreated,
		AppointmentID: appointmentID,
		TimeSlotID:    request.TimeSlotID,
		ClientEmail:   request.ClientEmail,
		OccurredAt:    time.Now().Unix(),
	})

	uc.Log.Info("bookingUsecase.CreateAppointment appointment created",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String(constvars.LoggingTransactionIDKey, transactionID),
	)

	return &responses.CreateAppointment{
		AppointmentID: appointmentID,
		TimeSlotID:    request.TimeSlotID,
		Status:        models.AppointmentStatusPending,
		PaymentURL:    paymentURL,
		AccountNotice: accountNotice,
	}, nil
}

func (uc *bookingUsecase) CancelAppointment(ctx context.Context, appointmentID string) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("bookingUsecase.CancelAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return err
	}
	if appointment == nil {
		return exceptions.ErrAppointmentNotFound(fmt.Errorf("appointment %s not found", appointmentID))
	}

	if err := uc.AppointmentRepository.UpdateStatus(ctx, appointmentID, models.AppointmentStatusCancelled); err != nil {
		return err
	}
	if err := uc.SlotRepository.SetAvailable(ctx, appointment.TimeSlotID, true); err != nil {
		uc.Log.Error("bookingUsecase.CancelAppointment appointment cancelled but slot not restored",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.String(constvars.LoggingTimeSlotIDKey, appointment.TimeSlotID),
			zap.Error(err),
		)
		return err
	}

	uc.publishEvent(ctx, requestID, &contracts.BookingEvent{
		Event:         contracts.EventAppointmentCancelled,
		AppointmentID: appointmentID,
		TimeSlotID:    appointment.TimeSlotID,
		ClientEmail:   appointment.ClientEmail,
		OccurredAt:    time.Now().Unix(),
	})
	return nil
}

func (uc *bookingUsecase) ConfirmAppointment(ctx context.Context, appointmentID, operationID string) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("bookingUsecase.ConfirmAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String(constvars.LoggingOperationIDKey, operationID),
	)

	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return err
	}
	if appointment == nil {
		return exceptions.ErrAppointmentNotFound(fmt.Errorf("appointment %s not found", appointmentID))
	}

	if err := uc.AppointmentRepository.UpdateStatusAndPaymentID(ctx, appointmentID, models.AppointmentStatusConfirmed, operationID); err != nil {
		return err
	}

	// The slot should already be held by this appointment; the write is
	// unconditional so a retried callback converges to the same state.
	if err := uc.SlotRepository.SetAvailable(ctx, appointment.TimeSlotID, false); err != nil {
		return err
	}

	uc.publishEvent(ctx, requestID, &contracts.BookingEvent{
		Event:         contracts.EventAppointmentConfirmed,
		AppointmentID: appointmentID,
		TimeSlotID:    appointment.TimeSlotID,
		ClientEmail:   appointment.ClientEmail,
		PaymentID:     operationID,
		OccurredAt:    time.Now().Unix(),
	})
	return nil
}

func (uc *bookingUsecase) GetAppointment(ctx context.Context, appointmentID string) (*responses.Appointment, error) {
	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotFound(fmt.Errorf("appointment %s not found", appointmentID))
	}

	response := buildAppointmentResponse(appointment)
	slot, err := uc.SlotRepository.FindByID(ctx, appointment.TimeSlotID)
	if err == nil && slot != nil {
		response.LawyerID = slot.LawyerID
		response.Date = slot.Date
		response.StartTime = slot.StartTime
		response.EndTime = slot.EndTime
	}
	return response, nil
}

func (uc *bookingUsecase) ListAppointments(ctx context.Context, request *requests.ListAppointments) ([]responses.Appointment, int, error) {
	appointments, total, err := uc.AppointmentRepository.FindAll(ctx, request)
	if err != nil {
		return nil, 0, err
	}

	response := make([]responses.Appointment, 0, len(appointments))
	for i := range appointments {
		response = append(response, *buildAppointmentResponse(&appointments[i]))
	}
	return response, total, nil
}

func (uc *bookingUsecase) rollbackAppointment(ctx context.Context, appointmentID, requestID string) {
	if err := uc.AppointmentRepository.Delete(ctx, appointmentID); err != nil {
		uc.Log.Error("bookingUsecase.rollbackAppointment orphaned pending appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.Error(err),
		)
	}
}

func (uc *bookingUsecase) publishEvent(ctx context.Context, requestID string, event *contracts.BookingEvent) {
	if uc.EventPublisher == nil {
		return
	}
	if err := uc.EventPublisher.Publish(ctx, event); err != nil {
		uc.Log.Warn("bookingUsecase.publishEvent failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String("event", event.Event),
			zap.Error(err),
		)
	}
}

func buildAppointmentResponse(appointment *models.Appointment) *responses.Appointment {
	return &responses.Appointment{
		AppointmentID: appointment.ID,
		TimeSlotID:    appointment.TimeSlotID,
		ClientName:    appointment.ClientName,
		ClientEmail:   appointment.ClientEmail,
		ClientPhone:   appointment.ClientPhone,
		Comment:       appointment.Comment,
		Status:        appointment.Status,
		PaymentID:     appointment.PaymentID,
		CreatedAt:     appointment.CreatedAt.Format(time.RFC3339),
	}
}

package bookings

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"

	"lexbook-service/internal/app/contracts"
	"lexbook-service/internal/app/models"
	"lexbook-service/internal/pkg/constvars"
	"lexbook-service/internal/pkg/dto/requests"
	"lexbook-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSlotRepository struct {
	mu        sync.Mutex
	slots     map[string]*models.TimeSlot
	afterFind func()
}

func newFakeSlotRepository() *fakeSlotRepository {
	return &fakeSlotRepository{slots: make(map[string]*models.TimeSlot)}
}

func (f *fakeSlotRepository) seed(id string, available bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.slots[id] = &models.TimeSlot{
		ID: id, LawyerID: "lawyer-1", Date: "2026-09-01",
		StartTime: "10:00", EndTime: "11:00", IsAvailable: available,
	}
}

func (f *fakeSlotRepository) FindByID(ctx context.Context, slotID string) (*models.TimeSlot, error) {
	f.mu.Lock()
	slot, ok := f.slots[slotID]
	var copied *models.TimeSlot
	if ok {
		c := *slot
		copied = &c
	}
	f.mu.Unlock()
	if f.afterFind != nil {
		f.afterFind()
	}
	return copied, nil
}

func (f *fakeSlotRepository) FindByLawyer(ctx context.Context, lawyerID string, date string, availableOnly bool) ([]models.TimeSlot, error) {
	return nil, nil
}

func (f *fakeSlotRepository) FindAvailableDates(ctx context.Context, lawyerID string) ([]string, error) {
	return nil, nil
}

func (f *fakeSlotRepository) Insert(ctx context.Context, slot *models.TimeSlot) (string, error) {
	return "", errors.New("not used")
}

func (f *fakeSlotRepository) Delete(ctx context.Context, slotID string) error {
	return nil
}

func (f *fakeSlotRepository) ConditionalSetAvailable(ctx context.Context, slotID string, expected, value bool) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	slot, ok := f.slots[slotID]
	if !ok || slot.IsAvailable != expected {
		return false, nil
	}
	slot.IsAvailable = value
	return true, nil
}

func (f *fakeSlotRepository) SetAvailable(ctx context.Context, slotID string, value bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if slot, ok := f.slots[slotID]; ok {
		slot.IsAvailable = value
	}
	return nil
}

func (f *fakeSlotRepository) available(t *testing.T, slotID string) bool {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	slot, ok := f.slots[slotID]
	require.True(t, ok)
	return slot.IsAvailable
}

type fakeAppointmentRepository struct {
	mu           sync.Mutex
	appointments map[string]*models.Appointment
	next         int
}

func newFakeAppointmentRepository() *fakeAppointmentRepository {
	return &fakeAppointmentRepository{appointments: make(map[string]*models.Appointment)}
}

func (f *fakeAppointmentRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	appointment, ok := f.appointments[appointmentID]
	if !ok {
		return nil, nil
	}
	copied := *appointment
	return &copied, nil
}

func (f *fakeAppointmentRepository) FindAll(ctx context.Context, filter *requests.ListAppointments) ([]models.Appointment, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	result := make([]models.Appointment, 0)
	for _, appointment := range f.appointments {
		if filter.Status != "" && appointment.Status != filter.Status {
			continue
		}
		result = append(result, *appointment)
	}
	return result, len(result), nil
}

func (f *fakeAppointmentRepository) Insert(ctx context.Context, appointment *models.Appointment) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.next++
	id := "apt-" + strconv.Itoa(f.next)
	copied := *appointment
	copied.ID = id
	f.appointments[id] = &copied
	return id, nil
}

func (f *fakeAppointmentRepository) UpdateStatus(ctx context.Context, appointmentID, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if appointment, ok := f.appointments[appointmentID]; ok {
		appointment.Status = status
	}
	return nil
}

func (f *fakeAppointmentRepository) SetTransactionID(ctx context.Context, appointmentID, transactionID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if appointment, ok := f.appointments[appointmentID]; ok {
		appointment.TransactionID = transactionID
	}
	return nil
}

func (f *fakeAppointmentRepository) UpdateStatusAndPaymentID(ctx context.Context, appointmentID, status, paymentID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if appointment, ok := f.appointments[appointmentID]; ok {
		appointment.Status = status
		appointment.PaymentID = paymentID
	}
	return nil
}

func (f *fakeAppointmentRepository) Delete(ctx context.Context, appointmentID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.appointments, appointmentID)
	return nil
}

func (f *fakeAppointmentRepository) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.appointments)
}

type fakeProvisioner struct {
	output *contracts.EnsureAccountOutput
	err    error
	calls  int
}

func (f *fakeProvisioner) EnsureAccount(ctx context.Context, email, name, phone string) (*contracts.EnsureAccountOutput, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if f.output != nil {
		return f.output, nil
	}
	return &contracts.EnsureAccountOutput{UserID: "user-1", Created: false}, nil
}

type fakeLinkBuilder struct{}

func (f *fakeLinkBuilder) NewTransactionID(appointmentID string) string {
	return appointmentID + "|1700000000000"
}

func (f *fakeLinkBuilder) PaymentURL(transactionID, subscriberID, description string) string {
	return "https://gateway.test/pay?tx=" + transactionID
}

type fakePublisher struct {
	mu     sync.Mutex
	events []contracts.BookingEvent
}

func (f *fakePublisher) Publish(ctx context.Context, event *contracts.BookingEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, *event)
	return nil
}

func (f *fakePublisher) names() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	result := make([]string, 0, len(f.events))
	for _, event := range f.events {
		result = append(result, event.Event)
	}
	return result
}

func newTestBookingUsecase() (*bookingUsecase, *fakeSlotRepository, *fakeAppointmentRepository, *fakeProvisioner, *fakePublisher) {
	slotRepo := newFakeSlotRepository()
	appointmentRepo := newFakeAppointmentRepository()
	provisioner := &fakeProvisioner{}
	publisher := &fakePublisher{}
	uc := &bookingUsecase{
		AppointmentRepository: appointmentRepo,
		SlotRepository:        slotRepo,
		AccountProvisioner:    provisioner,
		PaymentLinkBuilder:    &fakeLinkBuilder{},
		EventPublisher:        publisher,
		Log:                   zap.NewNop(),
	}
	return uc, slotRepo, appointmentRepo, provisioner, publisher
}

func validCreateRequest() *requests.CreateAppointment {
	return &requests.CreateAppointment{
		TimeSlotID:  "slot-1",
		ClientName:  "Ivan Smirnov",
		ClientEmail: "ivan@example.com",
		Comment:     "inheritance question",
	}
}

func TestBookingUsecase_CreateAppointment(t *testing.T) {
	ctx := context.Background()

	t.Run("Books Available Slot", func(t *testing.T) {
		uc, slotRepo, appointmentRepo, _, publisher := newTestBookingUsecase()
		slotRepo.seed("slot-1", true)

		result, err := uc.CreateAppointment(ctx, validCreateRequest())
		require.NoError(t, err)
		assert.Equal(t, models.AppointmentStatusPending, result.Status)
		assert.Contains(t, result.PaymentURL, result.AppointmentID)
		assert.False(t, slotRepo.available(t, "slot-1"), "slot should be held")
		assert.Equal(t, 1, appointmentRepo.count())
		assert.Equal(t, []string{contracts.EventAppointmentCreated}, publisher.names())
	})

	t.Run("Missing Slot Is Not Found", func(t *testing.T) {
		uc, _, appointmentRepo, _, _ := newTestBookingUsecase()

		_, err := uc.CreateAppointment(ctx, validCreateRequest())
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
		assert.Equal(t, 0, appointmentRepo.count())
	})

	t.Run("Unavailable Slot Is Conflict", func(t *testing.T) {
		uc, slotRepo, appointmentRepo, _, _ := newTestBookingUsecase()
		slotRepo.seed("slot-1", false)

		_, err := uc.CreateAppointment(ctx, validCreateRequest())
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
		assert.Equal(t, 0, appointmentRepo.count())
	})

	t.Run("Lost Race Rolls Back Appointment", func(t *testing.T) {
		uc, slotRepo, appointmentRepo, _, _ := newTestBookingUsecase()
		slotRepo.seed("slot-1", true)

		// Slot is taken between the availability check and the flip.
		stole := false
		slotRepo.afterFind = func() {
			if !stole {
				stole = true
				slotRepo.SetAvailable(ctx, "slot-1", false)
			}
		}

		_, err := uc.CreateAppointment(ctx, validCreateRequest())
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
		assert.Equal(t, 0, appointmentRepo.count(), "pending appointment should be rolled back")
	})

	t.Run("Two Concurrent Bookings One Winner", func(t *testing.T) {
		uc, slotRepo, appointmentRepo, _, _ := newTestBookingUsecase()
		slotRepo.seed("slot-1", true)

		var wg sync.WaitGroup
		results := make([]error, 2)
		for i := 0; i < 2; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, results[i] = uc.CreateAppointment(ctx, validCreateRequest())
			}(i)
		}
		wg.Wait()

		winners := 0
		for _, err := range results {
			if err == nil {
				winners++
			} else {
				customErr, ok := err.(*exceptions.CustomError)
				require.True(t, ok)
				assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
			}
		}
		assert.Equal(t, 1, winners, "exactly one booking should win")
		assert.Equal(t, 1, appointmentRepo.count())
		assert.False(t, slotRepo.available(t, "slot-1"))
	})

	t.Run("Provisioner Failure Does Not Block Booking", func(t *testing.T) {
		uc, slotRepo, _, provisioner, _ := newTestBookingUsecase()
		slotRepo.seed("slot-1", true)
		provisioner.err = errors.New("identity store down")

		result, err := uc.CreateAppointment(ctx, validCreateRequest())
		require.NoError(t, err)
		assert.Empty(t, result.AccountNotice)
		assert.Equal(t, 1, provisioner.calls)
	})

	t.Run("New Account Notice Carries Temporary Password", func(t *testing.T) {
		uc, slotRepo, _, provisioner, _ := newTestBookingUsecase()
		slotRepo.seed("slot-1", true)
		provisioner.output = &contracts.EnsureAccountOutput{UserID: "user-9", Created: true, TemporaryPassword: "a1B2c3D4"}

		result, err := uc.CreateAppointment(ctx, validCreateRequest())
		require.NoError(t, err)
		assert.Contains(t, result.AccountNotice, "a1B2c3D4")
	})
}

func TestBookingUsecase_CancelAppointment(t *testing.T) {
	ctx := context.Background()

	t.Run("Cancel Restores Slot Availability", func(t *testing.T) {
		uc, slotRepo, appointmentRepo, _, publisher := newTestBookingUsecase()
		slotRepo.seed("slot-1", true)

		result, err := uc.CreateAppointment(ctx, validCreateRequest())
		require.NoError(t, err)
		require.False(t, slotRepo.available(t, "slot-1"))

		require.NoError(t, uc.CancelAppointment(ctx, result.AppointmentID))

		stored, err := appointmentRepo.FindByID(ctx, result.AppointmentID)
		require.NoError(t, err)
		assert.Equal(t, models.AppointmentStatusCancelled, stored.Status)
		assert.True(t, slotRepo.available(t, "slot-1"))
		assert.Contains(t, publisher.names(), contracts.EventAppointmentCancelled)
	})

	t.Run("Missing Appointment Is Not Found", func(t *testing.T) {
		uc, _, _, _, _ := newTestBookingUsecase()

		err := uc.CancelAppointment(ctx, "missing")
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}

func TestBookingUsecase_ConfirmAppointment(t *testing.T) {
	ctx := context.Background()

	t.Run("Confirm Sets Status And Payment ID", func(t *testing.T) {
		uc, slotRepo, appointmentRepo, _, publisher := newTestBookingUsecase()
		slotRepo.seed("slot-1", true)

		result, err := uc.CreateAppointment(ctx, validCreateRequest())
		require.NoError(t, err)

		require.NoError(t, uc.ConfirmAppointment(ctx, result.AppointmentID, "op-42"))

		stored, err := appointmentRepo.FindByID(ctx, result.AppointmentID)
		require.NoError(t, err)
		assert.Equal(t, models.AppointmentStatusConfirmed, stored.Status)
		assert.Equal(t, "op-42", stored.PaymentID)
		assert.False(t, slotRepo.available(t, "slot-1"))
		assert.Contains(t, publisher.names(), contracts.EventAppointmentConfirmed)
	})

	t.Run("Confirm Is Idempotent Under Retry", func(t *testing.T) {
		uc, slotRepo, appointmentRepo, _, _ := newTestBookingUsecase()
		slotRepo.seed("slot-1", true)

		result, err := uc.CreateAppointment(ctx, validCreateRequest())
		require.NoError(t, err)

		require.NoError(t, uc.ConfirmAppointment(ctx, result.AppointmentID, "op-42"))
		require.NoError(t, uc.ConfirmAppointment(ctx, result.AppointmentID, "op-42"))

		stored, err := appointmentRepo.FindByID(ctx, result.AppointmentID)
		require.NoError(t, err)
		assert.Equal(t, models.AppointmentStatusConfirmed, stored.Status)
		assert.Equal(t, "op-42", stored.PaymentID)
		assert.False(t, slotRepo.available(t, "slot-1"))
	})

	t.Run("Missing Appointment Is Not Found", func(t *testing.T) {
		uc, _, _, _, _ := newTestBookingUsecase()

		err := uc.ConfirmAppointment(ctx, "missing", "op-1")
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}

package payments

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"lexbook-service/internal/app/config"
	"lexbook-service/internal/pkg/dto/requests"
	"lexbook-service/internal/pkg/dto/responses"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeBookingUsecase struct {
	mu       sync.Mutex
	confirms []string
	err      error
}

func (f *fakeBookingUsecase) CreateAppointment(ctx context.Context, request *requests.CreateAppointment) (*responses.CreateAppointment, error) {
	return nil, errors.New("not used")
}

func (f *fakeBookingUsecase) CancelAppointment(ctx context.Context, appointmentID string) error {
	return errors.New("not used")
}

func (f *fakeBookingUsecase) ConfirmAppointment(ctx context.Context, appointmentID, operationID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.confirms = append(f.confirms, appointmentID+"/"+operationID)
	return nil
}

func (f *fakeBookingUsecase) GetAppointment(ctx context.Context, appointmentID string) (*responses.Appointment, error) {
	return nil, errors.New("not used")
}

func (f *fakeBookingUsecase) ListAppointments(ctx context.Context, request *requests.ListAppointments) ([]responses.Appointment, int, error) {
	return nil, 0, errors.New("not used")
}

func (f *fakeBookingUsecase) confirmed() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.confirms...)
}

type fakeArchive struct {
	mu     sync.Mutex
	stored map[string][]byte
	err    error
}

func newFakeArchive() *fakeArchive {
	return &fakeArchive{stored: make(map[string][]byte)}
}

func (f *fakeArchive) Store(ctx context.Context, transactionID string, payload []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.stored[transactionID] = payload
	return nil
}

func newTestCallbackUsecase(strict bool) (*callbackUsecase, *fakeBookingUsecase, *fakeArchive) {
	booking := &fakeBookingUsecase{}
	archive := newFakeArchive()
	uc := &callbackUsecase{
		BookingUsecase:  booking,
		CallbackArchive: archive,
		Config: config.PayAnyWay{
			MerchantID:      "74730556",
			IntegrityCode:   "amx50100",
			CurrencyCode:    "RUB",
			Amount:          "10.00",
			TestMode:        "0",
			StrictSignature: strict,
		},
		Log: zap.NewNop(),
	}
	return uc, booking, archive
}

func signedCallback(transactionID, operationID string) *requests.PaymentCallback {
	request := &requests.PaymentCallback{
		MerchantID:    "74730556",
		TransactionID: transactionID,
		OperationID:   operationID,
		Amount:        "10.00",
		CurrencyCode:  "RUB",
		SubscriberID:  "client@example.com",
		TestMode:      "0",
		RawPayload:    []byte("MNT_TRANSACTION_ID=" + transactionID),
	}
	request.Signature = CallbackSignature(
		request.MerchantID, request.TransactionID, request.OperationID,
		request.Amount, request.CurrencyCode, request.SubscriberID,
		request.TestMode, "amx50100",
	)
	return request
}

func TestCallbackUsecase_HandleCallback(t *testing.T) {
	ctx := context.Background()

	t.Run("Liveness Ping Touches Nothing", func(t *testing.T) {
		uc, booking, archive := newTestCallbackUsecase(false)

		token := uc.HandleCallback(ctx, &requests.PaymentCallback{MerchantID: "74730556"})
		assert.Equal(t, "SUCCESS", token)
		assert.Empty(t, booking.confirmed())
		assert.Empty(t, archive.stored)
	})

	t.Run("Merchant Mismatch Fails", func(t *testing.T) {
		uc, booking, _ := newTestCallbackUsecase(false)

		request := signedCallback("apt123|1700000000000", "op-42")
		request.MerchantID = "999999"

		token := uc.HandleCallback(ctx, request)
		assert.Equal(t, "FAIL", token)
		assert.Empty(t, booking.confirmed())
	})

	t.Run("Valid Callback Confirms Appointment", func(t *testing.T) {
		uc, booking, archive := newTestCallbackUsecase(false)

		token := uc.HandleCallback(ctx, signedCallback("apt123|1700000000000", "op-42"))
		assert.Equal(t, "SUCCESS", token)
		assert.Equal(t, []string{"apt123/op-42"}, booking.confirmed())
		assert.Contains(t, archive.stored, "apt123|1700000000000")
	})

	t.Run("Transaction Without Separator Uses Whole ID", func(t *testing.T) {
		uc, booking, _ := newTestCallbackUsecase(false)

		token := uc.HandleCallback(ctx, signedCallback("apt777", "op-1"))
		assert.Equal(t, "SUCCESS", token)
		assert.Equal(t, []string{"apt777/op-1"}, booking.confirmed())
	})

	t.Run("Separator First Means Empty Appointment", func(t *testing.T) {
		uc, booking, _ := newTestCallbackUsecase(false)

		token := uc.HandleCallback(ctx, signedCallback("|1700000000000", "op-1"))
		assert.Equal(t, "FAIL", token)
		assert.Empty(t, booking.confirmed())
	})

	t.Run("Signature Comparison Ignores Case", func(t *testing.T) {
		uc, booking, _ := newTestCallbackUsecase(true)

		request := signedCallback("apt123|1700000000000", "op-42")
		request.Signature = strings.ToUpper(request.Signature)

		token := uc.HandleCallback(ctx, request)
		assert.Equal(t, "SUCCESS", token)
		assert.Len(t, booking.confirmed(), 1)
	})

	t.Run("Bad Signature Proceeds In Permissive Mode", func(t *testing.T) {
		uc, booking, _ := newTestCallbackUsecase(false)

		request := signedCallback("apt123|1700000000000", "op-42")
		request.Signature = "deadbeefdeadbeefdeadbeefdeadbeef"

		token := uc.HandleCallback(ctx, request)
		assert.Equal(t, "SUCCESS", token)
		assert.Len(t, booking.confirmed(), 1)
	})

	t.Run("Bad Signature Fails In Strict Mode", func(t *testing.T) {
		uc, booking, _ := newTestCallbackUsecase(true)

		request := signedCallback("apt123|1700000000000", "op-42")
		request.Signature = "deadbeefdeadbeefdeadbeefdeadbeef"

		token := uc.HandleCallback(ctx, request)
		assert.Equal(t, "FAIL", token)
		assert.Empty(t, booking.confirmed())
	})

	t.Run("Confirm Failure Returns FAIL", func(t *testing.T) {
		uc, booking, archive := newTestCallbackUsecase(false)
		booking.err = errors.New("storage down")

		token := uc.HandleCallback(ctx, signedCallback("apt123|1700000000000", "op-42"))
		assert.Equal(t, "FAIL", token)
		assert.Empty(t, archive.stored, "failed callbacks are not archived")
	})

	t.Run("Archive Failure Does Not Break SUCCESS", func(t *testing.T) {
		uc, booking, archive := newTestCallbackUsecase(false)
		archive.err = errors.New("bucket gone")

		token := uc.HandleCallback(ctx, signedCallback("apt123|1700000000000", "op-42"))
		assert.Equal(t, "SUCCESS", token)
		assert.Len(t, booking.confirmed(), 1)
	})

	t.Run("Retried Callback Converges", func(t *testing.T) {
		uc, booking, _ := newTestCallbackUsecase(false)

		request := signedCallback("apt123|1700000000000", "op-42")
		require.Equal(t, "SUCCESS", uc.HandleCallback(ctx, request))
		require.Equal(t, "SUCCESS", uc.HandleCallback(ctx, request))
		assert.Equal(t, []string{"apt123/op-42", "apt123/op-42"}, booking.confirmed())
	})
}

func TestAppointmentIDFromTransaction(t *testing.T) {
	assert.Equal(t, "abc123", appointmentIDFromTransaction("abc123|1700000000000"))
	assert.Equal(t, "abc123", appointmentIDFromTransaction("abc123"))
	assert.Equal(t, "abc", appointmentIDFromTransaction("abc|17|00"))
	assert.Equal(t, "", appointmentIDFromTransaction("|170"))
}

package payments

import (
	"context"
	"strings"
	"sync"

	"lexbook-service/internal/app/config"
	"lexbook-service/internal/app/contracts"
	"lexbook-service/internal/pkg/constvars"
	"lexbook-service/internal/pkg/dto/requests"
	"lexbook-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type callbackUsecase struct {
	BookingUsecase  contracts.BookingUsecase
	CallbackArchive contracts.CallbackArchive
	Config          config.PayAnyWay
	Log             *zap.Logger
}

var (
	callbackUsecaseInstance contracts.PaymentCallbackUsecase
	onceCallbackUsecase     sync.Once
)

func NewCallbackUsecase(
	bookingUsecase contracts.BookingUsecase,
	callbackArchive contracts.CallbackArchive,
	payAnyWayConfig config.PayAnyWay,
	logger *zap.Logger,
) contracts.PaymentCallbackUsecase {
	onceCallbackUsecase.Do(func() {
		callbackUsecaseInstance = &callbackUsecase{
			BookingUsecase:  bookingUsecase,
			CallbackArchive: callbackArchive,
			Config:          payAnyWayConfig,
			Log:             logger,
		}
	})
	return callbackUsecaseInstance
}

// HandleCallback runs the gateway notification through its ordered checks.
// The gateway retries anything that is not a SUCCESS body, so the result is
// always one of the two wire tokens.
func (uc *callbackUsecase) HandleCallback(ctx context.Context, request *requests.PaymentCallback) string {
	requestID := utils.GetRequestID(ctx)

	// The gateway probes the endpoint without a transaction. Answering
	// anything but SUCCESS makes it mark the shop endpoint broken.
	if request.TransactionID == "" {
		uc.Log.Info("callbackUsecase.HandleCallback liveness ping",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return constvars.PaymentCallbackSuccessToken
	}

	if request.MerchantID != uc.Config.MerchantID {
		uc.Log.Warn("callbackUsecase.HandleCallback merchant id mismatch",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingMerchantIDKey, request.MerchantID),
		)
		return constvars.PaymentCallbackFailToken
	}

	expected := CallbackSignature(
		request.MerchantID,
		request.TransactionID,
		request.OperationID,
		request.Amount,
		request.CurrencyCode,
		request.SubscriberID,
		request.TestMode,
		uc.Config.IntegrityCode,
	)
	if !strings.EqualFold(expected, request.Signature) {
		uc.Log.Warn("callbackUsecase.HandleCallback signature mismatch",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingTransactionIDKey, request.TransactionID),
			zap.String(constvars.LoggingOperationIDKey, request.OperationID),
			zap.Bool("strict", uc.Config.StrictSignature),
		)
		if uc.Config.StrictSignature {
			return constvars.PaymentCallbackFailToken
		}
	}

	appointmentID := appointmentIDFromTransaction(request.TransactionID)
	if appointmentID == "" {
		uc.Log.Warn("callbackUsecase.HandleCallback empty appointment id",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingTransactionIDKey, request.TransactionID),
		)
		return constvars.PaymentCallbackFailToken
	}

	if err := uc.BookingUsecase.ConfirmAppointment(ctx, appointmentID, request.OperationID); err != nil {
		uc.Log.Error("callbackUsecase.HandleCallback confirm failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.Error(err),
		)
		return constvars.PaymentCallbackFailToken
	}

	uc.archivePayload(ctx, requestID, request)

	uc.Log.Info("callbackUsecase.HandleCallback payment confirmed",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String(constvars.LoggingOperationIDKey, request.OperationID),
	)
	return constvars.PaymentCallbackSuccessToken
}

func (uc *callbackUsecase) archivePayload(ctx context.Context, requestID string, request *requests.PaymentCallback) {
	if uc.CallbackArchive == nil || len(request.RawPayload) == 0 {
		return
	}
	if err := uc.CallbackArchive.Store(ctx, request.TransactionID, request.RawPayload); err != nil {
		uc.Log.Warn("callbackUsecase.archivePayload failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingTransactionIDKey, request.TransactionID),
			zap.Error(err),
		)
	}
}

// appointmentIDFromTransaction strips the timestamp suffix. Transactions
// issued before the separator was introduced carry the bare appointment id.
func appointmentIDFromTransaction(transactionID string) string {
	if idx := strings.Index(transactionID, constvars.TransactionIDSeparator); idx >= 0 {
		return transactionID[:idx]
	}
	return transactionID
}

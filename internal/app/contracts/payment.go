package contracts

import (
	"context"

	"lexbook-service/internal/pkg/dto/requests"
)

// PaymentLinkBuilder produces signed gateway payment URLs. Pure over the
// merchant configuration, no I/O.
type PaymentLinkBuilder interface {
	NewTransactionID(appointmentID string) string
	PaymentURL(transactionID, subscriberID, description string) string
}

type PaymentCallbackUsecase interface {
	// HandleCallback processes a gateway notification and returns the literal
	// wire token the gateway expects ("SUCCESS" or "FAIL"). It never returns
	// an error; failures are folded into the token.
	HandleCallback(ctx context.Context, request *requests.PaymentCallback) string
}

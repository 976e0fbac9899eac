package contracts

import "context"

// CallbackArchive persists raw gateway notification payloads so that
// disputed payments can be reconciled against what was actually received.
type CallbackArchive interface {
	Store(ctx context.Context, transactionID string, payload []byte) error
}

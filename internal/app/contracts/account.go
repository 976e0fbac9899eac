package contracts

import "context"

type EnsureAccountOutput struct {
	UserID  string
	Created bool

	// TemporaryPassword is set only when Created is true. It is returned to
	// the caller exactly once and never persisted in cleartext.
	TemporaryPassword string
}

type AccountProvisioner interface {
	EnsureAccount(ctx context.Context, email, name, phone string) (*EnsureAccountOutput, error)
}

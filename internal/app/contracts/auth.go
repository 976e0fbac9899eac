package contracts

import (
	"context"

	"lexbook-service/internal/pkg/dto/requests"
	"lexbook-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	RegisterUser(ctx context.Context, request *requests.RegisterUser) (*responses.RegisterUser, error)
	LoginUser(ctx context.Context, request *requests.LoginUser) (*responses.LoginUser, error)
	LogoutUser(ctx context.Context, sessionID string) error

	// ResolveSession maps a bearer token to the stored session payload, used
	// by the auth middleware.
	ResolveSession(ctx context.Context, token string) (string, error)
}

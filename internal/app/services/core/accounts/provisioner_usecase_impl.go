package accounts

import (
	"context"
	"sync"

	"lexbook-service/internal/app/contracts"
	"lexbook-service/internal/app/models"
	"lexbook-service/internal/pkg/constvars"
	"lexbook-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type provisionerUsecase struct {
	UserRepository contracts.UserRepository
	Log            *zap.Logger
}

var (
	provisionerInstance contracts.AccountProvisioner
	onceProvisioner     sync.Once
)

func NewAccountProvisioner(userRepository contracts.UserRepository, logger *zap.Logger) contracts.AccountProvisioner {
	onceProvisioner.Do(func() {
		provisionerInstance = &provisionerUsecase{
			UserRepository: userRepository,
			Log:            logger,
		}
	})
	return provisionerInstance
}

// EnsureAccount creates a client account for first-time bookers. The
// temporary password leaves this function once and is stored only as a
// bcrypt hash. No session is issued for the new account.
func (uc *provisionerUsecase) EnsureAccount(ctx context.Context, email, name, phone string) (*contracts.EnsureAccountOutput, error) {
	requestID := utils.GetRequestID(ctx)

	existing, err := uc.UserRepository.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &contracts.EnsureAccountOutput{UserID: existing.ID, Created: false}, nil
	}

	password, err := utils.GenerateTemporaryPassword(constvars.ProvisionedPasswordLength)
	if err != nil {
		return nil, err
	}
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:    email,
		Fullname: name,
		Phone:    phone,
		Password: hashed,
		Role:     constvars.LexbookRoleClient,
	}
	userID, err := uc.UserRepository.Insert(ctx, user)
	if err != nil {
		// A parallel registration likely won the unique-email race; the
		// booking proceeds against the existing account.
		uc.Log.Warn("provisionerUsecase.EnsureAccount insert failed, treating account as existing",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return &contracts.EnsureAccountOutput{Created: false}, nil
	}

	utils.LogBusinessEvent(uc.Log, "account_provisioned", requestID,
		zap.String("user_id", userID),
	)

	return &contracts.EnsureAccountOutput{
		UserID:            userID,
		Created:           true,
		TemporaryPassword: password,
	}, nil
}

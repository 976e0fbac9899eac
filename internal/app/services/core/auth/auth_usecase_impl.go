package auth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"lexbook-service/internal/app/config"
	"lexbook-service/internal/app/contracts"
	"lexbook-service/internal/app/models"
	"lexbook-service/internal/pkg/constvars"
	"lexbook-service/internal/pkg/dto/requests"
	"lexbook-service/internal/pkg/dto/responses"
	"lexbook-service/internal/pkg/exceptions"
	"lexbook-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type authUsecase struct {
	UserRepository  contracts.UserRepository
	RedisRepository contracts.RedisRepository
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
}

var (
	authUsecaseInstance contracts.AuthUsecase
	onceAuthUsecase     sync.Once
)

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	onceAuthUsecase.Do(func() {
		authUsecaseInstance = &authUsecase{
			UserRepository:  userRepository,
			RedisRepository: redisRepository,
			InternalConfig:  internalConfig,
			Log:             logger,
		}
	})
	return authUsecaseInstance
}

func (uc *authUsecase) RegisterUser(ctx context.Context, request *requests.RegisterUser) (*responses.RegisterUser, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.RegisterUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	if request.Password != request.RetypePassword {
		return nil, exceptions.ErrPasswordDoNotMatch(nil)
	}

	existing, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrEmailAlreadyExist(fmt.Errorf("email %s taken", request.Email))
	}

	hashed, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	user := &models.User{
		Email:    request.Email,
		Fullname: request.Fullname,
		Phone:    request.Phone,
		Password: hashed,
		Role:     constvars.LexbookRoleClient,
	}
	userID, err := uc.UserRepository.Insert(ctx, user)
	if err != nil {
		return nil, err
	}

	utils.LogBusinessEvent(uc.Log, "user_registered", requestID,
		zap.String("user_id", userID),
	)

	return &responses.RegisterUser{UserID: userID, Email: request.Email}, nil
}

func (uc *authUsecase) LoginUser(ctx context.Context, request *requests.LoginUser) (*responses.LoginUser, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.LoginUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	user, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}
	if !utils.CheckPasswordHash(request.Password, user.Password) {
		utils.LogSecurityEvent(uc.Log, "login_failed", requestID, "low",
			zap.String("user_id", user.ID),
		)
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	sessionTTL := time.Duration(uc.InternalConfig.JWT.ExpTimeInHour) * time.Hour
	session := &models.Session{
		SessionID: uuid.New().String(),
		UserID:    user.ID,
		Email:     user.Email,
		Role:      user.Role,
		ExpiresAt: time.Now().Add(sessionTTL),
	}
	sessionData, err := json.Marshal(session)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}
	if err := uc.RedisRepository.Set(ctx, session.SessionID, sessionData, sessionTTL); err != nil {
		return nil, err
	}

	token, err := utils.GenerateSessionJWT(session.SessionID, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return nil, err
	}

	return &responses.LoginUser{Token: token, Role: user.Role}, nil
}

func (uc *authUsecase) LogoutUser(ctx context.Context, sessionID string) error {
	return uc.RedisRepository.Delete(ctx, sessionID)
}

// ResolveSession maps a bearer token to the raw session JSON stored in
// redis. An expired redis entry means the session was revoked or timed out
// regardless of what the JWT says.
func (uc *authUsecase) ResolveSession(ctx context.Context, token string) (string, error) {
	sessionID, err := utils.ParseSessionJWT(token, uc.InternalConfig.JWT.Secret)
	if err != nil {
		return "", err
	}

	sessionData, err := uc.RedisRepository.Get(ctx, sessionID)
	if err != nil {
		return "", exceptions.ErrTokenInvalidOrExpired(err)
	}
	return sessionData, nil
}

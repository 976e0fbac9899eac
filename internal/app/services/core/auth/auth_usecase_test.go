package auth

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"
	"time"

	"lexbook-service/internal/app/config"
	"lexbook-service/internal/app/models"
	"lexbook-service/internal/pkg/constvars"
	"lexbook-service/internal/pkg/dto/requests"
	"lexbook-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeUserRepository struct {
	mu    sync.Mutex
	users map[string]*models.User
	next  int
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: make(map[string]*models.User)}
}

func (f *fakeUserRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[userID]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepository) Insert(ctx context.Context, user *models.User) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.next++
	id := "user-" + strconv.Itoa(f.next)
	copied := *user
	copied.ID = id
	f.users[id] = &copied
	return id, nil
}

type fakeRedisRepository struct {
	mu     sync.Mutex
	values map[string]string
}

func newFakeRedisRepository() *fakeRedisRepository {
	return &fakeRedisRepository{values: make(map[string]string)}
}

func (f *fakeRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch v := value.(type) {
	case []byte:
		f.values[key] = string(v)
	case string:
		f.values[key] = v
	default:
		return errors.New("unsupported value type")
	}
	return nil
}

func (f *fakeRedisRepository) Get(ctx context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	value, ok := f.values[key]
	if !ok {
		return "", errors.New("redis: nil")
	}
	return value, nil
}

func (f *fakeRedisRepository) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.values, key)
	return nil
}

func newTestAuthUsecase() (*authUsecase, *fakeUserRepository, *fakeRedisRepository) {
	userRepo := newFakeUserRepository()
	redisRepo := newFakeRedisRepository()
	uc := &authUsecase{
		UserRepository:  userRepo,
		RedisRepository: redisRepo,
		InternalConfig: &config.InternalConfig{
			JWT: config.JWT{Secret: "test-secret", ExpTimeInHour: 1},
		},
		Log: zap.NewNop(),
	}
	return uc, userRepo, redisRepo
}

func validRegisterRequest() *requests.RegisterUser {
	return &requests.RegisterUser{
		Email:          "client@example.com",
		Fullname:       "Maria Sidorova",
		Password:       "Str0ng!Pass",
		RetypePassword: "Str0ng!Pass",
	}
}

func TestAuthUsecase_RegisterUser(t *testing.T) {
	ctx := context.Background()

	t.Run("Registers Client", func(t *testing.T) {
		uc, userRepo, _ := newTestAuthUsecase()

		result, err := uc.RegisterUser(ctx, validRegisterRequest())
		require.NoError(t, err)
		assert.NotEmpty(t, result.UserID)

		stored, err := userRepo.FindByEmail(ctx, "client@example.com")
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, constvars.LexbookRoleClient, stored.Role)
		assert.NotEqual(t, "Str0ng!Pass", stored.Password)
	})

	t.Run("Rejects Duplicate Email", func(t *testing.T) {
		uc, _, _ := newTestAuthUsecase()

		_, err := uc.RegisterUser(ctx, validRegisterRequest())
		require.NoError(t, err)

		_, err = uc.RegisterUser(ctx, validRegisterRequest())
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})

	t.Run("Rejects Password Mismatch", func(t *testing.T) {
		uc, _, _ := newTestAuthUsecase()

		request := validRegisterRequest()
		request.RetypePassword = "Different!1"
		_, err := uc.RegisterUser(ctx, request)
		assert.Error(t, err)
	})
}

func TestAuthUsecase_LoginUser(t *testing.T) {
	ctx := context.Background()

	t.Run("Login Issues Token And Session", func(t *testing.T) {
		uc, _, redisRepo := newTestAuthUsecase()
		_, err := uc.RegisterUser(ctx, validRegisterRequest())
		require.NoError(t, err)

		result, err := uc.LoginUser(ctx, &requests.LoginUser{Email: "client@example.com", Password: "Str0ng!Pass"})
		require.NoError(t, err)
		assert.NotEmpty(t, result.Token)
		assert.Equal(t, constvars.LexbookRoleClient, result.Role)
		assert.Len(t, redisRepo.values, 1)
	})

	t.Run("Wrong Password Is Unauthorized", func(t *testing.T) {
		uc, _, _ := newTestAuthUsecase()
		_, err := uc.RegisterUser(ctx, validRegisterRequest())
		require.NoError(t, err)

		_, err = uc.LoginUser(ctx, &requests.LoginUser{Email: "client@example.com", Password: "WrongPass1!"})
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
	})

	t.Run("Unknown Email Is Unauthorized", func(t *testing.T) {
		uc, _, _ := newTestAuthUsecase()

		_, err := uc.LoginUser(ctx, &requests.LoginUser{Email: "nobody@example.com", Password: "Whatever1!"})
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
	})
}

func TestAuthUsecase_ResolveSession(t *testing.T) {
	ctx := context.Background()

	t.Run("Round Trip", func(t *testing.T) {
		uc, _, _ := newTestAuthUsecase()
		_, err := uc.RegisterUser(ctx, validRegisterRequest())
		require.NoError(t, err)

		login, err := uc.LoginUser(ctx, &requests.LoginUser{Email: "client@example.com", Password: "Str0ng!Pass"})
		require.NoError(t, err)

		sessionData, err := uc.ResolveSession(ctx, login.Token)
		require.NoError(t, err)

		var session models.Session
		require.NoError(t, json.Unmarshal([]byte(sessionData), &session))
		assert.Equal(t, "client@example.com", session.Email)
		assert.Equal(t, constvars.LexbookRoleClient, session.Role)
	})

	t.Run("Logout Revokes Session", func(t *testing.T) {
		uc, _, _ := newTestAuthUsecase()
		_, err := uc.RegisterUser(ctx, validRegisterRequest())
		require.NoError(t, err)

		login, err := uc.LoginUser(ctx, &requests.LoginUser{Email: "client@example.com", Password: "Str0ng!Pass"})
		require.NoError(t, err)

		sessionData, err := uc.ResolveSession(ctx, login.Token)
		require.NoError(t, err)

		var session models.Session
		require.NoError(t, json.Unmarshal([]byte(sessionData), &session))
		require.NoError(t, uc.LogoutUser(ctx, session.SessionID))

		_, err = uc.ResolveSession(ctx, login.Token)
		assert.Error(t, err)
	})

	t.Run("Garbage Token Rejected", func(t *testing.T) {
		uc, _, _ := newTestAuthUsecase()

		_, err := uc.ResolveSession(ctx, "not-a-jwt")
		assert.Error(t, err)
	})
}

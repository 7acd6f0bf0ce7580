package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"datavision/internal/auth"
	apperrors "datavision/internal/errors"
	"datavision/internal/model"
	"datavision/internal/repository"
)

func initTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to open in-memory db")
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.RequestLog{}))
	return db
}

func newTestAuthService(t *testing.T) (AuthService, *auth.JWTService) {
	t.Helper()
	db := initTestDB(t)
	jwtService := auth.NewJWTService(auth.TokenConfig{
		Secret:   "test-secret",
		Issuer:   "DataVisionAPI",
		Audience: "DataVisionClient",
		TTL:      time.Hour,
	})
	return NewAuthService(repository.NewUserRepository(db), jwtService), jwtService
}

func TestRegister(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "alice", "pw123456", model.RoleUser)
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, model.RoleUser, user.Role)
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "pw123456", user.PasswordHash)

	// Re-registering the same username fails and creates nothing new.
	dup, err := svc.Register(ctx, "alice", "other-pass", model.RoleUser)
	assert.Nil(t, dup)
	assert.ErrorIs(t, err, apperrors.ErrUserAlreadyExists)

	again, err := svc.Register(ctx, "alice", "other-pass", model.RoleUser)
	assert.Nil(t, again)
	assert.ErrorIs(t, err, apperrors.ErrUserAlreadyExists)
}

func TestRegisterRoleDefaults(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	admin, err := svc.Register(ctx, "root", "pw123456", model.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, admin.Role)
	assert.True(t, admin.IsAdmin())

	// Unknown roles collapse to the default.
	user, err := svc.Register(ctx, "bob", "pw123456", "SuperRoot")
	require.NoError(t, err)
	assert.Equal(t, model.RoleUser, user.Role)
}

func TestLogin(t *testing.T) {
	svc, jwtService := newTestAuthService(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, "alice", "pw123456", model.RoleUser)
	require.NoError(t, err)

	result, err := svc.Login(ctx, "alice", "pw123456")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.True(t, result.ExpiresAt.After(time.Now()))
	assert.Equal(t, registered.ID, result.User.ID)

	// Claims decode back to the registered identity.
	identity, err := jwtService.Validate(result.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, identity.UserID)
	assert.Equal(t, "alice", identity.Username)
	assert.Equal(t, model.RoleUser, identity.Role)
}

func TestLoginFailuresIndistinguishable(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "pw123456", model.RoleUser)
	require.NoError(t, err)

	_, wrongPassErr := svc.Login(ctx, "alice", "wrongpw")
	_, noUserErr := svc.Login(ctx, "nobody", "whatever")

	assert.ErrorIs(t, wrongPassErr, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, noUserErr, apperrors.ErrInvalidCredentials)
	// Same message either way: the caller cannot tell which check failed.
	assert.Equal(t, wrongPassErr.Error(), noUserErr.Error())
}

// unavailableUserRepo fails every call, standing in for an unreachable store.
type unavailableUserRepo struct{}

var errStoreUnavailable = errors.New("store unavailable")

func (unavailableUserRepo) Create(context.Context, *model.User) error {
	return errStoreUnavailable
}

func (unavailableUserRepo) FindByID(context.Context, uint) (*model.User, error) {
	return nil, errStoreUnavailable
}

func (unavailableUserRepo) FindByUsername(context.Context, string) (*model.User, error) {
	return nil, errStoreUnavailable
}

func TestLoginStoreFailureIsNotCredentialFailure(t *testing.T) {
	jwtService := auth.NewJWTService(auth.TokenConfig{
		Secret:   "test-secret",
		Issuer:   "DataVisionAPI",
		Audience: "DataVisionClient",
		TTL:      time.Hour,
	})
	svc := NewAuthService(unavailableUserRepo{}, jwtService)

	result, err := svc.Login(context.Background(), "alice", "pw123456")
	assert.Nil(t, result)
	require.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, err, errStoreUnavailable)
}

func TestLoginIsCaseSensitive(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Alice", "pw123456", model.RoleUser)
	require.NoError(t, err)

	_, err = svc.Login(ctx, "alice", "pw123456")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestProfile(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, "alice", "pw123456", model.RoleUser)
	require.NoError(t, err)

	user, err := svc.Profile(ctx, registered.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	missing, err := svc.Profile(ctx, 9999)
	assert.Nil(t, missing)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

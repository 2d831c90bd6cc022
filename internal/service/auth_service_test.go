package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillbridge_backend/internal/config"
	"skillbridge_backend/internal/model"
	"skillbridge_backend/internal/repository"
	"skillbridge_backend/internal/util"
)

func testAuthService(t *testing.T) *AuthService {
	t.Helper()

	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret-for-auth-service-tests"
	cfg.JWT.ExpireTime = time.Hour
	return NewAuthService(repository.NewUserRepository(setupDB(t)), cfg)
}

func TestRegisterHashesPassword(t *testing.T) {
	svc := testAuthService(t)

	user := &model.User{Name: "Jane", Email: "jane@example.com", Password: "supersecret"}
	require.NoError(t, svc.Register(user))

	stored, err := svc.UserRepo.FindByEmail("jane@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "supersecret", stored.Password)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := testAuthService(t)

	require.NoError(t, svc.Register(&model.User{Name: "Jane", Email: "jane@example.com", Password: "supersecret"}))
	err := svc.Register(&model.User{Name: "Other", Email: "jane@example.com", Password: "different"})

	assert.ErrorIs(t, err, util.ErrEmailRegistered)
}

func TestLoginReturnsValidToken(t *testing.T) {
	svc := testAuthService(t)
	require.NoError(t, svc.Register(&model.User{Name: "Jane", Email: "jane@example.com", Password: "supersecret"}))

	token, user, err := svc.Login("jane@example.com", "supersecret")
	require.NoError(t, err)
	require.NotNil(t, user)

	claims, err := util.ParseJWT(token, svc.Cfg.JWT.Secret)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "jane@example.com", claims.Email)
}

func TestLoginWrongCredentialsIndistinguishable(t *testing.T) {
	svc := testAuthService(t)
	require.NoError(t, svc.Register(&model.User{Name: "Jane", Email: "jane@example.com", Password: "supersecret"}))

	_, _, badPassword := svc.Login("jane@example.com", "wrong")
	_, _, badEmail := svc.Login("nobody@example.com", "supersecret")

	assert.ErrorIs(t, badPassword, util.ErrInvalidCredentials)
	assert.ErrorIs(t, badEmail, util.ErrInvalidCredentials)
}

func TestJobRoleCreateRejectsDuplicateTitle(t *testing.T) {
	svc := NewJobRoleService(repository.NewJobRoleRepository(setupDB(t)))

	require.NoError(t, svc.Create(&model.JobRole{Title: "Platform Engineer", Description: "Infra work"}))
	err := svc.Create(&model.JobRole{Title: "Platform Engineer", Description: "More infra work"})

	assert.ErrorIs(t, err, util.ErrJobRoleExists)
}

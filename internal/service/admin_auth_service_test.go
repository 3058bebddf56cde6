package service_test

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sesamebooking/internal/repository"
	"sesamebooking/internal/service"
)

func TestAdminAuthLoginRoundtrip(t *testing.T) {
	repo := repository.NewAdminAuthRepository(t.TempDir())
	svc := service.NewAdminAuthService(repo, "test-secret")

	require.NoError(t, svc.SetPassword("sesame"))

	token, err := svc.Login("sesame")
	require.NoError(t, err)

	parsed, err := jwt.Parse(token, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	assert.True(t, parsed.Valid)

	_, err = svc.Login("open sesame")
	assert.Error(t, err)
}

func TestAdminAuthLoginWithoutPassword(t *testing.T) {
	repo := repository.NewAdminAuthRepository(t.TempDir())
	svc := service.NewAdminAuthService(repo, "test-secret")

	_, err := svc.Login("anything")
	assert.Error(t, err)
}

func TestAdminAuthBootstrap(t *testing.T) {
	repo := repository.NewAdminAuthRepository(t.TempDir())
	svc := service.NewAdminAuthService(repo, "test-secret")

	// Empty password is a no-op.
	require.NoError(t, svc.Bootstrap(""))
	_, err := svc.Login("anything")
	assert.Error(t, err)

	require.NoError(t, svc.Bootstrap("sesame"))
	_, err = svc.Login("sesame")
	assert.NoError(t, err)

	// Bootstrap never overwrites an existing password.
	require.NoError(t, svc.Bootstrap("different"))
	_, err = svc.Login("sesame")
	assert.NoError(t, err)

	// The stored hash is never the cleartext.
	hash, err := repo.PasswordHash()
	require.NoError(t, err)
	assert.NotEqual(t, "sesame", hash)
}

package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/SscSPs/money_ledger/internal/apperrors"
	"github.com/SscSPs/money_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/money_ledger/internal/core/services"
	"github.com/SscSPs/money_ledger/internal/platform/config"
	"github.com/SscSPs/money_ledger/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_PlainPassword(t *testing.T) {
	auth, err := services.NewAuthService("owner", "hunter2", "")
	require.NoError(t, err)
	ctx := context.Background()

	assert.NoError(t, auth.Authenticate(ctx, "owner", "hunter2"))
	assert.ErrorIs(t, auth.Authenticate(ctx, "owner", "wrong"), apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, auth.Authenticate(ctx, "intruder", "hunter2"), apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, auth.Authenticate(ctx, "", ""), apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, auth.Authenticate(ctx, "Owner", "hunter2"), apperrors.ErrInvalidCredentials)
}

func TestAuthService_PrecomputedHash(t *testing.T) {
	hash, err := utils.HashPassword("s3cret")
	require.NoError(t, err)

	auth, err := services.NewAuthService("owner", "", hash)
	require.NoError(t, err)

	assert.NoError(t, auth.Authenticate(context.Background(), "owner", "s3cret"))
	assert.ErrorIs(t, auth.Authenticate(context.Background(), "owner", ""), apperrors.ErrInvalidCredentials)
}

func TestNewServiceContainer(t *testing.T) {
	cfg := &config.Config{AuthUsername: "owner", AuthPassword: "hunter2"}

	container, err := services.NewServiceContainer(cfg, repositories.RepositoryProvider{RecordRepo: new(MockRecordRepository)})
	require.NoError(t, err)
	assert.NotNil(t, container.Record)
	assert.NotNil(t, container.Reporting)
	assert.NotNil(t, container.Auth)

	_, err = services.NewServiceContainer(cfg, repositories.RepositoryProvider{})
	assert.Error(t, err)
}

func TestAuthService_LongPasswordMustMatchExactly(t *testing.T) {
	password := strings.Repeat("p", utils.MaxPasswordBytes)
	auth, err := services.NewAuthService("owner", password, "")
	require.NoError(t, err)
	ctx := context.Background()

	assert.NoError(t, auth.Authenticate(ctx, "owner", password))
	assert.ErrorIs(t, auth.Authenticate(ctx, "owner", password+"-not-the-password"), apperrors.ErrInvalidCredentials)

	short := password[:utils.MaxPasswordBytes-1]
	auth, err = services.NewAuthService("owner", short, "")
	require.NoError(t, err)
	assert.NoError(t, auth.Authenticate(ctx, "owner", short))
	assert.ErrorIs(t, auth.Authenticate(ctx, "owner", short+"\x00"), apperrors.ErrInvalidCredentials)
}

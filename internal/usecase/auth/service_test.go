package auth

import (
	"context"
	stdErrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "github.com/truthos/meeting-intel/errors"
	"github.com/truthos/meeting-intel/internal/domain/entities"
	"github.com/truthos/meeting-intel/internal/infrastructure/cache"
	"github.com/truthos/meeting-intel/pkg/jwt"
)

func newTestAuthService() Service {
	return NewService(
		jwt.NewManager("test-secret", time.Hour),
		cache.NewMemoryStore(),
		zap.NewNop(),
	)
}

func TestLoginOperator(t *testing.T) {
	svc := newTestAuthService()

	token, user, err := svc.Login(context.Background(), "admin@truthos.com", "AdminPass123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, entities.RoleOperator, user.Role)
	assert.Equal(t, "admin@truthos.com", user.Email)
}

func TestLoginBasic(t *testing.T) {
	svc := newTestAuthService()

	_, user, err := svc.Login(context.Background(), "user@truthos.com", "UserPass123")
	require.NoError(t, err)
	assert.Equal(t, entities.RoleBasic, user.Role)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newTestAuthService()

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "admin@truthos.com", "nope"},
		{"unknown user", "ghost@truthos.com", "AdminPass123"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.Login(context.Background(), tt.email, tt.password)
			require.Error(t, err)

			var appErr apperrors.AppError
			require.True(t, stdErrors.As(err, &appErr))
			assert.Equal(t, apperrors.ErrorCode_INVALID_CREDENTIALS, appErr.Code)
		})
	}
}

func TestResolveRoundTrip(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	token, _, err := svc.Login(ctx, "admin@truthos.com", "AdminPass123")
	require.NoError(t, err)

	session, err := svc.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "admin@truthos.com", session.Email)
	assert.Equal(t, entities.RoleOperator, session.Role)
}

func TestResolveRejectsGarbageToken(t *testing.T) {
	svc := newTestAuthService()

	_, err := svc.Resolve(context.Background(), "not-a-token")
	require.Error(t, err)

	var appErr apperrors.AppError
	require.True(t, stdErrors.As(err, &appErr))
	assert.Equal(t, apperrors.ErrorCode_INVALID_TOKEN, appErr.Code)
}

func TestLogoutInvalidatesSession(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	token, _, err := svc.Login(ctx, "user@truthos.com", "UserPass123")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, token))

	_, err = svc.Resolve(ctx, token)
	require.Error(t, err)

	// Token still verifies cryptographically but the session is gone
	var appErr apperrors.AppError
	require.True(t, stdErrors.As(err, &appErr))
	assert.Equal(t, apperrors.ErrorCode_SESSION_EXPIRED, appErr.Code)
}

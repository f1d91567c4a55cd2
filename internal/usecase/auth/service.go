package auth

import (
	"context"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/truthos/meeting-intel/errors"
	"github.com/truthos/meeting-intel/internal/domain/entities"
	"github.com/truthos/meeting-intel/internal/infrastructure/cache"
	"github.com/truthos/meeting-intel/pkg/jwt"
)

// staticUser is a demo credential record. Production deployments should
// replace this table with a real identity provider.
type staticUser struct {
	password string
	role     entities.UserRole
}

var demoUsers = map[string]staticUser{
	"admin@truthos.com": {password: "AdminPass123", role: entities.RoleOperator},
	"user@truthos.com":  {password: "UserPass123", role: entities.RoleBasic},
}

// Service handles login, logout and per-request session resolution
type Service interface {
	Login(ctx context.Context, email, password string) (string, *entities.User, error)
	Logout(ctx context.Context, token string) error
	Resolve(ctx context.Context, token string) (*entities.Session, error)
}

type authService struct {
	jwtManager *jwt.Manager
	sessions   cache.SessionStore
	logger     *zap.Logger
}

// NewService constructs the auth service
func NewService(jwtManager *jwt.Manager, sessions cache.SessionStore, logger *zap.Logger) Service {
	return &authService{
		jwtManager: jwtManager,
		sessions:   sessions,
		logger:     logger,
	}
}

// Login checks credentials, issues a signed token and records the
// session in the store
func (s *authService) Login(ctx context.Context, email, password string) (string, *entities.User, error) {
	user, ok := demoUsers[email]
	if !ok || user.password != password {
		return "", nil, apperrors.ErrInvalidCredentials()
	}

	token, err := s.jwtManager.GenerateToken(email, string(user.role))
	if err != nil {
		return "", nil, apperrors.ErrInternal(err)
	}

	session := &entities.Session{
		Token:     token,
		Email:     email,
		Role:      user.role,
		CreatedAt: time.Now(),
	}
	if err := s.sessions.Set(ctx, token, session, s.jwtManager.GetExpiry()); err != nil {
		return "", nil, apperrors.ErrInternal(err)
	}

	if s.logger != nil {
		s.logger.Info("user logged in",
			zap.String("email", email),
			zap.String("role", string(user.role)),
		)
	}

	return token, &entities.User{Email: email, Role: user.role}, nil
}

// Logout removes the session for the given token. Unknown tokens are
// not an error.
func (s *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.Delete(ctx, token)
}

// Resolve validates the token signature and looks up the session
// record. The returned session is passed explicitly to handlers; its
// role is a display hint only.
func (s *authService) Resolve(ctx context.Context, token string) (*entities.Session, error) {
	claims, err := s.jwtManager.ValidateToken(token)
	if err != nil {
		return nil, apperrors.ErrInvalidToken()
	}

	session, err := s.sessions.Get(ctx, token)
	if err != nil {
		return nil, apperrors.ErrInternal(err)
	}
	if session == nil {
		return nil, apperrors.ErrSessionExpired()
	}

	// Session record wins over claims, but they should agree
	if session.Email != claims.Email && s.logger != nil {
		s.logger.Warn("session email does not match token claims",
			zap.String("session_email", session.Email),
			zap.String("claims_email", claims.Email),
		)
	}

	return session, nil
}

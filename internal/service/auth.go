package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Primesh-FL/FormSG/common/id"
	"github.com/Primesh-FL/FormSG/common/logger"
	"github.com/Primesh-FL/FormSG/internal/model"
	"github.com/Primesh-FL/FormSG/internal/store"
)

const (
	// SessionDuration is how long an admin session stays valid after login.
	SessionDuration = 7 * 24 * time.Hour

	sessionTokenBytes = 32
)

// AuthService signs admins in through an IdentityProvider and tracks their
// sessions. Session cookies carry an opaque random token; only its SHA-256
// is persisted, so neither the cookie nor a database read reveals the other.
type AuthService interface {
	GetAuthorizationURL(state string) (string, error)
	// HandleCallback exchanges an authorization code and opens a session.
	// The returned token is the cookie value.
	HandleCallback(ctx context.Context, code string) (*model.User, string, error)
	ValidateSession(ctx context.Context, token string) (*model.User, error)
	Logout(ctx context.Context, token string) error
}

type authService struct {
	userStore    store.UserStore
	sessionStore store.SessionStore
	provider     IdentityProvider
	now          func() time.Time
}

func NewAuthService(userStore store.UserStore, sessionStore store.SessionStore, provider IdentityProvider) AuthService {
	return &authService{
		userStore:    userStore,
		sessionStore: sessionStore,
		provider:     provider,
		now:          time.Now,
	}
}

func (s *authService) GetAuthorizationURL(state string) (string, error) {
	return s.provider.AuthorizationURL(state)
}

func (s *authService) HandleCallback(ctx context.Context, code string) (*model.User, string, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{Component: "formsg.service.auth"})

	identity, err := s.provider.Authenticate(ctx, code)
	if err != nil {
		slog.WarnContext(ctx, "identity provider rejected code", "error", err)
		return nil, "", ErrInvalidCode
	}

	user := &model.User{
		ID:        id.New(),
		Name:      identity.Name,
		Email:     identity.Email,
		AvatarURL: identity.AvatarURL,
		WorkOSID:  &identity.ProviderID,
	}
	if err := s.userStore.UpsertByWorkOSID(ctx, user); err != nil {
		return nil, "", fmt.Errorf("upserting user: %w", err)
	}
	ctx = logger.WithLogFields(ctx, logger.LogFields{UserID: logger.Ptr(user.ID)})

	token, err := s.openSession(ctx, user.ID, identity.SessionID)
	if err != nil {
		return nil, "", err
	}

	slog.InfoContext(ctx, "admin signed in")
	return user, token, nil
}

// openSession stores a session for userID and returns its cookie token.
func (s *authService) openSession(ctx context.Context, userID int64, providerSessionID *string) (string, error) {
	token, err := newSessionToken()
	if err != nil {
		return "", err
	}

	session := &model.Session{
		ID:              id.New(),
		UserID:          userID,
		TokenHash:       hashSessionToken(token),
		WorkOSSessionID: providerSessionID,
		ExpiresAt:       s.now().Add(SessionDuration),
	}
	if err := s.sessionStore.Create(ctx, session); err != nil {
		return "", fmt.Errorf("creating session: %w", err)
	}
	return token, nil
}

func (s *authService) ValidateSession(ctx context.Context, token string) (*model.User, error) {
	if token == "" {
		return nil, ErrSessionExpired
	}

	session, err := s.sessionStore.GetValidByTokenHash(ctx, hashSessionToken(token))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrSessionExpired
		}
		return nil, fmt.Errorf("getting session: %w", err)
	}
	if session.IsExpired(s.now()) {
		return nil, ErrSessionExpired
	}

	user, err := s.userStore.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("getting user: %w", err)
	}
	return user, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.sessionStore.DeleteByTokenHash(ctx, hashSessionToken(token)); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}

func newSessionToken() (string, error) {
	b := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generating session token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

func hashSessionToken(token string) []byte {
	sum := sha256.Sum256([]byte(token))
	return sum[:]
}

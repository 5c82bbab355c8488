package authstore

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"

	"github.com/ahmedgamal1254/lms-portal/internal/model"
)

// Storage keys, mirroring the three browser local-storage keys the web
// portal uses.
const (
	KeyToken  = "auth_token"
	KeyUser   = "auth_user"
	KeyExpiry = "auth_expiry"
)

// Session is the persisted auth state.
type Session struct {
	Token     string
	User      model.User
	ExpiresAt time.Time
}

// Manager persists and checks the auth session.
type Manager struct {
	store  Store
	logger *zap.Logger
	now    func() time.Time
}

func NewManager(store Store, logger *zap.Logger) *Manager {
	return &Manager{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// Save writes token, user record and expiry under the three keys.
func (m *Manager) Save(session Session) error {
	userJSON, err := json.Marshal(session.User)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}

	if err := m.store.Set(KeyToken, session.Token); err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	if err := m.store.Set(KeyUser, string(userJSON)); err != nil {
		return fmt.Errorf("save user: %w", err)
	}
	if err := m.store.Set(KeyExpiry, session.ExpiresAt.UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("save expiry: %w", err)
	}

	m.logger.Info("Auth session saved",
		zap.Int64("user_id", session.User.ID),
		zap.Time("expires_at", session.ExpiresAt))
	return nil
}

// Load returns the stored session, or false when any key is missing or
// unreadable.
func (m *Manager) Load() (Session, bool) {
	token, ok, err := m.store.Get(KeyToken)
	if err != nil || !ok || token == "" {
		return Session{}, false
	}

	var session Session
	session.Token = token

	userJSON, ok, err := m.store.Get(KeyUser)
	if err != nil || !ok {
		return Session{}, false
	}
	if err := json.Unmarshal([]byte(userJSON), &session.User); err != nil {
		m.logger.Warn("Stored user record is corrupt", zap.Error(err))
		return Session{}, false
	}

	expiryRaw, ok, err := m.store.Get(KeyExpiry)
	if err == nil && ok {
		if expiresAt, parseErr := time.Parse(time.RFC3339, expiryRaw); parseErr == nil {
			session.ExpiresAt = expiresAt
		}
	}
	if session.ExpiresAt.IsZero() {
		// Older sessions stored no expiry; fall back to the token's exp claim.
		session.ExpiresAt = tokenExpiry(token)
	}

	return session, true
}

// Clear removes all three keys.
func (m *Manager) Clear() {
	for _, key := range []string{KeyToken, KeyUser, KeyExpiry} {
		if err := m.store.Delete(key); err != nil {
			m.logger.Warn("Failed to clear auth key",
				zap.String("key", key),
				zap.Error(err))
		}
	}
}

// IsAuthenticated reports whether a live session is stored. An expired
// session is cleared on the spot, so the next check starts from nothing.
func (m *Manager) IsAuthenticated() bool {
	session, ok := m.Load()
	if !ok {
		return false
	}

	if !session.ExpiresAt.IsZero() && !session.ExpiresAt.After(m.now()) {
		m.logger.Info("Auth session expired, clearing stored state",
			zap.Int64("user_id", session.User.ID),
			zap.Time("expired_at", session.ExpiresAt))
		m.Clear()
		return false
	}

	return true
}

// Token returns the bearer token of the current session, empty when not
// authenticated.
func (m *Manager) Token() string {
	if !m.IsAuthenticated() {
		return ""
	}
	session, _ := m.Load()
	return session.Token
}

// tokenExpiry extracts the exp claim without verifying the signature.
// Verification is the server's job; the client only needs the timestamp.
func tokenExpiry(token string) time.Time {
	claims := jwt.RegisteredClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(token, &claims)
	if err != nil || claims.ExpiresAt == nil {
		return time.Time{}
	}
	return claims.ExpiresAt.Time
}

package auth

import (
	"context"

	"xml-compare-api/core/session"
	"xml-compare-api/core/validate"

	"go.uber.org/zap"
)

// Client performs the remote login handshake.
type Client interface {
	Authenticate(ctx context.Context, loginURL, username, password string) (session.Session, error)
}

// Service handles credential session lifecycle.
type Service struct {
	client Client
	store  *session.Store
	logger *zap.Logger
}

// NewService creates a new auth service.
func NewService(client Client, store *session.Store, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		store:  store,
		logger: logger,
	}
}

// Login authenticates against loginURL and stores the resulting session.
func (s *Service) Login(ctx context.Context, loginURL, username, password string) (session.Session, error) {
	if err := validate.LoginURL(loginURL); err != nil {
		return session.Session{}, err
	}

	sess, err := s.client.Authenticate(ctx, loginURL, username, password)
	if err != nil {
		return session.Session{}, err
	}

	s.store.Put(sess)
	s.logger.Info("Session created",
		zap.String("session_id", sess.ID),
		zap.Time("expires_at", sess.ExpiresAt))

	return sess, nil
}

// Logout removes a session. It reports whether the session existed.
func (s *Service) Logout(id string) bool {
	if _, ok := s.store.Get(id); !ok {
		return false
	}
	s.store.Remove(id)
	s.logger.Info("Session removed", zap.String("session_id", id))
	return true
}

// Session returns a stored session by id.
func (s *Service) Session(id string) (session.Session, bool) {
	return s.store.Get(id)
}

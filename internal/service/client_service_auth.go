package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/idea-brand-coach/internal/adapter"
	"github.com/MKhiriev/idea-brand-coach/internal/logger"
	"github.com/MKhiriev/idea-brand-coach/internal/store"
	"github.com/MKhiriev/idea-brand-coach/models"
)

type clientAuthService struct {
	sessions store.LocalSessionRepository
	adapter  adapter.ServerAdapter
	logger   *logger.Logger
}

func NewClientAuthService(sessions store.LocalSessionRepository, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{sessions: sessions, adapter: serverAdapter, logger: logger}
}

func (a *clientAuthService) Register(ctx context.Context, user models.User) (models.LocalSession, error) {
	token, err := a.adapter.Register(ctx, user)
	if err != nil {
		return models.LocalSession{}, fmt.Errorf("%w: %w", ErrRegisterOnServer, mapAdapterError(err))
	}
	return a.remember(ctx, token)
}

func (a *clientAuthService) Login(ctx context.Context, user models.User) (models.LocalSession, error) {
	token, err := a.adapter.Login(ctx, user)
	if err != nil {
		return models.LocalSession{}, fmt.Errorf("%w: %w", ErrLoginOnServer, mapAdapterError(err))
	}
	return a.remember(ctx, token)
}

func (a *clientAuthService) remember(ctx context.Context, token models.Token) (models.LocalSession, error) {
	session := models.LocalSession{UserID: token.UserID, Token: token.SignedString}
	if err := a.sessions.SaveSession(ctx, session); err != nil {
		return models.LocalSession{}, fmt.Errorf("saving local session: %w", err)
	}

	a.adapter.SetToken(session.Token)
	logger.FromContext(ctx).Info().Str("func", "clientAuthService.remember").Int64("user_id", session.UserID).Msg("logged in")
	return session, nil
}

func (a *clientAuthService) Restore(ctx context.Context) (models.LocalSession, error) {
	session, err := a.sessions.LoadSession(ctx)
	if errors.Is(err, store.ErrNoLocalSession) {
		return models.LocalSession{}, ErrNotLoggedIn
	}
	if err != nil {
		return models.LocalSession{}, fmt.Errorf("loading local session: %w", err)
	}

	a.adapter.SetToken(session.Token)
	return session, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	a.adapter.SetToken("")
	if err := a.sessions.ClearSession(ctx); err != nil {
		return fmt.Errorf("clearing local session: %w", err)
	}
	return nil
}

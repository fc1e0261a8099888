package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/idea-brand-coach/internal/config"
	"github.com/MKhiriev/idea-brand-coach/internal/logger"
	"github.com/MKhiriev/idea-brand-coach/internal/store"
	"github.com/MKhiriev/idea-brand-coach/internal/utils"
	"github.com/MKhiriev/idea-brand-coach/models"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// authService registers users, checks passwords with bcrypt and issues the
// HS256 tokens the clients send as bearer tokens.
type authService struct {
	userRepository store.UserRepository

	tokenSignKey  string
	tokenIssuer   string
	tokenDuration time.Duration

	// bcryptCost is lowered by tests only.
	bcryptCost int

	logger *logger.Logger
}

func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		bcryptCost:     bcrypt.DefaultCost,
		logger:         logger,
	}
}

// credentials normalizes the login and rejects empty credentials.
func credentials(ctx context.Context, user models.User, funcName string) (models.User, error) {
	user.Login = strings.TrimSpace(user.Login)
	user.Name = strings.TrimSpace(user.Name)
	if user.Login == "" || user.Password == "" {
		logger.FromContext(ctx).Info().Str("func", funcName).Str("login", user.Login).Msg("empty login or password")
		return models.User{}, ErrInvalidDataProvided
	}
	return user, nil
}

// RegisterUser stores a new user with a bcrypt hash of the password. A taken
// login surfaces as store.ErrLoginAlreadyExists.
func (a *authService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	user, err := credentials(ctx, user, "authService.RegisterUser")
	if err != nil {
		return models.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), a.bcryptCost)
	if err != nil {
		// bcrypt only fails for passwords longer than 72 bytes
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	user.PasswordHash = string(hash)
	user.Password = ""

	registered, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		return models.User{}, fmt.Errorf("creating user: %w", err)
	}

	logger.FromContext(ctx).Info().Str("func", "authService.RegisterUser").Int64("user_id", registered.UserID).Msg("user registered")
	return registered, nil
}

// Login answers ErrWrongPassword for an unknown login and for a wrong
// password alike.
func (a *authService) Login(ctx context.Context, user models.User) (models.User, error) {
	user, err := credentials(ctx, user, "authService.Login")
	if err != nil {
		return models.User{}, err
	}
	log := logger.FromContext(ctx)

	found, err := a.userRepository.FindUserByLogin(ctx, user.Login)
	switch {
	case errors.Is(err, store.ErrNoUserWasFound):
		log.Info().Str("func", "authService.Login").Str("login", user.Login).Msg("unknown login")
		return models.User{}, ErrWrongPassword
	case err != nil:
		return models.User{}, fmt.Errorf("finding user: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte(user.Password)); err != nil {
		log.Info().Str("func", "authService.Login").Int64("user_id", found.UserID).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	found.PasswordHash = ""
	return found, nil
}

func (a *authService) CreateToken(_ context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}
	return token, nil
}

// ParseToken returns ErrTokenIsExpired for a well-formed token past its
// expiry and ErrTokenIsExpiredOrInvalid for anything else that fails.
func (a *authService) ParseToken(_ context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return models.Token{}, ErrTokenIsExpired
	case err != nil:
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}
	return token, nil
}

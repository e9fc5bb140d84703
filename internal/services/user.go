package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aaravmahajanofficial/cellsync-pos/internal/errors"
	"github.com/aaravmahajanofficial/cellsync-pos/internal/models"
	repository "github.com/aaravmahajanofficial/cellsync-pos/internal/repositories"
	"github.com/aaravmahajanofficial/cellsync-pos/internal/session"
	"github.com/aaravmahajanofficial/cellsync-pos/internal/utils"
	"github.com/go-playground/validator/v10"
)

// AuthAPI is the authentication part of the backend client.
type AuthAPI interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
	Me(ctx context.Context) (*models.User, error)
	Logout(ctx context.Context) error
}

type AuthService struct {
	api      AuthAPI
	sessions *session.Manager
	limiter  repository.LoginLimiter
	validate *validator.Validate
}

// NewAuthService wires login to the session. limiter may be nil.
func NewAuthService(api AuthAPI, sessions *session.Manager, limiter repository.LoginLimiter) *AuthService {
	return &AuthService{
		api:      api,
		sessions: sessions,
		limiter:  limiter,
		validate: validator.New(),
	}
}

// Login authenticates against the backend and stores the token with the display
// name. It returns the name that was stored.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	req := &models.LoginRequest{Email: email, Password: password}

	if err := utils.ValidateStruct(s.validate, req); err != nil {
		return "", err
	}

	if s.limiter != nil {
		allowed, _, retryAfter, err := s.limiter.Allow(ctx, email)
		if err != nil {
			// fail open
			slog.Warn("Login limiter unavailable", slog.String("error", err.Error()))
		} else if !allowed {
			return "", errors.TooManyRequestsError("Too many login attempts. Please try again later.").
				WithDetail(fmt.Sprintf("retry after %s", retryAfter.Round(time.Second)))
		}
	}

	resp, err := s.api.Login(ctx, req)
	if err != nil {
		return "", err
	}

	name := resp.DisplayName(email)

	if err := s.sessions.Login(ctx, resp.Token, name); err != nil {
		return "", errors.InternalError("Failed to save session").WithError(err)
	}

	if s.limiter != nil {
		if err := s.limiter.Reset(ctx, email); err != nil {
			slog.Warn("Failed to reset login attempts", slog.String("error", err.Error()))
		}
	}

	slog.Info("User logged in", slog.String("user", name))

	return name, nil
}

// Logout tells the backend when it can and always clears the local session.
func (s *AuthService) Logout(ctx context.Context) error {
	if ok, _ := s.sessions.Authenticated(ctx); ok {
		if err := s.api.Logout(ctx); err != nil {
			slog.Warn("Backend logout failed", slog.String("error", err.Error()))
		}
	}

	if err := s.sessions.Logout(ctx); err != nil {
		return errors.InternalError("Failed to clear session").WithError(err)
	}

	return nil
}

// CurrentUser returns the stored display name, or UNAUTHORIZED without a session.
func (s *AuthService) CurrentUser(ctx context.Context) (string, error) {
	ok, err := s.sessions.Authenticated(ctx)
	if err != nil {
		return "", errors.InternalError("Failed to read session").WithError(err)
	}

	if !ok {
		return "", errors.UnauthorizedError("Not logged in")
	}

	name, err := s.sessions.UserName(ctx)
	if err != nil {
		return "", errors.InternalError("Failed to read session").WithError(err)
	}

	return name, nil
}

// Profile asks the backend who the token belongs to.
func (s *AuthService) Profile(ctx context.Context) (*models.User, error) {
	return s.api.Me(ctx)
}

package services

import (
	"context"
	"time"

	"github.com/SscSPs/debt_tracker_app/internal/core/domain"
)

// TokenSvcFacade issues the bearer tokens handed out on login.
type TokenSvcFacade interface {
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}

// GoogleOAuthHandlerSvcFacade defines the interface for Google OAuth operations.
type GoogleOAuthHandlerSvcFacade interface {
	// Enabled reports whether Google sign-in is configured.
	Enabled() bool

	// ExchangeCodeForIdentity trades an authorization code for a verified Google identity.
	ExchangeCodeForIdentity(ctx context.Context, code string) (*domain.GoogleIdentity, error)
}

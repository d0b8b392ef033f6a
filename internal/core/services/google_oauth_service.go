package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/debt_tracker_app/internal/core/domain"
	portssvc "github.com/SscSPs/debt_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/debt_tracker_app/internal/platform/config"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

var errGoogleNotConfigured = errors.New("google sign-in is not configured")

// googleOAuthHandlerService implements the GoogleOAuthHandlerSvcFacade.
type googleOAuthHandlerService struct {
	cfg          *config.Config
	oauth2Config *oauth2.Config

	exchange        func(ctx context.Context, code string) (*oauth2.Token, error)
	validateIDToken func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)
}

// NewGoogleOAuthHandlerService creates a new instance of googleOAuthHandlerService.
func NewGoogleOAuthHandlerService(cfg *config.Config) portssvc.GoogleOAuthHandlerSvcFacade {
	s := &googleOAuthHandlerService{
		cfg: cfg,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
		validateIDToken: idtoken.Validate,
	}
	s.exchange = func(ctx context.Context, code string) (*oauth2.Token, error) {
		return s.oauth2Config.Exchange(ctx, code)
	}
	return s
}

var _ portssvc.GoogleOAuthHandlerSvcFacade = (*googleOAuthHandlerService)(nil)

func (s *googleOAuthHandlerService) Enabled() bool {
	return s.cfg.GoogleOAuthEnabled()
}

// ExchangeCodeForIdentity exchanges the code and verifies the returned ID token against our client ID.
func (s *googleOAuthHandlerService) ExchangeCodeForIdentity(ctx context.Context, code string) (*domain.GoogleIdentity, error) {
	if !s.Enabled() {
		return nil, errGoogleNotConfigured
	}

	token, err := s.exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange oauth code for token: %w", err)
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return nil, errors.New("google token response carried no id_token")
	}

	payload, err := s.validateIDToken(ctx, rawIDToken, s.cfg.GoogleClientID)
	if err != nil {
		return nil, fmt.Errorf("google ID token validation failed: %w", err)
	}

	identity := &domain.GoogleIdentity{Subject: payload.Subject}
	if email, ok := payload.Claims["email"].(string); ok {
		identity.Email = email
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok {
		identity.EmailVerified = verified
	}
	if name, ok := payload.Claims["name"].(string); ok {
		identity.Name = name
	}
	return identity, nil
}

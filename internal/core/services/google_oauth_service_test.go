package services

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/debt_tracker_app/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

func newTestGoogleService(t *testing.T) *googleOAuthHandlerService {
	t.Helper()
	cfg := &config.Config{
		GoogleClientID:     "client-id",
		GoogleClientSecret: "secret",
		GoogleRedirectURL:  "http://localhost/callback",
	}
	return NewGoogleOAuthHandlerService(cfg).(*googleOAuthHandlerService)
}

func TestExchangeCodeForIdentity(t *testing.T) {
	svc := newTestGoogleService(t)
	svc.exchange = func(_ context.Context, code string) (*oauth2.Token, error) {
		assert.Equal(t, "auth-code", code)
		tok := &oauth2.Token{AccessToken: "access"}
		return tok.WithExtra(map[string]any{"id_token": "raw-id-token"}), nil
	}
	svc.validateIDToken = func(_ context.Context, idToken, audience string) (*idtoken.Payload, error) {
		assert.Equal(t, "raw-id-token", idToken)
		assert.Equal(t, "client-id", audience)
		return &idtoken.Payload{
			Subject: "sub-1",
			Claims:  map[string]any{"email": "ana@example.com", "email_verified": true, "name": "Ana"},
		}, nil
	}

	identity, err := svc.ExchangeCodeForIdentity(context.Background(), "auth-code")

	require.NoError(t, err)
	assert.Equal(t, "sub-1", identity.Subject)
	assert.Equal(t, "ana@example.com", identity.Email)
	assert.True(t, identity.EmailVerified)
	assert.Equal(t, "Ana", identity.Name)
}

func TestExchangeCodeForIdentity_Failures(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		svc := NewGoogleOAuthHandlerService(&config.Config{}).(*googleOAuthHandlerService)
		assert.False(t, svc.Enabled())
		_, err := svc.ExchangeCodeForIdentity(context.Background(), "code")
		assert.ErrorIs(t, err, errGoogleNotConfigured)
	})

	t.Run("exchange error", func(t *testing.T) {
		svc := newTestGoogleService(t)
		boom := errors.New("invalid_grant")
		svc.exchange = func(context.Context, string) (*oauth2.Token, error) { return nil, boom }
		_, err := svc.ExchangeCodeForIdentity(context.Background(), "code")
		assert.ErrorIs(t, err, boom)
	})

	t.Run("missing id token", func(t *testing.T) {
		svc := newTestGoogleService(t)
		svc.exchange = func(context.Context, string) (*oauth2.Token, error) {
			return &oauth2.Token{AccessToken: "access"}, nil
		}
		_, err := svc.ExchangeCodeForIdentity(context.Background(), "code")
		assert.Error(t, err)
	})

	t.Run("invalid id token", func(t *testing.T) {
		svc := newTestGoogleService(t)
		svc.exchange = func(context.Context, string) (*oauth2.Token, error) {
			tok := &oauth2.Token{AccessToken: "access"}
			return tok.WithExtra(map[string]any{"id_token": "forged"}), nil
		}
		svc.validateIDToken = func(context.Context, string, string) (*idtoken.Payload, error) {
			return nil, errors.New("audience mismatch")
		}
		_, err := svc.ExchangeCodeForIdentity(context.Background(), "code")
		assert.ErrorContains(t, err, "audience mismatch")
	})
}

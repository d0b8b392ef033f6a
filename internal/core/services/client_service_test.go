package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/debt_tracker_app/internal/apperrors"
	"github.com/SscSPs/debt_tracker_app/internal/core/domain"
	"github.com/SscSPs/debt_tracker_app/internal/core/services"
	"github.com/SscSPs/debt_tracker_app/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestClientService_CreateClient(t *testing.T) {
	ctx := context.Background()
	repo := new(MockClientRepository)
	svc := services.NewClientService(repo)

	repo.On("SaveClient", ctx, mock.MatchedBy(func(c domain.Client) bool {
		return c.Name == "Ana" && c.Phone != nil && *c.Phone == "555" && c.Email == nil && c.TotalDebt.IsZero()
	})).Return(nil).Once()

	client, err := svc.CreateClient(ctx, dto.CreateClientRequest{Name: "  Ana ", Phone: strPtr(" 555 "), Email: strPtr("  ")})

	require.NoError(t, err)
	assert.NotEmpty(t, client.ClientID)
	assert.False(t, client.CreatedAt.IsZero())
	repo.AssertExpectations(t)
}

func TestClientService_CreateClient_NameRequired(t *testing.T) {
	repo := new(MockClientRepository)
	svc := services.NewClientService(repo)

	_, err := svc.CreateClient(context.Background(), dto.CreateClientRequest{Name: "   "})

	appErr := requireAppError(t, err, apperrors.CodeNameRequired)
	assert.Equal(t, []string{"name"}, appErr.Fields)
	repo.AssertNotCalled(t, "SaveClient", mock.Anything, mock.Anything)
}

func TestClientService_GetClientByID_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := new(MockClientRepository)
	svc := services.NewClientService(repo)
	repo.On("FindClientByID", ctx, "nope").Return(nil, apperrors.ErrNotFound).Once()

	_, err := svc.GetClientByID(ctx, "nope")

	requireAppError(t, err, apperrors.CodeNotFound)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestClientService_UpdateClient(t *testing.T) {
	ctx := context.Background()
	repo := new(MockClientRepository)
	svc := services.NewClientService(repo)

	existing := &domain.Client{ClientID: "c1", Name: "Ana", Phone: strPtr("555"), TotalDebt: dec("40")}
	repo.On("FindClientByID", ctx, "c1").Return(existing, nil).Once()
	repo.On("UpdateClient", ctx, mock.MatchedBy(func(c domain.Client) bool {
		return c.Name == "Ana María" && c.Phone == nil && c.Address != nil && *c.Address == "Calle 1" && c.TotalDebt.Equal(dec("40"))
	})).Return(nil).Once()

	client, err := svc.UpdateClient(ctx, "c1", dto.UpdateClientRequest{
		Name:    strPtr("Ana María"),
		Phone:   strPtr(""),
		Address: strPtr(" Calle 1 "),
	})

	require.NoError(t, err)
	assert.Equal(t, "Ana María", client.Name)
	repo.AssertExpectations(t)
}

func TestClientService_UpdateClient_BlankName(t *testing.T) {
	ctx := context.Background()
	repo := new(MockClientRepository)
	svc := services.NewClientService(repo)
	repo.On("FindClientByID", ctx, "c1").Return(&domain.Client{ClientID: "c1", Name: "Ana"}, nil).Once()

	_, err := svc.UpdateClient(ctx, "c1", dto.UpdateClientRequest{Name: strPtr(" ")})

	requireAppError(t, err, apperrors.CodeNameRequired)
	repo.AssertNotCalled(t, "UpdateClient", mock.Anything, mock.Anything)
}

func TestClientService_ListClients_Error(t *testing.T) {
	ctx := context.Background()
	repo := new(MockClientRepository)
	svc := services.NewClientService(repo)
	dbErr := errors.New("db down")
	repo.On("ListClients", ctx).Return(nil, dbErr).Once()

	clients, err := svc.ListClients(ctx)

	assert.Nil(t, clients)
	assert.ErrorIs(t, err, dbErr)
}

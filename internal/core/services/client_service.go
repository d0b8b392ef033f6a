package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/debt_tracker_app/internal/apperrors"
	"github.com/SscSPs/debt_tracker_app/internal/core/domain"
	portsrepo "github.com/SscSPs/debt_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/debt_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/debt_tracker_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type clientService struct {
	BaseService
	clientRepo portsrepo.ClientRepositoryFacade
	now        func() time.Time
}

func NewClientService(clientRepo portsrepo.ClientRepositoryFacade) portssvc.ClientSvcFacade {
	return &clientService{clientRepo: clientRepo, now: systemClock}
}

var _ portssvc.ClientSvcFacade = (*clientService)(nil)

func (s *clientService) CreateClient(ctx context.Context, req dto.CreateClientRequest) (*domain.Client, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationError(apperrors.CodeNameRequired, "name is required", "name")
	}

	now := s.now()
	client := domain.Client{
		ClientID:   uuid.NewString(),
		Name:       name,
		Phone:      trimmedOrNil(req.Phone),
		Email:      trimmedOrNil(req.Email),
		Address:    trimmedOrNil(req.Address),
		TotalDebt:  decimal.Zero,
		Timestamps: domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}

	if err := s.clientRepo.SaveClient(ctx, client); err != nil {
		s.LogError(ctx, err, "Failed to save client in repository")
		return nil, err
	}

	s.LogInfo(ctx, "Client created successfully", slog.String("client_id", client.ClientID))
	return &client, nil
}

func (s *clientService) GetClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(apperrors.CodeNotFound, "client not found")
		}
		s.LogError(ctx, err, "Failed to find client by ID in repository", slog.String("client_id", clientID))
		return nil, err
	}
	return client, nil
}

func (s *clientService) ListClients(ctx context.Context) ([]domain.Client, error) {
	clients, err := s.clientRepo.ListClients(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list clients from repository")
		return nil, err
	}
	return clients, nil
}

func (s *clientService) UpdateClient(ctx context.Context, clientID string, req dto.UpdateClientRequest) (*domain.Client, error) {
	client, err := s.GetClientByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperrors.NewValidationError(apperrors.CodeNameRequired, "name is required", "name")
		}
		client.Name = name
	}
	if req.Phone != nil {
		client.Phone = trimmedOrNil(req.Phone)
	}
	if req.Email != nil {
		client.Email = trimmedOrNil(req.Email)
	}
	if req.Address != nil {
		client.Address = trimmedOrNil(req.Address)
	}
	client.UpdatedAt = s.now()

	if err := s.clientRepo.UpdateClient(ctx, *client); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(apperrors.CodeNotFound, "client not found")
		}
		s.LogError(ctx, err, "Failed to update client in repository", slog.String("client_id", clientID))
		return nil, err
	}

	s.LogInfo(ctx, "Client updated successfully", slog.String("client_id", clientID))
	return client, nil
}

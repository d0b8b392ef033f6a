package services

import (
	"context"

	"github.com/SscSPs/debt_tracker_app/internal/core/domain"
	"github.com/SscSPs/debt_tracker_app/internal/dto"
)

type ClientReaderSvc interface {
	GetClientByID(ctx context.Context, clientID string) (*domain.Client, error)
	ListClients(ctx context.Context) ([]domain.Client, error)
}

type ClientWriterSvc interface {
	// CreateClient starts the client with a zero balance.
	CreateClient(ctx context.Context, req dto.CreateClientRequest) (*domain.Client, error)

	// UpdateClient changes contact details only.
	UpdateClient(ctx context.Context, clientID string, req dto.UpdateClientRequest) (*domain.Client, error)
}

type ClientSvcFacade interface {
	ClientReaderSvc
	ClientWriterSvc
}

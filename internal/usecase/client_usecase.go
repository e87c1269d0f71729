package usecase

import (
	"context"
	"time"

	"salesboard/internal/domain/entity"
)

// CreateClientInput holds the fields accepted when registering a client
type CreateClientInput struct {
	Name      string
	Email     string
	CPF       *string
	BirthDate *time.Time
}

// UpdateClientInput holds a partial client update. Nil fields are left untouched.
type UpdateClientInput struct {
	Name      *string
	Email     *string
	CPF       *string
	BirthDate *time.Time
}

// ClientUsecase defines the interface for client management use cases
type ClientUsecase interface {
	// CreateClient registers a new client
	CreateClient(ctx context.Context, input *CreateClientInput) (*entity.Client, error)

	// GetClient retrieves a client by ID
	GetClient(ctx context.Context, id int64) (*entity.Client, error)

	// ListClients retrieves all clients
	ListClients(ctx context.Context) ([]*entity.Client, error)

	// UpdateClient applies a partial update
	UpdateClient(ctx context.Context, id int64, input *UpdateClientInput) (*entity.Client, error)

	// DeleteClient removes a client
	DeleteClient(ctx context.Context, id int64) error
}

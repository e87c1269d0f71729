// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"salesboard/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for client persistence.
var (
	// ErrClientNotFound is returned when a client is not found.
	ErrClientNotFound = errors.New("client not found")
	// ErrDuplicateCPF is returned when another client already uses the CPF.
	ErrDuplicateCPF = errors.New("cpf already exists")
)

// ClientRepository defines the interface for client-related database operations.
type ClientRepository interface {
	// CreateClient persists a new client and fills its generated ID.
	CreateClient(ctx context.Context, client *entity.Client) error

	// FindClientByID retrieves a client by its ID.
	FindClientByID(ctx context.Context, id int64) (*entity.Client, error)

	// ListClients retrieves every client ordered by ID.
	ListClients(ctx context.Context) ([]*entity.Client, error)

	// UpdateClient overwrites all columns of an existing client.
	UpdateClient(ctx context.Context, client *entity.Client) error

	// DeleteClient removes a client by its ID. Sales referencing it are kept.
	DeleteClient(ctx context.Context, id int64) error
}

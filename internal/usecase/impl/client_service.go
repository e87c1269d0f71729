package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "salesboard/internal/delivery/context"
	"salesboard/internal/domain/entity"
	domainerrors "salesboard/internal/domain/errors"
	"salesboard/internal/domain/repository"
	"salesboard/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const maxCPFLength = 11

// clientService implements the ClientUsecase interface.
type clientService struct {
	clientRepo repository.ClientRepository
	refresher  usecase.DashboardRefresher
	logger     *slog.Logger
}

// ClientServiceParams holds dependencies for ClientService, injected by Fx.
type ClientServiceParams struct {
	fx.In

	ClientRepo repository.ClientRepository
	Refresher  usecase.DashboardRefresher
	Logger     *slog.Logger
}

// NewClientService is the constructor for clientService.
func NewClientService(params ClientServiceParams) usecase.ClientUsecase {
	return &clientService{
		clientRepo: params.ClientRepo,
		refresher:  params.Refresher,
		logger:     params.Logger,
	}
}

func (srv *clientService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateClient registers a new client.
func (srv *clientService) CreateClient(ctx context.Context, input *usecase.CreateClientInput) (*entity.Client, error) {
	client := &entity.Client{
		Name:      strings.TrimSpace(input.Name),
		Email:     strings.TrimSpace(input.Email),
		CPF:       normalizeCPF(input.CPF),
		BirthDate: input.BirthDate,
	}

	if err := validateClient(client); err != nil {
		return nil, err
	}

	if err := srv.clientRepo.CreateClient(ctx, client); err != nil {
		if errors.Is(err, repository.ErrDuplicateCPF) {
			return nil, domainerrors.ErrCPFAlreadyExists.WrapMessage("create client")
		}

		return nil, errors.Wrap(err, "failed to create client")
	}

	srv.log(ctx).Info("Client created", slog.Int64("clientID", client.ID))
	refreshDashboard(ctx, srv.refresher, srv.logger)

	return client, nil
}

// GetClient retrieves a client by ID.
func (srv *clientService) GetClient(ctx context.Context, id int64) (*entity.Client, error) {
	client, err := srv.clientRepo.FindClientByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrClientNotFound) {
			return nil, domainerrors.ErrClientNotFound
		}

		return nil, errors.Wrap(err, "failed to find client")
	}

	return client, nil
}

// ListClients retrieves all clients.
func (srv *clientService) ListClients(ctx context.Context) ([]*entity.Client, error) {
	clients, err := srv.clientRepo.ListClients(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list clients")
	}

	return clients, nil
}

// UpdateClient applies only the supplied fields.
func (srv *clientService) UpdateClient(ctx context.Context, id int64, input *usecase.UpdateClientInput) (*entity.Client, error) {
	client, err := srv.GetClient(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		client.Name = strings.TrimSpace(*input.Name)
	}
	if input.Email != nil {
		client.Email = strings.TrimSpace(*input.Email)
	}
	if cpf := normalizeCPF(input.CPF); cpf != nil {
		client.CPF = cpf
	}
	if input.BirthDate != nil {
		client.BirthDate = input.BirthDate
	}

	if err := validateClient(client); err != nil {
		return nil, err
	}

	if err := srv.clientRepo.UpdateClient(ctx, client); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateCPF):
			return nil, domainerrors.ErrCPFAlreadyExists.WrapMessage("update client")
		case errors.Is(err, repository.ErrClientNotFound):
			return nil, domainerrors.ErrClientNotFound
		default:
			return nil, errors.Wrap(err, "failed to update client")
		}
	}

	srv.log(ctx).Info("Client updated", slog.Int64("clientID", client.ID))
	refreshDashboard(ctx, srv.refresher, srv.logger)

	return client, nil
}

// DeleteClient removes a client. Sales referencing it are left in place.
func (srv *clientService) DeleteClient(ctx context.Context, id int64) error {
	if err := srv.clientRepo.DeleteClient(ctx, id); err != nil {
		if errors.Is(err, repository.ErrClientNotFound) {
			return domainerrors.ErrClientNotFound
		}

		return errors.Wrap(err, "failed to delete client")
	}

	srv.log(ctx).Info("Client deleted", slog.Int64("clientID", id))
	refreshDashboard(ctx, srv.refresher, srv.logger)

	return nil
}

func validateClient(client *entity.Client) error {
	if client.Name == "" {
		return domainerrors.ErrValidationFailed.WithDetails("nome é obrigatório")
	}
	if client.Email == "" {
		return domainerrors.ErrValidationFailed.WithDetails("email é obrigatório")
	}
	if client.CPF != nil && len(*client.CPF) > maxCPFLength {
		return domainerrors.ErrValidationFailed.WithDetails("cpf deve ter no máximo 11 caracteres")
	}

	return nil
}

// normalizeCPF trims the value and maps blank to absent so blanks never collide on the unique index.
func normalizeCPF(cpf *string) *string {
	if cpf == nil {
		return nil
	}

	trimmed := strings.TrimSpace(*cpf)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}

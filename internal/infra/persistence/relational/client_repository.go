package relational

import (
	"context"
	"time"

	"salesboard/internal/domain/entity"
	domainerrors "salesboard/internal/domain/errors"
	"salesboard/internal/domain/repository"
	"salesboard/internal/errors"
	"salesboard/internal/infra/persistence/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// clientRepository implements the repository.ClientRepository interface.
type clientRepository struct {
	db *gorm.DB
}

// NewClientRepository is the constructor for clientRepository.
func NewClientRepository(db *gorm.DB) repository.ClientRepository {
	return &clientRepository{db: db}
}

// CreateClient persists a new client.
func (repo *clientRepository) CreateClient(ctx context.Context, client *entity.Client) error {
	clientM := fromClientDomain(client)

	if err := repo.db.WithContext(ctx).Create(clientM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateCPF
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create client")
	}

	client.ID = clientM.ID

	return nil
}

// FindClientByID retrieves a client by its ID.
func (repo *clientRepository) FindClientByID(ctx context.Context, id int64) (*entity.Client, error) {
	var clientM model.ClientModel

	if err := repo.db.WithContext(ctx).
		Where("id_cliente = ?", id).
		First(&clientM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrClientNotFound
		}

		return nil, errors.Wrap(err, "failed to find client by ID")
	}

	return toClientDomain(&clientM), nil
}

// ListClients retrieves every client ordered by ID.
func (repo *clientRepository) ListClients(ctx context.Context) ([]*entity.Client, error) {
	var clientModels []*model.ClientModel

	if err := repo.db.WithContext(ctx).
		Order("id_cliente").
		Find(&clientModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list clients")
	}

	clients := make([]*entity.Client, 0, len(clientModels))
	for _, clientM := range clientModels {
		clients = append(clients, toClientDomain(clientM))
	}

	return clients, nil
}

// UpdateClient writes every column, including cleared optional ones.
func (repo *clientRepository) UpdateClient(ctx context.Context, client *entity.Client) error {
	clientM := fromClientDomain(client)

	result := repo.db.WithContext(ctx).
		Model(&model.ClientModel{}).
		Where("id_cliente = ?", client.ID).
		Select("nome", "email", "cpf", "data_nascimento").
		Updates(clientM)

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateCPF
		}

		return errors.Wrap(result.Error, "failed to update client")
	}

	if result.RowsAffected == 0 {
		return repository.ErrClientNotFound
	}

	return nil
}

// DeleteClient removes a client by its ID.
func (repo *clientRepository) DeleteClient(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id_cliente = ?", id).
		Delete(&model.ClientModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete client")
	}

	if result.RowsAffected == 0 {
		return repository.ErrClientNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toClientDomain(data *model.ClientModel) *entity.Client {
	if data == nil {
		return nil
	}

	client := &entity.Client{
		ID:    data.ID,
		Name:  data.Name,
		Email: data.Email,
		CPF:   data.CPF,
	}

	if data.BirthDate != nil {
		t := time.Time(*data.BirthDate)
		birthDate := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		client.BirthDate = &birthDate
	}

	return client
}

func fromClientDomain(data *entity.Client) *model.ClientModel {
	if data == nil {
		return nil
	}

	clientM := &model.ClientModel{
		ID:    data.ID,
		Name:  data.Name,
		Email: data.Email,
		CPF:   data.CPF,
	}

	if data.BirthDate != nil {
		birthDate := datatypes.Date(*data.BirthDate)
		clientM.BirthDate = &birthDate
	}

	return clientM
}

package relational

import (
	"context"

	"salesboard/internal/domain/entity"
	domainerrors "salesboard/internal/domain/errors"
	"salesboard/internal/domain/repository"
	"salesboard/internal/errors"
	"salesboard/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// saleRepository implements the repository.SaleRepository interface.
type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository is the constructor for saleRepository.
func NewSaleRepository(db *gorm.DB) repository.SaleRepository {
	return &saleRepository{db: db}
}

// CreateSale persists a new sale. The timestamp is assigned on insert.
func (repo *saleRepository) CreateSale(ctx context.Context, sale *entity.Sale) error {
	saleM := fromSaleDomain(sale)

	if err := repo.db.WithContext(ctx).Create(saleM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create sale")
	}

	sale.ID = saleM.ID
	sale.CreatedAt = saleM.CreatedAt

	return nil
}

// FindSaleByID retrieves a sale by its ID.
func (repo *saleRepository) FindSaleByID(ctx context.Context, id int64) (*entity.Sale, error) {
	var saleM model.SaleModel

	if err := repo.db.WithContext(ctx).
		Where("id_venda = ?", id).
		First(&saleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSaleNotFound
		}

		return nil, errors.Wrap(err, "failed to find sale by ID")
	}

	return toSaleDomain(&saleM), nil
}

// ListSales left joins clients and products so dangling references still list, with nil names.
func (repo *saleRepository) ListSales(ctx context.Context) ([]*entity.Sale, error) {
	var rows []*model.SaleWithNamesModel

	if err := repo.db.WithContext(ctx).
		Table("vendas").
		Select("vendas.*, clientes.nome AS client_name, produtos.nome AS product_name").
		Joins("LEFT JOIN clientes ON clientes.id_cliente = vendas.id_cliente").
		Joins("LEFT JOIN produtos ON produtos.id_produto = vendas.id_produto").
		Order("vendas.id_venda").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list sales")
	}

	sales := make([]*entity.Sale, 0, len(rows))
	for _, row := range rows {
		sale := toSaleDomain(&row.SaleModel)
		sale.ClientName = row.ClientName
		sale.ProductName = row.ProductName
		sales = append(sales, sale)
	}

	return sales, nil
}

// DeleteSale removes a sale by its ID.
func (repo *saleRepository) DeleteSale(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id_venda = ?", id).
		Delete(&model.SaleModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete sale")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSaleNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toSaleDomain(data *model.SaleModel) *entity.Sale {
	if data == nil {
		return nil
	}

	return &entity.Sale{
		ID:        data.ID,
		ClientID:  data.ClientID,
		ProductID: data.ProductID,
		Quantity:  data.Quantity,
		Total:     data.Total.Round(2),
		CreatedAt: data.CreatedAt.UTC(),
	}
}

func fromSaleDomain(data *entity.Sale) *model.SaleModel {
	if data == nil {
		return nil
	}

	return &model.SaleModel{
		ID:        data.ID,
		ClientID:  data.ClientID,
		ProductID: data.ProductID,
		Quantity:  data.Quantity,
		Total:     data.Total,
		CreatedAt: data.CreatedAt,
	}
}

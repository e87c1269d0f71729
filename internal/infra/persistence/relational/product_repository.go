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

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// CreateProduct persists a new product.
func (repo *productRepository) CreateProduct(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("preco e estoque não podem ser negativos")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID

	return nil
}

// FindProductByID retrieves a product by its ID.
func (repo *productRepository) FindProductByID(ctx context.Context, id int64) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("id_produto = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// ListProducts retrieves every product ordered by ID.
func (repo *productRepository) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Order("id_produto").
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// UpdateProduct replaces every column of the product.
func (repo *productRepository) UpdateProduct(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id_produto = ?", product.ID).
		Select("nome", "preco", "estoque", "descricao", "categoria").
		Updates(productM)

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WithDetails("preco e estoque não podem ser negativos")
		}

		return errors.Wrap(result.Error, "failed to update product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// DeleteProduct removes a product by its ID.
func (repo *productRepository) DeleteProduct(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id_produto = ?", id).
		Delete(&model.ProductModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// DecrementStock is a single conditional UPDATE so concurrent sales cannot oversell.
func (repo *productRepository) DecrementStock(ctx context.Context, id int64, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id_produto = ? AND estoque >= ?", id, quantity).
		UpdateColumn("estoque", gorm.Expr("estoque - ?", quantity))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to decrement stock")
	}

	if result.RowsAffected == 0 {
		return repository.ErrInsufficientStock
	}

	return nil
}

// RestoreStock adds quantity back. A missing product is not an error.
func (repo *productRepository) RestoreStock(ctx context.Context, id int64, quantity int) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id_produto = ?", id).
		UpdateColumn("estoque", gorm.Expr("estoque + ?", quantity))

	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to restore stock")
	}

	return result.RowsAffected > 0, nil
}

// --- Mapper Functions ---

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:          data.ID,
		Name:        data.Name,
		Price:       data.Price.Round(2),
		Stock:       data.Stock,
		Description: data.Description,
		Category:    data.Category,
	}
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:          data.ID,
		Name:        data.Name,
		Price:       data.Price,
		Stock:       data.Stock,
		Description: data.Description,
		Category:    data.Category,
	}
}

package relational

import (
	"context"

	"salesboard/internal/domain/entity"
	"salesboard/internal/domain/repository"
	"salesboard/internal/errors"
	"salesboard/internal/infra/persistence/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// summaryRepository implements repository.SummaryRepository with aggregate queries.
type summaryRepository struct {
	db *gorm.DB
}

// NewSummaryRepository is the constructor for summaryRepository.
func NewSummaryRepository(db *gorm.DB) repository.SummaryRepository {
	return &summaryRepository{db: db}
}

type topProductRow struct {
	Name     string `gorm:"column:name"`
	Quantity int64  `gorm:"column:quantity"`
}

// Summarize runs the counts, the revenue sum and the best sellers query.
func (repo *summaryRepository) Summarize(ctx context.Context, topN int) (*entity.DashboardSummary, error) {
	db := repo.db.WithContext(ctx)
	summary := &entity.DashboardSummary{}

	if err := db.Model(&model.ClientModel{}).Count(&summary.TotalClients).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count clients")
	}
	if err := db.Model(&model.ProductModel{}).Count(&summary.TotalProducts).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count products")
	}
	if err := db.Model(&model.SaleModel{}).Count(&summary.TotalSales).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count sales")
	}

	var revenue decimal.NullDecimal
	if err := db.Model(&model.SaleModel{}).
		Select("COALESCE(SUM(valor_total), 0)").
		Row().
		Scan(&revenue); err != nil {
		return nil, errors.Wrap(err, "failed to sum revenue")
	}
	summary.Revenue = revenue.Decimal.Round(2)

	var rows []topProductRow
	if err := db.Table("vendas").
		Select("produtos.nome AS name, SUM(vendas.quantidade) AS quantity").
		Joins("JOIN produtos ON produtos.id_produto = vendas.id_produto").
		Group("produtos.nome").
		Order("SUM(vendas.quantidade) DESC, produtos.nome ASC").
		Limit(topN).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to rank products")
	}

	summary.TopProducts = make([]entity.TopProduct, 0, len(rows))
	for _, row := range rows {
		summary.TopProducts = append(summary.TopProducts, entity.TopProduct{
			Name:     row.Name,
			Quantity: row.Quantity,
		})
	}

	return summary, nil
}

// CountClients returns the number of stored clients.
func (repo *summaryRepository) CountClients(ctx context.Context) (int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).Model(&model.ClientModel{}).Count(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count clients")
	}

	return total, nil
}

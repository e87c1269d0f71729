package docstore

import (
	"context"
	"time"

	"salesboard/config"
	"salesboard/internal/domain/entity"
	"salesboard/internal/domain/repository"
	"salesboard/internal/errors"
	"salesboard/internal/util"

	"github.com/shopspring/decimal"
)

// dashboardDocument is the stored shape of the summary. Revenue is a float so the document
// stays readable by other consumers of the collection.
type dashboardDocument struct {
	ID            string               `docstore:"_id"`
	TotalClients  int64                `docstore:"total_clientes"`
	TotalProducts int64                `docstore:"total_produtos"`
	TotalSales    int64                `docstore:"total_vendas"`
	Revenue       float64              `docstore:"receita_total"`
	TopProducts   []topProductDocument `docstore:"produtos_mais_vendidos"`
	UpdatedAt     time.Time            `docstore:"atualizado_em"`
	Revision      any                  `docstore:"DocstoreRevision"`
}

type topProductDocument struct {
	Name     string `docstore:"nome"`
	Quantity int64  `docstore:"total_vendido"`
}

// dashboardRepository implements repository.DashboardRepository.
type dashboardRepository struct {
	store      *Store
	collection string
}

// NewDashboardRepository is the constructor for dashboardRepository.
func NewDashboardRepository(store *Store, cfg *config.Config) repository.DashboardRepository {
	return &dashboardRepository{
		store:      store,
		collection: cfg.Docstore.Collection,
	}
}

// SaveDashboard replaces the document stored under entity.DashboardKey.
func (repo *dashboardRepository) SaveDashboard(ctx context.Context, summary *entity.DashboardSummary) error {
	coll, err := repo.store.Collection(ctx, repo.collection)
	if err != nil {
		return err
	}

	if err := coll.Put(ctx, toDashboardDocument(summary)); err != nil {
		return errors.Wrap(err, "failed to put dashboard document")
	}

	return nil
}

// FindDashboard reads the document stored under entity.DashboardKey.
func (repo *dashboardRepository) FindDashboard(ctx context.Context) (*entity.DashboardSummary, error) {
	coll, err := repo.store.Collection(ctx, repo.collection)
	if err != nil {
		return nil, err
	}

	doc := &dashboardDocument{ID: entity.DashboardKey}
	if err := coll.Get(ctx, doc); err != nil {
		if isNotFound(err) {
			return nil, repository.ErrDocumentNotFound
		}

		return nil, errors.Wrap(err, "failed to get dashboard document")
	}

	return toDashboardDomain(doc), nil
}

// --- Mapper Functions ---

func toDashboardDocument(summary *entity.DashboardSummary) *dashboardDocument {
	top := make([]topProductDocument, 0, len(summary.TopProducts))
	for _, p := range summary.TopProducts {
		top = append(top, topProductDocument{Name: p.Name, Quantity: p.Quantity})
	}

	return &dashboardDocument{
		ID:            entity.DashboardKey,
		TotalClients:  summary.TotalClients,
		TotalProducts: summary.TotalProducts,
		TotalSales:    summary.TotalSales,
		Revenue:       util.MoneyFloat(summary.Revenue),
		TopProducts:   top,
		UpdatedAt:     summary.UpdatedAt.UTC(),
	}
}

func toDashboardDomain(doc *dashboardDocument) *entity.DashboardSummary {
	top := make([]entity.TopProduct, 0, len(doc.TopProducts))
	for _, p := range doc.TopProducts {
		top = append(top, entity.TopProduct{Name: p.Name, Quantity: p.Quantity})
	}

	return &entity.DashboardSummary{
		TotalClients:  doc.TotalClients,
		TotalProducts: doc.TotalProducts,
		TotalSales:    doc.TotalSales,
		Revenue:       util.Money(decimal.NewFromFloat(doc.Revenue)),
		TopProducts:   top,
		UpdatedAt:     doc.UpdatedAt.UTC(),
	}
}

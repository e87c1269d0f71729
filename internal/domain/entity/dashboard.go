package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardKey is the fixed document key of the aggregate summary.
const DashboardKey = "dashboard_geral"

// ClientCounterKey is the document key of the standalone client counter.
const ClientCounterKey = "total_clientes"

// TopProductsLimit bounds the best sellers list.
const TopProductsLimit = 5

// DashboardSummary is the denormalized view over clients, products and sales.
type DashboardSummary struct {
	TotalClients  int64
	TotalProducts int64
	TotalSales    int64
	Revenue       decimal.Decimal
	TopProducts   []TopProduct
	UpdatedAt     time.Time
}

// TopProduct is one best seller entry.
type TopProduct struct {
	Name     string
	Quantity int64
}

package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleModel is the GORM-specific struct for the 'vendas' table.
// Client and product are plain columns. No foreign keys are declared so either side can be
// deleted while sales still point at it.
type SaleModel struct {
	ID        int64           `gorm:"column:id_venda;primaryKey;autoIncrement"`
	ClientID  int64           `gorm:"column:id_cliente;not null;index"`
	ProductID int64           `gorm:"column:id_produto;not null;index"`
	Quantity  int             `gorm:"column:quantidade;not null"`
	Total     decimal.Decimal `gorm:"column:valor_total;type:decimal(10,2);not null"`
	CreatedAt time.Time       `gorm:"column:data_venda;autoCreateTime"`
}

// TableName explicitly sets the table name for GORM.
func (SaleModel) TableName() string {
	return "vendas"
}

// SaleWithNamesModel is the row shape of the sale listing join.
type SaleWithNamesModel struct {
	SaleModel   `gorm:"embedded"`
	ClientName  *string `gorm:"column:client_name"`
	ProductName *string `gorm:"column:product_name"`
}

// AllModels lists the tables managed by AutoMigrate.
func AllModels() []any {
	return []any{&ClientModel{}, &ProductModel{}, &SaleModel{}}
}

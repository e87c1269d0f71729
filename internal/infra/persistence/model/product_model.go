package model

import "github.com/shopspring/decimal"

// ProductModel is the GORM-specific struct for the 'produtos' table.
type ProductModel struct {
	ID          int64           `gorm:"column:id_produto;primaryKey;autoIncrement"`
	Name        string          `gorm:"column:nome;type:varchar(100);not null"`
	Price       decimal.Decimal `gorm:"column:preco;type:decimal(10,2);not null;check:chk_produtos_preco,preco >= 0"`
	Stock       int             `gorm:"column:estoque;not null;default:0;check:chk_produtos_estoque,estoque >= 0"`
	Description *string         `gorm:"column:descricao;type:text"`
	Category    *string         `gorm:"column:categoria;type:varchar(50)"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "produtos"
}

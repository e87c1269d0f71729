// Package model holds the GORM table mappings.
package model

import "gorm.io/datatypes"

// ClientModel is the GORM-specific struct for the 'clientes' table.
type ClientModel struct {
	ID        int64           `gorm:"column:id_cliente;primaryKey;autoIncrement"`
	Name      string          `gorm:"column:nome;type:varchar(100);not null"`
	Email     string          `gorm:"column:email;type:varchar(100);not null"`
	CPF       *string         `gorm:"column:cpf;type:varchar(11);uniqueIndex:idx_clientes_cpf"`
	BirthDate *datatypes.Date `gorm:"column:data_nascimento"`
}

// TableName explicitly sets the table name for GORM.
func (ClientModel) TableName() string {
	return "clientes"
}

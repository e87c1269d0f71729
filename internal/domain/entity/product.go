package entity

import "github.com/shopspring/decimal"

// Product represents an item that can be sold.
type Product struct {
	ID          int64
	Name        string
	Price       decimal.Decimal // Unit price with two decimal places.
	Stock       int             // Units on hand, never negative.
	Description *string
	Category    *string
}

// HasStock reports whether quantity units can be taken from the product.
func (p *Product) HasStock(quantity int) bool {
	return quantity > 0 && p.Stock >= quantity
}

// TotalFor returns the price of quantity units.
func (p *Product) TotalFor(quantity int) decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(quantity)))
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale records a quantity of one product sold to one client.
type Sale struct {
	ID        int64
	ClientID  int64
	ProductID int64
	Quantity  int
	Total     decimal.Decimal // Product price times quantity when the sale was made.
	CreatedAt time.Time

	// Populated by listings only. Nil when the referenced row no longer exists.
	ClientName  *string
	ProductName *string
}

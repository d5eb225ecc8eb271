package domain

import "github.com/shopspring/decimal"

// CartItem is one line of the cart. Name and price are copied from the
// product when the line is created and are not re-synced afterwards.
type CartItem struct {
	ProductID int     `json:"productId" bson:"productId"`
	Name      string  `json:"name" bson:"name"`
	Price     float64 `json:"price" bson:"price"`
	Qty       int     `json:"qty" bson:"qty"`
}

// Subtotal returns price*qty for the line.
func (i CartItem) Subtotal() decimal.Decimal {
	return decimal.NewFromFloat(i.Price).Mul(decimal.NewFromInt(int64(i.Qty)))
}

// CartTotal sums price*qty over the items, rounded to two decimal places.
func CartTotal(items []CartItem) float64 {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total.Round(2).InexactFloat64()
}

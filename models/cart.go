package models

import "github.com/shopspring/decimal"

// CartLine points at the catalog entry, so price and name are always read
// from the authoritative product.
type CartLine struct {
	Product  *Product
	Quantity int
}

type CartSnapshotLine struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// CartSnapshot is the persisted form of a cart: product ids and quantities
// in insertion order.
type CartSnapshot struct {
	Items []CartSnapshotLine `json:"items"`
}

type CartItemView struct {
	Product  *Product        `json:"product"`
	Quantity int             `json:"quantity"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

type OrderSummary struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

type CartView struct {
	Items      []CartItemView  `json:"items"`
	TotalItems int             `json:"total_items"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Summary    OrderSummary    `json:"summary"`
}

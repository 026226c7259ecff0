package models

import "github.com/shopspring/decimal"

// CategoryAll is the selector that matches every category.
const CategoryAll = "All"

type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Category    string          `json:"category"`
	Rating      float64         `json:"rating"`
	InStock     bool            `json:"in_stock"`
}

// FilterCriteria narrows the catalog for display. A nil MaxPrice is unbounded.
type FilterCriteria struct {
	Category string
	Query    string
	MinPrice decimal.Decimal
	MaxPrice *decimal.Decimal
}

package services

import (
	"crypto-cart/models"
	"errors"
	"strings"

	"golang.org/x/text/cases"
)

var ErrInvalidPriceRange = errors.New("invalid price range")

// IsAllCategories reports whether selector is the catch-all category.
func IsAllCategories(selector string) bool {
	return selector == "" || strings.EqualFold(selector, models.CategoryAll)
}

// ValidateCriteria checks that the price interval is non-negative and
// ordered. FilterProducts does not require it.
func ValidateCriteria(criteria models.FilterCriteria) error {
	if criteria.MinPrice.IsNegative() {
		return ErrInvalidPriceRange
	}
	if criteria.MaxPrice != nil {
		if criteria.MaxPrice.IsNegative() || criteria.MinPrice.GreaterThan(*criteria.MaxPrice) {
			return ErrInvalidPriceRange
		}
	}
	return nil
}

// FilterProducts keeps the products matching category, free-text query and
// price interval, in catalog order.
func FilterProducts(catalog []*models.Product, criteria models.FilterCriteria) []*models.Product {
	fold := cases.Fold()
	query := fold.String(criteria.Query)

	result := []*models.Product{}
	for _, p := range catalog {
		if !IsAllCategories(criteria.Category) && p.Category != criteria.Category {
			continue
		}
		if query != "" && !matchesQuery(fold, p, query) {
			continue
		}
		if p.Price.LessThan(criteria.MinPrice) {
			continue
		}
		if criteria.MaxPrice != nil && p.Price.GreaterThan(*criteria.MaxPrice) {
			continue
		}
		result = append(result, p)
	}
	return result
}

func matchesQuery(fold cases.Caser, p *models.Product, query string) bool {
	return strings.Contains(fold.String(p.Name), query) ||
		strings.Contains(fold.String(p.Description), query) ||
		strings.Contains(fold.String(p.Category), query)
}

package services

import (
	"crypto-cart/models"
	"crypto-cart/repositories"
	"crypto-cart/utils"
	"math"
)

const (
	DefaultFeaturedLimit = 6
	DefaultRelatedLimit  = 4
	DefaultPageLimit     = 12
	MaxPageLimit         = 100
)

type ProductService struct {
	productRepo *repositories.ProductRepository
}

func NewProductService(productRepo *repositories.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// GetAllCategories returns the catch-all entry followed by every catalog
// category.
func (s *ProductService) GetAllCategories() []models.Category {
	categories := s.productRepo.Categories()
	total := 0
	for _, c := range categories {
		total += c.ProductCount
	}
	return append([]models.Category{{Name: models.CategoryAll, ProductCount: total}}, categories...)
}

func (s *ProductService) FilterProducts(criteria models.FilterCriteria, page, limit int) (*models.PaginationResponse, error) {
	if err := ValidateCriteria(criteria); err != nil {
		return nil, err
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}

	matches := FilterProducts(s.productRepo.FindAll(), criteria)
	total := len(matches)

	start, end := utils.PageBounds(total, page, limit)

	return &models.PaginationResponse{
		Success: true,
		Message: "Products retrieved successfully",
		Data:    matches[start:end],
		Meta: models.MetaData{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: int(math.Ceil(float64(total) / float64(limit))),
		},
	}, nil
}

func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.productRepo.FindByID(id)
}

func (s *ProductService) GetFeaturedProducts(limit int) []*models.Product {
	if limit < 1 {
		limit = DefaultFeaturedLimit
	}
	products := s.productRepo.FindAll()
	if len(products) > limit {
		products = products[:limit]
	}
	return products
}

// GetRelatedProducts lists other products of the same category in catalog
// order.
func (s *ProductService) GetRelatedProducts(id string, limit int) ([]*models.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if limit < 1 {
		limit = DefaultRelatedLimit
	}

	related := []*models.Product{}
	for _, p := range s.productRepo.FindAll() {
		if len(related) == limit {
			break
		}
		if p.Category == product.Category && p.ID != product.ID {
			related = append(related, p)
		}
	}
	return related, nil
}

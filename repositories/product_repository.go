package repositories

import (
	"bytes"
	"crypto-cart/models"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed catalog/products.yaml
var defaultCatalog []byte

var ErrProductNotFound = errors.New("product not found")

type catalogDocument struct {
	Products []catalogRecord `yaml:"products"`
}

type catalogRecord struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Price       string  `yaml:"price"`
	Image       string  `yaml:"image"`
	Category    string  `yaml:"category"`
	Rating      float64 `yaml:"rating"`
	InStock     bool    `yaml:"in_stock"`
}

// ProductRepository is the read-only catalog. Products are loaded once and
// handed out by pointer; callers must not mutate them.
type ProductRepository struct {
	products []*models.Product
	byID     map[string]*models.Product
}

// NewProductRepository loads the catalog from path, or from the embedded
// document when path is empty.
func NewProductRepository(path string) (*ProductRepository, error) {
	data := defaultCatalog
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog: %w", err)
		}
		data = raw
	}
	return ParseProductRepository(data)
}

func ParseProductRepository(data []byte) (*ProductRepository, error) {
	var doc catalogDocument
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	repo := &ProductRepository{
		products: make([]*models.Product, 0, len(doc.Products)),
		byID:     make(map[string]*models.Product, len(doc.Products)),
	}

	for i, rec := range doc.Products {
		product, err := rec.toProduct()
		if err != nil {
			return nil, fmt.Errorf("catalog entry %d: %w", i, err)
		}
		if _, exists := repo.byID[product.ID]; exists {
			return nil, fmt.Errorf("catalog entry %d: duplicate product id %q", i, product.ID)
		}
		repo.products = append(repo.products, product)
		repo.byID[product.ID] = product
	}

	return repo, nil
}

func (rec catalogRecord) toProduct() (*models.Product, error) {
	id := strings.TrimSpace(rec.ID)
	if id == "" {
		return nil, errors.New("product id is required")
	}
	if strings.TrimSpace(rec.Category) == "" {
		return nil, fmt.Errorf("product %s: category is required", id)
	}

	price, err := decimal.NewFromString(strings.TrimSpace(rec.Price))
	if err != nil {
		return nil, fmt.Errorf("product %s: invalid price %q: %w", id, rec.Price, err)
	}
	if price.IsNegative() {
		return nil, fmt.Errorf("product %s: price must not be negative", id)
	}
	if rec.Rating < 0 || rec.Rating > 5 {
		return nil, fmt.Errorf("product %s: rating must be between 0 and 5", id)
	}

	return &models.Product{
		ID:          id,
		Name:        rec.Name,
		Description: rec.Description,
		Price:       price,
		Image:       rec.Image,
		Category:    rec.Category,
		Rating:      rec.Rating,
		InStock:     rec.InStock,
	}, nil
}

// FindAll returns the catalog in its original order. The slice is a copy;
// the products are shared.
func (r *ProductRepository) FindAll() []*models.Product {
	out := make([]*models.Product, len(r.products))
	copy(out, r.products)
	return out
}

func (r *ProductRepository) FindByID(id string) (*models.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	return p, nil
}

// Categories lists the distinct categories in first-seen order.
func (r *ProductRepository) Categories() []models.Category {
	index := map[string]int{}
	categories := []models.Category{}
	for _, p := range r.products {
		i, ok := index[p.Category]
		if !ok {
			index[p.Category] = len(categories)
			categories = append(categories, models.Category{Name: p.Category, ProductCount: 1})
			continue
		}
		categories[i].ProductCount++
	}
	return categories
}

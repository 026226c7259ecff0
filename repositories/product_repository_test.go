package repositories

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProductRepository_EmbeddedCatalog(t *testing.T) {
	repo, err := NewProductRepository("")
	require.NoError(t, err)

	products := repo.FindAll()
	require.Len(t, products, 12)
	assert.Equal(t, "1", products[0].ID)
	assert.Equal(t, "12", products[11].ID)

	headphones, err := repo.FindByID("1")
	require.NoError(t, err)
	assert.Equal(t, "Electronics", headphones.Category)
	assert.True(t, decimal.RequireFromString("299.99").Equal(headphones.Price))
	assert.Same(t, products[0], headphones)
}

func TestProductRepository_FindAllReturnsCopy(t *testing.T) {
	repo, err := NewProductRepository("")
	require.NoError(t, err)

	products := repo.FindAll()
	products[0] = nil

	assert.NotNil(t, repo.FindAll()[0])
}

func TestProductRepository_FindByIDMissing(t *testing.T) {
	repo, err := NewProductRepository("")
	require.NoError(t, err)

	_, err = repo.FindByID("999")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestProductRepository_Categories(t *testing.T) {
	repo, err := ParseProductRepository([]byte(`
products:
  - {id: a, name: A, price: "1", category: Toys}
  - {id: b, name: B, price: "2", category: Books}
  - {id: c, name: C, price: "3", category: Toys}
`))
	require.NoError(t, err)

	categories := repo.Categories()
	require.Len(t, categories, 2)
	assert.Equal(t, "Toys", categories[0].Name)
	assert.Equal(t, 2, categories[0].ProductCount)
	assert.Equal(t, "Books", categories[1].Name)
	assert.Equal(t, 1, categories[1].ProductCount)
}

func TestParseProductRepository_Errors(t *testing.T) {
	tests := map[string]string{
		"missing id":       `products: [{name: A, price: "1", category: X}]`,
		"missing category": `products: [{id: a, price: "1"}]`,
		"bad price":        `products: [{id: a, price: "cheap", category: X}]`,
		"negative price":   `products: [{id: a, price: "-1", category: X}]`,
		"rating too high":  `products: [{id: a, price: "1", category: X, rating: 7}]`,
		"duplicate id":     `products: [{id: a, price: "1", category: X}, {id: a, price: "2", category: X}]`,
		"unknown field":    `products: [{id: a, price: "1", category: X, colour: red}]`,
	}

	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseProductRepository([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestNewProductRepository_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`products: [{id: x, name: X, price: "5.50", category: Misc, in_stock: true}]`), 0o600))

	repo, err := NewProductRepository(path)
	require.NoError(t, err)
	require.Len(t, repo.FindAll(), 1)
	assert.True(t, repo.FindAll()[0].InStock)

	_, err = NewProductRepository(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

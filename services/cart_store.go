package services

import (
	"context"
	"crypto-cart/models"
	"fmt"

	"github.com/shopspring/decimal"
)

// CartSaver receives the cart after every mutation.
type CartSaver interface {
	SaveCart(ctx context.Context, snapshot models.CartSnapshot) error
}

// CartSaverFunc adapts a function to CartSaver.
type CartSaverFunc func(ctx context.Context, snapshot models.CartSnapshot) error

func (f CartSaverFunc) SaveCart(ctx context.Context, snapshot models.CartSnapshot) error {
	return f(ctx, snapshot)
}

// ProductLookup resolves catalog products by id.
type ProductLookup interface {
	FindByID(id string) (*models.Product, error)
}

// CartStore holds the ordered lines of one cart. Every mutation is applied
// in memory first and then handed to the saver; the in-memory change stands
// even when saving fails. A CartStore is not safe for concurrent use.
type CartStore struct {
	lines []*models.CartLine
	saver CartSaver
}

// NewCartStore returns an empty cart. A nil saver disables persistence.
func NewCartStore(saver CartSaver) *CartStore {
	return &CartStore{saver: saver}
}

// RestoreCartStore rebuilds a cart from snapshot. Lines whose product is no
// longer in the catalog or whose quantity is not positive are dropped, and
// repeated product ids are merged into the first line.
func RestoreCartStore(snapshot models.CartSnapshot, catalog ProductLookup, saver CartSaver) *CartStore {
	s := NewCartStore(saver)
	for _, item := range snapshot.Items {
		if item.Quantity < 1 {
			continue
		}
		product, err := catalog.FindByID(item.ProductID)
		if err != nil {
			continue
		}
		if line := s.find(product.ID); line != nil {
			line.Quantity += item.Quantity
			continue
		}
		s.lines = append(s.lines, &models.CartLine{Product: product, Quantity: item.Quantity})
	}
	return s
}

func (s *CartStore) find(productID string) *models.CartLine {
	for _, line := range s.lines {
		if line.Product.ID == productID {
			return line
		}
	}
	return nil
}

func (s *CartStore) indexOf(productID string) int {
	for i, line := range s.lines {
		if line.Product.ID == productID {
			return i
		}
	}
	return -1
}

// AddItem adds one unit of product, appending a new line the first time the
// product is seen. Stock is not checked here.
func (s *CartStore) AddItem(ctx context.Context, product *models.Product) error {
	s.add(product, 1)
	return s.save(ctx)
}

// AddItems adds quantity units of product with a single save. It behaves
// like calling AddItem quantity times.
func (s *CartStore) AddItems(ctx context.Context, product *models.Product, quantity int) error {
	if quantity < 1 {
		return nil
	}
	s.add(product, quantity)
	return s.save(ctx)
}

func (s *CartStore) add(product *models.Product, quantity int) {
	if line := s.find(product.ID); line != nil {
		line.Quantity += quantity
		return
	}
	s.lines = append(s.lines, &models.CartLine{Product: product, Quantity: quantity})
}

// RemoveItem deletes the line for productID. Unknown ids are ignored.
func (s *CartStore) RemoveItem(ctx context.Context, productID string) error {
	i := s.indexOf(productID)
	if i < 0 {
		return nil
	}
	s.lines = append(s.lines[:i], s.lines[i+1:]...)
	return s.save(ctx)
}

// UpdateQuantity replaces the quantity of productID's line. A quantity of
// zero or less removes the line. Unknown ids are ignored.
func (s *CartStore) UpdateQuantity(ctx context.Context, productID string, quantity int) error {
	if quantity <= 0 {
		return s.RemoveItem(ctx, productID)
	}
	line := s.find(productID)
	if line == nil {
		return nil
	}
	line.Quantity = quantity
	return s.save(ctx)
}

func (s *CartStore) ClearCart(ctx context.Context) error {
	s.lines = nil
	return s.save(ctx)
}

// Lines returns the cart lines in insertion order. The returned slice is a
// copy; the lines still reference catalog products.
func (s *CartStore) Lines() []models.CartLine {
	out := make([]models.CartLine, len(s.lines))
	for i, line := range s.lines {
		out[i] = *line
	}
	return out
}

func (s *CartStore) TotalItems() int {
	total := 0
	for _, line := range s.lines {
		total += line.Quantity
	}
	return total
}

// TotalPrice sums quantity times the product's current unit price.
func (s *CartStore) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, line := range s.lines {
		total = total.Add(line.Product.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}

func (s *CartStore) IsEmpty() bool {
	return len(s.lines) == 0
}

func (s *CartStore) Snapshot() models.CartSnapshot {
	items := make([]models.CartSnapshotLine, 0, len(s.lines))
	for _, line := range s.lines {
		items = append(items, models.CartSnapshotLine{ProductID: line.Product.ID, Quantity: line.Quantity})
	}
	return models.CartSnapshot{Items: items}
}

func (s *CartStore) save(ctx context.Context) error {
	if s.saver == nil {
		return nil
	}
	if err := s.saver.SaveCart(ctx, s.Snapshot()); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}

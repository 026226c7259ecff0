package services

import (
	"context"
	"crypto-cart/models"
	"crypto-cart/repositories"
	"crypto-cart/utils"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var ErrInvalidQuantity = errors.New("quantity must be at least 1")

// CartService owns the carts of all sessions. Each request loads the
// session's snapshot, applies one CartStore operation and saves it back.
// Operations on the same session are serialized.
type CartService struct {
	productRepo *repositories.ProductRepository
	store       repositories.SnapshotStore
	locks       *utils.KeyedMutex
}

func NewCartService(productRepo *repositories.ProductRepository, store repositories.SnapshotStore) *CartService {
	return &CartService{
		productRepo: productRepo,
		store:       store,
		locks:       utils.NewKeyedMutex(),
	}
}

func (s *CartService) saver(sessionID string) CartSaver {
	return CartSaverFunc(func(ctx context.Context, snapshot models.CartSnapshot) error {
		return s.store.Save(ctx, repositories.NamespaceCart, sessionID, snapshot)
	})
}

func (s *CartService) load(ctx context.Context, sessionID string) (*CartStore, error) {
	var snapshot models.CartSnapshot
	if _, err := s.store.Load(ctx, repositories.NamespaceCart, sessionID, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	return RestoreCartStore(snapshot, s.productRepo, s.saver(sessionID)), nil
}

// withCart runs fn against the session's cart while holding its lock.
func (s *CartService) withCart(ctx context.Context, sessionID string, fn func(cart *CartStore) error) (*models.CartView, error) {
	unlock := s.locks.Lock(sessionID)
	defer unlock()

	cart, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if fn != nil {
		if err := fn(cart); err != nil {
			return nil, err
		}
	}
	return BuildCartView(cart), nil
}

func (s *CartService) GetCart(ctx context.Context, sessionID string) (*models.CartView, error) {
	return s.withCart(ctx, sessionID, nil)
}

// AddItem adds quantity units of productID to the session's cart.
func (s *CartService) AddItem(ctx context.Context, sessionID, productID string, quantity int) (*models.CartView, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	product, err := s.productRepo.FindByID(productID)
	if err != nil {
		return nil, err
	}

	return s.withCart(ctx, sessionID, func(cart *CartStore) error {
		return cart.AddItems(ctx, product, quantity)
	})
}

func (s *CartService) UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) (*models.CartView, error) {
	return s.withCart(ctx, sessionID, func(cart *CartStore) error {
		return cart.UpdateQuantity(ctx, productID, quantity)
	})
}

func (s *CartService) RemoveItem(ctx context.Context, sessionID, productID string) (*models.CartView, error) {
	return s.withCart(ctx, sessionID, func(cart *CartStore) error {
		return cart.RemoveItem(ctx, productID)
	})
}

func (s *CartService) ClearCart(ctx context.Context, sessionID string) (*models.CartView, error) {
	return s.withCart(ctx, sessionID, func(cart *CartStore) error {
		return cart.ClearCart(ctx)
	})
}

// Checkout hands the session's cart to fn under the session lock, so the
// cart cannot change between pricing and clearing.
func (s *CartService) Checkout(ctx context.Context, sessionID string, fn func(cart *CartStore) error) error {
	_, err := s.withCart(ctx, sessionID, fn)
	return err
}

func BuildCartView(cart *CartStore) *models.CartView {
	lines := cart.Lines()
	items := make([]models.CartItemView, 0, len(lines))
	for _, line := range lines {
		items = append(items, models.CartItemView{
			Product:  line.Product,
			Quantity: line.Quantity,
			Subtotal: line.Product.Price.Mul(decimal.NewFromInt(int64(line.Quantity))),
		})
	}

	total := cart.TotalPrice()
	return &models.CartView{
		Items:      items,
		TotalItems: cart.TotalItems(),
		TotalPrice: total,
		Summary:    Summarize(total),
	}
}

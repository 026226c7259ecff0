package services

import (
	"context"
	"crypto-cart/models"
	"crypto-cart/repositories"
	"crypto-cart/utils"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyCart       = errors.New("cart is empty")
	ErrInvalidCheckout = errors.New("invalid checkout request")
)

var (
	freeShippingAbove = decimal.NewFromInt(100)
	flatShippingFee   = decimal.NewFromInt(10)
	taxRate           = decimal.RequireFromString("0.10")
)

// Summarize prices a cart subtotal: free shipping above $100, otherwise a
// flat $10 (nothing for an empty cart), plus 10% tax rounded to cents.
func Summarize(subtotal decimal.Decimal) models.OrderSummary {
	shipping := flatShippingFee
	if subtotal.GreaterThan(freeShippingAbove) || !subtotal.IsPositive() {
		shipping = decimal.Zero
	}
	tax := subtotal.Mul(taxRate).Round(2)

	return models.OrderSummary{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal.Add(shipping).Add(tax),
	}
}

// OrderMailer sends order confirmations.
type OrderMailer interface {
	SendOrderConfirmation(toEmail string, order *models.Order) error
}

type CheckoutService struct {
	carts  *CartService
	orders *repositories.OrderRepository
	users  *UserService
	mailer OrderMailer
	now    func() time.Time
}

// NewCheckoutService wires checkout. mailer may be nil.
func NewCheckoutService(carts *CartService, orders *repositories.OrderRepository, users *UserService, mailer OrderMailer) *CheckoutService {
	return &CheckoutService{
		carts:  carts,
		orders: orders,
		users:  users,
		mailer: mailer,
		now:    time.Now,
	}
}

func newOrderID() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "ORD-" + strings.ToUpper(id[:8])
}

// Checkout turns the session's cart into an order and empties the cart.
// When user is not nil the order is kept in the user's history and, unless
// the request opts out, the shipping address is saved to the session's
// address book. No payment is taken.
func (s *CheckoutService) Checkout(ctx context.Context, sessionID string, user *models.SessionUser, req models.CheckoutRequest) (*models.Order, error) {
	if req.PaymentMethod != models.PaymentMethodCredit {
		req.Payment = nil
	}
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCheckout, err)
	}

	email := strings.TrimSpace(req.Email)
	if email == "" && user != nil {
		email = user.Email
	}

	var order *models.Order
	err := s.carts.Checkout(ctx, sessionID, func(cart *CartStore) error {
		if cart.IsEmpty() {
			return ErrEmptyCart
		}

		order = s.buildOrder(cart, req, email)
		if user != nil {
			order.UserID = user.ID
			if err := s.orders.Append(ctx, user.ID, *order); err != nil {
				return err
			}
		}
		return cart.ClearCart(ctx)
	})
	if err != nil {
		return nil, err
	}

	log.Printf("Order %s placed: %d items, total %s", order.ID, order.ItemCount(), order.Total.StringFixed(2))

	if user != nil && req.SavesInformation() {
		if err := s.users.SaveAddress(ctx, sessionID, req.Address); err != nil {
			log.Printf("Failed to save address for order %s: %v", order.ID, err)
		}
	}

	if s.mailer != nil && order.Email != "" {
		if err := s.mailer.SendOrderConfirmation(order.Email, order); err != nil {
			log.Printf("Failed to send confirmation for order %s: %v", order.ID, err)
		}
	}

	return order, nil
}

func (s *CheckoutService) buildOrder(cart *CartStore, req models.CheckoutRequest, email string) *models.Order {
	lines := cart.Lines()
	items := make([]models.OrderItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, models.OrderItem{
			ProductID:   line.Product.ID,
			ProductName: line.Product.Name,
			Quantity:    line.Quantity,
			Price:       line.Product.Price,
			Subtotal:    line.Product.Price.Mul(decimal.NewFromInt(int64(line.Quantity))),
		})
	}

	summary := Summarize(cart.TotalPrice())
	order := &models.Order{
		ID:              newOrderID(),
		Email:           email,
		Items:           items,
		Subtotal:        summary.Subtotal,
		Shipping:        summary.Shipping,
		Tax:             summary.Tax,
		Total:           summary.Total,
		Status:          models.OrderStatusPending,
		PaymentMethod:   req.PaymentMethod,
		ShippingAddress: req.Address,
		CreatedAt:       s.now(),
	}

	if req.PaymentMethod == models.PaymentMethodCredit && req.Payment != nil {
		number := req.Payment.CardNumber
		order.CardLastFour = number[len(number)-4:]
	}
	return order
}

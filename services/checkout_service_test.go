package services

import (
	"context"
	"crypto-cart/models"
	"crypto-cart/repositories"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMailer struct {
	sent []string
	err  error
}

func (m *fakeMailer) SendOrderConfirmation(toEmail string, order *models.Order) error {
	m.sent = append(m.sent, toEmail+" "+order.ID)
	return m.err
}

func validAddress() models.Address {
	return models.Address{
		FullName:      "Jane Doe",
		StreetAddress: "123 Main St",
		City:          "Springfield",
		State:         "IL",
		PostalCode:    "62704",
		Country:       "USA",
	}
}

func creditRequest() models.CheckoutRequest {
	return models.CheckoutRequest{
		Email:         "jane@example.com",
		Address:       validAddress(),
		PaymentMethod: models.PaymentMethodCredit,
		Payment: &models.PaymentDetails{
			CardNumber:     "4111111111111111",
			CardholderName: "Jane Doe",
			ExpiryDate:     "12/29",
			CVV:            "123",
		},
	}
}

type checkoutFixture struct {
	carts    *CartService
	orders   *repositories.OrderRepository
	users    *UserService
	mailer   *fakeMailer
	checkout *CheckoutService
}

func newCheckoutFixture(t *testing.T) *checkoutFixture {
	t.Helper()
	store := repositories.NewMemorySnapshotStore()
	carts := NewCartService(newTestProductRepo(t), store)
	orders := repositories.NewOrderRepository(store)
	users := NewUserService(repositories.NewAuthStateRepository(store))
	mailer := &fakeMailer{}
	return &checkoutFixture{
		carts:    carts,
		orders:   orders,
		users:    users,
		mailer:   mailer,
		checkout: NewCheckoutService(carts, orders, users, mailer),
	}
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		subtotal string
		shipping string
		tax      string
		total    string
	}{
		{"0", "0", "0", "0"},
		{"19.99", "10", "2.00", "31.99"},
		{"50", "10", "5.00", "65.00"},
		{"100", "10", "10.00", "120.00"},
		{"100.01", "0", "10.00", "110.01"},
		{"179.99", "0", "18.00", "197.99"},
	}

	for _, tt := range tests {
		t.Run(tt.subtotal, func(t *testing.T) {
			got := Summarize(decimal.RequireFromString(tt.subtotal))
			assert.True(t, decimal.RequireFromString(tt.shipping).Equal(got.Shipping), "shipping %s", got.Shipping)
			assert.True(t, decimal.RequireFromString(tt.tax).Equal(got.Tax), "tax %s", got.Tax)
			assert.True(t, decimal.RequireFromString(tt.total).Equal(got.Total), "total %s", got.Total)
		})
	}
}

func TestCheckoutService_PlacesOrderAndClearsCart(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t)
	_, err := f.carts.AddItem(ctx, "s", "5", 1)
	require.NoError(t, err)

	order, err := f.checkout.Checkout(ctx, "s", nil, creditRequest())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(order.ID, "ORD-"))
	assert.Len(t, order.ID, 12)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, "1111", order.CardLastFour)
	assert.Equal(t, "jane@example.com", order.Email)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Premium Coffee Maker", order.Items[0].ProductName)
	assert.True(t, decimal.RequireFromString("197.99").Equal(order.Total))
	assert.Equal(t, 1, order.ItemCount())

	view, err := f.carts.GetCart(ctx, "s")
	require.NoError(t, err)
	assert.Empty(t, view.Items)

	assert.Equal(t, []string{"jane@example.com " + order.ID}, f.mailer.sent)
}

func TestCheckoutService_RecordsHistoryForSignedInUser(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t)
	user := &models.SessionUser{ID: "1", Email: "user@example.com", IsAuthenticated: true}

	_, err := f.carts.AddItem(ctx, "s", "9", 2)
	require.NoError(t, err)

	req := models.CheckoutRequest{Address: validAddress(), PaymentMethod: models.PaymentMethodCrypto}
	order, err := f.checkout.Checkout(ctx, "s", user, req)
	require.NoError(t, err)

	assert.Equal(t, "1", order.UserID)
	assert.Equal(t, "user@example.com", order.Email)
	assert.Empty(t, order.CardLastFour)

	history, err := f.orders.FindByUser(ctx, "1")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, order.ID, history[0].ID)
}

func TestCheckoutService_NoMailWithoutAddress(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t)
	_, err := f.carts.AddItem(ctx, "s", "9", 1)
	require.NoError(t, err)

	_, err = f.checkout.Checkout(ctx, "s", nil, models.CheckoutRequest{Address: validAddress(), PaymentMethod: models.PaymentMethodCrypto})
	require.NoError(t, err)

	assert.Empty(t, f.mailer.sent)
}

func TestCheckoutService_EmptyCart(t *testing.T) {
	f := newCheckoutFixture(t)

	_, err := f.checkout.Checkout(context.Background(), "s", nil, creditRequest())

	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestCheckoutService_Validation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(req *models.CheckoutRequest)
	}{
		{"short street", func(req *models.CheckoutRequest) { req.Address.StreetAddress = "1 A" }},
		{"short postal code", func(req *models.CheckoutRequest) { req.Address.PostalCode = "123" }},
		{"unknown payment method", func(req *models.CheckoutRequest) { req.PaymentMethod = "cash" }},
		{"credit without card", func(req *models.CheckoutRequest) { req.Payment = nil }},
		{"short card number", func(req *models.CheckoutRequest) { req.Payment.CardNumber = "4111" }},
		{"card number with letters", func(req *models.CheckoutRequest) { req.Payment.CardNumber = "4111abcd11111111" }},
		{"bad expiry", func(req *models.CheckoutRequest) { req.Payment.ExpiryDate = "13/29" }},
		{"short cvv", func(req *models.CheckoutRequest) { req.Payment.CVV = "12" }},
		{"bad email", func(req *models.CheckoutRequest) { req.Email = "not-an-email" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCheckoutFixture(t)
			_, err := f.carts.AddItem(ctx, "s", "1", 1)
			require.NoError(t, err)

			req := creditRequest()
			tt.mutate(&req)
			_, err = f.checkout.Checkout(ctx, "s", nil, req)
			assert.ErrorIs(t, err, ErrInvalidCheckout)

			view, err := f.carts.GetCart(ctx, "s")
			require.NoError(t, err)
			assert.Equal(t, 1, view.TotalItems)
		})
	}
}

func TestCheckoutService_CryptoIgnoresCardFields(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t)
	_, err := f.carts.AddItem(ctx, "s", "1", 1)
	require.NoError(t, err)

	req := creditRequest()
	req.PaymentMethod = models.PaymentMethodCrypto
	req.Payment.CardNumber = "junk"

	order, err := f.checkout.Checkout(ctx, "s", nil, req)
	require.NoError(t, err)
	assert.Empty(t, order.CardLastFour)
}

func TestCheckoutService_MailFailureDoesNotFailOrder(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t)
	f.mailer.err = errors.New("smtp down")
	_, err := f.carts.AddItem(ctx, "s", "1", 1)
	require.NoError(t, err)

	order, err := f.checkout.Checkout(ctx, "s", nil, creditRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, order.ID)
}

func TestCheckoutService_SavesAddressForSignedInUser(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t)
	user := &models.SessionUser{ID: "1", Email: "user@example.com", IsAuthenticated: true}
	req := models.CheckoutRequest{Address: validAddress(), PaymentMethod: models.PaymentMethodCrypto}

	for i := 0; i < 2; i++ {
		_, err := f.carts.AddItem(ctx, "s", "9", 1)
		require.NoError(t, err)
		_, err = f.checkout.Checkout(ctx, "s", user, req)
		require.NoError(t, err)
	}

	addresses, err := f.users.GetAddresses(ctx, "s")
	require.NoError(t, err)
	assert.Equal(t, []models.Address{validAddress()}, addresses)
}

func TestCheckoutService_SkipsAddressWhenOptedOutOrGuest(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t)
	user := &models.SessionUser{ID: "1", Email: "user@example.com", IsAuthenticated: true}
	optOut := false

	_, err := f.carts.AddItem(ctx, "s", "9", 1)
	require.NoError(t, err)
	req := models.CheckoutRequest{Address: validAddress(), PaymentMethod: models.PaymentMethodCrypto, SaveInformation: &optOut}
	_, err = f.checkout.Checkout(ctx, "s", user, req)
	require.NoError(t, err)

	_, err = f.carts.AddItem(ctx, "guest", "9", 1)
	require.NoError(t, err)
	_, err = f.checkout.Checkout(ctx, "guest", nil, models.CheckoutRequest{Address: validAddress(), PaymentMethod: models.PaymentMethodCrypto})
	require.NoError(t, err)

	for _, session := range []string{"s", "guest"} {
		addresses, err := f.users.GetAddresses(ctx, session)
		require.NoError(t, err)
		assert.Empty(t, addresses, session)
	}
}

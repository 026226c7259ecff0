package routes

import (
	"bytes"
	"crypto-cart/middleware"
	"crypto-cart/models"
	"crypto-cart/repositories"
	"crypto-cart/utils"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type apiResponse struct {
	Success bool                    `json:"success"`
	Message string                  `json:"message"`
	Error   string                  `json:"error"`
	Data    json.RawMessage         `json:"data"`
	Meta    models.MetaData         `json:"meta"`
	Links   *models.PaginationLinks `json:"links"`
}

type testClient struct {
	t       *testing.T
	router  *gin.Engine
	session string
	token   string
}

func newTestClient(t *testing.T) *testClient {
	t.Helper()
	gin.SetMode(gin.TestMode)

	productRepo, err := repositories.NewProductRepository("")
	require.NoError(t, err)
	tokens := utils.NewTokenIssuer("test-secret", time.Hour)
	ctrls, err := NewControllers(productRepo, repositories.NewMemorySnapshotStore(), tokens, nil)
	require.NoError(t, err)

	router := gin.New()
	router.Use(middleware.SessionMiddleware())
	require.NoError(t, SetupRoutes(router, ctrls, tokens))

	return &testClient{t: t, router: router}
}

func (c *testClient) do(method, path string, body interface{}) (*httptest.ResponseRecorder, apiResponse) {
	c.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(c.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if c.session != "" {
		req.Header.Set(middleware.SessionHeader, c.session)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)

	if c.session == "" {
		c.session = w.Header().Get(middleware.SessionHeader)
	}

	var resp apiResponse
	if w.Body.Len() > 0 {
		require.NoError(c.t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	}
	return w, resp
}

func decodeData(t *testing.T, resp apiResponse, dest interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(resp.Data, dest))
}

func (c *testClient) login() {
	c.t.Helper()
	w, resp := c.do(http.MethodPost, "/auth/login", models.LoginRequest{Email: "user@example.com", Password: "password123"})
	require.Equal(c.t, http.StatusOK, w.Code)

	var login models.LoginResponse
	decodeData(c.t, resp, &login)
	c.token = login.Token
}

func checkoutBody(method string) map[string]interface{} {
	body := map[string]interface{}{
		"address": map[string]string{
			"full_name":      "Jane Doe",
			"street_address": "123 Main St",
			"city":           "Springfield",
			"state":          "IL",
			"postal_code":    "62704",
			"country":        "USA",
		},
		"payment_method": method,
	}
	if method == models.PaymentMethodCredit {
		body["payment"] = map[string]string{
			"card_number":     "4111111111111111",
			"cardholder_name": "Jane Doe",
			"expiry_date":     "12/29",
			"cvv":             "123",
		}
	}
	return body
}

func TestHealthAndRoot(t *testing.T) {
	c := newTestClient(t)

	w, _ := c.do(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = c.do(http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Crypto Cart API")
	assert.Contains(t, w.Body.String(), `"catalog":{"products":12,"categories":7}`)
}

func TestCategories(t *testing.T) {
	c := newTestClient(t)

	w, resp := c.do(http.MethodGet, "/categories", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var categories []models.Category
	decodeData(t, resp, &categories)
	require.Len(t, categories, 8)
	assert.Equal(t, "All", categories[0].Name)
}

func TestProductListing(t *testing.T) {
	c := newTestClient(t)

	w, resp := c.do(http.MethodGet, "/products?category=Gaming", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var products []models.Product
	decodeData(t, resp, &products)
	require.Len(t, products, 2)
	assert.Equal(t, "10", products[0].ID)
	assert.Equal(t, 2, resp.Meta.TotalItems)
	require.NotNil(t, resp.Links)
	assert.Contains(t, resp.Links.Self, "category=Gaming")
	assert.Empty(t, resp.Links.Next)

	w, resp = c.do(http.MethodGet, "/products?q=wireless&max_price=100", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeData(t, resp, &products)
	require.Len(t, products, 1)
	assert.Equal(t, "Wireless Gaming Mouse", products[0].Name)

	w, resp = c.do(http.MethodGet, "/products?limit=5&page=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 3, resp.Meta.TotalPages)
	assert.Contains(t, resp.Links.Next, "page=2")
}

func TestProductListingRejectsBadPrices(t *testing.T) {
	c := newTestClient(t)

	w, _ := c.do(http.MethodGet, "/products?min_price=abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = c.do(http.MethodGet, "/products?min_price=500&max_price=100", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = c.do(http.MethodGet, "/products?min_price=-5", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProductListingPastLastPage(t *testing.T) {
	c := newTestClient(t)

	for _, page := range []string{"4", "9223372036854775807"} {
		w, resp := c.do(http.MethodGet, "/products?limit=5&page="+page, nil)
		require.Equal(t, http.StatusOK, w.Code, page)
		assert.JSONEq(t, `[]`, string(resp.Data))
		assert.Equal(t, 12, resp.Meta.TotalItems)
		require.NotNil(t, resp.Links)
		assert.Empty(t, resp.Links.Next)
	}
}

func TestProductDetail(t *testing.T) {
	c := newTestClient(t)

	w, resp := c.do(http.MethodGet, "/products/5", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var product models.Product
	decodeData(t, resp, &product)
	assert.Equal(t, "Premium Coffee Maker", product.Name)

	w, _ = c.do(http.MethodGet, "/products/404", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, resp = c.do(http.MethodGet, "/products/10/related", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var related []models.Product
	decodeData(t, resp, &related)
	require.Len(t, related, 1)
	assert.Equal(t, "11", related[0].ID)

	w, resp = c.do(http.MethodGet, "/products/featured", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var featured []models.Product
	decodeData(t, resp, &featured)
	assert.Len(t, featured, 6)
}

func TestCartFlow(t *testing.T) {
	c := newTestClient(t)

	w, resp := c.do(http.MethodPost, "/cart/items", map[string]interface{}{"product_id": "9", "quantity": 2})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NotEmpty(t, c.session)

	var cart models.CartView
	decodeData(t, resp, &cart)
	assert.Equal(t, 2, cart.TotalItems)
	assert.True(t, decimal.RequireFromString("69.98").Equal(cart.TotalPrice))

	w, resp = c.do(http.MethodPost, "/cart/items", map[string]interface{}{"product_id": "1"})
	require.Equal(t, http.StatusOK, w.Code)
	decodeData(t, resp, &cart)
	assert.Equal(t, 3, cart.TotalItems)
	assert.True(t, cart.Summary.Shipping.IsZero())

	w, resp = c.do(http.MethodPatch, "/cart/items/9", map[string]interface{}{"quantity": 0})
	require.Equal(t, http.StatusOK, w.Code)
	decodeData(t, resp, &cart)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "1", cart.Items[0].Product.ID)

	w, resp = c.do(http.MethodDelete, "/cart/items/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeData(t, resp, &cart)
	assert.Empty(t, cart.Items)

	w, _ = c.do(http.MethodPost, "/cart/items", map[string]interface{}{"product_id": "1", "quantity": 4})
	require.Equal(t, http.StatusOK, w.Code)
	w, resp = c.do(http.MethodDelete, "/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeData(t, resp, &cart)
	assert.Equal(t, 0, cart.TotalItems)
}

func TestCartErrors(t *testing.T) {
	c := newTestClient(t)

	w, _ := c.do(http.MethodPost, "/cart/items", map[string]interface{}{"product_id": "404"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = c.do(http.MethodPost, "/cart/items", map[string]interface{}{"product_id": "1", "quantity": -1})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, resp := c.do(http.MethodPost, "/cart/items", map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, resp.Error, "product_id is required")

	w, _ = c.do(http.MethodPatch, "/cart/items/1", map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSessionsDoNotShareCarts(t *testing.T) {
	a := newTestClient(t)
	w, _ := a.do(http.MethodPost, "/cart/items", map[string]interface{}{"product_id": "1"})
	require.Equal(t, http.StatusOK, w.Code)

	b := &testClient{t: t, router: a.router}
	w, resp := b.do(http.MethodGet, "/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEqual(t, a.session, b.session)

	var cart models.CartView
	decodeData(t, resp, &cart)
	assert.Empty(t, cart.Items)
}

func TestGuestCheckout(t *testing.T) {
	c := newTestClient(t)

	w, resp := c.do(http.MethodPost, "/checkout", checkoutBody(models.PaymentMethodCrypto))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Cart is empty", resp.Message)

	w, _ = c.do(http.MethodPost, "/cart/items", map[string]interface{}{"product_id": "5"})
	require.Equal(t, http.StatusOK, w.Code)

	invalid := checkoutBody(models.PaymentMethodCredit)
	invalid["payment"].(map[string]string)["expiry_date"] = "13/99"
	w, resp = c.do(http.MethodPost, "/checkout", invalid)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, resp.Error, "expiry_date must be in MM/YY format")

	w, resp = c.do(http.MethodPost, "/checkout", checkoutBody(models.PaymentMethodCredit))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var order models.Order
	decodeData(t, resp, &order)
	assert.Equal(t, "1111", order.CardLastFour)
	assert.True(t, decimal.RequireFromString("197.99").Equal(order.Total))
	assert.Empty(t, order.UserID)
	assert.NotContains(t, w.Body.String(), "4111111111111111")

	w, resp = c.do(http.MethodGet, "/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var cart models.CartView
	decodeData(t, resp, &cart)
	assert.Empty(t, cart.Items)
}

func TestAuthenticatedOrderHistory(t *testing.T) {
	c := newTestClient(t)

	w, _ := c.do(http.MethodGet, "/orders", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	c.login()

	w, resp := c.do(http.MethodGet, "/auth/profile", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var profile models.SessionUser
	decodeData(t, resp, &profile)
	assert.Equal(t, "Demo User", profile.Name)

	w, _ = c.do(http.MethodPost, "/cart/items", map[string]interface{}{"product_id": "9", "quantity": 3})
	require.Equal(t, http.StatusOK, w.Code)
	w, resp = c.do(http.MethodPost, "/checkout", checkoutBody(models.PaymentMethodCrypto))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var placed models.Order
	decodeData(t, resp, &placed)
	assert.Equal(t, "1", placed.UserID)

	w, resp = c.do(http.MethodGet, "/orders", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var orders []models.Order
	decodeData(t, resp, &orders)
	require.Len(t, orders, 1)
	assert.Equal(t, placed.ID, orders[0].ID)
	assert.Equal(t, 1, resp.Meta.TotalItems)

	w, _ = c.do(http.MethodGet, "/orders/"+placed.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = c.do(http.MethodGet, "/orders/ORD-MISSING", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, resp = c.do(http.MethodGet, "/orders?page=9223372036854775807", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, string(resp.Data))

	w, _ = c.do(http.MethodPost, "/auth/logout", nil)
	require.Equal(t, http.StatusOK, w.Code)
	w, _ = c.do(http.MethodGet, "/auth/profile", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	w, _ = c.do(http.MethodGet, "/orders", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	w, _ = c.do(http.MethodGet, "/account/addresses", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = c.do(http.MethodPost, "/cart/items", map[string]interface{}{"product_id": "9"})
	require.Equal(t, http.StatusOK, w.Code)
	w, resp = c.do(http.MethodPost, "/checkout", checkoutBody(models.PaymentMethodCrypto))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var anonymous models.Order
	decodeData(t, resp, &anonymous)
	assert.Empty(t, anonymous.UserID)

	c.login()
	w, resp = c.do(http.MethodGet, "/orders", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeData(t, resp, &orders)
	assert.Len(t, orders, 1)
}

func TestCheckoutSavesAddress(t *testing.T) {
	c := newTestClient(t)
	c.login()

	w, _ := c.do(http.MethodPost, "/cart/items", map[string]interface{}{"product_id": "9"})
	require.Equal(t, http.StatusOK, w.Code)
	body := checkoutBody(models.PaymentMethodCrypto)
	body["save_information"] = true
	w, _ = c.do(http.MethodPost, "/checkout", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w, resp := c.do(http.MethodGet, "/account/addresses", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var addresses []models.Address
	decodeData(t, resp, &addresses)
	require.Len(t, addresses, 1)
	assert.Equal(t, "123 Main St", addresses[0].StreetAddress)

	w, _ = c.do(http.MethodPost, "/cart/items", map[string]interface{}{"product_id": "9"})
	require.Equal(t, http.StatusOK, w.Code)
	body["save_information"] = false
	body["address"].(map[string]string)["street_address"] = "500 Office Park"
	w, _ = c.do(http.MethodPost, "/checkout", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w, resp = c.do(http.MethodGet, "/account/addresses", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeData(t, resp, &addresses)
	assert.Len(t, addresses, 1)
}

func TestTokenCarriesSession(t *testing.T) {
	c := newTestClient(t)
	c.login()
	w, _ := c.do(http.MethodPost, "/cart/items", map[string]interface{}{"product_id": "2"})
	require.Equal(t, http.StatusOK, w.Code)

	other := &testClient{t: t, router: c.router, token: c.token, session: "7d444840-9dc0-11d1-b245-5ffdce74fad2"}
	w, resp := other.do(http.MethodGet, "/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, c.session, w.Header().Get(middleware.SessionHeader))

	var cart models.CartView
	decodeData(t, resp, &cart)
	assert.Equal(t, 1, cart.TotalItems)
}

func TestRegister(t *testing.T) {
	c := newTestClient(t)

	w, resp := c.do(http.MethodPost, "/auth/register", models.RegisterRequest{
		Name: "Shopper", Email: "user@example.com", Password: "secret1", ConfirmPassword: "secret1",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Email already exists", resp.Message)

	w, resp = c.do(http.MethodPost, "/auth/register", models.RegisterRequest{
		Name: "Shopper", Email: "shopper@example.com", Password: "secret1", ConfirmPassword: "nope",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, resp.Error, "confirm_password must match")

	w, resp = c.do(http.MethodPost, "/auth/register", models.RegisterRequest{
		Name: "Shopper", Email: "shopper@example.com", Password: "secret1", ConfirmPassword: "secret1",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var login models.LoginResponse
	decodeData(t, resp, &login)
	assert.NotEmpty(t, login.Token)
	assert.Equal(t, "shopper@example.com", login.User.Email)

	w, _ = c.do(http.MethodPost, "/auth/login", models.LoginRequest{Email: "shopper@example.com", Password: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAddressBook(t *testing.T) {
	c := newTestClient(t)
	c.login()

	address := checkoutBody(models.PaymentMethodCrypto)["address"]

	w, resp := c.do(http.MethodPost, "/account/addresses", map[string]string{"full_name": "Jo"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, resp.Error, "full_name must be at least 3 characters")

	w, resp = c.do(http.MethodPost, "/account/addresses", address)
	require.Equal(t, http.StatusCreated, w.Code)
	var addresses []models.Address
	decodeData(t, resp, &addresses)
	require.Len(t, addresses, 1)

	w, _ = c.do(http.MethodPut, "/account/addresses/5", address)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = c.do(http.MethodPut, "/account/addresses/x", address)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, resp = c.do(http.MethodDelete, "/account/addresses/0", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeData(t, resp, &addresses)
	assert.Empty(t, addresses)

	w, resp = c.do(http.MethodGet, "/account/addresses", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, string(resp.Data))
}

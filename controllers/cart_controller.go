package controllers

import (
	"crypto-cart/middleware"
	"crypto-cart/models"
	"crypto-cart/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	cartService *services.CartService
}

func NewCartController(cartService *services.CartService) *CartController {
	return &CartController{cartService: cartService}
}

func (ctrl *CartController) respondCart(c *gin.Context, message string, cart *models.CartView, err error) {
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.Response{Success: true, Message: message, Data: cart})
}

// @Summary Get cart
// @Description Get the session's cart with totals and order summary
// @Tags Cart
// @Produce json
// @Param X-Session-ID header string false "Session ID"
// @Success 200 {object} models.Response
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	cart, err := ctrl.cartService.GetCart(c.Request.Context(), middleware.SessionID(c))
	ctrl.respondCart(c, "Cart retrieved", cart, err)
}

// @Summary Add item to cart
// @Description Add a product to the cart. Quantity defaults to 1.
// @Tags Cart
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Session ID"
// @Param request body models.AddToCartRequest true "Item"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/items [post]
func (ctrl *CartController) AddToCart(c *gin.Context) {
	var req models.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	cart, err := ctrl.cartService.AddItem(c.Request.Context(), middleware.SessionID(c), req.ProductID, req.Quantity)
	ctrl.respondCart(c, "Item added to cart", cart, err)
}

// @Summary Update item quantity
// @Description Set the quantity of a cart line. Zero or less removes it.
// @Tags Cart
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Session ID"
// @Param productId path string true "Product ID"
// @Param request body models.UpdateQuantityRequest true "Quantity"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /cart/items/{productId} [patch]
func (ctrl *CartController) UpdateQuantity(c *gin.Context) {
	var req models.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	cart, err := ctrl.cartService.UpdateQuantity(c.Request.Context(), middleware.SessionID(c), c.Param("productId"), *req.Quantity)
	ctrl.respondCart(c, "Cart updated", cart, err)
}

// @Summary Remove item from cart
// @Tags Cart
// @Produce json
// @Param X-Session-ID header string false "Session ID"
// @Param productId path string true "Product ID"
// @Success 200 {object} models.Response
// @Router /cart/items/{productId} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	cart, err := ctrl.cartService.RemoveItem(c.Request.Context(), middleware.SessionID(c), c.Param("productId"))
	ctrl.respondCart(c, "Item removed from cart", cart, err)
}

// @Summary Clear cart
// @Tags Cart
// @Produce json
// @Param X-Session-ID header string false "Session ID"
// @Success 200 {object} models.Response
// @Router /cart [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	cart, err := ctrl.cartService.ClearCart(c.Request.Context(), middleware.SessionID(c))
	ctrl.respondCart(c, "Cart cleared", cart, err)
}

package controllers

import (
	"crypto-cart/middleware"
	"crypto-cart/models"
	"crypto-cart/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type TransactionController struct {
	checkoutService *services.CheckoutService
}

func NewTransactionController(checkoutService *services.CheckoutService) *TransactionController {
	return &TransactionController{checkoutService: checkoutService}
}

// @Summary Checkout
// @Description Place an order for the session's cart. Signed-in users get it added to their order history.
// @Tags Checkout
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Session ID"
// @Param request body models.CheckoutRequest true "Checkout Request"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /checkout [post]
func (ctrl *TransactionController) Checkout(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	order, err := ctrl.checkoutService.Checkout(c.Request.Context(), middleware.SessionID(c), currentUser(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.Response{Success: true, Message: "Order placed successfully", Data: order})
}

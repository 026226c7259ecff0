package controllers

import (
	"crypto-cart/models"
	"crypto-cart/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ProductDetailController struct {
	productService *services.ProductService
}

func NewProductDetailController(productService *services.ProductService) *ProductDetailController {
	return &ProductDetailController{productService: productService}
}

// @Summary Get product by ID
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [get]
func (ctrl *ProductDetailController) GetProductByID(c *gin.Context) {
	product, err := ctrl.productService.GetProductByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Product retrieved", Data: product})
}

// @Summary Get related products
// @Description Get other products from the same category
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id}/related [get]
func (ctrl *ProductDetailController) GetRelatedProducts(c *gin.Context) {
	related, err := ctrl.productService.GetRelatedProducts(c.Param("id"), services.DefaultRelatedLimit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Related products retrieved", Data: related})
}

package controllers

import (
	"crypto-cart/models"
	"crypto-cart/services"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type ProductController struct {
	productService *services.ProductService
}

func NewProductController(productService *services.ProductService) *ProductController {
	return &ProductController{productService: productService}
}

// @Summary Get all categories
// @Description Get the category list, led by the "All" entry
// @Tags Categories
// @Produce json
// @Success 200 {object} models.Response
// @Router /categories [get]
func (ctrl *ProductController) GetAllCategories(c *gin.Context) {
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Categories retrieved",
		Data:    ctrl.productService.GetAllCategories(),
	})
}

func parsePrice(raw string) (*decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	price, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, err
	}
	return &price, nil
}

// @Summary Filter products
// @Description List catalog products matching category, search text and price range
// @Tags Products
// @Produce json
// @Param category query string false "Category name, All for every category"
// @Param q query string false "Case-insensitive search in name, description and category"
// @Param min_price query number false "Minimum price, inclusive"
// @Param max_price query number false "Maximum price, inclusive"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(12)
// @Success 200 {object} models.PaginationResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /products [get]
func (ctrl *ProductController) GetAllProducts(c *gin.Context) {
	criteria := models.FilterCriteria{
		Category: strings.TrimSpace(c.Query("category")),
		Query:    c.Query("q"),
	}

	minPrice, err := parsePrice(c.Query("min_price"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid min_price", Error: err.Error()})
		return
	}
	if minPrice != nil {
		criteria.MinPrice = *minPrice
	}

	criteria.MaxPrice, err = parsePrice(c.Query("max_price"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid max_price", Error: err.Error()})
		return
	}

	page, limit := getPaginationParams(c, services.DefaultPageLimit)
	response, err := ctrl.productService.FilterProducts(criteria, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Links = generateLinks(c, response.Meta.Page, response.Meta.Limit, response.Meta.TotalPages)
	c.JSON(http.StatusOK, response)
}

// @Summary Get featured products
// @Description Get the products shown on the home page
// @Tags Products
// @Produce json
// @Success 200 {object} models.Response
// @Router /products/featured [get]
func (ctrl *ProductController) GetFeaturedProducts(c *gin.Context) {
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Featured products retrieved",
		Data:    ctrl.productService.GetFeaturedProducts(services.DefaultFeaturedLimit),
	})
}

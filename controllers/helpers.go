package controllers

import (
	"crypto-cart/middleware"
	"crypto-cart/models"
	"crypto-cart/repositories"
	"crypto-cart/services"
	"crypto-cart/utils"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case errors.Is(err, repositories.ErrProductNotFound):
		status, message = http.StatusNotFound, "Product not found"
	case errors.Is(err, services.ErrOrderNotFound):
		status, message = http.StatusNotFound, "Order not found"
	case errors.Is(err, services.ErrAddressNotFound):
		status, message = http.StatusNotFound, "Address not found"
	case errors.Is(err, services.ErrInvalidCredentials):
		status, message = http.StatusUnauthorized, "Invalid email or password"
	case errors.Is(err, services.ErrNotAuthenticated):
		status, message = http.StatusUnauthorized, "Not authenticated"
	case errors.Is(err, repositories.ErrEmailTaken):
		status, message = http.StatusConflict, "Email already exists"
	case errors.Is(err, services.ErrEmptyCart):
		status, message = http.StatusBadRequest, "Cart is empty"
	case errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, services.ErrInvalidPriceRange),
		errors.Is(err, services.ErrInvalidCheckout),
		errors.Is(err, services.ErrInvalidRegistration),
		errors.Is(err, services.ErrInvalidAddress):
		status, message = http.StatusBadRequest, "Invalid request"
	}

	if status == http.StatusInternalServerError {
		log.Printf("%s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(status, models.ErrorResponse{Success: false, Message: message})
		return
	}
	c.JSON(status, models.ErrorResponse{Success: false, Message: message, Error: err.Error()})
}

// respondBindError reports a request body that failed to decode or
// validate.
func respondBindError(c *gin.Context, err error) {
	detail := err.Error()
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		detail = utils.FormatValidationErrors(verrs)
	}
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Success: false,
		Message: "Invalid request",
		Error:   detail,
	})
}

func currentUser(c *gin.Context) *models.SessionUser {
	userID := c.GetString(middleware.UserIDKey)
	if userID == "" {
		return nil
	}
	return &models.SessionUser{
		ID:              userID,
		Email:           c.GetString(middleware.UserEmailKey),
		IsAuthenticated: true,
	}
}

func getPaginationParams(c *gin.Context, defaultLimit int) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > services.MaxPageLimit {
		limit = services.MaxPageLimit
	}
	return page, limit
}

func generateLinks(c *gin.Context, page, limit, totalPages int) *models.PaginationLinks {
	scheme := "https"
	if c.Request.TLS == nil {
		scheme = "http"
	}

	host := c.Request.Host
	path := c.Request.URL.Path
	queryParams := c.Request.URL.Query()

	makeURL := func(pageNum int) string {
		newParams := url.Values{}
		for key, values := range queryParams {
			if key != "page" {
				for _, value := range values {
					newParams.Add(key, value)
				}
			}
		}
		newParams.Set("page", strconv.Itoa(pageNum))
		newParams.Set("limit", strconv.Itoa(limit))
		return fmt.Sprintf("%s://%s%s?%s", scheme, host, path, newParams.Encode())
	}

	links := &models.PaginationLinks{
		Self: makeURL(page),
	}
	if page > 1 {
		links.Prev = makeURL(page - 1)
	}
	if page < totalPages {
		links.Next = makeURL(page + 1)
	}
	return links
}

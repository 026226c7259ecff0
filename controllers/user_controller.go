package controllers

import (
	"crypto-cart/middleware"
	"crypto-cart/models"
	"crypto-cart/services"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	userService *services.UserService
}

func NewUserController(userService *services.UserService) *UserController {
	return &UserController{userService: userService}
}

func (ctrl *UserController) addressIndex(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid address index"})
		return 0, false
	}
	return index, true
}

// @Summary Get saved addresses
// @Tags Account
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Response
// @Router /account/addresses [get]
func (ctrl *UserController) GetAddresses(c *gin.Context) {
	addresses, err := ctrl.userService.GetAddresses(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	if addresses == nil {
		addresses = []models.Address{}
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Addresses retrieved", Data: addresses})
}

// @Summary Save an address
// @Tags Account
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.Address true "Address"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /account/addresses [post]
func (ctrl *UserController) AddAddress(c *gin.Context) {
	var req models.Address
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	addresses, err := ctrl.userService.AddAddress(c.Request.Context(), middleware.SessionID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.Response{Success: true, Message: "Address saved", Data: addresses})
}

// @Summary Update a saved address
// @Tags Account
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param index path int true "Address index"
// @Param request body models.Address true "Address"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /account/addresses/{index} [put]
func (ctrl *UserController) UpdateAddress(c *gin.Context) {
	index, ok := ctrl.addressIndex(c)
	if !ok {
		return
	}

	var req models.Address
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	addresses, err := ctrl.userService.UpdateAddress(c.Request.Context(), middleware.SessionID(c), index, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Address updated", Data: addresses})
}

// @Summary Delete a saved address
// @Tags Account
// @Produce json
// @Security BearerAuth
// @Param index path int true "Address index"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /account/addresses/{index} [delete]
func (ctrl *UserController) DeleteAddress(c *gin.Context) {
	index, ok := ctrl.addressIndex(c)
	if !ok {
		return
	}

	addresses, err := ctrl.userService.RemoveAddress(c.Request.Context(), middleware.SessionID(c), index)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Address deleted", Data: addresses})
}

package routes

import (
	"crypto-cart/controllers"
	"crypto-cart/handler"
	"crypto-cart/middleware"
	"crypto-cart/utils"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Controllers struct {
	Auth          *controllers.AuthController
	User          *controllers.UserController
	Product       *controllers.ProductController
	ProductDetail *controllers.ProductDetailController
	Cart          *controllers.CartController
	Transaction   *controllers.TransactionController
	Order         *controllers.OrderController

	Sessions middleware.SessionChecker
	Status   handler.Status
}

func SetupRoutes(router *gin.Engine, ctrls *Controllers, tokens *utils.TokenIssuer) error {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := utils.RegisterValidators(v); err != nil {
			return fmt.Errorf("failed to register validators: %w", err)
		}
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/", gin.WrapF(handler.Root(ctrls.Status)))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/auth/register", ctrls.Auth.Register)
	router.POST("/auth/login", ctrls.Auth.Login)
	router.GET("/categories", ctrls.Product.GetAllCategories)
	router.GET("/products", ctrls.Product.GetAllProducts)
	router.GET("/products/featured", ctrls.Product.GetFeaturedProducts)
	router.GET("/products/:id", ctrls.ProductDetail.GetProductByID)
	router.GET("/products/:id/related", ctrls.ProductDetail.GetRelatedProducts)

	cart := router.Group("/cart")
	cart.Use(middleware.OptionalAuthMiddleware(tokens, ctrls.Sessions))
	{
		cart.GET("", ctrls.Cart.GetCart)
		cart.DELETE("", ctrls.Cart.ClearCart)
		cart.POST("/items", ctrls.Cart.AddToCart)
		cart.PATCH("/items/:productId", ctrls.Cart.UpdateQuantity)
		cart.DELETE("/items/:productId", ctrls.Cart.RemoveItem)
	}

	router.POST("/checkout", middleware.OptionalAuthMiddleware(tokens, ctrls.Sessions), ctrls.Transaction.Checkout)

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware(tokens, ctrls.Sessions))
	{
		auth.POST("/auth/logout", ctrls.Auth.Logout)
		auth.GET("/auth/profile", ctrls.Auth.GetProfile)

		auth.GET("/account/addresses", ctrls.User.GetAddresses)
		auth.POST("/account/addresses", ctrls.User.AddAddress)
		auth.PUT("/account/addresses/:index", ctrls.User.UpdateAddress)
		auth.DELETE("/account/addresses/:index", ctrls.User.DeleteAddress)

		auth.GET("/orders", ctrls.Order.GetOrders)
		auth.GET("/orders/:id", ctrls.Order.GetOrderByID)
	}

	return nil
}

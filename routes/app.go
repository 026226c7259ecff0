package routes

import (
	"context"
	"crypto-cart/config"
	"crypto-cart/controllers"
	"crypto-cart/handler"
	"crypto-cart/libs"
	"crypto-cart/middleware"
	"crypto-cart/repositories"
	"crypto-cart/services"
	"crypto-cart/utils"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
)

type App struct {
	Router *gin.Engine
	Store  repositories.SnapshotStore
}

// NewControllers wires the services and controllers over one snapshot
// store and seeds the demo account. mailer may be nil.
func NewControllers(productRepo *repositories.ProductRepository, store repositories.SnapshotStore, tokens *utils.TokenIssuer, mailer services.OrderMailer) (*Controllers, error) {
	authState := repositories.NewAuthStateRepository(store)
	orderRepo := repositories.NewOrderRepository(store)

	productService := services.NewProductService(productRepo)
	cartService := services.NewCartService(productRepo, store)
	userService := services.NewUserService(authState)
	checkoutService := services.NewCheckoutService(cartService, orderRepo, userService, mailer)
	authService := services.NewAuthService(repositories.NewUserRepository(), authState, tokens)
	if err := authService.SeedDemoUser(); err != nil {
		return nil, err
	}

	return &Controllers{
		Auth:          controllers.NewAuthController(authService),
		User:          controllers.NewUserController(userService),
		Product:       controllers.NewProductController(productService),
		ProductDetail: controllers.NewProductDetailController(productService),
		Cart:          controllers.NewCartController(cartService),
		Transaction:   controllers.NewTransactionController(checkoutService),
		Order:         controllers.NewOrderController(services.NewOrderService(orderRepo)),

		Sessions: authService,
		Status: handler.Status{
			Products:   len(productRepo.FindAll()),
			Categories: len(productRepo.Categories()),
		},
	}, nil
}

// NewApp builds the whole storefront API from cfg. The router carries no
// logger or recovery middleware; callers add their own.
func NewApp(ctx context.Context, cfg *config.Config, router *gin.Engine) (*App, error) {
	productRepo, err := repositories.NewProductRepository(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	log.Printf("Catalog loaded: %d products", len(productRepo.FindAll()))

	store, err := config.OpenSnapshotStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var mailer services.OrderMailer
	if cfg.MailEnabled() {
		m, err := libs.NewMailer(libs.MailConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUser,
			Password: cfg.SMTPPass,
			From:     cfg.SMTPFrom,
		})
		if err != nil {
			store.Close()
			return nil, err
		}
		mailer = m
	} else {
		log.Println("SMTP not configured, order confirmations disabled")
	}

	tokens := utils.NewTokenIssuer(cfg.JWTSecret, cfg.JWTExpiry)
	ctrls, err := NewControllers(productRepo, store, tokens, mailer)
	if err != nil {
		store.Close()
		return nil, err
	}

	router.Use(middleware.CORSMiddleware(cfg.OriginURL))
	router.Use(middleware.SessionMiddleware())
	if err := SetupRoutes(router, ctrls, tokens); err != nil {
		store.Close()
		return nil, err
	}

	return &App{Router: router, Store: store}, nil
}

func (a *App) Close() error {
	return a.Store.Close()
}

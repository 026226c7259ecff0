package main

import (
	"context"
	"crypto-cart/config"
	_ "crypto-cart/docs"
	"crypto-cart/routes"
	"log"

	"github.com/gin-gonic/gin"
)

// @title Crypto Cart API
// @version 1.0
// @description Storefront API: catalog browsing, session carts, checkout and order history.
// @host localhost:8082
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	app, err := routes.NewApp(context.Background(), cfg, gin.Default())
	if err != nil {
		log.Fatalf("Failed to start app: %v", err)
	}
	defer app.Close()

	port := ":" + cfg.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", cfg.Port)

	if err := app.Router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

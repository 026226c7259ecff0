package api

import (
	"context"
	"crypto-cart/config"
	"crypto-cart/routes"
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
)

var (
	app     *routes.App
	initErr error
	once    sync.Once
)

func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)

		cfg, err := config.LoadConfig()
		if err != nil {
			initErr = err
			return
		}

		router := gin.New()
		router.Use(gin.Recovery())

		app, initErr = routes.NewApp(context.Background(), cfg, router)
	})
}

func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	if initErr != nil {
		log.Printf("Failed to initialize app: %v", initErr)
		http.Error(w, `{"success":false,"message":"Service unavailable"}`, http.StatusServiceUnavailable)
		return
	}
	app.Router.ServeHTTP(w, r)
}

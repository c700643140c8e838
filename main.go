package main

import (
	"net/http"

	log "github.com/sirupsen/logrus"

	"geohash-service/api"
	"geohash-service/cache"
	"geohash-service/config"
	"geohash-service/database"
)

func main() {
	log.SetFormatter(&log.JSONFormatter{})

	// Initialize configuration
	config.InitConfig()

	// Initialize database
	if err := database.InitDB(); err != nil {
		log.Fatal(err)
	}

	// Initialize Redis
	if err := cache.InitRedis(); err != nil {
		log.Fatal(err)
	}

	// Register routes
	router := api.RegisterRoutes()

	// Start the server
	log.Infof("Server started on %s", config.Cfg.Server.Addr)
	log.Fatal(http.ListenAndServe(config.Cfg.Server.Addr, router))
}

package main

import (
	"log"
	"net/http"

	"github.com/safar/go-shop-api/internal/api"
	"github.com/safar/go-shop-api/internal/config"
	"github.com/safar/go-shop-api/internal/database"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Load config: %v", err)
	}

	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		log.Fatalf("Connect to database: %v", err)
	}
	defer db.Close()

	log.Printf("Connected to database successfully")

	handler := api.NewHandler(api.NewSQLStore(db))

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      api.NewRouter(handler),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	log.Printf("Server starting on port %s", cfg.Server.Port)
	if err := server.ListenAndServe(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

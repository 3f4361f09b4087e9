package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/mlefevre/boutique-api/internal/router"
	"github.com/mlefevre/boutique-api/pkg/global"
	"github.com/mlefevre/boutique-api/pkg/store"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	catalog := store.NewCatalog()
	carts := store.NewCarts()
	orders := store.NewOrders()
	store.Seed(catalog, carts, orders)

	engine := router.NewEngine(router.Stores{
		Catalog: catalog,
		Carts:   carts,
		Orders:  orders,
	})

	port := global.GetEnvOrDefault("PORT", "8000")
	log.Printf("Server is running on port %s", port)

	if err := engine.Run(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}

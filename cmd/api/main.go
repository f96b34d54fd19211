package main

import (
	_ "nfarinati_checkout/docs"
	"nfarinati_checkout/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           N'Farinati Checkout API
// @version         1.0
// @description     Creates hosted payment checkouts for N'Farinati Delivery orders.

// @host localhost:8080

// @BasePath  /

func main() {
	routes.Run()
}

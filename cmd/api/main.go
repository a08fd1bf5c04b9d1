package main

import (
	_ "github.com/jean-devbr/Atendimento-lanche/docs"
	"github.com/jean-devbr/Atendimento-lanche/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           LancheExpress Storefront API
// @version         1.0
// @description     Ordering storefront for a small food-delivery shop: menu catalog, shopping cart, checkout with WhatsApp hand-off and an admin panel. All state is in memory for the lifetime of the process.

// @contact.name   API Support

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}

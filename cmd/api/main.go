package main

import (
	_ "paydispatch/docs"
	"paydispatch/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Payment Dispatch API
// @version         1.0
// @description     Routes payment requests to pluggable gateway families (PagSeguro-like, MercadoPago-like, Stripe-like).

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}

package main

import (
	_ "coyne_ecology/docs"
	"coyne_ecology/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Coyne Ecology Quote Service API
// @version         1.0
// @description     Quote drafting service: prices ecological survey enquiries, composes quote letters and dispatches internal review emails.

// @contact.name   Coyne Environmental
// @contact.email  review@coyne.co.uk

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}

package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tripplanner/tripplanner/pkg/api/routes"
)

func NewApp(planning *routes.Planning) *fiber.App {
	webApp := fiber.New(fiber.Config{
		AppName: "tripplanner",
	})
	webApp.Use(recover.New())
	webApp.Use(NewLogger())

	webApp.Get("version", routes.APIVersion)

	planning.Router(webApp)

	apiGroup := webApp.Group("/api", cors.New())
	apiGroup.Get("version", routes.APIVersion)
	planning.APIRouter(apiGroup)

	return webApp
}

func SetupServer(listen string, planning *routes.Planning) error {
	return NewApp(planning).Listen(listen)
}

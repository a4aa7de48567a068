package customers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/phanumatwang/finance-dashboard/app/routes/auth"
)

func SetupCustomersRoutes(app *fiber.App) {
	api := app.Group("/api/customers", auth.AuthMiddleware, auth.RoleMiddleware("admin", "superadmin"))
	api.Get("/", GetCustomersAPI)
	api.Post("/", CreateCustomerAPI)
}

package quotations

import (
	"github.com/gofiber/fiber/v2"

	"github.com/phanumatwang/finance-dashboard/app/routes/auth"
)

func SetupQuotationsRoutes(app *fiber.App) {
	api := app.Group("/api/quotations", auth.AuthMiddleware, auth.RoleMiddleware("admin", "superadmin"))
	api.Get("/", GetQuotationsAPI)
	api.Post("/", CreateQuotationAPI)
	api.Post("/:id/revise", ReviseQuotationAPI)
	api.Put("/:id/status", UpdateQuotationStatusAPI)
}

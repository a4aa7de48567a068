package transactions

import (
	"github.com/gofiber/fiber/v2"

	"github.com/phanumatwang/finance-dashboard/app/models"
	"github.com/phanumatwang/finance-dashboard/app/routes/auth"
)

func SetupTransactionsRoutes(app *fiber.App) {
	api := app.Group("/api/transactions")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetTransactionsAPI)
	api.Post("/", CreateTransactionAPI)
	api.Put("/:id/approve", auth.RoleMiddleware(models.RoleAdmin, models.RoleSuperadmin), ApproveTransactionAPI)
}

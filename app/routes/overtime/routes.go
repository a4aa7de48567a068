package overtime

import (
	"github.com/gofiber/fiber/v2"

	"github.com/phanumatwang/finance-dashboard/app/models"
	"github.com/phanumatwang/finance-dashboard/app/routes/auth"
)

func SetupOvertimeRoutes(app *fiber.App) {
	api := app.Group("/api/overtime")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetRequestsAPI)
	api.Post("/", CreateRequestAPI)
	api.Put("/:id/review", auth.RoleMiddleware(models.RoleAdmin, models.RoleSuperadmin), ReviewRequestAPI)
}

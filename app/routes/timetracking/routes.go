package timetracking

import (
	"github.com/gofiber/fiber/v2"

	"github.com/phanumatwang/finance-dashboard/app/models"
	"github.com/phanumatwang/finance-dashboard/app/routes/auth"
)

func SetupTimeTrackingRoutes(app *fiber.App) {
	api := app.Group("/api/time-tracking")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetRecordsAPI)
	api.Post("/", CheckInAPI)
	api.Put("/:id/review", auth.RoleMiddleware(models.RoleAdmin, models.RoleSuperadmin), ReviewRecordAPI)
}

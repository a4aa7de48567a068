package payments

import (
	"github.com/gofiber/fiber/v2"

	"github.com/phanumatwang/finance-dashboard/app/models"
	"github.com/phanumatwang/finance-dashboard/app/routes/auth"
)

func SetupPaymentsRoutes(app *fiber.App) {
	// Web Routes
	web := app.Group("/payroll")
	web.Use(auth.AuthMiddleware)
	web.Use(auth.RoleMiddleware(models.RoleAdmin, models.RoleSuperadmin))
	web.Get("/", PayrollPageHandler)

	// API Routes
	api := app.Group("/api/payroll")
	api.Use(auth.AuthMiddleware)
	api.Use(auth.RoleMiddleware(models.RoleAdmin, models.RoleSuperadmin))
	api.Get("/employees", GetPayableEmployeesAPI)
	api.Get("/outstanding", GetOutstandingAPI)
	api.Post("/pay", PaySalaryAPI)
}

func PayrollPageHandler(c *fiber.Ctx) error {
	caller := auth.CallerFromCtx(c)
	return c.Render("payroll/index", fiber.Map{
		"Title":       "Payroll - Finance Dashboard",
		"CurrentPage": "payroll",
		"Caller":      caller,
		"IsAdmin":     caller.IsAdmin(),
	})
}

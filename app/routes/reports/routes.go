package reports

import (
	"github.com/gofiber/fiber/v2"

	"github.com/phanumatwang/finance-dashboard/app/routes/auth"
)

func SetupReportsRoutes(app *fiber.App) {
	app.Get("/reports", auth.AuthMiddleware, auth.RoleMiddleware("admin", "superadmin"), ReportsPage)

	api := app.Group("/api/reports", auth.AuthMiddleware, auth.RoleMiddleware("admin", "superadmin"))
	api.Get("/balance", GetBalanceAPI)
	api.Get("/monthly", GetMonthlyAPI)
}

func ReportsPage(c *fiber.Ctx) error {
	caller := auth.CallerFromCtx(c)
	if caller.Name == "" {
		return c.Redirect("/auth/login")
	}
	return c.Render("dashboard/reports", fiber.Map{
		"Title":       "Reports - Finance Dashboard",
		"CurrentPage": "reports",
		"Caller":      caller,
		"IsAdmin":     caller.IsAdmin(),
	})
}

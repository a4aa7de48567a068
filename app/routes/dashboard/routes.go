package dashboard

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/phanumatwang/finance-dashboard/app/config"
	"github.com/phanumatwang/finance-dashboard/app/database"
	"github.com/phanumatwang/finance-dashboard/app/models"
	"github.com/phanumatwang/finance-dashboard/app/routes/auth"
	"github.com/phanumatwang/finance-dashboard/app/routes/reports"
)

func SetupDashboardRoutes(app *fiber.App) {
	app.Get("/dashboard", auth.AuthMiddleware, GetDashboard)
	app.Get("/api/dashboard/stats", auth.AuthMiddleware, GetDashboardStatsAPI)
}

// GetDashboard handles the landing page after login.
func GetDashboard(c *fiber.Ctx) error {
	caller := auth.CallerFromCtx(c)
	if caller.Name == "" {
		return c.Redirect("/auth/login")
	}

	var balance reports.BalanceSummary
	if caller.IsAdmin() {
		transactions, err := database.GetTransactions(config.GetDB(), models.TransactionApproved)
		if err != nil {
			log.Printf("Error loading balance for dashboard: %v", err)
		} else {
			balance = reports.Balance(transactions)
		}
	}

	return c.Render("dashboard/index", fiber.Map{
		"Title":       "Dashboard",
		"CurrentPage": "dashboard",
		"Caller":      caller,
		"IsAdmin":     caller.IsAdmin(),
		"Balance":     balance,
	})
}

// GetDashboardStatsAPI returns the headline numbers as JSON.
func GetDashboardStatsAPI(c *fiber.Ctx) error {
	caller := auth.CallerFromCtx(c)
	if caller.Name == "" {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	db := config.GetDB()
	stats := fiber.Map{}

	if caller.IsAdmin() {
		transactions, err := database.GetTransactions(db, models.TransactionApproved)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{
				"success": false,
				"error":   "Failed to fetch dashboard statistics",
			})
		}
		stats["balance"] = reports.Balance(transactions)

		employees, err := database.GetPayableEmployees(db)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{
				"success": false,
				"error":   "Failed to fetch dashboard statistics",
			})
		}
		stats["employees_awaiting_pay"] = len(employees)
	}

	records, err := database.GetWageRecords(db, caller.Name)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to fetch dashboard statistics",
		})
	}
	var outstanding int64
	for i := range records {
		if records[i].Status.Payable() {
			outstanding += records[i].RemainderCents()
		}
	}
	stats["my_outstanding_cents"] = outstanding

	return c.JSON(fiber.Map{
		"success": true,
		"data":    stats,
	})
}

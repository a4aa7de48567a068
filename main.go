package main

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"

	"github.com/phanumatwang/finance-dashboard/app/config"
	"github.com/phanumatwang/finance-dashboard/app/database"
	"github.com/phanumatwang/finance-dashboard/app/routes/auth"
	"github.com/phanumatwang/finance-dashboard/app/routes/customers"
	"github.com/phanumatwang/finance-dashboard/app/routes/dashboard"
	"github.com/phanumatwang/finance-dashboard/app/routes/overtime"
	"github.com/phanumatwang/finance-dashboard/app/routes/payments"
	"github.com/phanumatwang/finance-dashboard/app/routes/quotations"
	"github.com/phanumatwang/finance-dashboard/app/routes/reports"
	"github.com/phanumatwang/finance-dashboard/app/routes/timetracking"
	"github.com/phanumatwang/finance-dashboard/app/routes/transactions"
	"github.com/phanumatwang/finance-dashboard/app/services"
)

// customErrorHandler handles HTTP errors with custom templates
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	// API requests always get JSON
	if len(c.Path()) >= 4 && c.Path()[:4] == "/api" {
		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"code":    code,
		})
	}

	switch code {
	case 404:
		return c.Status(404).Render("404", fiber.Map{
			"Title":       "Page Not Found - Finance Dashboard",
			"CurrentPage": "",
		})
	case 401:
		return c.Redirect("/auth/login")
	case 403:
		return c.Status(403).Render("error", fiber.Map{
			"Title":        "Access Forbidden - Finance Dashboard",
			"CurrentPage":  "",
			"ErrorCode":    "403",
			"ErrorTitle":   "Access Forbidden",
			"ErrorMessage": "You don't have permission to access this resource.",
		})
	case 500:
		return c.Status(500).Render("500", fiber.Map{
			"Title":        "Server Error - Finance Dashboard",
			"CurrentPage":  "",
			"ErrorCode":    "500",
			"ErrorTitle":   "Internal Server Error",
			"ErrorMessage": "We're experiencing technical difficulties. Please try again later.",
			"ShowRetry":    true,
		})
	default:
		return c.Status(code).Render("error", fiber.Map{
			"Title":        "Error - Finance Dashboard",
			"CurrentPage":  "",
			"ErrorCode":    code,
			"ErrorTitle":   "An Error Occurred",
			"ErrorMessage": err.Error(),
		})
	}
}

func main() {
	// The business runs on Bangkok time; daily wage records key off it.
	loc, err := time.LoadLocation("Asia/Bangkok")
	if err != nil {
		log.Printf("Warning: Failed to load Asia/Bangkok location, falling back to UTC+7: %v", err)
		time.Local = time.FixedZone("ICT", 7*60*60)
	} else {
		time.Local = loc
	}
	log.Printf("Application time zone set to: %s", time.Local.String())

	config.InitDB()
	defer config.GetDB().Close()

	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	services.StartScheduler(config.GetDB())

	engine := html.New("./app/templates", ".html")
	engine.AddFunc("json", func(v interface{}) (string, error) {
		b, err := json.Marshal(v)
		return string(b), err
	})
	engine.Reload(true)
	engine.Debug(false)

	app := fiber.New(fiber.Config{
		Views:             engine,
		ViewsLayout:       "layouts/main",
		PassLocalsToViews: true,
		ErrorHandler:      customErrorHandler,
		BodyLimit:         15 * 1024 * 1024, // proof photos come from phone cameras
	})

	app.Use(logger.New())
	app.Use(cors.New())

	app.Static("/static", "./static")

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/auth/login")
	})

	auth.SetupAuthRoutes(app)
	dashboard.SetupDashboardRoutes(app)
	timetracking.SetupTimeTrackingRoutes(app)
	overtime.SetupOvertimeRoutes(app)
	payments.SetupPaymentsRoutes(app)
	transactions.SetupTransactionsRoutes(app)
	reports.SetupReportsRoutes(app)
	customers.SetupCustomersRoutes(app)
	quotations.SetupQuotationsRoutes(app)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Page not found")
	})

	log.Println("Server starting on :8080")
	log.Fatal(app.Listen(":8080"))
}

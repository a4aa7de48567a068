package reports

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/phanumatwang/finance-dashboard/app/config"
	"github.com/phanumatwang/finance-dashboard/app/database"
	"github.com/phanumatwang/finance-dashboard/app/models"
)

// GetBalanceAPI totals approved transactions into the current position.
func GetBalanceAPI(c *fiber.Ctx) error {
	transactions, err := database.GetTransactions(config.GetDB(), models.TransactionApproved)
	if err != nil {
		log.Printf("Error loading transactions for balance: %v", err)
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to load balance",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"balance": Balance(transactions),
	})
}

// GetMonthlyAPI returns the month-by-month breakdown of approved transactions.
func GetMonthlyAPI(c *fiber.Ctx) error {
	transactions, err := database.GetTransactions(config.GetDB(), models.TransactionApproved)
	if err != nil {
		log.Printf("Error loading transactions for monthly report: %v", err)
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to load monthly report",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"months":  Monthly(transactions),
	})
}

package transactions

import (
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/phanumatwang/finance-dashboard/app/config"
	"github.com/phanumatwang/finance-dashboard/app/database"
	"github.com/phanumatwang/finance-dashboard/app/models"
	"github.com/phanumatwang/finance-dashboard/app/payroll"
	"github.com/phanumatwang/finance-dashboard/app/routes/auth"
	"github.com/phanumatwang/finance-dashboard/app/services"
)

var validate = validator.New()

// GetTransactionsAPI lists bookkeeping entries, optionally by status.
func GetTransactionsAPI(c *fiber.Ctx) error {
	status := models.TransactionStatus(c.Query("status"))

	transactions, err := database.GetTransactions(config.GetDB(), status)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to load transactions: " + err.Error(),
		})
	}
	return c.JSON(fiber.Map{"success": true, "transactions": transactions})
}

type createTransactionForm struct {
	Date        string  `validate:"required"`
	Category    string  `validate:"required,oneof=income expense"`
	Description string  `validate:"required"`
	Amount      float64 `validate:"required,gt=0"`
}

// CreateTransactionAPI records one income or expense entry from a
// multipart form with an optional receipt image. Worker-created entries
// start pending; admin-created entries are approved immediately.
func CreateTransactionAPI(c *fiber.Ctx) error {
	caller := auth.CallerFromCtx(c)

	amount, err := strconv.ParseFloat(c.FormValue("amount"), 64)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid amount"})
	}
	form := createTransactionForm{
		Date:        c.FormValue("date"),
		Category:    c.FormValue("category"),
		Description: c.FormValue("description"),
		Amount:      amount,
	}
	if err := validate.Struct(&form); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "date, category, description and a positive amount are required"})
	}

	date, err := time.Parse("2006-01-02", form.Date)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid date, expected YYYY-MM-DD"})
	}

	fileURL := ""
	if receipt, ferr := c.FormFile("receipt"); ferr == nil {
		fileURL, err = services.UploadAttachment(receipt, "images")
		if err != nil {
			return c.Status(502).JSON(fiber.Map{
				"success": false,
				"error":   "Failed to upload receipt: " + err.Error(),
			})
		}
	}

	status := models.TransactionPending
	if caller.IsAdmin() {
		status = models.TransactionApproved
	}

	t := &models.Transaction{
		Date:        date,
		Category:    models.TransactionCategory(form.Category),
		Description: form.Description,
		AmountCents: payroll.ToCents(form.Amount),
		Status:      status,
		FileURL:     fileURL,
		CreatedBy:   caller.Name,
	}

	if err := database.CreateTransaction(config.GetDB(), t); err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to save transaction: " + err.Error(),
		})
	}
	return c.Status(201).JSON(fiber.Map{"success": true, "transaction": t})
}

// ApproveTransactionAPI moves a pending entry into the books.
func ApproveTransactionAPI(c *fiber.Ctx) error {
	err := database.ApproveTransaction(config.GetDB(), c.Params("id"))
	if err == database.ErrRecordConflict {
		return c.Status(409).JSON(fiber.Map{"success": false, "error": "Transaction is not pending"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to approve transaction: " + err.Error(),
		})
	}
	return c.JSON(fiber.Map{"success": true})
}

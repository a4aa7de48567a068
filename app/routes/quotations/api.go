package quotations

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/phanumatwang/finance-dashboard/app/config"
	"github.com/phanumatwang/finance-dashboard/app/database"
	"github.com/phanumatwang/finance-dashboard/app/models"
	"github.com/phanumatwang/finance-dashboard/app/routes/auth"
	"github.com/phanumatwang/finance-dashboard/app/utils"
)

var validate = validator.New()

func GetQuotationsAPI(c *fiber.Ctx) error {
	quotations, err := database.GetQuotations(config.GetDB())
	if err != nil {
		log.Printf("Error getting quotations: %v", err)
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to get quotations",
		})
	}
	return c.JSON(fiber.Map{
		"success":    true,
		"quotations": quotations,
	})
}

func CreateQuotationAPI(c *fiber.Ctx) error {
	caller := auth.CallerFromCtx(c)

	var q models.Quotation
	if err := c.BodyParser(&q); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}
	if len(q.Items) == 0 {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Quotation needs at least one item",
		})
	}
	if err := validate.Struct(&q); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid quotation: " + err.Error(),
		})
	}

	customer, err := database.GetCustomerByID(config.GetDB(), q.CustomerID)
	if err != nil {
		log.Printf("Error looking up customer %s: %v", q.CustomerID, err)
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to create quotation"})
	}
	if customer == nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Customer not found"})
	}

	ComputeTotals(&q)
	q.Status = models.QuotationDraft
	q.CreatedBy = caller.Name

	if err := database.CreateQuotation(config.GetDB(), &q); err != nil {
		log.Printf("Error creating quotation: %v", err)
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to create quotation",
		})
	}

	return c.Status(201).JSON(fiber.Map{
		"success":   true,
		"quotation": q,
	})
}

// ReviseQuotationAPI stores an edited quotation as a new row whose number
// carries the next R suffix. Edits that only touch the note do not get a
// new revision and are rejected so the numbering stays meaningful.
func ReviseQuotationAPI(c *fiber.Ctx) error {
	caller := auth.CallerFromCtx(c)

	original, err := database.GetQuotationByID(config.GetDB(), c.Params("id"))
	if err != nil {
		log.Printf("Error loading quotation %s: %v", c.Params("id"), err)
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to revise quotation"})
	}
	if original == nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Quotation not found"})
	}

	var edited models.Quotation
	if err := c.BodyParser(&edited); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}
	if len(edited.Items) == 0 {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Quotation needs at least one item",
		})
	}

	if !utils.HasContentChanged(original, &edited) {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Nothing changed that needs a revision",
		})
	}

	revision := models.Quotation{
		Number:          utils.NextRevisionNumber(original.Number),
		CustomerID:      original.CustomerID,
		Items:           edited.Items,
		Note:            edited.Note,
		DiscountPercent: edited.DiscountPercent,
		VatPercent:      edited.VatPercent,
		Status:          models.QuotationDraft,
		CreatedBy:       caller.Name,
	}
	ComputeTotals(&revision)

	if err := database.CreateQuotation(config.GetDB(), &revision); err != nil {
		log.Printf("Error creating revision of %s: %v", original.Number, err)
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to revise quotation",
		})
	}

	return c.Status(201).JSON(fiber.Map{
		"success":   true,
		"quotation": revision,
	})
}

func UpdateQuotationStatusAPI(c *fiber.Ctx) error {
	var body struct {
		Status string `json:"status" validate:"required,oneof=draft sent accepted"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}
	if err := validate.Struct(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Status must be draft, sent or accepted",
		})
	}

	err := database.UpdateQuotationStatus(config.GetDB(), c.Params("id"), models.QuotationStatus(body.Status))
	if err != nil {
		log.Printf("Error updating quotation %s: %v", c.Params("id"), err)
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to update quotation",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Quotation updated",
	})
}

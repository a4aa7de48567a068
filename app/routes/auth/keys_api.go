package auth

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/phanumatwang/finance-dashboard/app/config"
	"github.com/phanumatwang/finance-dashboard/app/database"
	"github.com/phanumatwang/finance-dashboard/app/models"
	"github.com/phanumatwang/finance-dashboard/app/payroll"
)

var validate = validator.New()

// ListKeysAPI lists active access keys. Hashes never leave the database
// layer unmasked; the model hides KeyHash from JSON.
func ListKeysAPI(c *fiber.Ctx) error {
	keys, err := database.GetActiveAccessKeys(config.GetDB())
	if err != nil {
		log.Printf("Error listing access keys: %v", err)
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to list access keys",
		})
	}
	return c.JSON(fiber.Map{"success": true, "keys": keys})
}

type createKeyRequest struct {
	Name      string  `json:"name" validate:"required"`
	Role      string  `json:"role" validate:"required,oneof=user admin superadmin"`
	Key       string  `json:"key" validate:"required,min=8"`
	DailyWage float64 `json:"daily_wage" validate:"gte=0"`
}

// CreateKeyAPI issues a new access key for an employee or admin.
func CreateKeyAPI(c *fiber.Ctx) error {
	var req createKeyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Name, role and a key of at least 8 characters are required",
		})
	}

	hash, err := HashKey(req.Key)
	if err != nil {
		log.Printf("Error hashing access key: %v", err)
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to create access key",
		})
	}

	accessKey := &models.AccessKey{
		KeyHash:        hash,
		Name:           req.Name,
		Role:           req.Role,
		DailyWageCents: payroll.ToCents(req.DailyWage),
	}
	if err := database.CreateAccessKey(config.GetDB(), accessKey); err != nil {
		log.Printf("Error creating access key for %s: %v", req.Name, err)
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to create access key",
		})
	}

	return c.Status(201).JSON(fiber.Map{"success": true, "key": accessKey})
}

// DeactivateKeyAPI revokes all access for a name.
func DeactivateKeyAPI(c *fiber.Ctx) error {
	name := c.Params("name")
	if name == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "name is required"})
	}

	if err := database.DeactivateAccessKey(config.GetDB(), name); err != nil {
		log.Printf("Error deactivating access key for %s: %v", name, err)
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to deactivate access key",
		})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Access key deactivated"})
}

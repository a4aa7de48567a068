package customers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/phanumatwang/finance-dashboard/app/config"
	"github.com/phanumatwang/finance-dashboard/app/database"
	"github.com/phanumatwang/finance-dashboard/app/models"
)

var validate = validator.New()

func GetCustomersAPI(c *fiber.Ctx) error {
	customers, err := database.GetCustomers(config.GetDB())
	if err != nil {
		log.Printf("Error getting customers: %v", err)
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to get customers",
		})
	}
	return c.JSON(fiber.Map{
		"success":   true,
		"customers": customers,
	})
}

func CreateCustomerAPI(c *fiber.Ctx) error {
	var customer models.Customer
	if err := c.BodyParser(&customer); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}
	if err := validate.Struct(&customer); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Name and telephone are required",
		})
	}

	if err := database.CreateCustomer(config.GetDB(), &customer); err != nil {
		log.Printf("Error creating customer: %v", err)
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to create customer",
		})
	}

	return c.Status(201).JSON(fiber.Map{
		"success":  true,
		"customer": customer,
	})
}

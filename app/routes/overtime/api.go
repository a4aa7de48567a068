package overtime

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/phanumatwang/finance-dashboard/app/config"
	"github.com/phanumatwang/finance-dashboard/app/database"
	"github.com/phanumatwang/finance-dashboard/app/models"
	"github.com/phanumatwang/finance-dashboard/app/payroll"
	"github.com/phanumatwang/finance-dashboard/app/routes/auth"
)

var validate = validator.New()

// GetRequestsAPI lists overtime requests; workers see their own only.
func GetRequestsAPI(c *fiber.Ctx) error {
	caller := auth.CallerFromCtx(c)

	requestedBy := caller.Name
	if caller.IsAdmin() {
		requestedBy = c.Query("employee") // empty means all
	}

	requests, err := getRequests(config.GetDB(), requestedBy)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to load requests: " + err.Error(),
		})
	}
	return c.JSON(fiber.Map{"success": true, "requests": requests})
}

type createOTRequest struct {
	Hours  float64 `json:"hours" validate:"required,gt=0,lte=16"`
	Reason string  `json:"reason" validate:"required"`
}

// CreateRequestAPI submits an OT request priced at daily wage / 8 per hour.
func CreateRequestAPI(c *fiber.Ctx) error {
	caller := auth.CallerFromCtx(c)

	var req createOTRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "hours and reason are required"})
	}

	// Hourly rate assumes an eight hour work day.
	amountCents := payroll.ToCents(req.Hours * payroll.FromCents(caller.DailyWageCents) / 8)

	now := time.Now()
	request := &models.OvertimeRequest{
		RequestedBy: caller.Name,
		Date:        time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		Hours:       req.Hours,
		Reason:      req.Reason,
		AmountCents: amountCents,
		Status:      models.OvertimePending,
	}

	if err := createRequest(config.GetDB(), request); err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to save request: " + err.Error(),
		})
	}
	return c.Status(201).JSON(fiber.Map{"success": true, "request": request})
}

type reviewOTRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}

// ReviewRequestAPI approves (creating the payable wage record) or rejects.
func ReviewRequestAPI(c *fiber.Ctx) error {
	var req reviewOTRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "status must be approved or rejected"})
	}

	var err error
	if req.Status == "approved" {
		err = approveRequest(config.GetDB(), c.Params("id"))
	} else {
		err = rejectRequest(config.GetDB(), c.Params("id"))
	}

	if err == database.ErrRecordConflict {
		return c.Status(409).JSON(fiber.Map{"success": false, "error": "Request is no longer pending"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to update request: " + err.Error(),
		})
	}
	return c.JSON(fiber.Map{"success": true})
}

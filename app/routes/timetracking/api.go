package timetracking

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/phanumatwang/finance-dashboard/app/config"
	"github.com/phanumatwang/finance-dashboard/app/database"
	"github.com/phanumatwang/finance-dashboard/app/models"
	"github.com/phanumatwang/finance-dashboard/app/routes/auth"
	"github.com/phanumatwang/finance-dashboard/app/services"
)

var validate = validator.New()

// GetRecordsAPI lists wage records. Workers see only their own; admins see
// everyone's for review.
func GetRecordsAPI(c *fiber.Ctx) error {
	caller := auth.CallerFromCtx(c)

	employee := caller.Name
	if caller.IsAdmin() {
		employee = c.Query("employee") // empty means all
	}

	records, err := database.GetWageRecords(config.GetDB(), employee)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to load records: " + err.Error(),
		})
	}
	return c.JSON(fiber.Map{"success": true, "records": records})
}

// CheckInAPI records one day of work for the caller. The wage amount comes
// from the caller's configured daily wage; an optional photo goes to
// Cloudinary. One submission per day.
func CheckInAPI(c *fiber.Ctx) error {
	caller := auth.CallerFromCtx(c)
	db := config.GetDB()

	today := time.Now()
	workDate := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	exists, err := database.HasWageRecordForDate(db, caller.Name, workDate)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to check existing records: " + err.Error(),
		})
	}
	if exists {
		return c.Status(409).JSON(fiber.Map{
			"success": false,
			"error":   "Already checked in today",
		})
	}

	fileURL := ""
	if photo, err := c.FormFile("photo"); err == nil {
		fileURL, err = services.UploadAttachment(photo, "time-tracking")
		if err != nil {
			return c.Status(502).JSON(fiber.Map{
				"success": false,
				"error":   "Failed to upload photo: " + err.Error(),
			})
		}
	}

	record := &models.WageRecord{
		Employee:    caller.Name,
		Date:        workDate,
		Description: c.FormValue("description", "daily work"),
		WageCents:   caller.DailyWageCents,
		Status:      models.WagePending,
		FileURL:     fileURL,
	}

	if err := database.CreateWageRecord(db, record); err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to save record: " + err.Error(),
		})
	}

	return c.Status(201).JSON(fiber.Map{"success": true, "record": record})
}

type reviewRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}

// ReviewRecordAPI approves or rejects a pending submission.
func ReviewRecordAPI(c *fiber.Ctx) error {
	var req reviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "status must be approved or rejected"})
	}

	err := database.ReviewWageRecord(config.GetDB(), c.Params("id"), models.WageStatus(req.Status))
	if err == database.ErrRecordConflict {
		return c.Status(409).JSON(fiber.Map{
			"success": false,
			"error":   "Record is no longer pending",
		})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to update record: " + err.Error(),
		})
	}
	return c.JSON(fiber.Map{"success": true})
}

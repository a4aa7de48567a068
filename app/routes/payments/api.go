package payments

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/phanumatwang/finance-dashboard/app/config"
	"github.com/phanumatwang/finance-dashboard/app/database"
	"github.com/phanumatwang/finance-dashboard/app/payroll"
	"github.com/phanumatwang/finance-dashboard/app/routes/auth"
	"github.com/phanumatwang/finance-dashboard/app/services"
)

// GetPayableEmployeesAPI lists employees with approved/partial records.
func GetPayableEmployeesAPI(c *fiber.Ctx) error {
	employees, err := database.GetPayableEmployees(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to fetch employees: " + err.Error(),
		})
	}
	return c.JSON(fiber.Map{"success": true, "employees": employees})
}

// monthWindow parses "2006-01" into [start, end) or returns zero times.
func monthWindow(month string) (time.Time, time.Time, error) {
	if month == "" {
		return time.Time{}, time.Time{}, nil
	}
	start, err := time.Parse("2006-01", month)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, start.AddDate(0, 1, 0), nil
}

// GetOutstandingAPI returns one employee's outstanding records and totals,
// optionally scoped to a month (?month=2006-01).
func GetOutstandingAPI(c *fiber.Ctx) error {
	employee := c.Query("employee")
	if employee == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "employee is required"})
	}

	periodStart, periodEnd, err := monthWindow(c.Query("month"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid month, expected YYYY-MM"})
	}

	records, err := database.GetOutstandingWageRecords(config.GetDB(), employee, periodStart, periodEnd)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to fetch outstanding records: " + err.Error(),
		})
	}

	outstanding := payroll.OutstandingCents(records)
	return c.JSON(fiber.Map{
		"success":           true,
		"records":           records,
		"outstanding_cents": outstanding,
		"outstanding":       payroll.FromCents(outstanding),
	})
}

// PaySalaryAPI runs one allocation: multipart form with employee, mode
// (full/partial), amount (major units, partial only), optional month and
// note, and the mandatory proof-of-payment file. Preconditions are checked
// before any upload or write; the apply phase is a single transaction.
func PaySalaryAPI(c *fiber.Ctx) error {
	caller := auth.CallerFromCtx(c)

	employee := c.FormValue("employee")
	if employee == "" {
		return payError(c, payroll.ErrNoTargetSelected)
	}

	mode := payroll.Mode(c.FormValue("mode", string(payroll.ModeFull)))
	if mode != payroll.ModeFull && mode != payroll.ModePartial {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "mode must be 'full' or 'partial'"})
	}

	var requestedCents int64
	if mode == payroll.ModePartial {
		parsed, err := strconv.ParseFloat(c.FormValue("amount"), 64)
		if err != nil {
			return payError(c, payroll.ErrInvalidPartialAmount)
		}
		requestedCents = payroll.ToCents(parsed)
	}

	periodStart, periodEnd, err := monthWindow(c.FormValue("month"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid month, expected YYYY-MM"})
	}

	proof, err := c.FormFile("proof")
	if err != nil {
		return payError(c, payroll.ErrMissingProof)
	}

	records, err := database.GetOutstandingWageRecords(config.GetDB(), employee, periodStart, periodEnd)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to fetch outstanding records: " + err.Error(),
		})
	}

	batch := payroll.Batch{
		Employee:       employee,
		Mode:           mode,
		RequestedCents: requestedCents,
		ProofURL:       proof.Filename, // replaced with the durable URL once uploaded
		Note:           c.FormValue("note"),
		PaidBy:         caller.Name,
		PeriodStart:    periodStart,
		PeriodEnd:      periodEnd,
	}

	// Dry-run the plan first so every precondition fails before the proof
	// image leaves this machine.
	if _, err := payroll.BuildPlan(records, batch, today()); err != nil {
		return payError(c, err)
	}

	proofURL, err := services.UploadAttachment(proof, "payroll")
	if err != nil {
		return c.Status(502).JSON(fiber.Map{
			"success": false,
			"stage":   "upload",
			"error":   "Failed to upload proof of payment: " + err.Error(),
		})
	}
	batch.ProofURL = proofURL

	plan, err := payroll.BuildPlan(records, batch, today())
	if err != nil {
		return payError(c, err)
	}

	if err := database.ApplyAllocationPlan(config.GetDB(), plan); err != nil {
		if errors.Is(err, database.ErrRecordConflict) {
			return c.Status(409).JSON(fiber.Map{
				"success": false,
				"stage":   "apply",
				"error":   "Records changed while paying, nothing was applied. Reload and retry.",
			})
		}
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"stage":   "apply",
			"error":   "Failed to apply payment: " + err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success":         true,
		"paid_cents":      plan.PayCents,
		"paid":            payroll.FromCents(plan.PayCents),
		"records_touched": len(plan.Mutations),
		"transaction_id":  plan.Audit.ID,
		"proof_url":       proofURL,
	})
}

func today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// payError maps allocator precondition failures to 400s.
func payError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, payroll.ErrNoTargetSelected),
		errors.Is(err, payroll.ErrNothingToPay),
		errors.Is(err, payroll.ErrMissingProof),
		errors.Is(err, payroll.ErrInvalidPartialAmount),
		errors.Is(err, payroll.ErrNoRemainingBalance):
		return c.Status(400).JSON(fiber.Map{"success": false, "error": err.Error()})
	}
	return c.Status(500).JSON(fiber.Map{"success": false, "error": err.Error()})
}

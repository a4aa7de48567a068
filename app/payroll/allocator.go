package payroll

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/phanumatwang/finance-dashboard/app/models"
)

// Precondition failures. All are detected before any write is attempted;
// the caller maps them to blocking user-facing errors.
var (
	ErrNoTargetSelected     = errors.New("no employee selected")
	ErrNothingToPay         = errors.New("no approved or partial records to pay")
	ErrMissingProof         = errors.New("proof of payment is required")
	ErrInvalidPartialAmount = errors.New("partial amount must be greater than zero")
	ErrNoRemainingBalance   = errors.New("no remaining balance to pay")
)

// Mode selects between paying the whole outstanding remainder and paying a
// caller-specified amount capped at that remainder.
type Mode string

const (
	ModeFull    Mode = "full"
	ModePartial Mode = "partial"
)

// Batch describes one payment action against one employee's outstanding
// wage records, optionally scoped to a date window [PeriodStart, PeriodEnd).
type Batch struct {
	Employee       string
	Mode           Mode
	RequestedCents int64 // only meaningful in partial mode
	ProofURL       string
	Note           string
	PaidBy         string
	PeriodStart    time.Time
	PeriodEnd      time.Time
}

// Scoped reports whether the batch is restricted to a date window.
func (b Batch) Scoped() bool {
	return !b.PeriodStart.IsZero() || !b.PeriodEnd.IsZero()
}

// Mutation is one planned wage-record update. PaidCents is the new total,
// DeltaCents the amount this run applied (zero for stale-status fixes).
type Mutation struct {
	RecordID   string
	DeltaCents int64
	PaidCents  int64
	Status     models.WageStatus
}

// Plan is the full outcome of one allocation run: the record mutations to
// apply in order plus the audit transaction to insert. Nothing is persisted
// here; the database layer applies a plan atomically.
type Plan struct {
	Employee         string
	Mode             Mode
	PayCents         int64
	OutstandingCents int64
	Mutations        []Mutation
	Audit            models.Transaction
}

// OutstandingCents sums the unpaid remainders of the given records.
// Remainders are clamped at zero so overshot rows cannot hide real debt.
func OutstandingCents(records []models.WageRecord) int64 {
	var total int64
	for i := range records {
		total += clampNonNegative(records[i].WageCents - records[i].PaidCents)
	}
	return total
}

// BuildPlan validates a payment batch against a snapshot of the employee's
// outstanding records and computes the oldest-first allocation. It is pure:
// repeated calls with identical inputs produce identical plans, and no
// record is touched beyond the last one the payment reaches.
func BuildPlan(records []models.WageRecord, b Batch, today time.Time) (*Plan, error) {
	if b.Employee == "" {
		return nil, ErrNoTargetSelected
	}
	if len(records) == 0 {
		return nil, ErrNothingToPay
	}
	if b.ProofURL == "" {
		return nil, ErrMissingProof
	}

	totalCents := OutstandingCents(records)

	payCents := totalCents
	if b.Mode == ModePartial {
		payCents = b.RequestedCents
		if payCents <= 0 {
			return nil, ErrInvalidPartialAmount
		}
		if payCents > totalCents {
			payCents = totalCents // never over-pay
		}
	}
	if totalCents == 0 || payCents <= 0 {
		return nil, ErrNoRemainingBalance
	}

	// Deterministic order: oldest date first, id breaks ties.
	sorted := make([]models.WageRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].Date.Equal(sorted[j].Date) {
			return sorted[i].Date.Before(sorted[j].Date)
		}
		return sorted[i].ID < sorted[j].ID
	})

	plan := &Plan{
		Employee:         b.Employee,
		Mode:             b.Mode,
		PayCents:         payCents,
		OutstandingCents: totalCents,
	}

	left := payCents
	for i := range sorted {
		if left <= 0 {
			break
		}
		rec := &sorted[i]
		remainder := clampNonNegative(rec.WageCents - rec.PaidCents)

		if remainder <= 0 {
			// Stale row: already covered but never flipped to paid.
			plan.Mutations = append(plan.Mutations, Mutation{
				RecordID:  rec.ID,
				PaidCents: rec.PaidCents,
				Status:    models.WagePaid,
			})
			continue
		}

		if left >= remainder {
			plan.Mutations = append(plan.Mutations, Mutation{
				RecordID:   rec.ID,
				DeltaCents: remainder,
				PaidCents:  rec.PaidCents + remainder,
				Status:     models.WagePaid,
			})
			left -= remainder
		} else {
			plan.Mutations = append(plan.Mutations, Mutation{
				RecordID:   rec.ID,
				DeltaCents: left,
				PaidCents:  rec.PaidCents + left,
				Status:     models.WagePartial,
			})
			left = 0
		}
	}

	plan.Audit = models.Transaction{
		Date:        today,
		Category:    models.CategoryExpense,
		Description: describeBatch(b, payCents),
		AmountCents: payCents,
		Status:      models.TransactionApproved,
		FileURL:     b.ProofURL,
		CreatedBy:   b.PaidBy,
	}
	return plan, nil
}

func describeBatch(b Batch, payCents int64) string {
	desc := fmt.Sprintf("Wages %s (full payment)", b.Employee)
	if b.Mode == ModePartial {
		desc = fmt.Sprintf("Wages %s (partial payment %s)", b.Employee, FormatCents(payCents))
	}
	if b.Scoped() {
		desc += fmt.Sprintf(" for %s to %s",
			b.PeriodStart.Format("2006-01-02"), b.PeriodEnd.Format("2006-01-02"))
	}
	if b.Note != "" {
		desc += " - " + b.Note
	}
	return desc
}

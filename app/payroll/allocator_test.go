package payroll

import (
	"errors"
	"testing"
	"time"

	"github.com/phanumatwang/finance-dashboard/app/models"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func rec(id, date string, wageCents, paidCents int64) models.WageRecord {
	status := models.WageApproved
	if paidCents > 0 {
		status = models.WagePartial
	}
	return models.WageRecord{
		ID:        id,
		Employee:  "somchai",
		Date:      day(date),
		WageCents: wageCents,
		PaidCents: paidCents,
		Status:    status,
	}
}

func batch(mode Mode, requested int64) Batch {
	return Batch{
		Employee:       "somchai",
		Mode:           mode,
		RequestedCents: requested,
		ProofURL:       "https://files.example/proof.jpg",
		PaidBy:         "boss",
	}
}

var today = day("2024-03-15")

func deltaSum(p *Plan) int64 {
	var sum int64
	for _, m := range p.Mutations {
		sum += m.DeltaCents
	}
	return sum
}

func TestFullPaymentCoversEverything(t *testing.T) {
	records := []models.WageRecord{
		rec("a", "2024-01-01", 30000, 0),
		rec("b", "2024-01-02", 15000, 0),
	}

	plan, err := BuildPlan(records, batch(ModeFull, 0), today)
	if err != nil {
		t.Fatalf("BuildPlan: %v", err)
	}

	if plan.PayCents != 45000 {
		t.Errorf("pay: got %d, want 45000", plan.PayCents)
	}
	if got := deltaSum(plan); got != 45000 {
		t.Errorf("sum of deltas: got %d, want 45000", got)
	}
	if len(plan.Mutations) != 2 {
		t.Fatalf("mutations: got %d, want 2", len(plan.Mutations))
	}
	for _, m := range plan.Mutations {
		if m.Status != models.WagePaid {
			t.Errorf("record %s: status %s, want paid", m.RecordID, m.Status)
		}
	}
	if plan.Mutations[0].PaidCents != 30000 || plan.Mutations[1].PaidCents != 15000 {
		t.Errorf("paid totals: got %d/%d, want 30000/15000",
			plan.Mutations[0].PaidCents, plan.Mutations[1].PaidCents)
	}
	if plan.Audit.AmountCents != 45000 {
		t.Errorf("audit amount: got %d, want 45000", plan.Audit.AmountCents)
	}
	if plan.Audit.Category != models.CategoryExpense {
		t.Errorf("audit category: got %s, want expense", plan.Audit.Category)
	}
	if plan.Audit.Status != models.TransactionApproved {
		t.Errorf("audit status: got %s, want approved", plan.Audit.Status)
	}
}

func TestPartialPaymentSplitsAcrossRecords(t *testing.T) {
	records := []models.WageRecord{
		rec("a", "2024-01-01", 30000, 0),
		rec("b", "2024-01-02", 15000, 0),
	}

	plan, err := BuildPlan(records, batch(ModePartial, 35000), today)
	if err != nil {
		t.Fatalf("BuildPlan: %v", err)
	}

	if got := deltaSum(plan); got != 35000 {
		t.Errorf("sum of deltas: got %d, want 35000 (no money created or lost)", got)
	}
	if len(plan.Mutations) != 2 {
		t.Fatalf("mutations: got %d, want 2", len(plan.Mutations))
	}
	if plan.Mutations[0].Status != models.WagePaid || plan.Mutations[0].PaidCents != 30000 {
		t.Errorf("first record: got %s/%d, want paid/30000",
			plan.Mutations[0].Status, plan.Mutations[0].PaidCents)
	}
	if plan.Mutations[1].Status != models.WagePartial || plan.Mutations[1].PaidCents != 5000 {
		t.Errorf("second record: got %s/%d, want partial/5000",
			plan.Mutations[1].Status, plan.Mutations[1].PaidCents)
	}
	if plan.Audit.AmountCents != 35000 {
		t.Errorf("audit amount: got %d, want 35000", plan.Audit.AmountCents)
	}
}

func TestAtMostOnePartialRecordRemains(t *testing.T) {
	records := []models.WageRecord{
		rec("a", "2024-01-01", 10000, 0),
		rec("b", "2024-01-02", 10000, 0),
		rec("c", "2024-01-03", 10000, 0),
		rec("d", "2024-01-04", 10000, 0),
	}

	for pay := int64(1); pay < 40000; pay += 3337 {
		plan, err := BuildPlan(records, batch(ModePartial, pay), today)
		if err != nil {
			t.Fatalf("pay=%d: %v", pay, err)
		}
		if got := deltaSum(plan); got != pay {
			t.Errorf("pay=%d: deltas sum to %d", pay, got)
		}
		partials := 0
		for _, m := range plan.Mutations {
			if m.Status == models.WagePartial {
				partials++
			}
			if m.PaidCents > 10000 {
				t.Errorf("pay=%d: record %s overpaid to %d", pay, m.RecordID, m.PaidCents)
			}
		}
		if partials > 1 {
			t.Errorf("pay=%d: %d partial records, want 0 or 1", pay, partials)
		}
	}
}

func TestOldestFirstOrdering(t *testing.T) {
	// Deliberately shuffled input; a payment of r1+1 cent must close the
	// oldest record, put one cent on the middle one, and skip the newest.
	records := []models.WageRecord{
		rec("c", "2024-01-03", 30000, 0),
		rec("a", "2024-01-01", 10000, 0),
		rec("b", "2024-01-02", 20000, 0),
	}

	plan, err := BuildPlan(records, batch(ModePartial, 10001), today)
	if err != nil {
		t.Fatalf("BuildPlan: %v", err)
	}

	if len(plan.Mutations) != 2 {
		t.Fatalf("mutations: got %d, want 2 (third record untouched)", len(plan.Mutations))
	}
	if plan.Mutations[0].RecordID != "a" || plan.Mutations[0].Status != models.WagePaid {
		t.Errorf("first mutation: got %s/%s, want a/paid",
			plan.Mutations[0].RecordID, plan.Mutations[0].Status)
	}
	if plan.Mutations[1].RecordID != "b" || plan.Mutations[1].DeltaCents != 1 {
		t.Errorf("second mutation: got %s delta %d, want b delta 1",
			plan.Mutations[1].RecordID, plan.Mutations[1].DeltaCents)
	}
	if plan.Mutations[1].Status != models.WagePartial {
		t.Errorf("second mutation status: got %s, want partial", plan.Mutations[1].Status)
	}
}

func TestTieBreakOnEqualDatesIsDeterministic(t *testing.T) {
	records := []models.WageRecord{
		rec("b", "2024-01-01", 10000, 0),
		rec("a", "2024-01-01", 10000, 0),
	}

	plan, err := BuildPlan(records, batch(ModePartial, 10000), today)
	if err != nil {
		t.Fatalf("BuildPlan: %v", err)
	}
	if plan.Mutations[0].RecordID != "a" {
		t.Errorf("tie break: paid %s first, want a (lower id)", plan.Mutations[0].RecordID)
	}
}

func TestPartialRequestAboveOutstandingIsCapped(t *testing.T) {
	records := []models.WageRecord{
		rec("a", "2024-01-01", 30000, 0),
		rec("b", "2024-01-02", 15000, 0),
	}

	plan, err := BuildPlan(records, batch(ModePartial, 99999999), today)
	if err != nil {
		t.Fatalf("BuildPlan: %v", err)
	}
	if plan.PayCents != 45000 {
		t.Errorf("pay: got %d, want capped at 45000", plan.PayCents)
	}
	for _, m := range plan.Mutations {
		if m.Status != models.WagePaid {
			t.Errorf("record %s: status %s, want paid", m.RecordID, m.Status)
		}
	}
	if plan.Audit.AmountCents != 45000 {
		t.Errorf("audit amount: got %d, want 45000", plan.Audit.AmountCents)
	}
}

func TestStaleStatusCorrectedWithoutSpendingMoney(t *testing.T) {
	// Record "a" is already fully covered but still marked approved; the
	// run must flip it to paid with a zero delta and spend everything on "b".
	records := []models.WageRecord{
		{ID: "a", Employee: "somchai", Date: day("2024-01-01"),
			WageCents: 10000, PaidCents: 10000, Status: models.WageApproved},
		rec("b", "2024-01-02", 20000, 0),
	}

	plan, err := BuildPlan(records, batch(ModeFull, 0), today)
	if err != nil {
		t.Fatalf("BuildPlan: %v", err)
	}

	if plan.PayCents != 20000 {
		t.Errorf("pay: got %d, want 20000", plan.PayCents)
	}
	if len(plan.Mutations) != 2 {
		t.Fatalf("mutations: got %d, want 2", len(plan.Mutations))
	}
	stale := plan.Mutations[0]
	if stale.RecordID != "a" || stale.DeltaCents != 0 || stale.Status != models.WagePaid {
		t.Errorf("stale fix: got %s delta %d status %s, want a delta 0 status paid",
			stale.RecordID, stale.DeltaCents, stale.Status)
	}
	if stale.PaidCents != 10000 {
		t.Errorf("stale fix paid total: got %d, want unchanged 10000", stale.PaidCents)
	}
}

func TestPreconditions(t *testing.T) {
	records := []models.WageRecord{rec("a", "2024-01-01", 10000, 0)}

	cases := []struct {
		name    string
		records []models.WageRecord
		batch   Batch
		want    error
	}{
		{"no employee", records, Batch{Mode: ModeFull, ProofURL: "u"}, ErrNoTargetSelected},
		{"empty record set", nil, batch(ModeFull, 0), ErrNothingToPay},
		{"missing proof", records,
			Batch{Employee: "somchai", Mode: ModeFull}, ErrMissingProof},
		{"zero partial amount", records, batch(ModePartial, 0), ErrInvalidPartialAmount},
		{"negative partial amount", records, batch(ModePartial, -500), ErrInvalidPartialAmount},
		{"nothing outstanding", []models.WageRecord{rec("a", "2024-01-01", 10000, 10000)},
			batch(ModeFull, 0), ErrNoRemainingBalance},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			plan, err := BuildPlan(tc.records, tc.batch, today)
			if !errors.Is(err, tc.want) {
				t.Errorf("got err %v, want %v", err, tc.want)
			}
			if plan != nil {
				t.Error("plan should be nil on precondition failure")
			}
		})
	}
}

func TestRepeatedRunsAreIdempotentOnSnapshots(t *testing.T) {
	records := []models.WageRecord{
		rec("a", "2024-01-01", 10010, 0),
		rec("b", "2024-01-02", 10010, 0),
		rec("c", "2024-01-03", 10010, 0),
	}

	first, err := BuildPlan(records, batch(ModePartial, 15000), today)
	if err != nil {
		t.Fatalf("BuildPlan: %v", err)
	}
	second, err := BuildPlan(records, batch(ModePartial, 15000), today)
	if err != nil {
		t.Fatalf("BuildPlan: %v", err)
	}
	if len(first.Mutations) != len(second.Mutations) {
		t.Fatalf("plans differ in length: %d vs %d", len(first.Mutations), len(second.Mutations))
	}
	for i := range first.Mutations {
		if first.Mutations[i] != second.Mutations[i] {
			t.Errorf("mutation %d differs: %+v vs %+v", i, first.Mutations[i], second.Mutations[i])
		}
	}
}

func TestRoundingStabilityOverSuccessiveRuns(t *testing.T) {
	// Fraction-prone wages; allocate in small partial chunks until settled
	// and verify no record ever exceeds its wage.
	records := []models.WageRecord{
		rec("a", "2024-01-01", ToCents(100.10), 0),
		rec("b", "2024-01-02", ToCents(100.10), 0),
		rec("c", "2024-01-03", ToCents(100.10), 0),
	}

	for run := 0; run < 100; run++ {
		if OutstandingCents(records) == 0 {
			break
		}
		plan, err := BuildPlan(records, batch(ModePartial, ToCents(33.33)), today)
		if err != nil {
			t.Fatalf("run %d: %v", run, err)
		}
		// Apply the plan to the in-memory snapshot.
		for _, m := range plan.Mutations {
			for i := range records {
				if records[i].ID == m.RecordID {
					records[i].PaidCents = m.PaidCents
					records[i].Status = m.Status
				}
			}
		}
		for i := range records {
			if records[i].PaidCents > records[i].WageCents {
				t.Fatalf("run %d: record %s paid %d exceeds wage %d",
					run, records[i].ID, records[i].PaidCents, records[i].WageCents)
			}
		}
	}

	if got := OutstandingCents(records); got != 0 {
		t.Errorf("outstanding after settlement: got %d, want 0", got)
	}
	for i := range records {
		if records[i].Status != models.WagePaid {
			t.Errorf("record %s: status %s, want paid", records[i].ID, records[i].Status)
		}
	}
}

func TestScopedBatchDescriptionNamesThePeriod(t *testing.T) {
	b := batch(ModeFull, 0)
	b.PeriodStart = day("2024-01-01")
	b.PeriodEnd = day("2024-02-01")
	b.Note = "January wages"

	plan, err := BuildPlan([]models.WageRecord{rec("a", "2024-01-05", 10000, 0)}, b, today)
	if err != nil {
		t.Fatalf("BuildPlan: %v", err)
	}
	want := "Wages somchai (full payment) for 2024-01-01 to 2024-02-01 - January wages"
	if plan.Audit.Description != want {
		t.Errorf("description:\n got %q\nwant %q", plan.Audit.Description, want)
	}
	if !plan.Audit.Date.Equal(today) {
		t.Errorf("audit date: got %v, want %v", plan.Audit.Date, today)
	}
}

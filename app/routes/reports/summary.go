package reports

import (
	"sort"

	"github.com/phanumatwang/finance-dashboard/app/models"
)

// BalanceSummary is the running position of the books.
type BalanceSummary struct {
	IncomeCents  int64 `json:"income_cents"`
	ExpenseCents int64 `json:"expense_cents"`
	BalanceCents int64 `json:"balance_cents"`
}

// MonthSummary aggregates one calendar month of approved transactions with
// a per-description breakdown for drill-down charts.
type MonthSummary struct {
	Key           string           `json:"key"` // YYYY-MM
	IncomeCents   int64            `json:"income_cents"`
	ExpenseCents  int64            `json:"expense_cents"`
	IncomeDetail  map[string]int64 `json:"income_detail"`
	ExpenseDetail map[string]int64 `json:"expense_detail"`
}

// Balance totals income against expense.
func Balance(transactions []models.Transaction) BalanceSummary {
	var s BalanceSummary
	for i := range transactions {
		if transactions[i].Category == models.CategoryIncome {
			s.IncomeCents += transactions[i].AmountCents
		} else {
			s.ExpenseCents += transactions[i].AmountCents
		}
	}
	s.BalanceCents = s.IncomeCents - s.ExpenseCents
	return s
}

// Monthly groups transactions by calendar month, oldest month first.
func Monthly(transactions []models.Transaction) []MonthSummary {
	byKey := map[string]*MonthSummary{}
	for i := range transactions {
		t := &transactions[i]
		key := t.Date.Format("2006-01")

		m, ok := byKey[key]
		if !ok {
			m = &MonthSummary{
				Key:           key,
				IncomeDetail:  map[string]int64{},
				ExpenseDetail: map[string]int64{},
			}
			byKey[key] = m
		}

		desc := t.Description
		if desc == "" {
			desc = "-"
		}
		if t.Category == models.CategoryIncome {
			m.IncomeCents += t.AmountCents
			m.IncomeDetail[desc] += t.AmountCents
		} else {
			m.ExpenseCents += t.AmountCents
			m.ExpenseDetail[desc] += t.AmountCents
		}
	}

	months := make([]MonthSummary, 0, len(byKey))
	for _, m := range byKey {
		months = append(months, *m)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Key < months[j].Key })
	return months
}

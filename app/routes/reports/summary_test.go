package reports

import (
	"testing"
	"time"

	"github.com/phanumatwang/finance-dashboard/app/models"
)

func tx(category models.TransactionCategory, cents int64, date string, desc string) models.Transaction {
	d, _ := time.Parse("2006-01-02", date)
	return models.Transaction{
		Category:    category,
		AmountCents: cents,
		Date:        d,
		Description: desc,
		Status:      models.TransactionApproved,
	}
}

func TestBalanceNetsIncomeAgainstExpense(t *testing.T) {
	s := Balance([]models.Transaction{
		tx(models.CategoryIncome, 500000, "2026-01-05", "Invoice 12"),
		tx(models.CategoryIncome, 120000, "2026-01-09", "Invoice 13"),
		tx(models.CategoryExpense, 350000, "2026-01-31", "Wages January"),
	})

	if s.IncomeCents != 620000 {
		t.Errorf("income = %d, want 620000", s.IncomeCents)
	}
	if s.ExpenseCents != 350000 {
		t.Errorf("expense = %d, want 350000", s.ExpenseCents)
	}
	if s.BalanceCents != 270000 {
		t.Errorf("balance = %d, want 270000", s.BalanceCents)
	}
}

func TestBalanceOfNothingIsZero(t *testing.T) {
	s := Balance(nil)
	if s.IncomeCents != 0 || s.ExpenseCents != 0 || s.BalanceCents != 0 {
		t.Errorf("empty balance = %+v, want zeros", s)
	}
}

func TestMonthlyGroupsByCalendarMonth(t *testing.T) {
	months := Monthly([]models.Transaction{
		tx(models.CategoryExpense, 100000, "2026-02-02", "Materials"),
		tx(models.CategoryIncome, 500000, "2026-01-05", "Invoice 12"),
		tx(models.CategoryExpense, 200000, "2026-01-20", "Wages January"),
		tx(models.CategoryExpense, 50000, "2026-01-22", "Wages January"),
	})

	if len(months) != 2 {
		t.Fatalf("got %d months, want 2", len(months))
	}
	if months[0].Key != "2026-01" || months[1].Key != "2026-02" {
		t.Fatalf("month order = %s, %s; want 2026-01, 2026-02", months[0].Key, months[1].Key)
	}

	jan := months[0]
	if jan.IncomeCents != 500000 {
		t.Errorf("january income = %d, want 500000", jan.IncomeCents)
	}
	if jan.ExpenseCents != 250000 {
		t.Errorf("january expense = %d, want 250000", jan.ExpenseCents)
	}
	if jan.ExpenseDetail["Wages January"] != 250000 {
		t.Errorf("wage detail = %d, want 250000", jan.ExpenseDetail["Wages January"])
	}
}

func TestMonthlyUsesPlaceholderForBlankDescription(t *testing.T) {
	months := Monthly([]models.Transaction{
		tx(models.CategoryExpense, 1500, "2026-03-01", ""),
	})
	if months[0].ExpenseDetail["-"] != 1500 {
		t.Errorf("blank description detail = %v, want under \"-\"", months[0].ExpenseDetail)
	}
}

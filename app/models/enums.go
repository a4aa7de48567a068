package models

// WageStatus defines the lifecycle of a wage record.
// Only approved and partial records are eligible for payment allocation.
type WageStatus string

const (
	WagePending  WageStatus = "pending"
	WageApproved WageStatus = "approved"
	WagePartial  WageStatus = "partial"
	WagePaid     WageStatus = "paid"
	WageRejected WageStatus = "rejected"
)

// Payable reports whether a record can still receive an allocation.
func (s WageStatus) Payable() bool {
	return s == WageApproved || s == WagePartial
}

// TransactionCategory defines the bookkeeping side of a transaction.
type TransactionCategory string

const (
	CategoryIncome  TransactionCategory = "income"
	CategoryExpense TransactionCategory = "expense"
)

// TransactionStatus defines the review state of a bookkeeping entry.
type TransactionStatus string

const (
	TransactionPending  TransactionStatus = "pending"
	TransactionApproved TransactionStatus = "approved"
)

// OvertimeStatus defines the review state of an overtime request.
type OvertimeStatus string

const (
	OvertimePending  OvertimeStatus = "pending"
	OvertimeApproved OvertimeStatus = "approved"
	OvertimeRejected OvertimeStatus = "rejected"
)

// QuotationStatus defines the lifecycle of a quotation.
type QuotationStatus string

const (
	QuotationDraft    QuotationStatus = "draft"
	QuotationSent     QuotationStatus = "sent"
	QuotationAccepted QuotationStatus = "accepted"
)

// Access roles. Workers see their own records only; admins review and pay.
const (
	RoleUser       = "user"
	RoleAdmin      = "admin"
	RoleSuperadmin = "superadmin"
)

package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/phanumatwang/finance-dashboard/app/models"
	"github.com/phanumatwang/finance-dashboard/app/payroll"
)

// ErrRecordConflict is returned when a wage record changed between the
// snapshot read and the conditional update, i.e. another payment run (or a
// reviewer) touched it first. The whole allocation rolls back.
var ErrRecordConflict = errors.New("wage record was modified by another operation")

// GetPayableEmployees lists employees that still have approved or partial
// wage records awaiting payment.
func GetPayableEmployees(db *sql.DB) ([]string, error) {
	query := `SELECT DISTINCT created_by FROM time_tracking
	          WHERE status IN ('approved', 'partial')
	          ORDER BY created_by`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		employees = append(employees, name)
	}
	return employees, nil
}

// GetOutstandingWageRecords returns one employee's approved/partial records
// oldest first, optionally windowed to [periodStart, periodEnd). Zero times
// mean no window.
func GetOutstandingWageRecords(db *sql.DB, employee string, periodStart, periodEnd time.Time) ([]models.WageRecord, error) {
	query := `SELECT id, created_by, date, COALESCE(description, ''), wage_amount, paid_amount, status,
	          COALESCE(file_url, ''), created_at, updated_at
	          FROM time_tracking
	          WHERE created_by = $1 AND status IN ('approved', 'partial')`
	args := []interface{}{employee}

	if !periodStart.IsZero() {
		query += fmt.Sprintf(" AND date >= $%d AND date < $%d", len(args)+1, len(args)+2)
		args = append(args, periodStart, periodEnd)
	}
	query += " ORDER BY date ASC, id ASC"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []models.WageRecord{}
	for rows.Next() {
		var r models.WageRecord
		var status string
		err := rows.Scan(&r.ID, &r.Employee, &r.Date, &r.Description,
			&r.WageCents, &r.PaidCents, &status, &r.FileURL, &r.CreatedAt, &r.UpdatedAt)
		if err != nil {
			return nil, err
		}
		r.Status = models.WageStatus(status)
		records = append(records, r)
	}
	return records, rows.Err()
}

// ApplyAllocationPlan persists one allocation run atomically: the audit
// transaction is inserted first, then every record mutation in plan order.
// Each update carries a status predicate so a record that another run
// already advanced aborts the whole transaction instead of double-paying.
func ApplyAllocationPlan(db *sql.DB, plan *payroll.Plan) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	queryAudit := `INSERT INTO transactions (date, category, description, amount, status, file_url, created_by)
	               VALUES ($1, $2, $3, $4, $5, $6, $7)
	               RETURNING id, created_at`
	err = tx.QueryRow(queryAudit,
		plan.Audit.Date,
		string(plan.Audit.Category),
		plan.Audit.Description,
		plan.Audit.AmountCents,
		string(plan.Audit.Status),
		plan.Audit.FileURL,
		plan.Audit.CreatedBy,
	).Scan(&plan.Audit.ID, &plan.Audit.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert audit transaction: %v", err)
	}

	queryUpdate := `UPDATE time_tracking
	                SET paid_amount = $1, status = $2, updated_at = NOW()
	                WHERE id = $3 AND status IN ('approved', 'partial')`
	for _, m := range plan.Mutations {
		res, err := tx.Exec(queryUpdate, m.PaidCents, string(m.Status), m.RecordID)
		if err != nil {
			return fmt.Errorf("failed to update wage record %s: %v", m.RecordID, err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected != 1 {
			return ErrRecordConflict
		}
	}

	return tx.Commit()
}

// CreateWageRecord inserts a new wage record (time-tracking submission or
// an approved overtime payout line).
func CreateWageRecord(db *sql.DB, r *models.WageRecord) error {
	query := `INSERT INTO time_tracking (created_by, date, description, wage_amount, paid_amount, status, file_url)
	          VALUES ($1, $2, $3, $4, 0, $5, $6)
	          RETURNING id, created_at, updated_at`
	return db.QueryRow(query,
		r.Employee, r.Date, r.Description, r.WageCents, string(r.Status), r.FileURL,
	).Scan(&r.ID, &r.CreatedAt, &r.UpdatedAt)
}

// GetWageRecords lists wage records newest first. An empty employee returns
// everyone's records (admin review view).
func GetWageRecords(db *sql.DB, employee string) ([]models.WageRecord, error) {
	query := `SELECT id, created_by, date, COALESCE(description, ''), wage_amount, paid_amount, status,
	          COALESCE(file_url, ''), created_at, updated_at
	          FROM time_tracking`
	args := []interface{}{}
	if employee != "" {
		query += " WHERE created_by = $1"
		args = append(args, employee)
	}
	query += " ORDER BY created_at DESC LIMIT 200"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []models.WageRecord{}
	for rows.Next() {
		var r models.WageRecord
		var status string
		err := rows.Scan(&r.ID, &r.Employee, &r.Date, &r.Description,
			&r.WageCents, &r.PaidCents, &status, &r.FileURL, &r.CreatedAt, &r.UpdatedAt)
		if err != nil {
			return nil, err
		}
		r.Status = models.WageStatus(status)
		records = append(records, r)
	}
	return records, rows.Err()
}

// HasWageRecordForDate reports whether the employee already submitted a
// record for the given work date.
func HasWageRecordForDate(db *sql.DB, employee string, date time.Time) (bool, error) {
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM time_tracking WHERE created_by = $1 AND date = $2`,
		employee, date).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ReviewWageRecord moves a pending record to approved or rejected. The
// pending predicate keeps reviewers from clobbering records that payroll
// already started paying.
func ReviewWageRecord(db *sql.DB, id string, status models.WageStatus) error {
	if status != models.WageApproved && status != models.WageRejected {
		return fmt.Errorf("invalid review status: %s", status)
	}
	res, err := db.Exec(`UPDATE time_tracking SET status = $1, updated_at = NOW()
	                     WHERE id = $2 AND status = 'pending'`, string(status), id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected != 1 {
		return ErrRecordConflict
	}
	return nil
}

// SweepStalePaidStatuses flips records whose remainder is already zero but
// whose status never advanced to paid. Returns the number of rows fixed.
func SweepStalePaidStatuses(db *sql.DB) (int64, error) {
	res, err := db.Exec(`UPDATE time_tracking SET status = 'paid', updated_at = NOW()
	                     WHERE status IN ('approved', 'partial') AND paid_amount >= wage_amount AND wage_amount > 0`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

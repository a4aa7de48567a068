package overtime

import (
	"database/sql"
	"fmt"

	"github.com/phanumatwang/finance-dashboard/app/database"
	"github.com/phanumatwang/finance-dashboard/app/models"
)

func createRequest(db *sql.DB, r *models.OvertimeRequest) error {
	query := `INSERT INTO overtime_requests (requested_by, date, hours, reason, ot_amount, status)
	          VALUES ($1, $2, $3, $4, $5, 'pending')
	          RETURNING id, created_at`
	return db.QueryRow(query, r.RequestedBy, r.Date, r.Hours, r.Reason, r.AmountCents).
		Scan(&r.ID, &r.CreatedAt)
}

func getRequests(db *sql.DB, requestedBy string) ([]models.OvertimeRequest, error) {
	query := `SELECT id, requested_by, date, hours, COALESCE(reason, ''), ot_amount, status, created_at
	          FROM overtime_requests`
	args := []interface{}{}
	if requestedBy != "" {
		query += " WHERE requested_by = $1"
		args = append(args, requestedBy)
	}
	query += " ORDER BY created_at DESC LIMIT 200"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := []models.OvertimeRequest{}
	for rows.Next() {
		var r models.OvertimeRequest
		var status string
		err := rows.Scan(&r.ID, &r.RequestedBy, &r.Date, &r.Hours, &r.Reason,
			&r.AmountCents, &status, &r.CreatedAt)
		if err != nil {
			return nil, err
		}
		r.Status = models.OvertimeStatus(status)
		requests = append(requests, r)
	}
	return requests, rows.Err()
}

// approveRequest flips a pending request to approved and inserts the
// matching approved wage record in the same transaction, so the OT amount
// becomes payable through the normal allocation run.
func approveRequest(db *sql.DB, id string) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var r models.OvertimeRequest
	err = tx.QueryRow(`UPDATE overtime_requests SET status = 'approved'
	                   WHERE id = $1 AND status = 'pending'
	                   RETURNING requested_by, date, hours, ot_amount`, id).
		Scan(&r.RequestedBy, &r.Date, &r.Hours, &r.AmountCents)
	if err == sql.ErrNoRows {
		return database.ErrRecordConflict
	}
	if err != nil {
		return fmt.Errorf("failed to approve overtime request: %v", err)
	}

	_, err = tx.Exec(`INSERT INTO time_tracking (created_by, date, description, wage_amount, paid_amount, status)
	                  VALUES ($1, $2, $3, $4, 0, 'approved')`,
		r.RequestedBy, r.Date, fmt.Sprintf("OT %.1f hours", r.Hours), r.AmountCents)
	if err != nil {
		return fmt.Errorf("failed to create OT wage record: %v", err)
	}

	return tx.Commit()
}

func rejectRequest(db *sql.DB, id string) error {
	res, err := db.Exec(`UPDATE overtime_requests SET status = 'rejected'
	                     WHERE id = $1 AND status = 'pending'`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected != 1 {
		return database.ErrRecordConflict
	}
	return nil
}

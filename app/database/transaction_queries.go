package database

import (
	"database/sql"

	"github.com/phanumatwang/finance-dashboard/app/models"
)

// CreateTransaction inserts one bookkeeping entry.
func CreateTransaction(db *sql.DB, t *models.Transaction) error {
	query := `INSERT INTO transactions (date, category, description, amount, status, file_url, created_by)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)
	          RETURNING id, created_at`
	return db.QueryRow(query,
		t.Date, string(t.Category), t.Description, t.AmountCents,
		string(t.Status), t.FileURL, t.CreatedBy,
	).Scan(&t.ID, &t.CreatedAt)
}

// GetTransactions lists entries newest first, optionally filtered to one
// status ("" means all).
func GetTransactions(db *sql.DB, status models.TransactionStatus) ([]models.Transaction, error) {
	query := `SELECT id, date, category, COALESCE(description, ''), amount, status,
	          COALESCE(file_url, ''), COALESCE(created_by, ''), created_at
	          FROM transactions`
	args := []interface{}{}
	if status != "" {
		query += " WHERE status = $1"
		args = append(args, string(status))
	}
	query += " ORDER BY date DESC, created_at DESC LIMIT 500"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	transactions := []models.Transaction{}
	for rows.Next() {
		var t models.Transaction
		var category, st string
		err := rows.Scan(&t.ID, &t.Date, &category, &t.Description, &t.AmountCents,
			&st, &t.FileURL, &t.CreatedBy, &t.CreatedAt)
		if err != nil {
			return nil, err
		}
		t.Category = models.TransactionCategory(category)
		t.Status = models.TransactionStatus(st)
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}

// ApproveTransaction moves a pending entry to approved.
func ApproveTransaction(db *sql.DB, id string) error {
	res, err := db.Exec(`UPDATE transactions SET status = 'approved'
	                     WHERE id = $1 AND status = 'pending'`, id)
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

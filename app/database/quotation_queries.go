package database

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/phanumatwang/finance-dashboard/app/models"
)

func CreateQuotation(db *sql.DB, q *models.Quotation) error {
	items, err := json.Marshal(q.Items)
	if err != nil {
		return fmt.Errorf("failed to encode quotation items: %v", err)
	}

	q.ID = uuid.New().String()
	err = db.QueryRow(`
		INSERT INTO quotations
			(id, number, customer_id, items, note, subtotal,
			 discount_percent, discount_amount, vat_percent, vat_amount,
			 total, status, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING created_at`,
		q.ID, q.Number, q.CustomerID, items, q.Note, q.SubtotalCents,
		q.DiscountPercent, q.DiscountCents, q.VatPercent, q.VatCents,
		q.TotalCents, q.Status, q.CreatedBy,
	).Scan(&q.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create quotation: %v", err)
	}
	return nil
}

func scanQuotation(scan func(dest ...any) error) (*models.Quotation, error) {
	var q models.Quotation
	var items []byte
	var customerName sql.NullString
	err := scan(
		&q.ID, &q.Number, &q.CustomerID, &items, &q.Note, &q.SubtotalCents,
		&q.DiscountPercent, &q.DiscountCents, &q.VatPercent, &q.VatCents,
		&q.TotalCents, &q.Status, &q.CreatedBy, &q.CreatedAt, &customerName,
	)
	if err != nil {
		return nil, err
	}
	if len(items) > 0 {
		if err := json.Unmarshal(items, &q.Items); err != nil {
			return nil, fmt.Errorf("failed to decode quotation items: %v", err)
		}
	}
	if customerName.Valid {
		q.Customer = &models.Customer{ID: q.CustomerID, Name: customerName.String}
	}
	return &q, nil
}

const quotationColumns = `
	q.id, q.number, q.customer_id, q.items, q.note, q.subtotal,
	q.discount_percent, q.discount_amount, q.vat_percent, q.vat_amount,
	q.total, q.status, q.created_by, q.created_at, c.name`

func GetQuotations(db *sql.DB) ([]models.Quotation, error) {
	rows, err := db.Query(`
		SELECT ` + quotationColumns + `
		FROM quotations q
		LEFT JOIN customers c ON c.id = q.customer_id
		ORDER BY q.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to get quotations: %v", err)
	}
	defer rows.Close()

	var quotations []models.Quotation
	for rows.Next() {
		q, err := scanQuotation(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan quotation: %v", err)
		}
		quotations = append(quotations, *q)
	}
	return quotations, rows.Err()
}

func GetQuotationByID(db *sql.DB, id string) (*models.Quotation, error) {
	row := db.QueryRow(`
		SELECT `+quotationColumns+`
		FROM quotations q
		LEFT JOIN customers c ON c.id = q.customer_id
		WHERE q.id = $1`, id)

	q, err := scanQuotation(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get quotation: %v", err)
	}
	return q, nil
}

func UpdateQuotationStatus(db *sql.DB, id string, status models.QuotationStatus) error {
	result, err := db.Exec(`
		UPDATE quotations SET status = $1 WHERE id = $2`,
		status, id)
	if err != nil {
		return fmt.Errorf("failed to update quotation status: %v", err)
	}
	affected, _ := result.RowsAffected()
	if affected == 0 {
		return fmt.Errorf("quotation not found")
	}
	return nil
}

package database

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/phanumatwang/finance-dashboard/app/models"
)

func CreateCustomer(db *sql.DB, customer *models.Customer) error {
	customer.ID = uuid.New().String()
	err := db.QueryRow(`
		INSERT INTO customers (id, name, tel, address)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`,
		customer.ID, customer.Name, customer.Tel, customer.Address,
	).Scan(&customer.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create customer: %v", err)
	}
	return nil
}

func GetCustomers(db *sql.DB) ([]models.Customer, error) {
	rows, err := db.Query(`
		SELECT id, name, tel, address, created_at
		FROM customers
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to get customers: %v", err)
	}
	defer rows.Close()

	var customers []models.Customer
	for rows.Next() {
		var c models.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Tel, &c.Address, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan customer: %v", err)
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func GetCustomerByID(db *sql.DB, id string) (*models.Customer, error) {
	var c models.Customer
	err := db.QueryRow(`
		SELECT id, name, tel, address, created_at
		FROM customers
		WHERE id = $1`, id,
	).Scan(&c.ID, &c.Name, &c.Tel, &c.Address, &c.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %v", err)
	}
	return &c, nil
}

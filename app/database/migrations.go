package database

import (
	"database/sql"
	"log"
)

// RunMigrations ensures necessary tables, columns and indexes exist.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	queries := []string{
		`CREATE TABLE IF NOT EXISTS access_keys (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			key_hash TEXT NOT NULL,
			name VARCHAR(100) UNIQUE NOT NULL,
			role VARCHAR(20) NOT NULL DEFAULT 'user',
			daily_wage BIGINT NOT NULL DEFAULT 0,
			is_active BOOLEAN DEFAULT true,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS time_tracking (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			created_by VARCHAR(100) NOT NULL,
			date DATE NOT NULL,
			description TEXT,
			wage_amount BIGINT NOT NULL DEFAULT 0,
			paid_amount BIGINT NOT NULL DEFAULT 0,
			status VARCHAR(20) NOT NULL DEFAULT 'pending',
			file_url TEXT,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS overtime_requests (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			requested_by VARCHAR(100) NOT NULL,
			date DATE NOT NULL,
			hours DOUBLE PRECISION NOT NULL,
			reason TEXT,
			ot_amount BIGINT NOT NULL DEFAULT 0,
			status VARCHAR(10) NOT NULL DEFAULT 'pending',
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS transactions (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			date DATE NOT NULL,
			category VARCHAR(10) NOT NULL,
			description TEXT,
			amount BIGINT NOT NULL,
			status VARCHAR(10) NOT NULL DEFAULT 'pending',
			file_url TEXT,
			created_by VARCHAR(100),
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS customers (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(255) NOT NULL,
			tel VARCHAR(30) NOT NULL,
			address TEXT,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS quotations (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			number VARCHAR(50) UNIQUE NOT NULL,
			customer_id UUID NOT NULL REFERENCES customers(id),
			items JSONB NOT NULL DEFAULT '[]',
			note TEXT,
			subtotal BIGINT NOT NULL DEFAULT 0,
			discount_percent DOUBLE PRECISION NOT NULL DEFAULT 0,
			discount_amount BIGINT NOT NULL DEFAULT 0,
			vat_percent DOUBLE PRECISION NOT NULL DEFAULT 7,
			vat_amount BIGINT NOT NULL DEFAULT 0,
			total BIGINT NOT NULL DEFAULT 0,
			status VARCHAR(10) NOT NULL DEFAULT 'draft',
			created_by VARCHAR(100),
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
	}

	for _, q := range queries {
		if _, err := db.Exec(q); err != nil {
			log.Printf("Error creating tables: %v", err)
			return err
		}
	}

	// Indexes for the hot paths: payroll pulls by employee+status+date,
	// reports pull approved transactions by date.
	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_time_tracking_created_by ON time_tracking(created_by)`,
		`CREATE INDEX IF NOT EXISTS idx_time_tracking_status ON time_tracking(status)`,
		`CREATE INDEX IF NOT EXISTS idx_time_tracking_date ON time_tracking(date)`,
		`CREATE INDEX IF NOT EXISTS idx_overtime_requested_by ON overtime_requests(requested_by)`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_date ON transactions(date)`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_status ON transactions(status)`,
		`CREATE INDEX IF NOT EXISTS idx_quotations_customer_id ON quotations(customer_id)`,
	}

	for _, m := range indexes {
		if _, err := db.Exec(m); err != nil {
			log.Printf("Error creating index: %v", err)
			// Continue as some might be duplicate index errors depending on PG version
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}

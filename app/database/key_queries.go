package database

import (
	"database/sql"

	"github.com/phanumatwang/finance-dashboard/app/models"
)

// CreateAccessKey stores a new login key (already bcrypt-hashed).
func CreateAccessKey(db *sql.DB, k *models.AccessKey) error {
	query := `INSERT INTO access_keys (key_hash, name, role, daily_wage, is_active)
	          VALUES ($1, $2, $3, $4, true)
	          RETURNING id, created_at`
	return db.QueryRow(query, k.KeyHash, k.Name, k.Role, k.DailyWageCents).
		Scan(&k.ID, &k.CreatedAt)
}

// GetActiveAccessKeys returns every active key for login matching. The key
// space is a handful of employees, so comparing bcrypt hashes in a loop at
// login time is acceptable.
func GetActiveAccessKeys(db *sql.DB) ([]models.AccessKey, error) {
	query := `SELECT id, key_hash, name, role, daily_wage, is_active, created_at
	          FROM access_keys WHERE is_active = true`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	keys := []models.AccessKey{}
	for rows.Next() {
		var k models.AccessKey
		err := rows.Scan(&k.ID, &k.KeyHash, &k.Name, &k.Role,
			&k.DailyWageCents, &k.IsActive, &k.CreatedAt)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

// DeactivateAccessKey revokes a key without deleting its audit history.
func DeactivateAccessKey(db *sql.DB, name string) error {
	_, err := db.Exec(`UPDATE access_keys SET is_active = false WHERE name = $1`, name)
	return err
}

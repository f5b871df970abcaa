package repository

import (
	"database/sql"

	"taskdesk/internal/models"
)

// GetSettings mengambil baris konfigurasi tunggal (id = 1).
func GetSettings(db *sql.DB) (models.Settings, error) {
	var s models.Settings
	err := db.QueryRow(
		"SELECT id, company_name, company_email, timezone, ip_address FROM settings LIMIT 1",
	).Scan(&s.ID, &s.CompanyName, &s.CompanyEmail, &s.Timezone, &s.IPAddress)
	return s, err
}

// UpdateSettings memperbarui baris konfigurasi tunggal. Tidak pernah
// membuat atau menghapus baris.
func UpdateSettings(db *sql.DB, s models.Settings) error {
	_, err := db.Exec(
		"UPDATE settings SET company_name = $1, company_email = $2, timezone = $3, ip_address = $4 WHERE id = 1",
		s.CompanyName, s.CompanyEmail, s.Timezone, s.IPAddress,
	)
	return err
}

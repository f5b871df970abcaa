package repository

import (
	"database/sql"

	"taskdesk/internal/models"
)

// FindUserByLogin mengambil user berdasarkan email dan role.
// Email dan role harus cocok dengan tepat satu baris; verifikasi
// password (bcrypt) dilakukan oleh caller.
func FindUserByLogin(db *sql.DB, email, role string) (models.User, error) {
	var user models.User
	err := db.QueryRow(
		"SELECT id, name, email, password, role, department FROM users WHERE email = $1 AND role = $2",
		email, role,
	).Scan(&user.ID, &user.Name, &user.Email, &user.Password, &user.Role, &user.Department)
	return user, err
}

// ListUsers mengembalikan semua user tanpa kolom password.
func ListUsers(db *sql.DB) ([]models.User, error) {
	rows, err := db.Query("SELECT id, name, role, email, department FROM users")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Name, &user.Role, &user.Email, &user.Department); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

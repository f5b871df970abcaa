package repository

import (
	"database/sql"
	"log"

	"golang.org/x/crypto/bcrypt"
)

func CreateTableIfNotExists(db *sql.DB) {
	query := `
CREATE TABLE IF NOT EXISTS users (
    id SERIAL PRIMARY KEY,
    name VARCHAR(255) NOT NULL,
    email VARCHAR(255) NOT NULL UNIQUE,
    password VARCHAR(255) NOT NULL,
    role VARCHAR(50) NOT NULL,
    department VARCHAR(255) NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS tasks (
    task_id SERIAL PRIMARY KEY,
    task_name VARCHAR(255) NOT NULL,
    task_description TEXT,
    name VARCHAR(255) NOT NULL,
    employee_email VARCHAR(255),
    assigned_date TIMESTAMP,
    due_date TIMESTAMP,
    status VARCHAR(50) NOT NULL
);

CREATE TABLE IF NOT EXISTS settings (
    id INT PRIMARY KEY,
    company_name VARCHAR(255) NOT NULL DEFAULT '',
    company_email VARCHAR(255) NOT NULL DEFAULT '',
    timezone VARCHAR(100) NOT NULL DEFAULT '',
    ip_address VARCHAR(100) NOT NULL DEFAULT ''
);

INSERT INTO settings (id) VALUES (1) ON CONFLICT (id) DO NOTHING;
    `

	_, err := db.Exec(query)
	if err != nil {
		log.Fatalf("Error creating table: %v", err)
	}
}

func CreateAdminUser(db *sql.DB) {
	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Error hashing password: %v", err)
	}

	// Insert admin user
	query := "INSERT INTO users (name, email, password, role, department) VALUES ($1, $2, $3, $4, $5)"
	_, err = db.Exec(query, "admin", "admin@mail.com", string(hashedPassword), "Admin", "Management")
	if err != nil {
		log.Fatalf("Error inserting admin user: %v", err)
	}
}

func DeleteAllTable(db *sql.DB) {
	query := `
    DROP TABLE IF EXISTS tasks;
    DROP TABLE IF EXISTS settings;
    DROP TABLE IF EXISTS users;
    `

	_, err := db.Exec(query)
	if err != nil {
		log.Fatalf("Error deleting table: %v", err)
	}
}

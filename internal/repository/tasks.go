package repository

import (
	"database/sql"
	"time"

	"taskdesk/internal/models"
)

// InsertTask menyimpan task baru. assigned_date diisi dengan waktu
// server saat insert, bukan dari client; employee_email awalnya NULL.
func InsertTask(db *sql.DB, taskName, taskDescription, assigneeName string, dueDate models.NullTime, status string) (int, error) {
	var taskID int
	err := db.QueryRow(
		`INSERT INTO tasks (task_name, task_description, name, employee_email, assigned_date, due_date, status)
		 VALUES ($1, $2, $3, NULL, $4, $5, $6) RETURNING task_id`,
		taskName, taskDescription, assigneeName, time.Now(), dueDate, status,
	).Scan(&taskID)
	return taskID, err
}

// DeleteTask menghapus task berdasarkan id. Mengembalikan false jika
// tidak ada baris yang terhapus (task tidak ditemukan).
func DeleteTask(db *sql.DB, taskID int) (bool, error) {
	result, err := db.Exec("DELETE FROM tasks WHERE task_id = $1", taskID)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func scanTasks(rows *sql.Rows) ([]models.Task, error) {
	tasks := []models.Task{}
	for rows.Next() {
		var task models.Task
		err := rows.Scan(&task.TaskID, &task.TaskName, &task.TaskDescription,
			&task.Name, &task.EmployeeEmail, &task.AssignedDate, &task.DueDate, &task.Status)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

// ListTasksWithDepartment mengembalikan semua task beserta department
// dari user yang namanya sama. Inner join: task yang assignee-nya tidak
// ada di tabel users tidak ikut dikembalikan.
func ListTasksWithDepartment(db *sql.DB) ([]models.TaskWithDepartment, error) {
	rows, err := db.Query(`
		SELECT t.task_id, t.task_name, t.task_description, t.name, t.employee_email,
		       t.assigned_date, t.due_date, t.status, u.department
		FROM tasks t
		JOIN users u ON t.name = u.name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []models.TaskWithDepartment{}
	for rows.Next() {
		var task models.TaskWithDepartment
		err := rows.Scan(&task.TaskID, &task.TaskName, &task.TaskDescription,
			&task.Name, &task.EmployeeEmail, &task.AssignedDate, &task.DueDate,
			&task.Status, &task.Department)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

// ListTasksByName mengembalikan semua task milik satu assignee.
func ListTasksByName(db *sql.DB, name string) ([]models.Task, error) {
	rows, err := db.Query(
		`SELECT task_id, task_name, task_description, name, employee_email,
		        assigned_date, due_date, status
		 FROM tasks WHERE name = $1`, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTasks(rows)
}

// ListCalendarTasks mengembalikan task yang punya minimal satu tanggal.
// Task tanpa assigned_date dan due_date tidak pernah tampil di kalender.
func ListCalendarTasks(db *sql.DB) ([]models.Task, error) {
	rows, err := db.Query(
		`SELECT task_id, task_name, task_description, name, employee_email,
		        assigned_date, due_date, status
		 FROM tasks
		 WHERE assigned_date IS NOT NULL OR due_date IS NOT NULL`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTasks(rows)
}

// CompletionRate menghitung total dan jumlah task completed per
// assigned_date, 7 grup terbaru. Grup NULL dipertahankan dan
// diurutkan paling akhir.
func CompletionRate(db *sql.DB) ([]models.CompletionRateRow, error) {
	rows, err := db.Query(`
		SELECT assigned_date,
		       COUNT(*) AS total,
		       SUM(CASE WHEN status = 'completed' THEN 1 ELSE 0 END) AS completed
		FROM tasks
		GROUP BY assigned_date
		ORDER BY assigned_date DESC NULLS LAST
		LIMIT 7`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := []models.CompletionRateRow{}
	for rows.Next() {
		var row models.CompletionRateRow
		if err := rows.Scan(&row.AssignedDate, &row.Total, &row.Completed); err != nil {
			return nil, err
		}
		stats = append(stats, row)
	}
	return stats, rows.Err()
}

// DepartmentDistribution menghitung jumlah task per department lewat
// join employee_email ke users.email. Task tanpa email yang cocok
// tidak ikut dihitung.
func DepartmentDistribution(db *sql.DB) ([]models.DepartmentCount, error) {
	rows, err := db.Query(`
		SELECT u.department, COUNT(*) AS count
		FROM tasks t
		JOIN users u ON t.employee_email = u.email
		GROUP BY u.department`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := []models.DepartmentCount{}
	for rows.Next() {
		var row models.DepartmentCount
		if err := rows.Scan(&row.Department, &row.Count); err != nil {
			return nil, err
		}
		counts = append(counts, row)
	}
	return counts, rows.Err()
}

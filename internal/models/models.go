package models

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"time"
)

// NullTime membungkus sql.NullTime agar timestamp yang NULL
// diserialisasi menjadi null, bukan objek {Time, Valid}.
type NullTime struct {
	sql.NullTime
}

func NewNullTime(t time.Time) NullTime {
	return NullTime{sql.NullTime{Time: t, Valid: true}}
}

func (nt NullTime) MarshalJSON() ([]byte, error) {
	if !nt.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(nt.Time.Format(time.DateTime))
}

func (nt *NullTime) UnmarshalJSON(data []byte) error {
	var s *string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == nil || *s == "" {
		nt.Valid = false
		return nil
	}
	t, err := time.Parse(time.DateTime, *s)
	if err != nil {
		// tanggal tanpa jam juga diterima
		t, err = time.Parse(time.DateOnly, *s)
		if err != nil {
			return err
		}
	}
	nt.Time = t
	nt.Valid = true
	return nil
}

func (nt NullTime) Value() (driver.Value, error) {
	if !nt.Valid {
		return nil, nil
	}
	return nt.Time, nil
}

// NullString membungkus sql.NullString supaya kolom NULL
// diserialisasi menjadi null, bukan objek {String, Valid}.
type NullString struct {
	sql.NullString
}

func (ns NullString) MarshalJSON() ([]byte, error) {
	if !ns.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(ns.String)
}

func (ns *NullString) UnmarshalJSON(data []byte) error {
	var s *string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == nil {
		ns.Valid = false
		return nil
	}
	ns.String = *s
	ns.Valid = true
	return nil
}

func (ns NullString) Value() (driver.Value, error) {
	if !ns.Valid {
		return nil, nil
	}
	return ns.String, nil
}

type User struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"-"`
	Role       string `json:"role"`
	Department string `json:"department"`
}

type Task struct {
	TaskID          int        `json:"task_id"`
	TaskName        string     `json:"task_name"`
	TaskDescription string     `json:"task_description"`
	Name            string     `json:"name"`
	EmployeeEmail   NullString `json:"employee_email"`
	AssignedDate    NullTime   `json:"assigned_date"`
	DueDate         NullTime   `json:"due_date"`
	Status          string     `json:"status"`
}

// TaskWithDepartment adalah baris hasil join tasks dengan users
// untuk listing di dashboard admin.
type TaskWithDepartment struct {
	Task
	Department string `json:"department"`
}

// Settings adalah satu-satunya baris konfigurasi global (id = 1).
type Settings struct {
	ID           int    `json:"id"`
	CompanyName  string `json:"company_name"`
	CompanyEmail string `json:"company_email"`
	Timezone     string `json:"timezone"`
	IPAddress    string `json:"ip_address"`
}

// SessionUser adalah bagian publik dari user yang disimpan di session.
type SessionUser struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Department string `json:"department"`
}

// Session adalah bukti login yang disimpan server-side, hanya boleh
// dibuat lewat login dan dihapus lewat logout atau kadaluarsa.
type Session struct {
	User      SessionUser `json:"user"`
	CreatedAt time.Time   `json:"created_at"`
	ExpiresAt time.Time   `json:"expires_at"`
}

// CompletionRateRow adalah satu grup statistik penyelesaian task.
type CompletionRateRow struct {
	AssignedDate NullTime `json:"assigned_date"`
	Total        int      `json:"total"`
	Completed    int      `json:"completed"`
}

// DepartmentCount adalah jumlah task per department.
type DepartmentCount struct {
	Department string `json:"department"`
	Count      int    `json:"count"`
}

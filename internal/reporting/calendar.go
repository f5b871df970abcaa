package reporting

import (
	"time"

	"taskdesk/internal/models"
)

// Warna event mengikuti palet dashboard.
const (
	ColorAssigned = "#0d6efd"
	ColorDue      = "#dc3545"
)

// Event adalah proyeksi task untuk ditampilkan di kalender.
type Event struct {
	Title      string `json:"title"`
	AssignedTo string `json:"AssignedTo"`
	Start      string `json:"start"`
	Color      string `json:"color"`
}

// ToCalendarEvents mengubah task menjadi event kalender: satu event
// "[Assigned]" untuk assigned_date dan satu event "[Due]" untuk
// due_date, masing-masing hanya jika tanggalnya ada. Urutan input
// dipertahankan, event assigned selalu sebelum event due.
func ToCalendarEvents(tasks []models.Task) []Event {
	events := []Event{}
	for _, task := range tasks {
		if task.AssignedDate.Valid {
			events = append(events, Event{
				Title:      "[Assigned] " + task.TaskName,
				AssignedTo: "[Assigned To] " + task.Name,
				Start:      task.AssignedDate.Time.Format(time.DateTime),
				Color:      ColorAssigned,
			})
		}
		if task.DueDate.Valid {
			events = append(events, Event{
				Title:      "[Due] " + task.TaskName,
				AssignedTo: "[Assigned To] " + task.Name,
				Start:      task.DueDate.Time.Format(time.DateTime),
				Color:      ColorDue,
			})
		}
	}
	return events
}

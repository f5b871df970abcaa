package reporting

import (
	"testing"
	"time"

	"taskdesk/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.DateOnly, value)
	require.NoError(t, err)
	return parsed
}

func TestToCalendarEventsBothDates(t *testing.T) {
	tasks := []models.Task{
		{
			TaskName:     "X",
			Name:         "Budi",
			AssignedDate: models.NewNullTime(mustTime(t, "2024-01-10")),
			DueDate:      models.NewNullTime(mustTime(t, "2024-01-15")),
		},
	}

	events := ToCalendarEvents(tasks)
	require.Len(t, events, 2)

	assert.Equal(t, "[Assigned] X", events[0].Title)
	assert.Equal(t, "[Assigned To] Budi", events[0].AssignedTo)
	assert.Equal(t, "2024-01-10 00:00:00", events[0].Start)
	assert.Equal(t, ColorAssigned, events[0].Color)

	assert.Equal(t, "[Due] X", events[1].Title)
	assert.Equal(t, "[Assigned To] Budi", events[1].AssignedTo)
	assert.Equal(t, "2024-01-15 00:00:00", events[1].Start)
	assert.Equal(t, ColorDue, events[1].Color)
}

func TestToCalendarEventsSingleDate(t *testing.T) {
	tasks := []models.Task{
		{TaskName: "Only assigned", AssignedDate: models.NewNullTime(mustTime(t, "2024-02-01"))},
		{TaskName: "Only due", DueDate: models.NewNullTime(mustTime(t, "2024-02-02"))},
	}

	events := ToCalendarEvents(tasks)
	require.Len(t, events, 2)
	assert.Equal(t, "[Assigned] Only assigned", events[0].Title)
	assert.Equal(t, "[Due] Only due", events[1].Title)
}

func TestToCalendarEventsNoDates(t *testing.T) {
	// task tanpa tanggal tidak pernah menghasilkan event
	events := ToCalendarEvents([]models.Task{{TaskName: "Dateless"}})
	assert.Empty(t, events)
}

func TestToCalendarEventsPreservesOrder(t *testing.T) {
	tasks := []models.Task{
		{TaskName: "A", AssignedDate: models.NewNullTime(mustTime(t, "2024-03-03"))},
		{TaskName: "B", AssignedDate: models.NewNullTime(mustTime(t, "2024-03-01")), DueDate: models.NewNullTime(mustTime(t, "2024-03-02"))},
		{TaskName: "C", DueDate: models.NewNullTime(mustTime(t, "2024-03-04"))},
	}

	events := ToCalendarEvents(tasks)
	require.Len(t, events, 4)

	titles := []string{events[0].Title, events[1].Title, events[2].Title, events[3].Title}
	assert.Equal(t, []string{"[Assigned] A", "[Assigned] B", "[Due] B", "[Due] C"}, titles)
}

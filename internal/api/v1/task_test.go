package v1_test

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"
	"time"

	"taskdesk/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedAdmin membuat admin baru dan mengembalikan cookie session-nya.
func seedAdmin(t *testing.T) *http.Cookie {
	t.Helper()
	app := createTestApp()
	suffix := uniqueSuffix()
	email := "taskadmin" + suffix + "@example.com"
	seedUser(t, "TaskAdmin "+suffix, email, "adminpass", "Admin", "Management")
	return login(t, app, email, "adminpass", "Admin")
}

func findTask(data []interface{}, taskName string) map[string]interface{} {
	for _, item := range data {
		task := item.(map[string]interface{})
		if task["task_name"] == taskName {
			return task
		}
	}
	return nil
}

func TestCreateTaskRoundTrip(t *testing.T) {
	app := createTestApp()
	cookie := seedAdmin(t)

	suffix := uniqueSuffix()
	assignee := "Assignee " + suffix
	seedUser(t, assignee, "assignee"+suffix+"@example.com", "pass123", "Employee", "Engineering")

	taskName := "Task " + suffix
	resp := postJSON(t, app, "/api/tasks", map[string]string{
		"task_name":        taskName,
		"task_description": "Quarterly report",
		"assignee_name":    assignee,
		"due_date":         "2024-05-20",
		"status":           "pending",
	}, cookie)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody(t, resp)
	require.NotNil(t, created["id"])

	list := doRequest(t, app, "GET", "/api/tasks", cookie)
	require.Equal(t, http.StatusOK, list.StatusCode)
	listResult := decodeBody(t, list)
	task := findTask(listResult["data"].([]interface{}), taskName)
	require.NotNil(t, task, "Expected created task in listing")

	assert.Equal(t, "Quarterly report", task["task_description"])
	assert.Equal(t, assignee, task["name"])
	assert.Equal(t, "pending", task["status"])
	assert.Equal(t, "Engineering", task["department"])
	assert.Equal(t, "2024-05-20 00:00:00", task["due_date"])
	assert.Nil(t, task["employee_email"])

	// assigned_date diisi waktu server saat create
	assignedDate, err := time.Parse(time.DateTime, task["assigned_date"].(string))
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), assignedDate, 10*time.Second)
}

func TestCreateTaskInvalidStatus(t *testing.T) {
	app := createTestApp()
	cookie := seedAdmin(t)

	resp := postJSON(t, app, "/api/tasks", map[string]string{
		"task_name":     "Bad status",
		"assignee_name": "Someone",
		"status":        "done",
	}, cookie)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestListTasksDropsUnknownAssignees(t *testing.T) {
	app := createTestApp()
	cookie := seedAdmin(t)

	suffix := uniqueSuffix()
	ghost := "Ghost " + suffix
	taskName := "Orphan task " + suffix

	// assignee tidak ada di tabel users
	resp := postJSON(t, app, "/api/tasks", map[string]string{
		"task_name":     taskName,
		"assignee_name": ghost,
		"status":        "pending",
	}, cookie)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// listing join by name tidak menampilkan task tersebut
	list := doRequest(t, app, "GET", "/api/tasks", cookie)
	listResult := decodeBody(t, list)
	assert.Nil(t, findTask(listResult["data"].([]interface{}), taskName))

	// tapi query per nama tetap menemukannya
	byName := doRequest(t, app, "GET", "/get-tasks-by-name?name="+url.QueryEscape(ghost), cookie)
	require.Equal(t, http.StatusOK, byName.StatusCode)
	byNameResult := decodeBody(t, byName)
	assert.NotNil(t, findTask(byNameResult["data"].([]interface{}), taskName))
}

func TestGetTasksByNameRequiresName(t *testing.T) {
	app := createTestApp()
	cookie := seedAdmin(t)

	resp := doRequest(t, app, "GET", "/get-tasks-by-name", cookie)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDeleteTask(t *testing.T) {
	app := createTestApp()
	cookie := seedAdmin(t)

	suffix := uniqueSuffix()
	resp := postJSON(t, app, "/api/tasks", map[string]string{
		"task_name":     "Delete me " + suffix,
		"assignee_name": "Someone",
		"status":        "pending",
	}, cookie)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody(t, resp)
	taskID := int(created["id"].(float64))

	del := doRequest(t, app, "DELETE", fmt.Sprintf("/api/tasks/%d", taskID), cookie)
	assert.Equal(t, http.StatusOK, del.StatusCode)
	del.Body.Close()

	// menghapus task yang sudah tidak ada -> 404, bukan error fatal
	again := doRequest(t, app, "DELETE", fmt.Sprintf("/api/tasks/%d", taskID), cookie)
	assert.Equal(t, http.StatusNotFound, again.StatusCode)
	again.Body.Close()
}

func TestDeleteTaskInvalidID(t *testing.T) {
	app := createTestApp()
	cookie := seedAdmin(t)

	resp := doRequest(t, app, "DELETE", "/api/tasks/abc", cookie)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCalendarTasks(t *testing.T) {
	app := createTestApp()
	cookie := seedAdmin(t)

	suffix := uniqueSuffix()
	taskName := "Calendar task " + suffix
	resp := postJSON(t, app, "/api/tasks", map[string]string{
		"task_name":     taskName,
		"assignee_name": "Calendar user " + suffix,
		"due_date":      "2024-06-01",
		"status":        "pending",
	}, cookie)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	cal := doRequest(t, app, "GET", "/api/calendar-tasks", cookie)
	require.Equal(t, http.StatusOK, cal.StatusCode)
	calResult := decodeBody(t, cal)

	var assigned, due map[string]interface{}
	for _, item := range calResult["data"].([]interface{}) {
		event := item.(map[string]interface{})
		switch event["title"] {
		case "[Assigned] " + taskName:
			assigned = event
		case "[Due] " + taskName:
			due = event
		}
	}
	require.NotNil(t, assigned, "Expected assigned event")
	require.NotNil(t, due, "Expected due event")
	assert.Equal(t, "#0d6efd", assigned["color"])
	assert.Equal(t, "#dc3545", due["color"])
	assert.Equal(t, "[Assigned To] Calendar user "+suffix, assigned["AssignedTo"])
	assert.Equal(t, "2024-06-01 00:00:00", due["start"])
}

func TestTaskCompletionRate(t *testing.T) {
	app := createTestApp()
	cookie := seedAdmin(t)

	// dua task dengan assigned_date sama, satu completed
	assignedDate := "2099-01-01 10:00:00"
	for _, status := range []string{"completed", "pending"} {
		_, err := config.DB.Exec(
			"INSERT INTO tasks (task_name, task_description, name, assigned_date, status) VALUES ($1, '', $2, $3, $4)",
			"Rate task", "Rate user", assignedDate, status)
		require.NoError(t, err)
	}

	resp := doRequest(t, app, "GET", "/api/task-completion-rate", cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	result := decodeBody(t, resp)

	rows := result["data"].([]interface{})
	require.NotEmpty(t, rows)
	assert.LessOrEqual(t, len(rows), 7)

	// grup terbaru diurutkan paling depan
	first := rows[0].(map[string]interface{})
	assert.Equal(t, assignedDate, first["assigned_date"])
	assert.Equal(t, float64(2), first["total"])
	assert.Equal(t, float64(1), first["completed"])
}

func TestTaskDistributionByDepartment(t *testing.T) {
	app := createTestApp()
	cookie := seedAdmin(t)

	suffix := uniqueSuffix()
	department := "Dept " + suffix
	email := "dist" + suffix + "@example.com"
	seedUser(t, "Dist "+suffix, email, "distpass", "Employee", department)

	// dua task dengan email yang cocok, satu dengan email tak dikenal
	for _, taskEmail := range []string{email, email, "unknown" + suffix + "@example.com"} {
		_, err := config.DB.Exec(
			"INSERT INTO tasks (task_name, task_description, name, employee_email, status) VALUES ($1, '', $2, $3, 'pending')",
			"Dist task", "Dist "+suffix, taskEmail)
		require.NoError(t, err)
	}

	resp := doRequest(t, app, "GET", "/api/task-distribution-by-department", cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	result := decodeBody(t, resp)

	var count float64
	for _, item := range result["data"].([]interface{}) {
		row := item.(map[string]interface{})
		if row["department"] == department {
			count = row["count"].(float64)
		}
	}
	// task dengan email tak dikenal tidak ikut dihitung
	assert.Equal(t, float64(2), count)
}

package handlers

import (
	"taskdesk/internal/config"
	"taskdesk/internal/models"
	"taskdesk/internal/reporting"
	"taskdesk/internal/repository"
	ws "taskdesk/internal/websocket"
	"taskdesk/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Task handlers

// CreateTask membuat task baru. assigned_date diisi waktu server,
// bukan dari client.
func CreateTask(c *fiber.Ctx) error {
	// struct TaskRequest menerima inputan dari user
	type TaskRequest struct {
		TaskName        string          `json:"task_name" validate:"required"`
		TaskDescription string          `json:"task_description"`
		AssigneeName    string          `json:"assignee_name" validate:"required"`
		DueDate         models.NullTime `json:"due_date"`
		Status          string          `json:"status" validate:"required,oneof=pending in_progress completed"`
	}

	var req TaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.ErrorLogger.Error("Bad request in create task", zap.Error(err))
		return c.Status(400).JSON(fiber.Map{
			"message": "Bad request",
			"success": false,
			"status":  400,
		})
	}

	if err := config.Validate.Struct(req); err != nil {
		logger.ErrorLogger.Error("Validation error in create task", zap.Error(err))
		return c.Status(400).JSON(fiber.Map{
			"message": "Validation error",
			"errors":  err.Error(),
			"success": false,
			"status":  400,
		})
	}

	taskID, err := repository.InsertTask(config.DB, req.TaskName, req.TaskDescription, req.AssigneeName, req.DueDate, req.Status)
	if err != nil {
		logger.ErrorLogger.Error("Error creating task", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{
			"message": "Error creating task",
			"success": false,
			"status":  500,
		})
	}

	config.Hub.BroadcastTask(ws.TaskEvent{Action: "created", TaskID: taskID, TaskName: req.TaskName})

	logger.AuditLogger.Info("Task created successfully", zap.Int("task_id", taskID))
	return c.Status(201).JSON(fiber.Map{
		"message": "Task created successfully",
		"success": true,
		"status":  201,
		"id":      taskID,
	})
}

// GetTasks mengembalikan semua task beserta department assignee-nya.
// Task yang assignee-nya tidak ada di tabel users tidak ikut tampil
// (inner join by name).
func GetTasks(c *fiber.Ctx) error {
	tasks, err := repository.ListTasksWithDepartment(config.DB)
	if err != nil {
		logger.ErrorLogger.Error("Error fetching tasks", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{
			"message": "Error fetching tasks",
			"success": false,
			"status":  500,
		})
	}

	return c.JSON(fiber.Map{
		"message": "Tasks fetched successfully",
		"success": true,
		"status":  200,
		"data":    tasks,
	})
}

// GetTasksByName mengembalikan task milik satu assignee.
func GetTasksByName(c *fiber.Ctx) error {
	name := c.Query("name")
	if name == "" {
		// parameter kosong ditolak sebelum query jalan
		return c.Status(400).JSON(fiber.Map{
			"message": "Employee name is required.",
			"success": false,
			"status":  400,
		})
	}

	tasks, err := repository.ListTasksByName(config.DB, name)
	if err != nil {
		logger.ErrorLogger.Error("Error fetching tasks by name", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{
			"message": "Database error",
			"success": false,
			"status":  500,
		})
	}

	return c.JSON(fiber.Map{
		"message": "Tasks fetched successfully",
		"success": true,
		"status":  200,
		"data":    tasks,
	})
}

// DeleteTask menghapus task berdasarkan id. Task yang tidak ada
// dilaporkan 404, bukan error.
func DeleteTask(c *fiber.Ctx) error {
	taskID, err := c.ParamsInt("id")
	if err != nil {
		logger.ErrorLogger.Error("Invalid task ID", zap.Error(err))
		return c.Status(400).JSON(fiber.Map{
			"message": "Invalid task ID",
			"success": false,
			"status":  400,
		})
	}

	deleted, err := repository.DeleteTask(config.DB, taskID)
	if err != nil {
		logger.ErrorLogger.Error("Error deleting task", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{
			"message": "Failed to delete task",
			"success": false,
			"status":  500,
		})
	}
	if !deleted {
		return c.Status(404).JSON(fiber.Map{
			"message": "Task not found",
			"success": false,
			"status":  404,
		})
	}

	config.Hub.BroadcastTask(ws.TaskEvent{Action: "deleted", TaskID: taskID})

	logger.AuditLogger.Info("Task deleted", zap.Int("task_id", taskID))
	return c.JSON(fiber.Map{
		"message": "Task deleted successfully",
		"success": true,
		"status":  200,
	})
}

// CalendarTasks memproyeksikan task yang punya tanggal menjadi event
// kalender assigned/due.
func CalendarTasks(c *fiber.Ctx) error {
	tasks, err := repository.ListCalendarTasks(config.DB)
	if err != nil {
		logger.ErrorLogger.Error("Error fetching calendar tasks", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{
			"message": "Failed to fetch tasks",
			"success": false,
			"status":  500,
		})
	}

	return c.JSON(fiber.Map{
		"message": "Calendar tasks fetched successfully",
		"success": true,
		"status":  200,
		"data":    reporting.ToCalendarEvents(tasks),
	})
}

// TaskCompletionRate mengembalikan statistik penyelesaian task per
// assigned_date, 7 grup terbaru.
func TaskCompletionRate(c *fiber.Ctx) error {
	stats, err := repository.CompletionRate(config.DB)
	if err != nil {
		logger.ErrorLogger.Error("Error fetching completion rate", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{
			"message": "Database error",
			"success": false,
			"status":  500,
		})
	}

	return c.JSON(fiber.Map{
		"message": "Completion rate fetched successfully",
		"success": true,
		"status":  200,
		"data":    stats,
	})
}

// TaskDistributionByDepartment mengembalikan jumlah task per department.
func TaskDistributionByDepartment(c *fiber.Ctx) error {
	counts, err := repository.DepartmentDistribution(config.DB)
	if err != nil {
		logger.ErrorLogger.Error("Error fetching task distribution", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{
			"message": "Database error",
			"success": false,
			"status":  500,
		})
	}

	return c.JSON(fiber.Map{
		"message": "Task distribution fetched successfully",
		"success": true,
		"status":  200,
		"data":    counts,
	})
}

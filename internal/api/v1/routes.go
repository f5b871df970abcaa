package v1

import (
	"taskdesk/internal/api/v1/handlers"
	"taskdesk/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mendaftarkan seluruh route. Login, logout, dan
// session-check tidak lewat authorization gate; semua endpoint task,
// settings, reporting, dan halaman desk wajib lewat RequireAuth.
func RegisterRoutes(app *fiber.App, publicDir string) {
	// Auth
	app.Post("/login", handlers.Login)
	app.Post("/logout", handlers.Logout)
	app.Get("/api/session-check", handlers.SessionCheck)

	// Halaman desk per role
	app.Get("/admindesk.html", middleware.RequireAuth, middleware.RequireRole("Admin"), handlers.ServePage(publicDir, "admindesk.html"))
	app.Get("/Empdesk.html", middleware.RequireAuth, middleware.RequireRole("Employee"), handlers.ServePage(publicDir, "Empdesk.html"))

	// Task
	app.Get("/api/tasks", middleware.RequireAuth, handlers.GetTasks)
	app.Post("/api/tasks", middleware.RequireAuth, handlers.CreateTask)
	app.Delete("/api/tasks/:id", middleware.RequireAuth, handlers.DeleteTask)
	app.Get("/get-tasks-by-name", middleware.RequireAuth, handlers.GetTasksByName)

	// User
	app.Get("/api/users", middleware.RequireAuth, handlers.GetUsers)

	// Settings
	app.Get("/api/settings", middleware.RequireAuth, handlers.GetSettings)
	app.Post("/api/settings", middleware.RequireAuth, handlers.UpdateSettings)

	// Reporting
	app.Get("/api/calendar-tasks", middleware.RequireAuth, handlers.CalendarTasks)
	app.Get("/api/task-completion-rate", middleware.RequireAuth, handlers.TaskCompletionRate)
	app.Get("/api/task-distribution-by-department", middleware.RequireAuth, handlers.TaskDistributionByDepartment)
}

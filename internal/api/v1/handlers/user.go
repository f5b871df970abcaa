package handlers

import (
	"taskdesk/internal/config"
	"taskdesk/internal/repository"
	"taskdesk/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// User handlers

// GetUsers mengembalikan semua user untuk dropdown assignee dan
// halaman manajemen. Kolom password tidak pernah ikut.
func GetUsers(c *fiber.Ctx) error {
	users, err := repository.ListUsers(config.DB)
	if err != nil {
		logger.ErrorLogger.Error("Error fetching users", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{
			"message": "Error fetching users",
			"success": false,
			"status":  500,
		})
	}

	return c.JSON(fiber.Map{
		"message": "Users fetched successfully",
		"success": true,
		"status":  200,
		"data":    users,
	})
}

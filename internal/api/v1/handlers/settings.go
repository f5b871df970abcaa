package handlers

import (
	"taskdesk/internal/config"
	"taskdesk/internal/models"
	"taskdesk/internal/repository"
	"taskdesk/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Settings handlers

// GetSettings mengembalikan baris konfigurasi tunggal.
func GetSettings(c *fiber.Ctx) error {
	settings, err := repository.GetSettings(config.DB)
	if err != nil {
		logger.ErrorLogger.Error("Error fetching settings", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{
			"message": "Error fetching settings",
			"success": false,
			"status":  500,
		})
	}

	return c.JSON(fiber.Map{
		"message": "Settings fetched successfully",
		"success": true,
		"status":  200,
		"data":    settings,
	})
}

// UpdateSettings memperbarui baris konfigurasi tunggal (id = 1).
// Tidak ada operasi create atau delete untuk settings.
func UpdateSettings(c *fiber.Ctx) error {
	type SettingsRequest struct {
		CompanyName  string `json:"company_name"`
		CompanyEmail string `json:"company_email" validate:"omitempty,email"`
		Timezone     string `json:"timezone"`
		IPAddress    string `json:"ip_address"`
	}

	var req SettingsRequest
	if err := c.BodyParser(&req); err != nil {
		logger.ErrorLogger.Error("Bad request in update settings", zap.Error(err))
		return c.Status(400).JSON(fiber.Map{
			"message": "Bad request",
			"success": false,
			"status":  400,
		})
	}

	if err := config.Validate.Struct(req); err != nil {
		logger.AuditLogger.Warn("Validation error during settings update", zap.Error(err))
		return c.Status(400).JSON(fiber.Map{
			"message": "Validation error",
			"errors":  err.Error(),
			"success": false,
			"status":  400,
		})
	}

	err := repository.UpdateSettings(config.DB, models.Settings{
		CompanyName:  req.CompanyName,
		CompanyEmail: req.CompanyEmail,
		Timezone:     req.Timezone,
		IPAddress:    req.IPAddress,
	})
	if err != nil {
		logger.ErrorLogger.Error("Error updating settings", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{
			"message": "Error updating settings",
			"success": false,
			"status":  500,
		})
	}

	logger.AuditLogger.Info("Settings updated")
	return c.JSON(fiber.Map{
		"message": "Settings updated",
		"success": true,
		"status":  200,
	})
}

package handlers

import (
	"database/sql"
	"time"

	"taskdesk/internal/config"
	"taskdesk/internal/middleware"
	"taskdesk/internal/models"
	"taskdesk/internal/repository"
	"taskdesk/internal/session"
	"taskdesk/pkg/crypto"
	"taskdesk/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Auth handlers

// Login memeriksa email+password+role terhadap tabel users dan membuat
// session baru. Hanya handler ini yang boleh membuat session.
func Login(c *fiber.Ctx) error {
	// struct LoginRequest menerima inputan dari user
	type LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
		Role     string `json:"role" validate:"required"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		logger.ErrorLogger.Error("Bad request in login", zap.Error(err))
		return c.Status(400).JSON(fiber.Map{
			"message": "Bad request",
			"success": false,
			"status":  400,
		})
	}

	// Ketiga field wajib diisi; kalau ada yang kosong, tolak tanpa
	// menyentuh database sama sekali.
	if err := config.Validate.Struct(req); err != nil {
		logger.AuditLogger.Warn("Validation error during login", zap.Error(err))
		return c.Status(400).JSON(fiber.Map{
			"message": "Email, password and role are required",
			"errors":  err.Error(),
			"success": false,
			"status":  400,
		})
	}

	user, err := repository.FindUserByLogin(config.DB, req.Email, req.Role)
	if err != nil {
		if err == sql.ErrNoRows {
			// jangan bocorkan field mana yang salah
			logger.SecurityLogger.Warn("Invalid login", zap.String("email", req.Email))
			return c.Status(401).JSON(fiber.Map{
				"message": "Invalid credentials or role mismatch",
				"success": false,
				"status":  401,
			})
		}
		logger.ErrorLogger.Error("Database error during login", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{
			"message": "Database error",
			"success": false,
			"status":  500,
		})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		logger.SecurityLogger.Warn("Invalid password", zap.String("email", req.Email))
		return c.Status(401).JSON(fiber.Map{
			"message": "Invalid credentials or role mismatch",
			"success": false,
			"status":  401,
		})
	}

	sid, err := config.Sessions.Create(config.Ctx, models.SessionUser{
		ID:         user.ID,
		Name:       user.Name,
		Email:      user.Email,
		Role:       user.Role,
		Department: user.Department,
	})
	if err != nil {
		logger.ErrorLogger.Error("Error creating session", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{
			"message": "Error creating session",
			"success": false,
			"status":  500,
		})
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    crypto.Sign(sid, config.SessionSecret),
		Expires:  time.Now().Add(session.MaxAge),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})

	logger.AuditLogger.Info("Login success", zap.Int("user_id", user.ID), zap.String("role", user.Role))
	return c.JSON(fiber.Map{
		"message": "Login successful",
		"success": true,
		"status":  200,
		"role":    user.Role,
	})
}

// SessionCheck mengembalikan isi session apa adanya, juga saat belum
// login. Endpoint diagnostik, sengaja tidak lewat authorization gate.
func SessionCheck(c *fiber.Ctx) error {
	sess, sid, err := middleware.SessionFromCookie(c)
	if err != nil {
		logger.ErrorLogger.Error("Error resolving session", zap.Error(err))
	}
	return c.JSON(fiber.Map{
		"session":   sess,
		"sessionID": sid,
	})
}

// Logout menghapus session di server dan mengosongkan cookie.
// Logout tanpa session yang valid tetap sukses.
func Logout(c *fiber.Ctx) error {
	cookie := c.Cookies(middleware.SessionCookie)
	if cookie != "" {
		if sid, err := crypto.Unsign(cookie, config.SessionSecret); err == nil {
			if err := config.Sessions.Destroy(config.Ctx, sid); err != nil {
				logger.ErrorLogger.Error("Error destroying session", zap.Error(err))
				return c.Status(500).JSON(fiber.Map{
					"message": "Could not log out",
					"success": false,
					"status":  500,
				})
			}
		}
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Path:     "/",
	})

	logger.AuditLogger.Info("Logout successful")
	return c.JSON(fiber.Map{
		"message": "Logout successful",
		"success": true,
		"status":  200,
	})
}

package middleware

import (
	"taskdesk/internal/config"
	"taskdesk/internal/models"
	"taskdesk/pkg/crypto"
	"taskdesk/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SessionCookie adalah nama cookie yang menyimpan session ID bertanda tangan.
const SessionCookie = "task_session"

// SessionFromCookie membaca cookie session, memverifikasi tanda
// tangannya, dan mengambil session dari store. Mengembalikan nil
// session (tanpa error) jika cookie tidak ada, rusak, atau sessionnya
// sudah kadaluarsa; sid mentah tetap dikembalikan untuk diagnostik.
func SessionFromCookie(c *fiber.Ctx) (*models.Session, string, error) {
	cookie := c.Cookies(SessionCookie)
	if cookie == "" {
		return nil, "", nil
	}
	sid, err := crypto.Unsign(cookie, config.SessionSecret)
	if err != nil {
		// cookie yang dimodifikasi diperlakukan seperti tidak ada session
		logger.SecurityLogger.Warn("Tampered session cookie", zap.String("ip", c.IP()))
		return nil, "", nil
	}
	sess, err := config.Sessions.Get(config.Ctx, sid)
	if err != nil {
		return nil, sid, err
	}
	return sess, sid, nil
}

// RequireAuth menolak request tanpa session yang valid. Session yang
// ditemukan disimpan di Locals untuk handler berikutnya. Middleware ini
// tidak memperpanjang umur session.
func RequireAuth(c *fiber.Ctx) error {
	sess, _, err := SessionFromCookie(c)
	if err != nil {
		logger.ErrorLogger.Error("Error resolving session", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{
			"message": "Session store error",
			"success": false,
			"status":  500,
		})
	}
	if sess == nil {
		logger.SecurityLogger.Warn("Unauthenticated request", zap.String("url", c.OriginalURL()))
		return c.Status(401).JSON(fiber.Map{
			"message": "Not authenticated",
			"success": false,
			"status":  401,
		})
	}
	c.Locals("session", sess)
	return c.Next()
}

// RequireRole menolak session yang role-nya tidak sesuai dengan
// resource. Dipasang setelah RequireAuth.
func RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, ok := c.Locals("session").(*models.Session)
		if !ok {
			return c.Status(401).JSON(fiber.Map{
				"message": "Not authenticated",
				"success": false,
				"status":  401,
			})
		}
		if sess.User.Role != role {
			logger.SecurityLogger.Warn("Forbidden",
				zap.String("role", sess.User.Role),
				zap.String("required_role", role),
				zap.String("url", c.OriginalURL()))
			return c.Status(403).JSON(fiber.Map{
				"message": "Access denied. " + role + " role required.",
				"success": false,
				"status":  403,
			})
		}
		return c.Next()
	}
}

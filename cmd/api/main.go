package main

import (
	"fmt"
	"time"

	"taskdesk/configs"
	v1 "taskdesk/internal/api/v1"
	"taskdesk/internal/config"
	"taskdesk/internal/middleware"
	"taskdesk/internal/repository"
	"taskdesk/internal/session"
	myws "taskdesk/internal/websocket"
	"taskdesk/pkg/database"
	"taskdesk/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/websocket/v2"
	"go.uber.org/zap"
)

func main() {
	// Inisialisasi logger
	logger.InitLoggers()
	defer logger.SyncLoggers()
	logger.SystemLogger.Info("Starting application", zap.String("time", time.Now().Format(time.RFC3339)))

	// Load config
	cfg := configs.LoadConfig()
	config.SessionSecret = cfg.SessionSecret

	// Inisialisasi database
	config.DB = database.ConnectDB(cfg)
	defer config.DB.Close()

	logger.SystemLogger.Info("Database Connected")

	// Buat tabel jika belum ada:
	repository.CreateTableIfNotExists(config.DB)
	// Jika ingin membuat admin user:
	// repository.CreateAdminUser(config.DB)

	// Inisialisasi Redis dan session store
	config.RedisClient = database.ConnectRedis(cfg)
	defer config.RedisClient.Close()
	config.Sessions = session.NewStore(config.RedisClient)

	app := fiber.New()

	// Middleware
	app.Use(middleware.ErrorHandler())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://127.0.0.1:5501",
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowCredentials: true,
	}))
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
	}))

	// Daftarkan semua route
	v1.RegisterRoutes(app, cfg.PublicDir)

	// WebSocket untuk broadcast event task ke dashboard
	config.Hub = myws.NewHub()
	go config.Hub.Run()
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	}, middleware.RequireAuth)
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		client := &myws.Client{Conn: c}
		config.Hub.Register <- client
		defer func() {
			config.Hub.Unregister <- client
		}()
		for {
			// klien hanya mendengarkan; koneksi ditutup saat read gagal
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// Halaman login sebagai root, sisanya file statis
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendFile(cfg.PublicDir + "/login.html")
	})
	app.Static("/", cfg.PublicDir)

	logger.SystemLogger.Info("Application ready", zap.Int("port", cfg.AppPort))
	if err := app.Listen(fmt.Sprintf(":%d", cfg.AppPort)); err != nil {
		logger.ErrorLogger.Error("Application failed to start", zap.Error(err))
	}
}

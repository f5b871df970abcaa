package config

import (
	"context"
	"database/sql"

	"taskdesk/internal/session"
	ws "taskdesk/internal/websocket"

	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
)

var (
	// Global dependency yang akan digunakan di seluruh aplikasi
	DB            *sql.DB
	SessionSecret = "secret-key"
	Validate      = validator.New()
	Ctx           = context.Background()
	RedisClient   *redis.Client
	Sessions      *session.Store
	Hub           *ws.Hub
)

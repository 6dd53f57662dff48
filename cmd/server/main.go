package main

import (
	"log"

	_ "kanbanflow/docs"
	"kanbanflow/internal/config"
	"kanbanflow/internal/logging"
	"kanbanflow/internal/server"
)

// @title           Kanbanflow API
// @version         1.0
// @description     Board sessions for drag and drop ordering of columns and issues.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @schemes http
func main() {
	cfg := config.Load()
	logger := logging.Init(cfg.LogLevel, cfg.LogFormat)

	s, err := server.Init(cfg, logger)
	if err != nil {
		log.Fatalf("❌ Server initialization failed: %v", err)
	}

	s.Run()
}

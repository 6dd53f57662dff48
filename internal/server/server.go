package server

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kanbanflow/internal/config"
	"kanbanflow/internal/database"
	"kanbanflow/internal/handler"
	"kanbanflow/internal/middleware"
	"kanbanflow/internal/repository"
	"kanbanflow/internal/session"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var _ session.Store = (*repository.Store)(nil)

type Server struct {
	Engine   *gin.Engine
	DB       *gorm.DB
	Config   *config.Config
	Sessions *session.Manager
}

func Init(cfg *config.Config, logger *slog.Logger) (*Server, error) {
	if cfg.MigrateOnStart {
		if err := database.Migrate(cfg.MigrateURL()); err != nil {
			return nil, fmt.Errorf("❌ failed to migrate DB: %w", err)
		}
	}

	// Setup GORM
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("❌ failed to connect to DB: %w", err)
	}
	log.Println("✅ Connected to database")

	// Initialize repositories
	boardRepo := repository.NewBoardRepository(db)
	store := repository.NewStore(db)

	sessions := session.NewManager(boardRepo, store,
		session.LogNotifier{Logger: logger.With("component", "notifications")},
		session.WithLogger(logger.With("component", "session")),
	)

	return &Server{
		Engine:   NewRouter(cfg, store, sessions),
		DB:       db,
		Config:   cfg,
		Sessions: sessions,
	}, nil
}

// NewRouter wires every route on a fresh gin engine.
func NewRouter(cfg *config.Config, store *repository.Store, sessions *session.Manager) *gin.Engine {
	r := gin.Default()

	// Initialize handlers
	boardHandler := handler.NewBoardHandler(sessions)
	columnHandler := handler.NewColumnHandler(store.Columns)
	issueHandler := handler.NewIssueHandler(store.Issues, store.Columns)

	// Public routes
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes - require authentication
	authorized := r.Group("/")
	authorized.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	{
		// Board session routes
		authorized.GET("/boards/:id/snapshot", boardHandler.Snapshot)
		authorized.POST("/boards/:id/drop", boardHandler.Drop)

		// Column routes
		authorized.GET("/boards/:id/columns", columnHandler.GetAll)
		authorized.PUT("/columns/:id/order", columnHandler.SetOrder)

		// Issue routes
		authorized.GET("/projects/:id/issues", issueHandler.GetByProject)
		authorized.PUT("/issues/:id/placement", issueHandler.SetPlacement)
	}
	return r
}

func (s *Server) Run() {
	srv := &http.Server{
		Addr:    ":" + s.Config.ServerPort,
		Handler: s.Engine,
	}

	go func() {
		log.Printf("🚀 Server running on port %s\n", s.Config.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %s", err)
	}

	if sqlDB, err := s.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}

	log.Println("✅ Server exited properly")
}

package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/surfbook/surf-scheduler/internal/config"
	dbpkg "github.com/surfbook/surf-scheduler/internal/db"
	"github.com/surfbook/surf-scheduler/internal/logger"
	"github.com/surfbook/surf-scheduler/internal/middleware"
	"github.com/surfbook/surf-scheduler/internal/routes"
)

func main() {

	cfg := config.Load()

	zlog, err := logger.New(cfg.IsProduction())
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zlog.Sync()

	db := dbpkg.NewDB(cfg)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.Ping()
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "error": "database unreachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "data": gin.H{"status": "ok"}})
	})

	routes.RegisterRoutes(r, db, zlog)

	zlog.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		zlog.Fatal("failed to start server", zap.Error(err))
	}
}

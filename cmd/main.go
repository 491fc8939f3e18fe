package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/Vigneshwaren333/LexComply/config"
	"github.com/Vigneshwaren333/LexComply/database"
	"github.com/Vigneshwaren333/LexComply/middlewares"
	"github.com/Vigneshwaren333/LexComply/pkg/logger"
	"github.com/Vigneshwaren333/LexComply/routes"
	"github.com/Vigneshwaren333/LexComply/storage"
)

func main() {
	cfg := config.Load()

	logger.Init(&logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	db, err := database.Connect(cfg)
	if err != nil {
		slog.Error("failed to connect database", "error", err)
		os.Exit(1)
	}

	store, err := storage.NewStore(cfg.UploadDir)
	if err != nil {
		slog.Error("failed to prepare upload directory", "error", err)
		os.Exit(1)
	}

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = httpErrorHandler
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middlewares.RequestID())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))
	e.Use(middleware.BodyLimit("30M")) // 5 documents x 5MB plus form fields

	routes.Register(e, db, store, cfg)

	go func() {
		if err := e.Start(cfg.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()
	slog.Info("server listening", "addr", cfg.Addr(), "env", cfg.AppEnv)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		slog.Error("forced shutdown", "error", err)
	}
	if err := db.Close(); err != nil {
		slog.Error("failed to close database", "error", err)
	}
}

// httpErrorHandler is the catch-all: anything a handler did not already
// convert becomes the portal's {success:false, message} JSON shape, and
// the underlying detail stays in the server log.
func httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := "Internal server error"

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		switch m := he.Message.(type) {
		case string:
			msg = m
		case map[string]any:
			if s, ok := m["message"].(string); ok {
				msg = s
			}
		}
	}
	if code == http.StatusInternalServerError {
		slog.Error("unhandled error", "error", err, "method", c.Request().Method, "path", c.Request().URL.Path)
		msg = "Internal server error"
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	_ = c.JSON(code, map[string]any{"success": false, "message": msg})
}

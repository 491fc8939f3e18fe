package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/Vigneshwaren333/LexComply/config"
	"github.com/Vigneshwaren333/LexComply/database"
	"github.com/Vigneshwaren333/LexComply/handlers"
	"github.com/Vigneshwaren333/LexComply/middlewares"
	"github.com/Vigneshwaren333/LexComply/storage"
)

// Register wires all HTTP routes.
func Register(e *echo.Echo, db *database.Database, store *storage.Store, cfg *config.Config) {
	auth := handlers.NewAuthHandler(db, cfg)
	rti := handlers.NewRTIHandler(db, store)
	cl := handlers.NewCyberlawHandler(db, store)
	cons := handlers.NewConsultationHandler(db)
	comp := handlers.NewComplianceHandler(db)

	e.GET("/api/health", handlers.Health)

	// ===== Auth =====
	e.POST("/api/auth/register", auth.Register)
	e.POST("/api/auth/login", auth.Login)

	// ===== Public intake =====
	// Citizens file without an account; these stay unauthenticated on purpose.
	e.POST("/api/rti/submit", rti.Submit)
	e.GET("/api/rti/status/:applicationId", rti.Status)
	e.POST("/api/cyberlaw/submit", cl.Submit)
	e.POST("/api/consultation/submit", cons.Submit)
	e.POST("/api/compliance-assessment", comp.Submit)

	// ===== Account-scoped reads =====
	authMW := middlewares.RequireAuth(cfg.JWTSecret)
	e.GET("/api/rti/applications/:email", rti.ListByEmail, authMW)
}

// Package router assembles the HTTP route table.
package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "carebridge_backend/internal/feature/auth/transport/handler"
	directoryhandler "carebridge_backend/internal/feature/directory/transport/handler"
	messaginghandler "carebridge_backend/internal/feature/messaging/transport/handler"
	"carebridge_backend/internal/platform/gate"
	"carebridge_backend/internal/platform/health"
)

// New builds the gin engine with all routes registered.
func New(g *gate.Gate, healthH *health.Handler, authH *authhandler.AuthHandler,
	doctorH *directoryhandler.DoctorHandler, messageH *messaginghandler.MessageHandler) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
		MaxAge:       12 * time.Hour,
	}))

	// No authentication
	r.GET("/healthz", healthH.Check)
	auth := r.Group("/auth")
	{
		auth.POST("/signup", authH.Signup)
		auth.POST("/login", authH.Login)
	}

	// The directory requires a minimum vetting tier; the channel only a
	// valid login. Role checks live in the usecases.
	r.GET("/doctors", g.RequireLevel(1), doctorH.List)

	patient := r.Group("/patient", g.RequireLevel(0))
	{
		patient.GET("/messages", messageH.List)
		patient.POST("/messages", messageH.Send)
	}

	return r
}

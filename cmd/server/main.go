package main

import (
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"carebridge_backend/internal/app/di"
	"carebridge_backend/internal/app/router"
	assignmentadapters "carebridge_backend/internal/feature/assignment/adapters"
	authadapters "carebridge_backend/internal/feature/auth/adapters"
	authhandler "carebridge_backend/internal/feature/auth/transport/handler"
	authusecase "carebridge_backend/internal/feature/auth/usecase"
	directoryhandler "carebridge_backend/internal/feature/directory/transport/handler"
	directoryusecase "carebridge_backend/internal/feature/directory/usecase"
	messagingadapters "carebridge_backend/internal/feature/messaging/adapters"
	messaginghandler "carebridge_backend/internal/feature/messaging/transport/handler"
	messagingusecase "carebridge_backend/internal/feature/messaging/usecase"
	"carebridge_backend/internal/platform/db"
	"carebridge_backend/internal/platform/gate"
	"carebridge_backend/internal/platform/health"
	infraredis "carebridge_backend/internal/platform/redis"
	"carebridge_backend/internal/platform/token"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables.")
	}

	// The service must not start without a signing secret.
	issuer, err := token.New(os.Getenv("JWT_SECRET"), 24*time.Hour)
	if err != nil {
		log.Fatalf("cannot start: %v", err)
	}

	gdb := db.OpenDB()

	// Redis is optional: without it the service runs uncached.
	var rdb *redisv9.Client
	if tmp, redisErr := infraredis.NewClient(); redisErr != nil {
		slog.Warn("redis unavailable, running without cache")
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("failed to close redis client", "error", err)
			}
		}()
	}

	// Repositories
	userRepo := authadapters.NewUserGorm(gdb)
	assignmentRepo := assignmentadapters.NewAssignmentGorm(gdb)
	messageRepo := messagingadapters.NewMessageGorm(gdb)
	doctorRepo := di.NewDoctorRepository(rdb, gdb)

	// Usecases
	authUC := authusecase.NewAuthUsecase(userRepo, issuer)
	messagingUC := messagingusecase.NewMessagingUsecase(assignmentRepo, messageRepo)
	directoryUC := directoryusecase.NewDirectoryUsecase(doctorRepo, assignmentRepo)

	// Handlers
	authH := authhandler.NewAuthHandler(authUC)
	messageH := messaginghandler.NewMessageHandler(messagingUC)
	doctorH := directoryhandler.NewDoctorHandler(directoryUC)
	healthH := health.NewHandler(gdb, rdb)

	g := gate.New(issuer, userRepo)

	r := router.New(g, healthH, authH, doctorH, messageH)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}

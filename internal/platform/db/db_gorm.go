// Package db opens the gorm connection for the service.
package db

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	assignmententity "carebridge_backend/internal/feature/assignment/domain/entity"
	authentity "carebridge_backend/internal/feature/auth/domain/entity"
	messagingentity "carebridge_backend/internal/feature/messaging/domain/entity"
)

// Config holds the connection settings read from the environment.
type Config struct {
	User     string
	Password string
	Name     string
	Host     string
	Port     string
}

// ConfigFromEnv reads the DB_* variables.
func ConfigFromEnv() Config {
	return Config{
		User:     os.Getenv("DB_USER"),
		Password: os.Getenv("DB_PASSWORD"),
		Name:     os.Getenv("DB_NAME"),
		Host:     os.Getenv("DB_HOST"),
		Port:     os.Getenv("DB_PORT"),
	}
}

// BuildDSN builds the postgres DSN for cfg.
func BuildDSN(cfg Config) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name)
}

// OpenDB connects to postgres, retrying for up to a minute while the
// database comes up, and runs migrations when RUN_MIGRATIONS=true.
// TranslateError maps driver unique violations to gorm.ErrDuplicatedKey,
// which the auth adapter depends on.
func OpenDB() *gorm.DB {
	dsn := BuildDSN(ConfigFromEnv())

	var (
		db  *gorm.DB
		err error
	)
	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		if err := db.AutoMigrate(
			&authentity.User{},
			&authentity.DoctorProfile{},
			&assignmententity.Assignment{},
			&messagingentity.Message{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}

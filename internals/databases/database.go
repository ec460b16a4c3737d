package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"teep_backend/internals/configs"
	classModel "teep_backend/internals/features/classes/model"
	invoiceModel "teep_backend/internals/features/finance/invoices/model"
	lessonModel "teep_backend/internals/features/lessons/model"
	materialModel "teep_backend/internals/features/materials/model"
	noteModel "teep_backend/internals/features/notes/model"
	studentModel "teep_backend/internals/features/students/model"
	authModel "teep_backend/internals/features/users/auth/model"
	profileModel "teep_backend/internals/features/users/profile/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Connecting to PostgreSQL...")

	// Full URL DSN + statement_timeout.
	// With PgBouncer switch host/port to the pooler and keep PreferSimpleProtocol=true.
	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=teep&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ DB connection failed: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

func WarmUpQueries() {
	// light touch so the pool is filled and ready
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

// MigrateSchema pins the schema up front; a missing column is a boot
// failure, not a runtime branch.
func MigrateSchema() {
	if err := DB.AutoMigrate(
		&authModel.User{},
		&authModel.TokenBlacklist{},
		&authModel.EmailConfirmation{},
		&profileModel.UserProfile{},
		&studentModel.Student{},
		&classModel.Class{},
		&classModel.ClassStudent{},
		&lessonModel.PrivateLesson{},
		&materialModel.Material{},
		&noteModel.Note{},
		&invoiceModel.Invoice{},
	); err != nil {
		log.Fatalf("❌ migration failed: %v", err)
	}
	log.Println("✅ Schema migrated.")
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

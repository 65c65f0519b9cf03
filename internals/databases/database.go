package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"lembagaku_backend/internals/configs"
	accountModel "lembagaku_backend/internals/features/finance/accounts/model"
	feeModel "lembagaku_backend/internals/features/finance/fees/model"
	journalModel "lembagaku_backend/internals/features/finance/journal/model"
	admissionModel "lembagaku_backend/internals/features/school/admissions/model"
	leadModel "lembagaku_backend/internals/features/school/leads/model"
	studentModel "lembagaku_backend/internals/features/school/students/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("connecting to PostgreSQL...")

	sslmode := configs.GetEnv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=lembagaku&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // plays well with PgBouncer transaction pooling
	}), &gorm.Config{
		Logger:         configs.NewGormLogger(),
		TranslateError: true, // unique violations surface as gorm.ErrDuplicatedKey
	})
	if err != nil {
		log.Fatalf("DB connect failed: %v", err)
	}
	DB = db
	log.Println("DB connected.")
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
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

// AutoMigrate creates/updates the workflow tables. Opt-in via
// DB_AUTOMIGRATE=true; production schemas are managed by SQL migrations.
func AutoMigrate() {
	if configs.GetEnv("DB_AUTOMIGRATE", "false") != "true" {
		return
	}
	if err := DB.AutoMigrate(
		&studentModel.Student{},
		&admissionModel.Admission{},
		&feeModel.FeeRecord{},
		&leadModel.Lead{},
		&accountModel.AccountGroup{},
		&accountModel.Account{},
		&journalModel.Transaction{},
		&journalModel.JournalEntry{},
	); err != nil {
		log.Fatalf("automigrate failed: %v", err)
	}
	log.Println("automigrate done.")
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

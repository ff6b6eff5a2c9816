package config

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	// LeadsDB is the raw pgx pool, used for the stats queries.
	LeadsDB *pgxpool.Pool

	// LeadsGorm is the ORM handle for inquiry and admin records.
	LeadsGorm *gorm.DB
)

func InitDB() {
	initPgx()
	initGORM()
}

func leadsURL() string {
	url := os.Getenv("LEADS_DB_URL")
	if url != "" {
		return url
	}
	log.Println("⚠️ LEADS_DB_URL not set, using local default")
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/portfolio_leads?sslmode=disable",
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", ""),
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
	)
}

func initPgx() {
	var err error
	LeadsDB, err = pgxpool.New(context.Background(), leadsURL())
	if err != nil {
		log.Fatalf("❌ Unable to connect to leads database: %v", err)
	}
	if err = LeadsDB.Ping(context.Background()); err != nil {
		log.Fatalf("❌ Leads database ping failed: %v", err)
	}
	log.Println("✅ Leads database connected (pgx)")
}

func initGORM() {
	gormLogger := logger.Default.LogMode(logger.Info)
	if os.Getenv("APP_ENV") == "production" {
		gormLogger = logger.Default.LogMode(logger.Silent)
	}

	var err error
	LeadsGorm, err = gorm.Open(postgres.Open(leadsURL()), &gorm.Config{
		Logger:  gormLogger,
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		log.Fatalf("❌ Failed to connect to leads database with GORM: %v", err)
	}
	if sqlDB, err := LeadsGorm.DB(); err == nil {
		sqlDB.SetMaxOpenConns(5)
		sqlDB.SetMaxIdleConns(2)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
		sqlDB.SetConnMaxIdleTime(2 * time.Minute)
	}
	log.Println("✅ Leads database connected (GORM)")
}

func CloseDB() {
	if LeadsDB != nil {
		LeadsDB.Close()
		log.Println("✅ Leads database connection closed (pgx)")
	}
	if LeadsGorm != nil {
		sqlDB, _ := LeadsGorm.DB()
		if sqlDB != nil {
			sqlDB.Close()
			log.Println("✅ Leads database connection closed (GORM)")
		}
	}
}

// WithTimeout returns a context with a 10s timeout (covers managed
// Postgres cold starts)
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

func WithCustomTimeout(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

package database

import (
	"backend_savanna/pkg/config"
	"backend_savanna/pkg/models"
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// InitDatabase initializes the database connection
func InitDatabase() error {
	var err error

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
		// Surface unique-constraint violations as gorm.ErrDuplicatedKey so
		// handlers can report conflicts instead of generic 500s.
		TranslateError: true,
	}

	if !config.IsDevelopment() {
		gormConfig.Logger = logger.Default.LogMode(logger.Error)
	}

	DB, err = gorm.Open(postgres.New(postgres.Config{
		DSN:                  config.AppConfig.DatabaseURL,
		PreferSimpleProtocol: true,
	}), gormConfig)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	log.Println("✅ Database connection established")

	return nil
}

// AutoMigrate runs auto-migration for all models
func AutoMigrate() error {
	return Migrate(DB)
}

// Migrate runs auto-migration and index creation against the given
// connection. Split out of AutoMigrate so tests can migrate their own DB.
func Migrate(db *gorm.DB) error {
	log.Println("🔄 Running database migrations...")

	err := db.AutoMigrate(
		// Identity
		&models.User{},

		// Catalog
		&models.Meal{},

		// Orders & feedback
		&models.Order{},
		&models.Feedback{},
		&models.ProofOfDelivery{},

		// Shifts
		&models.ClockInRecord{},

		// Profiles
		&models.DeliveryPersonnelProfile{},
		&models.ReceptionistProfile{},
		&models.OnsiteCustomerProfile{},
		&models.OnlineCustomerProfile{},

		// Receptionist CRM
		&models.ShiftRoster{},
		&models.CRMCallLog{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	createIndexes(db)

	log.Println("✅ Database migrations completed")

	return nil
}

// createIndexes creates constraints AutoMigrate cannot express. The
// partial unique index is the cross-request guard for "at most one open
// shift per waiter" (spelled the same in PostgreSQL and SQLite).
func createIndexes(db *gorm.DB) {
	db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_open_shift_per_waiter ON clock_in_records(waiter_id) WHERE clock_out_time IS NULL`)
	db.Exec(`CREATE INDEX IF NOT EXISTS idx_meals_available_created ON meals(is_available, created_at)`)
	db.Exec(`CREATE INDEX IF NOT EXISTS idx_shift_rosters_date ON shift_rosters(shift_date)`)
	db.Exec(`CREATE INDEX IF NOT EXISTS idx_crm_call_logs_call_time ON crm_call_logs(call_time)`)
}

// CloseDatabase closes the database connection
func CloseDatabase() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database: %v", err)
	} else {
		log.Println("✅ Database connection closed")
	}
}

package database

import (
	"log"

	"backoffice/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewConnection initializes a new connection pool using GORM
func NewConnection(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		log.Println("WARNING: Failed to auto-migrate models:", err)
	}

	return db, nil
}

// Migrate creates or updates the schema for all tables. Owners are listed
// before dependents so foreign key constraints resolve.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Profile{},
		&model.Session{},
		&model.Employee{},
		&model.Task{},
		&model.Municipality{},
		&model.EmployeeExpense{},
		&model.Supplier{},
		&model.InternalExpense{},
		&model.Asset{},
		&model.MaintenanceRecord{},
		&model.ManagedFile{},
		&model.PaymentNote{},
		&model.Notification{},
		&model.Transaction{},
		&model.PayrollRecord{},
		&model.LeaveRequest{},
		&model.ExternalSystem{},
		&model.UpdatePost{},
		&model.AppConfig{},
	)
}

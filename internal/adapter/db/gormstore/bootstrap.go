package gormstore

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedUsers are inserted when the users table is first created.
var SeedUsers = []UserSchema{
	{FirstName: "John", LastName: "Doe", Email: "john.doe@example.com", Age: 30},
	{FirstName: "Jane", LastName: "Smith", Email: "jane.smith@example.com", Age: 25},
	{FirstName: "Robert", LastName: "Johnson", Email: "robert.j@example.com", Age: 35},
	{FirstName: "Emily", LastName: "Williams", Email: "emily.w@example.com", Age: 28},
	{FirstName: "Michael", LastName: "Brown", Email: "michael.b@example.com", Age: 42},
}

// Initialize creates the users table and seeds it when the table does not
// exist yet. Calling it against an existing store changes nothing.
func Initialize(ctx context.Context, db *gorm.DB, log *zap.Logger) error {
	db = db.WithContext(ctx)

	if db.Migrator().HasTable(&UserSchema{}) {
		log.Debug("users table already present, skipping seed")
		return nil
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Migrator().CreateTable(&UserSchema{}); err != nil {
			return fmt.Errorf("failed to create users table: %w", err)
		}

		seed := make([]UserSchema, len(SeedUsers))
		copy(seed, SeedUsers)
		if err := tx.Create(&seed).Error; err != nil {
			return fmt.Errorf("failed to seed users: %w", err)
		}
		return nil
	})
	if err != nil {
		log.Error("store initialization failed", zap.Error(err))
		return err
	}

	log.Info("users table created and seeded", zap.Int("seed_count", len(SeedUsers)))
	return nil
}

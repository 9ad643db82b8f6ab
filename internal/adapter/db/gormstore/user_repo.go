// Package gormstore implements the user record store on GORM. It runs on the
// embedded SQLite driver by default and on PostgreSQL when configured.
package gormstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	domain "user-container-demo/internal/domain/user"
	pkgerrors "user-container-demo/pkg/errors"
	"user-container-demo/pkg/logger"
	"user-container-demo/pkg/security"
)

// UserRepo implements the user Repository using GORM.
type UserRepo struct {
	db  *gorm.DB    // GORM database handle; each call checks out a pooled connection
	log *zap.Logger // Structured logger for database operations
}

// NewUserRepo creates a new instance of UserRepo.
func NewUserRepo(db *gorm.DB, log *zap.Logger) *UserRepo {
	return &UserRepo{db: db, log: log}
}

// UserSchema represents the database schema for the users table.
type UserSchema struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	FirstName string `gorm:"not null"`
	LastName  string `gorm:"not null"`
	Email     string `gorm:"not null;uniqueIndex"`
	Age       int    `gorm:"not null"`
}

// TableName specifies the table name for the UserSchema model.
func (UserSchema) TableName() string {
	return "users"
}

func toDomain(m UserSchema) domain.User {
	return domain.User{
		ID:        m.ID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Email:     m.Email,
		Age:       m.Age,
	}
}

func toDomainSlice(models []UserSchema) []domain.User {
	users := make([]domain.User, len(models))
	for i, m := range models {
		users[i] = toDomain(m)
	}
	return users
}

// isUniqueViolation matches translated and raw driver errors for a unique
// constraint failure.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate key")
}

// Create inserts a new user and returns the store-assigned ID.
func (r *UserRepo) Create(ctx context.Context, u *domain.User) (int64, error) {
	if u == nil {
		return 0, errors.New("user cannot be nil")
	}

	log := logger.WithContext(ctx, r.log)
	model := UserSchema{
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Age:       u.Age,
	}

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		if isUniqueViolation(err) {
			log.Warn("duplicate email rejected by db", zap.String("email", u.Email))
			return 0, fmt.Errorf("failed to create user: %w", pkgerrors.ErrDuplicateEmail)
		}
		log.Error("failed to create user in db", zap.Error(err), zap.String("email", u.Email))
		return 0, fmt.Errorf("failed to create user: %w", err)
	}

	log.Info("user created in db", zap.Int64("id", model.ID))
	return model.ID, nil
}

// GetByEmail retrieves a user by email address. It returns nil, nil when no
// user has that email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var model UserSchema
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Debug("user not found by email", zap.String("email", email))
			return nil, nil
		}
		r.log.Error("failed to get user by email from db", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	u := toDomain(model)
	return &u, nil
}

// List returns every stored user in insertion order.
func (r *UserRepo) List(ctx context.Context) ([]domain.User, error) {
	var models []UserSchema
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&models).Error; err != nil {
		r.log.Error("failed to list users from db", zap.Error(err))
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return toDomainSlice(models), nil
}

// Search returns users whose name or email contains query, case-insensitively,
// in insertion order. An empty query matches everyone.
func (r *UserRepo) Search(ctx context.Context, query string) ([]domain.User, error) {
	cleaned, err := security.ValidateSearchQuery(query)
	if err != nil {
		r.log.Warn("invalid search query", zap.String("query", query), zap.Error(err))
		return nil, pkgerrors.NewValidationError("query", "invalid search query: "+err.Error())
	}
	if cleaned == "" {
		return r.List(ctx)
	}

	pattern := "%" + strings.ToLower(security.SanitizeSearchString(cleaned)) + "%"

	var models []UserSchema
	err = r.db.WithContext(ctx).
		Where(`LOWER(first_name) LIKE ? ESCAPE '\' OR LOWER(last_name) LIKE ? ESCAPE '\' OR LOWER(email) LIKE ? ESCAPE '\'`,
			pattern, pattern, pattern).
		Order("id ASC").
		Find(&models).Error
	if err != nil {
		r.log.Error("failed to search users in db", zap.Error(err), zap.String("query", cleaned))
		return nil, fmt.Errorf("failed to search users: %w", err)
	}

	return toDomainSlice(models), nil
}

// Count returns the number of stored users.
func (r *UserRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&UserSchema{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return n, nil
}

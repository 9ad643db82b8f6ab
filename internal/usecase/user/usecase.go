package user

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	domain "user-container-demo/internal/domain/user"
	"user-container-demo/internal/usecase/render"
	pkgerrors "user-container-demo/pkg/errors"
	"user-container-demo/pkg/logger"
)

// Repository defines the record store operations the use case needs.
type Repository interface {
	Create(ctx context.Context, u *domain.User) (int64, error)          // Insert a user, returning its ID
	GetByEmail(ctx context.Context, email string) (*domain.User, error) // nil, nil when absent
	List(ctx context.Context) ([]domain.User, error)                    // All users in insertion order
	Search(ctx context.Context, query string) ([]domain.User, error)    // Users matching query
}

// Service implements Usecase on top of a Repository.
type Service struct {
	repo     Repository
	log      *zap.Logger
	validate *validator.Validate
}

// New creates a new Service.
func New(r Repository, log *zap.Logger) *Service {
	return &Service{repo: r, log: log, validate: validator.New()}
}

// formatValidationError converts validator.ValidationErrors into a ValidationError.
func formatValidationError(err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	var messages []string
	for _, e := range validationErrors {
		switch e.Tag() {
		case "required":
			messages = append(messages, fmt.Sprintf("%s is required", e.Field()))
		case "gt":
			messages = append(messages, fmt.Sprintf("%s must be a positive integer", e.Field()))
		default:
			messages = append(messages, fmt.Sprintf("%s is invalid", e.Field()))
		}
	}
	return pkgerrors.NewValidationError("", strings.Join(messages, ", "))
}

// parseAddRequest trims the raw fields and checks them without touching the store.
func (uc *Service) parseAddRequest(in AddUserRequest) (*domain.User, error) {
	age, err := strconv.Atoi(strings.TrimSpace(in.Age))
	if err != nil {
		age = 0
	}

	input := newUserInput{
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Email:     strings.TrimSpace(in.Email),
		Age:       age,
	}
	if err := uc.validate.Struct(input); err != nil {
		return nil, formatValidationError(err)
	}

	return &domain.User{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Age:       input.Age,
	}, nil
}

// AddUser validates the form snapshot and inserts a new user.
func (uc *Service) AddUser(ctx context.Context, in AddUserRequest) (*AddUserResponse, error) {
	log := logger.WithContext(ctx, uc.log)
	log.Info("adding user", zap.String("email", in.Email))

	u, err := uc.parseAddRequest(in)
	if err != nil {
		log.Warn("validate failed", zap.Error(err))
		return nil, err
	}

	existing, err := uc.repo.GetByEmail(ctx, u.Email)
	if err != nil {
		log.Error("failed to check existing email", zap.String("email", u.Email), zap.Error(err))
		return nil, pkgerrors.NewInternalError("failed to validate email uniqueness", err)
	}
	if existing != nil {
		log.Warn("email already exists", zap.String("email", u.Email), zap.Int64("existing_id", existing.ID))
		return nil, pkgerrors.ErrDuplicateEmail
	}

	id, err := uc.repo.Create(ctx, u)
	if err != nil {
		if pkgerrors.IsAlreadyExists(err) {
			return nil, pkgerrors.ErrDuplicateEmail
		}
		log.Error("failed to add user", zap.Error(err))
		return nil, pkgerrors.NewInternalError("failed to add user", err)
	}

	log.Info("user added", zap.Int64("id", id))
	return &AddUserResponse{ID: id}, nil
}

// RenderUsers loads every user and renders them through the requested kind.
// An unrecognized kind renders nothing rather than failing.
func (uc *Service) RenderUsers(ctx context.Context, in RenderUsersRequest) (*RenderUsersResponse, error) {
	log := logger.WithContext(ctx, uc.log)
	kind := domain.ParseKind(in.Kind)

	users, err := uc.repo.List(ctx)
	if err != nil {
		log.Error("failed to load users", zap.Error(err))
		return nil, pkgerrors.NewInternalError("failed to load users", err)
	}

	if !kind.Known() && len(users) > 0 {
		log.Warn("unknown container kind, rendering nothing", zap.String("kind", in.Kind))
	}

	log.Debug("rendering users", zap.Stringer("kind", kind), zap.Int("count", len(users)))
	return &RenderUsersResponse{
		Kind:   kind.Key(),
		Count:  len(users),
		Report: render.Render(users, kind),
	}, nil
}

// ListUsers returns stored users, optionally filtered by a search query.
func (uc *Service) ListUsers(ctx context.Context, in ListUsersRequest) (*ListUsersResponse, error) {
	log := logger.WithContext(ctx, uc.log)
	log.Info("listing users", zap.String("query", in.Query))

	domainUsers, err := uc.repo.Search(ctx, in.Query)
	if err != nil {
		if pkgerrors.IsValidation(err) {
			log.Warn("invalid search query", zap.String("query", in.Query), zap.Error(err))
			return nil, err
		}
		log.Error("failed to list users", zap.String("query", in.Query), zap.Error(err))
		return nil, pkgerrors.NewInternalError("failed to list users", err)
	}

	users := make([]User, len(domainUsers))
	for i, du := range domainUsers {
		users[i] = User{
			ID:        du.ID,
			FirstName: du.FirstName,
			LastName:  du.LastName,
			Email:     du.Email,
			Age:       du.Age,
		}
	}

	return &ListUsersResponse{Users: users}, nil
}

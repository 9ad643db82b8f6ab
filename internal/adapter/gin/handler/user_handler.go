package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"user-container-demo/internal/usecase/user"
	pkgerrors "user-container-demo/pkg/errors"
	"user-container-demo/pkg/logger"
)

// UserHandler handles HTTP requests for user operations
type UserHandler struct {
	uc  user.Usecase
	log *zap.Logger
}

// NewUserHandler creates a new UserHandler instance
func NewUserHandler(uc user.Usecase, log *zap.Logger) *UserHandler {
	return &UserHandler{
		uc:  uc,
		log: log,
	}
}

// AddUserRequest is the HTTP request body for adding a user.
// Fields arrive as raw text and are validated by the use case.
type AddUserRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Age       string `json:"age"`
}

// AddUserResponse is the HTTP response for an added user
type AddUserResponse struct {
	ID int64 `json:"id"`
}

// UserResponse represents the HTTP response for user data
type UserResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Age       int    `json:"age"`
}

// KindResponse describes a container kind
type KindResponse struct {
	Key         string `json:"key"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// UserCountHeader carries the number of users a rendered report was built from.
const UserCountHeader = "X-User-Count"

// AddUser handles POST /v1/users
func (h *UserHandler) AddUser(c *gin.Context) {
	ctx := c.Request.Context()

	var req AddUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.WithContext(ctx, h.log).Warn("invalid add user request", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: "request body must be a JSON object with string fields",
		})
		return
	}

	resp, err := h.uc.AddUser(ctx, user.AddUserRequest{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Age:       req.Age,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, AddUserResponse{ID: resp.ID})
}

// ListUsers handles GET /v1/users
func (h *UserHandler) ListUsers(c *gin.Context) {
	resp, err := h.uc.ListUsers(c.Request.Context(), user.ListUsersRequest{Query: c.Query("query")})
	if err != nil {
		h.handleError(c, err)
		return
	}

	users := make([]UserResponse, len(resp.Users))
	for i, u := range resp.Users {
		users[i] = UserResponse{
			ID:        u.ID,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Email:     u.Email,
			Age:       u.Age,
		}
	}

	c.JSON(http.StatusOK, users)
}

// RenderUsers handles GET /v1/users/render
func (h *UserHandler) RenderUsers(c *gin.Context) {
	resp, err := h.uc.RenderUsers(c.Request.Context(), user.RenderUsersRequest{Kind: c.DefaultQuery("kind", "list")})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header(UserCountHeader, strconv.Itoa(resp.Count))
	c.String(http.StatusOK, resp.Report)
}

// ListKinds handles GET /v1/kinds
func (h *UserHandler) ListKinds(c *gin.Context) {
	kinds := user.Kinds()
	out := make([]KindResponse, len(kinds))
	for i, k := range kinds {
		out[i] = KindResponse{Key: k.Key, Title: k.Title, Description: k.Description}
	}
	c.JSON(http.StatusOK, out)
}

// handleError converts usecase errors to appropriate HTTP responses
func (h *UserHandler) handleError(c *gin.Context, err error) {
	log := logger.WithContext(c.Request.Context(), h.log)

	var (
		validationErr *pkgerrors.ValidationError
		existsErr     *pkgerrors.AlreadyExistsError
		internalErr   *pkgerrors.InternalError
	)

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation_error", Message: validationErr.Error()})
	case errors.As(err, &existsErr):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "already_exists", Message: existsErr.Error()})
	case errors.As(err, &internalErr):
		log.Error("request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal_error", Message: internalErr.Message})
	default:
		log.Error("unexpected error", zap.Error(err))
		c.JSON(pkgerrors.HTTPStatus(err), ErrorResponse{Error: "internal_error", Message: "internal server error"})
	}
}

package user

import domain "user-container-demo/internal/domain/user"

// AddUserRequest is a snapshot of the four raw form fields.
// Values are trimmed and parsed by the use case.
type AddUserRequest struct {
	FirstName string
	LastName  string
	Email     string
	Age       string
}

// AddUserResponse carries the ID assigned by the store.
type AddUserResponse struct {
	ID int64
}

// RenderUsersRequest selects the container kind by its stable key.
type RenderUsersRequest struct {
	Kind string
}

// RenderUsersResponse is the rendered report.
type RenderUsersResponse struct {
	Kind   string // Kind is the resolved key, empty when unrecognized
	Count  int    // Count is the number of users loaded from the store
	Report string
}

// ListUsersRequest optionally filters users by name or email.
type ListUsersRequest struct {
	Query string
}

// ListUsersResponse holds users in insertion order.
type ListUsersResponse struct {
	Users []User
}

// User is the transport-neutral view of a stored user.
type User struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
	Age       int
}

// KindInfo describes a selectable container kind.
type KindInfo struct {
	Key         string
	Title       string
	Description string
}

// Kinds lists the selectable container kinds in display order.
func Kinds() []KindInfo {
	kinds := domain.Kinds()
	out := make([]KindInfo, len(kinds))
	for i, k := range kinds {
		out[i] = KindInfo{Key: k.Key(), Title: k.Title(), Description: k.Description()}
	}
	return out
}

// newUserInput is the validated shape of an AddUserRequest.
type newUserInput struct {
	FirstName string `validate:"required"`
	LastName  string `validate:"required"`
	Email     string `validate:"required"`
	Age       int    `validate:"gt=0"`
}

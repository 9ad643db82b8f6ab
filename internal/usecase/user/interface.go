package user

import "context"

// Usecase defines the operations the front ends trigger.
type Usecase interface {
	AddUser(ctx context.Context, in AddUserRequest) (*AddUserResponse, error)
	RenderUsers(ctx context.Context, in RenderUsersRequest) (*RenderUsersResponse, error)
	ListUsers(ctx context.Context, in ListUsersRequest) (*ListUsersResponse, error)
}

package user

import "context"

type Service interface {
	// Register creates the employee record in pending status together with
	// its login account. The account cannot sign in until an admin approves
	// the employee.
	Register(ctx context.Context, req RegisterRequest) (*UserResponse, error)
	Login(ctx context.Context, req LoginRequest) (*TokenResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenResponse, error)
	Logout(ctx context.Context, userID int64) error
}

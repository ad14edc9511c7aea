package auth

import "context"

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
}

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
}

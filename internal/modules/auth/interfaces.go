package auth

import (
	"context"

	"rentalhub/internal/domain"
	"rentalhub/internal/pkg/pagination"
)

// UserRepositoryInterface is the slice of the user repository the auth
// service needs.
type UserRepositoryInterface interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, p pagination.Params) ([]domain.User, int64, error)
}

type tokenIssuer interface {
	GenerateToken(userID int64, role string) (string, error)
}

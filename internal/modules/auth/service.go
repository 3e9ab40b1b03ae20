package auth

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"rentalhub/internal/domain"
	"rentalhub/internal/pkg/apperr"
	"rentalhub/internal/pkg/pagination"
	"rentalhub/internal/repository"
)

// Service contains the business logic for operator accounts.
type Service struct {
	users UserRepositoryInterface
	jwt   tokenIssuer
}

func NewService(users UserRepositoryInterface, jwt tokenIssuer) *Service {
	return &Service{users: users, jwt: jwt}
}

// Login checks the credentials and issues a bearer token.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, apperr.Internal(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.Active {
		return nil, ErrAccountDisabled
	}

	token, err := s.jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return &LoginResponse{User: user, Token: token}, nil
}

func (s *Service) GetCurrentUser(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.Active {
		return nil, ErrAccountDisabled
	}
	return user, nil
}

func (s *Service) ListUsers(ctx context.Context, p pagination.Params) (pagination.Page[domain.User], error) {
	users, total, err := s.users.List(ctx, p)
	if err != nil {
		return pagination.Page[domain.User]{}, apperr.Internal(err)
	}
	return pagination.New(users, total, p), nil
}

func (s *Service) CreateUser(ctx context.Context, req CreateUserRequest) (*domain.User, error) {
	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: hash,
		Role:         req.Role,
		Active:       true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, apperr.Internal(err)
	}
	return user, nil
}

// UpdateUser edits another account. An admin may rename themself or change
// their own password, but not drop their own role or access.
func (s *Service) UpdateUser(ctx context.Context, actorID, id int64, req UpdateUserRequest) (*domain.User, error) {
	user, err := s.getUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if actorID == id {
		if (req.Role != nil && *req.Role != user.Role) || (req.Active != nil && !*req.Active) {
			return nil, ErrDemoteSelf
		}
	}

	if req.Name != nil {
		user.Name = strings.TrimSpace(*req.Name)
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.Active != nil {
		user.Active = *req.Active
	}
	if req.Password != nil {
		hash, err := hashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, apperr.Internal(err)
	}
	return user, nil
}

func (s *Service) DeleteUser(ctx context.Context, actorID, id int64) error {
	if actorID == id {
		return ErrDeleteSelf
	}
	if err := s.users.Delete(ctx, id); err != nil {
		switch {
		case repository.IsNotFound(err):
			return ErrUserNotFound
		case repository.IsForeignKeyViolation(err):
			return apperr.Conflict("user has recorded rentals or payments; deactivate it instead")
		}
		return apperr.Internal(err)
	}
	return nil
}

func (s *Service) getUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, apperr.Internal(err)
	}
	return user, nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", apperr.Internal(err)
	}
	return string(hash), nil
}

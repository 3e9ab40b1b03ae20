package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"rentalhub/internal/domain"
	"rentalhub/internal/pkg/apperr"
	"rentalhub/internal/pkg/pagination"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockUserRepo) List(ctx context.Context, p pagination.Params) ([]domain.User, int64, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.User), args.Get(1).(int64), args.Error(2)
}

type mockJWTService struct {
	mock.Mock
}

func (m *mockJWTService) GenerateToken(userID int64, role string) (string, error) {
	args := m.Called(userID, role)
	return args.String(0), args.Error(1)
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestService_Login_Success(t *testing.T) {
	userRepo := new(mockUserRepo)
	jwtSvc := new(mockJWTService)
	user := &domain.User{ID: 7, Email: "staff@example.com", PasswordHash: hashed(t, "password123"), Role: domain.RoleStaff, Active: true}

	userRepo.On("GetByEmail", mock.Anything, "staff@example.com").Return(user, nil)
	jwtSvc.On("GenerateToken", int64(7), "staff").Return("signed-token", nil)

	svc := NewService(userRepo, jwtSvc)
	res, err := svc.Login(context.Background(), LoginRequest{Email: "  Staff@Example.com ", Password: "password123"})

	require.NoError(t, err)
	assert.Equal(t, "signed-token", res.Token)
	assert.Equal(t, int64(7), res.User.ID)
	userRepo.AssertExpectations(t)
	jwtSvc.AssertExpectations(t)
}

func TestService_Login_Failures(t *testing.T) {
	active := &domain.User{ID: 1, Email: "a@example.com", PasswordHash: hashed(t, "right-password"), Role: domain.RoleAdmin, Active: true}
	disabled := &domain.User{ID: 2, Email: "d@example.com", PasswordHash: hashed(t, "right-password"), Role: domain.RoleStaff}

	userRepo := new(mockUserRepo)
	userRepo.On("GetByEmail", mock.Anything, "a@example.com").Return(active, nil)
	userRepo.On("GetByEmail", mock.Anything, "d@example.com").Return(disabled, nil)
	userRepo.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)
	userRepo.On("GetByEmail", mock.Anything, "broken@example.com").Return(nil, errors.New("connection reset"))

	svc := NewService(userRepo, new(mockJWTService))
	ctx := context.Background()

	_, err := svc.Login(ctx, LoginRequest{Email: "a@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, LoginRequest{Email: "nobody@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, LoginRequest{Email: "d@example.com", Password: "right-password"})
	assert.ErrorIs(t, err, ErrAccountDisabled)

	_, err = svc.Login(ctx, LoginRequest{Email: "broken@example.com", Password: "x"})
	assert.Equal(t, apperr.KindInternal, apperr.KindOf(err))
}

func TestService_CreateUser(t *testing.T) {
	userRepo := new(mockUserRepo)
	userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Email == "new@example.com" && u.Active && u.Role == domain.RoleStaff &&
			bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("longenough")) == nil
	})).Return(nil).Once()
	userRepo.On("Create", mock.Anything, mock.Anything).
		Return(errors.New("UNIQUE constraint failed: users.email")).Once()

	svc := NewService(userRepo, new(mockJWTService))
	req := CreateUserRequest{Name: "New", Email: "New@Example.com", Password: "longenough", Role: domain.RoleStaff}

	user, err := svc.CreateUser(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", user.Email)

	_, err = svc.CreateUser(context.Background(), req)
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	userRepo.AssertExpectations(t)
}

func TestService_UpdateUser_SelfGuards(t *testing.T) {
	admin := func() *domain.User {
		return &domain.User{ID: 1, Name: "Root", Role: domain.RoleAdmin, Active: true}
	}
	userRepo := new(mockUserRepo)
	userRepo.On("GetByID", mock.Anything, int64(1)).Return(admin(), nil)
	userRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(userRepo, new(mockJWTService))
	ctx := context.Background()

	staff := domain.RoleStaff
	_, err := svc.UpdateUser(ctx, 1, 1, UpdateUserRequest{Role: &staff})
	assert.ErrorIs(t, err, ErrDemoteSelf)

	off := false
	_, err = svc.UpdateUser(ctx, 1, 1, UpdateUserRequest{Active: &off})
	assert.ErrorIs(t, err, ErrDemoteSelf)

	name := " Renamed "
	user, err := svc.UpdateUser(ctx, 1, 1, UpdateUserRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", user.Name)
}

func TestService_DeleteUser(t *testing.T) {
	userRepo := new(mockUserRepo)
	userRepo.On("Delete", mock.Anything, int64(5)).Return(nil)
	userRepo.On("Delete", mock.Anything, int64(6)).Return(gorm.ErrRecordNotFound)

	svc := NewService(userRepo, new(mockJWTService))
	ctx := context.Background()

	assert.ErrorIs(t, svc.DeleteUser(ctx, 1, 1), ErrDeleteSelf)
	assert.NoError(t, svc.DeleteUser(ctx, 1, 5))
	assert.ErrorIs(t, svc.DeleteUser(ctx, 1, 6), ErrUserNotFound)
	userRepo.AssertNotCalled(t, "Delete", mock.Anything, int64(1))
}

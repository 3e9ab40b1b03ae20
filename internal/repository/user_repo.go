package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"rentalhub/internal/domain"
	"rentalhub/internal/pkg/pagination"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	u.Email = normalizeEmail(u.Email)
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	tx := r.db.WithContext(ctx).
		Where("LOWER(email) = ?", normalizeEmail(email)).
		First(&u)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Update(ctx context.Context, u *domain.User) error {
	u.Email = normalizeEmail(u.Email)
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&domain.User{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *UserRepository) List(ctx context.Context, p pagination.Params) ([]domain.User, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&domain.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var users []domain.User
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Offset(p.Offset()).Limit(p.Limit).
		Find(&users).Error
	return users, total, err
}

// Upsert creates the user or refreshes name, role and password for an
// existing email.
func (r *UserRepository) Upsert(ctx context.Context, u *domain.User) error {
	existing, err := r.GetByEmail(ctx, u.Email)
	if IsNotFound(err) {
		return r.Create(ctx, u)
	}
	if err != nil {
		return err
	}
	existing.Name = u.Name
	existing.Role = u.Role
	existing.PasswordHash = u.PasswordHash
	existing.Active = true
	if err := r.Update(ctx, existing); err != nil {
		return err
	}
	*u = *existing
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

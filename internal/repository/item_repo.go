package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"rentalhub/internal/domain"
	"rentalhub/internal/pkg/pagination"
)

type ItemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

type ItemFilter struct {
	Status     domain.ItemStatus
	CategoryID int64
	Search     string
}

func (f ItemFilter) apply(db *gorm.DB) *gorm.DB {
	if f.Status != "" {
		db = db.Where("status = ?", f.Status)
	}
	if f.CategoryID != 0 {
		db = db.Where("category_id = ?", f.CategoryID)
	}
	if s := strings.ToLower(strings.TrimSpace(f.Search)); s != "" {
		db = db.Where("(LOWER(name) LIKE ? OR LOWER(sku) LIKE ?)", likePattern(s), likePattern(s))
	}
	return db
}

func (r *ItemRepository) Create(ctx context.Context, item *domain.Item) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(item).Error
}

func (r *ItemRepository) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	var item domain.Item
	if err := r.db.WithContext(ctx).Preload("Category", withDeleted).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *ItemRepository) GetForUpdate(ctx context.Context, id int64) (*domain.Item, error) {
	var item domain.Item
	if err := forUpdate(r.db.WithContext(ctx)).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *ItemRepository) Update(ctx context.Context, item *domain.Item) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(item).Error
}

func (r *ItemRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&domain.Item{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ItemRepository) List(ctx context.Context, f ItemFilter, p pagination.Params) ([]domain.Item, int64, error) {
	base := func() *gorm.DB {
		return f.apply(r.db.WithContext(ctx).Model(&domain.Item{}))
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var items []domain.Item
	err := base().
		Preload("Category", withDeleted).
		Order("name ASC, id ASC").
		Offset(p.Offset()).Limit(p.Limit).
		Find(&items).Error
	return items, total, err
}

func (r *ItemRepository) CountByCategory(ctx context.Context, categoryID int64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Item{}).Where("category_id = ?", categoryID).Count(&n).Error
	return n, err
}

func (r *ItemRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	return countByStatus(r.db.WithContext(ctx).Model(&domain.Item{}))
}

// ReserveUnit takes one unit for a rental. The guard in the WHERE clause
// makes the check and the decrement a single compare-and-swap.
func (r *ItemRepository) ReserveUnit(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Model(&domain.Item{}).
		Where("id = ? AND status = ? AND quantity >= 1", id, domain.ItemAvailable).
		Updates(map[string]any{
			"status":   domain.ItemRented,
			"quantity": gorm.Expr("quantity - 1"),
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrConditionFailed
	}
	return nil
}

// ReleaseUnit returns one unit and marks the item AVAILABLE, unconditionally.
func (r *ItemRepository) ReleaseUnit(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Model(&domain.Item{}).Unscoped().
		Where("id = ?", id).
		Updates(map[string]any{
			"status":   domain.ItemAvailable,
			"quantity": gorm.Expr("quantity + 1"),
		}).Error
}

func (r *ItemRepository) SetStatus(ctx context.Context, id int64, status domain.ItemStatus) error {
	return r.db.WithContext(ctx).Model(&domain.Item{}).Unscoped().
		Where("id = ?", id).
		Update("status", status).Error
}

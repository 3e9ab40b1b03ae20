package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"rentalhub/internal/domain"
	"rentalhub/internal/pkg/pagination"
)

type MaintenanceRepository struct {
	db *gorm.DB
}

func NewMaintenanceRepository(db *gorm.DB) *MaintenanceRepository {
	return &MaintenanceRepository{db: db}
}

type MaintenanceFilter struct {
	Status domain.MaintenanceStatus
	ItemID int64
}

func (f MaintenanceFilter) apply(db *gorm.DB) *gorm.DB {
	if f.Status != "" {
		db = db.Where("status = ?", f.Status)
	}
	if f.ItemID != 0 {
		db = db.Where("item_id = ?", f.ItemID)
	}
	return db
}

func (r *MaintenanceRepository) Create(ctx context.Context, m *domain.Maintenance) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(m).Error
}

func (r *MaintenanceRepository) GetByID(ctx context.Context, id int64) (*domain.Maintenance, error) {
	var m domain.Maintenance
	if err := r.db.WithContext(ctx).Preload("Item", withDeleted).First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MaintenanceRepository) GetForUpdate(ctx context.Context, id int64) (*domain.Maintenance, error) {
	var m domain.Maintenance
	if err := forUpdate(r.db.WithContext(ctx)).First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MaintenanceRepository) Update(ctx context.Context, m *domain.Maintenance) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(m).Error
}

func (r *MaintenanceRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&domain.Maintenance{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *MaintenanceRepository) List(ctx context.Context, f MaintenanceFilter, p pagination.Params) ([]domain.Maintenance, int64, error) {
	base := func() *gorm.DB {
		return f.apply(r.db.WithContext(ctx).Model(&domain.Maintenance{}))
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var records []domain.Maintenance
	err := base().
		Preload("Item", withDeleted).
		Order("created_at DESC, id DESC").
		Offset(p.Offset()).Limit(p.Limit).
		Find(&records).Error
	return records, total, err
}

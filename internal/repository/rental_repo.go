package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"rentalhub/internal/domain"
	"rentalhub/internal/pkg/pagination"
)

type RentalRepository struct {
	db *gorm.DB
}

func NewRentalRepository(db *gorm.DB) *RentalRepository {
	return &RentalRepository{db: db}
}

type RentalFilter struct {
	Status     domain.RentalStatus
	CustomerID int64
	ItemID     int64
}

func (f RentalFilter) apply(db *gorm.DB) *gorm.DB {
	if f.Status != "" {
		db = db.Where("status = ?", f.Status)
	}
	if f.CustomerID != 0 {
		db = db.Where("customer_id = ?", f.CustomerID)
	}
	if f.ItemID != 0 {
		db = db.Where("item_id = ?", f.ItemID)
	}
	return db
}

func (r *RentalRepository) withParties(db *gorm.DB) *gorm.DB {
	return db.Preload("Customer", withDeleted).Preload("Item", withDeleted)
}

func (r *RentalRepository) Create(ctx context.Context, rental *domain.Rental) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(rental).Error
}

// GetByID loads the rental with its customer, item and payments.
func (r *RentalRepository) GetByID(ctx context.Context, id int64) (*domain.Rental, error) {
	var rental domain.Rental
	err := r.withParties(r.db.WithContext(ctx)).
		Preload("Payments", func(db *gorm.DB) *gorm.DB { return db.Order("payment_date ASC, id ASC") }).
		First(&rental, id).Error
	if err != nil {
		return nil, err
	}
	return &rental, nil
}

// GetForUpdate re-reads the bare row under a row lock. Callers must be
// inside Store.Atomic.
func (r *RentalRepository) GetForUpdate(ctx context.Context, id int64) (*domain.Rental, error) {
	var rental domain.Rental
	if err := forUpdate(r.db.WithContext(ctx)).First(&rental, id).Error; err != nil {
		return nil, err
	}
	return &rental, nil
}

func (r *RentalRepository) Update(ctx context.Context, rental *domain.Rental) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(rental).Error
}

// UpdateBalances writes only the settlement columns.
func (r *RentalRepository) UpdateBalances(ctx context.Context, rental *domain.Rental) error {
	return r.db.WithContext(ctx).Model(&domain.Rental{}).
		Where("id = ?", rental.ID).
		Updates(map[string]any{
			"amount_paid":    rental.AmountPaid,
			"amount_due":     rental.AmountDue,
			"payment_status": rental.PaymentStatus,
		}).Error
}

func (r *RentalRepository) List(ctx context.Context, f RentalFilter, p pagination.Params) ([]domain.Rental, int64, error) {
	base := func() *gorm.DB {
		return f.apply(r.db.WithContext(ctx).Model(&domain.Rental{}))
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var rentals []domain.Rental
	err := r.withParties(base()).
		Order("created_at DESC, id DESC").
		Offset(p.Offset()).Limit(p.Limit).
		Find(&rentals).Error
	return rentals, total, err
}

func (r *RentalRepository) ListByCustomer(ctx context.Context, customerID int64) ([]domain.Rental, error) {
	var rentals []domain.Rental
	err := r.withParties(r.db.WithContext(ctx)).
		Where("customer_id = ?", customerID).
		Order("start_date DESC, id DESC").
		Find(&rentals).Error
	return rentals, err
}

func (r *RentalRepository) CountOpenByCustomer(ctx context.Context, customerID int64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Rental{}).
		Where("customer_id = ? AND status IN ?", customerID, domain.OpenRentalStatuses).
		Count(&n).Error
	return n, err
}

func (r *RentalRepository) CountOpenByItem(ctx context.Context, itemID int64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Rental{}).
		Where("item_id = ? AND status IN ?", itemID, domain.OpenRentalStatuses).
		Count(&n).Error
	return n, err
}

// MarkOverdue moves ACTIVE rentals whose end date is before now to OVERDUE
// and returns the ids it changed. Run it inside Store.Atomic so the lock
// and the update commit together.
func (r *RentalRepository) MarkOverdue(ctx context.Context, now time.Time) ([]int64, error) {
	var ids []int64
	err := forUpdate(r.db.WithContext(ctx).Model(&domain.Rental{})).
		Where("status = ? AND end_date < ?", domain.RentalActive, now).
		Order("id ASC").
		Pluck("id", &ids).Error
	if err != nil || len(ids) == 0 {
		return nil, err
	}

	err = r.db.WithContext(ctx).Model(&domain.Rental{}).
		Where("id IN ? AND status = ?", ids, domain.RentalActive).
		Update("status", domain.RentalOverdue).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *RentalRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	return countByStatus(r.db.WithContext(ctx).Model(&domain.Rental{}))
}

// SumOutstanding totals amountDue over every unsettled rental, across all
// time.
func (r *RentalRepository) SumOutstanding(ctx context.Context) (decimal.Decimal, error) {
	q := r.db.WithContext(ctx).Model(&domain.Rental{}).
		Where("payment_status IN ?", []domain.PaymentStatus{domain.PaymentUnpaid, domain.PaymentPartial})
	return sumColumn(q, "amount_due")
}

func (r *RentalRepository) Recent(ctx context.Context, limit int) ([]domain.Rental, error) {
	var rentals []domain.Rental
	err := r.withParties(r.db.WithContext(ctx)).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&rentals).Error
	return rentals, err
}

// EndingBetween lists ACTIVE rentals whose end date falls in [from, to].
func (r *RentalRepository) EndingBetween(ctx context.Context, from, to time.Time) ([]domain.Rental, error) {
	var rentals []domain.Rental
	err := r.withParties(r.db.WithContext(ctx)).
		Where("status = ? AND end_date >= ? AND end_date <= ?", domain.RentalActive, from, to).
		Order("end_date ASC, id ASC").
		Find(&rentals).Error
	return rentals, err
}

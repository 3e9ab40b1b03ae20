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

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// Period bounds a date filter. From is inclusive, To exclusive; nil is open.
type Period struct {
	From *time.Time
	To   *time.Time
}

func (p Period) apply(db *gorm.DB, column string) *gorm.DB {
	if p.From != nil {
		db = db.Where(column+" >= ?", p.From.UTC())
	}
	if p.To != nil {
		db = db.Where(column+" < ?", p.To.UTC())
	}
	return db
}

type PaymentFilter struct {
	RentalID int64
	Period   Period
}

func (f PaymentFilter) apply(db *gorm.DB) *gorm.DB {
	if f.RentalID != 0 {
		db = db.Where("rental_id = ?", f.RentalID)
	}
	return f.Period.apply(db, "payment_date")
}

func (r *PaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(p).Error
}

func (r *PaymentRepository) GetByID(ctx context.Context, id int64) (*domain.Payment, error) {
	var p domain.Payment
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PaymentRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&domain.Payment{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *PaymentRepository) List(ctx context.Context, f PaymentFilter, p pagination.Params) ([]domain.Payment, int64, error) {
	base := func() *gorm.DB {
		return f.apply(r.db.WithContext(ctx).Model(&domain.Payment{}))
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var payments []domain.Payment
	err := base().
		Order("payment_date DESC, id DESC").
		Offset(p.Offset()).Limit(p.Limit).
		Find(&payments).Error
	return payments, total, err
}

// SumByRental is the authoritative amountPaid of a rental.
func (r *PaymentRepository) SumByRental(ctx context.Context, rentalID int64) (decimal.Decimal, error) {
	return sumColumn(r.db.WithContext(ctx).Model(&domain.Payment{}).Where("rental_id = ?", rentalID), "amount")
}

func (r *PaymentRepository) Sum(ctx context.Context, period Period) (decimal.Decimal, error) {
	return sumColumn(period.apply(r.db.WithContext(ctx).Model(&domain.Payment{}), "payment_date"), "amount")
}

func (r *PaymentRepository) Recent(ctx context.Context, limit int) ([]domain.Payment, error) {
	var payments []domain.Payment
	err := r.db.WithContext(ctx).
		Order("payment_date DESC, id DESC").
		Limit(limit).
		Find(&payments).Error
	return payments, err
}

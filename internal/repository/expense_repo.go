package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"rentalhub/internal/domain"
	"rentalhub/internal/pkg/pagination"
)

type ExpenseRepository struct {
	db *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

type ExpenseFilter struct {
	Category domain.ExpenseCategory
	Period   Period
}

func (f ExpenseFilter) apply(db *gorm.DB) *gorm.DB {
	if f.Category != "" {
		db = db.Where("category = ?", f.Category)
	}
	return f.Period.apply(db, "expense_date")
}

func (r *ExpenseRepository) Create(ctx context.Context, e *domain.Expense) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(e).Error
}

func (r *ExpenseRepository) GetByID(ctx context.Context, id int64) (*domain.Expense, error) {
	var e domain.Expense
	if err := r.db.WithContext(ctx).First(&e, id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *ExpenseRepository) Update(ctx context.Context, e *domain.Expense) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(e).Error
}

func (r *ExpenseRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&domain.Expense{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ExpenseRepository) List(ctx context.Context, f ExpenseFilter, p pagination.Params) ([]domain.Expense, int64, error) {
	base := func() *gorm.DB {
		return f.apply(r.db.WithContext(ctx).Model(&domain.Expense{}))
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var expenses []domain.Expense
	err := base().
		Order("expense_date DESC, id DESC").
		Offset(p.Offset()).Limit(p.Limit).
		Find(&expenses).Error
	return expenses, total, err
}

func (r *ExpenseRepository) Sum(ctx context.Context, period Period) (decimal.Decimal, error) {
	return sumColumn(period.apply(r.db.WithContext(ctx).Model(&domain.Expense{}), "expense_date"), "amount")
}

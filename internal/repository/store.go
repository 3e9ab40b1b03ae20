package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"rentalhub/internal/domain"
)

// Store is the injected handle to the relational store. A Store returned
// inside Atomic is bound to that transaction.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) DB() *gorm.DB { return s.db }

// Atomic runs fn in a single transaction. Any error from fn, or a panic,
// rolls back every write fn made through tx.
func (s *Store) Atomic(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
}

func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *Store) Users() *UserRepository { return NewUserRepository(s.db) }
func (s *Store) Categories() *CategoryRepository { return NewCategoryRepository(s.db) }
func (s *Store) Items() *ItemRepository { return NewItemRepository(s.db) }
func (s *Store) Customers() *CustomerRepository { return NewCustomerRepository(s.db) }
func (s *Store) Rentals() *RentalRepository { return NewRentalRepository(s.db) }
func (s *Store) Payments() *PaymentRepository { return NewPaymentRepository(s.db) }
func (s *Store) Expenses() *ExpenseRepository { return NewExpenseRepository(s.db) }
func (s *Store) Maintenance() *MaintenanceRepository { return NewMaintenanceRepository(s.db) }

func forUpdate(db *gorm.DB) *gorm.DB {
	return db.Clauses(clause.Locking{Strength: "UPDATE"})
}

// withDeleted preloads soft-deleted parents so history stays readable.
func withDeleted(db *gorm.DB) *gorm.DB {
	return db.Unscoped()
}

func sumColumn(q *gorm.DB, column string) (decimal.Decimal, error) {
	var total decimal.Decimal
	if err := q.Select("COALESCE(SUM(" + column + "), 0)").Row().Scan(&total); err != nil {
		return decimal.Zero, err
	}
	return domain.RoundMoney(total), nil
}

func likePattern(search string) string {
	return "%" + search + "%"
}

type statusCount struct {
	Status string
	Count  int64
}

func countByStatus(q *gorm.DB) (map[string]int64, error) {
	var rows []statusCount
	if err := q.Select("status, COUNT(*) AS count").Group("status").Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, r := range rows {
		out[r.Status] = r.Count
	}
	return out, nil
}

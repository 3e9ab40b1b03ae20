package finance

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"rentalhub/internal/domain"
	"rentalhub/internal/pkg/apperr"
	"rentalhub/internal/pkg/pagination"
	"rentalhub/internal/repository"
)

var hundred = decimal.NewFromInt(100)

// Service is the payment ledger, the expense book and the reports built
// on them.
type Service struct {
	store *repository.Store
	now   func() time.Time
}

func NewService(store *repository.Store) *Service {
	return &Service{store: store, now: time.Now}
}

/* ---------- PAYMENTS ---------- */

// RecordPayment adds a payment and re-derives the rental's balance under a
// row lock, so concurrent payments cannot both pass the amount-due check.
func (s *Service) RecordPayment(ctx context.Context, actorID int64, req RecordPaymentRequest) (*domain.Payment, error) {
	amount := domain.RoundMoney(req.Amount)
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if !req.Method.Valid() {
		return nil, ErrInvalidMethod
	}

	p := &domain.Payment{
		RentalID:      req.RentalID,
		Amount:        amount,
		Method:        req.Method,
		Reference:     strings.TrimSpace(req.Reference),
		ReceiptNumber: receiptNumber(),
		Notes:         req.Notes,
		PaymentDate:   s.now().UTC(),
		RecordedByID:  actorID,
	}
	if req.PaymentDate != nil {
		p.PaymentDate = req.PaymentDate.Time
	}

	err := s.store.Atomic(ctx, func(tx *repository.Store) error {
		rental, err := tx.Rentals().GetForUpdate(ctx, req.RentalID)
		if err != nil {
			return mapErr(err, ErrRentalNotFound)
		}
		if amount.GreaterThan(rental.AmountDue) {
			return ErrOverpayment
		}
		if err := tx.Payments().Create(ctx, p); err != nil {
			return apperr.Internal(err)
		}
		return resettle(ctx, tx, rental)
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// DeletePayment reverses a payment. The balance is recomputed from the
// remaining payments, never from a stored previous status.
func (s *Service) DeletePayment(ctx context.Context, id int64) error {
	return s.store.Atomic(ctx, func(tx *repository.Store) error {
		p, err := tx.Payments().GetByID(ctx, id)
		if err != nil {
			return mapErr(err, ErrPaymentNotFound)
		}
		rental, err := tx.Rentals().GetForUpdate(ctx, p.RentalID)
		if err != nil {
			return mapErr(err, ErrRentalNotFound)
		}
		if err := tx.Payments().Delete(ctx, id); err != nil {
			return mapErr(err, ErrPaymentNotFound)
		}
		return resettle(ctx, tx, rental)
	})
}

// resettle sets amountPaid to the ledger sum and re-derives amountDue and
// paymentStatus. The rental row must already be locked.
func resettle(ctx context.Context, tx *repository.Store, rental *domain.Rental) error {
	paid, err := tx.Payments().SumByRental(ctx, rental.ID)
	if err != nil {
		return apperr.Internal(err)
	}
	rental.AmountPaid = paid
	rental.Settle()
	if err := tx.Rentals().UpdateBalances(ctx, rental); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

func (s *Service) GetPayment(ctx context.Context, id int64) (*domain.Payment, error) {
	p, err := s.store.Payments().GetByID(ctx, id)
	if err != nil {
		return nil, mapErr(err, ErrPaymentNotFound)
	}
	return p, nil
}

func (s *Service) ListPayments(ctx context.Context, q PaymentQuery, p pagination.Params) (pagination.Page[domain.Payment], error) {
	period, err := q.period()
	if err != nil {
		return pagination.Page[domain.Payment]{}, err
	}
	payments, total, err := s.store.Payments().List(ctx, repository.PaymentFilter{RentalID: q.RentalID, Period: period}, p)
	if err != nil {
		return pagination.Page[domain.Payment]{}, apperr.Internal(err)
	}
	return pagination.New(payments, total, p), nil
}

func receiptNumber() string {
	return "RCPT-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}

/* ---------- EXPENSES ---------- */

func (s *Service) CreateExpense(ctx context.Context, actorID int64, req CreateExpenseRequest) (*domain.Expense, error) {
	amount := domain.RoundMoney(req.Amount)
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if !req.Category.Valid() {
		return nil, ErrInvalidCategory
	}

	e := &domain.Expense{
		Description:  strings.TrimSpace(req.Description),
		Amount:       amount,
		Category:     req.Category,
		ExpenseDate:  s.now().UTC(),
		Notes:        req.Notes,
		RecordedByID: actorID,
	}
	if req.ExpenseDate != nil {
		e.ExpenseDate = req.ExpenseDate.Time
	}
	if err := s.store.Expenses().Create(ctx, e); err != nil {
		return nil, apperr.Internal(err)
	}
	return e, nil
}

func (s *Service) GetExpense(ctx context.Context, id int64) (*domain.Expense, error) {
	e, err := s.store.Expenses().GetByID(ctx, id)
	if err != nil {
		return nil, mapErr(err, ErrExpenseNotFound)
	}
	return e, nil
}

func (s *Service) UpdateExpense(ctx context.Context, id int64, req UpdateExpenseRequest) (*domain.Expense, error) {
	e, err := s.GetExpense(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Description != nil {
		e.Description = strings.TrimSpace(*req.Description)
	}
	if req.Amount != nil {
		amount := domain.RoundMoney(*req.Amount)
		if !amount.IsPositive() {
			return nil, ErrInvalidAmount
		}
		e.Amount = amount
	}
	if req.Category != nil {
		if !req.Category.Valid() {
			return nil, ErrInvalidCategory
		}
		e.Category = *req.Category
	}
	if req.ExpenseDate != nil {
		e.ExpenseDate = req.ExpenseDate.Time
	}
	if req.Notes != nil {
		e.Notes = *req.Notes
	}

	if err := s.store.Expenses().Update(ctx, e); err != nil {
		return nil, apperr.Internal(err)
	}
	return e, nil
}

func (s *Service) DeleteExpense(ctx context.Context, id int64) error {
	if err := s.store.Expenses().Delete(ctx, id); err != nil {
		return mapErr(err, ErrExpenseNotFound)
	}
	return nil
}

func (s *Service) ListExpenses(ctx context.Context, q ExpenseQuery, p pagination.Params) (pagination.Page[domain.Expense], error) {
	if q.Category != "" && !q.Category.Valid() {
		return pagination.Page[domain.Expense]{}, ErrInvalidCategory
	}
	period, err := q.period()
	if err != nil {
		return pagination.Page[domain.Expense]{}, err
	}
	expenses, total, err := s.store.Expenses().List(ctx, repository.ExpenseFilter{Category: q.Category, Period: period}, p)
	if err != nil {
		return pagination.Page[domain.Expense]{}, apperr.Internal(err)
	}
	return pagination.New(expenses, total, p), nil
}

/* ---------- REPORTS ---------- */

// Summary reports revenue and expenses inside the range. Outstanding
// payments are a snapshot over all rentals and ignore the range.
func (s *Service) Summary(ctx context.Context, r DateRange) (*Summary, error) {
	period, err := r.period()
	if err != nil {
		return nil, err
	}

	revenue, err := s.store.Payments().Sum(ctx, period)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	expenses, err := s.store.Expenses().Sum(ctx, period)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	outstanding, err := s.store.Rentals().SumOutstanding(ctx)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	net := revenue.Sub(expenses)
	return &Summary{
		StartDate:           formatBound(r.StartDate),
		EndDate:             formatBound(r.EndDate),
		TotalRevenue:        revenue,
		TotalExpenses:       expenses,
		NetProfit:           net,
		OutstandingPayments: outstanding,
		ProfitMargin:        ProfitMargin(net, revenue),
	}, nil
}

// ProfitMargin is net/revenue as a percentage, 0 when there is no revenue.
func ProfitMargin(net, revenue decimal.Decimal) decimal.Decimal {
	if revenue.IsZero() {
		return decimal.Zero
	}
	return net.Div(revenue).Mul(hundred).Round(2)
}

// MonthToDate totals the calendar month (UTC) that contains now.
func (s *Service) MonthToDate(ctx context.Context) (*MonthToDate, error) {
	now := s.now().UTC()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)
	period := repository.Period{From: &from, To: &to}

	revenue, err := s.store.Payments().Sum(ctx, period)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	expenses, err := s.store.Expenses().Sum(ctx, period)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return &MonthToDate{
		Month:    from.Format("2006-01"),
		Revenue:  revenue,
		Expenses: expenses,
		Profit:   revenue.Sub(expenses),
	}, nil
}

func (s *Service) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	total, err := s.store.Payments().Sum(ctx, repository.Period{})
	if err != nil {
		return decimal.Zero, apperr.Internal(err)
	}
	return total, nil
}

func (s *Service) Outstanding(ctx context.Context) (decimal.Decimal, error) {
	total, err := s.store.Rentals().SumOutstanding(ctx)
	if err != nil {
		return decimal.Zero, apperr.Internal(err)
	}
	return total, nil
}

func (s *Service) RecentPayments(ctx context.Context, limit int) ([]domain.Payment, error) {
	payments, err := s.store.Payments().Recent(ctx, limit)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if payments == nil {
		payments = []domain.Payment{}
	}
	return payments, nil
}

func (r DateRange) period() (repository.Period, error) {
	var p repository.Period
	if r.StartDate != nil {
		from := r.StartDate.Time
		p.From = &from
	}
	if r.EndDate != nil {
		to := r.EndDate.EndOfRange()
		p.To = &to
	}
	if p.From != nil && p.To != nil && p.To.Before(*p.From) {
		return repository.Period{}, ErrInvalidPeriod
	}
	return p, nil
}

func formatBound(d *domain.Date) *string {
	if d == nil {
		return nil
	}
	var s string
	if d.DateOnly {
		s = d.Time.Format("2006-01-02")
	} else {
		s = d.Time.Format(time.RFC3339)
	}
	return &s
}

func mapErr(err error, notFound error) error {
	if repository.IsNotFound(err) {
		return notFound
	}
	return apperr.Internal(err)
}

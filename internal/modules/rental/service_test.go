package rental

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentalhub/internal/database/dbtest"
	"rentalhub/internal/domain"
	"rentalhub/internal/pkg/apperr"
	"rentalhub/internal/pkg/pagination"
	"rentalhub/internal/repository"
)

var firstPage = pagination.Params{Page: 1, Limit: 20}

type fixture struct {
	svc      *Service
	store    *repository.Store
	user     *domain.User
	customer *domain.Customer
	item     *domain.Item
	now      time.Time
}

func newFixture(t *testing.T, quantity int) *fixture {
	t.Helper()
	store := repository.NewStore(dbtest.Open(t))
	ctx := context.Background()

	user := &domain.User{Name: "Staff", Email: "staff@example.com", PasswordHash: "x", Role: domain.RoleStaff, Active: true}
	require.NoError(t, store.Users().Create(ctx, user))
	cat := &domain.Category{Name: "Cameras"}
	require.NoError(t, store.Categories().Create(ctx, cat))
	item := &domain.Item{CategoryID: cat.ID, Name: "Canon R6", Status: domain.ItemAvailable, DailyRate: decimal.NewFromInt(15), Quantity: quantity}
	require.NoError(t, store.Items().Create(ctx, item))
	customer := &domain.Customer{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Phone: "555-0100"}
	require.NoError(t, store.Customers().Create(ctx, customer))

	f := &fixture{store: store, user: user, customer: customer, item: item}
	f.now = time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)
	f.svc = NewService(store)
	f.svc.now = func() time.Time { return f.now }
	return f
}

func date(t *testing.T, s string) *domain.Date {
	t.Helper()
	d, err := domain.ParseDate(s)
	require.NoError(t, err)
	return &domain.Date{Time: d, DateOnly: domain.IsDateOnly(s)}
}

func (f *fixture) create(t *testing.T, start, end string) *domain.Rental {
	t.Helper()
	return f.createFor(t, f.item.ID, start, end)
}

func (f *fixture) createFor(t *testing.T, itemID int64, start, end string) *domain.Rental {
	t.Helper()
	r, err := f.svc.Create(context.Background(), f.user.ID, CreateRentalRequest{
		CustomerID: f.customer.ID,
		ItemID:     itemID,
		StartDate:  date(t, start),
		EndDate:    date(t, end),
		Deposit:    decimal.NewFromInt(50),
		Discount:   decimal.NewFromInt(10),
	})
	require.NoError(t, err)
	return r
}

func (f *fixture) newItem(t *testing.T, name string) *domain.Item {
	t.Helper()
	item := &domain.Item{CategoryID: f.item.CategoryID, Name: name, Status: domain.ItemAvailable, DailyRate: decimal.NewFromInt(15), Quantity: 1}
	require.NoError(t, f.store.Items().Create(context.Background(), item))
	return item
}

func (f *fixture) reloadItem(t *testing.T) *domain.Item {
	t.Helper()
	item, err := f.store.Items().GetByID(context.Background(), f.item.ID)
	require.NoError(t, err)
	return item
}

func TestCreate_ComputesCharges(t *testing.T) {
	f := newFixture(t, 1)
	r := f.create(t, "2026-02-14", "2026-02-20")

	assert.Equal(t, domain.RentalPending, r.Status)
	assert.Equal(t, domain.PaymentUnpaid, r.PaymentStatus)
	assert.Equal(t, 6, r.NumberOfDays)
	assert.Equal(t, "15.00", r.DailyRate.StringFixed(2))
	assert.Equal(t, "90.00", r.Subtotal.StringFixed(2))
	assert.Equal(t, "130.00", r.TotalAmount.StringFixed(2))
	assert.Equal(t, "130.00", r.AmountDue.StringFixed(2))
	assert.True(t, r.AmountPaid.IsZero())
	assert.Equal(t, f.user.ID, r.CreatedByID)
	require.NotNil(t, r.Customer)
	require.NotNil(t, r.Item)
}

func TestCreate_RateIsSnapshot(t *testing.T) {
	f := newFixture(t, 2)
	ctx := context.Background()
	r := f.create(t, "2026-02-14", "2026-02-16")

	item := f.reloadItem(t)
	item.DailyRate = decimal.NewFromInt(99)
	require.NoError(t, f.store.Items().Update(ctx, item))

	got, err := f.svc.Get(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, "15.00", got.DailyRate.StringFixed(2))
}

func TestCreate_ReservesAndReturnReleases(t *testing.T) {
	f := newFixture(t, 5)
	ctx := context.Background()

	r := f.create(t, "2026-02-14", "2026-02-20")
	item := f.reloadItem(t)
	assert.Equal(t, 4, item.Quantity)
	assert.Equal(t, domain.ItemRented, item.Status)

	f.now = time.Date(2026, 2, 19, 15, 30, 0, 0, time.UTC)
	returned, err := f.svc.Return(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.RentalCompleted, returned.Status)
	require.NotNil(t, returned.ReturnDate)
	assert.True(t, returned.ReturnDate.Equal(f.now))

	item = f.reloadItem(t)
	assert.Equal(t, 5, item.Quantity)
	assert.Equal(t, domain.ItemAvailable, item.Status)

	_, err = f.svc.Return(ctx, r.ID)
	assert.ErrorIs(t, err, ErrAlreadyReturned)
	assert.Equal(t, 5, f.reloadItem(t).Quantity)
}

func TestCreate_FailuresWriteNothing(t *testing.T) {
	f := newFixture(t, 1)
	ctx := context.Background()

	req := func(customerID, itemID int64, start, end string) CreateRentalRequest {
		return CreateRentalRequest{CustomerID: customerID, ItemID: itemID, StartDate: date(t, start), EndDate: date(t, end)}
	}

	_, err := f.svc.Create(ctx, f.user.ID, req(f.customer.ID, f.item.ID, "2026-02-20", "2026-02-20"))
	assert.ErrorIs(t, err, ErrInvalidPeriod)

	_, err = f.svc.Create(ctx, f.user.ID, req(404, f.item.ID, "2026-02-14", "2026-02-15"))
	assert.ErrorIs(t, err, ErrCustomerNotFound)

	_, err = f.svc.Create(ctx, f.user.ID, req(f.customer.ID, 404, "2026-02-14", "2026-02-15"))
	assert.ErrorIs(t, err, ErrItemNotFound)

	over := req(f.customer.ID, f.item.ID, "2026-02-14", "2026-02-15")
	over.Discount = decimal.NewFromInt(100)
	_, err = f.svc.Create(ctx, f.user.ID, over)
	assert.ErrorIs(t, err, ErrNegativeTotal)

	item := f.reloadItem(t)
	assert.Equal(t, 1, item.Quantity)
	assert.Equal(t, domain.ItemAvailable, item.Status)

	f.create(t, "2026-02-14", "2026-02-15")
	_, err = f.svc.Create(ctx, f.user.ID, req(f.customer.ID, f.item.ID, "2026-02-14", "2026-02-15"))
	assert.ErrorIs(t, err, ErrItemUnavailable)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))

	page, err := f.svc.List(ctx, RentalQuery{}, firstPage)
	require.NoError(t, err)
	assert.EqualValues(t, 1, page.Total)
}

func TestCreate_RentedStatusBlocksRemainingUnits(t *testing.T) {
	f := newFixture(t, 3)
	f.create(t, "2026-02-14", "2026-02-15")

	item := f.reloadItem(t)
	assert.Equal(t, 2, item.Quantity)
	assert.Equal(t, domain.ItemRented, item.Status)

	_, err := f.svc.Create(context.Background(), f.user.ID, CreateRentalRequest{
		CustomerID: f.customer.ID, ItemID: f.item.ID,
		StartDate: date(t, "2026-02-14"), EndDate: date(t, "2026-02-15"),
	})
	assert.ErrorIs(t, err, ErrItemUnavailable)
}

func TestUpdate_DatesRepriceWithStoredTerms(t *testing.T) {
	f := newFixture(t, 1)
	ctx := context.Background()
	r := f.create(t, "2026-02-14", "2026-02-20")

	r.AmountPaid = decimal.NewFromInt(40)
	r.Settle()
	require.NoError(t, f.store.Rentals().UpdateBalances(ctx, r))

	item := f.reloadItem(t)
	item.DailyRate = decimal.NewFromInt(100)
	require.NoError(t, f.store.Items().Update(ctx, item))

	updated, err := f.svc.Update(ctx, r.ID, UpdateRentalRequest{EndDate: date(t, "2026-02-24")})
	require.NoError(t, err)
	assert.Equal(t, 10, updated.NumberOfDays)
	assert.Equal(t, "150.00", updated.Subtotal.StringFixed(2))
	assert.Equal(t, "190.00", updated.TotalAmount.StringFixed(2))
	assert.Equal(t, "40.00", updated.AmountPaid.StringFixed(2))
	assert.Equal(t, "150.00", updated.AmountDue.StringFixed(2))
	assert.Equal(t, domain.PaymentPartial, updated.PaymentStatus)
	assert.True(t, updated.AmountDue.Add(updated.AmountPaid).Equal(updated.TotalAmount))

	_, err = f.svc.Update(ctx, r.ID, UpdateRentalRequest{StartDate: date(t, "2026-02-25")})
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestUpdate_StatusTransitions(t *testing.T) {
	f := newFixture(t, 3)
	ctx := context.Background()
	status := func(s domain.RentalStatus) UpdateRentalRequest { return UpdateRentalRequest{Status: &s} }

	r := f.create(t, "2026-02-14", "2026-02-20")

	_, err := f.svc.Update(ctx, r.ID, status(domain.RentalOverdue))
	assert.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))

	active, err := f.svc.Update(ctx, r.ID, status(domain.RentalActive))
	require.NoError(t, err)
	assert.Equal(t, domain.RentalActive, active.Status)

	_, err = f.svc.Update(ctx, r.ID, status(domain.RentalPending))
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))

	same, err := f.svc.Update(ctx, r.ID, status(domain.RentalActive))
	require.NoError(t, err)
	assert.Equal(t, domain.RentalActive, same.Status)

	cancelled, err := f.svc.Update(ctx, r.ID, status(domain.RentalCancelled))
	require.NoError(t, err)
	assert.Equal(t, domain.RentalCancelled, cancelled.Status)
	assert.Equal(t, 3, f.reloadItem(t).Quantity)

	notes := "late edit"
	_, err = f.svc.Update(ctx, r.ID, UpdateRentalRequest{Notes: &notes})
	assert.ErrorIs(t, err, ErrRentalClosed)
	_, err = f.svc.Return(ctx, r.ID)
	assert.ErrorIs(t, err, ErrRentalClosed)

	second := f.create(t, "2026-02-14", "2026-02-20")
	completed, err := f.svc.Update(ctx, second.ID, status(domain.RentalCompleted))
	require.NoError(t, err)
	assert.Equal(t, domain.RentalCompleted, completed.Status)
	assert.NotNil(t, completed.ReturnDate)
	assert.Equal(t, 3, f.reloadItem(t).Quantity)
	assert.Equal(t, domain.ItemAvailable, f.reloadItem(t).Status)
}

func TestSweepOverdue_Idempotent(t *testing.T) {
	f := newFixture(t, 3)
	ctx := context.Background()
	activate := domain.RentalActive

	late := f.create(t, "2026-02-01", "2026-02-05")
	_, err := f.svc.Update(ctx, late.ID, UpdateRentalRequest{Status: &activate})
	require.NoError(t, err)
	pendingLate := f.createFor(t, f.newItem(t, "Sony A7").ID, "2026-02-01", "2026-02-05")
	current := f.createFor(t, f.newItem(t, "Nikon Z6").ID, "2026-02-08", "2026-02-12")
	_, err = f.svc.Update(ctx, current.ID, UpdateRentalRequest{Status: &activate})
	require.NoError(t, err)

	ids, err := f.svc.SweepOverdue(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{late.ID}, ids)

	ids, err = f.svc.SweepOverdue(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)

	got, err := f.svc.Get(ctx, pendingLate.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.RentalPending, got.Status)

	f.now = time.Date(2026, 2, 13, 0, 0, 0, 0, time.UTC)
	page, err := f.svc.ListOverdue(ctx, firstPage)
	require.NoError(t, err)
	assert.EqualValues(t, 2, page.Total)

	page, err = f.svc.ListActive(ctx, firstPage)
	require.NoError(t, err)
	assert.EqualValues(t, 0, page.Total)

	returned, err := f.svc.Return(ctx, late.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.RentalCompleted, returned.Status)
}

func TestList_Filters(t *testing.T) {
	f := newFixture(t, 2)
	ctx := context.Background()
	f.create(t, "2026-02-14", "2026-02-15")

	page, err := f.svc.List(ctx, RentalQuery{CustomerID: f.customer.ID, Status: domain.RentalPending}, firstPage)
	require.NoError(t, err)
	assert.EqualValues(t, 1, page.Total)

	page, err = f.svc.List(ctx, RentalQuery{ItemID: f.item.ID + 1}, firstPage)
	require.NoError(t, err)
	assert.Empty(t, page.Items)

	_, err = f.svc.List(ctx, RentalQuery{Status: "LOST"}, firstPage)
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = f.svc.Get(ctx, 9999)
	assert.ErrorIs(t, err, ErrRentalNotFound)
}

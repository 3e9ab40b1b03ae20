package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentalhub/internal/database/dbtest"
	"rentalhub/internal/domain"
	"rentalhub/internal/pkg/pagination"
	"rentalhub/internal/repository"
)

func newService(t *testing.T) (*Service, *repository.Store) {
	t.Helper()
	store := repository.NewStore(dbtest.Open(t))
	return NewService(store), store
}

func ptr[T any](v T) *T { return &v }

func TestCreateItem_Defaults(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	cat, err := svc.CreateCategory(ctx, CreateCategoryRequest{Name: " Lenses "})
	require.NoError(t, err)
	assert.Equal(t, "Lenses", cat.Name)

	item, err := svc.CreateItem(ctx, CreateItemRequest{
		CategoryID: cat.ID,
		Name:       "50mm f/1.8",
		SKU:        ptr("  "),
		DailyRate:  decimal.RequireFromString("12.499"),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ItemAvailable, item.Status)
	assert.Equal(t, 1, item.Quantity)
	assert.Nil(t, item.SKU)
	assert.Equal(t, "12.50", item.DailyRate.StringFixed(2))
	require.NotNil(t, item.Category)
	assert.Equal(t, "Lenses", item.Category.Name)

	_, err = svc.CreateItem(ctx, CreateItemRequest{CategoryID: 999, Name: "Orphan"})
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestUniqueFieldsConflict(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	cat, err := svc.CreateCategory(ctx, CreateCategoryRequest{Name: "Audio"})
	require.NoError(t, err)
	_, err = svc.CreateCategory(ctx, CreateCategoryRequest{Name: "Audio"})
	assert.ErrorIs(t, err, ErrCategoryExists)

	_, err = svc.CreateItem(ctx, CreateItemRequest{CategoryID: cat.ID, Name: "Mic A", SKU: ptr("MIC-1")})
	require.NoError(t, err)
	_, err = svc.CreateItem(ctx, CreateItemRequest{CategoryID: cat.ID, Name: "Mic B", SKU: ptr("MIC-1")})
	assert.ErrorIs(t, err, ErrSKUExists)
}

func TestUniqueFieldsReusableAfterDelete(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	old, err := svc.CreateCategory(ctx, CreateCategoryRequest{Name: "Audio"})
	require.NoError(t, err)
	require.NoError(t, svc.DeleteCategory(ctx, old.ID))
	cat, err := svc.CreateCategory(ctx, CreateCategoryRequest{Name: "Audio"})
	require.NoError(t, err)
	assert.NotEqual(t, old.ID, cat.ID)

	first, err := svc.CreateItem(ctx, CreateItemRequest{CategoryID: cat.ID, Name: "Mic A", SKU: ptr("MIC-1")})
	require.NoError(t, err)
	require.NoError(t, svc.DeleteItem(ctx, first.ID))
	second, err := svc.CreateItem(ctx, CreateItemRequest{CategoryID: cat.ID, Name: "Mic B", SKU: ptr("MIC-1")})
	require.NoError(t, err)
	require.NotNil(t, second.SKU)
	assert.Equal(t, "MIC-1", *second.SKU)

	_, err = svc.GetItem(ctx, first.ID)
	assert.ErrorIs(t, err, ErrItemNotFound)
	_, err = svc.CreateItem(ctx, CreateItemRequest{CategoryID: cat.ID, Name: "Mic C", SKU: ptr("MIC-1")})
	assert.ErrorIs(t, err, ErrSKUExists)
}

func TestDeleteCategory_BlockedByItems(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	cat, err := svc.CreateCategory(ctx, CreateCategoryRequest{Name: "Lighting"})
	require.NoError(t, err)
	item, err := svc.CreateItem(ctx, CreateItemRequest{CategoryID: cat.ID, Name: "LED panel"})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.DeleteCategory(ctx, cat.ID), ErrCategoryHasItems)

	require.NoError(t, svc.DeleteItem(ctx, item.ID))
	require.NoError(t, svc.DeleteCategory(ctx, cat.ID))
	assert.ErrorIs(t, svc.DeleteCategory(ctx, cat.ID), ErrCategoryNotFound)
}

func TestDeleteItem_BlockedByOpenRental(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()

	cat, err := svc.CreateCategory(ctx, CreateCategoryRequest{Name: "Cameras"})
	require.NoError(t, err)
	item, err := svc.CreateItem(ctx, CreateItemRequest{CategoryID: cat.ID, Name: "Body", DailyRate: decimal.NewFromInt(20)})
	require.NoError(t, err)

	user := &domain.User{Name: "Staff", Email: "s@example.com", PasswordHash: "x", Role: domain.RoleStaff, Active: true}
	require.NoError(t, store.Users().Create(ctx, user))
	cust := &domain.Customer{FirstName: "Grace", LastName: "Hopper", Email: "grace@example.com", Phone: "1"}
	require.NoError(t, store.Customers().Create(ctx, cust))

	start := time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC)
	rental := &domain.Rental{
		CustomerID: cust.ID, ItemID: item.ID, CreatedByID: user.ID,
		StartDate: start, EndDate: start.AddDate(0, 0, 2),
		Status: domain.RentalActive, DailyRate: item.DailyRate,
	}
	rental.ApplyCharges()
	require.NoError(t, store.Rentals().Create(ctx, rental))

	assert.ErrorIs(t, svc.DeleteItem(ctx, item.ID), ErrItemHasOpenRentals)

	rental.Status = domain.RentalCompleted
	require.NoError(t, store.Rentals().Update(ctx, rental))
	require.NoError(t, svc.DeleteItem(ctx, item.ID))

	_, err = svc.GetItem(ctx, item.ID)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestListItems_Filters(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	cams, _ := svc.CreateCategory(ctx, CreateCategoryRequest{Name: "Cameras"})
	audio, _ := svc.CreateCategory(ctx, CreateCategoryRequest{Name: "Audio"})
	_, err := svc.CreateItem(ctx, CreateItemRequest{CategoryID: cams.ID, Name: "Sony A7", SKU: ptr("CAM-A7")})
	require.NoError(t, err)
	_, err = svc.CreateItem(ctx, CreateItemRequest{CategoryID: cams.ID, Name: "Retired body", Status: ptr(domain.ItemRetired)})
	require.NoError(t, err)
	_, err = svc.CreateItem(ctx, CreateItemRequest{CategoryID: audio.ID, Name: "Zoom H6"})
	require.NoError(t, err)

	p := pagination.Params{Page: 1, Limit: 10}

	page, err := svc.ListItems(ctx, ItemQuery{CategoryID: cams.ID}, p)
	require.NoError(t, err)
	assert.EqualValues(t, 2, page.Total)

	page, err = svc.ListItems(ctx, ItemQuery{Search: "cam-a"}, p)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Sony A7", page.Items[0].Name)

	page, err = svc.ListItems(ctx, ItemQuery{Status: domain.ItemRetired}, p)
	require.NoError(t, err)
	assert.EqualValues(t, 1, page.Total)

	_, err = svc.ListItems(ctx, ItemQuery{Status: "BROKEN"}, p)
	assert.ErrorIs(t, err, ErrInvalidItemStatus)
}

func TestUpdateItem(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	cat, _ := svc.CreateCategory(ctx, CreateCategoryRequest{Name: "Grip"})
	other, _ := svc.CreateCategory(ctx, CreateCategoryRequest{Name: "Support"})
	item, err := svc.CreateItem(ctx, CreateItemRequest{CategoryID: cat.ID, Name: "Tripod"})
	require.NoError(t, err)

	updated, err := svc.UpdateItem(ctx, item.ID, UpdateItemRequest{
		CategoryID: &other.ID,
		Quantity:   ptr(4),
		DailyRate:  ptr(decimal.NewFromInt(8)),
	})
	require.NoError(t, err)
	assert.Equal(t, 4, updated.Quantity)
	assert.Equal(t, other.ID, updated.CategoryID)
	assert.Equal(t, "Support", updated.Category.Name)
	assert.True(t, updated.DailyRate.Equal(decimal.NewFromInt(8)))

	_, err = svc.UpdateItem(ctx, item.ID, UpdateItemRequest{CategoryID: ptr(int64(404))})
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

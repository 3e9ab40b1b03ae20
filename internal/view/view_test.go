package view

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentalhub/internal/domain"
)

var rentalMoneyKeys = []string{
	"dailyRate", "numberOfDays", "subtotal", "deposit", "discount",
	"totalAmount", "amountPaid", "amountDue", "paymentStatus", "payments",
}

func sampleRental() domain.Rental {
	start := time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC)
	r := domain.Rental{
		ID:         1,
		CustomerID: 2,
		ItemID:     3,
		StartDate:  start,
		EndDate:    start.AddDate(0, 0, 6),
		Status:     domain.RentalActive,
		DailyRate:  decimal.NewFromInt(15),
		Deposit:    decimal.NewFromInt(50),
		Discount:   decimal.NewFromInt(10),
		Customer:   &domain.Customer{ID: 2, FirstName: "Ada", LastName: "Lovelace"},
		Item:       &domain.Item{ID: 3, Name: "Canon R6", DailyRate: decimal.NewFromInt(15), Quantity: 4},
		Payments:   []domain.Payment{{ID: 9, RentalID: 1, Amount: decimal.NewFromInt(30)}},
	}
	r.ApplyCharges()
	return r
}

// keysOf collects every object key at any depth of a JSON document.
func keysOf(t *testing.T, v any) map[string]bool {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	var doc any
	require.NoError(t, json.Unmarshal(raw, &doc))

	keys := map[string]bool{}
	var walk func(any)
	walk = func(n any) {
		switch x := n.(type) {
		case map[string]any:
			for k, child := range x {
				keys[k] = true
				walk(child)
			}
		case []any:
			for _, child := range x {
				walk(child)
			}
		}
	}
	walk(doc)
	return keys
}

func TestRentalRedaction(t *testing.T) {
	r := sampleRental()

	staff := keysOf(t, For(domain.RoleStaff).Rental(r))
	for _, k := range rentalMoneyKeys {
		assert.False(t, staff[k], "staff view leaked %s", k)
	}
	assert.True(t, staff["status"])
	assert.True(t, staff["customer"])

	admin := keysOf(t, For(domain.RoleAdmin).Rental(r))
	for _, k := range rentalMoneyKeys {
		assert.True(t, admin[k], "admin view missing %s", k)
	}
}

func TestAdminRentalValues(t *testing.T) {
	raw, err := json.Marshal(For(domain.RoleAdmin).Rental(sampleRental()))
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, float64(6), body["numberOfDays"])
	assert.Equal(t, float64(90), body["subtotal"])
	assert.Equal(t, float64(130), body["totalAmount"])
	assert.Equal(t, float64(130), body["amountDue"])
	assert.Equal(t, "UNPAID", body["paymentStatus"])
}

func TestMaintenanceRedaction(t *testing.T) {
	m := domain.Maintenance{
		ID:     1,
		ItemID: 3,
		Item:   &domain.Item{ID: 3, Name: "Canon R6", DailyRate: decimal.NewFromInt(15)},
		Status: domain.MaintenanceInProgress,
		Cost:   decimal.NewFromInt(80),
	}

	staff := keysOf(t, For(domain.RoleStaff).Maintenance(m))
	assert.False(t, staff["cost"])
	assert.False(t, staff["dailyRate"])

	admin := keysOf(t, For(domain.RoleAdmin).Maintenance(m))
	assert.True(t, admin["cost"])
}

func TestCustomerDetailRedactsNestedRentals(t *testing.T) {
	c := domain.Customer{ID: 2, FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"}
	rentals := []domain.Rental{sampleRental(), sampleRental()}

	staff := keysOf(t, For(domain.RoleStaff).Customer(c, rentals))
	assert.True(t, staff["rentals"])
	assert.True(t, staff["email"])
	for _, k := range rentalMoneyKeys {
		assert.False(t, staff[k], "nested rental leaked %s", k)
	}

	admin := For(domain.RoleAdmin).Customer(c, nil)
	assert.NotNil(t, admin.Rentals)
}

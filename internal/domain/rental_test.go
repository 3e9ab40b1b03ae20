package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestRentalDays(t *testing.T) {
	start := mustDate(t, "2026-02-14")

	assert.Equal(t, 6, RentalDays(start, mustDate(t, "2026-02-20")))
	assert.Equal(t, 1, RentalDays(start, start.Add(time.Hour)))
	assert.Equal(t, 2, RentalDays(start, start.Add(25*time.Hour)))
	assert.Equal(t, 1, RentalDays(start, start.Add(24*time.Hour)))
}

func TestApplyCharges(t *testing.T) {
	r := &Rental{
		StartDate: mustDate(t, "2026-02-14"),
		EndDate:   mustDate(t, "2026-02-20"),
		DailyRate: decimal.NewFromInt(25),
		Deposit:   decimal.NewFromInt(50),
		Discount:  decimal.NewFromInt(10),
	}
	r.ApplyCharges()

	assert.Equal(t, 6, r.NumberOfDays)
	assert.True(t, r.Subtotal.Equal(decimal.NewFromInt(150)), r.Subtotal.String())
	assert.True(t, r.TotalAmount.Equal(decimal.NewFromInt(190)), r.TotalAmount.String())
	assert.True(t, r.AmountDue.Equal(decimal.NewFromInt(190)))
	assert.Equal(t, PaymentUnpaid, r.PaymentStatus)

	r.AmountPaid = decimal.NewFromInt(60)
	r.Settle()
	assert.True(t, r.AmountDue.Equal(decimal.NewFromInt(130)))
	assert.Equal(t, PaymentPartial, r.PaymentStatus)

	r.AmountPaid = decimal.NewFromInt(190)
	r.Settle()
	assert.True(t, r.AmountDue.IsZero())
	assert.Equal(t, PaymentPaid, r.PaymentStatus)
}

func TestApplyCharges_RoundsToCents(t *testing.T) {
	r := &Rental{
		StartDate: mustDate(t, "2026-03-01"),
		EndDate:   mustDate(t, "2026-03-04"),
		DailyRate: decimal.RequireFromString("10.335"),
	}
	r.ApplyCharges()

	assert.Equal(t, "31.01", r.Subtotal.StringFixed(2))
	assert.Equal(t, "31.01", r.TotalAmount.StringFixed(2))
}

func TestClassifyPayment(t *testing.T) {
	total := decimal.NewFromInt(100)

	cases := []struct {
		paid string
		want PaymentStatus
	}{
		{"0", PaymentUnpaid},
		{"0.01", PaymentPartial},
		{"99.99", PaymentPartial},
		{"100", PaymentPaid},
		{"120", PaymentPaid},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ClassifyPayment(decimal.RequireFromString(tc.paid), total), tc.paid)
	}
}

func TestRentalStatusPredicates(t *testing.T) {
	assert.True(t, RentalCompleted.Terminal())
	assert.True(t, RentalCancelled.Terminal())
	assert.False(t, RentalOverdue.Terminal())

	for _, s := range OpenRentalStatuses {
		assert.True(t, s.Open(), s)
	}
	assert.False(t, RentalCompleted.Open())
	assert.False(t, RentalStatus("LOST").Valid())
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-02-14")
	require.NoError(t, err)
	assert.Equal(t, time.UTC, d.Location())

	ts, err := ParseDate("2026-02-14T10:00:00+02:00")
	require.NoError(t, err)
	assert.Equal(t, 8, ts.Hour())
	assert.True(t, IsDateOnly(" 2026-02-14 "))

	_, err = ParseDate("14/02/2026")
	assert.Error(t, err)
}

func TestDate_UnmarshalJSON(t *testing.T) {
	var body struct {
		From Date `json:"from"`
		To   Date `json:"to"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"from":"2026-02-14","to":"2026-02-20T12:00:00Z"}`), &body))

	assert.True(t, body.From.DateOnly)
	assert.Equal(t, mustDate(t, "2026-02-15"), body.From.EndOfRange())
	assert.False(t, body.To.DateOnly)
	assert.Equal(t, body.To.Time, body.To.EndOfRange())

	assert.Error(t, json.Unmarshal([]byte(`{"from":"14.02.2026"}`), &body))
}

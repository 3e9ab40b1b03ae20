// Package view renders rentals and maintenance records for API responses.
// The presenter is chosen once per request from the caller's role; staff
// presenters build types that have no monetary fields at all.
package view

import (
	"time"

	"github.com/shopspring/decimal"

	"rentalhub/internal/access"
	"rentalhub/internal/domain"
)

type ItemSummary struct {
	ID         int64             `json:"id"`
	CategoryID int64             `json:"categoryId"`
	Name       string            `json:"name"`
	SKU        *string           `json:"sku,omitempty"`
	Status     domain.ItemStatus `json:"status"`
}

func itemSummary(it *domain.Item) *ItemSummary {
	if it == nil {
		return nil
	}
	return &ItemSummary{ID: it.ID, CategoryID: it.CategoryID, Name: it.Name, SKU: it.SKU, Status: it.Status}
}

// Rental is the staff view of a rental.
type Rental struct {
	ID          int64               `json:"id"`
	CustomerID  int64               `json:"customerId"`
	ItemID      int64               `json:"itemId"`
	CreatedByID int64               `json:"createdById"`
	StartDate   time.Time           `json:"startDate"`
	EndDate     time.Time           `json:"endDate"`
	ReturnDate  *time.Time          `json:"returnDate"`
	Status      domain.RentalStatus `json:"status"`
	Notes       string              `json:"notes,omitempty"`
	Customer    *domain.Customer    `json:"customer,omitempty"`
	Item        *ItemSummary        `json:"item,omitempty"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

// RentalWithFinancials is the admin view of a rental.
type RentalWithFinancials struct {
	Rental
	DailyRate     decimal.Decimal      `json:"dailyRate"`
	NumberOfDays  int                  `json:"numberOfDays"`
	Subtotal      decimal.Decimal      `json:"subtotal"`
	Deposit       decimal.Decimal      `json:"deposit"`
	Discount      decimal.Decimal      `json:"discount"`
	TotalAmount   decimal.Decimal      `json:"totalAmount"`
	AmountPaid    decimal.Decimal      `json:"amountPaid"`
	AmountDue     decimal.Decimal      `json:"amountDue"`
	PaymentStatus domain.PaymentStatus `json:"paymentStatus"`
	Payments      []domain.Payment     `json:"payments,omitempty"`
}

func staffRental(r domain.Rental) Rental {
	return Rental{
		ID:          r.ID,
		CustomerID:  r.CustomerID,
		ItemID:      r.ItemID,
		CreatedByID: r.CreatedByID,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		ReturnDate:  r.ReturnDate,
		Status:      r.Status,
		Notes:       r.Notes,
		Customer:    r.Customer,
		Item:        itemSummary(r.Item),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func adminRental(r domain.Rental) RentalWithFinancials {
	return RentalWithFinancials{
		Rental:        staffRental(r),
		DailyRate:     r.DailyRate,
		NumberOfDays:  r.NumberOfDays,
		Subtotal:      r.Subtotal,
		Deposit:       r.Deposit,
		Discount:      r.Discount,
		TotalAmount:   r.TotalAmount,
		AmountPaid:    r.AmountPaid,
		AmountDue:     r.AmountDue,
		PaymentStatus: r.PaymentStatus,
		Payments:      r.Payments,
	}
}

// Maintenance is the staff view of a maintenance record.
type Maintenance struct {
	ID           int64                    `json:"id"`
	ItemID       int64                    `json:"itemId"`
	Item         *ItemSummary             `json:"item,omitempty"`
	Description  string                   `json:"description"`
	Status       domain.MaintenanceStatus `json:"status"`
	PerformedBy  string                   `json:"performedBy,omitempty"`
	Notes        string                   `json:"notes,omitempty"`
	StartDate    time.Time                `json:"startDate"`
	EndDate      *time.Time               `json:"endDate"`
	ReportedByID int64                    `json:"reportedById"`
	CreatedAt    time.Time                `json:"createdAt"`
	UpdatedAt    time.Time                `json:"updatedAt"`
}

type MaintenanceWithCost struct {
	Maintenance
	Cost decimal.Decimal `json:"cost"`
}

func staffMaintenance(m domain.Maintenance) Maintenance {
	return Maintenance{
		ID:           m.ID,
		ItemID:       m.ItemID,
		Item:         itemSummary(m.Item),
		Description:  m.Description,
		Status:       m.Status,
		PerformedBy:  m.PerformedBy,
		Notes:        m.Notes,
		StartDate:    m.StartDate,
		EndDate:      m.EndDate,
		ReportedByID: m.ReportedByID,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// CustomerDetail is a customer with its rental history.
type CustomerDetail struct {
	domain.Customer
	Rentals []any `json:"rentals"`
}

type Presenter struct {
	financials bool
}

func For(role domain.UserRole) Presenter {
	return Presenter{financials: access.CanViewFinancials(role)}
}

func (p Presenter) Rental(r domain.Rental) any {
	if p.financials {
		return adminRental(r)
	}
	return staffRental(r)
}

func (p Presenter) Rentals(rs []domain.Rental) []any {
	out := make([]any, 0, len(rs))
	for _, r := range rs {
		out = append(out, p.Rental(r))
	}
	return out
}

func (p Presenter) Maintenance(m domain.Maintenance) any {
	if p.financials {
		return MaintenanceWithCost{Maintenance: staffMaintenance(m), Cost: m.Cost}
	}
	return staffMaintenance(m)
}

func (p Presenter) MaintenanceList(ms []domain.Maintenance) []any {
	out := make([]any, 0, len(ms))
	for _, m := range ms {
		out = append(out, p.Maintenance(m))
	}
	return out
}

func (p Presenter) Customer(c domain.Customer, rentals []domain.Rental) CustomerDetail {
	return CustomerDetail{Customer: c, Rentals: p.Rentals(rentals)}
}

package domain

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

type RentalStatus string

const (
	RentalPending   RentalStatus = "PENDING"
	RentalActive    RentalStatus = "ACTIVE"
	RentalCompleted RentalStatus = "COMPLETED"
	RentalOverdue   RentalStatus = "OVERDUE"
	RentalCancelled RentalStatus = "CANCELLED"
)

func (s RentalStatus) Valid() bool {
	switch s {
	case RentalPending, RentalActive, RentalCompleted, RentalOverdue, RentalCancelled:
		return true
	}
	return false
}

// Terminal statuses never change again.
func (s RentalStatus) Terminal() bool {
	return s == RentalCompleted || s == RentalCancelled
}

// Open rentals hold one unit of their item.
func (s RentalStatus) Open() bool {
	return s == RentalPending || s == RentalActive || s == RentalOverdue
}

// OpenRentalStatuses lists the statuses that block customer and item deletion.
var OpenRentalStatuses = []RentalStatus{RentalPending, RentalActive, RentalOverdue}

type PaymentStatus string

const (
	PaymentUnpaid  PaymentStatus = "UNPAID"
	PaymentPartial PaymentStatus = "PARTIAL"
	PaymentPaid    PaymentStatus = "PAID"
)

func (s PaymentStatus) Valid() bool {
	return s == PaymentUnpaid || s == PaymentPartial || s == PaymentPaid
}

// Rental has no json tags. Responses render it through internal/view.
type Rental struct {
	ID          int64     `gorm:"primaryKey"`
	CustomerID  int64     `gorm:"not null;index"`
	Customer    *Customer `gorm:"foreignKey:CustomerID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	ItemID      int64     `gorm:"not null;index"`
	Item        *Item     `gorm:"foreignKey:ItemID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	CreatedByID int64     `gorm:"column:created_by_id;not null;index"`
	CreatedBy   *User     `gorm:"foreignKey:CreatedByID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	StartDate   time.Time `gorm:"not null"`
	EndDate     time.Time `gorm:"not null;index"`
	ReturnDate  *time.Time
	Status      RentalStatus `gorm:"size:20;not null;index"`
	Notes       string       `gorm:"type:text"`

	DailyRate     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	NumberOfDays  int             `gorm:"not null"`
	Subtotal      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Deposit       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Discount      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	AmountPaid    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	AmountDue     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	PaymentStatus PaymentStatus   `gorm:"size:20;not null;index"`

	Payments []Payment `gorm:"foreignKey:RentalID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// RentalDays counts started 24-hour periods between start and end.
func RentalDays(start, end time.Time) int {
	return int(math.Ceil(end.Sub(start).Hours() / 24))
}

// ApplyCharges recomputes the charge breakdown from the locked daily rate,
// the period, deposit and discount, then re-settles the balance.
func (r *Rental) ApplyCharges() {
	r.NumberOfDays = RentalDays(r.StartDate, r.EndDate)
	r.Subtotal = RoundMoney(r.DailyRate.Mul(decimal.NewFromInt(int64(r.NumberOfDays))))
	r.TotalAmount = RoundMoney(r.Subtotal.Add(r.Deposit).Sub(r.Discount))
	r.Settle()
}

// Settle derives amountDue and paymentStatus from amountPaid.
func (r *Rental) Settle() {
	r.AmountPaid = RoundMoney(r.AmountPaid)
	r.AmountDue = RoundMoney(r.TotalAmount.Sub(r.AmountPaid))
	r.PaymentStatus = ClassifyPayment(r.AmountPaid, r.TotalAmount)
}

// ClassifyPayment is a pure function of the amounts; it never looks at a
// previously stored status.
func ClassifyPayment(paid, total decimal.Decimal) PaymentStatus {
	if !paid.IsPositive() {
		return PaymentUnpaid
	}
	if paid.GreaterThanOrEqual(total) {
		return PaymentPaid
	}
	return PaymentPartial
}

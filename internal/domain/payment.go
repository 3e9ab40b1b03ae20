package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	MethodCash         PaymentMethod = "CASH"
	MethodCard         PaymentMethod = "CARD"
	MethodBankTransfer PaymentMethod = "BANK_TRANSFER"
	MethodMobile       PaymentMethod = "MOBILE"
	MethodOther        PaymentMethod = "OTHER"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodCash, MethodCard, MethodBankTransfer, MethodMobile, MethodOther:
		return true
	}
	return false
}

// Payment is an immutable ledger entry against one rental.
type Payment struct {
	ID            int64           `json:"id" gorm:"primaryKey"`
	RentalID      int64           `json:"rentalId" gorm:"not null;index"`
	Amount        decimal.Decimal `json:"amount" gorm:"type:decimal(12,2);not null"`
	Method        PaymentMethod   `json:"method" gorm:"size:20;not null"`
	Reference     string          `json:"reference,omitempty" gorm:"size:120"`
	ReceiptNumber string          `json:"receiptNumber" gorm:"size:40;not null;uniqueIndex"`
	Notes         string          `json:"notes,omitempty" gorm:"type:text"`
	PaymentDate   time.Time       `json:"paymentDate" gorm:"not null;index"`
	RecordedByID  int64           `json:"recordedById" gorm:"column:recorded_by_id;not null;index"`
	RecordedBy    *User           `json:"-" gorm:"foreignKey:RecordedByID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	CreatedAt     time.Time       `json:"createdAt"`
}

type ExpenseCategory string

const (
	ExpenseMaintenance ExpenseCategory = "MAINTENANCE"
	ExpenseUtilities   ExpenseCategory = "UTILITIES"
	ExpenseRent        ExpenseCategory = "RENT"
	ExpenseSalaries    ExpenseCategory = "SALARIES"
	ExpenseSupplies    ExpenseCategory = "SUPPLIES"
	ExpenseMarketing   ExpenseCategory = "MARKETING"
	ExpenseOther       ExpenseCategory = "OTHER"
)

func (c ExpenseCategory) Valid() bool {
	switch c {
	case ExpenseMaintenance, ExpenseUtilities, ExpenseRent, ExpenseSalaries,
		ExpenseSupplies, ExpenseMarketing, ExpenseOther:
		return true
	}
	return false
}

type Expense struct {
	ID           int64           `json:"id" gorm:"primaryKey"`
	Description  string          `json:"description" gorm:"size:255;not null"`
	Amount       decimal.Decimal `json:"amount" gorm:"type:decimal(12,2);not null"`
	Category     ExpenseCategory `json:"category" gorm:"size:30;not null;index"`
	ExpenseDate  time.Time       `json:"expenseDate" gorm:"not null;index"`
	Notes        string          `json:"notes,omitempty" gorm:"type:text"`
	RecordedByID int64           `json:"recordedById" gorm:"column:recorded_by_id;not null;index"`
	RecordedBy   *User           `json:"-" gorm:"foreignKey:RecordedByID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

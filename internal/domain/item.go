package domain

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ItemStatus string

const (
	ItemAvailable   ItemStatus = "AVAILABLE"
	ItemRented      ItemStatus = "RENTED"
	ItemMaintenance ItemStatus = "MAINTENANCE"
	ItemRetired     ItemStatus = "RETIRED"
)

func (s ItemStatus) Valid() bool {
	switch s {
	case ItemAvailable, ItemRented, ItemMaintenance, ItemRetired:
		return true
	}
	return false
}

// Item is a rentable inventory unit. Quantity counts units on hand; an
// item can be reserved only while AVAILABLE with at least one unit.
type Item struct {
	ID          int64           `json:"id" gorm:"primaryKey"`
	CategoryID  int64           `json:"categoryId" gorm:"not null;index"`
	Category    *Category       `json:"category,omitempty" gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Name        string          `json:"name" gorm:"size:200;not null"`
	Description string          `json:"description,omitempty" gorm:"type:text"`
	SKU         *string         `json:"sku,omitempty" gorm:"column:sku;size:64;uniqueIndex:idx_items_sku,where:deleted_at IS NULL"`
	Status      ItemStatus      `json:"status" gorm:"size:20;not null;index"`
	DailyRate   decimal.Decimal `json:"dailyRate" gorm:"type:decimal(12,2);not null"`
	Quantity    int             `json:"quantity" gorm:"not null"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt  `json:"-" gorm:"index"`
}

func (i *Item) Rentable() bool {
	return i.Status == ItemAvailable && i.Quantity >= 1
}

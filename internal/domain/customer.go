package domain

import (
	"time"

	"gorm.io/gorm"
)

type Customer struct {
	ID        int64          `json:"id" gorm:"primaryKey"`
	FirstName string         `json:"firstName" gorm:"size:100;not null"`
	LastName  string         `json:"lastName" gorm:"size:100;not null"`
	Email     string         `json:"email" gorm:"size:255;not null;uniqueIndex:idx_customers_email,where:deleted_at IS NULL"`
	Phone     string         `json:"phone" gorm:"size:40;not null"`
	Address   string         `json:"address,omitempty" gorm:"type:text"`
	IDNumber  *string        `json:"idNumber,omitempty" gorm:"column:id_number;size:64;uniqueIndex:idx_customers_id_number,where:deleted_at IS NULL"`
	Notes     string         `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

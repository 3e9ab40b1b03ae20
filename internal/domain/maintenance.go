package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type MaintenanceStatus string

const (
	MaintenancePending    MaintenanceStatus = "PENDING"
	MaintenanceInProgress MaintenanceStatus = "IN_PROGRESS"
	MaintenanceCompleted  MaintenanceStatus = "COMPLETED"
)

func (s MaintenanceStatus) Valid() bool {
	return s == MaintenancePending || s == MaintenanceInProgress || s == MaintenanceCompleted
}

// Maintenance has no json tags; cost is rendered only through internal/view.
type Maintenance struct {
	ID           int64             `gorm:"primaryKey"`
	ItemID       int64             `gorm:"not null;index"`
	Item         *Item             `gorm:"foreignKey:ItemID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Description  string            `gorm:"type:text;not null"`
	Status       MaintenanceStatus `gorm:"size:20;not null;index"`
	Cost         decimal.Decimal   `gorm:"type:decimal(12,2);not null"`
	PerformedBy  string            `gorm:"size:120"`
	Notes        string            `gorm:"type:text"`
	StartDate    time.Time         `gorm:"not null"`
	EndDate      *time.Time
	ReportedByID int64 `gorm:"column:reported_by_id;not null;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Maintenance) TableName() string { return "maintenance_records" }

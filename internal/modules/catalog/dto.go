package catalog

import (
	"github.com/shopspring/decimal"

	"rentalhub/internal/domain"
)

type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,max=120"`
	Description string `json:"description"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=120"`
	Description *string `json:"description"`
}

type CreateItemRequest struct {
	CategoryID  int64              `json:"categoryId" binding:"required,gt=0"`
	Name        string             `json:"name" binding:"required,max=200"`
	Description string             `json:"description"`
	SKU         *string            `json:"sku" binding:"omitempty,max=64"`
	Status      *domain.ItemStatus `json:"status" binding:"omitempty,oneof=AVAILABLE RENTED MAINTENANCE RETIRED"`
	DailyRate   decimal.Decimal    `json:"dailyRate" binding:"gte=0"`
	Quantity    *int               `json:"quantity" binding:"omitempty,gte=0"`
}

type UpdateItemRequest struct {
	CategoryID  *int64             `json:"categoryId" binding:"omitempty,gt=0"`
	Name        *string            `json:"name" binding:"omitempty,min=1,max=200"`
	Description *string            `json:"description"`
	SKU         *string            `json:"sku" binding:"omitempty,max=64"`
	Status      *domain.ItemStatus `json:"status" binding:"omitempty,oneof=AVAILABLE RENTED MAINTENANCE RETIRED"`
	DailyRate   *decimal.Decimal   `json:"dailyRate" binding:"omitempty,gte=0"`
	Quantity    *int               `json:"quantity" binding:"omitempty,gte=0"`
}

type ItemQuery struct {
	Status     domain.ItemStatus
	CategoryID int64
	Search     string
}

package catalog

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"rentalhub/internal/domain"
	"rentalhub/internal/pkg/apperr"
	"rentalhub/internal/pkg/pagination"
	"rentalhub/internal/repository"
)

type Service struct {
	store *repository.Store
}

func NewService(store *repository.Store) *Service {
	return &Service{store: store}
}

/* ---------- CATEGORIES ---------- */

func (s *Service) ListCategories(ctx context.Context, p pagination.Params) (pagination.Page[domain.Category], error) {
	cats, total, err := s.store.Categories().List(ctx, p)
	if err != nil {
		return pagination.Page[domain.Category]{}, apperr.Internal(err)
	}
	return pagination.New(cats, total, p), nil
}

func (s *Service) GetCategory(ctx context.Context, id int64) (*domain.Category, error) {
	cat, err := s.store.Categories().GetByID(ctx, id)
	if err != nil {
		return nil, mapCategoryErr(err)
	}
	return cat, nil
}

func (s *Service) CreateCategory(ctx context.Context, req CreateCategoryRequest) (*domain.Category, error) {
	cat := &domain.Category{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
	}
	if err := s.store.Categories().Create(ctx, cat); err != nil {
		return nil, mapCategoryErr(err)
	}
	return cat, nil
}

func (s *Service) UpdateCategory(ctx context.Context, id int64, req UpdateCategoryRequest) (*domain.Category, error) {
	cat, err := s.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		cat.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		cat.Description = *req.Description
	}
	if err := s.store.Categories().Update(ctx, cat); err != nil {
		return nil, mapCategoryErr(err)
	}
	return cat, nil
}

// DeleteCategory refuses while any item still references the category.
func (s *Service) DeleteCategory(ctx context.Context, id int64) error {
	err := s.store.Atomic(ctx, func(tx *repository.Store) error {
		if _, err := tx.Categories().GetByID(ctx, id); err != nil {
			return mapCategoryErr(err)
		}
		n, err := tx.Items().CountByCategory(ctx, id)
		if err != nil {
			return apperr.Internal(err)
		}
		if n > 0 {
			return ErrCategoryHasItems
		}
		if err := tx.Categories().Delete(ctx, id); err != nil {
			return mapCategoryErr(err)
		}
		return nil
	})
	return err
}

func mapCategoryErr(err error) error {
	switch {
	case repository.IsNotFound(err):
		return ErrCategoryNotFound
	case repository.IsUniqueViolation(err):
		return ErrCategoryExists
	case repository.IsForeignKeyViolation(err):
		return ErrCategoryHasItems
	}
	return apperr.Internal(err)
}

/* ---------- ITEMS ---------- */

func (s *Service) ListItems(ctx context.Context, q ItemQuery, p pagination.Params) (pagination.Page[domain.Item], error) {
	if q.Status != "" && !q.Status.Valid() {
		return pagination.Page[domain.Item]{}, ErrInvalidItemStatus
	}
	filter := repository.ItemFilter{Status: q.Status, CategoryID: q.CategoryID, Search: strings.TrimSpace(q.Search)}
	items, total, err := s.store.Items().List(ctx, filter, p)
	if err != nil {
		return pagination.Page[domain.Item]{}, apperr.Internal(err)
	}
	return pagination.New(items, total, p), nil
}

func (s *Service) GetItem(ctx context.Context, id int64) (*domain.Item, error) {
	item, err := s.store.Items().GetByID(ctx, id)
	if err != nil {
		return nil, mapItemErr(err)
	}
	return item, nil
}

// CreateItem defaults to one AVAILABLE unit.
func (s *Service) CreateItem(ctx context.Context, req CreateItemRequest) (*domain.Item, error) {
	if _, err := s.GetCategory(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	item := &domain.Item{
		CategoryID:  req.CategoryID,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		SKU:         normalizeSKU(req.SKU),
		Status:      domain.ItemAvailable,
		DailyRate:   domain.RoundMoney(req.DailyRate),
		Quantity:    1,
	}
	if req.Status != nil {
		item.Status = *req.Status
	}
	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}

	if err := s.store.Items().Create(ctx, item); err != nil {
		return nil, mapItemErr(err)
	}
	return s.GetItem(ctx, item.ID)
}

func (s *Service) UpdateItem(ctx context.Context, id int64, req UpdateItemRequest) (*domain.Item, error) {
	item, err := s.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.CategoryID != nil && *req.CategoryID != item.CategoryID {
		if _, err := s.GetCategory(ctx, *req.CategoryID); err != nil {
			return nil, err
		}
		item.CategoryID = *req.CategoryID
	}
	if req.Name != nil {
		item.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.SKU != nil {
		item.SKU = normalizeSKU(req.SKU)
	}
	if req.Status != nil {
		item.Status = *req.Status
	}
	if req.DailyRate != nil {
		item.DailyRate = domain.RoundMoney(*req.DailyRate)
	}
	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}
	if item.Quantity < 0 || item.DailyRate.LessThan(decimal.Zero) {
		return nil, apperr.InvalidInput("quantity and dailyRate must not be negative")
	}

	if err := s.store.Items().Update(ctx, item); err != nil {
		return nil, mapItemErr(err)
	}
	return s.GetItem(ctx, id)
}

// DeleteItem refuses while a pending, active or overdue rental holds the item.
func (s *Service) DeleteItem(ctx context.Context, id int64) error {
	return s.store.Atomic(ctx, func(tx *repository.Store) error {
		if _, err := tx.Items().GetForUpdate(ctx, id); err != nil {
			return mapItemErr(err)
		}
		open, err := tx.Rentals().CountOpenByItem(ctx, id)
		if err != nil {
			return apperr.Internal(err)
		}
		if open > 0 {
			return ErrItemHasOpenRentals
		}
		if err := tx.Items().Delete(ctx, id); err != nil {
			return mapItemErr(err)
		}
		return nil
	})
}

func mapItemErr(err error) error {
	switch {
	case repository.IsNotFound(err):
		return ErrItemNotFound
	case repository.IsUniqueViolation(err):
		return ErrSKUExists
	case repository.IsForeignKeyViolation(err):
		return ErrCategoryNotFound
	}
	return apperr.Internal(err)
}

func normalizeSKU(sku *string) *string {
	if sku == nil {
		return nil
	}
	v := strings.TrimSpace(*sku)
	if v == "" {
		return nil
	}
	return &v
}

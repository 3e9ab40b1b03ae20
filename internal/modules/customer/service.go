package customer

import (
	"context"
	"strings"

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

func (s *Service) List(ctx context.Context, search string, p pagination.Params) (pagination.Page[domain.Customer], error) {
	customers, total, err := s.store.Customers().List(ctx, search, p)
	if err != nil {
		return pagination.Page[domain.Customer]{}, apperr.Internal(err)
	}
	return pagination.New(customers, total, p), nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Customer, error) {
	c, err := s.store.Customers().GetByID(ctx, id)
	if err != nil {
		return nil, mapErr(err)
	}
	return c, nil
}

// GetWithRentals returns the customer and its full rental history, newest
// first. Callers render the rentals for the caller's role.
func (s *Service) GetWithRentals(ctx context.Context, id int64) (*domain.Customer, []domain.Rental, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	rentals, err := s.store.Rentals().ListByCustomer(ctx, id)
	if err != nil {
		return nil, nil, apperr.Internal(err)
	}
	return c, rentals, nil
}

func (s *Service) Create(ctx context.Context, req CreateCustomerRequest) (*domain.Customer, error) {
	c := &domain.Customer{
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Email:     req.Email,
		Phone:     strings.TrimSpace(req.Phone),
		Address:   req.Address,
		IDNumber:  normalizeIDNumber(req.IDNumber),
		Notes:     req.Notes,
	}
	if err := s.store.Customers().Create(ctx, c); err != nil {
		return nil, mapErr(err)
	}
	return c, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateCustomerRequest) (*domain.Customer, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		c.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		c.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.Email != nil {
		c.Email = *req.Email
	}
	if req.Phone != nil {
		c.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Address != nil {
		c.Address = *req.Address
	}
	if req.IDNumber != nil {
		c.IDNumber = normalizeIDNumber(req.IDNumber)
	}
	if req.Notes != nil {
		c.Notes = *req.Notes
	}

	if err := s.store.Customers().Update(ctx, c); err != nil {
		return nil, mapErr(err)
	}
	return c, nil
}

// Delete refuses while the customer has an open rental.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.store.Atomic(ctx, func(tx *repository.Store) error {
		if _, err := tx.Customers().GetByID(ctx, id); err != nil {
			return mapErr(err)
		}
		open, err := tx.Rentals().CountOpenByCustomer(ctx, id)
		if err != nil {
			return apperr.Internal(err)
		}
		if open > 0 {
			return ErrCustomerHasOpenRentals
		}
		if err := tx.Customers().Delete(ctx, id); err != nil {
			return mapErr(err)
		}
		return nil
	})
}

func mapErr(err error) error {
	switch {
	case repository.IsNotFound(err):
		return ErrCustomerNotFound
	case repository.IsUniqueViolation(err):
		return ErrCustomerExists
	}
	return apperr.Internal(err)
}

func normalizeIDNumber(v *string) *string {
	if v == nil {
		return nil
	}
	s := strings.TrimSpace(*v)
	if s == "" {
		return nil
	}
	return &s
}

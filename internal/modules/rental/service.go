package rental

import (
	"context"
	"errors"
	"time"

	"rentalhub/internal/domain"
	"rentalhub/internal/pkg/apperr"
	"rentalhub/internal/pkg/pagination"
	"rentalhub/internal/repository"
)

// Service owns the rental lifecycle: charges, status transitions and the
// unit each open rental holds on its item.
type Service struct {
	store *repository.Store
	now   func() time.Time
}

func NewService(store *repository.Store) *Service {
	return &Service{store: store, now: time.Now}
}

func (s *Service) clock() time.Time {
	return s.now().UTC()
}

// Create prices the rental from the item's current rate and reserves one
// unit. Nothing is written unless every step succeeds.
func (s *Service) Create(ctx context.Context, actorID int64, req CreateRentalRequest) (*domain.Rental, error) {
	start, end := req.StartDate.Time, req.EndDate.Time
	if !end.After(start) {
		return nil, ErrInvalidPeriod
	}

	var id int64
	err := s.store.Atomic(ctx, func(tx *repository.Store) error {
		if _, err := tx.Customers().GetByID(ctx, req.CustomerID); err != nil {
			return notFoundOr(err, ErrCustomerNotFound)
		}
		item, err := tx.Items().GetForUpdate(ctx, req.ItemID)
		if err != nil {
			return notFoundOr(err, ErrItemNotFound)
		}
		if !item.Rentable() {
			return ErrItemUnavailable
		}

		r := &domain.Rental{
			CustomerID:  req.CustomerID,
			ItemID:      req.ItemID,
			CreatedByID: actorID,
			StartDate:   start,
			EndDate:     end,
			Status:      domain.RentalPending,
			Notes:       req.Notes,
			DailyRate:   item.DailyRate,
			Deposit:     domain.RoundMoney(req.Deposit),
			Discount:    domain.RoundMoney(req.Discount),
		}
		r.ApplyCharges()
		if r.TotalAmount.IsNegative() {
			return ErrNegativeTotal
		}

		if err := tx.Items().ReserveUnit(ctx, item.ID); err != nil {
			if errors.Is(err, repository.ErrConditionFailed) {
				return ErrItemUnavailable
			}
			return apperr.Internal(err)
		}
		if err := tx.Rentals().Create(ctx, r); err != nil {
			return apperr.Internal(err)
		}
		id = r.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// Update edits dates, notes and status. Date changes re-price the rental
// with its stored rate, deposit, discount and amount paid.
func (s *Service) Update(ctx context.Context, id int64, req UpdateRentalRequest) (*domain.Rental, error) {
	if req.empty() {
		return s.Get(ctx, id)
	}

	err := s.store.Atomic(ctx, func(tx *repository.Store) error {
		r, err := tx.Rentals().GetForUpdate(ctx, id)
		if err != nil {
			return notFoundOr(err, ErrRentalNotFound)
		}
		if r.Status.Terminal() {
			return ErrRentalClosed
		}

		if req.StartDate != nil || req.EndDate != nil {
			start, end := r.StartDate, r.EndDate
			if req.StartDate != nil {
				start = req.StartDate.Time
			}
			if req.EndDate != nil {
				end = req.EndDate.Time
			}
			if !end.After(start) {
				return ErrInvalidPeriod
			}
			r.StartDate, r.EndDate = start, end
			r.ApplyCharges()
			if r.TotalAmount.IsNegative() {
				return ErrNegativeTotal
			}
		}
		if req.Notes != nil {
			r.Notes = *req.Notes
		}

		if req.Status != nil && *req.Status != r.Status {
			if err := s.transition(ctx, tx, r, *req.Status); err != nil {
				return err
			}
		}

		if err := tx.Rentals().Update(ctx, r); err != nil {
			return apperr.Internal(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// transition applies an explicit status change on a non-terminal rental.
// OVERDUE is reachable only through SweepOverdue.
func (s *Service) transition(ctx context.Context, tx *repository.Store, r *domain.Rental, to domain.RentalStatus) error {
	from := r.Status
	switch {
	case !to.Valid():
		return ErrInvalidStatus
	case from == domain.RentalPending && to == domain.RentalActive:
		r.Status = to
		return nil
	case to == domain.RentalCancelled && (from == domain.RentalPending || from == domain.RentalActive):
		r.Status = to
		return s.release(ctx, tx, r)
	case to == domain.RentalCompleted:
		s.complete(r)
		return s.release(ctx, tx, r)
	}
	return errTransition(string(from), string(to))
}

// Return closes the rental now and puts its unit back.
func (s *Service) Return(ctx context.Context, id int64) (*domain.Rental, error) {
	err := s.store.Atomic(ctx, func(tx *repository.Store) error {
		r, err := tx.Rentals().GetForUpdate(ctx, id)
		if err != nil {
			return notFoundOr(err, ErrRentalNotFound)
		}
		switch r.Status {
		case domain.RentalCompleted:
			return ErrAlreadyReturned
		case domain.RentalCancelled:
			return ErrRentalClosed
		}

		s.complete(r)
		if err := s.release(ctx, tx, r); err != nil {
			return err
		}
		if err := tx.Rentals().Update(ctx, r); err != nil {
			return apperr.Internal(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *Service) complete(r *domain.Rental) {
	now := s.clock()
	r.ReturnDate = &now
	r.Status = domain.RentalCompleted
}

func (s *Service) release(ctx context.Context, tx *repository.Store, r *domain.Rental) error {
	if err := tx.Items().ReleaseUnit(ctx, r.ItemID); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

// SweepOverdue marks every ACTIVE rental past its end date as OVERDUE and
// returns the ids it changed. A second run with no time passing changes
// nothing.
func (s *Service) SweepOverdue(ctx context.Context) ([]int64, error) {
	var ids []int64
	err := s.store.Atomic(ctx, func(tx *repository.Store) error {
		var err error
		ids, err = tx.Rentals().MarkOverdue(ctx, s.clock())
		return err
	})
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return ids, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Rental, error) {
	r, err := s.store.Rentals().GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, ErrRentalNotFound)
	}
	return r, nil
}

func (s *Service) List(ctx context.Context, q RentalQuery, p pagination.Params) (pagination.Page[domain.Rental], error) {
	if q.Status != "" && !q.Status.Valid() {
		return pagination.Page[domain.Rental]{}, ErrInvalidStatus
	}
	filter := repository.RentalFilter{Status: q.Status, CustomerID: q.CustomerID, ItemID: q.ItemID}
	rentals, total, err := s.store.Rentals().List(ctx, filter, p)
	if err != nil {
		return pagination.Page[domain.Rental]{}, apperr.Internal(err)
	}
	return pagination.New(rentals, total, p), nil
}

func (s *Service) ListActive(ctx context.Context, p pagination.Params) (pagination.Page[domain.Rental], error) {
	return s.List(ctx, RentalQuery{Status: domain.RentalActive}, p)
}

// ListOverdue sweeps first so the listing reflects the current time.
func (s *Service) ListOverdue(ctx context.Context, p pagination.Params) (pagination.Page[domain.Rental], error) {
	if _, err := s.SweepOverdue(ctx); err != nil {
		return pagination.Page[domain.Rental]{}, err
	}
	return s.List(ctx, RentalQuery{Status: domain.RentalOverdue}, p)
}

func notFoundOr(err error, notFound error) error {
	if repository.IsNotFound(err) {
		return notFound
	}
	var ae *apperr.Error
	if errors.As(err, &ae) {
		return err
	}
	return apperr.Internal(err)
}

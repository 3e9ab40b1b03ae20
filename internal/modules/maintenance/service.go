package maintenance

import (
	"context"
	"strings"
	"time"

	"rentalhub/internal/access"
	"rentalhub/internal/domain"
	"rentalhub/internal/pkg/apperr"
	"rentalhub/internal/pkg/pagination"
	"rentalhub/internal/repository"
)

// Service moves items in and out of maintenance. Starting a record sets the
// item to MAINTENANCE and completing it sets AVAILABLE; quantity is never
// touched here.
type Service struct {
	store *repository.Store
	now   func() time.Time
}

func NewService(store *repository.Store) *Service {
	return &Service{store: store, now: time.Now}
}

// Create records the work and takes the item out of service. Cost is kept
// only when the caller may see financials; otherwise it is stored as zero.
func (s *Service) Create(ctx context.Context, actorID int64, role domain.UserRole, req CreateMaintenanceRequest) (*domain.Maintenance, error) {
	status := domain.MaintenancePending
	if req.Status != nil {
		status = *req.Status
	}
	if status == domain.MaintenanceCompleted {
		return nil, ErrCreateCompleted
	}

	m := &domain.Maintenance{
		ItemID:       req.ItemID,
		Description:  strings.TrimSpace(req.Description),
		Status:       status,
		PerformedBy:  strings.TrimSpace(req.PerformedBy),
		Notes:        req.Notes,
		StartDate:    s.now().UTC(),
		ReportedByID: actorID,
	}
	if req.StartDate != nil {
		m.StartDate = req.StartDate.Time
	}
	if access.CanViewFinancials(role) {
		m.Cost = domain.RoundMoney(req.Cost)
	}

	err := s.store.Atomic(ctx, func(tx *repository.Store) error {
		if _, err := tx.Items().GetForUpdate(ctx, req.ItemID); err != nil {
			return mapErr(err, ErrItemNotFound)
		}
		if err := tx.Maintenance().Create(ctx, m); err != nil {
			return apperr.Internal(err)
		}
		if err := tx.Items().SetStatus(ctx, req.ItemID, domain.ItemMaintenance); err != nil {
			return apperr.Internal(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, m.ID)
}

// Update edits the record. Setting COMPLETED behaves like Complete. Cost
// changes from callers without financial access are ignored.
func (s *Service) Update(ctx context.Context, id int64, role domain.UserRole, req UpdateMaintenanceRequest) (*domain.Maintenance, error) {
	err := s.store.Atomic(ctx, func(tx *repository.Store) error {
		m, err := tx.Maintenance().GetForUpdate(ctx, id)
		if err != nil {
			return mapErr(err, ErrMaintenanceNotFound)
		}

		if req.Description != nil {
			m.Description = strings.TrimSpace(*req.Description)
		}
		if req.PerformedBy != nil {
			m.PerformedBy = strings.TrimSpace(*req.PerformedBy)
		}
		if req.Notes != nil {
			m.Notes = *req.Notes
		}
		if req.Cost != nil && access.CanViewFinancials(role) {
			m.Cost = domain.RoundMoney(*req.Cost)
		}

		if req.Status != nil && *req.Status != m.Status {
			switch {
			case !req.Status.Valid():
				return ErrInvalidStatus
			case m.Status == domain.MaintenanceCompleted:
				return ErrAlreadyCompleted
			case *req.Status == domain.MaintenanceCompleted:
				if err := s.finish(ctx, tx, m); err != nil {
					return err
				}
			default:
				m.Status = *req.Status
			}
		}

		if err := tx.Maintenance().Update(ctx, m); err != nil {
			return apperr.Internal(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// Complete closes the record and returns the item to AVAILABLE.
func (s *Service) Complete(ctx context.Context, id int64, role domain.UserRole, req CompleteMaintenanceRequest) (*domain.Maintenance, error) {
	err := s.store.Atomic(ctx, func(tx *repository.Store) error {
		m, err := tx.Maintenance().GetForUpdate(ctx, id)
		if err != nil {
			return mapErr(err, ErrMaintenanceNotFound)
		}
		if m.Status == domain.MaintenanceCompleted {
			return ErrAlreadyCompleted
		}

		if req.Cost != nil && access.CanViewFinancials(role) {
			m.Cost = domain.RoundMoney(*req.Cost)
		}
		if req.Notes != nil {
			m.Notes = *req.Notes
		}
		if err := s.finish(ctx, tx, m); err != nil {
			return err
		}
		if err := tx.Maintenance().Update(ctx, m); err != nil {
			return apperr.Internal(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *Service) finish(ctx context.Context, tx *repository.Store, m *domain.Maintenance) error {
	end := s.now().UTC()
	m.EndDate = &end
	m.Status = domain.MaintenanceCompleted
	if err := tx.Items().SetStatus(ctx, m.ItemID, domain.ItemAvailable); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

// Delete removes the record. Deleting unfinished work puts the item back
// in service.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.store.Atomic(ctx, func(tx *repository.Store) error {
		m, err := tx.Maintenance().GetForUpdate(ctx, id)
		if err != nil {
			return mapErr(err, ErrMaintenanceNotFound)
		}
		if m.Status != domain.MaintenanceCompleted {
			if err := tx.Items().SetStatus(ctx, m.ItemID, domain.ItemAvailable); err != nil {
				return apperr.Internal(err)
			}
		}
		if err := tx.Maintenance().Delete(ctx, id); err != nil {
			return mapErr(err, ErrMaintenanceNotFound)
		}
		return nil
	})
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Maintenance, error) {
	m, err := s.store.Maintenance().GetByID(ctx, id)
	if err != nil {
		return nil, mapErr(err, ErrMaintenanceNotFound)
	}
	return m, nil
}

func (s *Service) List(ctx context.Context, q MaintenanceQuery, p pagination.Params) (pagination.Page[domain.Maintenance], error) {
	if q.Status != "" && !q.Status.Valid() {
		return pagination.Page[domain.Maintenance]{}, ErrInvalidStatus
	}
	records, total, err := s.store.Maintenance().List(ctx, repository.MaintenanceFilter{Status: q.Status, ItemID: q.ItemID}, p)
	if err != nil {
		return pagination.Page[domain.Maintenance]{}, apperr.Internal(err)
	}
	return pagination.New(records, total, p), nil
}

func mapErr(err error, notFound error) error {
	if repository.IsNotFound(err) {
		return notFound
	}
	return apperr.Internal(err)
}

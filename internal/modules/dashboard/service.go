package dashboard

import (
	"context"
	"time"

	"rentalhub/internal/domain"
	"rentalhub/internal/modules/finance"
	"rentalhub/internal/pkg/apperr"
	"rentalhub/internal/repository"
)

const (
	recentLimit   = 5
	dueSoonWindow = 3 * 24 * time.Hour
)

type Service struct {
	store   *repository.Store
	finance *finance.Service
	now     func() time.Time
}

func NewService(store *repository.Store, fin *finance.Service) *Service {
	return &Service{store: store, finance: fin, now: time.Now}
}

func (s *Service) Overview(ctx context.Context) (*Overview, error) {
	items, err := s.store.Items().CountByStatus(ctx)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	rentals, err := s.store.Rentals().CountByStatus(ctx)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	customers, err := s.store.Customers().Count(ctx)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	recent, err := s.store.Rentals().Recent(ctx, recentLimit)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	now := s.now().UTC()
	dueSoon, err := s.store.Rentals().EndingBetween(ctx, now, now.Add(dueSoonWindow))
	if err != nil {
		return nil, apperr.Internal(err)
	}

	return &Overview{
		Items:         zeroFill(items, domain.ItemAvailable, domain.ItemRented, domain.ItemMaintenance, domain.ItemRetired),
		Rentals:       zeroFill(rentals, domain.RentalPending, domain.RentalActive, domain.RentalCompleted, domain.RentalOverdue, domain.RentalCancelled),
		Customers:     customers,
		RecentRentals: recent,
		DueSoon:       dueSoon,
	}, nil
}

func (s *Service) Financials(ctx context.Context) (*Financials, error) {
	mtd, err := s.finance.MonthToDate(ctx)
	if err != nil {
		return nil, err
	}
	revenue, err := s.finance.TotalRevenue(ctx)
	if err != nil {
		return nil, err
	}
	outstanding, err := s.finance.Outstanding(ctx)
	if err != nil {
		return nil, err
	}
	payments, err := s.finance.RecentPayments(ctx, recentLimit)
	if err != nil {
		return nil, err
	}
	return &Financials{
		MonthToDate:         mtd,
		TotalRevenue:        revenue,
		OutstandingPayments: outstanding,
		RecentPayments:      payments,
	}, nil
}

// zeroFill reports every known status, including those with no rows.
func zeroFill[S ~string](counts map[string]int64, statuses ...S) map[string]int64 {
	out := make(map[string]int64, len(statuses))
	for _, st := range statuses {
		out[string(st)] = counts[string(st)]
	}
	return out
}

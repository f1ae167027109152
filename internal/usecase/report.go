package usecase

import (
	"context"
	"time"

	domainErrors "github.com/dmarkhas/gameshop/internal/domain/errors"
	"github.com/dmarkhas/gameshop/internal/domain/repository"
)

var reportPeriods = map[int]struct{}{
	30:  {},
	60:  {},
	90:  {},
	180: {},
	360: {},
}

// ReportUseCase serves the staff dashboards.
type ReportUseCase struct {
	reports repository.ReportRepository
	now     func() time.Time
}

// NewReportUseCase constructs ReportUseCase.
func NewReportUseCase(reports repository.ReportRepository) *ReportUseCase {
	return &ReportUseCase{reports: reports, now: time.Now}
}

// OrdersPerDay returns per-day counts of paid orders over the last days.
func (u *ReportUseCase) OrdersPerDay(ctx context.Context, days int) ([]repository.OrdersPerDay, error) {
	since, err := u.since(days)
	if err != nil {
		return nil, err
	}
	return u.reports.OrdersPerDay(ctx, since)
}

// MostBoughtProducts returns purchase counts per product over the last days.
func (u *ReportUseCase) MostBoughtProducts(ctx context.Context, days int) ([]repository.ProductPurchases, error) {
	since, err := u.since(days)
	if err != nil {
		return nil, err
	}
	return u.reports.MostBoughtProducts(ctx, since)
}

func (u *ReportUseCase) since(days int) (time.Time, error) {
	if _, ok := reportPeriods[days]; !ok {
		return time.Time{}, domainErrors.ErrInvalidPeriod
	}
	return u.now().AddDate(0, 0, -days), nil
}

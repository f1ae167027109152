package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	domainErrors "github.com/dmarkhas/gameshop/internal/domain/errors"
	"github.com/dmarkhas/gameshop/internal/domain/repository"
	testhelpers "github.com/dmarkhas/gameshop/internal/test"
)

func TestReportUseCaseAcceptedPeriods(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	reports := &testhelpers.ReportRepositoryStub{
		PerDay: []repository.OrdersPerDay{{Day: now, Count: 2}},
	}
	uc := NewReportUseCase(reports)
	uc.now = func() time.Time { return now }

	for _, days := range []int{30, 60, 90, 180, 360} {
		rows, err := uc.OrdersPerDay(context.Background(), days)
		if err != nil {
			t.Fatalf("period %d rejected: %v", days, err)
		}
		if len(rows) != 1 {
			t.Fatalf("expected configured rows, got %d", len(rows))
		}
		want := now.AddDate(0, 0, -days)
		if !reports.LastSince.Equal(want) {
			t.Fatalf("period %d: expected since %v, got %v", days, want, reports.LastSince)
		}
	}
}

func TestReportUseCaseRejectsUnknownPeriods(t *testing.T) {
	uc := NewReportUseCase(&testhelpers.ReportRepositoryStub{})

	for _, days := range []int{0, -30, 7, 45, 365} {
		if _, err := uc.OrdersPerDay(context.Background(), days); !errors.Is(err, domainErrors.ErrInvalidPeriod) {
			t.Fatalf("period %d: expected ErrInvalidPeriod, got %v", days, err)
		}
		if _, err := uc.MostBoughtProducts(context.Background(), days); !errors.Is(err, domainErrors.ErrInvalidPeriod) {
			t.Fatalf("period %d: expected ErrInvalidPeriod, got %v", days, err)
		}
	}
}

func TestReportUseCaseMostBought(t *testing.T) {
	reports := &testhelpers.ReportRepositoryStub{
		Purchases: []repository.ProductPurchases{{ProductName: "Chess", Count: 9}},
	}
	uc := NewReportUseCase(reports)

	rows, err := uc.MostBoughtProducts(context.Background(), 90)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 || rows[0].ProductName != "Chess" {
		t.Fatalf("unexpected rows: %v", rows)
	}
}

package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"go.uber.org/fx"

	"github.com/dmarkhas/gameshop/internal/app"
	"github.com/dmarkhas/gameshop/internal/config"
	"github.com/dmarkhas/gameshop/internal/domain/repository"
	"github.com/dmarkhas/gameshop/internal/storage/postgres"
	"github.com/dmarkhas/gameshop/internal/test"
)

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:      ":0",
		DatabaseURI:     "postgres://stub",
		RedisAddress:    "localhost:6379",
		TokenSecret:     "secret",
		ShutdownTimeout: time.Millisecond,
		CartRetention:   time.Hour,
		CleanupInterval: time.Hour,
		NotifyQueueSize: 1,
		SuggestionLimit: 3,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	userRepo := test.NewUserRepositoryStub()
	productRepo := &test.ProductRepositoryStub{}
	cartRepo := &test.CartRepositoryStub{}
	orderRepo := &test.OrderRepositoryStub{}
	addressRepo := &test.AddressRepositoryStub{}
	reportRepo := &test.ReportRepositoryStub{}

	var facade *app.ShopFacade
	fxApp := fx.New(
		fx.NopLogger,
		fx.Supply(context.Background()),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(&postgres.Storage{}),
			fx.Replace(repository.UserRepository(userRepo)),
			fx.Replace(repository.ProductRepository(productRepo)),
			fx.Replace(repository.CartRepository(cartRepo)),
			fx.Replace(repository.OrderRepository(orderRepo)),
			fx.Replace(repository.AddressRepository(addressRepo)),
			fx.Replace(repository.ReportRepository(reportRepo)),
		),
		fx.Populate(&facade),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil {
		t.Fatal("expected shop facade instance")
	}
}

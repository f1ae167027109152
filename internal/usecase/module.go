package usecase

import (
	"log/slog"

	"github.com/dmarkhas/gameshop/internal/config"
	"github.com/dmarkhas/gameshop/internal/domain/repository"
	"go.uber.org/fx"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	NewAuthUseCase,
	NewCartUseCase,
	newProductUseCase,
	NewOrderUseCase,
	NewAddressUseCase,
	NewReportUseCase,
	NewCheckoutUseCase,
)

func newProductUseCase(products repository.ProductRepository, suggester Suggester, cfg *config.Config, logger *slog.Logger) *ProductUseCase {
	return NewProductUseCase(products, suggester, cfg.SuggestionLimit, logger)
}

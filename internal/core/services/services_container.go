package services

import (
	portsrepo "github.com/SscSPs/marketplace_client/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/marketplace_client/internal/core/ports/services"
	"github.com/SscSPs/marketplace_client/pkg/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The rate cache comes first since conversion and formatting read from it
	container.ExchangeRate = NewExchangeRateService(repos.ExchangeRateSource, cfg.ServerCurrency)

	container.Currency = NewCurrencyService(
		container.ExchangeRate,
		WithCurrencySettings(cfg.CurrencySettings()),
	)

	container.Search = NewSearchService(
		repos.SearchProviderRepo,
		repos.SearchClient,
		WithTestnet(cfg.Testnet),
	)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.CurrencySvcFacade     = (*currencyService)(nil)
	_ portssvc.ExchangeRateSvcFacade = (*exchangeRateService)(nil)
	_ portssvc.SearchSvcFacade       = (*searchService)(nil)
)

package services

import (
	"math"
	"strings"

	"github.com/SscSPs/marketplace_client/internal/apperrors"
	"github.com/SscSPs/marketplace_client/internal/catalog"
	"github.com/SscSPs/marketplace_client/internal/core/domain"
	portssvc "github.com/SscSPs/marketplace_client/internal/core/ports/services"
)

// fiatBaseUnit is applied to every non-crypto currency regardless of its
// catalog decimals.
const fiatBaseUnit = 100

type currencyService struct {
	BaseService
	catalog  *catalog.Catalog
	rates    portssvc.ExchangeRateReaderSvc
	settings domain.CurrencySettings
}

// CurrencyServiceOption is a function that configures a currencyService
type CurrencyServiceOption func(*currencyService)

// WithCatalog replaces the built-in currency catalog.
func WithCatalog(c *catalog.Catalog) CurrencyServiceOption {
	return func(s *currencyService) {
		if c != nil {
			s.catalog = c
		}
	}
}

// WithCurrencySettings sets the locale and bitcoin unit used when a call does
// not override them.
func WithCurrencySettings(settings domain.CurrencySettings) CurrencyServiceOption {
	return func(s *currencyService) {
		if settings.Locale != "" {
			s.settings.Locale = settings.Locale
		}
		if settings.BitcoinUnit != "" {
			s.settings.BitcoinUnit = settings.BitcoinUnit
		}
	}
}

// NewCurrencyService creates the conversion and formatting service on top of
// the exchange rate cache.
func NewCurrencyService(rates portssvc.ExchangeRateReaderSvc, options ...CurrencyServiceOption) portssvc.CurrencySvcFacade {
	s := &currencyService{
		catalog:  catalog.Default(),
		rates:    rates,
		settings: domain.DefaultCurrencySettings(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *currencyService) GetCurrencyByCode(code string) (*domain.CurrencyDescriptor, error) {
	if err := checkCode(code, "a currency"); err != nil {
		return nil, err
	}
	desc, ok := s.catalog.Lookup(code)
	if !ok {
		return nil, apperrors.UnrecognizedCurrency(code)
	}
	return &desc, nil
}

func (s *currencyService) ListCurrencies() []domain.CurrencyDescriptor {
	return s.catalog.All()
}

// checkAmount rejects NaN and infinities. what names the argument, e.g. "an amount".
func checkAmount(amount float64, what string) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return apperrors.InvalidArgument("Please provide %s that is a finite number.", what)
	}
	return nil
}

func checkCode(code, what string) error {
	if strings.TrimSpace(code) == "" {
		return apperrors.InvalidArgument("Please provide %s code.", what)
	}
	return nil
}

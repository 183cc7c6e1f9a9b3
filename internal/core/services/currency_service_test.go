package services_test

import (
	"math"
	"strings"
	"testing"

	"github.com/SscSPs/marketplace_client/internal/apperrors"
	"github.com/SscSPs/marketplace_client/internal/catalog"
	"github.com/SscSPs/marketplace_client/internal/core/domain"
	portssvc "github.com/SscSPs/marketplace_client/internal/core/ports/services"
	"github.com/SscSPs/marketplace_client/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type CurrencyServiceTestSuite struct {
	suite.Suite
	rates   portssvc.ExchangeRateSvcFacade
	service portssvc.CurrencySvcFacade
}

func (suite *CurrencyServiceTestSuite) SetupTest() {
	suite.rates = services.NewExchangeRateService(nil, testServerCurrency,
		services.WithInitialRates(domain.ExchangeRateTable{"EUR": 0.5, "USD": 20000, "JPY": 0}))
	suite.service = services.NewCurrencyService(suite.rates)
}

func (suite *CurrencyServiceTestSuite) newServiceWithRates(rates domain.ExchangeRateTable) portssvc.CurrencySvcFacade {
	return services.NewCurrencyService(services.NewExchangeRateService(nil, testServerCurrency, services.WithInitialRates(rates)))
}

// --- Catalog reads ---

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByCode() {
	desc, err := suite.service.GetCurrencyByCode("tbtc")
	suite.Require().NoError(err)
	suite.Equal("BTC", desc.Code)

	_, err = suite.service.GetCurrencyByCode("ZZZ")
	suite.ErrorIs(err, apperrors.ErrUnrecognizedCurrency)

	_, err = suite.service.GetCurrencyByCode(" ")
	suite.ErrorIs(err, apperrors.ErrInvalidArgument)
}

func (suite *CurrencyServiceTestSuite) TestListCurrencies() {
	suite.Equal(catalog.Default().All(), suite.service.ListCurrencies())
}

// --- Unit converter ---

func (suite *CurrencyServiceTestSuite) TestFiatRoundTripKeepsTwoDecimals() {
	for _, amount := range []float64{0, 1.005, 19.99, 123.456, -5.555, 1e6} {
		units, ok, err := suite.service.DecimalToInteger(amount, "USD", domain.UnitOptions{})
		suite.Require().NoError(err)
		suite.Require().True(ok)

		back, ok, err := suite.service.IntegerToDecimal(units, "USD", domain.UnitOptions{})
		suite.Require().NoError(err)
		suite.Require().True(ok)

		want, _ := decimal.NewFromFloat(amount).Round(2).Float64()
		suite.Equal(want, back, "amount %v", amount)
	}
}

func (suite *CurrencyServiceTestSuite) TestCryptoWholeCoinIsBaseUnit() {
	for _, desc := range catalog.Default().Cryptos() {
		units, ok, err := suite.service.DecimalToInteger(1, desc.Code, domain.UnitOptions{})
		suite.Require().NoError(err)
		suite.True(ok)
		suite.Equal(desc.BaseUnit, units, desc.Code)
	}
}

func (suite *CurrencyServiceTestSuite) TestIntegerToDecimal_Crypto() {
	amount, ok, err := suite.service.IntegerToDecimal(123_456_789, "BTC", domain.UnitOptions{})
	suite.Require().NoError(err)
	suite.True(ok)
	suite.Equal(1.23456789, amount)
}

func (suite *CurrencyServiceTestSuite) TestDecimalToInteger_RoundsHalfAwayFromZero() {
	units, _, err := suite.service.DecimalToInteger(0.125, "EUR", domain.UnitOptions{})
	suite.Require().NoError(err)
	suite.Equal(int64(13), units)

	units, _, err = suite.service.DecimalToInteger(-0.125, "EUR", domain.UnitOptions{})
	suite.Require().NoError(err)
	suite.Equal(int64(-13), units)
}

func (suite *CurrencyServiceTestSuite) TestUnitConverter_UnrecognizedCurrency() {
	_, ok, err := suite.service.DecimalToInteger(1, "ZZZ", domain.UnitOptions{})
	suite.NoError(err)
	suite.False(ok)

	_, ok, err = suite.service.IntegerToDecimal(100, "ZZZ", domain.UnitOptions{})
	suite.NoError(err)
	suite.False(ok)

	_, _, err = suite.service.DecimalToInteger(1, "ZZZ", domain.UnitOptions{Strict: true})
	suite.ErrorIs(err, apperrors.ErrUnrecognizedCurrency)
	suite.EqualError(err, "ZZZ is not a recognized currency.")

	_, _, err = suite.service.IntegerToDecimal(1, "ZZZ", domain.UnitOptions{Strict: true})
	suite.ErrorIs(err, apperrors.ErrUnrecognizedCurrency)
}

func (suite *CurrencyServiceTestSuite) TestUnitConverter_InvalidArguments() {
	_, _, err := suite.service.DecimalToInteger(math.NaN(), "USD", domain.UnitOptions{})
	suite.ErrorIs(err, apperrors.ErrInvalidArgument)

	_, _, err = suite.service.DecimalToInteger(1, "", domain.UnitOptions{})
	suite.ErrorIs(err, apperrors.ErrInvalidArgument)

	_, _, err = suite.service.DecimalToInteger(1e15, "BTC", domain.UnitOptions{})
	suite.ErrorIs(err, apperrors.ErrInvalidArgument)
}

// --- Formatter ---

func (suite *CurrencyServiceTestSuite) TestFormatPrice() {
	tests := []struct {
		price float64
		code  string
		want  string
	}{
		{123.456, "USD", "123.46"},
		{5, "USD", "5.00"},
		{123.456, "BTC", "123.456"},
		{0.123456789, "BTC", "0.12345679"},
		{2, "LTC", "2"},
		{1.5, "ZZZ", "1.50"},
	}

	for _, tt := range tests {
		got, err := suite.service.FormatPrice(tt.price, tt.code)
		suite.Require().NoError(err)
		suite.Equal(tt.want, got, "%v %s", tt.price, tt.code)
	}
}

func (suite *CurrencyServiceTestSuite) TestFormatCurrency_Fiat() {
	tests := []struct {
		name   string
		amount float64
		code   string
		locale string
		want   string
	}{
		{"grouping", 1234.5, "USD", "en-US", "$1,234.50"},
		{"rounds to cents", 9.999, "usd", "en-US", "$10.00"},
		{"negative", -5, "USD", "en-US", "-$5.00"},
		{"letter symbol is spaced", 12, "CHF", "en-US", "CHF 12.00"},
		{"symbol after amount", 1234.5, "EUR", "de-DE", "1.234,50 €"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			got, err := suite.service.FormatCurrency(tt.amount, tt.code, &domain.FormatOptions{Locale: tt.locale})
			suite.Require().NoError(err)
			suite.Equal(tt.want, got)
		})
	}
}

func (suite *CurrencyServiceTestSuite) TestFormatCurrency_LocaleSymbol() {
	got, err := suite.service.FormatCurrency(1234.5, "USD", &domain.FormatOptions{Locale: "fr-FR"})
	suite.Require().NoError(err)
	suite.Contains(got, "234,50")
	suite.True(strings.HasSuffix(got, " $US"), got)

	got, err = suite.service.FormatCurrency(5, "GBP", &domain.FormatOptions{Locale: "en-US"})
	suite.Require().NoError(err)
	suite.Equal("£5.00", got)
}

func (suite *CurrencyServiceTestSuite) TestFormatCurrency_Crypto() {
	tests := []struct {
		name   string
		amount float64
		code   string
		unit   domain.BitcoinUnit
		want   string
	}{
		{"native unit uses symbol", 1.5, "BTC", domain.BitcoinUnitBTC, "1.5 ₿"},
		{"testnet uses symbol", 1, "TBTC", "", "1 ₿"},
		{"milli", 0.0015, "BTC", domain.BitcoinUnitMBTC, "1.5 mBTC"},
		{"micro", 0.0000015, "BTC", domain.BitcoinUnitUBTC, "1.5 μBTC"},
		{"satoshi", 0.00012345, "BTC", domain.BitcoinUnitSatoshi, "12,345 sat"},
		{"unit only applies to bitcoin", 0.25, "LTC", domain.BitcoinUnitMBTC, "0.25 Ł"},
		{"no symbol uses code", 2, "bch", "", "2 BCH"},
		{"testnet code without symbol", 2, "TZEC", "", "2 TZEC"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			got, err := suite.service.FormatCurrency(tt.amount, tt.code, &domain.FormatOptions{BitcoinUnit: tt.unit})
			suite.Require().NoError(err)
			suite.Equal(tt.want, got)
		})
	}
}

func (suite *CurrencyServiceTestSuite) TestFormatCurrency_DefaultSettings() {
	svc := services.NewCurrencyService(suite.rates, services.WithCurrencySettings(domain.CurrencySettings{
		Locale:      "de-DE",
		BitcoinUnit: domain.BitcoinUnitMBTC,
	}))

	got, err := svc.FormatCurrency(0.0015, "BTC", nil)
	suite.Require().NoError(err)
	suite.Equal("1,5 mBTC", got)

	got, err = svc.FormatCurrency(0.0015, "BTC", &domain.FormatOptions{Locale: "en-US", BitcoinUnit: domain.BitcoinUnitBTC})
	suite.Require().NoError(err)
	suite.Equal("0.0015 ₿", got)
}

func (suite *CurrencyServiceTestSuite) TestFormatCurrency_UnrecognizedIsEmpty() {
	got, err := suite.service.FormatCurrency(5, "ZZZ", nil)
	suite.NoError(err)
	suite.Equal("", got)
}

func (suite *CurrencyServiceTestSuite) TestFormatCurrency_InvalidArguments() {
	_, err := suite.service.FormatCurrency(1, "USD", &domain.FormatOptions{Locale: "not a locale!!"})
	suite.ErrorIs(err, apperrors.ErrInvalidArgument)

	_, err = suite.service.FormatCurrency(math.Inf(1), "USD", nil)
	suite.ErrorIs(err, apperrors.ErrInvalidArgument)

	_, err = suite.service.FormatPrice(math.NaN(), "USD")
	suite.ErrorIs(err, apperrors.ErrInvalidArgument)

	_, err = suite.service.FormatCurrency(1, "", nil)
	suite.ErrorIs(err, apperrors.ErrInvalidArgument)
}

// --- Rate converter ---

func (suite *CurrencyServiceTestSuite) TestConvertCurrency_SameCurrencyIsIdentity() {
	got, err := suite.service.ConvertCurrency(42.42, "xyz", "XYZ")
	suite.NoError(err)
	suite.Equal(42.42, got)
}

func (suite *CurrencyServiceTestSuite) TestConvertCurrency_ThroughServerCurrency() {
	got, err := suite.service.ConvertCurrency(10, "BTC", "EUR")
	suite.Require().NoError(err)
	suite.Equal(5.0, got)

	got, err = suite.service.ConvertCurrency(10, "EUR", "BTC")
	suite.Require().NoError(err)
	suite.Equal(20.0, got)

	got, err = suite.service.ConvertCurrency(10, "tbtc", "eur")
	suite.Require().NoError(err)
	suite.Equal(5.0, got)

	got, err = suite.service.ConvertCurrency(20000, "USD", "EUR")
	suite.Require().NoError(err)
	suite.Equal(0.5, got)
}

func (suite *CurrencyServiceTestSuite) TestConvertCurrency_MissingRate() {
	_, err := suite.service.ConvertCurrency(100, "XYZ", "USD")
	suite.ErrorIs(err, apperrors.ErrNoExchangeRateData)
	suite.EqualError(err, "We do not have exchange rate data for XYZ.")

	_, err = suite.service.ConvertCurrency(100, "USD", "GBP")
	suite.ErrorIs(err, apperrors.ErrNoExchangeRateData)

	// a zero rate counts as missing
	_, err = suite.service.ConvertCurrency(100, "JPY", "BTC")
	suite.ErrorIs(err, apperrors.ErrNoExchangeRateData)
}

func (suite *CurrencyServiceTestSuite) TestConvertAndFormatCurrency() {
	got, err := suite.service.ConvertAndFormatCurrency(10000, "USD", "BTC", nil)
	suite.Require().NoError(err)
	suite.Equal("0.5 ₿", got)

	got, err = suite.service.ConvertAndFormatCurrency(10, "GBP", "BTC", nil)
	suite.Require().NoError(err)
	suite.Equal("£10.00", got, "falls back to the unconverted amount")

	_, err = suite.service.ConvertAndFormatCurrency(10, "GBP", "BTC", &domain.ConvertFormatOptions{FailOnMissingRate: true})
	suite.ErrorIs(err, apperrors.ErrNoExchangeRateData)

	_, err = suite.service.ConvertAndFormatCurrency(10, "", "BTC", nil)
	suite.ErrorIs(err, apperrors.ErrInvalidArgument)
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyValidity() {
	tests := []struct {
		code string
		want domain.CurrencyValidity
	}{
		{"BTC", domain.CurrencyValid},
		{"TBTC", domain.CurrencyValid},
		{"EUR", domain.CurrencyValid},
		{"GBP", domain.CurrencyExchangeRateMissing},
		{"JPY", domain.CurrencyExchangeRateMissing},
		{"LTC", domain.CurrencyExchangeRateMissing},
		{"ZZZ", domain.CurrencyUnrecognized},
	}

	for _, tt := range tests {
		got, err := suite.service.GetCurrencyValidity(tt.code)
		suite.Require().NoError(err)
		suite.Equal(tt.want, got, tt.code)
	}

	_, err := suite.service.GetCurrencyValidity("")
	suite.ErrorIs(err, apperrors.ErrInvalidArgument)
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyValidity_BecomesValidOnceRateCached() {
	svc := suite.newServiceWithRates(domain.ExchangeRateTable{})
	got, err := svc.GetCurrencyValidity("USD")
	suite.Require().NoError(err)
	suite.Equal(domain.CurrencyExchangeRateMissing, got)

	svc = suite.newServiceWithRates(domain.ExchangeRateTable{"USD": 20000})
	got, err = svc.GetCurrencyValidity("USD")
	suite.Require().NoError(err)
	suite.Equal(domain.CurrencyValid, got)
}

func (suite *CurrencyServiceTestSuite) TestPairedCurrency() {
	got, err := suite.service.PairedCurrency(10, "USD", "BTC")
	suite.Require().NoError(err)
	suite.Equal("$10.00 (0.0005 ₿)", got)

	got, err = suite.service.PairedCurrency(10, "USD", "USD")
	suite.Require().NoError(err)
	suite.Equal("$10.00", got)

	got, err = suite.service.PairedCurrency(10, "USD", "GBP")
	suite.Require().NoError(err)
	suite.Equal("$10.00", got, "target without rate shows only the base")

	got, err = suite.service.PairedCurrency(0, "USD", "BTC")
	suite.Require().NoError(err)
	suite.Equal("", got)

	got, err = suite.service.PairedCurrency(10, "ZZZ", "BTC")
	suite.Require().NoError(err)
	suite.Equal("", got)
}

// --- Run Test Suite ---
func TestCurrencyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CurrencyServiceTestSuite))
}

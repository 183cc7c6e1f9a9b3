package domain

import (
	"strings"
)

// CurrencyDescriptor holds the static metadata of a supported currency.
type CurrencyDescriptor struct {
	Code     string `json:"code"`   // uppercase, e.g. "USD" or "BTC"
	Name     string `json:"name"`   // e.g. "US Dollar"
	Symbol   string `json:"symbol"` // may be empty, the code is rendered instead
	IsCrypto bool   `json:"isCrypto"`
	// BaseUnit is the number of indivisible units per display unit (1e8 for BTC).
	BaseUnit           int64  `json:"baseUnit"`
	MinDisplayDecimals int    `json:"minDisplayDecimals"`
	MaxDisplayDecimals int    `json:"maxDisplayDecimals"`
	TestnetCode        string `json:"testnetCode,omitempty"`
}

// ServerCurrency is the crypto currency the node settles in. Its rate to itself is always 1.
type ServerCurrency struct {
	Code        string `json:"code"`
	TestnetCode string `json:"testnetCode,omitempty"`
}

// Matches reports whether code names the server currency in mainnet or testnet form.
func (s ServerCurrency) Matches(code string) bool {
	c := strings.ToUpper(code)
	if c == "" {
		return false
	}
	return c == strings.ToUpper(s.Code) || (s.TestnetCode != "" && c == strings.ToUpper(s.TestnetCode))
}

// BitcoinUnit selects how bitcoin amounts are scaled for display.
type BitcoinUnit string

const (
	BitcoinUnitBTC     BitcoinUnit = "BTC"
	BitcoinUnitMBTC    BitcoinUnit = "MBTC"
	BitcoinUnitUBTC    BitcoinUnit = "UBTC"
	BitcoinUnitSatoshi BitcoinUnit = "SATOSHI"
)

// ParseBitcoinUnit accepts the unit names case-insensitively.
func ParseBitcoinUnit(s string) (BitcoinUnit, bool) {
	switch u := BitcoinUnit(strings.ToUpper(strings.TrimSpace(s))); u {
	case BitcoinUnitBTC, BitcoinUnitMBTC, BitcoinUnitUBTC, BitcoinUnitSatoshi:
		return u, true
	}
	return "", false
}

// Symbol returns the display symbol of the unit. The native unit has none of its
// own and uses the currency's symbol.
func (u BitcoinUnit) Symbol() string {
	switch u {
	case BitcoinUnitMBTC:
		return "mBTC"
	case BitcoinUnitUBTC:
		return "μBTC"
	case BitcoinUnitSatoshi:
		return "sat"
	default:
		return ""
	}
}

// Factor is the multiplier applied to a BTC amount to express it in this unit.
func (u BitcoinUnit) Factor() int64 {
	switch u {
	case BitcoinUnitMBTC:
		return 1_000
	case BitcoinUnitUBTC:
		return 1_000_000
	case BitcoinUnitSatoshi:
		return 100_000_000
	default:
		return 1
	}
}

// CurrencyValidity classifies whether a currency code can be displayed and converted.
type CurrencyValidity string

const (
	CurrencyValid               CurrencyValidity = "VALID"
	CurrencyExchangeRateMissing CurrencyValidity = "EXCHANGE_RATE_MISSING"
	CurrencyUnrecognized        CurrencyValidity = "UNRECOGNIZED_CURRENCY"
)

// DefaultLocale is used when neither the settings nor the call name a locale.
const DefaultLocale = "en-US"

// CurrencySettings is the display configuration applied when a call does not
// override it.
type CurrencySettings struct {
	Locale      string
	BitcoinUnit BitcoinUnit
}

// DefaultCurrencySettings returns en-US with the native bitcoin unit.
func DefaultCurrencySettings() CurrencySettings {
	return CurrencySettings{Locale: DefaultLocale, BitcoinUnit: BitcoinUnitBTC}
}

// UnitOptions tunes DecimalToInteger and IntegerToDecimal.
type UnitOptions struct {
	// Strict turns an unrecognized currency into an UnrecognizedCurrency error
	// instead of an ok=false result.
	Strict bool
}

// FormatOptions overrides the CurrencySettings for a single call.
type FormatOptions struct {
	Locale      string
	BitcoinUnit BitcoinUnit
}

// ConvertFormatOptions tunes ConvertAndFormatCurrency.
type ConvertFormatOptions struct {
	FormatOptions
	// FailOnMissingRate returns the NoExchangeRateData error instead of
	// formatting the unconverted amount in the source currency.
	FailOnMissingRate bool
}

package dto

import (
	"github.com/SscSPs/marketplace_client/internal/core/domain"
)

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	Code               string `json:"code"`
	Name               string `json:"name"`
	Symbol             string `json:"symbol"`
	IsCrypto           bool   `json:"isCrypto"`
	BaseUnit           int64  `json:"baseUnit"`
	MinDisplayDecimals int    `json:"minDisplayDecimals"`
	MaxDisplayDecimals int    `json:"maxDisplayDecimals"`
	TestnetCode        string `json:"testnetCode,omitempty"`
}

// ToCurrencyResponse converts a domain.CurrencyDescriptor to CurrencyResponse DTO
func ToCurrencyResponse(d *domain.CurrencyDescriptor) CurrencyResponse {
	return CurrencyResponse{
		Code:               d.Code,
		Name:               d.Name,
		Symbol:             d.Symbol,
		IsCrypto:           d.IsCrypto,
		BaseUnit:           d.BaseUnit,
		MinDisplayDecimals: d.MinDisplayDecimals,
		MaxDisplayDecimals: d.MaxDisplayDecimals,
		TestnetCode:        d.TestnetCode,
	}
}

// ToListCurrencyResponse converts a slice of descriptors to CurrencyResponse DTOs
func ToListCurrencyResponse(descs []domain.CurrencyDescriptor) []CurrencyResponse {
	res := make([]CurrencyResponse, len(descs))
	for i := range descs {
		res[i] = ToCurrencyResponse(&descs[i])
	}
	return res
}

// CurrencyValidityResponse reports whether a currency can be displayed and converted.
type CurrencyValidityResponse struct {
	Code     string                  `json:"code"`
	Validity domain.CurrencyValidity `json:"validity" example:"VALID"`
}

// FormatOptionsRequest overrides the configured display settings for one call.
type FormatOptionsRequest struct {
	Locale      string `json:"locale,omitempty" example:"de-DE"`
	BitcoinUnit string `json:"bitcoinUnit,omitempty" binding:"omitempty,oneof=BTC MBTC UBTC SATOSHI"`
}

// ToFormatOptions converts the request fields to domain.FormatOptions.
func (r FormatOptionsRequest) ToFormatOptions() *domain.FormatOptions {
	return &domain.FormatOptions{
		Locale:      r.Locale,
		BitcoinUnit: domain.BitcoinUnit(r.BitcoinUnit),
	}
}

// ConvertRequest converts an amount between two currencies. With Format set the
// converted amount is also rendered in the target currency.
type ConvertRequest struct {
	Amount *float64 `json:"amount" binding:"required" example:"10"`
	From   string   `json:"from" binding:"required" example:"USD"`
	To     string   `json:"to" binding:"required" example:"BTC"`
	Format bool     `json:"format,omitempty"`
	// FailOnMissingRate makes a formatted conversion fail instead of falling
	// back to the original amount.
	FailOnMissingRate bool `json:"failOnMissingRate,omitempty"`
	FormatOptionsRequest
}

// ConvertResponse is the result of a conversion. Converted is absent when a
// formatted conversion fell back to the original amount.
type ConvertResponse struct {
	Amount    float64  `json:"amount"`
	From      string   `json:"from"`
	To        string   `json:"to"`
	Converted *float64 `json:"converted,omitempty"`
	Formatted string   `json:"formatted,omitempty"`
}

// FormatRequest renders an amount in a currency.
type FormatRequest struct {
	Amount   *float64 `json:"amount" binding:"required" example:"1234.5"`
	Currency string   `json:"currency" binding:"required" example:"USD"`
	FormatOptionsRequest
}

// FormatPriceRequest renders a price without symbol or locale.
type FormatPriceRequest struct {
	Price    *float64 `json:"price" binding:"required" example:"0.123456789"`
	Currency string   `json:"currency" binding:"required" example:"BTC"`
}

// PairedCurrencyRequest renders a price together with its converted value.
type PairedCurrencyRequest struct {
	Price *float64 `json:"price" binding:"required" example:"10"`
	From  string   `json:"from" binding:"required" example:"USD"`
	To    string   `json:"to" binding:"required" example:"BTC"`
}

// FormattedResponse carries a rendered amount.
type FormattedResponse struct {
	Formatted string `json:"formatted"`
}

// Unit conversion directions.
const (
	UnitsToInteger = "toInteger"
	UnitsToDecimal = "toDecimal"
)

// UnitsRequest scales between display amounts and integer base units. Amount
// is read for toInteger and BaseUnits for toDecimal.
type UnitsRequest struct {
	Direction string   `json:"direction" binding:"required,oneof=toInteger toDecimal"`
	Currency  string   `json:"currency" binding:"required" example:"BTC"`
	Amount    *float64 `json:"amount,omitempty" example:"1.5"`
	BaseUnits *int64   `json:"baseUnits,omitempty" example:"150000000"`
	Strict    bool     `json:"strict,omitempty"`
}

// UnitsResponse is the result of a unit conversion. Recognized is false when
// the currency is unknown and the request was not strict.
type UnitsResponse struct {
	Currency   string  `json:"currency"`
	Amount     float64 `json:"amount"`
	BaseUnits  int64   `json:"baseUnits"`
	Recognized bool    `json:"recognized"`
}

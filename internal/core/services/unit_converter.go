package services

import (
	"github.com/SscSPs/marketplace_client/internal/apperrors"
	"github.com/SscSPs/marketplace_client/internal/core/domain"
	"github.com/SscSPs/marketplace_client/internal/utils"
	"github.com/shopspring/decimal"
)

// DecimalToInteger converts a display amount to base units: the crypto base unit
// or cents for fiat.
func (s *currencyService) DecimalToInteger(amount float64, code string, opts domain.UnitOptions) (int64, bool, error) {
	if err := checkAmount(amount, "an amount"); err != nil {
		return 0, false, err
	}
	if err := checkCode(code, "a currency"); err != nil {
		return 0, false, err
	}

	desc, ok := s.catalog.Lookup(code)
	if !ok {
		return 0, false, unrecognized(code, opts)
	}

	units, fits := utils.ScaleToUnits(decimal.NewFromFloat(amount), unitsPerWhole(desc))
	if !fits {
		return 0, false, apperrors.InvalidArgument("%v %s does not fit in base units.", amount, code)
	}
	return units, true, nil
}

// IntegerToDecimal converts base units back to a display amount, rounded to the
// currency's maximum display decimals (2 for fiat).
func (s *currencyService) IntegerToDecimal(amount int64, code string, opts domain.UnitOptions) (float64, bool, error) {
	if err := checkCode(code, "a currency"); err != nil {
		return 0, false, err
	}

	desc, ok := s.catalog.Lookup(code)
	if !ok {
		return 0, false, unrecognized(code, opts)
	}

	precision := 2
	if desc.IsCrypto {
		precision = desc.MaxDisplayDecimals
	}
	value, _ := utils.UnitsToDecimal(amount, unitsPerWhole(desc), precision).Float64()
	return value, true, nil
}

func unitsPerWhole(desc domain.CurrencyDescriptor) int64 {
	if desc.IsCrypto && desc.BaseUnit > 0 {
		return desc.BaseUnit
	}
	return fiatBaseUnit
}

func unrecognized(code string, opts domain.UnitOptions) error {
	if opts.Strict {
		return apperrors.UnrecognizedCurrency(code)
	}
	return nil
}

package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/marketplace_client/internal/apperrors"
	"github.com/SscSPs/marketplace_client/internal/core/domain"
)

// ConvertCurrency converts amount using rates relative to the server currency.
func (s *currencyService) ConvertCurrency(amount float64, fromCode, toCode string) (float64, error) {
	if err := checkAmount(amount, "an amount"); err != nil {
		return 0, err
	}
	if err := checkCode(fromCode, "a from currency"); err != nil {
		return 0, err
	}
	if err := checkCode(toCode, "a to currency"); err != nil {
		return 0, err
	}

	from := strings.ToUpper(strings.TrimSpace(fromCode))
	to := strings.ToUpper(strings.TrimSpace(toCode))
	if from == to {
		return amount, nil
	}

	fromRate, err := s.conversionRate(from)
	if err != nil {
		return 0, err
	}
	toRate, err := s.conversionRate(to)
	if err != nil {
		return 0, err
	}
	return (amount / fromRate) * toRate, nil
}

// conversionRate treats a zero rate as missing so it can never be a divisor.
func (s *currencyService) conversionRate(code string) (float64, error) {
	rate, ok := s.rates.GetExchangeRate(code)
	if !ok || rate == 0 {
		return 0, apperrors.NoExchangeRateData(code)
	}
	return rate, nil
}

// ConvertAndFormatCurrency converts and formats in toCode. When rate data is
// missing it formats the unconverted amount in fromCode instead, unless
// opts.FailOnMissingRate is set.
func (s *currencyService) ConvertAndFormatCurrency(amount float64, fromCode, toCode string, opts *domain.ConvertFormatOptions) (string, error) {
	var o domain.ConvertFormatOptions
	if opts != nil {
		o = *opts
	}

	outCode := toCode
	converted, err := s.ConvertCurrency(amount, fromCode, toCode)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNoExchangeRateData) || o.FailOnMissingRate {
			return "", err
		}
		converted, outCode = amount, fromCode
	}

	return s.FormatCurrency(converted, outCode, &o.FormatOptions)
}

// GetCurrencyValidity reports whether code can be displayed and converted.
func (s *currencyService) GetCurrencyValidity(code string) (domain.CurrencyValidity, error) {
	if err := checkCode(code, "a currency"); err != nil {
		return "", err
	}

	desc, ok := s.catalog.Lookup(code)
	if !ok {
		return domain.CurrencyUnrecognized, nil
	}

	isServerCurrency := desc.IsCrypto && s.rates.ServerCurrency().Matches(code)
	if rate, ok := s.rates.GetExchangeRate(code); (ok && rate != 0) || isServerCurrency {
		return domain.CurrencyValid, nil
	}
	return domain.CurrencyExchangeRateMissing, nil
}

// PairedCurrency renders price in fromCode followed by its toCode equivalent in
// parentheses, e.g. "$2.33 (0.0002534 ₿)". The converted part is dropped when
// either currency is not VALID. A zero price or unrecognized fromCode renders "".
func (s *currencyService) PairedCurrency(price float64, fromCode, toCode string) (string, error) {
	if err := checkAmount(price, "a price"); err != nil {
		return "", err
	}
	fromValidity, err := s.GetCurrencyValidity(fromCode)
	if err != nil {
		return "", err
	}
	if price == 0 || fromValidity == domain.CurrencyUnrecognized {
		return "", nil
	}

	base, err := s.FormatCurrency(price, fromCode, nil)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(toCode) == "" || strings.EqualFold(fromCode, toCode) || fromValidity != domain.CurrencyValid {
		return base, nil
	}

	toValidity, err := s.GetCurrencyValidity(toCode)
	if err != nil || toValidity != domain.CurrencyValid {
		return base, err
	}

	converted, err := s.ConvertAndFormatCurrency(price, fromCode, toCode, nil)
	if err != nil {
		return "", err
	}
	if converted == "" {
		return base, nil
	}
	return fmt.Sprintf("%s (%s)", base, converted), nil
}

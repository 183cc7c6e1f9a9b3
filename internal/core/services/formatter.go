package services

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/SscSPs/marketplace_client/internal/apperrors"
	"github.com/SscSPs/marketplace_client/internal/core/domain"
	"github.com/SscSPs/marketplace_client/internal/utils"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const fiatDisplayDecimals = 2

// Languages that write the currency symbol after the amount, e.g. "1.234,50 €".
// x/text/currency only knows symbols, not where a locale puts them.
var symbolAfterAmount = map[string]bool{
	"cs": true, "da": true, "de": true, "es": true, "fi": true, "fr": true,
	"hu": true, "it": true, "nb": true, "pl": true, "ru": true, "sv": true,
}

// FormatPrice renders price with the currency's precision and no localization,
// suitable for form inputs. Crypto prices drop trailing zeros.
func (s *currencyService) FormatPrice(price float64, code string) (string, error) {
	if err := checkAmount(price, "a price"); err != nil {
		return "", err
	}
	if err := checkCode(code, "a currency"); err != nil {
		return "", err
	}

	p := decimal.NewFromFloat(price)
	if desc, ok := s.catalog.Lookup(code); ok && desc.IsCrypto {
		return utils.FormatUpToPrecision(p, desc.MaxDisplayDecimals), nil
	}
	return utils.FormatWithPrecision(p, fiatDisplayDecimals), nil
}

// FormatCurrency renders amount for the locale. Unrecognized currencies render
// as an empty string rather than an error.
func (s *currencyService) FormatCurrency(amount float64, code string, opts *domain.FormatOptions) (string, error) {
	locale, unit := s.formatSettings(opts)

	if err := checkAmount(amount, "an amount"); err != nil {
		return "", err
	}
	if err := checkCode(code, "a currency"); err != nil {
		return "", err
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return "", apperrors.InvalidArgument("%q is not a valid locale.", locale)
	}

	cur := strings.ToUpper(strings.TrimSpace(code))
	desc, ok := s.catalog.Lookup(cur)
	if !ok {
		return "", nil
	}

	printer := message.NewPrinter(tag)
	if desc.IsCrypto {
		return formatCrypto(printer, amount, cur, desc, unit), nil
	}
	return formatFiat(printer, tag, amount, desc), nil
}

func (s *currencyService) formatSettings(opts *domain.FormatOptions) (string, domain.BitcoinUnit) {
	locale, unit := s.settings.Locale, s.settings.BitcoinUnit
	if opts != nil {
		if opts.Locale != "" {
			locale = opts.Locale
		}
		if opts.BitcoinUnit != "" {
			unit = opts.BitcoinUnit
		}
	}
	if locale == "" {
		locale = domain.DefaultLocale
	}
	return locale, unit
}

// formatCrypto renders "<amount> <symbol>", or "<amount> <code>" when the
// currency has no symbol. Bitcoin amounts are first scaled to the display unit.
func formatCrypto(p *message.Printer, amount float64, cur string, desc domain.CurrencyDescriptor, unit domain.BitcoinUnit) string {
	label := desc.Symbol
	if label == "" {
		label = cur
	}

	amt := decimal.NewFromFloat(amount)
	if desc.Code == "BTC" {
		if sym := unit.Symbol(); sym != "" {
			label = sym
		}
		amt = amt.Mul(decimal.NewFromInt(unit.Factor()))
	}

	return fmt.Sprintf("%s %s", formatNumber(p, amt, desc.MinDisplayDecimals, desc.MaxDisplayDecimals), label)
}

func formatFiat(p *message.Printer, tag language.Tag, amount float64, desc domain.CurrencyDescriptor) string {
	amt := decimal.NewFromFloat(amount).Round(fiatDisplayDecimals)
	sign := ""
	if amt.IsNegative() {
		sign = "-"
		amt = amt.Abs()
	}
	num := formatNumber(p, amt, fiatDisplayDecimals, fiatDisplayDecimals)

	label := fiatSymbol(p, desc)
	sep := ""
	if r, _ := utf8.DecodeLastRuneInString(label); unicode.IsLetter(r) {
		sep = " "
	}

	base, _ := tag.Base()
	if symbolAfterAmount[base.String()] {
		return sign + num + " " + label
	}
	return sign + label + sep + num
}

// fiatSymbol returns the locale's symbol for the currency, e.g. "$US" in
// French. Codes x/text does not know use the catalog symbol or the code.
func fiatSymbol(p *message.Printer, desc domain.CurrencyDescriptor) string {
	unit, err := currency.ParseISO(desc.Code)
	if err != nil {
		if desc.Symbol != "" {
			return desc.Symbol
		}
		return desc.Code
	}
	return p.Sprint(currency.Symbol(unit))
}

func formatNumber(p *message.Printer, amt decimal.Decimal, minDecimals, maxDecimals int) string {
	rounded, _ := amt.Round(int32(maxDecimals)).Float64()
	return p.Sprint(number.Decimal(rounded,
		number.MinFractionDigits(minDecimals),
		number.MaxFractionDigits(maxDecimals),
	))
}

package catalog

import "github.com/SscSPs/marketplace_client/internal/core/domain"

const satoshisPerCoin = 100_000_000

func fiat(code, name, symbol string) domain.CurrencyDescriptor {
	return domain.CurrencyDescriptor{
		Code:               code,
		Name:               name,
		Symbol:             symbol,
		BaseUnit:           100,
		MinDisplayDecimals: 2,
		MaxDisplayDecimals: 2,
	}
}

func crypto(code, testnetCode, name, symbol string) domain.CurrencyDescriptor {
	return domain.CurrencyDescriptor{
		Code:               code,
		Name:               name,
		Symbol:             symbol,
		IsCrypto:           true,
		BaseUnit:           satoshisPerCoin,
		MinDisplayDecimals: 0,
		MaxDisplayDecimals: 8,
		TestnetCode:        testnetCode,
	}
}

var cryptoCurrencies = []domain.CurrencyDescriptor{
	crypto("BTC", "TBTC", "Bitcoin", "₿"),
	crypto("BCH", "TBCH", "Bitcoin Cash", ""),
	crypto("LTC", "TLTC", "Litecoin", "Ł"),
	crypto("ZEC", "TZEC", "Zcash", ""),
}

var fiatCurrencies = []domain.CurrencyDescriptor{
	fiat("AED", "UAE Dirham", ""),
	fiat("ARS", "Argentine Peso", ""),
	fiat("AUD", "Australian Dollar", "A$"),
	fiat("BRL", "Brazilian Real", "R$"),
	fiat("CAD", "Canadian Dollar", "CA$"),
	fiat("CHF", "Swiss Franc", ""),
	fiat("CLP", "Chilean Peso", ""),
	fiat("CNY", "Yuan Renminbi", "CN¥"),
	fiat("CZK", "Czech Koruna", ""),
	fiat("DKK", "Danish Krone", ""),
	fiat("EUR", "Euro", "€"),
	fiat("GBP", "Pound Sterling", "£"),
	fiat("HKD", "Hong Kong Dollar", "HK$"),
	fiat("HUF", "Forint", ""),
	fiat("IDR", "Rupiah", ""),
	fiat("ILS", "New Israeli Sheqel", "₪"),
	fiat("INR", "Indian Rupee", "₹"),
	fiat("JPY", "Yen", "¥"),
	fiat("KRW", "Won", "₩"),
	fiat("KWD", "Kuwaiti Dinar", ""),
	fiat("MXN", "Mexican Peso", "MX$"),
	fiat("MYR", "Malaysian Ringgit", ""),
	fiat("NOK", "Norwegian Krone", ""),
	fiat("NZD", "New Zealand Dollar", "NZ$"),
	fiat("PHP", "Philippine Peso", "₱"),
	fiat("PLN", "Zloty", ""),
	fiat("RUB", "Russian Ruble", ""),
	fiat("SEK", "Swedish Krona", ""),
	fiat("SGD", "Singapore Dollar", ""),
	fiat("THB", "Baht", ""),
	fiat("TRY", "Turkish Lira", ""),
	fiat("TWD", "New Taiwan Dollar", "NT$"),
	fiat("UAH", "Hryvnia", ""),
	fiat("USD", "US Dollar", "$"),
	fiat("VND", "Dong", "₫"),
	fiat("ZAR", "Rand", ""),
}

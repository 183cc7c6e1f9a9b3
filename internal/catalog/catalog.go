// Package catalog holds the static currency metadata used for conversion and display.
package catalog

import (
	"sort"
	"strings"
	"sync"

	"github.com/SscSPs/marketplace_client/internal/core/domain"
)

// Catalog is an immutable lookup of currency descriptors by code. Testnet codes
// resolve to the descriptor of their mainnet currency.
type Catalog struct {
	byCode  map[string]domain.CurrencyDescriptor
	testnet map[string]string
	codes   []string
}

// New builds a catalog from descs. Later descriptors replace earlier ones with
// the same code.
func New(descs ...domain.CurrencyDescriptor) *Catalog {
	c := &Catalog{
		byCode:  make(map[string]domain.CurrencyDescriptor, len(descs)),
		testnet: make(map[string]string),
	}
	for _, d := range descs {
		d.Code = strings.ToUpper(d.Code)
		d.TestnetCode = strings.ToUpper(d.TestnetCode)
		if _, exists := c.byCode[d.Code]; !exists {
			c.codes = append(c.codes, d.Code)
		}
		c.byCode[d.Code] = d
		if d.TestnetCode != "" {
			c.testnet[d.TestnetCode] = d.Code
		}
	}
	sort.Strings(c.codes)
	return c
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the built-in catalog of fiat and crypto currencies.
func Default() *Catalog {
	defaultOnce.Do(func() {
		descs := make([]domain.CurrencyDescriptor, 0, len(fiatCurrencies)+len(cryptoCurrencies))
		descs = append(descs, fiatCurrencies...)
		descs = append(descs, cryptoCurrencies...)
		defaultCatalog = New(descs...)
	})
	return defaultCatalog
}

// Lookup finds the descriptor for code, case-insensitively.
func (c *Catalog) Lookup(code string) (domain.CurrencyDescriptor, bool) {
	cur := strings.ToUpper(strings.TrimSpace(code))
	if cur == "" {
		return domain.CurrencyDescriptor{}, false
	}
	if d, ok := c.byCode[cur]; ok {
		return d, true
	}
	if mainnet, ok := c.testnet[cur]; ok {
		return c.byCode[mainnet], true
	}
	return domain.CurrencyDescriptor{}, false
}

// IsCrypto reports whether code belongs to the crypto subset.
func (c *Catalog) IsCrypto(code string) bool {
	d, ok := c.Lookup(code)
	return ok && d.IsCrypto
}

// All returns every descriptor ordered by code.
func (c *Catalog) All() []domain.CurrencyDescriptor {
	out := make([]domain.CurrencyDescriptor, 0, len(c.codes))
	for _, code := range c.codes {
		out = append(out, c.byCode[code])
	}
	return out
}

// Cryptos returns the crypto descriptors ordered by code.
func (c *Catalog) Cryptos() []domain.CurrencyDescriptor {
	var out []domain.CurrencyDescriptor
	for _, code := range c.codes {
		if d := c.byCode[code]; d.IsCrypto {
			out = append(out, d)
		}
	}
	return out
}

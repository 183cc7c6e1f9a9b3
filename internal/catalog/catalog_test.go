package catalog_test

import (
	"testing"

	"github.com/SscSPs/marketplace_client/internal/catalog"
	"github.com/SscSPs/marketplace_client/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLookup(t *testing.T) {
	cat := catalog.Default()

	usd, ok := cat.Lookup("usd")
	require.True(t, ok)
	assert.Equal(t, "USD", usd.Code)
	assert.Equal(t, "$", usd.Symbol)
	assert.False(t, usd.IsCrypto)

	btc, ok := cat.Lookup("BTC")
	require.True(t, ok)
	assert.True(t, btc.IsCrypto)
	assert.Equal(t, int64(100000000), btc.BaseUnit)
	assert.Equal(t, 8, btc.MaxDisplayDecimals)

	_, ok = cat.Lookup("ZZZ")
	assert.False(t, ok)
	_, ok = cat.Lookup("")
	assert.False(t, ok)
}

func TestTestnetCodeResolvesToMainnet(t *testing.T) {
	cat := catalog.Default()

	tbtc, ok := cat.Lookup("TBTC")
	require.True(t, ok)
	assert.Equal(t, "BTC", tbtc.Code)
	assert.True(t, cat.IsCrypto("tbtc"))
}

func TestCryptosHaveBaseUnits(t *testing.T) {
	cryptos := catalog.Default().Cryptos()
	require.NotEmpty(t, cryptos)
	for _, d := range cryptos {
		assert.True(t, d.IsCrypto, d.Code)
		assert.Positive(t, d.BaseUnit, d.Code)
		assert.NotEmpty(t, d.TestnetCode, d.Code)
	}
}

func TestAllIsSortedAndDeduplicated(t *testing.T) {
	cat := catalog.New(
		domain.CurrencyDescriptor{Code: "usd", Symbol: "$"},
		domain.CurrencyDescriptor{Code: "EUR", Symbol: "€"},
		domain.CurrencyDescriptor{Code: "USD", Symbol: "US$"},
	)

	all := cat.All()
	require.Len(t, all, 2)
	assert.Equal(t, "EUR", all[0].Code)
	assert.Equal(t, "USD", all[1].Code)
	assert.Equal(t, "US$", all[1].Symbol)
	assert.Empty(t, cat.Cryptos())
}

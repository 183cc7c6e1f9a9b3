package apperrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/SscSPs/marketplace_client/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestErrorMatchesByKind(t *testing.T) {
	err := apperrors.NoExchangeRateData("XYZ")

	assert.ErrorIs(t, err, apperrors.ErrNoExchangeRateData)
	assert.NotErrorIs(t, err, apperrors.ErrUnrecognizedCurrency)
	assert.Equal(t, "We do not have exchange rate data for XYZ.", err.Error())
}

func TestWrappedErrorKeepsKind(t *testing.T) {
	wrapped := fmt.Errorf("failed to convert: %w", apperrors.UnrecognizedCurrency("ZZZ"))

	assert.ErrorIs(t, wrapped, apperrors.ErrUnrecognizedCurrency)
	assert.Equal(t, apperrors.KindUnrecognizedCurrency, apperrors.KindOf(wrapped))

	validation := fmt.Errorf("%w: provider is locked", apperrors.ErrValidation)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(validation))
}

func TestKindOfForeignError(t *testing.T) {
	assert.Equal(t, apperrors.KindUnknown, apperrors.KindOf(errors.New("boom")))
	assert.Equal(t, apperrors.KindUnknown, apperrors.KindOf(nil))
}

func TestDefaultMessages(t *testing.T) {
	assert.Equal(t, "Missing exchange rate data", apperrors.ErrNoExchangeRateData.Error())
	assert.Equal(t, "The currency is not recognized.", apperrors.ErrUnrecognizedCurrency.Error())
	assert.Equal(t, "NoExchangeRateData", apperrors.KindNoExchangeRateData.String())
}

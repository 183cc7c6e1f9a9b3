package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/marketplace_client/internal/apperrors"
	"github.com/SscSPs/marketplace_client/internal/core/domain"
	portssvc "github.com/SscSPs/marketplace_client/internal/core/ports/services"
	"github.com/SscSPs/marketplace_client/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ExchangeRateSource ---
type MockExchangeRateSource struct {
	mock.Mock
}

func (m *MockExchangeRateSource) FetchExchangeRates(ctx context.Context, params map[string]string) (domain.ExchangeRateTable, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.ExchangeRateTable), args.Error(1)
}

var testServerCurrency = domain.ServerCurrency{Code: "BTC", TestnetCode: "TBTC"}

// --- Test Suite ---
type ExchangeRateServiceTestSuite struct {
	suite.Suite
	mockSource *MockExchangeRateSource
	service    portssvc.ExchangeRateSvcFacade
}

func (suite *ExchangeRateServiceTestSuite) SetupTest() {
	suite.mockSource = new(MockExchangeRateSource)
	suite.service = services.NewExchangeRateService(suite.mockSource, testServerCurrency,
		services.WithInitialRates(domain.ExchangeRateTable{"EUR": 0.5, "gbp": 0.4}))
}

func (suite *ExchangeRateServiceTestSuite) TestGetExchangeRate_ServerCurrencyIsOne() {
	empty := services.NewExchangeRateService(nil, testServerCurrency)

	for _, code := range []string{"BTC", "TBTC", "btc"} {
		rate, ok := empty.GetExchangeRate(code)
		suite.True(ok, code)
		suite.Equal(1.0, rate, code)
	}
}

func (suite *ExchangeRateServiceTestSuite) TestGetExchangeRate_FromCache() {
	rate, ok := suite.service.GetExchangeRate("eur")
	suite.True(ok)
	suite.Equal(0.5, rate)

	rate, ok = suite.service.GetExchangeRate("GBP")
	suite.True(ok)
	suite.Equal(0.4, rate)

	_, ok = suite.service.GetExchangeRate("USD")
	suite.False(ok)

	_, ok = suite.service.GetExchangeRate("")
	suite.False(ok)
}

func (suite *ExchangeRateServiceTestSuite) TestFetchExchangeRates_ReplacesWholeTable() {
	ctx := context.Background()
	suite.mockSource.On("FetchExchangeRates", mock.Anything, mock.Anything).
		Return(domain.ExchangeRateTable{"usd": 20000}, nil).Once()

	rates, err := suite.service.FetchExchangeRates(ctx, domain.FetchOptions{}).Wait()

	suite.Require().NoError(err)
	suite.Equal(domain.ExchangeRateTable{"USD": 20000}, rates)

	rate, ok := suite.service.GetExchangeRate("USD")
	suite.True(ok)
	suite.Equal(20000.0, rate)

	_, ok = suite.service.GetExchangeRate("EUR")
	suite.False(ok, "rates are replaced, never merged")

	snapshot := suite.service.Snapshot()
	suite.Equal(testServerCurrency, snapshot.ServerCurrency)
	suite.False(snapshot.FetchedAt.IsZero())
	suite.mockSource.AssertExpectations(suite.T())
}

func (suite *ExchangeRateServiceTestSuite) TestFetchExchangeRates_PassesParams() {
	params := map[string]string{"source": "node"}
	suite.mockSource.On("FetchExchangeRates", mock.Anything, params).
		Return(domain.ExchangeRateTable{"USD": 1}, nil).Once()

	_, err := suite.service.FetchExchangeRates(context.Background(), domain.FetchOptions{Params: params}).Wait()

	suite.NoError(err)
	suite.mockSource.AssertExpectations(suite.T())
}

func (suite *ExchangeRateServiceTestSuite) TestFetchExchangeRates_FailureKeepsStaleTable() {
	fetchErr := errors.New("connection refused")
	suite.mockSource.On("FetchExchangeRates", mock.Anything, mock.Anything).Return(nil, fetchErr).Once()

	handle := suite.service.FetchExchangeRates(context.Background(), domain.FetchOptions{})
	_, err := handle.Wait()

	suite.ErrorIs(err, fetchErr)
	suite.ErrorIs(handle.Err(), fetchErr)
	rate, ok := suite.service.GetExchangeRate("EUR")
	suite.True(ok)
	suite.Equal(0.5, rate)
}

func (suite *ExchangeRateServiceTestSuite) TestFetchExchangeRates_NotifiesListenersBeforeReturning() {
	suite.mockSource.On("FetchExchangeRates", mock.Anything, mock.Anything).
		Return(domain.ExchangeRateTable{"USD": 1}, nil).Once()

	var notified []*domain.FetchHandle
	suite.service.OnFetching(func(h *domain.FetchHandle) { notified = append(notified, h) })

	handle := suite.service.FetchExchangeRates(context.Background(), domain.FetchOptions{})

	suite.Require().Len(notified, 1)
	suite.Same(handle, notified[0])
	_, err := handle.Wait()
	suite.NoError(err)
}

func (suite *ExchangeRateServiceTestSuite) TestFetchExchangeRates_CancelLeavesCacheUntouched() {
	suite.mockSource.On("FetchExchangeRates", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			<-args.Get(0).(context.Context).Done()
		}).
		Return(nil, context.Canceled).Once()

	handle := suite.service.FetchExchangeRates(context.Background(), domain.FetchOptions{})
	handle.Cancel()
	_, err := handle.Wait()

	suite.ErrorIs(err, context.Canceled)
	rate, ok := suite.service.GetExchangeRate("EUR")
	suite.True(ok)
	suite.Equal(0.5, rate)
}

func (suite *ExchangeRateServiceTestSuite) TestFetchExchangeRates_NoSource() {
	svc := services.NewExchangeRateService(nil, testServerCurrency)

	_, err := svc.FetchExchangeRates(context.Background(), domain.FetchOptions{}).Wait()

	suite.ErrorIs(err, apperrors.ErrInvalidArgument)
}

func (suite *ExchangeRateServiceTestSuite) TestRun_SyncsUntilContextDone() {
	suite.mockSource.On("FetchExchangeRates", mock.Anything, mock.Anything).
		Return(domain.ExchangeRateTable{"USD": 30000}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- suite.service.Run(ctx, 10*time.Millisecond) }()

	suite.Eventually(func() bool {
		_, ok := suite.service.GetExchangeRate("USD")
		return ok
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		suite.NoError(err)
	case <-time.After(time.Second):
		suite.Fail("Run did not stop after cancel")
	}
}

func (suite *ExchangeRateServiceTestSuite) TestRun_RejectsNonPositiveInterval() {
	err := suite.service.Run(context.Background(), 0)
	suite.ErrorIs(err, apperrors.ErrInvalidArgument)
	suite.mockSource.AssertNotCalled(suite.T(), "FetchExchangeRates", mock.Anything, mock.Anything)
}

// --- Run Test Suite ---
func TestExchangeRateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExchangeRateServiceTestSuite))
}

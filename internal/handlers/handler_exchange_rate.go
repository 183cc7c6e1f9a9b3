package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/marketplace_client/internal/apperrors"
	"github.com/SscSPs/marketplace_client/internal/core/domain"
	portssvc "github.com/SscSPs/marketplace_client/internal/core/ports/services"
	"github.com/SscSPs/marketplace_client/internal/dto"
	"github.com/SscSPs/marketplace_client/internal/middleware"
	"github.com/gin-gonic/gin"
)

// exchangeRateHandler handles HTTP requests related to the exchange rate cache.
type exchangeRateHandler struct {
	exchangeRateService portssvc.ExchangeRateSvcFacade
}

func newExchangeRateHandler(ers portssvc.ExchangeRateSvcFacade) *exchangeRateHandler {
	return &exchangeRateHandler{
		exchangeRateService: ers,
	}
}

// registerExchangeRateRoutes registers routes related to exchange rates.
func registerExchangeRateRoutes(rg *gin.RouterGroup, exchangeRateService portssvc.ExchangeRateSvcFacade) {
	h := newExchangeRateHandler(exchangeRateService)

	rates := rg.Group("/exchange-rates")
	{
		rates.GET("", h.listExchangeRates)
		rates.GET("/:code", h.getExchangeRate)
		rates.POST("/refresh", h.refreshExchangeRates)
	}
}

// listExchangeRates godoc
// @Summary Get the cached exchange rates
// @Description Returns the rate table relative to the server currency and when it was fetched
// @Tags exchange-rates
// @Produce  json
// @Success 200 {object} dto.ExchangeRatesResponse
// @Router /exchange-rates [get]
func (h *exchangeRateHandler) listExchangeRates(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToExchangeRatesResponse(h.exchangeRateService.Snapshot()))
}

// getExchangeRate godoc
// @Summary Get the exchange rate of a currency
// @Description Returns the cached rate of a currency relative to the server currency. The server currency always has rate 1.
// @Tags exchange-rates
// @Produce  json
// @Param   code path string true "Currency code"
// @Success 200 {object} dto.ExchangeRateResponse
// @Failure 404 {object} map[string]string "No exchange rate data"
// @Router /exchange-rates/{code} [get]
func (h *exchangeRateHandler) getExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code := strings.ToUpper(c.Param("code"))

	rate, ok := h.exchangeRateService.GetExchangeRate(code)
	if !ok {
		logger.Warn("Exchange rate not found", slog.String("currency_code", code))
		c.JSON(http.StatusNotFound, gin.H{"error": apperrors.NoExchangeRateData(code).Error()})
		return
	}
	c.JSON(http.StatusOK, dto.ExchangeRateResponse{Code: code, Rate: rate})
}

// refreshExchangeRates godoc
// @Summary Refresh the exchange rates
// @Description Fetches the rate table from the node and waits for it. Query parameters are passed through to the node. On failure the previous table is kept.
// @Tags exchange-rates
// @Produce  json
// @Success 200 {object} dto.ExchangeRatesResponse
// @Failure 502 {object} map[string]string "Node request failed"
// @Failure 504 {object} map[string]string "Request canceled"
// @Router /exchange-rates/refresh [post]
func (h *exchangeRateHandler) refreshExchangeRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	params := make(map[string]string)
	for key, values := range c.Request.URL.Query() {
		if len(values) > 0 {
			params[key] = values[0]
		}
	}

	handle := h.exchangeRateService.FetchExchangeRates(c.Request.Context(), domain.FetchOptions{Params: params})
	select {
	case <-handle.Done():
	case <-c.Request.Context().Done():
		handle.Cancel()
		logger.Warn("Exchange rate refresh abandoned by client")
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": "Request canceled"})
		return
	}

	if err := handle.Err(); err != nil {
		if apperrors.KindOf(err) != apperrors.KindUnknown {
			respondError(c, logger, err, "Failed to refresh exchange rates")
			return
		}
		logger.Error("Failed to refresh exchange rates", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch exchange rates from the node"})
		return
	}

	c.JSON(http.StatusOK, dto.ToExchangeRatesResponse(h.exchangeRateService.Snapshot()))
}

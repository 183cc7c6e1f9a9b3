package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/marketplace_client/internal/core/domain"
	portssvc "github.com/SscSPs/marketplace_client/internal/core/ports/services"
	"github.com/SscSPs/marketplace_client/internal/dto"
	"github.com/SscSPs/marketplace_client/internal/middleware"
	"github.com/gin-gonic/gin"
)

// currencyHandler handles HTTP requests related to currencies.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
}

func newCurrencyHandler(cs portssvc.CurrencySvcFacade) *currencyHandler {
	return &currencyHandler{
		currencyService: cs,
	}
}

// registerCurrencyRoutes registers routes related to currency metadata,
// conversion and formatting.
func registerCurrencyRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade) {
	h := newCurrencyHandler(currencyService)

	currencies := rg.Group("/currencies")
	{
		currencies.GET("", h.listCurrencies)
		currencies.GET("/:code", h.getCurrencyByCode)
		currencies.GET("/:code/validity", h.getCurrencyValidity)
	}

	currency := rg.Group("/currency")
	{
		currency.POST("/convert", h.convert)
		currency.POST("/format", h.format)
		currency.POST("/format-price", h.formatPrice)
		currency.POST("/units", h.units)
		currency.POST("/paired", h.paired)
	}
}

// listCurrencies godoc
// @Summary List all currencies
// @Description Retrieves every known fiat and crypto currency ordered by code
// @Tags currencies
// @Produce  json
// @Success 200 {array} dto.CurrencyResponse
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	currencies := h.currencyService.ListCurrencies()
	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(currencies))
}

// getCurrencyByCode godoc
// @Summary Get a currency by code
// @Description Retrieves a currency descriptor. Testnet codes resolve to their mainnet currency.
// @Tags currencies
// @Produce  json
// @Param   code path string true "Currency code"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 404 {object} map[string]string "Currency not recognized"
// @Router /currencies/{code} [get]
func (h *currencyHandler) getCurrencyByCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("currency_code", c.Param("code")))

	currency, err := h.currencyService.GetCurrencyByCode(c.Param("code"))
	if err != nil {
		respondError(c, logger, err, "Failed to get currency")
		return
	}
	c.JSON(http.StatusOK, dto.ToCurrencyResponse(currency))
}

// getCurrencyValidity godoc
// @Summary Get currency validity
// @Description Reports whether a currency is recognized and has exchange rate data
// @Tags currencies
// @Produce  json
// @Param   code path string true "Currency code"
// @Success 200 {object} dto.CurrencyValidityResponse
// @Failure 400 {object} map[string]string "Invalid code"
// @Router /currencies/{code}/validity [get]
func (h *currencyHandler) getCurrencyValidity(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code := c.Param("code")

	validity, err := h.currencyService.GetCurrencyValidity(code)
	if err != nil {
		respondError(c, logger, err, "Failed to get currency validity")
		return
	}
	c.JSON(http.StatusOK, dto.CurrencyValidityResponse{Code: code, Validity: validity})
}

// convert godoc
// @Summary Convert an amount
// @Description Converts an amount between currencies using the cached exchange rates. With format set the result is also rendered in the target currency.
// @Tags currency
// @Accept  json
// @Produce  json
// @Param   request body dto.ConvertRequest true "Conversion"
// @Success 200 {object} dto.ConvertResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 422 {object} map[string]string "No exchange rate data"
// @Router /currency/convert [post]
func (h *currencyHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}
	logger = logger.With(slog.String("from", req.From), slog.String("to", req.To))

	converted, convErr := h.currencyService.ConvertCurrency(*req.Amount, req.From, req.To)
	if !req.Format {
		if convErr != nil {
			respondError(c, logger, convErr, "Failed to convert currency")
			return
		}
		c.JSON(http.StatusOK, dto.ConvertResponse{Amount: *req.Amount, From: req.From, To: req.To, Converted: &converted})
		return
	}

	opts := &domain.ConvertFormatOptions{
		FormatOptions:     *req.ToFormatOptions(),
		FailOnMissingRate: req.FailOnMissingRate,
	}
	formatted, err := h.currencyService.ConvertAndFormatCurrency(*req.Amount, req.From, req.To, opts)
	if err != nil {
		respondError(c, logger, err, "Failed to convert and format currency")
		return
	}

	res := dto.ConvertResponse{Amount: *req.Amount, From: req.From, To: req.To, Formatted: formatted}
	// without a rate the formatted value falls back to the original amount
	if convErr == nil {
		res.Converted = &converted
	}
	c.JSON(http.StatusOK, res)
}

// format godoc
// @Summary Format an amount
// @Description Renders an amount with its currency symbol for a locale. An unrecognized currency yields an empty string.
// @Tags currency
// @Accept  json
// @Produce  json
// @Param   request body dto.FormatRequest true "Amount to format"
// @Success 200 {object} dto.FormattedResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /currency/format [post]
func (h *currencyHandler) format(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.FormatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	formatted, err := h.currencyService.FormatCurrency(*req.Amount, req.Currency, req.ToFormatOptions())
	if err != nil {
		respondError(c, logger, err, "Failed to format currency")
		return
	}
	c.JSON(http.StatusOK, dto.FormattedResponse{Formatted: formatted})
}

// formatPrice godoc
// @Summary Format a price
// @Description Renders a price without symbol or locale: two decimals for fiat, up to eight significant decimals for crypto
// @Tags currency
// @Accept  json
// @Produce  json
// @Param   request body dto.FormatPriceRequest true "Price to format"
// @Success 200 {object} dto.FormattedResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /currency/format-price [post]
func (h *currencyHandler) formatPrice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.FormatPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	formatted, err := h.currencyService.FormatPrice(*req.Price, req.Currency)
	if err != nil {
		respondError(c, logger, err, "Failed to format price")
		return
	}
	c.JSON(http.StatusOK, dto.FormattedResponse{Formatted: formatted})
}

// units godoc
// @Summary Convert between display amounts and base units
// @Description toInteger scales a display amount to integer base units, toDecimal scales back
// @Tags currency
// @Accept  json
// @Produce  json
// @Param   request body dto.UnitsRequest true "Unit conversion"
// @Success 200 {object} dto.UnitsResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Currency not recognized (strict only)"
// @Router /currency/units [post]
func (h *currencyHandler) units(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UnitsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	opts := domain.UnitOptions{Strict: req.Strict}
	res := dto.UnitsResponse{Currency: req.Currency}
	var err error

	switch req.Direction {
	case dto.UnitsToInteger:
		if req.Amount == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "amount is required for toInteger"})
			return
		}
		res.Amount = *req.Amount
		res.BaseUnits, res.Recognized, err = h.currencyService.DecimalToInteger(*req.Amount, req.Currency, opts)
	case dto.UnitsToDecimal:
		if req.BaseUnits == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "baseUnits is required for toDecimal"})
			return
		}
		res.BaseUnits = *req.BaseUnits
		res.Amount, res.Recognized, err = h.currencyService.IntegerToDecimal(*req.BaseUnits, req.Currency, opts)
	}
	if err != nil {
		respondError(c, logger, err, "Failed to convert units")
		return
	}
	c.JSON(http.StatusOK, res)
}

// paired godoc
// @Summary Render a price with its converted value
// @Description Renders "<price> (<converted>)" when both currencies are valid and differ, otherwise just the price
// @Tags currency
// @Accept  json
// @Produce  json
// @Param   request body dto.PairedCurrencyRequest true "Price to render"
// @Success 200 {object} dto.FormattedResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /currency/paired [post]
func (h *currencyHandler) paired(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.PairedCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	formatted, err := h.currencyService.PairedCurrency(*req.Price, req.From, req.To)
	if err != nil {
		respondError(c, logger, err, "Failed to render paired currency")
		return
	}
	c.JSON(http.StatusOK, dto.FormattedResponse{Formatted: formatted})
}

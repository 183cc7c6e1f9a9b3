package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/SscSPs/marketplace_client/internal/core/domain"
	portssvc "github.com/SscSPs/marketplace_client/internal/core/ports/services"
	"github.com/SscSPs/marketplace_client/internal/dto"
	"github.com/SscSPs/marketplace_client/internal/middleware"
	"github.com/gin-gonic/gin"
)

// Query parameters consumed by the handler itself and not sent to providers.
const (
	queryParamTor        = "tor"
	queryParamProviderID = "providerId"
)

// searchHandler handles federated search requests.
type searchHandler struct {
	searchService portssvc.SearchSvcFacade
}

func newSearchHandler(ss portssvc.SearchSvcFacade) *searchHandler {
	return &searchHandler{
		searchService: ss,
	}
}

// registerSearchRoutes registers the search proxy. Extra handlers such as a
// rate limiter run before it.
func registerSearchRoutes(rg *gin.RouterGroup, searchService portssvc.SearchSvcFacade, extra ...gin.HandlerFunc) {
	h := newSearchHandler(searchService)

	search := rg.Group("/search", extra...)
	{
		search.GET("", h.search)
		search.GET("/default-provider", h.getDefaultProvider)
	}
}

// search godoc
// @Summary Search listings
// @Description Negotiates a search provider and forwards the query to it. q, p, ps and sortBy are search parameters, providerQ names a provider URL with its own query, every other parameter is passed on as a filter. While no usable default provider is set the response has selecting=true and no provider is called.
// @Tags search
// @Produce  json
// @Param   q query string false "Search term"
// @Param   p query int false "Page"
// @Param   ps query int false "Page size"
// @Param   sortBy query string false "Sort order"
// @Param   providerQ query string false "Provider URL with query"
// @Param   providerId query string false "Use this provider for this request; the stored default is not changed"
// @Param   tor query bool false "Use the Tor endpoints"
// @Success 200 {object} dto.SearchResponse
// @Failure 400 {object} map[string]string "Invalid query or provider without a URL for the mode"
// @Failure 404 {object} map[string]string "Provider not found"
// @Failure 429 {object} map[string]string "Too many requests"
// @Router /search [get]
func (h *searchHandler) search(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	query := cloneValues(c.Request.URL.Query())
	providerID := query.Get(queryParamProviderID)
	query.Del(queryParamTor)
	query.Del(queryParamProviderID)

	sess, err := h.searchService.NewSession(c.Request.Context(), domain.SearchOptions{
		Query:  query.Encode(),
		UseTor: req.UseTor,
	})
	if err != nil {
		respondError(c, logger, err, "Failed to start search")
		return
	}
	if providerID != "" {
		if err := sess.SelectProvider(c.Request.Context(), providerID); err != nil {
			respondError(c, logger, err, "Failed to activate search provider")
			return
		}
	}

	result, err := sess.Search(c.Request.Context())
	if err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Warn("Search canceled", slog.String("error", err.Error()))
			c.JSON(http.StatusRequestTimeout, gin.H{"error": "Search canceled"})
			return
		}
		respondError(c, logger, err, "Failed to search")
		return
	}

	res := dto.SearchResponse{
		SearchURL:  result.SearchURL,
		ProviderID: sess.CurrentProviderID(),
		Selecting:  result.Selecting,
		Error:      result.Failure,
	}
	provider := sess.Provider()
	res.Provider = dto.ToSearchProviderResponse(&provider)
	if result.Data != nil {
		res.Results = result.Data.Raw
	}
	c.JSON(http.StatusOK, res)
}

// getDefaultProvider godoc
// @Summary Get the default search provider
// @Description Returns the default provider for clear or Tor mode, falling back to the first built-in provider
// @Tags search
// @Produce  json
// @Param   tor query bool false "Tor mode"
// @Success 200 {object} dto.SearchProviderResponse
// @Router /search/default-provider [get]
func (h *searchHandler) getDefaultProvider(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	p, err := h.searchService.DefaultProvider(c.Request.Context(), req.UseTor)
	if err != nil {
		respondError(c, logger, err, "Failed to get default search provider")
		return
	}
	c.JSON(http.StatusOK, dto.ToSearchProviderResponse(p))
}

func cloneValues(v url.Values) url.Values {
	out := make(url.Values, len(v))
	for k, vals := range v {
		out[k] = append([]string(nil), vals...)
	}
	return out
}

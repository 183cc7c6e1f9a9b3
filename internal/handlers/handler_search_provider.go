package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/marketplace_client/internal/core/ports/services"
	"github.com/SscSPs/marketplace_client/internal/dto"
	"github.com/SscSPs/marketplace_client/internal/middleware"
	"github.com/gin-gonic/gin"
)

// searchProviderHandler handles HTTP requests that manage search providers.
type searchProviderHandler struct {
	searchService portssvc.SearchProviderSvc
}

func newSearchProviderHandler(ss portssvc.SearchProviderSvc) *searchProviderHandler {
	return &searchProviderHandler{
		searchService: ss,
	}
}

// registerSearchProviderRoutes registers the provider routes. Reads are public,
// changes go through auth.
func registerSearchProviderRoutes(rg *gin.RouterGroup, searchService portssvc.SearchProviderSvc, auth gin.HandlerFunc) {
	h := newSearchProviderHandler(searchService)

	providers := rg.Group("/search-providers")
	{
		providers.GET("", h.listProviders)
		providers.GET("/:id", h.getProvider)
		providers.POST("", auth, h.addProvider)
		providers.DELETE("/:id", auth, h.deleteProvider)
		providers.PUT("/:id/default", auth, h.makeDefaultProvider)
	}
}

// listProviders godoc
// @Summary List search providers
// @Description Returns the built-in providers followed by the added ones
// @Tags search-providers
// @Produce  json
// @Success 200 {array} dto.SearchProviderResponse
// @Failure 500 {object} map[string]string "Failed to list search providers"
// @Router /search-providers [get]
func (h *searchProviderHandler) listProviders(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	providers, err := h.searchService.ListProviders(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list search providers")
		return
	}
	c.JSON(http.StatusOK, dto.ToListSearchProviderResponse(providers))
}

// getProvider godoc
// @Summary Get a search provider
// @Tags search-providers
// @Produce  json
// @Param   id path string true "Provider ID"
// @Success 200 {object} dto.SearchProviderResponse
// @Failure 404 {object} map[string]string "Provider not found"
// @Router /search-providers/{id} [get]
func (h *searchProviderHandler) getProvider(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("provider_id", c.Param("id")))

	p, err := h.searchService.GetProvider(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to get search provider")
		return
	}
	c.JSON(http.StatusOK, dto.ToSearchProviderResponse(p))
}

// addProvider godoc
// @Summary Add a search provider
// @Description Adds a provider. A listings or torlistings URL is required.
// @Tags search-providers
// @Accept  json
// @Produce  json
// @Param   provider body dto.CreateSearchProviderRequest true "Provider"
// @Success 201 {object} dto.SearchProviderResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Provider id is built in"
// @Security BearerAuth
// @Router /search-providers [post]
func (h *searchProviderHandler) addProvider(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateSearchProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	p, err := h.searchService.AddProvider(c.Request.Context(), req.ToDomain())
	if err != nil {
		respondError(c, logger, err, "Failed to add search provider")
		return
	}

	subject, _ := middleware.GetSubjectFromContext(c)
	logger.Info("Search provider added", slog.String("provider_id", p.ID), slog.String("added_by", subject))
	c.JSON(http.StatusCreated, dto.ToSearchProviderResponse(p))
}

// deleteProvider godoc
// @Summary Delete a search provider
// @Description Deletes an added provider. Locked providers cannot be deleted.
// @Tags search-providers
// @Param   id path string true "Provider ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Provider is locked"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Provider not found"
// @Security BearerAuth
// @Router /search-providers/{id} [delete]
func (h *searchProviderHandler) deleteProvider(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("provider_id", c.Param("id")))

	if err := h.searchService.DeleteProvider(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, logger, err, "Failed to delete search provider")
		return
	}
	c.Status(http.StatusNoContent)
}

// makeDefaultProvider godoc
// @Summary Make a search provider the default
// @Tags search-providers
// @Param   id path string true "Provider ID"
// @Param   tor query bool false "Set the Tor mode default"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Provider has no listings URL for the mode"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Provider not found"
// @Security BearerAuth
// @Router /search-providers/{id}/default [put]
func (h *searchProviderHandler) makeDefaultProvider(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("provider_id", c.Param("id")))
	var req dto.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	if err := h.searchService.MakeDefaultProvider(c.Request.Context(), c.Param("id"), req.UseTor); err != nil {
		respondError(c, logger, err, "Failed to set default search provider")
		return
	}
	c.Status(http.StatusNoContent)
}

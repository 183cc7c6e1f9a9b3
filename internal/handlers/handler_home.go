package handlers

import (
	"net/http"
	"time"

	portssvc "github.com/SscSPs/marketplace_client/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// healthResponse reports liveness and the state of the rate cache.
type healthResponse struct {
	Status           string     `json:"status"`
	ServerCurrency   string     `json:"serverCurrency"`
	ExchangeRates    int        `json:"exchangeRates"`
	RatesLastFetched *time.Time `json:"ratesLastFetched,omitempty"`
}

// getHealth godoc
// @Summary Show the status of server.
// @Description Reports liveness and how many exchange rates are cached.
// @Tags root
// @Produce json
// @Success 200 {object} healthResponse
// @Router /health [get]
func getHealth(rates portssvc.ExchangeRateReaderSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap := rates.Snapshot()
		res := healthResponse{
			Status:         "ok",
			ServerCurrency: snap.ServerCurrency.Code,
			ExchangeRates:  len(snap.Rates),
		}
		if !snap.FetchedAt.IsZero() {
			res.RatesLastFetched = &snap.FetchedAt
		}
		c.JSON(http.StatusOK, res)
	}
}

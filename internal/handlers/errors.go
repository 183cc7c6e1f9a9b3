package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/marketplace_client/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// statusForError maps an application error kind to an HTTP status.
func statusForError(err error) int {
	switch apperrors.KindOf(err) {
	case apperrors.KindInvalidArgument, apperrors.KindValidation:
		return http.StatusBadRequest
	case apperrors.KindUnrecognizedCurrency, apperrors.KindNotFound:
		return http.StatusNotFound
	case apperrors.KindNoExchangeRateData:
		return http.StatusUnprocessableEntity
	case apperrors.KindDuplicate:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError logs err and writes it as a JSON error body. Unclassified
// errors are reported with the generic message only.
func respondError(c *gin.Context, logger *slog.Logger, err error, message string) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		logger.Error(message, slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": message})
		return
	}
	logger.Warn(message, slog.String("error", err.Error()))
	c.JSON(status, gin.H{"error": err.Error()})
}

func respondBindError(c *gin.Context, logger *slog.Logger, err error) {
	logger.Warn("Failed to bind request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
}

package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// contextKey is the type of keys stored by this package in contexts.
// Using a custom type prevents collisions.
type contextKey string

const (
	loggerCtxKey  = contextKey("logger")
	subjectCtxKey = contextKey("subject")
)

// GetSubjectFromContext returns the authenticated token subject stored by
// AuthMiddleware.
func GetSubjectFromContext(c *gin.Context) (string, bool) {
	return SubjectFromCtx(c.Request.Context())
}

// SubjectFromCtx returns the authenticated token subject from a request context.
func SubjectFromCtx(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(subjectCtxKey).(string)
	return subject, ok && subject != ""
}

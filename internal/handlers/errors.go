package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/surfbook/surf-scheduler/internal/httperr"
)

// writeError translates a domain error to the response envelope.
// Dependency failures keep their diagnostic detail server-side.
func writeError(c *gin.Context, log *zap.Logger, err error) {
	if httperr.IsKind(err, httperr.KindDependency) {
		var de *httperr.DomainError
		if errors.As(err, &de) && de.Cause != nil {
			log.Error("storage failure",
				zap.String("path", c.FullPath()),
				zap.Error(de.Cause),
			)
		} else {
			log.Error("storage failure",
				zap.String("path", c.FullPath()),
				zap.Error(err),
			)
		}
	}
	httperr.WriteDomain(c, err)
}

package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"iotdef.xyz/agro-dashboard-service/pkg/api"
	"iotdef.xyz/agro-dashboard-service/pkg/common"
)

// RequestLogger tags every request with an X-Request-ID, reusing the
// caller's when present, and logs it once it completes.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(api.HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(api.HeaderRequestID, requestID)

		start := time.Now()
		c.Next()

		common.GetLoggerWith(common.LoggerNameRestfulServer).Info("Request served",
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("elapsed", time.Since(start)),
		)
	}
}

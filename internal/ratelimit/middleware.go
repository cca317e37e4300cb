package ratelimit

import (
	"math"
	"strconv"

	"ialynk-server/internal/apierrors"
	"ialynk-server/internal/observability"

	"github.com/gin-gonic/gin"
)

// KeyFunc returns the subject a request is counted against
type KeyFunc func(c *gin.Context) string

// ByUser keys on the authenticated user and falls back to the client IP.
func ByUser(c *gin.Context) string {
	if userID := c.GetString("User-ID"); userID != "" {
		return "user:" + userID
	}
	return ByClientIP(c)
}

func ByClientIP(c *gin.Context) string {
	return "ip:" + observability.GetRealClientIP(c)
}

// Middleware limits requests per subject to limit per window. A non-positive limit
// disables the check. Counter failures let the request through.
func (s *Service) Middleware(scope string, limit int, keyFn KeyFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limit <= 0 {
			c.Next()
			return
		}

		ctx := observability.WithFields(c.Request.Context(),
			observability.Field{Key: "rate_limit_scope", Value: scope},
			observability.Field{Key: "rate_limit", Value: limit},
		)

		result, err := s.Check(ctx, scope, keyFn(c), limit)
		if err != nil {
			s.logger.Error(ctx, "rate limit check failed, allowing request", err)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(result.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))

		if !result.Allowed {
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(result.RetryAfter.Seconds()))))
			s.logger.Warn(ctx, "rate limit exceeded")
			apierrors.RespondWithError(c, apierrors.TooManyRequests("Rate limit exceeded"))
			return
		}

		c.Next()
	}
}

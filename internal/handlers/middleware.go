package handlers

import (
	"errors"
	"net/http"
	"time"

	"daily_diet/internal/models"
	"daily_diet/internal/service"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// sessionMiddleware resolves the session cookie into an identity stored on the
// request context; requests without a valid session stop here with 401.
func (h *Handler) sessionMiddleware(c *gin.Context) {
	token, err := c.Cookie(h.cfg.CookieName)
	if err != nil || token == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, messageResponse{Message: msgAuthRequired})
		return
	}

	ident, err := h.services.ParseSession(c.Request.Context(), token)
	if err != nil {
		if errors.Is(err, service.ErrInvalidSession) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, messageResponse{Message: msgAuthRequired})
			return
		}
		if h.log != nil {
			h.log.Errorw("session_lookup_failed", "err", err)
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, messageResponse{Message: msgInternal})
		return
	}

	c.Set(identityKey, ident)
	c.Next()
}

// currentIdentity returns the identity set by sessionMiddleware.
func currentIdentity(c *gin.Context) (models.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return models.Identity{}, false
	}
	ident, ok := v.(models.Identity)
	return ident, ok
}

func (h *Handler) requestLogger(c *gin.Context) {
	start := time.Now()
	c.Next()
	if h.log == nil {
		return
	}
	h.log.Infow("http_request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", c.Writer.Status(),
		"latency", time.Since(start),
	)
}

// Package handler serves the dashboard counters. The figures come from one
// query, so there is no processor in between.
package handler

import (
	"net/http"

	"ialynk-server/internal/apierrors"
	"ialynk-server/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	store  StatsStore
	logger *observability.Logger
}

func New(store StatsStore, logger *observability.Logger) Handler {
	return Handler{
		store:  store,
		logger: logger,
	}
}

func (h *Handler) HandleGetStats(c *gin.Context) {
	ctx := c.Request.Context()

	userIDStr, exists := c.Get("User-ID")
	if !exists {
		apierrors.RespondWithError(c, apierrors.Unauthorized("User ID not found in context"))
		return
	}
	userID, err := uuid.Parse(userIDStr.(string))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid user ID format"))
		return
	}

	stats, err := h.store.GetStats(ctx, userID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

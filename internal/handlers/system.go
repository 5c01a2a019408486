package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"

	errGetStatus = "failed to load status"
)

// @Summary      Root banner
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       / [get]
func (h *Handler) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "smart home telemetry api - running",
	})
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      503  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	ctx := c.Request.Context()
	st, err := h.services.Monitoring.Status(ctx)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": statusUnhealthy})
		return
	}

	lastUpdate := "never"
	if st.LastUpdate != nil {
		lastUpdate = st.LastUpdate.Format(time.RFC3339)
	}
	c.JSON(http.StatusOK, gin.H{
		"status":      statusHealthy,
		"data_count":  st.Records,
		"last_update": lastUpdate,
		"timestamp":   time.Now().UTC(),
	})
}

// @Summary      System status
// @Description  Record counts, capacity, active controls, and configuration.
// @Tags         system
// @Produce      json
// @Success      200  {object}  models.SystemStatus
// @Failure      500  {object}  map[string]string
// @Router       /status [get]
func (h *Handler) status(c *gin.Context) {
	ctx := c.Request.Context()
	st, err := h.services.Monitoring.Status(ctx)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errGetStatus, "status_get_failed", err)
		return
	}
	c.JSON(http.StatusOK, st)
}

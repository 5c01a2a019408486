package handlers

import (
	"net/http"

	"smart_home_api/internal/service"

	"github.com/gin-gonic/gin"
)

// Common response/status constants to avoid magic strings and typos.
const (
	statusStored         = "stored"
	statusHistoryCleared = "history_cleared"

	errIngestReading   = "failed to store reading"
	errGetHistory      = "failed to load history"
	errGetLatest       = "failed to load latest reading"
	errResetHistory    = "failed to clear history"
	errInvalidBodyPref = "invalid body: "

	msgNoData = "no data available"
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// currentControls returns the control snapshot best-effort; responses include
// it when available, the way the original device API reported control state
// alongside readings.
func (h *Handler) currentControls(c *gin.Context) (any, bool) {
	st, err := h.services.Controls.Snapshot(c.Request.Context())
	if err != nil {
		return nil, false
	}
	return st, true
}

// Request DTO for ingestion. All required fields are pointers so that zero
// values (0, false) still satisfy the required binding; a missing or
// wrongly-typed field fails the bind.
type readingRequest struct {
	Temperature    *float64 `json:"temperature" binding:"required"`
	Humidity       *float64 `json:"humidity" binding:"required"`
	GasLevel       *int     `json:"gas_level" binding:"required"`
	MotionDetected *bool    `json:"motion_detected" binding:"required"`
	DeviceID       string   `json:"device_id,omitempty"`
}

// IngestRequest is an exported model for Swagger docs of the POST /data payload.
type IngestRequest struct {
	Temperature    float64 `json:"temperature" example:"25.7"`
	Humidity       float64 `json:"humidity" example:"60.2"`
	GasLevel       int     `json:"gas_level" example:"120"`
	MotionDetected bool    `json:"motion_detected" example:"false"`
	DeviceID       string  `json:"device_id,omitempty" example:"esp32-001"`
}

// @Summary      Ingest a sensor reading
// @Description  Stores one telemetry sample; the server assigns id and timestamp.
// @Tags         data
// @Accept       json
// @Produce      json
// @Param        body  body   IngestRequest  true  "Reading payload"
// @Success      200   {object}  map[string]interface{}  "status, data, controls"
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /data [post]
func (h *Handler) ingestReading(c *gin.Context) {
	var req readingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}

	ctx := c.Request.Context()
	reading, err := h.services.Telemetry.Ingest(ctx, service.ReadingParams{
		Temperature:    *req.Temperature,
		Humidity:       *req.Humidity,
		GasLevel:       *req.GasLevel,
		MotionDetected: *req.MotionDetected,
		DeviceID:       req.DeviceID,
	})
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errIngestReading, "reading_ingest_failed", err)
		return
	}

	resp := gin.H{"status": statusStored, "data": reading}
	if controls, ok := h.currentControls(c); ok {
		resp["controls"] = controls
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary      Get all readings
// @Description  Returns the stored history, newest first.
// @Tags         data
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "data, total_records, controls"
// @Failure      500  {object}  map[string]string
// @Router       /data [get]
func (h *Handler) getHistory(c *gin.Context) {
	ctx := c.Request.Context()
	readings, err := h.services.Telemetry.History(ctx)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errGetHistory, "history_get_failed", err)
		return
	}

	resp := gin.H{"data": readings, "total_records": len(readings)}
	if controls, ok := h.currentControls(c); ok {
		resp["controls"] = controls
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary      Get latest reading
// @Description  Returns the most recent reading, or a null data field when the history is empty.
// @Tags         data
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "data, controls"
// @Failure      500  {object}  map[string]string
// @Router       /latest [get]
func (h *Handler) getLatest(c *gin.Context) {
	ctx := c.Request.Context()
	reading, err := h.services.Telemetry.Latest(ctx)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errGetLatest, "latest_get_failed", err)
		return
	}

	resp := gin.H{}
	if reading == nil {
		// Empty history is an empty result, not an error.
		resp["data"] = nil
		resp["message"] = msgNoData
	} else {
		resp["data"] = reading
	}
	if controls, ok := h.currentControls(c); ok {
		resp["controls"] = controls
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary      Clear reading history
// @Tags         data
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /data/reset [post]
func (h *Handler) resetHistory(c *gin.Context) {
	ctx := c.Request.Context()
	if err := h.services.Telemetry.Reset(ctx); err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errResetHistory, "history_reset_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusHistoryCleared})
}

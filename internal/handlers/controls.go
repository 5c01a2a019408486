package handlers

import (
	"errors"
	"net/http"

	"smart_home_api/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	statusControlSet    = "control_set"
	statusControlsReset = "controls_reset"

	errSetControl    = "failed to update control"
	errGetControls   = "failed to load controls"
	errResetControls = "failed to reset controls"
)

// Request DTO for override endpoints. Active is a pointer so that
// {"active": false} binds; Value stays untyped and is checked against the
// dimension's expected type in the service.
type overrideRequest struct {
	Active *bool `json:"active" binding:"required"`
	Value  any   `json:"value,omitempty"`
}

// OverrideRequest is an exported model for Swagger docs of the override payload.
type OverrideRequest struct {
	// Whether the override is active.
	Active bool `json:"active" example:"true"`
	// Override value; required when active. Type depends on the dimension.
	Value any `json:"value,omitempty"`
}

// Request DTO for the boolean switches (lights, alarm, simulation_mode).
type switchRequest struct {
	On *bool `json:"on" binding:"required"`
}

// SwitchRequest is an exported model for Swagger docs of the switch payload.
type SwitchRequest struct {
	On bool `json:"on" example:"true"`
}

// respondControlError maps validation failures to 400 and everything else to 500.
func (h *Handler) respondControlError(c *gin.Context, logKey string, err error, kv ...interface{}) {
	if errors.Is(err, service.ErrValidation) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.logAndJSONError(c, http.StatusInternalServerError, errSetControl, logKey, err, kv...)
}

// setOverride returns the handler for one dimension's override endpoint.
// One factory, seven routes — the same shape the device firmware expects.
//
// @Summary      Set a sensor override
// @Description  Activates or clears the override for a sensor dimension. Value type must match the dimension (temperature/humidity: number, gas: integer, motion: boolean).
// @Tags         control
// @Accept       json
// @Produce      json
// @Param        body  body   OverrideRequest  true  "Override payload"
// @Success      200   {object}  map[string]interface{}  "status, controls"
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /control/{dimension} [post]
func (h *Handler) setOverride(dimension string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req overrideRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
			return
		}

		ctx := c.Request.Context()
		st, err := h.services.Controls.SetOverride(ctx, service.OverrideParams{
			Dimension: dimension,
			Active:    *req.Active,
			Value:     req.Value,
		})
		if err != nil {
			h.respondControlError(c, "override_set_failed", err, "dimension", dimension)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": statusControlSet, "controls": st})
	}
}

// setSwitch returns the handler for one boolean control endpoint.
//
// @Summary      Set a switch
// @Description  Turns lights, alarm, or simulation_mode on or off.
// @Tags         control
// @Accept       json
// @Produce      json
// @Param        body  body   SwitchRequest  true  "Switch payload"
// @Success      200   {object}  map[string]interface{}  "status, controls"
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /control/{switch} [post]
func (h *Handler) setSwitch(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req switchRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
			return
		}

		ctx := c.Request.Context()
		st, err := h.services.Controls.SetSwitch(ctx, name, *req.On)
		if err != nil {
			h.respondControlError(c, "switch_set_failed", err, "switch", name)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": statusControlSet, "controls": st})
	}
}

// @Summary      Get control record
// @Tags         control
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "controls"
// @Failure      500  {object}  map[string]string
// @Router       /controls [get]
func (h *Handler) getControls(c *gin.Context) {
	ctx := c.Request.Context()
	st, err := h.services.Controls.Snapshot(ctx)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errGetControls, "controls_get_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"controls": st})
}

// @Summary      Reset all controls
// @Description  Restores every override and switch to its default.
// @Tags         control
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "status, controls"
// @Failure      500  {object}  map[string]string
// @Router       /controls/reset [post]
func (h *Handler) resetControls(c *gin.Context) {
	ctx := c.Request.Context()
	st, err := h.services.Controls.Reset(ctx)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errResetControls, "controls_reset_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusControlsReset, "controls": st})
}

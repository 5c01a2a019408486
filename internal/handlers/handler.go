package handlers

import (
	"smart_home_api/internal/logger"
	"smart_home_api/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	// Any origin may call the API; dashboards are served from elsewhere.
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "PUT", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Content-Type", "Authorization"},
	}))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// System endpoints
	router.GET("/", h.root)
	router.GET("/health", h.health)
	router.GET("/status", h.status)

	h.registerDataRoutes(router)
	h.registerControlRoutes(router)

	// Audit log
	router.GET("/events", h.getEvents)

	// Minimal WebSocket connection (HTTP upgrade) — same port
	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerDataRoutes(r *gin.Engine) {
	r.POST("/data", h.ingestReading)
	r.GET("/data", h.getHistory)
	r.GET("/latest", h.getLatest)
	r.POST("/data/reset", h.resetHistory)
}

func (h *Handler) registerControlRoutes(r *gin.Engine) {
	control := r.Group("/control")
	{
		for _, dim := range []string{
			service.DimTemperature,
			service.DimHumidity,
			service.DimGas,
			service.DimMotion,
		} {
			control.POST("/"+dim, h.setOverride(dim))
		}
		for _, sw := range []string{
			service.SwitchLights,
			service.SwitchAlarm,
			service.SwitchSimulationMode,
		} {
			control.POST("/"+sw, h.setSwitch(sw))
		}
	}

	r.GET("/controls", h.getControls)
	r.POST("/controls/reset", h.resetControls)
}

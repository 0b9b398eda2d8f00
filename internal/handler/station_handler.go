package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/jengzang/velomap-backend-go/internal/middleware"
	"github.com/jengzang/velomap-backend-go/internal/models"
	"github.com/jengzang/velomap-backend-go/internal/service"
	"github.com/jengzang/velomap-backend-go/pkg/response"
)

// StationHandler handles HTTP requests for stations
type StationHandler struct {
	service *service.StationService
}

// NewStationHandler creates a new station handler
func NewStationHandler(service *service.StationService) *StationHandler {
	return &StationHandler{service: service}
}

// GetNetwork handles GET /api/v1/network
func (h *StationHandler) GetNetwork(c *gin.Context) {
	summary, err := h.service.Summary(c.Request.Context())
	if err != nil {
		writeError(c, "Failed to get network", err)
		return
	}

	response.Success(c, summary)
}

// GetStations handles GET /api/v1/stations
func (h *StationHandler) GetStations(c *gin.Context) {
	var filter models.StationFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters", err)
		return
	}

	list, err := h.service.ListStations(c.Request.Context(), filter, middleware.DeviceID(c))
	if err != nil {
		writeError(c, "Failed to get stations", err)
		return
	}

	response.Success(c, list)
}

// GetStationByID handles GET /api/v1/stations/:id
func (h *StationHandler) GetStationByID(c *gin.Context) {
	detail, err := h.service.GetStation(c.Request.Context(), c.Param("id"), middleware.DeviceID(c))
	if err != nil {
		writeError(c, "Failed to get station", err)
		return
	}

	response.Success(c, detail)
}

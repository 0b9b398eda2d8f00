package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/jengzang/velomap-backend-go/internal/models"
	"github.com/jengzang/velomap-backend-go/internal/service"
	"github.com/jengzang/velomap-backend-go/pkg/response"
)

// TerrainHandler serves heightmaps and resolves clicks on them
type TerrainHandler struct {
	service *service.TerrainService
}

// NewTerrainHandler creates a new terrain handler
func NewTerrainHandler(service *service.TerrainService) *TerrainHandler {
	return &TerrainHandler{service: service}
}

// GetOverview handles GET /api/v1/terrain
func (h *TerrainHandler) GetOverview(c *gin.Context) {
	var filter models.TerrainFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters", err)
		return
	}

	t, err := h.service.Overview(c.Request.Context(), filter)
	if err != nil {
		writeError(c, "Failed to build terrain", err)
		return
	}

	response.Success(c, t)
}

// GetStationTerrain handles GET /api/v1/stations/:id/terrain
func (h *TerrainHandler) GetStationTerrain(c *gin.Context) {
	var filter models.TerrainFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters", err)
		return
	}

	t, err := h.service.Detail(c.Request.Context(), c.Param("id"), filter)
	if err != nil {
		writeError(c, "Failed to build terrain", err)
		return
	}

	response.Success(c, t)
}

// Pick handles POST /api/v1/terrain/pick
func (h *TerrainHandler) Pick(c *gin.Context) {
	var req models.PickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid pick request", err)
		return
	}

	result, err := h.service.Pick(c.Request.Context(), req)
	if err != nil {
		writeError(c, "Failed to pick station", err)
		return
	}

	response.Success(c, result)
}

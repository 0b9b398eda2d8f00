package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/jengzang/velomap-backend-go/internal/middleware"
	"github.com/jengzang/velomap-backend-go/internal/service"
	"github.com/jengzang/velomap-backend-go/pkg/response"
)

// FavouriteHandler handles the favourites of the calling device
type FavouriteHandler struct {
	service *service.FavouriteService
}

// NewFavouriteHandler creates a new favourite handler
func NewFavouriteHandler(service *service.FavouriteService) *FavouriteHandler {
	return &FavouriteHandler{service: service}
}

// GetFavourites handles GET /api/v1/favourites
func (h *FavouriteHandler) GetFavourites(c *gin.Context) {
	favs, err := h.service.List(c.Request.Context(), middleware.DeviceID(c))
	if err != nil {
		writeError(c, "Failed to get favourites", err)
		return
	}

	response.Success(c, favs)
}

// Toggle handles POST /api/v1/favourites/:id/toggle
func (h *FavouriteHandler) Toggle(c *gin.Context) {
	result, err := h.service.Toggle(c.Request.Context(), middleware.DeviceID(c), c.Param("id"))
	if err != nil {
		writeError(c, "Failed to toggle favourite", err)
		return
	}

	response.Success(c, result)
}

package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/velomap-backend-go/internal/network"
	"github.com/jengzang/velomap-backend-go/internal/service"
	"github.com/jengzang/velomap-backend-go/internal/terrain"
	"github.com/jengzang/velomap-backend-go/pkg/response"
)

// writeError maps service errors onto the view states the client renders
func writeError(c *gin.Context, fallback string, err error) {
	switch {
	case errors.Is(err, network.ErrLoadFailed):
		response.BadGateway(c, "failed to load", err)
	case errors.Is(err, service.ErrStationNotFound):
		response.NotFound(c, "station not found")
	case errors.Is(err, terrain.ErrInvalidOptions):
		response.BadRequest(c, "Invalid terrain parameters", err)
	default:
		response.InternalError(c, fallback, err)
	}
}

package handler

import (
	"github.com/Viamapa-Trip-Planner/service-routes/internal/application"
	"github.com/Viamapa-Trip-Planner/service-routes/internal/response"
	"github.com/gin-gonic/gin"
)

// PlaceHandler handles HTTP requests for place discovery.
type PlaceHandler struct {
	discovery *application.DiscoveryService
}

// NewPlaceHandler creates a new PlaceHandler.
func NewPlaceHandler(discovery *application.DiscoveryService) *PlaceHandler {
	return &PlaceHandler{discovery: discovery}
}

// RegisterRoutes registers all place endpoints on the given router group.
func (h *PlaceHandler) RegisterRoutes(r *gin.RouterGroup) {
	places := r.Group("/api/v1/places")
	{
		places.POST("/search", h.SearchPlaces)
		places.POST("/manual", h.AddManualPlace)
	}
}

// SearchPlaces handles POST /api/v1/places/search.
func (h *PlaceHandler) SearchPlaces(c *gin.Context) {
	var req application.SearchPlacesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	results, err := h.discovery.SearchPlaces(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"places": results, "count": len(results)})
}

// AddManualPlace handles POST /api/v1/places/manual.
func (h *PlaceHandler) AddManualPlace(c *gin.Context) {
	var req application.AddManualPlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	created, err := h.discovery.AddManualPlace(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, created)
}

package handler

import (
	"strconv"

	"github.com/Viamapa-Trip-Planner/service-routes/internal/application"
	"github.com/Viamapa-Trip-Planner/service-routes/internal/mapview"
	"github.com/Viamapa-Trip-Planner/service-routes/internal/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RouteHandler handles HTTP requests for route planning and history.
type RouteHandler struct {
	planner *application.PlannerService
	history *application.HistoryService
}

// NewRouteHandler creates a new RouteHandler.
func NewRouteHandler(planner *application.PlannerService, history *application.HistoryService) *RouteHandler {
	return &RouteHandler{planner: planner, history: history}
}

// RegisterRoutes registers all route endpoints on the given router group.
func (h *RouteHandler) RegisterRoutes(r *gin.RouterGroup) {
	routes := r.Group("/api/v1/routes")
	{
		routes.POST("/plan", h.PlanRoute)
		routes.POST("", h.SaveRoute)
		routes.GET("", h.ListRoutes)
		routes.GET("/:id", h.GetRoute)
		routes.GET("/:id/map", h.GetRouteMap)
		routes.DELETE("/:id", h.DeleteRoute)
		routes.DELETE("", h.ClearHistory)
	}
}

// PlanRoute handles POST /api/v1/routes/plan.
func (h *RouteHandler) PlanRoute(c *gin.Context) {
	var req application.PlanRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.planner.PlanRoute(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// SaveRoute handles POST /api/v1/routes. A duplicate save is a 200 with
// duplicate=true, not an error.
func (h *RouteHandler) SaveRoute(c *gin.Context) {
	var req application.SaveRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.history.SaveRoute(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if result.Duplicate {
		response.Success(c, result)
		return
	}
	response.Created(c, result)
}

// ListRoutes handles GET /api/v1/routes.
func (h *RouteHandler) ListRoutes(c *gin.Context) {
	page, limit := parsePagination(c)

	result, err := h.history.ListRoutes(c.Request.Context(), page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paginated(c, result.Items, result.Total, result.Page, result.Limit)
}

// GetRoute handles GET /api/v1/routes/:id.
func (h *RouteHandler) GetRoute(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid route ID")
		return
	}

	result, err := h.history.GetRoute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// GetRouteMap handles GET /api/v1/routes/:id/map, serving the interactive
// map page for a saved route.
func (h *RouteHandler) GetRouteMap(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid route ID")
		return
	}

	saved, err := h.history.GetRoute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	doc, err := mapview.Compose(saved.Coords, saved.PathGeometry, saved.Places)
	if err != nil {
		response.Error(c, err)
		return
	}
	page, err := mapview.RenderHTML(doc)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Data(200, "text/html; charset=utf-8", []byte(page))
}

// DeleteRoute handles DELETE /api/v1/routes/:id.
func (h *RouteHandler) DeleteRoute(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid route ID")
		return
	}

	if err := h.history.DeleteRoute(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"deleted": id})
}

// ClearHistory handles DELETE /api/v1/routes.
func (h *RouteHandler) ClearHistory(c *gin.Context) {
	if err := h.history.ClearHistory(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"cleared": true})
}

// parsePagination reads page/limit query parameters with defaults.
func parsePagination(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit
}

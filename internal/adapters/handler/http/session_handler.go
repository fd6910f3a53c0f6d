package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/progress-tracker/internal/core/domain"
	"github.com/comitanigiacomo/progress-tracker/internal/core/services"
)

type SessionHandler struct {
	service *services.SessionService
	cal     domain.Calendar
}

func NewSessionHandler(service *services.SessionService, cal domain.Calendar) *SessionHandler {
	return &SessionHandler{
		service: service,
		cal:     cal,
	}
}

// RegisterRoutes mounts the read endpoints on public and the writes on protected.
func (h *SessionHandler) RegisterRoutes(public, protected *gin.RouterGroup) {
	reads := public.Group("/sessions")
	{
		reads.GET("", h.List)
		reads.GET("/last", h.Last)
		reads.GET("/dates", h.Dates)
		reads.GET("/:id", h.GetByID)
	}

	writes := protected.Group("/sessions")
	{
		writes.POST("", h.Create)
		writes.PUT("/:id", h.Update)
		writes.DELETE("/:id", h.Delete)
	}
}

// List godoc
// @Summary List sessions
// @Tags sessions
// @Produce json
// @Success 200 {object} map[string][]domain.Session
// @Router /sessions [get]
func (h *SessionHandler) List(c *gin.Context) {
	sessions, err := h.service.List(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	if sessions == nil {
		sessions = []*domain.Session{}
	}

	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}

// Create godoc
// @Summary Record a workout session
// @Tags sessions
// @Accept json
// @Produce json
// @Param session body sessionRequest true "Session"
// @Success 201 {object} map[string]domain.Session
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /sessions [post]
func (h *SessionHandler) Create(c *gin.Context) {
	var req sessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	input, err := req.toInput(h.cal)
	if err != nil {
		handleError(c, err)
		return
	}

	session, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"session": session})
}

// GetByID godoc
// @Summary Get a session
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} map[string]domain.Session
// @Failure 404 {object} map[string]string
// @Router /sessions/{id} [get]
func (h *SessionHandler) GetByID(c *gin.Context) {
	session, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"session": session})
}

// Update godoc
// @Summary Replace a session
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param session body sessionRequest true "Session"
// @Success 200 {object} map[string]domain.Session
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /sessions/{id} [put]
func (h *SessionHandler) Update(c *gin.Context) {
	var req sessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	input, err := req.toInput(h.cal)
	if err != nil {
		handleError(c, err)
		return
	}

	session, err := h.service.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"session": session})
}

// Delete godoc
// @Summary Delete a session
// @Tags sessions
// @Param id path string true "Session ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /sessions/{id} [delete]
func (h *SessionHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Last returns the most recent session of the given type, or null.
// @Summary Latest session of a workout type
// @Tags sessions
// @Produce json
// @Param type query string true "Workout type"
// @Success 200 {object} map[string]domain.Session
// @Failure 400 {object} map[string]string
// @Router /sessions/last [get]
func (h *SessionHandler) Last(c *gin.Context) {
	session, err := h.service.LastByType(c.Request.Context(), c.Query("type"))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"session": session})
}

// Dates godoc
// @Summary Days with at least one session
// @Tags sessions
// @Produce json
// @Success 200 {object} map[string][]string
// @Router /sessions/dates [get]
func (h *SessionHandler) Dates(c *gin.Context) {
	dates, err := h.service.WorkoutDates(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"dates": dates})
}

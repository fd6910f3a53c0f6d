package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/progress-tracker/internal/core/domain"
	"github.com/comitanigiacomo/progress-tracker/internal/core/services"
)

var errInvalidLimit = fmt.Errorf("%w: limit must be an integer", domain.ErrInvalidInput)

type ExerciseHandler struct {
	service *services.ExerciseService
}

func NewExerciseHandler(service *services.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{service: service}
}

func (h *ExerciseHandler) RegisterRoutes(router *gin.RouterGroup) {
	exercises := router.Group("/exercises")
	{
		exercises.GET("", h.NamesOrStats)
		exercises.GET("/trend", h.Trend)
		exercises.GET("/top", h.Top)
	}
}

// NamesOrStats lists every known exercise, or with ?name= returns that
// exercise's best and latest performance.
// @Summary Exercise names or per-exercise stats
// @Tags exercises
// @Produce json
// @Param name query string false "Exercise name"
// @Success 200 {object} map[string]interface{}
// @Router /exercises [get]
func (h *ExerciseHandler) NamesOrStats(c *gin.Context) {
	ctx := c.Request.Context()

	if name, ok := c.GetQuery("name"); ok {
		stats, err := h.service.Stats(ctx, name)
		if err != nil {
			handleError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"stats": stats})
		return
	}

	names, err := h.service.Names(ctx)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"names": names})
}

// Trend godoc
// @Summary Daily max weight and reps for one exercise
// @Tags exercises
// @Produce json
// @Param name query string true "Exercise name"
// @Success 200 {object} map[string][]domain.TrendPoint
// @Failure 400 {object} map[string]string
// @Router /exercises/trend [get]
func (h *ExerciseHandler) Trend(c *gin.Context) {
	series, err := h.service.Trend(c.Request.Context(), c.Query("name"))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"series": series})
}

// Top godoc
// @Summary Heaviest exercises
// @Tags exercises
// @Produce json
// @Param limit query int false "Max results (default 10, max 50)"
// @Success 200 {object} map[string][]domain.ExerciseRecord
// @Failure 400 {object} map[string]string
// @Router /exercises/top [get]
func (h *ExerciseHandler) Top(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			handleError(c, errInvalidLimit)
			return
		}
		limit = n
	}

	records, err := h.service.Top(c.Request.Context(), limit)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"exercises": records})
}

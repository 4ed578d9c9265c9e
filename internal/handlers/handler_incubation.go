package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/featherworks/aviary_backend/internal/core/domain"
	portsrepo "github.com/featherworks/aviary_backend/internal/core/ports/repositories"
	portssvc "github.com/featherworks/aviary_backend/internal/core/ports/services"
	"github.com/featherworks/aviary_backend/internal/dto"
	"github.com/featherworks/aviary_backend/internal/middleware"
)

// incubationHandler handles HTTP requests related to clutch records.
type incubationHandler struct {
	incubationService portssvc.IncubationSvcFacade
}

// registerIncubationRoutes registers routes related to incubation.
func registerIncubationRoutes(rg *gin.RouterGroup, incubationService portssvc.IncubationSvcFacade) {
	h := &incubationHandler{incubationService: incubationService}

	incubations := rg.Group("/incubations")
	{
		incubations.POST("", h.startIncubation)
		incubations.GET("", h.listIncubations)
		incubations.GET("/:id", h.getIncubation)
		incubations.PUT("/:id", h.updateIncubation)
		incubations.POST("/:id/complete", h.completeIncubation)
		incubations.POST("/:id/fail", h.failIncubation)
	}
}

// startIncubation godoc
// @Summary Start an incubation
// @Description Opens a clutch record for a mated pair; both parents move to incubating
// @Tags incubation
// @Accept  json
// @Produce  json
// @Param   incubation body dto.StartIncubationRequest true "Clutch details"
// @Success 201 {object} dto.IncubationResponse
// @Failure 400 {object} map[string]string "Parents not paired with each other"
// @Failure 404 {object} map[string]string "Parent not found"
// @Failure 409 {object} map[string]string "A parent changed status concurrently"
// @Failure 500 {object} map[string]string "Failed to start incubation"
// @Router /incubations [post]
func (h *incubationHandler) startIncubation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.StartIncubationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for StartIncubation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor := middleware.GetActorFromRequest(c)
	record, err := h.incubationService.StartIncubation(c.Request.Context(), req, actor)
	if err != nil {
		respondServiceError(c, err, "Failed to start incubation")
		return
	}

	c.JSON(http.StatusCreated, dto.ToIncubationResponse(record))
}

// getIncubation godoc
// @Summary Get an incubation record
// @Tags incubation
// @Produce  json
// @Param   id path string true "Record ID"
// @Success 200 {object} dto.IncubationResponse
// @Failure 404 {object} map[string]string "Record not found"
// @Failure 500 {object} map[string]string "Failed to retrieve incubation record"
// @Router /incubations/{id} [get]
func (h *incubationHandler) getIncubation(c *gin.Context) {
	record, err := h.incubationService.GetIncubation(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve incubation record")
		return
	}
	c.JSON(http.StatusOK, dto.ToIncubationResponse(record))
}

// listIncubations godoc
// @Summary List incubation records
// @Description Lists clutch records filtered by status, parent or start date range
// @Tags incubation
// @Produce  json
// @Param   status query string false "Status filter (incubating, hatched, failed)"
// @Param   parentID query string false "Matches father or mother"
// @Param   limit query int false "Page size"
// @Param   offset query int false "Page offset"
// @Success 200 {object} dto.ListIncubationResponse
// @Failure 500 {object} map[string]string "Failed to list incubation records"
// @Router /incubations [get]
func (h *incubationHandler) listIncubations(c *gin.Context) {
	filter := portsrepo.ListIncubationFilter{
		Status:        domain.IncubationStatus(c.Query("status")),
		ParentID:      c.Query("parentID"),
		StartDateFrom: queryTime(c, "startDateFrom"),
		StartDateTo:   queryTime(c, "startDateTo"),
		Limit:         queryInt(c, "limit", 0),
		Offset:        queryInt(c, "offset", 0),
	}

	records, total, err := h.incubationService.ListIncubations(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, err, "Failed to list incubation records")
		return
	}

	c.JSON(http.StatusOK, dto.ToListIncubationResponse(records, total, filter.Limit, filter.Offset))
}

// updateIncubation godoc
// @Summary Update an incubation record
// @Description Adjusts egg count, expected hatch date or notes while in progress
// @Tags incubation
// @Accept  json
// @Produce  json
// @Param   id path string true "Record ID"
// @Param   incubation body dto.UpdateIncubationRequest true "Record updates"
// @Success 200 {object} dto.IncubationResponse
// @Failure 400 {object} map[string]string "Record already closed"
// @Failure 404 {object} map[string]string "Record not found"
// @Failure 500 {object} map[string]string "Failed to update incubation record"
// @Router /incubations/{id} [put]
func (h *incubationHandler) updateIncubation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateIncubationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateIncubation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor := middleware.GetActorFromRequest(c)
	record, err := h.incubationService.UpdateIncubation(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		respondServiceError(c, err, "Failed to update incubation record")
		return
	}

	c.JSON(http.StatusOK, dto.ToIncubationResponse(record))
}

// completeIncubation godoc
// @Summary Complete an incubation
// @Description Closes the clutch as hatched; both parents revert to paired
// @Tags incubation
// @Accept  json
// @Produce  json
// @Param   id path string true "Record ID"
// @Param   completion body dto.CompleteIncubationRequest true "Hatch results"
// @Success 200 {object} dto.IncubationResponse
// @Failure 400 {object} map[string]string "Record already closed"
// @Failure 404 {object} map[string]string "Record not found"
// @Failure 409 {object} map[string]string "A parent changed status concurrently"
// @Failure 500 {object} map[string]string "Failed to complete incubation"
// @Router /incubations/{id}/complete [post]
func (h *incubationHandler) completeIncubation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CompleteIncubationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CompleteIncubation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor := middleware.GetActorFromRequest(c)
	record, err := h.incubationService.CompleteIncubation(c.Request.Context(), c.Param("id"), req.HatchedCount, actor)
	if err != nil {
		respondServiceError(c, err, "Failed to complete incubation")
		return
	}

	c.JSON(http.StatusOK, dto.ToIncubationResponse(record))
}

// failIncubation godoc
// @Summary Fail an incubation
// @Description Closes the clutch as failed; both parents revert to paired
// @Tags incubation
// @Accept  json
// @Produce  json
// @Param   id path string true "Record ID"
// @Param   failure body dto.FailIncubationRequest true "Failure notes"
// @Success 200 {object} dto.IncubationResponse
// @Failure 400 {object} map[string]string "Record already closed"
// @Failure 404 {object} map[string]string "Record not found"
// @Failure 409 {object} map[string]string "A parent changed status concurrently"
// @Failure 500 {object} map[string]string "Failed to fail incubation"
// @Router /incubations/{id}/fail [post]
func (h *incubationHandler) failIncubation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.FailIncubationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for FailIncubation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor := middleware.GetActorFromRequest(c)
	record, err := h.incubationService.FailIncubation(c.Request.Context(), c.Param("id"), req.Notes, actor)
	if err != nil {
		respondServiceError(c, err, "Failed to fail incubation")
		return
	}

	c.JSON(http.StatusOK, dto.ToIncubationResponse(record))
}

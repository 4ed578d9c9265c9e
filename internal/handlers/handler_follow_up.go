package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/featherworks/aviary_backend/internal/core/ports/services"
	"github.com/featherworks/aviary_backend/internal/dto"
	"github.com/featherworks/aviary_backend/internal/middleware"
)

// followUpHandler handles HTTP requests related to follow-up entries.
type followUpHandler struct {
	followUpService portssvc.FollowUpSvcFacade
}

// registerFollowUpRoutes registers routes related to follow-ups.
func registerFollowUpRoutes(rg *gin.RouterGroup, followUpService portssvc.FollowUpSvcFacade) {
	h := &followUpHandler{followUpService: followUpService}

	animals := rg.Group("/animals")
	{
		animals.POST("/:id/follow-ups", h.createFollowUp)
		animals.GET("/:id/follow-ups", h.listFollowUps)
	}

	followUps := rg.Group("/follow-ups")
	{
		followUps.PUT("/:id", h.updateFollowUp)
		followUps.DELETE("/:id", h.deleteFollowUp)
	}
}

// createFollowUp godoc
// @Summary Record a follow-up
// @Description Records a follow-up contact for an animal; defaults the date to now
// @Tags follow-ups
// @Accept  json
// @Produce  json
// @Param   id path string true "Animal ID"
// @Param   followUp body dto.CreateFollowUpRequest true "Follow-up details"
// @Success 201 {object} dto.FollowUpResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Animal not found"
// @Failure 500 {object} map[string]string "Failed to record follow-up"
// @Router /animals/{id}/follow-ups [post]
func (h *followUpHandler) createFollowUp(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateFollowUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateFollowUp", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor := middleware.GetActorFromRequest(c)
	entry, err := h.followUpService.CreateFollowUp(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		respondServiceError(c, err, "Failed to record follow-up")
		return
	}

	c.JSON(http.StatusCreated, dto.ToFollowUpResponse(entry))
}

// listFollowUps godoc
// @Summary List an animal's follow-ups
// @Description Returns the animal's follow-up entries ordered by date
// @Tags follow-ups
// @Produce  json
// @Param   id path string true "Animal ID"
// @Success 200 {array} dto.FollowUpResponse
// @Failure 404 {object} map[string]string "Animal not found"
// @Failure 500 {object} map[string]string "Failed to list follow-ups"
// @Router /animals/{id}/follow-ups [get]
func (h *followUpHandler) listFollowUps(c *gin.Context) {
	entries, err := h.followUpService.ListFollowUps(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to list follow-ups")
		return
	}
	c.JSON(http.StatusOK, dto.ToListFollowUpsResponse(entries))
}

// updateFollowUp godoc
// @Summary Update a follow-up
// @Description Updates the date, status or notes of a follow-up entry
// @Tags follow-ups
// @Accept  json
// @Produce  json
// @Param   id path string true "Follow-up ID"
// @Param   followUp body dto.UpdateFollowUpRequest true "Follow-up updates"
// @Success 200 {object} dto.FollowUpResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Follow-up not found"
// @Failure 500 {object} map[string]string "Failed to update follow-up"
// @Router /follow-ups/{id} [put]
func (h *followUpHandler) updateFollowUp(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateFollowUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateFollowUp", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor := middleware.GetActorFromRequest(c)
	entry, err := h.followUpService.UpdateFollowUp(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		respondServiceError(c, err, "Failed to update follow-up")
		return
	}

	c.JSON(http.StatusOK, dto.ToFollowUpResponse(entry))
}

// deleteFollowUp godoc
// @Summary Delete a follow-up
// @Description Soft-deletes a follow-up entry
// @Tags follow-ups
// @Produce  json
// @Param   id path string true "Follow-up ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Follow-up not found"
// @Failure 500 {object} map[string]string "Failed to delete follow-up"
// @Router /follow-ups/{id} [delete]
func (h *followUpHandler) deleteFollowUp(c *gin.Context) {
	actor := middleware.GetActorFromRequest(c)
	if err := h.followUpService.DeleteFollowUp(c.Request.Context(), c.Param("id"), actor); err != nil {
		respondServiceError(c, err, "Failed to delete follow-up")
		return
	}
	c.Status(http.StatusNoContent)
}

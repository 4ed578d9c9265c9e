package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/featherworks/aviary_backend/internal/core/ports/services"
	"github.com/featherworks/aviary_backend/internal/dto"
	"github.com/featherworks/aviary_backend/internal/middleware"
)

// pairingHandler handles HTTP requests related to breeding pairs.
type pairingHandler struct {
	pairingService portssvc.PairingSvcFacade
	animalService  portssvc.AnimalSvcFacade
}

// registerPairingRoutes registers routes related to pairing.
func registerPairingRoutes(rg *gin.RouterGroup, pairingService portssvc.PairingSvcFacade, animalService portssvc.AnimalSvcFacade) {
	h := &pairingHandler{pairingService: pairingService, animalService: animalService}

	pairings := rg.Group("/pairings")
	{
		pairings.POST("", h.pairAnimals)
	}

	animals := rg.Group("/animals")
	{
		animals.POST("/:id/unpair", h.unpairAnimal)
		animals.GET("/:id/mate", h.getMate)
		animals.GET("/:id/eligible-mates", h.listEligibleMates)
	}
}

// pairAnimals godoc
// @Summary Pair two breeding animals
// @Description Bonds a male and a female; both must be breeding-status and unpaired. Both rows change atomically.
// @Tags pairing
// @Accept  json
// @Produce  json
// @Param   pairing body dto.PairRequest true "The animals to bond"
// @Success 201 {object} dto.PairResponse
// @Failure 400 {object} map[string]string "Precondition failed (gender, status or existing mate)"
// @Failure 404 {object} map[string]string "One of the animals not found"
// @Failure 409 {object} map[string]string "Lost a concurrent pairing race"
// @Failure 500 {object} map[string]string "Failed to pair animals"
// @Router /pairings [post]
func (h *pairingHandler) pairAnimals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.PairRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Pair", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor := middleware.GetActorFromRequest(c)
	result, err := h.pairingService.Pair(c.Request.Context(), req.MaleID, req.FemaleID, actor)
	if err != nil {
		respondServiceError(c, err, "Failed to pair animals")
		return
	}

	logger.Info("Animals paired", slog.String("male_id", result.Male.AnimalID), slog.String("female_id", result.Female.AnimalID))
	c.JSON(http.StatusCreated, dto.PairResponse{
		Male:     dto.ToAnimalResponse(&result.Male),
		Female:   dto.ToAnimalResponse(&result.Female),
		PairedAt: *result.Male.PairedAt,
	})
}

// unpairAnimal godoc
// @Summary Dissolve an animal's pairing
// @Description Clears the bond on both sides; both animals revert to breeding
// @Tags pairing
// @Produce  json
// @Param   id path string true "Animal ID"
// @Success 204 "Unpaired"
// @Failure 400 {object} map[string]string "Animal is not paired"
// @Failure 404 {object} map[string]string "Animal not found"
// @Failure 500 {object} map[string]string "Failed to unpair animal"
// @Router /animals/{id}/unpair [post]
func (h *pairingHandler) unpairAnimal(c *gin.Context) {
	actor := middleware.GetActorFromRequest(c)
	if err := h.pairingService.Unpair(c.Request.Context(), c.Param("id"), actor); err != nil {
		respondServiceError(c, err, "Failed to unpair animal")
		return
	}
	c.Status(http.StatusNoContent)
}

// getMate godoc
// @Summary Get an animal's mate
// @Description Returns the current partner, or hasMate=false when unpaired
// @Tags pairing
// @Produce  json
// @Param   id path string true "Animal ID"
// @Success 200 {object} dto.MateResponse
// @Failure 404 {object} map[string]string "Animal not found"
// @Failure 500 {object} map[string]string "Failed to get mate"
// @Router /animals/{id}/mate [get]
func (h *pairingHandler) getMate(c *gin.Context) {
	animalID := c.Param("id")

	animal, err := h.animalService.GetAnimal(c.Request.Context(), animalID)
	if err != nil {
		respondServiceError(c, err, "Failed to get mate")
		return
	}

	mate, err := h.pairingService.GetMate(c.Request.Context(), animalID)
	if err != nil {
		respondServiceError(c, err, "Failed to get mate")
		return
	}
	if mate == nil {
		c.JSON(http.StatusOK, dto.MateResponse{HasMate: false})
		return
	}

	summary := dto.ToAnimalSummary(mate)
	c.JSON(http.StatusOK, dto.MateResponse{
		HasMate:  true,
		Mate:     &summary,
		PairedAt: animal.PairedAt,
	})
}

// listEligibleMates godoc
// @Summary List eligible mates for a male
// @Description Returns every unpaired, breeding-status female
// @Tags pairing
// @Produce  json
// @Param   id path string true "Male animal ID"
// @Success 200 {object} dto.EligibleMatesResponse
// @Failure 400 {object} map[string]string "Animal is not male"
// @Failure 404 {object} map[string]string "Animal not found"
// @Failure 500 {object} map[string]string "Failed to list eligible mates"
// @Router /animals/{id}/eligible-mates [get]
func (h *pairingHandler) listEligibleMates(c *gin.Context) {
	mates, err := h.pairingService.EligibleMates(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to list eligible mates")
		return
	}

	items := make([]dto.AnimalSummary, len(mates))
	for i := range mates {
		items[i] = dto.ToAnimalSummary(&mates[i])
	}
	c.JSON(http.StatusOK, dto.EligibleMatesResponse{Items: items})
}

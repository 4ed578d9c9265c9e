package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/featherworks/aviary_backend/internal/apperrors"
	"github.com/featherworks/aviary_backend/internal/core/domain"
	portsrepo "github.com/featherworks/aviary_backend/internal/core/ports/repositories"
	portssvc "github.com/featherworks/aviary_backend/internal/core/ports/services"
	"github.com/featherworks/aviary_backend/internal/dto"
	"github.com/featherworks/aviary_backend/internal/middleware"
)

// animalHandler handles HTTP requests related to the animal registry.
type animalHandler struct {
	animalService   portssvc.AnimalSvcFacade
	timelineService portssvc.TimelineSvcFacade
	photoService    portssvc.PhotoReaderSvc
}

// registerAnimalRoutes registers routes related to animals.
func registerAnimalRoutes(
	rg *gin.RouterGroup,
	animalService portssvc.AnimalSvcFacade,
	timelineService portssvc.TimelineSvcFacade,
	photoService portssvc.PhotoReaderSvc,
) {
	h := &animalHandler{
		animalService:   animalService,
		timelineService: timelineService,
		photoService:    photoService,
	}

	animals := rg.Group("/animals")
	{
		animals.POST("", h.createAnimal)
		animals.GET("", h.listAnimals)
		animals.GET("/ring-number/:ring", h.checkRingNumber)
		animals.GET("/:id", h.getAnimal)
		animals.PUT("/:id", h.updateAnimal)
		animals.PATCH("/:id/status", h.updateAnimalStatus)
		animals.DELETE("/:id", h.deleteAnimal)
		animals.GET("/:id/timeline", h.getTimeline)
		animals.GET("/:id/photos", h.listPhotos)
	}
}

// respondServiceError maps service errors onto HTTP status codes.
func respondServiceError(c *gin.Context, err error, fallback string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Duplicate error", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrConflict):
		logger.Warn("Conflicting concurrent update", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error("Service error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

// decorateAnimalResponse fills in the photo metadata on an animal response.
// A failing photo lookup never fails the animal read.
func (h *animalHandler) decorateAnimalResponse(c *gin.Context, resp *dto.AnimalResponse) {
	ctx := c.Request.Context()
	if count, err := h.photoService.PhotoCount(ctx, resp.AnimalID); err == nil {
		resp.PhotoCount = count
	}
	if url, err := h.photoService.FirstPhotoURL(ctx, resp.AnimalID); err == nil {
		resp.FirstPhotoURL = url
	}
}

// createAnimal godoc
// @Summary Register a new animal
// @Description Registers a new animal; every animal starts in status available
// @Tags animals
// @Accept  json
// @Produce  json
// @Param   animal body dto.CreateAnimalRequest true "Animal details"
// @Success 201 {object} dto.AnimalResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 409 {object} map[string]string "Ring number already in use"
// @Failure 500 {object} map[string]string "Failed to register animal"
// @Router /animals [post]
func (h *animalHandler) createAnimal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateAnimalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateAnimal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor := middleware.GetActorFromRequest(c)
	animal, err := h.animalService.CreateAnimal(c.Request.Context(), req, actor)
	if err != nil {
		respondServiceError(c, err, "Failed to register animal")
		return
	}

	logger.Info("Animal registered", slog.String("animal_id", animal.AnimalID))
	c.JSON(http.StatusCreated, dto.ToAnimalResponse(animal))
}

// getAnimal godoc
// @Summary Get an animal by ID
// @Description Retrieves one animal with photo metadata
// @Tags animals
// @Produce  json
// @Param   id path string true "Animal ID"
// @Success 200 {object} dto.AnimalResponse
// @Failure 404 {object} map[string]string "Animal not found"
// @Failure 500 {object} map[string]string "Failed to retrieve animal"
// @Router /animals/{id} [get]
func (h *animalHandler) getAnimal(c *gin.Context) {
	animal, err := h.animalService.GetAnimal(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve animal")
		return
	}

	resp := dto.ToAnimalResponse(animal)
	h.decorateAnimalResponse(c, &resp)
	c.JSON(http.StatusOK, resp)
}

// listAnimals godoc
// @Summary List animals
// @Description Lists animals filtered by species, gender, status or keyword
// @Tags animals
// @Produce  json
// @Param   species query string false "Species filter"
// @Param   gender query string false "Gender filter"
// @Param   status query string false "Status filter"
// @Param   keyword query string false "Matches species or ring number"
// @Param   limit query int false "Page size"
// @Param   offset query int false "Page offset"
// @Success 200 {object} dto.ListAnimalsResponse
// @Failure 500 {object} map[string]string "Failed to list animals"
// @Router /animals [get]
func (h *animalHandler) listAnimals(c *gin.Context) {
	filter := portsrepo.ListAnimalsFilter{
		Species: c.Query("species"),
		Gender:  domain.Gender(c.Query("gender")),
		Status:  domain.AnimalStatus(c.Query("status")),
		Keyword: c.Query("keyword"),
		Limit:   queryInt(c, "limit", 0),
		Offset:  queryInt(c, "offset", 0),
	}

	animals, total, err := h.animalService.ListAnimals(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, err, "Failed to list animals")
		return
	}

	resp := dto.ToListAnimalsResponse(animals, total, filter.Limit, filter.Offset)
	for i := range resp.Items {
		h.decorateAnimalResponse(c, &resp.Items[i])
	}
	c.JSON(http.StatusOK, resp)
}

// checkRingNumber godoc
// @Summary Check ring number availability
// @Description Reports whether a ring number is already in use
// @Tags animals
// @Produce  json
// @Param   ring path string true "Ring number"
// @Success 200 {object} dto.RingNumberExistsResponse
// @Failure 500 {object} map[string]string "Failed to check ring number"
// @Router /animals/ring-number/{ring} [get]
func (h *animalHandler) checkRingNumber(c *gin.Context) {
	exists, err := h.animalService.RingNumberExists(c.Request.Context(), c.Param("ring"))
	if err != nil {
		respondServiceError(c, err, "Failed to check ring number")
		return
	}
	c.JSON(http.StatusOK, dto.RingNumberExistsResponse{Exists: exists})
}

// updateAnimal godoc
// @Summary Update an animal
// @Description Updates biological and commercial attributes of an animal
// @Tags animals
// @Accept  json
// @Produce  json
// @Param   id path string true "Animal ID"
// @Param   animal body dto.UpdateAnimalRequest true "Attribute updates"
// @Success 200 {object} dto.AnimalResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Animal not found"
// @Failure 409 {object} map[string]string "Ring number already in use or conflicting update"
// @Failure 500 {object} map[string]string "Failed to update animal"
// @Router /animals/{id} [put]
func (h *animalHandler) updateAnimal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateAnimalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateAnimal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor := middleware.GetActorFromRequest(c)
	animal, err := h.animalService.UpdateAnimal(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		respondServiceError(c, err, "Failed to update animal")
		return
	}

	resp := dto.ToAnimalResponse(animal)
	h.decorateAnimalResponse(c, &resp)
	c.JSON(http.StatusOK, resp)
}

// updateAnimalStatus godoc
// @Summary Change the breeder designation
// @Description Moves an animal between available and breeding; all other statuses are owned by the pairing, incubation and sales flows
// @Tags animals
// @Accept  json
// @Produce  json
// @Param   id path string true "Animal ID"
// @Param   status body dto.UpdateAnimalStatusRequest true "Target status"
// @Success 200 {object} dto.AnimalResponse
// @Failure 400 {object} map[string]string "Transition not allowed from current status"
// @Failure 404 {object} map[string]string "Animal not found"
// @Failure 409 {object} map[string]string "Lost a concurrent status race"
// @Failure 500 {object} map[string]string "Failed to update status"
// @Router /animals/{id}/status [patch]
func (h *animalHandler) updateAnimalStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateAnimalStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateAnimalStatus", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor := middleware.GetActorFromRequest(c)
	animal, err := h.animalService.UpdateAnimalStatus(c.Request.Context(), c.Param("id"), req.Status, actor)
	if err != nil {
		respondServiceError(c, err, "Failed to update status")
		return
	}

	logger.Info("Animal status updated", slog.String("animal_id", animal.AnimalID), slog.String("status", string(animal.Status)))
	c.JSON(http.StatusOK, dto.ToAnimalResponse(animal))
}

// deleteAnimal godoc
// @Summary Delete an animal
// @Description Soft-deletes an animal that is not paired, incubating or sold
// @Tags animals
// @Produce  json
// @Param   id path string true "Animal ID"
// @Success 204 "Deleted"
// @Failure 400 {object} map[string]string "Animal still paired, incubating or sold"
// @Failure 404 {object} map[string]string "Animal not found"
// @Failure 500 {object} map[string]string "Failed to delete animal"
// @Router /animals/{id} [delete]
func (h *animalHandler) deleteAnimal(c *gin.Context) {
	actor := middleware.GetActorFromRequest(c)
	if err := h.animalService.DeleteAnimal(c.Request.Context(), c.Param("id"), actor); err != nil {
		respondServiceError(c, err, "Failed to delete animal")
		return
	}
	c.Status(http.StatusNoContent)
}

// getTimeline godoc
// @Summary Get an animal's timeline
// @Description Returns the merged, time-ordered event history for one animal
// @Tags animals
// @Produce  json
// @Param   id path string true "Animal ID"
// @Success 200 {object} dto.TimelineResponse
// @Failure 404 {object} map[string]string "Animal not found"
// @Failure 500 {object} map[string]string "Failed to build timeline"
// @Router /animals/{id}/timeline [get]
func (h *animalHandler) getTimeline(c *gin.Context) {
	animalID := c.Param("id")
	events, err := h.timelineService.BuildTimeline(c.Request.Context(), animalID)
	if err != nil {
		respondServiceError(c, err, "Failed to build timeline")
		return
	}
	c.JSON(http.StatusOK, dto.ToTimelineResponse(animalID, events))
}

// listPhotos godoc
// @Summary List an animal's photos
// @Description Returns photo metadata ordered by sort order
// @Tags animals
// @Produce  json
// @Param   id path string true "Animal ID"
// @Success 200 {array} domain.Photo
// @Failure 500 {object} map[string]string "Failed to list photos"
// @Router /animals/{id}/photos [get]
func (h *animalHandler) listPhotos(c *gin.Context) {
	photos, err := h.photoService.ListPhotos(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to list photos")
		return
	}
	c.JSON(http.StatusOK, photos)
}

func queryInt(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portsrepo "github.com/featherworks/aviary_backend/internal/core/ports/repositories"
	portssvc "github.com/featherworks/aviary_backend/internal/core/ports/services"
	"github.com/featherworks/aviary_backend/internal/dto"
	"github.com/featherworks/aviary_backend/internal/middleware"
)

// salesHandler handles HTTP requests related to the sale/return ledger.
type salesHandler struct {
	salesService portssvc.SalesSvcFacade
	photoService portssvc.PhotoReaderSvc
}

// RegisterSalesRoutes registers routes related to sales.
func RegisterSalesRoutes(rg *gin.RouterGroup, salesService portssvc.SalesSvcFacade, photoService portssvc.PhotoReaderSvc) {
	h := &salesHandler{salesService: salesService, photoService: photoService}

	animals := rg.Group("/animals")
	{
		animals.POST("/:id/sale", h.recordSale)
		animals.POST("/:id/return", h.recordReturn)
		animals.GET("/:id/sale-history", h.listSaleHistory)
	}

	sales := rg.Group("/sales")
	{
		sales.GET("/open", h.listOpenSales)
		sales.GET("/history", h.listAllSaleHistory)
	}
}

// recordSale godoc
// @Summary Record a sale
// @Description Opens a sale cycle on an animal and moves it to sold. Paired, incubating and already-sold animals are rejected.
// @Tags sales
// @Accept  json
// @Produce  json
// @Param   id path string true "Animal ID"
// @Param   sale body dto.RecordSaleRequest true "Sale details"
// @Success 201 {object} dto.AnimalResponse
// @Failure 400 {object} map[string]string "Sale not allowed from current status"
// @Failure 404 {object} map[string]string "Animal not found"
// @Failure 409 {object} map[string]string "Lost a concurrent status race"
// @Failure 500 {object} map[string]string "Failed to record sale"
// @Router /animals/{id}/sale [post]
func (h *salesHandler) recordSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RecordSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordSale", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor := middleware.GetActorFromRequest(c)
	animal, err := h.salesService.RecordSale(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		respondServiceError(c, err, "Failed to record sale")
		return
	}

	c.JSON(http.StatusCreated, dto.ToAnimalResponse(animal))
}

// recordReturn godoc
// @Summary Record a return
// @Description Archives the open sale cycle into the history ledger and resets the animal to available, atomically
// @Tags sales
// @Accept  json
// @Produce  json
// @Param   id path string true "Animal ID"
// @Param   return body dto.RecordReturnRequest true "Return reason"
// @Success 201 {object} dto.SaleHistoryEntryResponse
// @Failure 400 {object} map[string]string "Animal has no open sale"
// @Failure 404 {object} map[string]string "Animal not found"
// @Failure 409 {object} map[string]string "Open sale vanished under a concurrent update"
// @Failure 500 {object} map[string]string "Failed to record return"
// @Router /animals/{id}/return [post]
func (h *salesHandler) recordReturn(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RecordReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordReturn", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor := middleware.GetActorFromRequest(c)
	entry, err := h.salesService.RecordReturn(c.Request.Context(), c.Param("id"), req.Reason, actor)
	if err != nil {
		respondServiceError(c, err, "Failed to record return")
		return
	}

	c.JSON(http.StatusCreated, dto.ToSaleHistoryEntryResponse(entry))
}

// listSaleHistory godoc
// @Summary List an animal's sale history
// @Description Returns the animal's archived sale cycles, newest sale first
// @Tags sales
// @Produce  json
// @Param   id path string true "Animal ID"
// @Success 200 {array} dto.SaleHistoryEntryResponse
// @Failure 404 {object} map[string]string "Animal not found"
// @Failure 500 {object} map[string]string "Failed to list sale history"
// @Router /animals/{id}/sale-history [get]
func (h *salesHandler) listSaleHistory(c *gin.Context) {
	entries, err := h.salesService.ListSaleHistory(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to list sale history")
		return
	}

	items := make([]dto.SaleHistoryEntryResponse, len(entries))
	for i := range entries {
		items[i] = dto.ToSaleHistoryEntryResponse(&entries[i])
	}
	c.JSON(http.StatusOK, items)
}

// listOpenSales godoc
// @Summary List open sales
// @Description Lists currently sold animals filtered by buyer, species or sale date
// @Tags sales
// @Produce  json
// @Param   keyword query string false "Matches buyer name or ring number"
// @Param   species query string false "Species filter"
// @Param   soldFrom query string false "Sold-at lower bound (RFC 3339)"
// @Param   soldTo query string false "Sold-at upper bound (RFC 3339)"
// @Param   limit query int false "Page size"
// @Param   offset query int false "Page offset"
// @Success 200 {object} dto.ListOpenSalesResponse
// @Failure 500 {object} map[string]string "Failed to list open sales"
// @Router /sales/open [get]
func (h *salesHandler) listOpenSales(c *gin.Context) {
	filter := portsrepo.OpenSalesFilter{
		Keyword:  c.Query("keyword"),
		Species:  c.Query("species"),
		SoldFrom: queryTime(c, "soldFrom"),
		SoldTo:   queryTime(c, "soldTo"),
		Limit:    queryInt(c, "limit", 0),
		Offset:   queryInt(c, "offset", 0),
	}

	animals, total, err := h.salesService.ListOpenSales(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, err, "Failed to list open sales")
		return
	}

	items := make([]dto.OpenSaleResponse, len(animals))
	for i := range animals {
		items[i] = dto.ToOpenSaleResponse(&animals[i])
		// Decoration failures are not fatal to the listing.
		if url, err := h.photoService.FirstPhotoURL(c.Request.Context(), animals[i].AnimalID); err == nil {
			items[i].PhotoURL = url
		}
	}
	c.JSON(http.StatusOK, dto.ListOpenSalesResponse{
		Total:  total,
		Items:  items,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	})
}

// listAllSaleHistory godoc
// @Summary List the global sale history
// @Description Returns a filtered page of the append-only ledger
// @Tags sales
// @Produce  json
// @Param   keyword query string false "Matches buyer name"
// @Param   hasReturn query bool false "Filter on returned cycles"
// @Param   limit query int false "Page size"
// @Param   offset query int false "Page offset"
// @Success 200 {object} dto.ListSaleHistoryResponse
// @Failure 500 {object} map[string]string "Failed to list sale history"
// @Router /sales/history [get]
func (h *salesHandler) listAllSaleHistory(c *gin.Context) {
	filter := portsrepo.SaleHistoryFilter{
		Keyword: c.Query("keyword"),
		Limit:   queryInt(c, "limit", 0),
		Offset:  queryInt(c, "offset", 0),
	}
	if raw := c.Query("hasReturn"); raw != "" {
		hasReturn := raw == "true"
		filter.HasReturn = &hasReturn
	}

	entries, total, err := h.salesService.ListAllSaleHistory(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, err, "Failed to list sale history")
		return
	}

	c.JSON(http.StatusOK, dto.ToListSaleHistoryResponse(entries, total, filter.Limit, filter.Offset))
}

func queryTime(c *gin.Context, name string) *time.Time {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil
	}
	return &t
}

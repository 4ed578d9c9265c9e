package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/featherworks/aviary_backend/internal/core/ports/services"
	"github.com/featherworks/aviary_backend/internal/dto"
	"github.com/featherworks/aviary_backend/internal/middleware"
)

// shareHandler handles HTTP requests related to public share links.
type shareHandler struct {
	shareService portssvc.ShareSvcFacade
	shareBaseURL string
}

// RegisterShareRoutes registers the share link management routes and the
// public token resolution route.
func RegisterShareRoutes(rg *gin.RouterGroup, shareService portssvc.ShareSvcFacade, shareBaseURL string) {
	h := &shareHandler{shareService: shareService, shareBaseURL: shareBaseURL}

	animals := rg.Group("/animals")
	{
		animals.POST("/:id/share-links", h.generateShareLink)
		animals.GET("/:id/share-links", h.listShareLinks)
	}

	shareLinks := rg.Group("/share-links")
	{
		shareLinks.DELETE("/:token", h.revokeShareLink)
	}

	// Public, unauthenticated lookup behind the shared URL.
	rg.GET("/share/:token", h.resolveShareLink)
}

// generateShareLink godoc
// @Summary Generate a share link
// @Description Mints a tokenized public link for the animal, valid for seven days
// @Tags share-links
// @Produce  json
// @Param   id path string true "Animal ID"
// @Success 201 {object} dto.ShareLinkResponse
// @Failure 404 {object} map[string]string "Animal not found"
// @Failure 409 {object} map[string]string "Could not allocate a unique token"
// @Failure 500 {object} map[string]string "Failed to generate share link"
// @Router /animals/{id}/share-links [post]
func (h *shareHandler) generateShareLink(c *gin.Context) {
	actor := middleware.GetActorFromRequest(c)
	link, err := h.shareService.GenerateShareLink(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		respondServiceError(c, err, "Failed to generate share link")
		return
	}
	c.JSON(http.StatusCreated, dto.ToShareLinkResponse(link, h.shareBaseURL, time.Now().UTC()))
}

// listShareLinks godoc
// @Summary List an animal's share links
// @Description Returns the animal's unrevoked, unexpired share links, newest first
// @Tags share-links
// @Produce  json
// @Param   id path string true "Animal ID"
// @Success 200 {object} dto.ListShareLinksResponse
// @Failure 404 {object} map[string]string "Animal not found"
// @Failure 500 {object} map[string]string "Failed to list share links"
// @Router /animals/{id}/share-links [get]
func (h *shareHandler) listShareLinks(c *gin.Context) {
	links, err := h.shareService.ListShareLinks(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to list share links")
		return
	}
	c.JSON(http.StatusOK, dto.ToListShareLinksResponse(links, h.shareBaseURL, time.Now().UTC()))
}

// revokeShareLink godoc
// @Summary Revoke a share link
// @Description Invalidates a share link by token; the token stays burned
// @Tags share-links
// @Produce  json
// @Param   token path string true "Share token"
// @Success 204 "Revoked"
// @Failure 404 {object} map[string]string "Share link not found"
// @Failure 500 {object} map[string]string "Failed to revoke share link"
// @Router /share-links/{token} [delete]
func (h *shareHandler) revokeShareLink(c *gin.Context) {
	if err := h.shareService.RevokeShareLink(c.Request.Context(), c.Param("token")); err != nil {
		respondServiceError(c, err, "Failed to revoke share link")
		return
	}
	c.Status(http.StatusNoContent)
}

// resolveShareLink godoc
// @Summary Resolve a share token
// @Description Public lookup behind a shared URL; unknown, revoked or expired tokens resolve with a non-valid status instead of an error
// @Tags share-links
// @Produce  json
// @Param   token path string true "Share token"
// @Success 200 {object} dto.ResolveShareResponse
// @Failure 500 {object} map[string]string "Failed to resolve share link"
// @Router /share/{token} [get]
func (h *shareHandler) resolveShareLink(c *gin.Context) {
	view, err := h.shareService.ResolveShareLink(c.Request.Context(), c.Param("token"))
	if err != nil {
		respondServiceError(c, err, "Failed to resolve share link")
		return
	}
	c.JSON(http.StatusOK, dto.ToResolveShareResponse(view))
}

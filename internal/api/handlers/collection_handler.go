package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"geocentroid/internal/domain/entities"
	"geocentroid/internal/services"
)

type CollectionHandler struct {
	centerService *services.CenterService
}

func NewCollectionHandler(centerService *services.CenterService) *CollectionHandler {
	return &CollectionHandler{
		centerService: centerService,
	}
}

type CreateCollectionRequest struct {
	Name string `json:"name"`
}

// Create handles POST /collections
func (h *CollectionHandler) Create(c *gin.Context) {
	var req CreateCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	collection, err := h.centerService.CreateCollection(c.Request.Context(), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, collection.Summary())
}

// List handles GET /collections
func (h *CollectionHandler) List(c *gin.Context) {
	collections, err := h.centerService.ListCollections(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	summaries := make([]entities.CollectionSummary, len(collections))
	for i, col := range collections {
		summaries[i] = col.Summary()
	}
	c.JSON(http.StatusOK, gin.H{"collections": summaries})
}

// Get handles GET /collections/:id
func (h *CollectionHandler) Get(c *gin.Context) {
	collection, err := h.centerService.GetCollection(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, collection.Summary())
}

// Delete handles DELETE /collections/:id
func (h *CollectionHandler) Delete(c *gin.Context) {
	if err := h.centerService.DeleteCollection(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// AddPoint handles POST /collections/:id/points
func (h *CollectionHandler) AddPoint(c *gin.Context) {
	var req entities.Location
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	point, err := h.centerService.AddPoint(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, point)
}

// Center handles GET /collections/:id/center
func (h *CollectionHandler) Center(c *gin.Context) {
	summary, err := h.centerService.CollectionCenter(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"geocentroid/internal/domain/entities"
	"geocentroid/internal/services"
)

type CenterHandler struct {
	centerService *services.CenterService
}

func NewCenterHandler(centerService *services.CenterService) *CenterHandler {
	return &CenterHandler{
		centerService: centerService,
	}
}

type ComputeCenterRequest struct {
	Points []entities.Location `json:"points"`
}

// ComputeCenter handles POST /centroid
func (h *CenterHandler) ComputeCenter(c *gin.Context) {
	var req ComputeCenterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summary, err := h.centerService.ComputeCenter(c.Request.Context(), req.Points)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/piggypal/piggypal-api/models"
	"github.com/piggypal/piggypal-api/services"
)

type TipHandler struct {
	Service *services.TipService
	WS      *WSHandler
}

func NewTipHandler(service *services.TipService, ws *WSHandler) *TipHandler {
	return &TipHandler{Service: service, WS: ws}
}

// List returns tips narrowed by ?category=, ?q= and ?bookmarked=true. The
// starter catalogue is seeded on first read.
func (h *TipHandler) List(c *gin.Context) {
	tips, err := h.Service.List(
		c.Request.Context(),
		c.Query("category"),
		c.Query("q"),
		c.Query("bookmarked") == "true",
	)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tips": tips})
}

func (h *TipHandler) Create(c *gin.Context) {
	var in models.TipInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tip, err := h.Service.Create(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}

	h.WS.BroadcastUpdate("tips")
	c.JSON(http.StatusCreated, tip)
}

// ToggleBookmark flips the bookmark flag on one tip.
func (h *TipHandler) ToggleBookmark(c *gin.Context) {
	tip, err := h.Service.ToggleBookmark(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	h.WS.BroadcastUpdate("tips")
	c.JSON(http.StatusOK, tip)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/piggypal/piggypal-api/models"
	"github.com/piggypal/piggypal-api/services"
)

type SettingsHandler struct {
	Service *services.SettingsService
	WS      *WSHandler
}

func NewSettingsHandler(service *services.SettingsService, ws *WSHandler) *SettingsHandler {
	return &SettingsHandler{Service: service, WS: ws}
}

func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.Service.Get(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (h *SettingsHandler) Update(c *gin.Context) {
	var in models.Settings
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settings, err := h.Service.Update(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}

	h.WS.BroadcastUpdate("settings")
	c.JSON(http.StatusOK, settings)
}

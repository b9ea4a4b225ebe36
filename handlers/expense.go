package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/piggypal/piggypal-api/models"
	"github.com/piggypal/piggypal-api/services"
)

type ExpenseHandler struct {
	Service *services.ExpenseService
	WS      *WSHandler
}

func NewExpenseHandler(service *services.ExpenseService, ws *WSHandler) *ExpenseHandler {
	return &ExpenseHandler{Service: service, WS: ws}
}

// List returns expenses narrowed by ?period= (week, month, year, all) and
// ?q= substring search, with summary aggregates over the result.
func (h *ExpenseHandler) List(c *gin.Context) {
	period := c.DefaultQuery("period", "all")
	query := c.Query("q")

	expenses, summary, err := h.Service.List(c.Request.Context(), period, query)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"expenses": expenses,
		"summary":  summary,
	})
}

// Create records an expense and returns the fresh collection. Adding to an
// unknown category creates it in the budget, so budget listeners are
// signalled too.
func (h *ExpenseHandler) Create(c *gin.Context) {
	var in models.ExpenseInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	expense, err := h.Service.Add(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}

	expenses, summary, err := h.Service.List(c.Request.Context(), "all", "")
	if err != nil {
		writeError(c, err)
		return
	}

	h.WS.BroadcastUpdate("expenses")
	h.WS.BroadcastUpdate("budget")

	c.JSON(http.StatusCreated, gin.H{
		"expense":  expense,
		"expenses": expenses,
		"summary":  summary,
	})
}

// Update replaces an expense. The budget's spent figures move only when the
// category or the amount changed.
func (h *ExpenseHandler) Update(c *gin.Context) {
	var in models.ExpenseInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	expense, err := h.Service.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		writeError(c, err)
		return
	}

	expenses, summary, err := h.Service.List(c.Request.Context(), "all", "")
	if err != nil {
		writeError(c, err)
		return
	}

	h.WS.BroadcastUpdate("expenses")
	h.WS.BroadcastUpdate("budget")

	c.JSON(http.StatusOK, gin.H{
		"expense":  expense,
		"expenses": expenses,
		"summary":  summary,
	})
}

// Delete removes an expense and reverses its contribution to the budget.
func (h *ExpenseHandler) Delete(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}

	expenses, summary, err := h.Service.List(c.Request.Context(), "all", "")
	if err != nil {
		writeError(c, err)
		return
	}

	h.WS.BroadcastUpdate("expenses")
	h.WS.BroadcastUpdate("budget")

	c.JSON(http.StatusOK, gin.H{
		"expenses": expenses,
		"summary":  summary,
	})
}

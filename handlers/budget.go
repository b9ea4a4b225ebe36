package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/piggypal/piggypal-api/models"
	"github.com/piggypal/piggypal-api/services"
)

type BudgetHandler struct {
	Service *services.BudgetService
	WS      *WSHandler
}

func NewBudgetHandler(service *services.BudgetService, ws *WSHandler) *BudgetHandler {
	return &BudgetHandler{Service: service, WS: ws}
}

// Get returns the budget document with its derived overview.
func (h *BudgetHandler) Get(c *gin.Context) {
	budget, overview, err := h.Service.Get(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"budget":   budget,
		"overview": overview,
	})
}

// CreateCategory adds a category. Names collide case-insensitively.
func (h *BudgetHandler) CreateCategory(c *gin.Context) {
	var in models.CategoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	budget, err := h.Service.UpsertCategory(c.Request.Context(), in, "")
	if err != nil {
		writeError(c, err)
		return
	}

	h.WS.BroadcastUpdate("budget")
	c.JSON(http.StatusCreated, gin.H{
		"budget":   budget,
		"overview": services.Overview(budget),
	})
}

// UpdateCategory edits the category named in the path. A rename relabels
// every expense recorded under the old name.
func (h *BudgetHandler) UpdateCategory(c *gin.Context) {
	var in models.CategoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	budget, err := h.Service.UpsertCategory(c.Request.Context(), in, c.Param("name"))
	if err != nil {
		writeError(c, err)
		return
	}

	h.WS.BroadcastUpdate("budget")
	h.WS.BroadcastUpdate("expenses")
	c.JSON(http.StatusOK, gin.H{
		"budget":   budget,
		"overview": services.Overview(budget),
	})
}

// DeleteCategory removes a category. The client must send ?confirm=true;
// recorded expenses keep their category label.
func (h *BudgetHandler) DeleteCategory(c *gin.Context) {
	if c.Query("confirm") != "true" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Deleting a category requires confirm=true"})
		return
	}

	budget, err := h.Service.DeleteCategory(c.Request.Context(), c.Param("name"))
	if err != nil {
		writeError(c, err)
		return
	}

	h.WS.BroadcastUpdate("budget")
	c.JSON(http.StatusOK, gin.H{
		"budget":   budget,
		"overview": services.Overview(budget),
	})
}

// PlanPreview runs the budget calculator without touching stored state.
func (h *BudgetHandler) PlanPreview(c *gin.Context) {
	var in models.PlanInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, services.ComputePlan(in))
}

// ApplyPlan commits the calculator result, replacing the whole budget.
func (h *BudgetHandler) ApplyPlan(c *gin.Context) {
	var in models.PlanInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	budget, plan, err := h.Service.ApplyPlan(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}

	h.WS.BroadcastUpdate("budget")
	c.JSON(http.StatusOK, gin.H{
		"budget":   budget,
		"plan":     plan,
		"overview": services.Overview(budget),
	})
}

// Recompute rebuilds every category's spent figure from the expense ledger.
func (h *BudgetHandler) Recompute(c *gin.Context) {
	budget, err := h.Service.RecomputeSpent(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	h.WS.BroadcastUpdate("budget")
	c.JSON(http.StatusOK, gin.H{
		"budget":   budget,
		"overview": services.Overview(budget),
	})
}

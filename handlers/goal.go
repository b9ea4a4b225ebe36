package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/piggypal/piggypal-api/models"
	"github.com/piggypal/piggypal-api/services"
)

type GoalHandler struct {
	Service *services.GoalService
	WS      *WSHandler
}

func NewGoalHandler(service *services.GoalService, ws *WSHandler) *GoalHandler {
	return &GoalHandler{Service: service, WS: ws}
}

// List returns goals narrowed by ?q= and ordered by ?sort= (name, amount,
// progress, date, default newest first), plus the summary over every goal.
func (h *GoalHandler) List(c *gin.Context) {
	goals, err := h.Service.List(c.Request.Context(), c.Query("q"), c.Query("sort"))
	if err != nil {
		writeError(c, err)
		return
	}
	summary, err := h.Service.Summary(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"goals":   goals,
		"summary": summary,
	})
}

func (h *GoalHandler) Get(c *gin.Context) {
	goal, err := h.Service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}

func (h *GoalHandler) Create(c *gin.Context) {
	var in models.GoalInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := h.Service.Create(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}

	h.WS.BroadcastUpdate("goals")
	c.JSON(http.StatusCreated, goal)
}

func (h *GoalHandler) Update(c *gin.Context) {
	var in models.GoalUpdate
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := h.Service.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		writeError(c, err)
		return
	}

	h.WS.BroadcastUpdate("goals")
	c.JSON(http.StatusOK, goal)
}

// AddDeposit appends a deposit to the goal in the path and returns the goal
// with its updated ledger.
func (h *GoalHandler) AddDeposit(c *gin.Context) {
	var in models.DepositInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := h.Service.AddDeposit(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		writeError(c, err)
		return
	}

	h.WS.BroadcastUpdate("goals")
	c.JSON(http.StatusCreated, goal)
}

// Milestones returns the cross-goal activity feed, newest first.
func (h *GoalHandler) Milestones(c *gin.Context) {
	milestones, err := h.Service.Milestones(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"milestones": milestones})
}

// Plan runs the required-deposit calculator without touching stored state.
func (h *GoalHandler) Plan(c *gin.Context) {
	var in models.DepositPlanInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := services.PlanDeposits(in, models.Today())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

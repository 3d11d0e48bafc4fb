package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/LPF-24/growly-habit-service/internal/cqrs"
	"github.com/LPF-24/growly-habit-service/internal/httperr"
	"github.com/LPF-24/growly-habit-service/internal/middleware"
	"github.com/LPF-24/growly-habit-service/internal/models"
)

// HabitCommander defines the write-side operations used by HabitHandler.
type HabitCommander interface {
	CreateHabit(cqrs.CreateHabitCommand) (*models.HabitView, error)
	UpdateHabit(cqrs.UpdateHabitCommand) (*models.HabitView, error)
	DeleteHabit(cqrs.DeleteHabitCommand) error
}

// HabitQuerier defines the read-side operations used by HabitHandler.
type HabitQuerier interface {
	GetHabit(cqrs.GetHabitQuery) (*models.HabitView, error)
	ListHabits(cqrs.ListHabitsQuery) ([]models.HabitView, error)
}

// HabitHandler handles habit-related HTTP requests.
type HabitHandler struct {
	commands HabitCommander
	queries  HabitQuerier
}

type CreateHabitRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=255"`
	Description string `json:"description" validate:"omitempty,max=255"`
	Active      *bool  `json:"active"`
}

type UpdateHabitRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=255"`
	Description *string `json:"description" validate:"omitempty,max=255"`
	Active      *bool   `json:"active"`
	PersonID    *int64  `json:"personId"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func NewHabitHandler(commands HabitCommander, queries HabitQuerier) *HabitHandler {
	return &HabitHandler{commands: commands, queries: queries}
}

func habitIDParam(c *gin.Context) (int64, error) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &httperr.ParamError{Param: "id", Value: raw}
	}
	return id, nil
}

func (h *HabitHandler) CreateHabit(c *gin.Context) {
	principal, _ := middleware.GetPrincipal(c)

	var req CreateHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.ErrMalformedBody)
		return
	}
	if validationErr := middleware.ValidateRequest(req); validationErr != nil {
		httperr.Respond(c, validationErr)
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	view, err := h.commands.CreateHabit(cqrs.CreateHabitCommand{
		PersonID:    principal.ID,
		Name:        req.Name,
		Description: req.Description,
		Active:      active,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, view)
}

func (h *HabitHandler) ListHabits(c *gin.Context) {
	principal, _ := middleware.GetPrincipal(c)

	views, err := h.queries.ListHabits(cqrs.ListHabitsQuery{PersonID: principal.ID})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, views)
}

func (h *HabitHandler) GetHabit(c *gin.Context) {
	principal, _ := middleware.GetPrincipal(c)

	habitID, err := habitIDParam(c)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	view, err := h.queries.GetHabit(cqrs.GetHabitQuery{
		HabitID:   habitID,
		Principal: principal,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

func (h *HabitHandler) UpdateHabit(c *gin.Context) {
	principal, _ := middleware.GetPrincipal(c)

	habitID, err := habitIDParam(c)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	var req UpdateHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.ErrMalformedBody)
		return
	}
	if validationErr := middleware.ValidateRequest(req); validationErr != nil {
		httperr.Respond(c, validationErr)
		return
	}

	view, err := h.commands.UpdateHabit(cqrs.UpdateHabitCommand{
		HabitID:     habitID,
		Principal:   principal,
		Name:        req.Name,
		Description: req.Description,
		Active:      req.Active,
		PersonID:    req.PersonID,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

func (h *HabitHandler) DeleteHabit(c *gin.Context) {
	principal, _ := middleware.GetPrincipal(c)

	habitID, err := habitIDParam(c)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	if err := h.commands.DeleteHabit(cqrs.DeleteHabitCommand{
		HabitID:   habitID,
		Principal: principal,
	}); err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Habit with id %d successfully removed.", habitID),
	})
}

package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/habitflow/habitflow-api/internal/application"
	"github.com/habitflow/habitflow-api/internal/domain/entity"
	"github.com/habitflow/habitflow-api/pkg/response"
	"github.com/habitflow/habitflow-api/pkg/validation"
)

type HabitHandler struct {
	Svc    *application.HabitService
	Logger *logrus.Logger
}

func NewHabitHandler(svc *application.HabitService, logger *logrus.Logger) *HabitHandler {
	return &HabitHandler{Svc: svc, Logger: logger}
}

type createHabitRequest struct {
	Name string `json:"name" binding:"required"`
}

func habitPayload(h *entity.Habit) gin.H {
	completions := h.Completions
	if completions == nil {
		completions = []time.Time{}
	}
	return gin.H{
		"id":          h.ID,
		"name":        h.Name,
		"user_id":     h.UserID,
		"completions": completions,
		"created_at":  h.CreatedAt,
	}
}

// Create POST /api/habits
func (h *HabitHandler) Create(c *gin.Context) {
	uid := c.GetString("userID")

	var req createHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	habit, err := h.Svc.Create(c.Request.Context(), uid, req.Name)
	if err != nil {
		if errors.Is(err, application.ErrHabitNameRequired) {
			response.Error(c, http.StatusBadRequest, "habit name is required", nil)
			return
		}
		h.Logger.WithError(err).Error("habit creation failed")
		response.Error(c, http.StatusInternalServerError, "server error creating habit", nil)
		return
	}

	response.Success(c, http.StatusCreated, habitPayload(habit), "habit created")
}

// List GET /api/habits
func (h *HabitHandler) List(c *gin.Context) {
	uid := c.GetString("userID")

	habits, err := h.Svc.List(c.Request.Context(), uid)
	if err != nil {
		h.Logger.WithError(err).Error("habit listing failed")
		response.Error(c, http.StatusInternalServerError, "server error listing habits", nil)
		return
	}

	payload := make([]gin.H, 0, len(habits))
	for _, habit := range habits {
		payload = append(payload, habitPayload(habit))
	}
	response.Success(c, http.StatusOK, payload, "habits")
}

// Complete POST /api/habits/:id/complete
func (h *HabitHandler) Complete(c *gin.Context) {
	uid := c.GetString("userID")
	habitID := c.Param("id")

	habit, err := h.Svc.Complete(c.Request.Context(), habitID, uid, time.Now())
	switch {
	case err == nil:
		response.Success(c, http.StatusOK, habitPayload(habit), "habit completed")
	case errors.Is(err, application.ErrHabitNotFound):
		response.Error(c, http.StatusNotFound, "habit not found", nil)
	case errors.Is(err, application.ErrNotHabitOwner):
		response.Error(c, http.StatusForbidden, "not your habit", nil)
	case errors.Is(err, application.ErrAlreadyCompletedToday):
		response.Error(c, http.StatusConflict, "habit already completed today", nil)
	default:
		h.Logger.WithError(err).Error("habit completion failed")
		response.Error(c, http.StatusInternalServerError, "server error completing habit", nil)
	}
}

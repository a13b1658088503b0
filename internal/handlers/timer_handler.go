package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/studiofade/barber-manager/internal/httperr"
	"github.com/studiofade/barber-manager/internal/middleware"
	"github.com/studiofade/barber-manager/internal/timer"
	usecase "github.com/studiofade/barber-manager/internal/usecase/appointment"
)

type TimerHandler struct {
	startTimer *usecase.StartTimer
	tracker    *timer.Tracker
}

func NewTimerHandler(startTimer *usecase.StartTimer, tracker *timer.Tracker) *TimerHandler {
	return &TimerHandler{
		startTimer: startTimer,
		tracker:    tracker,
	}
}

type StartTimerRequest struct {
	// Alvo em segundos; ausente = duração do serviço do agendamento.
	TargetSeconds int64 `json:"target_seconds"`
}

func (h *TimerHandler) Start(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req StartTimerRequest
	_ = c.ShouldBindJSON(&req) // corpo vazio é válido

	userID := uint(0)
	if v, exists := c.Get(middleware.ContextUserID); exists {
		if uid, ok := v.(uint); ok {
			userID = uid
		}
	}

	snap, err := h.startTimer.Execute(c.Request.Context(), userID, id, req.TargetSeconds)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, snap)
}

func (h *TimerHandler) Pause(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	snap, err := h.tracker.Pause(c.Request.Context(), id)
	if err != nil {
		h.writeTimerError(c, err)
		return
	}

	c.JSON(http.StatusOK, snap)
}

func (h *TimerHandler) Stop(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	if err := h.tracker.Stop(c.Request.Context(), id); err != nil {
		httperr.Internal(c, "timer_store_failure", "Erro ao descartar timer.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"stopped": true})
}

func (h *TimerHandler) Status(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	snap, err := h.tracker.Snapshot(c.Request.Context(), id)
	if err != nil {
		h.writeTimerError(c, err)
		return
	}

	c.JSON(http.StatusOK, snap)
}

func (h *TimerHandler) pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return 0, false
	}
	return uint(id), true
}

func (h *TimerHandler) writeTimerError(c *gin.Context, err error) {
	if errors.Is(err, timer.ErrNotFound) {
		httperr.NotFound(c, "timer_not_found", "Não há timer para esse agendamento.")
		return
	}
	httperr.Internal(c, "timer_store_failure", "Erro ao acessar o timer.")
}

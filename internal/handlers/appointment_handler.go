package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/studiofade/barber-manager/internal/domain/appointment"
	"github.com/studiofade/barber-manager/internal/httperr"
	"github.com/studiofade/barber-manager/internal/httpresp"
	"github.com/studiofade/barber-manager/internal/middleware"
	"github.com/studiofade/barber-manager/internal/refresh"
	"github.com/studiofade/barber-manager/internal/timezone"
	usecase "github.com/studiofade/barber-manager/internal/usecase/appointment"
)

type AppointmentHandler struct {
	create      *usecase.CreateAppointment
	start       *usecase.StartAppointment
	cancel      *usecase.CancelAppointment
	complete    *usecase.CompleteAppointment
	listByDate  *usecase.ListByDate
	listByMonth *usecase.ListByMonth
	notifier    *refresh.Notifier
}

func NewAppointmentHandler(
	create *usecase.CreateAppointment,
	start *usecase.StartAppointment,
	cancel *usecase.CancelAppointment,
	complete *usecase.CompleteAppointment,
	listByDate *usecase.ListByDate,
	listByMonth *usecase.ListByMonth,
	notifier *refresh.Notifier,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:      create,
		start:       start,
		cancel:      cancel,
		complete:    complete,
		listByDate:  listByDate,
		listByMonth: listByMonth,
		notifier:    notifier,
	}
}

// --------- Requests ---------

type CreateAppointmentRequest struct {
	ClientID    *uint  `json:"client_id"`
	ClientName  string `json:"client_name"`
	ClientPhone string `json:"client_phone"`
	ClientEmail string `json:"client_email"`

	ServiceType string   `json:"service_type" binding:"required"`
	Price       *float64 `json:"price"`

	Date  string `json:"date" binding:"required"`
	Time  string `json:"time" binding:"required"`
	Notes string `json:"notes"`
}

type CompleteAppointmentRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required"`
	FinalPrice    string `json:"final_price"`
	Notes         string `json:"notes"`
}

// --------- Handlers ---------

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), usecase.CreateInput{
		ClientID:    req.ClientID,
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
		ClientEmail: req.ClientEmail,
		ServiceType: req.ServiceType,
		Price:       req.Price,
		Date:        req.Date,
		Time:        req.Time,
		Notes:       req.Notes,
		Channel:     domain.ChannelManual,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}

	h.notifier.Invalidate()
	c.JSON(http.StatusCreated, ap)
}

// ListByDate lista os agendamentos de um dia (?date=YYYY-MM-DD, default hoje
// no fuso da barbearia).
func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	loc := timezone.Location(timezone.DefaultTimezone)

	date := timezone.NowIn(timezone.DefaultTimezone)
	if raw := c.Query("date"); raw != "" {
		parsed, err := timezone.ParseDate(raw, loc)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Data inválida, use YYYY-MM-DD.")
			return
		}
		date = parsed
	}

	apps, err := h.listByDate.Execute(c.Request.Context(), date)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	httpresp.List(c, apps)
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	year, errY := strconv.Atoi(c.Query("year"))
	month, errM := strconv.Atoi(c.Query("month"))
	if errY != nil || errM != nil || month < 1 || month > 12 {
		now := time.Now()
		year = now.Year()
		month = int(now.Month())
	}

	apps, err := h.listByMonth.Execute(c.Request.Context(), year, month)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	httpresp.List(c, apps)
}

func (h *AppointmentHandler) Start(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	ap, err := h.start.Execute(c.Request.Context(), h.userID(c), id)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	h.notifier.Invalidate()
	c.JSON(http.StatusOK, ap)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	ap, err := h.cancel.Execute(c.Request.Context(), h.userID(c), id)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	h.notifier.Invalidate()
	c.JSON(http.StatusOK, ap)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req CompleteAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ap, err := h.complete.Execute(c.Request.Context(), h.userID(c), usecase.CompleteInput{
		AppointmentID: id,
		PaymentMethod: req.PaymentMethod,
		FinalPrice:    req.FinalPrice,
		Notes:         req.Notes,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}

	h.notifier.Invalidate()
	c.JSON(http.StatusOK, ap)
}

// --------- Helpers ---------

func (h *AppointmentHandler) pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return 0, false
	}
	return uint(id), true
}

func (h *AppointmentHandler) userID(c *gin.Context) uint {
	if v, ok := c.Get(middleware.ContextUserID); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/studiofade/barber-manager/internal/domain/appointment"
	"github.com/studiofade/barber-manager/internal/httperr"
	"github.com/studiofade/barber-manager/internal/httpresp"
	"github.com/studiofade/barber-manager/internal/models"
	"github.com/studiofade/barber-manager/internal/refresh"
	usecase "github.com/studiofade/barber-manager/internal/usecase/appointment"
)

// PublicHandler serve a vitrine sem autenticação: catálogo ativo e
// auto-agendamento de clientes.
type PublicHandler struct {
	db       *gorm.DB
	create   *usecase.CreateAppointment
	notifier *refresh.Notifier
}

func NewPublicHandler(
	db *gorm.DB,
	create *usecase.CreateAppointment,
	notifier *refresh.Notifier,
) *PublicHandler {
	return &PublicHandler{
		db:       db,
		create:   create,
		notifier: notifier,
	}
}

func (h *PublicHandler) ListServices(c *gin.Context) {
	var services []models.Service
	if err := h.db.
		Where("active = true").
		Order("name ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "persistence_failure", "Erro ao listar serviços.")
		return
	}

	httpresp.List(c, services)
}

type PublicBookingRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	ClientEmail string `json:"client_email"`

	ServiceType string `json:"service_type" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	Notes       string `json:"notes"`
}

// CreateBooking cria um agendamento vindo do link público. Só aceita serviço
// do catálogo ativo; texto livre e preço customizado são exclusivos da agenda
// interna.
func (h *PublicHandler) CreateBooking(c *gin.Context) {
	var req PublicBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), usecase.CreateInput{
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
		ClientEmail: req.ClientEmail,
		ServiceType: req.ServiceType,
		Date:        req.Date,
		Time:        req.Time,
		Notes:       req.Notes,
		Channel:     domain.ChannelExternal,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}

	h.notifier.Invalidate()

	c.JSON(http.StatusCreated, gin.H{
		"booking_ref":  ap.BookingRef,
		"scheduled_at": ap.ScheduledAt,
		"service_type": ap.ServiceType,
		"price":        ap.Price,
	})
}

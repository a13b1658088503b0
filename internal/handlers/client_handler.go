package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/studiofade/barber-manager/internal/httperr"
	"github.com/studiofade/barber-manager/internal/httpresp"
	"github.com/studiofade/barber-manager/internal/metrics"
	"github.com/studiofade/barber-manager/internal/models"
	"github.com/studiofade/barber-manager/internal/search"
)

type ClientHandler struct {
	db *gorm.DB
}

func NewClientHandler(db *gorm.DB) *ClientHandler {
	return &ClientHandler{db: db}
}

// List devolve a carteira de clientes, opcionalmente filtrada por ?q=
// (nome sem acento/caixa ou telefone por dígitos).
func (h *ClientHandler) List(c *gin.Context) {
	var clients []models.Client
	if err := h.db.Order("name ASC").Find(&clients).Error; err != nil {
		httperr.Internal(c, "persistence_failure", "Erro ao listar clientes.")
		return
	}

	if q := strings.TrimSpace(c.Query("q")); q != "" {
		nq := search.Normalize(q)
		filtered := clients[:0]
		for _, cl := range clients {
			if strings.Contains(search.Normalize(cl.Name), nq) ||
				strings.Contains(cl.Phone, q) {
				filtered = append(filtered, cl)
			}
		}
		clients = filtered
	}

	httpresp.List(c, clients)
}

type CreateClientRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
	Email string `json:"email"`
	Notes string `json:"notes"`
}

func (h *ClientHandler) Create(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var count int64
	h.db.Model(&models.Client{}).Where("phone = ?", req.Phone).Count(&count)
	if count > 0 {
		httperr.Conflict(c, "phone_already_registered", "Já existe cliente com esse telefone.")
		return
	}

	client := models.Client{
		Name:  strings.TrimSpace(req.Name),
		Phone: strings.TrimSpace(req.Phone),
		Email: req.Email,
		Notes: req.Notes,
	}

	if err := h.db.Create(&client).Error; err != nil {
		httperr.Internal(c, "persistence_failure", "Erro ao criar cliente.")
		return
	}

	c.JSON(http.StatusCreated, client)
}

type UpdateClientRequest struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
	Email *string `json:"email"`
	Notes *string `json:"notes"`
}

func (h *ClientHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var client models.Client
	if err := h.db.First(&client, uint(id)).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.Name != nil {
		if *req.Name == "" {
			httperr.BadRequest(c, "invalid_request", "Nome não pode ser vazio.")
			return
		}
		client.Name = *req.Name
	}
	if req.Phone != nil && *req.Phone != client.Phone {
		var count int64
		h.db.Model(&models.Client{}).
			Where("phone = ? AND id <> ?", *req.Phone, client.ID).
			Count(&count)
		if count > 0 {
			httperr.Conflict(c, "phone_already_registered", "Já existe cliente com esse telefone.")
			return
		}
		client.Phone = *req.Phone
	}
	if req.Email != nil {
		client.Email = *req.Email
	}
	if req.Notes != nil {
		client.Notes = *req.Notes
	}

	if err := h.db.Save(&client).Error; err != nil {
		httperr.Internal(c, "persistence_failure", "Erro ao salvar cliente.")
		return
	}

	c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var client models.Client
	if err := h.db.First(&client, uint(id)).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
		return
	}

	c.JSON(http.StatusOK, client)
}

// Stats deriva o histórico do cliente direto da base, não do snapshot em
// memória, para a tela de detalhe sempre refletir o último atendimento.
func (h *ClientHandler) Stats(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}
	clientID := uint(id)

	var client models.Client
	if err := h.db.First(&client, clientID).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
		return
	}

	var apps []models.Appointment
	if err := h.db.
		Where("client_id = ?", clientID).
		Order("scheduled_at DESC").
		Find(&apps).Error; err != nil {
		httperr.Internal(c, "persistence_failure", "Erro ao carregar histórico.")
		return
	}

	stats := metrics.StatsForClient(apps, clientID)

	c.JSON(http.StatusOK, gin.H{
		"client":       client,
		"stats":        stats,
		"appointments": apps,
	})
}

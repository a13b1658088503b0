package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/studiofade/barber-manager/internal/httperr"
	"github.com/studiofade/barber-manager/internal/httpresp"
	"github.com/studiofade/barber-manager/internal/models"
)

type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

func (h *ServiceHandler) List(c *gin.Context) {
	query := h.db.Model(&models.Service{})

	if active := c.Query("active"); active != "" {
		query = query.Where("active = ?", active == "true")
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		query = query.Where("name ILIKE ?", "%"+q+"%")
	}

	var services []models.Service
	if err := query.Order("name ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "persistence_failure", "Erro ao listar serviços.")
		return
	}

	httpresp.List(c, services)
}

type CreateServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	DurationMin int     `json:"duration_min"`
	Price       float64 `json:"price"`
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.Price < 0 {
		httperr.BadRequest(c, "invalid_price", "Preço não pode ser negativo.")
		return
	}

	var count int64
	h.db.Model(&models.Service{}).Where("name = ?", req.Name).Count(&count)
	if count > 0 {
		httperr.Conflict(c, "service_already_exists", "Já existe serviço com esse nome.")
		return
	}

	service := models.Service{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		DurationMin: req.DurationMin,
		Price:       req.Price,
		Active:      true,
	}

	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c, "persistence_failure", "Erro ao criar serviço.")
		return
	}

	c.JSON(http.StatusCreated, service)
}

type UpdateServiceRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	DurationMin *int     `json:"duration_min"`
	Price       *float64 `json:"price"`
	Active      *bool    `json:"active"`
}

// Update edita o item de catálogo. Agendamentos já criados guardam snapshot
// de preço e duração e não mudam aqui.
func (h *ServiceHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var service models.Service
	if err := h.db.First(&service, uint(id)).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.Name != nil {
		if *req.Name == "" {
			httperr.BadRequest(c, "invalid_request", "Nome não pode ser vazio.")
			return
		}
		service.Name = *req.Name
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.DurationMin != nil {
		service.DurationMin = *req.DurationMin
	}
	if req.Price != nil {
		if *req.Price < 0 {
			httperr.BadRequest(c, "invalid_price", "Preço não pode ser negativo.")
			return
		}
		service.Price = *req.Price
	}
	if req.Active != nil {
		service.Active = *req.Active
	}

	if err := h.db.Save(&service).Error; err != nil {
		httperr.Internal(c, "persistence_failure", "Erro ao salvar serviço.")
		return
	}

	c.JSON(http.StatusOK, service)
}

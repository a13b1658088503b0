package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/studiofade/barber-manager/internal/httperr"
	"github.com/studiofade/barber-manager/internal/httpresp"
	"github.com/studiofade/barber-manager/internal/models"
)

type PlanHandler struct {
	db *gorm.DB
}

func NewPlanHandler(db *gorm.DB) *PlanHandler {
	return &PlanHandler{db: db}
}

func (h *PlanHandler) List(c *gin.Context) {
	query := h.db.Model(&models.MonthlyPlan{}).Preload("Client")

	if active := c.Query("active"); active != "" {
		query = query.Where("active = ?", active == "true")
	}

	var plans []models.MonthlyPlan
	if err := query.Order("created_at DESC").Find(&plans).Error; err != nil {
		httperr.Internal(c, "persistence_failure", "Erro ao listar planos.")
		return
	}

	httpresp.List(c, plans)
}

type CreatePlanRequest struct {
	ClientID    uint    `json:"client_id" binding:"required"`
	ServiceType string  `json:"service_type" binding:"required"`
	DurationMin int     `json:"duration_min"`
	Price       float64 `json:"price"`
	BillingDay  int     `json:"billing_day" binding:"required"`
}

func (h *PlanHandler) Create(c *gin.Context) {
	var req CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	// Dia 29+ não existe em todo mês; o clamp na renovação cobre isso, mas a
	// entrada fica restrita para evitar surpresa no extrato do cliente.
	if req.BillingDay < 1 || req.BillingDay > 28 {
		httperr.BadRequest(c, "invalid_billing_day", "Dia de cobrança deve estar entre 1 e 28.")
		return
	}
	if req.Price < 0 {
		httperr.BadRequest(c, "invalid_price", "Preço não pode ser negativo.")
		return
	}

	var client models.Client
	if err := h.db.First(&client, req.ClientID).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
		return
	}

	var count int64
	h.db.Model(&models.MonthlyPlan{}).
		Where("client_id = ? AND active = true", req.ClientID).
		Count(&count)
	if count > 0 {
		httperr.Conflict(c, "plan_already_active", "Cliente já tem plano ativo.")
		return
	}

	plan := models.MonthlyPlan{
		ClientID:    req.ClientID,
		ServiceType: req.ServiceType,
		DurationMin: req.DurationMin,
		Price:       req.Price,
		BillingDay:  req.BillingDay,
		Active:      true,
	}

	if err := h.db.Create(&plan).Error; err != nil {
		httperr.Internal(c, "persistence_failure", "Erro ao criar plano.")
		return
	}

	plan.Client = client
	c.JSON(http.StatusCreated, plan)
}

type UpdatePlanRequest struct {
	ServiceType *string  `json:"service_type"`
	DurationMin *int     `json:"duration_min"`
	Price       *float64 `json:"price"`
	BillingDay  *int     `json:"billing_day"`
	Active      *bool    `json:"active"`
}

func (h *PlanHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var plan models.MonthlyPlan
	if err := h.db.First(&plan, uint(id)).Error; err != nil {
		httperr.NotFound(c, "plan_not_found", "Plano não encontrado.")
		return
	}

	var req UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.ServiceType != nil {
		if *req.ServiceType == "" {
			httperr.BadRequest(c, "invalid_request", "Serviço não pode ser vazio.")
			return
		}
		plan.ServiceType = *req.ServiceType
	}
	if req.DurationMin != nil {
		plan.DurationMin = *req.DurationMin
	}
	if req.Price != nil {
		if *req.Price < 0 {
			httperr.BadRequest(c, "invalid_price", "Preço não pode ser negativo.")
			return
		}
		plan.Price = *req.Price
	}
	if req.BillingDay != nil {
		if *req.BillingDay < 1 || *req.BillingDay > 28 {
			httperr.BadRequest(c, "invalid_billing_day", "Dia de cobrança deve estar entre 1 e 28.")
			return
		}
		plan.BillingDay = *req.BillingDay
	}
	if req.Active != nil {
		plan.Active = *req.Active
	}

	if err := h.db.Save(&plan).Error; err != nil {
		httperr.Internal(c, "persistence_failure", "Erro ao salvar plano.")
		return
	}

	c.JSON(http.StatusOK, plan)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/studiofade/barber-manager/internal/httperr"
	"github.com/studiofade/barber-manager/internal/models"
	"github.com/studiofade/barber-manager/internal/timezone"
)

type ShopHandler struct {
	db *gorm.DB
}

func NewShopHandler(db *gorm.DB) *ShopHandler {
	return &ShopHandler{db: db}
}

func (h *ShopHandler) Get(c *gin.Context) {
	var shop models.Shop
	if err := h.db.First(&shop).Error; err != nil {
		httperr.NotFound(c, "shop_not_found", "Perfil da barbearia não encontrado.")
		return
	}

	c.JSON(http.StatusOK, shop)
}

type UpdateShopRequest struct {
	Name     *string `json:"name"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
	Timezone *string `json:"timezone"`
}

func (h *ShopHandler) Update(c *gin.Context) {
	var req UpdateShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var shop models.Shop
	if err := h.db.First(&shop).Error; err != nil {
		httperr.NotFound(c, "shop_not_found", "Perfil da barbearia não encontrado.")
		return
	}

	if req.Name != nil {
		if *req.Name == "" {
			httperr.BadRequest(c, "invalid_request", "Nome não pode ser vazio.")
			return
		}
		shop.Name = *req.Name
	}
	if req.Phone != nil {
		shop.Phone = *req.Phone
	}
	if req.Address != nil {
		shop.Address = *req.Address
	}
	if req.Timezone != nil {
		if !timezone.IsValid(*req.Timezone) {
			httperr.BadRequest(c, "invalid_timezone", "Fuso horário inválido.")
			return
		}
		shop.Timezone = *req.Timezone
	}

	if err := h.db.Save(&shop).Error; err != nil {
		httperr.Internal(c, "persistence_failure", "Erro ao salvar perfil.")
		return
	}

	c.JSON(http.StatusOK, shop)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/studiofade/barber-manager/internal/metrics"
	"github.com/studiofade/barber-manager/internal/models"
	"github.com/studiofade/barber-manager/internal/refresh"
	"github.com/studiofade/barber-manager/internal/timezone"
)

type DashboardHandler struct {
	db        *gorm.DB
	refresher *refresh.Refresher
}

func NewDashboardHandler(db *gorm.DB, refresher *refresh.Refresher) *DashboardHandler {
	return &DashboardHandler{db: db, refresher: refresher}
}

// Get calcula os indicadores do dia sobre o snapshot em memória, usando o
// fuso da barbearia como "agora".
func (h *DashboardHandler) Get(c *gin.Context) {
	var shop models.Shop
	tz := timezone.DefaultTimezone
	if err := h.db.First(&shop).Error; err == nil && shop.Timezone != "" {
		tz = shop.Timezone
	}

	snap := h.refresher.Snapshot()
	now := timezone.NowIn(tz)

	dash := metrics.DashboardMetrics(snap.Appointments, now)

	c.JSON(http.StatusOK, gin.H{
		"metrics":   dash,
		"loaded_at": snap.LoadedAt,
	})
}

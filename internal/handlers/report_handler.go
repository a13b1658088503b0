package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/studiofade/barber-manager/internal/httperr"
	"github.com/studiofade/barber-manager/internal/metrics"
	"github.com/studiofade/barber-manager/internal/models"
	"github.com/studiofade/barber-manager/internal/refresh"
	"github.com/studiofade/barber-manager/internal/timezone"
)

type ReportHandler struct {
	db        *gorm.DB
	refresher *refresh.Refresher
}

func NewReportHandler(db *gorm.DB, refresher *refresh.Refresher) *ReportHandler {
	return &ReportHandler{db: db, refresher: refresher}
}

// Revenue devolve o total do período (?period=today|week|month|year).
func (h *ReportHandler) Revenue(c *gin.Context) {
	period, ok := metrics.ParsePeriod(c.DefaultQuery("period", "month"))
	if !ok {
		httperr.BadRequest(c, "invalid_period", "Período inválido: use today, week, month ou year.")
		return
	}

	snap := h.refresher.Snapshot()
	now := timezone.NowIn(h.shopTimezone())

	total := metrics.PeriodRevenue(snap.Appointments, period, now)

	c.JSON(http.StatusOK, gin.H{
		"period":  period,
		"revenue": metrics.Round2(total),
	})
}

// Breakdown agrupa a receita do período por serviço, forma de pagamento e dia.
func (h *ReportHandler) Breakdown(c *gin.Context) {
	period, ok := metrics.ParsePeriod(c.DefaultQuery("period", "month"))
	if !ok {
		httperr.BadRequest(c, "invalid_period", "Período inválido: use today, week, month ou year.")
		return
	}

	tz := h.shopTimezone()
	snap := h.refresher.Snapshot()
	now := timezone.NowIn(tz)

	breakdown := metrics.RevenueBreakdown(
		snap.Appointments,
		period,
		now,
		timezone.Location(tz),
	)

	c.JSON(http.StatusOK, gin.H{
		"period":    period,
		"breakdown": breakdown,
	})
}

func (h *ReportHandler) shopTimezone() string {
	var shop models.Shop
	if err := h.db.First(&shop).Error; err == nil && shop.Timezone != "" {
		return shop.Timezone
	}
	return timezone.DefaultTimezone
}

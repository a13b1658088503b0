package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	domain "github.com/studiofade/barber-manager/internal/domain/appointment"
	"github.com/studiofade/barber-manager/internal/models"
)

func app(clientID uint, service string, price float64, status domain.Status, at time.Time) models.Appointment {
	var cid *uint
	if clientID != 0 {
		cid = &clientID
	}
	ap := models.Appointment{
		ClientID:    cid,
		ServiceType: service,
		Price:       price,
		Status:      string(status),
		ScheduledAt: at,
	}
	if status == domain.StatusCompleted {
		method := "cash"
		ap.PaymentMethod = &method
		done := at
		ap.CompletedAt = &done
	}
	return ap
}

var noon = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func TestRevenueEmptyCollection(t *testing.T) {
	assert.Equal(t, 0.0, TodayRevenue(nil, noon))
	assert.Equal(t, 0.0, WeeklyRevenue(nil, noon))
	assert.Equal(t, 0.0, MonthlyRevenue(nil, noon))
}

func TestTodayRevenueOnlyCompletedToday(t *testing.T) {
	apps := []models.Appointment{
		app(1, "Corte", 50, domain.StatusCompleted, noon),
		app(1, "Barba", 30, domain.StatusCompleted, noon.Add(2*time.Hour)),
		app(2, "Corte", 40, domain.StatusCancelled, noon),
		app(2, "Corte", 40, domain.StatusScheduled, noon),
		app(2, "Corte", 99, domain.StatusCompleted, noon.AddDate(0, 0, -1)),
	}

	assert.Equal(t, 80.0, TodayRevenue(apps, noon))
}

func TestWeeklyRevenueIsRollingWindow(t *testing.T) {
	apps := []models.Appointment{
		app(1, "Corte", 50, domain.StatusCompleted, noon.AddDate(0, 0, -6)),
		app(1, "Corte", 30, domain.StatusCompleted, noon.AddDate(0, 0, -8)),
	}

	// 7 dias rolantes, não semana de calendário
	assert.Equal(t, 50.0, WeeklyRevenue(apps, noon))
}

func TestDashboardMetrics(t *testing.T) {
	apps := []models.Appointment{
		app(1, "Corte", 50, domain.StatusCompleted, noon),
		app(2, "Barba", 30, domain.StatusScheduled, noon.Add(3*time.Hour)),
		app(3, "Corte", 40, domain.StatusCancelled, noon),
		app(4, "Corte", 25, domain.StatusCompleted, noon.AddDate(0, 0, -3)),
	}

	d := DashboardMetrics(apps, noon)

	assert.Equal(t, 50.0, d.TodayRevenue)
	assert.Equal(t, 3, d.TodayAppointments)
	assert.Equal(t, 1, d.CompletedToday)
	assert.Equal(t, 1, d.ScheduledToday)
	assert.Equal(t, 75.0, d.WeeklyRevenue)
	assert.Equal(t, 75.0, d.MonthlyRevenue)
}

func TestStatsForClient(t *testing.T) {
	apps := []models.Appointment{
		app(7, "Corte", 50, domain.StatusCompleted, noon.AddDate(0, 0, -10)),
		app(7, "Corte", 30, domain.StatusCompleted, noon.AddDate(0, 0, -2)),
		app(7, "Barba", 40, domain.StatusCancelled, noon.AddDate(0, 0, -1)),
		app(9, "Corte", 99, domain.StatusCompleted, noon),
	}

	stats := StatsForClient(apps, 7)

	assert.Equal(t, 3, stats.TotalAppointments)
	assert.Equal(t, 2, stats.CompletedAppointments)
	assert.Equal(t, 80.0, stats.TotalSpent)
	assert.NotNil(t, stats.LastVisit)
	assert.Equal(t, noon.AddDate(0, 0, -2), *stats.LastVisit)
	assert.Equal(t, "Corte", stats.FavoriteService)
}

func TestFavoriteServiceCountsAllStatusesFirstSeenWinsTies(t *testing.T) {
	apps := []models.Appointment{
		app(7, "Barba", 30, domain.StatusCancelled, noon),
		app(7, "Corte", 50, domain.StatusCompleted, noon),
	}

	// empate 1x1: fica com o primeiro visto na coleção
	stats := StatsForClient(apps, 7)
	assert.Equal(t, "Barba", stats.FavoriteService)
}

func TestStatsForUnknownClient(t *testing.T) {
	apps := []models.Appointment{
		app(1, "Corte", 50, domain.StatusCompleted, noon),
	}

	stats := StatsForClient(apps, 42)
	assert.Equal(t, 0, stats.TotalAppointments)
	assert.Equal(t, 0.0, stats.TotalSpent)
	assert.Nil(t, stats.LastVisit)
	assert.Empty(t, stats.FavoriteService)
}

func TestRevenueBreakdownGroups(t *testing.T) {
	apps := []models.Appointment{
		app(1, "Corte", 50, domain.StatusCompleted, noon),
		app(2, "Corte", 50, domain.StatusCompleted, noon.AddDate(0, 0, -1)),
		app(3, "Barba", 25, domain.StatusCompleted, noon),
		app(4, "Corte", 99, domain.StatusCancelled, noon),
	}

	b := RevenueBreakdown(apps, PeriodMonth, noon, time.UTC)

	assert.Equal(t, 125.0, b.TotalRevenue)

	assert.Len(t, b.ByService, 2)
	assert.Equal(t, "Corte", b.ByService[0].Label)
	assert.Equal(t, 100.0, b.ByService[0].Revenue)
	assert.Equal(t, 80.0, b.ByService[0].Percentage)
	assert.Equal(t, "Barba", b.ByService[1].Label)
	assert.Equal(t, 20.0, b.ByService[1].Percentage)

	assert.Len(t, b.Daily, 2)
	assert.Equal(t, "2026-03-09", b.Daily[0].Date)
	assert.Equal(t, "2026-03-10", b.Daily[1].Date)
}

func TestRevenueBreakdownZeroTotalHasZeroPercentages(t *testing.T) {
	apps := []models.Appointment{
		app(1, "Corte", 0, domain.StatusCompleted, noon),
	}

	b := RevenueBreakdown(apps, PeriodMonth, noon, time.UTC)

	assert.Equal(t, 0.0, b.TotalRevenue)
	for _, entry := range b.ByService {
		assert.Equal(t, 0.0, entry.Percentage)
	}
}

func TestParsePeriod(t *testing.T) {
	for _, valid := range []string{"today", "week", "month", "year"} {
		_, ok := ParsePeriod(valid)
		assert.True(t, ok, valid)
	}

	_, ok := ParsePeriod("quarter")
	assert.False(t, ok)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 0.3, Round2(0.1+0.2))
	assert.Equal(t, 19.99, Round2(19.994))
	assert.Equal(t, 50.0, Round2(49.999999999999))
}

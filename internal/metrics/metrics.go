// Package metrics agrega receita e estatísticas sobre uma coleção de
// agendamentos já carregada em memória. Todas as funções são puras: podem ser
// reavaliadas a qualquer momento contra um snapshot novo ou velho.
//
// Somas acumulam sem arredondamento intermediário; Round2 é aplicado apenas
// nos valores de saída.
package metrics

import (
	"math"
	"sort"
	"time"

	domain "github.com/studiofade/barber-manager/internal/domain/appointment"
	"github.com/studiofade/barber-manager/internal/models"
)

// ===============================
// Periods
// ===============================

type Period string

const (
	PeriodToday Period = "today"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

func ParsePeriod(s string) (Period, bool) {
	switch Period(s) {
	case PeriodToday, PeriodWeek, PeriodMonth, PeriodYear:
		return Period(s), true
	}
	return "", false
}

// Window devolve os limites [start, end] do período terminando em now.
// "week" é uma janela rolante de 7 dias, não semana de calendário.
func (p Period) Window(now time.Time) (time.Time, time.Time) {
	switch p {
	case PeriodWeek:
		return now.AddDate(0, 0, -7), now
	case PeriodMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), now
	case PeriodYear:
		return time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location()), now
	default: // today
		start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		return start, start.Add(24*time.Hour - time.Nanosecond)
	}
}

// ===============================
// Revenue windows
// ===============================

func inWindow(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

func isCompleted(ap *models.Appointment) bool {
	return ap.Status == string(domain.StatusCompleted)
}

// RevenueInWindow soma o preço dos agendamentos concluídos com scheduled_at
// dentro de [start, end], inclusivo nas duas pontas.
func RevenueInWindow(apps []models.Appointment, start, end time.Time) float64 {
	var total float64
	for i := range apps {
		if isCompleted(&apps[i]) && inWindow(apps[i].ScheduledAt, start, end) {
			total += apps[i].Price
		}
	}
	return total
}

func TodayRevenue(apps []models.Appointment, now time.Time) float64 {
	return PeriodRevenue(apps, PeriodToday, now)
}

func WeeklyRevenue(apps []models.Appointment, now time.Time) float64 {
	return PeriodRevenue(apps, PeriodWeek, now)
}

func MonthlyRevenue(apps []models.Appointment, now time.Time) float64 {
	return PeriodRevenue(apps, PeriodMonth, now)
}

func PeriodRevenue(apps []models.Appointment, p Period, now time.Time) float64 {
	start, end := p.Window(now)
	return RevenueInWindow(apps, start, end)
}

// ===============================
// Dashboard
// ===============================

type Dashboard struct {
	TodayRevenue      float64 `json:"today_revenue"`
	TodayAppointments int     `json:"today_appointments"`
	WeeklyRevenue     float64 `json:"weekly_revenue"`
	MonthlyRevenue    float64 `json:"monthly_revenue"`
	CompletedToday    int     `json:"completed_today"`
	ScheduledToday    int     `json:"scheduled_today"`
}

// DashboardMetrics percorre a coleção uma única vez para o recorte de hoje e
// reaproveita as janelas semanais/mensais.
func DashboardMetrics(apps []models.Appointment, now time.Time) Dashboard {
	dayStart, dayEnd := PeriodToday.Window(now)
	weekStart, weekEnd := PeriodWeek.Window(now)
	monthStart, monthEnd := PeriodMonth.Window(now)

	var d Dashboard
	var todayRevenue, weekRevenue, monthRevenue float64

	for i := range apps {
		ap := &apps[i]
		completed := isCompleted(ap)

		if inWindow(ap.ScheduledAt, dayStart, dayEnd) {
			d.TodayAppointments++
			switch ap.Status {
			case string(domain.StatusCompleted):
				d.CompletedToday++
				todayRevenue += ap.Price
			case string(domain.StatusScheduled):
				d.ScheduledToday++
			}
		}

		if completed && inWindow(ap.ScheduledAt, weekStart, weekEnd) {
			weekRevenue += ap.Price
		}
		if completed && inWindow(ap.ScheduledAt, monthStart, monthEnd) {
			monthRevenue += ap.Price
		}
	}

	d.TodayRevenue = Round2(todayRevenue)
	d.WeeklyRevenue = Round2(weekRevenue)
	d.MonthlyRevenue = Round2(monthRevenue)
	return d
}

// ===============================
// Client stats
// ===============================

type ClientStats struct {
	TotalAppointments     int        `json:"total_appointments"`
	CompletedAppointments int        `json:"completed_appointments"`
	TotalSpent            float64    `json:"total_spent"`
	LastVisit             *time.Time `json:"last_visit"`
	FavoriteService       string     `json:"favorite_service"`
}

// StatsForClient deriva os agregados de um cliente a partir da coleção.
// FavoriteService conta TODOS os agendamentos do cliente (não só concluídos);
// empate fica com o serviço visto primeiro na coleção.
func StatsForClient(apps []models.Appointment, clientID uint) ClientStats {
	var stats ClientStats

	serviceCounts := make(map[string]int)
	favoriteCount := 0

	for i := range apps {
		ap := &apps[i]
		if ap.ClientID == nil || *ap.ClientID != clientID {
			continue
		}

		stats.TotalAppointments++

		serviceCounts[ap.ServiceType]++
		if serviceCounts[ap.ServiceType] > favoriteCount {
			favoriteCount = serviceCounts[ap.ServiceType]
			stats.FavoriteService = ap.ServiceType
		}

		if !isCompleted(ap) {
			continue
		}

		stats.CompletedAppointments++
		stats.TotalSpent += ap.Price

		if stats.LastVisit == nil || ap.ScheduledAt.After(*stats.LastVisit) {
			visit := ap.ScheduledAt
			stats.LastVisit = &visit
		}
	}

	stats.TotalSpent = Round2(stats.TotalSpent)
	return stats
}

// ===============================
// Revenue breakdown
// ===============================

type BreakdownEntry struct {
	Label      string  `json:"label"`
	Count      int     `json:"count"`
	Revenue    float64 `json:"revenue"`
	Percentage float64 `json:"percentage"`
}

type DailyPoint struct {
	Date    string  `json:"date"` // YYYY-MM-DD no fuso de exibição
	Revenue float64 `json:"revenue"`
}

type Breakdown struct {
	TotalRevenue    float64          `json:"total_revenue"`
	ByService       []BreakdownEntry `json:"by_service"`
	ByPaymentMethod []BreakdownEntry `json:"by_payment_method"`
	Daily           []DailyPoint     `json:"daily"`
}

// RevenueBreakdown agrupa os concluídos do período por serviço, forma de
// pagamento e dia de calendário. Percentuais saem 0 quando a receita total é
// zero, nunca NaN.
func RevenueBreakdown(
	apps []models.Appointment,
	p Period,
	now time.Time,
	loc *time.Location,
) Breakdown {

	start, end := p.Window(now)

	byService := make(map[string]*BreakdownEntry)
	byPayment := make(map[string]*BreakdownEntry)
	byDay := make(map[string]float64)

	var total float64

	for i := range apps {
		ap := &apps[i]
		if !isCompleted(ap) || !inWindow(ap.ScheduledAt, start, end) {
			continue
		}

		total += ap.Price

		svc := byService[ap.ServiceType]
		if svc == nil {
			svc = &BreakdownEntry{Label: ap.ServiceType}
			byService[ap.ServiceType] = svc
		}
		svc.Count++
		svc.Revenue += ap.Price

		method := ""
		if ap.PaymentMethod != nil {
			method = *ap.PaymentMethod
		}
		pay := byPayment[method]
		if pay == nil {
			pay = &BreakdownEntry{Label: method}
			byPayment[method] = pay
		}
		pay.Count++
		pay.Revenue += ap.Price

		day := ap.ScheduledAt.In(loc).Format("2006-01-02")
		byDay[day] += ap.Price
	}

	out := Breakdown{
		TotalRevenue:    Round2(total),
		ByService:       flatten(byService, total),
		ByPaymentMethod: flatten(byPayment, total),
		Daily:           dailySeries(byDay),
	}
	return out
}

func flatten(groups map[string]*BreakdownEntry, total float64) []BreakdownEntry {
	out := make([]BreakdownEntry, 0, len(groups))
	for _, entry := range groups {
		e := *entry
		if total > 0 {
			e.Percentage = Round2(e.Revenue / total * 100)
		}
		e.Revenue = Round2(e.Revenue)
		out = append(out, e)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Revenue != out[j].Revenue {
			return out[i].Revenue > out[j].Revenue
		}
		return out[i].Label < out[j].Label
	})
	return out
}

func dailySeries(byDay map[string]float64) []DailyPoint {
	out := make([]DailyPoint, 0, len(byDay))
	for day, revenue := range byDay {
		out = append(out, DailyPoint{Date: day, Revenue: Round2(revenue)})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// Round2 arredonda para 2 casas decimais (exibição).
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

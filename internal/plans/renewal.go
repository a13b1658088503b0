// Package plans renova planos mensais: no dia de cobrança de cada plano ativo
// um novo agendamento "scheduled" é criado com o snapshot de serviço/preço do
// plano.
package plans

import (
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"github.com/studiofade/barber-manager/internal/audit"
	domain "github.com/studiofade/barber-manager/internal/domain/appointment"
	"github.com/studiofade/barber-manager/internal/models"
	"github.com/studiofade/barber-manager/internal/timezone"
)

// Horário padrão do atendimento criado pela renovação.
const renewalHour = 9

type RenewalService struct {
	db    *gorm.DB
	audit *audit.Dispatcher
	clock func() time.Time
}

func NewRenewalService(db *gorm.DB, dispatcher *audit.Dispatcher) *RenewalService {
	return &RenewalService{
		db:    db,
		audit: dispatcher,
		clock: nil, // resolvido em RenewDue pelo fuso da barbearia
	}
}

// Register agenda a varredura diária no cron compartilhado.
func (s *RenewalService) Register(c *cron.Cron) error {
	_, err := c.AddFunc("0 6 * * *", s.RenewDue)
	return err
}

// RenewDue varre os planos ativos e renova os vencidos hoje. Falhas
// individuais são logadas e puladas; não há retry dentro do ciclo.
func (s *RenewalService) RenewDue() {
	now := s.now()

	var due []models.MonthlyPlan
	if err := s.db.Where("active = ?", true).Find(&due).Error; err != nil {
		log.Printf("plans: listing active plans: %v", err)
		return
	}

	renewed := 0
	for i := range due {
		plan := &due[i]
		if !DueOn(plan, now) {
			continue
		}

		if err := s.renew(plan, now); err != nil {
			log.Printf("plans: renewing plan %d: %v", plan.ID, err)
			continue
		}
		renewed++
	}

	if renewed > 0 {
		log.Printf("plans: renewed %d plan(s)", renewed)
	}
}

func (s *RenewalService) renew(plan *models.MonthlyPlan, now time.Time) error {
	scheduledAt := time.Date(
		now.Year(), now.Month(), now.Day(),
		renewalHour, 0, 0, 0,
		now.Location(),
	)

	ap, err := domain.New(domain.NewInput{
		ClientID:    &plan.ClientID,
		ScheduledAt: scheduledAt,
		ServiceType: plan.ServiceType,
		DurationMin: plan.DurationMin,
		Price:       plan.Price,
		Channel:     domain.ChannelManual,
		Notes:       "plano mensal",
	})
	if err != nil {
		return err
	}
	ap.BookingRef = uuid.NewString()

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(ap).Error; err != nil {
			return err
		}

		plan.LastRenewedAt = &now
		if err := tx.Save(plan).Error; err != nil {
			return err
		}

		s.audit.Dispatch(audit.Event{
			Action:   "plan_renewed",
			Entity:   "monthly_plan",
			EntityID: &plan.ID,
			Metadata: map[string]any{"appointment_id": ap.ID},
		})
		return nil
	})
}

func (s *RenewalService) now() time.Time {
	if s.clock != nil {
		return s.clock()
	}

	var shop models.Shop
	tz := timezone.DefaultTimezone
	if err := s.db.First(&shop).Error; err == nil && shop.Timezone != "" {
		tz = shop.Timezone
	}
	return timezone.NowIn(tz)
}

// DueOn decide se o plano vence em now: ativo, dia de cobrança já alcançado
// neste mês (dias 29-31 colapsam para o último dia do mês) e ainda não
// renovado no mês corrente.
func DueOn(plan *models.MonthlyPlan, now time.Time) bool {
	if !plan.Active {
		return false
	}

	day := plan.BillingDay
	if day < 1 {
		return false
	}
	if last := lastDayOfMonth(now); day > last {
		day = last
	}

	if now.Day() < day {
		return false
	}

	if plan.LastRenewedAt != nil {
		r := plan.LastRenewedAt.In(now.Location())
		if r.Year() == now.Year() && r.Month() == now.Month() {
			return false
		}
	}

	return true
}

func lastDayOfMonth(t time.Time) int {
	firstNext := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).AddDate(0, 1, 0)
	return firstNext.AddDate(0, 0, -1).Day()
}

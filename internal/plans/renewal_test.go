package plans

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/studiofade/barber-manager/internal/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 10, 0, 0, 0, time.UTC)
}

func TestDueOnBeforeBillingDay(t *testing.T) {
	plan := &models.MonthlyPlan{Active: true, BillingDay: 15}
	assert.False(t, DueOn(plan, day(2026, 3, 14)))
}

func TestDueOnAtAndAfterBillingDay(t *testing.T) {
	plan := &models.MonthlyPlan{Active: true, BillingDay: 15}
	assert.True(t, DueOn(plan, day(2026, 3, 15)))
	assert.True(t, DueOn(plan, day(2026, 3, 20)))
}

func TestDueOnInactivePlan(t *testing.T) {
	plan := &models.MonthlyPlan{Active: false, BillingDay: 1}
	assert.False(t, DueOn(plan, day(2026, 3, 20)))
}

func TestDueOnOncePerMonth(t *testing.T) {
	renewed := day(2026, 3, 15)
	plan := &models.MonthlyPlan{
		Active:        true,
		BillingDay:    15,
		LastRenewedAt: &renewed,
	}

	assert.False(t, DueOn(plan, day(2026, 3, 20)))

	// mês seguinte vence de novo
	assert.True(t, DueOn(plan, day(2026, 4, 15)))
}

func TestDueOnClampsToShortMonth(t *testing.T) {
	// dia 31 em fevereiro colapsa para o último dia do mês
	plan := &models.MonthlyPlan{Active: true, BillingDay: 31}

	assert.False(t, DueOn(plan, day(2026, 2, 27)))
	assert.True(t, DueOn(plan, day(2026, 2, 28)))
}

func TestDueOnInvalidBillingDay(t *testing.T) {
	plan := &models.MonthlyPlan{Active: true, BillingDay: 0}
	assert.False(t, DueOn(plan, day(2026, 3, 20)))
}

package appointment

import (
	"context"
	"time"

	domain "github.com/studiofade/barber-manager/internal/domain/appointment"
	"github.com/studiofade/barber-manager/internal/models"
	"github.com/studiofade/barber-manager/internal/timezone"
)

type ListByMonth struct {
	repo domain.Repository
}

func NewListByMonth(repo domain.Repository) *ListByMonth {
	return &ListByMonth{repo: repo}
}

func (uc *ListByMonth) Execute(
	ctx context.Context,
	year int,
	month int,
) ([]models.Appointment, error) {

	shop, err := uc.repo.GetShop(ctx)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(shop.Timezone)
	start, end := timezone.MonthWindow(year, time.Month(month), loc)

	return uc.repo.ListAppointmentsForPeriod(ctx, start, end)
}

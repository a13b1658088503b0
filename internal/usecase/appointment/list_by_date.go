package appointment

import (
	"context"
	"time"

	domain "github.com/studiofade/barber-manager/internal/domain/appointment"
	"github.com/studiofade/barber-manager/internal/models"
	"github.com/studiofade/barber-manager/internal/timezone"
)

type ListByDate struct {
	repo domain.Repository
}

func NewListByDate(repo domain.Repository) *ListByDate {
	return &ListByDate{repo: repo}
}

func (uc *ListByDate) Execute(
	ctx context.Context,
	date time.Time,
) ([]models.Appointment, error) {

	start, end := timezone.DayWindow(date)

	return uc.repo.ListAppointmentsForPeriod(ctx, start, end)
}

package appointment

import (
	"context"

	"github.com/studiofade/barber-manager/internal/audit"
	domain "github.com/studiofade/barber-manager/internal/domain/appointment"
	"github.com/studiofade/barber-manager/internal/models"
	"github.com/studiofade/barber-manager/internal/timezone"
)

type StartAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewStartAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *StartAppointment {
	return &StartAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *StartAppointment) Execute(
	ctx context.Context,
	userID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	shop, err := uc.repo.GetShop(ctx)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(shop.Timezone)
	if err := domain.Start(ap, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "appointment_started",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

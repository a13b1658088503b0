package appointment

import (
	"context"
	"log"

	"github.com/studiofade/barber-manager/internal/audit"
	domain "github.com/studiofade/barber-manager/internal/domain/appointment"
	"github.com/studiofade/barber-manager/internal/models"
	"github.com/studiofade/barber-manager/internal/timer"
	"github.com/studiofade/barber-manager/internal/timezone"
)

type CancelAppointment struct {
	repo    domain.Repository
	tracker *timer.Tracker
	audit   *audit.Dispatcher
}

func NewCancelAppointment(
	repo domain.Repository,
	tracker *timer.Tracker,
	audit *audit.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:    repo,
		tracker: tracker,
		audit:   audit,
	}
}

func (uc *CancelAppointment) Execute(
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
	if err := domain.Cancel(ap, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// Agendamento finalizado: estado de timer remanescente é lixo.
	if err := uc.tracker.Stop(ctx, ap.ID); err != nil {
		log.Printf("cancel: clearing timer for appointment %d: %v", ap.ID, err)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

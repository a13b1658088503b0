package appointment

import (
	"context"

	"github.com/studiofade/barber-manager/internal/audit"
	domain "github.com/studiofade/barber-manager/internal/domain/appointment"
	"github.com/studiofade/barber-manager/internal/httperr"
	"github.com/studiofade/barber-manager/internal/timer"
	"github.com/studiofade/barber-manager/internal/timezone"
)

// Alvo usado quando o agendamento não tem duração de catálogo.
const defaultTargetSeconds = 30 * 60

// StartTimer liga o cronômetro de atendimento. Ligar o timer sempre inicia o
// agendamento: se ainda está em "scheduled" a transição para "in_progress"
// acontece aqui; se já está "in_progress" o timer apenas cria/retoma.
type StartTimer struct {
	repo    domain.Repository
	tracker *timer.Tracker
	audit   *audit.Dispatcher
}

func NewStartTimer(
	repo domain.Repository,
	tracker *timer.Tracker,
	audit *audit.Dispatcher,
) *StartTimer {
	return &StartTimer{
		repo:    repo,
		tracker: tracker,
		audit:   audit,
	}
}

func (uc *StartTimer) Execute(
	ctx context.Context,
	userID uint,
	appointmentID uint,
	targetSeconds int64,
) (*timer.Snapshot, error) {

	shop, err := uc.repo.GetShop(ctx)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if domain.Status(ap.Status).Terminal() {
		return nil, httperr.ErrBusiness("appointment_finalized")
	}

	if ap.Status == string(domain.StatusScheduled) {
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
			Metadata: map[string]any{"via": "timer"},
		})
	}

	if targetSeconds <= 0 {
		targetSeconds = int64(ap.DurationMin) * 60
	}
	if targetSeconds <= 0 {
		targetSeconds = defaultTargetSeconds
	}

	return uc.tracker.Start(ctx, ap.ID, targetSeconds)
}

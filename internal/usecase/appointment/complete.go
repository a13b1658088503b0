package appointment

import (
	"context"
	"log"

	"github.com/studiofade/barber-manager/internal/audit"
	domain "github.com/studiofade/barber-manager/internal/domain/appointment"
	"github.com/studiofade/barber-manager/internal/metrics"
	"github.com/studiofade/barber-manager/internal/models"
	"github.com/studiofade/barber-manager/internal/timer"
	"github.com/studiofade/barber-manager/internal/timezone"
)

type CompleteInput struct {
	AppointmentID uint
	PaymentMethod string
	FinalPrice    string // vazio = mantém o preço original
	Notes         string
}

type CompleteAppointment struct {
	repo    domain.Repository
	tracker *timer.Tracker
	audit   *audit.Dispatcher
}

func NewCompleteAppointment(
	repo domain.Repository,
	tracker *timer.Tracker,
	audit *audit.Dispatcher,
) *CompleteAppointment {
	return &CompleteAppointment{
		repo:    repo,
		tracker: tracker,
		audit:   audit,
	}
}

func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	userID uint,
	in CompleteInput,
) (*models.Appointment, error) {

	shop, err := uc.repo.GetShop(ctx)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointment(ctx, in.AppointmentID)
	if err != nil {
		return nil, err
	}

	method, err := domain.ParsePaymentMethod(in.PaymentMethod)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(shop.Timezone)
	if err := domain.Complete(ap, method, in.FinalPrice, in.Notes, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	if err := uc.tracker.Stop(ctx, ap.ID); err != nil {
		log.Printf("complete: clearing timer for appointment %d: %v", ap.ID, err)
	}

	if ap.ClientID != nil {
		if err := uc.refreshClientAggregates(ctx, *ap.ClientID); err != nil {
			log.Printf("complete: refreshing client %d aggregates: %v", *ap.ClientID, err)
		}
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "appointment_completed",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"payment_method": in.PaymentMethod,
			"price":          ap.Price,
		},
	})

	return ap, nil
}

// refreshClientAggregates recalcula os contadores derivados do cliente a
// partir do histórico completo, em vez de incrementar no lugar.
func (uc *CompleteAppointment) refreshClientAggregates(
	ctx context.Context,
	clientID uint,
) error {

	apps, err := uc.repo.ListAppointmentsForClient(ctx, clientID)
	if err != nil {
		return err
	}

	client, err := uc.repo.GetClientByID(ctx, clientID)
	if err != nil {
		return err
	}

	stats := metrics.StatsForClient(apps, clientID)
	client.TotalVisits = stats.CompletedAppointments
	client.TotalSpent = stats.TotalSpent
	client.LastVisitAt = stats.LastVisit

	return uc.repo.UpdateClient(ctx, client)
}

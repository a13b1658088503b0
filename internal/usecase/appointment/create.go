package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/studiofade/barber-manager/internal/audit"
	domain "github.com/studiofade/barber-manager/internal/domain/appointment"
	"github.com/studiofade/barber-manager/internal/httperr"
	"github.com/studiofade/barber-manager/internal/models"
	"github.com/studiofade/barber-manager/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateInput struct {
	// Cliente existente, ou dados para get-or-create por telefone.
	// Os dois ausentes = walk-in sem cadastro.
	ClientID    *uint
	ClientName  string
	ClientPhone string
	ClientEmail string

	// Nome do serviço no catálogo, ou texto livre (aí o preço é obrigatório).
	ServiceType string
	Price       *float64

	Date  string // YYYY-MM-DD
	Time  string // HH:mm
	Notes string

	Channel domain.Channel
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateInput,
) (*models.Appointment, error) {

	shop, err := uc.repo.GetShop(ctx)
	if err != nil {
		return nil, err
	}

	scheduledAt, err := timezone.ParseDateTime(
		in.Date,
		in.Time,
		timezone.Location(shop.Timezone),
	)
	if err != nil {
		return nil, &domain.ValidationError{
			Field:  "scheduled_at",
			Reason: "missing or unparseable",
		}
	}

	// Snapshot do catálogo: preço e duração congelados na criação.
	price := 0.0
	durationMin := 0
	if service, svcErr := uc.repo.GetActiveServiceByName(ctx, in.ServiceType); svcErr == nil {
		price = service.Price
		durationMin = service.DurationMin
	} else if !httperr.IsBusiness(svcErr, "service_not_found") {
		return nil, svcErr
	} else if in.Price == nil {
		// serviço de texto livre exige preço explícito
		return nil, svcErr
	}
	if in.Price != nil {
		price = *in.Price
	}

	clientID := in.ClientID
	if clientID == nil && in.ClientPhone != "" {
		client, err := uc.repo.GetOrCreateClient(
			ctx,
			in.ClientName,
			in.ClientPhone,
			in.ClientEmail,
		)
		if err != nil {
			return nil, err
		}
		clientID = &client.ID
	} else if clientID != nil {
		if _, err := uc.repo.GetClientByID(ctx, *clientID); err != nil {
			return nil, err
		}
	}

	ap, err := domain.New(domain.NewInput{
		ClientID:    clientID,
		ScheduledAt: scheduledAt,
		ServiceType: in.ServiceType,
		DurationMin: durationMin,
		Price:       price,
		Channel:     in.Channel,
		Notes:       in.Notes,
	})
	if err != nil {
		return nil, err
	}

	ap.BookingRef = uuid.NewString()

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"channel": ap.Channel},
	})

	return ap, nil
}

package appointment

import (
	"strings"
	"time"

	"github.com/studiofade/barber-manager/internal/models"
)

// ===============================
// Domain Actions
// ===============================

type NewInput struct {
	ClientID    *uint
	ScheduledAt time.Time
	ServiceType string
	DurationMin int
	Price       float64
	Channel     Channel
	Notes       string
}

// New valida a entrada e monta um agendamento em "scheduled".
func New(in NewInput) (*models.Appointment, error) {
	if in.ScheduledAt.IsZero() {
		return nil, &ValidationError{Field: "scheduled_at", Reason: "missing or unparseable"}
	}
	if strings.TrimSpace(in.ServiceType) == "" {
		return nil, &ValidationError{Field: "service_type", Reason: "required"}
	}
	if in.Price < 0 {
		return nil, &ValidationError{Field: "price", Reason: "must not be negative"}
	}

	channel := in.Channel
	if channel == "" {
		channel = ChannelManual
	}

	return &models.Appointment{
		ClientID:    in.ClientID,
		ScheduledAt: in.ScheduledAt,
		ServiceType: strings.TrimSpace(in.ServiceType),
		DurationMin: in.DurationMin,
		Price:       in.Price,
		Status:      string(InitialStatus()),
		Channel:     string(channel),
		Notes:       in.Notes,
	}, nil
}

func Start(ap *models.Appointment, now time.Time) error {
	if err := CanStart(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusInProgress)
	ap.StartedAt = &now
	return nil
}

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

// Complete finaliza o atendimento: resolve o preço cobrado, grava a forma de
// pagamento e marca completed_at. Toda validação acontece antes de qualquer
// mutação; em caso de erro o agendamento permanece intocado.
func Complete(
	ap *models.Appointment,
	method PaymentMethod,
	finalPrice string,
	notes string,
	now time.Time,
) error {

	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	if _, err := ParsePaymentMethod(string(method)); err != nil {
		return err
	}

	price, err := ResolveFinalPrice(ap.Price, finalPrice)
	if err != nil {
		return err
	}

	m := string(method)
	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	ap.PaymentMethod = &m
	ap.Price = price
	if notes != "" {
		ap.Notes = notes
	}

	return nil
}

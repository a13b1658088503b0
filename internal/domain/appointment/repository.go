package appointment

import (
	"context"
	"time"

	"github.com/studiofade/barber-manager/internal/models"
)

type Repository interface {
	// -------- Shop --------
	GetShop(ctx context.Context) (*models.Shop, error)

	// -------- Service catalog --------
	GetActiveServiceByName(
		ctx context.Context,
		name string,
	) (*models.Service, error)

	// -------- Client --------
	GetClientByID(
		ctx context.Context,
		id uint,
	) (*models.Client, error)

	GetOrCreateClient(
		ctx context.Context,
		name string,
		phone string,
		email string,
	) (*models.Client, error)

	UpdateClient(
		ctx context.Context,
		client *models.Client,
	) error

	// -------- Appointment --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	ListAppointmentsForPeriod(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	ListAppointmentsForClient(
		ctx context.Context,
		clientID uint,
	) ([]models.Appointment, error)
}

package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	domain "github.com/studiofade/barber-manager/internal/domain/appointment"
	"github.com/studiofade/barber-manager/internal/httperr"
	"github.com/studiofade/barber-manager/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Shop
// --------------------------------------------------

func (r *AppointmentGormRepository) GetShop(
	ctx context.Context,
) (*models.Shop, error) {

	var shop models.Shop
	if err := r.db.WithContext(ctx).First(&shop).Error; err != nil {
		return nil, fmt.Errorf("load shop: %w", err)
	}
	return &shop, nil
}

// --------------------------------------------------
// Service catalog
// --------------------------------------------------

func (r *AppointmentGormRepository) GetActiveServiceByName(
	ctx context.Context,
	name string,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).
		Where("name = ? AND active = true", name).
		First(&service).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("service_not_found")
		}
		return nil, fmt.Errorf("load service: %w", err)
	}
	return &service, nil
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *AppointmentGormRepository) GetClientByID(
	ctx context.Context,
	id uint,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).First(&client, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("client_not_found")
		}
		return nil, fmt.Errorf("load client: %w", err)
	}
	return &client, nil
}

func (r *AppointmentGormRepository) GetOrCreateClient(
	ctx context.Context,
	name string,
	phone string,
	email string,
) (*models.Client, error) {

	var client models.Client
	err := r.db.WithContext(ctx).
		Where("phone = ?", phone).
		First(&client).Error

	if err == nil {
		return &client, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("lookup client: %w", err)
	}

	client = models.Client{
		Name:  name,
		Phone: phone,
		Email: email,
	}

	if err := r.db.WithContext(ctx).Create(&client).Error; err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}

	return &client, nil
}

func (r *AppointmentGormRepository) UpdateClient(
	ctx context.Context,
	client *models.Client,
) error {
	if err := r.db.WithContext(ctx).Save(client).Error; err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	return nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	if err := r.db.WithContext(ctx).Create(ap).Error; err != nil {
		return fmt.Errorf("create appointment: %w", err)
	}
	return nil
}

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		First(&ap, id).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("appointment_not_found")
		}
		return nil, fmt.Errorf("load appointment: %w", err)
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	if err := r.db.WithContext(ctx).Save(ap).Error; err != nil {
		return fmt.Errorf("update appointment: %w", err)
	}
	return nil
}

func (r *AppointmentGormRepository) ListAppointmentsForPeriod(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment

	err := r.db.WithContext(ctx).
		Preload("Client").
		Where(
			"scheduled_at >= ? AND scheduled_at < ?",
			start,
			end,
		).
		Order("scheduled_at ASC").
		Find(&apps).Error

	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}

	return apps, nil
}

func (r *AppointmentGormRepository) ListAppointmentsForClient(
	ctx context.Context,
	clientID uint,
) ([]models.Appointment, error) {

	var apps []models.Appointment

	err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("scheduled_at ASC").
		Find(&apps).Error

	if err != nil {
		return nil, fmt.Errorf("list client appointments: %w", err)
	}

	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)

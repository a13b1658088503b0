package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// ClientID nulo = atendimento walk-in, sem cadastro.
	ClientID *uint   `json:"client_id"`
	Client   *Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client,omitempty"`

	BookingRef string `gorm:"size:36;uniqueIndex" json:"booking_ref"`

	ScheduledAt time.Time `json:"scheduled_at"`

	// Snapshot do catálogo no momento da criação.
	ServiceType string  `gorm:"size:100;not null" json:"service_type"`
	DurationMin int     `json:"duration_min"`
	Price       float64 `json:"price"`

	Status        string  `gorm:"size:20;default:'scheduled'" json:"status"`
	PaymentMethod *string `gorm:"size:20" json:"payment_method"`
	Channel       string  `gorm:"size:20;default:'manual'" json:"channel"`

	Notes string `gorm:"size:255" json:"notes"`

	StartedAt   *time.Time `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at"`
	CancelledAt *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

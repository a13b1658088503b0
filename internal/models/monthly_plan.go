package models

import "time"

// MonthlyPlan é um plano recorrente: todo mês, no dia de cobrança, um novo
// agendamento é criado automaticamente para o cliente.
type MonthlyPlan struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	ServiceType string  `gorm:"size:100;not null" json:"service_type"`
	DurationMin int     `json:"duration_min"`
	Price       float64 `json:"price"`

	// Dia do mês (1..28) em que o plano renova.
	BillingDay int  `json:"billing_day"`
	Active     bool `gorm:"default:true" json:"active"`

	LastRenewedAt *time.Time `json:"last_renewed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

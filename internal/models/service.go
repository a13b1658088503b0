package models

import "time"

// Service é um item do catálogo. Name é a chave de exibição usada para
// resolver preço e duração no momento do agendamento; agendamentos antigos
// guardam snapshot por valor e não são afetados por edições posteriores.
type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string  `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Description string  `gorm:"size:255" json:"description"`
	DurationMin int     `json:"duration_min"`
	Price       float64 `json:"price"`
	Active      bool    `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

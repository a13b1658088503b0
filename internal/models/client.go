package models

import "time"

// Cliente simples, sem login. Telefone é a chave natural de identificação.
// TotalVisits / TotalSpent / LastVisitAt são agregados derivados, recalculados
// quando um atendimento é concluído.
type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Phone string `gorm:"size:20;uniqueIndex" json:"phone"`
	Email string `gorm:"size:100" json:"email"`
	Notes string `gorm:"size:500" json:"notes"`

	TotalVisits int        `json:"total_visits"`
	TotalSpent  float64    `json:"total_spent"`
	LastVisitAt *time.Time `json:"last_visit_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

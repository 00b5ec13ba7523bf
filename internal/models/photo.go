package models

import "time"

// Imutável depois de criada: o upload gera o registro e nada o atualiza.
type Photo struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	ProfessionalID uint   `gorm:"index;not null" json:"professional_id"`
	URL            string `gorm:"size:255;not null" json:"url"`

	CreatedAt time.Time `json:"created_at"`
}

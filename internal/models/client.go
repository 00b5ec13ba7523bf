package models

import "time"

// Cliente tem login próprio, mas não possui galeria de fotos.
type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name     string `gorm:"size:100;not null" json:"name"`
	Whatsapp string `gorm:"size:20;not null" json:"whatsapp"`

	ProfilePhoto string `gorm:"size:255" json:"profilePhoto"`

	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

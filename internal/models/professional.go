package models

import "time"

type Professional struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Profession  string `gorm:"size:100;not null" json:"profession"`
	Specialties string `gorm:"size:255;not null" json:"specialties"`
	Whatsapp    string `gorm:"size:20;not null" json:"whatsapp"`
	Instagram   string `gorm:"size:100" json:"instagram"`
	Address     string `gorm:"size:255" json:"address"`
	Bio         string `gorm:"type:text" json:"bio"`

	ProfilePhoto string `gorm:"size:255" json:"profilePhoto"`

	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	Photos []Photo `gorm:"constraint:OnDelete:CASCADE;" json:"photos,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

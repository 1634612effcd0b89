package models

import "time"

type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	Price       float64 `gorm:"type:numeric(10,2)" json:"price"`
	DurationMin int     `gorm:"not null;default:30" json:"duration"`

	// admin que cadastrou o serviço
	UserID *uint `json:"user_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

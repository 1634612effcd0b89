package models

import "time"

const (
	RoleAdmin  = "admin"
	RoleBarber = "barbeiro"
	RoleClient = "cliente"
)

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Phone        string `gorm:"size:20;not null" json:"phone"`
	Avatar       string `gorm:"size:255" json:"avatar"`
	Role         string `gorm:"size:20;not null;default:'cliente'" json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) IsBarber() bool {
	return u.Role == RoleBarber
}

func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleBarber, RoleClient:
		return true
	}
	return false
}

package dto

import "github.com/BruksfildServices01/barbershop-booking/internal/models"

// UserDTO nunca expõe o hash da senha.
type UserDTO struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Role   string `json:"role"`
	Avatar string `json:"avatar,omitempty"`
}

func User(u *models.User) UserDTO {
	return UserDTO{
		ID:     u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Phone:  u.Phone,
		Role:   u.Role,
		Avatar: u.Avatar,
	}
}

func Users(list []models.User) []UserDTO {
	out := make([]UserDTO, 0, len(list))
	for i := range list {
		out = append(out, User(&list[i]))
	}
	return out
}

package dto

import "github.com/BruksfildServices01/laundry-marketplace/internal/models"

type UserDTO struct {
	ID    uint        `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Phone string      `json:"phone,omitempty"`
	Role  models.Role `json:"role"`
}

type ProfileDTO struct {
	UserDTO
	Addresses []string `json:"addresses"`
}

func UserFromModel(u *models.User) UserDTO {
	return UserDTO{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Phone: u.Phone,
		Role:  u.Role,
	}
}

package dto

import "github.com/RoyceAzure/lab/storefront/internal/infra/repository/db/model"

type UserDTO struct {
	UserID uint   `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

type ProfileResponse struct {
	User  UserDTO  `json:"user"`
	Roles []string `json:"roles"`
}

type AddAddressDTO struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
	IsDefault  bool   `json:"is_default"`
}

func ConvertUserToDTO(user *model.User) UserDTO {
	return UserDTO{
		UserID: user.UserID,
		Name:   user.Name,
		Email:  user.Email,
	}
}

package handler

import (
	"encoding/json"
	"net/http"

	"github.com/RoyceAzure/lab/storefront/internal/api"
	"github.com/RoyceAzure/lab/storefront/internal/api/dto"
	"github.com/RoyceAzure/lab/storefront/internal/apperr"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db/model"
	"github.com/RoyceAzure/lab/storefront/internal/service"
	"github.com/RoyceAzure/lab/storefront/internal/util"
)

type UserHandler struct {
	userService service.IUserService
}

func NewUserHandler(userService service.IUserService) *UserHandler {
	if userService == nil {
		panic("userService cannot be nil")
	}
	return &UserHandler{
		userService: userService,
	}
}

func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	payload, err := util.GetAuthPayloadFromContext(r.Context())
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}

	user, roles, err := h.userService.GetProfile(r.Context(), payload.UserID)
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}

	api.SuccessJSON(w, dto.ProfileResponse{
		User:  dto.ConvertUserToDTO(user),
		Roles: roles,
	})
}

func (h *UserHandler) GetAddresses(w http.ResponseWriter, r *http.Request) {
	payload, err := util.GetAuthPayloadFromContext(r.Context())
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}

	addresses, err := h.userService.GetAddresses(r.Context(), payload.UserID)
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}
	api.SuccessJSON(w, addresses)
}

func (h *UserHandler) AddAddress(w http.ResponseWriter, r *http.Request) {
	payload, err := util.GetAuthPayloadFromContext(r.Context())
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}

	var addressDTO dto.AddAddressDTO
	if err := json.NewDecoder(r.Body).Decode(&addressDTO); err != nil {
		api.ErrorJSON(w, apperr.New(apperr.BadRequestCode, "invalid request body"))
		return
	}

	created, err := h.userService.AddAddress(r.Context(), payload.UserID, &model.Address{
		Street:     addressDTO.Street,
		City:       addressDTO.City,
		State:      addressDTO.State,
		PostalCode: addressDTO.PostalCode,
		Country:    addressDTO.Country,
		IsDefault:  addressDTO.IsDefault,
	})
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}
	api.CreatedJSON(w, created)
}

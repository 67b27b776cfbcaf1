package handler

import (
	"encoding/json"
	"net/http"

	"github.com/RoyceAzure/lab/storefront/internal/api"
	"github.com/RoyceAzure/lab/storefront/internal/api/dto"
	"github.com/RoyceAzure/lab/storefront/internal/apperr"
	"github.com/RoyceAzure/lab/storefront/internal/constants"
	"github.com/RoyceAzure/lab/storefront/internal/service"
)

type AuthHandler struct {
	authService service.IAuthService
}

func NewAuthHandler(authService service.IAuthService) *AuthHandler {
	if authService == nil {
		panic("authService cannot be nil")
	}
	return &AuthHandler{
		authService: authService,
	}
}

// Register 註冊新用戶
func (a *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var registerDTO dto.RegisterDTO
	if err := json.NewDecoder(r.Body).Decode(&registerDTO); err != nil {
		api.ErrorJSON(w, apperr.New(apperr.BadRequestCode, "invalid request body"))
		return
	}

	user, err := a.authService.Register(r.Context(), registerDTO.Name, registerDTO.Email, registerDTO.Password)
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}

	api.CreatedJSON(w, dto.ConvertUserToDTO(user))
}

// Login 用帳密換取 access token
func (a *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var loginDTO dto.LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&loginDTO); err != nil {
		api.ErrorJSON(w, apperr.New(apperr.BadRequestCode, "invalid request body"))
		return
	}

	token, user, roles, err := a.authService.Login(r.Context(), loginDTO.Email, loginDTO.Password)
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}

	api.SuccessJSON(w, dto.LoginResponse{
		AccessToken: token,
		ExpiresIn:   int(constants.AccessTokenDuration.Seconds()),
		User:        dto.ConvertUserToDTO(user),
		Roles:       roles,
	})
}

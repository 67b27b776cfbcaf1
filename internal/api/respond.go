package api

import (
	"encoding/json"
	"net/http"

	"github.com/RoyceAzure/lab/storefront/internal/apperr"
)

// Response 成功回應的統一格式
type Response struct {
	Data any `json:"data"`
}

// ResponseError 失敗回應的統一格式
type ResponseError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func SuccessJSON(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, Response{Data: data})
}

func CreatedJSON(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusCreated, Response{Data: data})
}

// ErrorJSON maps any error onto the error envelope; non AppError values
// surface as internal_error without leaking their message.
func ErrorJSON(w http.ResponseWriter, err error) {
	appErr := apperr.From(err)
	writeJSON(w, apperr.HTTPStatus(appErr.Code), ResponseError{
		Code:    string(appErr.Code),
		Message: appErr.Message,
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

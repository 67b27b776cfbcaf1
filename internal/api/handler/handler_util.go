package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/RoyceAzure/lab/storefront/internal/apperr"
)

// parseUintParam 從 URL path 取出正整數參數
func parseUintParam(r *http.Request, name string) (uint, error) {
	raw := chi.URLParam(r, name)
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, apperr.New(apperr.BadRequestCode, "invalid "+name)
	}
	return uint(value), nil
}

// parseUintQuery 從 query string 取出正整數參數
func parseUintQuery(r *http.Request, name string) (uint, error) {
	raw := r.URL.Query().Get(name)
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, apperr.New(apperr.BadRequestCode, "invalid "+name)
	}
	return uint(value), nil
}

func parseIntQuery(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperr.New(apperr.BadRequestCode, "invalid "+name)
	}
	return value, nil
}

package middleware

import (
	"net/http"

	"github.com/RoyceAzure/lab/storefront/internal/api"
	"github.com/RoyceAzure/lab/storefront/internal/apperr"
	"github.com/RoyceAzure/lab/storefront/internal/constants"
	"github.com/RoyceAzure/lab/storefront/internal/infra/auth"
)

// AuthMiddleware 驗證ctx是否有token payload
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok := r.Context().Value(constants.AuthorizationPayloadKey).(*auth.Payload)
		if !ok {
			api.ErrorJSON(w, apperr.New(apperr.UnauthenticatedCode, "unauthenticated"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// AdminMiddleware 驗證payload帶有管理員角色,要掛在 AuthMiddleware 之後
func AdminMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		payload, ok := r.Context().Value(constants.AuthorizationPayloadKey).(*auth.Payload)
		if !ok {
			api.ErrorJSON(w, apperr.New(apperr.UnauthenticatedCode, "unauthenticated"))
			return
		}
		if !payload.HasRole(constants.RoleAdmin) {
			api.ErrorJSON(w, apperr.New(apperr.UnauthorizedCode, "admin role required"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

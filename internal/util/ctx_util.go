package util

import (
	"context"

	"github.com/RoyceAzure/lab/storefront/internal/apperr"
	"github.com/RoyceAzure/lab/storefront/internal/constants"
	"github.com/RoyceAzure/lab/storefront/internal/infra/auth"
)

// GetAuthPayloadFromContext 從請求上下文中獲取已驗證的 token payload
//
// 參數:
//   - ctx: 包含認證資訊的上下文
//
// 返回值:
//   - *auth.Payload: 已驗證的 token 內容
//
// 錯誤:
//   - 若上下文中沒有認證資訊則返回 unauthenticated 錯誤
func GetAuthPayloadFromContext(ctx context.Context) (*auth.Payload, error) {
	payload, ok := ctx.Value(constants.AuthorizationPayloadKey).(*auth.Payload)
	if !ok || payload == nil {
		return nil, apperr.New(apperr.UnauthenticatedCode, "missing authorization payload")
	}
	return payload, nil
}

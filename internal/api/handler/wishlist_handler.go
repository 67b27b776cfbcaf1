package handler

import (
	"net/http"

	"github.com/RoyceAzure/lab/storefront/internal/api"
	"github.com/RoyceAzure/lab/storefront/internal/service"
	"github.com/RoyceAzure/lab/storefront/internal/util"
)

type WishlistHandler struct {
	wishlistService service.IWishlistService
}

func NewWishlistHandler(wishlistService service.IWishlistService) *WishlistHandler {
	if wishlistService == nil {
		panic("wishlistService cannot be nil")
	}
	return &WishlistHandler{
		wishlistService: wishlistService,
	}
}

func (h *WishlistHandler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	payload, err := util.GetAuthPayloadFromContext(r.Context())
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}
	wishlist, err := h.wishlistService.GetWishlist(r.Context(), payload.UserID)
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}
	api.SuccessJSON(w, wishlist)
}

// AddToWishlist 加入商品, 重複加入回傳現有清單
func (h *WishlistHandler) AddToWishlist(w http.ResponseWriter, r *http.Request) {
	payload, err := util.GetAuthPayloadFromContext(r.Context())
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}
	productID, err := parseUintQuery(r, "productId")
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}

	wishlist, err := h.wishlistService.AddToWishlist(r.Context(), payload.UserID, productID)
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}
	api.SuccessJSON(w, wishlist)
}

func (h *WishlistHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	payload, err := util.GetAuthPayloadFromContext(r.Context())
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}
	itemID, err := parseUintParam(r, "itemId")
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}

	wishlist, err := h.wishlistService.RemoveItem(r.Context(), payload.UserID, itemID)
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}
	api.SuccessJSON(w, wishlist)
}

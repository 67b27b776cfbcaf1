package handler

import (
	"net/http"

	"github.com/RoyceAzure/lab/storefront/internal/api"
	"github.com/RoyceAzure/lab/storefront/internal/service"
	"github.com/RoyceAzure/lab/storefront/internal/util"
)

type CartHandler struct {
	cartService service.ICartService
}

func NewCartHandler(cartService service.ICartService) *CartHandler {
	if cartService == nil {
		panic("cartService cannot be nil")
	}
	return &CartHandler{
		cartService: cartService,
	}
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	payload, err := util.GetAuthPayloadFromContext(r.Context())
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}
	cart, err := h.cartService.GetCart(r.Context(), payload.UserID)
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}
	api.SuccessJSON(w, cart)
}

// AddToCart 加入商品到購物車, productId 與 quantity 走 query string
func (h *CartHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
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
	quantity, err := parseIntQuery(r, "quantity")
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}

	cart, err := h.cartService.AddToCart(r.Context(), payload.UserID, productID, quantity)
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}
	api.SuccessJSON(w, cart)
}

func (h *CartHandler) UpdateItemQuantity(w http.ResponseWriter, r *http.Request) {
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
	quantity, err := parseIntQuery(r, "quantity")
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}

	cart, err := h.cartService.UpdateItemQuantity(r.Context(), payload.UserID, itemID, quantity)
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}
	api.SuccessJSON(w, cart)
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
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

	cart, err := h.cartService.RemoveItem(r.Context(), payload.UserID, itemID)
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}
	api.SuccessJSON(w, cart)
}

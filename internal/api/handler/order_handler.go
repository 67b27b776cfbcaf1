package handler

import (
	"encoding/json"
	"net/http"

	"github.com/RoyceAzure/lab/storefront/internal/api"
	"github.com/RoyceAzure/lab/storefront/internal/api/dto"
	"github.com/RoyceAzure/lab/storefront/internal/apperr"
	"github.com/RoyceAzure/lab/storefront/internal/service"
	"github.com/RoyceAzure/lab/storefront/internal/util"
)

type OrderHandler struct {
	orderService service.IOrderService
}

func NewOrderHandler(orderService service.IOrderService) *OrderHandler {
	if orderService == nil {
		panic("orderService cannot be nil")
	}
	return &OrderHandler{
		orderService: orderService,
	}
}

// PlaceOrder 結帳,將購物車轉成訂單
func (h *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	payload, err := util.GetAuthPayloadFromContext(r.Context())
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}

	var orderDTO dto.PlaceOrderDTO
	if err := json.NewDecoder(r.Body).Decode(&orderDTO); err != nil {
		api.ErrorJSON(w, apperr.New(apperr.BadRequestCode, "invalid request body"))
		return
	}

	order, err := h.orderService.PlaceOrder(r.Context(), payload.UserID, service.PlaceOrderParams{
		AddressID:            orderDTO.AddressID,
		ShippingFullName:     orderDTO.ShippingFullName,
		ShippingAddressLine1: orderDTO.ShippingAddressLine1,
		ShippingAddressLine2: orderDTO.ShippingAddressLine2,
		ShippingCity:         orderDTO.ShippingCity,
		ShippingState:        orderDTO.ShippingState,
		ShippingPostalCode:   orderDTO.ShippingPostalCode,
		ShippingCountry:      orderDTO.ShippingCountry,
		ShippingPhone:        orderDTO.ShippingPhone,
		PaymentMethod:        orderDTO.PaymentMethod,
	})
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}
	api.CreatedJSON(w, order)
}

func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	payload, err := util.GetAuthPayloadFromContext(r.Context())
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}
	orders, err := h.orderService.GetUserOrders(r.Context(), payload.UserID)
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}
	api.SuccessJSON(w, orders)
}

func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	payload, err := util.GetAuthPayloadFromContext(r.Context())
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}
	orderID, err := parseUintParam(r, "id")
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}
	order, err := h.orderService.GetOrder(r.Context(), payload.UserID, orderID)
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}
	api.SuccessJSON(w, order)
}

func (h *OrderHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	payload, err := util.GetAuthPayloadFromContext(r.Context())
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}
	orderID, err := parseUintParam(r, "id")
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}
	order, err := h.orderService.CancelOrder(r.Context(), payload.UserID, orderID)
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}
	api.SuccessJSON(w, order)
}

// ListAllOrders 管理端列出所有訂單
func (h *OrderHandler) ListAllOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderService.GetAllOrders(r.Context())
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}
	api.SuccessJSON(w, orders)
}

// UpdateOrderStatus 管理端設定訂單狀態
func (h *OrderHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderID, err := parseUintParam(r, "id")
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}
	var statusDTO dto.UpdateOrderStatusDTO
	if err := json.NewDecoder(r.Body).Decode(&statusDTO); err != nil {
		api.ErrorJSON(w, apperr.New(apperr.BadRequestCode, "invalid request body"))
		return
	}
	order, err := h.orderService.UpdateOrderStatus(r.Context(), orderID, statusDTO.Status)
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}
	api.SuccessJSON(w, order)
}

// CancelOrderAdmin 管理端取消訂單
func (h *OrderHandler) CancelOrderAdmin(w http.ResponseWriter, r *http.Request) {
	orderID, err := parseUintParam(r, "id")
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}
	order, err := h.orderService.CancelOrderAdmin(r.Context(), orderID)
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}
	api.SuccessJSON(w, order)
}

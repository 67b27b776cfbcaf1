package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/RoyceAzure/lab/storefront/internal/apperr"
	"github.com/RoyceAzure/lab/storefront/internal/constants"
	"github.com/RoyceAzure/lab/storefront/internal/infra/producer"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db/model"
)

// PlaceOrderParams carries the checkout payload. The shipping fields are
// copied verbatim into the order snapshot.
type PlaceOrderParams struct {
	AddressID            *uint
	ShippingFullName     string
	ShippingAddressLine1 string
	ShippingAddressLine2 string
	ShippingCity         string
	ShippingState        string
	ShippingPostalCode   string
	ShippingCountry      string
	ShippingPhone        string
	PaymentMethod        string
}

type IOrderService interface {
	PlaceOrder(ctx context.Context, userID uint, params PlaceOrderParams) (*model.Order, error)
	GetUserOrders(ctx context.Context, userID uint) ([]model.Order, error)
	GetOrder(ctx context.Context, userID, orderID uint) (*model.Order, error)
	CancelOrder(ctx context.Context, userID, orderID uint) (*model.Order, error)
	GetAllOrders(ctx context.Context) ([]model.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID uint, status string) (*model.Order, error)
	CancelOrderAdmin(ctx context.Context, orderID uint) (*model.Order, error)
}

type OrderService struct {
	dbDao    db.UnifiedStore
	producer producer.OrderProducer
}

func NewOrderService(dbDao db.UnifiedStore, orderProducer producer.OrderProducer) IOrderService {
	return &OrderService{
		dbDao:    dbDao,
		producer: orderProducer,
	}
}

// PlaceOrder 將購物車轉成訂單。訂單、明細、付款與清空購物車在同一個交易內完成。
func (s *OrderService) PlaceOrder(ctx context.Context, userID uint, params PlaceOrderParams) (*model.Order, error) {
	if params.PaymentMethod == "" {
		return nil, apperr.New(apperr.BadRequestCode, "payment method is required")
	}

	var order *model.Order
	err := s.dbDao.ExecTx(ctx, func(store db.UnifiedStore) error {
		if _, err := store.GetUserByID(ctx, userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.New(apperr.NotFoundCode, "user not found")
			}
			return apperr.Wrap(apperr.InternalErrorCode, "failed to load user", err)
		}

		cart, err := store.GetCartByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.New(apperr.InvalidStateCode, "cart is empty")
			}
			return apperr.Wrap(apperr.InternalErrorCode, "failed to load cart", err)
		}
		if len(cart.Items) == 0 {
			return apperr.New(apperr.InvalidStateCode, "cart is empty")
		}

		// 明細以商品當前價格結算,不是加入購物車時的價格
		total := decimal.Zero
		items := make([]model.OrderItem, 0, len(cart.Items))
		for _, line := range cart.Items {
			product, err := store.GetProductByID(ctx, line.ProductID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperr.New(apperr.NotFoundCode, "product not found")
				}
				return apperr.Wrap(apperr.InternalErrorCode, "failed to load product", err)
			}
			items = append(items, model.OrderItem{
				ProductID: product.ProductID,
				Quantity:  line.Quantity,
				Price:     product.Price,
			})
			total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
		}

		payment := &model.Payment{
			PaymentMethod: params.PaymentMethod,
			Amount:        total,
			Status:        string(constants.PaymentStatusPending),
		}
		if params.PaymentMethod != constants.PaymentMethodCOD {
			payment.Status = string(constants.PaymentStatusCompleted)
			payment.TransactionID = uuid.New().String()
		}

		newOrder := &model.Order{
			UserID:               userID,
			AddressID:            params.AddressID,
			ShippingFullName:     params.ShippingFullName,
			ShippingAddressLine1: params.ShippingAddressLine1,
			ShippingAddressLine2: params.ShippingAddressLine2,
			ShippingCity:         params.ShippingCity,
			ShippingState:        params.ShippingState,
			ShippingPostalCode:   params.ShippingPostalCode,
			ShippingCountry:      params.ShippingCountry,
			ShippingPhone:        params.ShippingPhone,
			PaymentMethod:        params.PaymentMethod,
			TotalAmount:          total,
			Status:               string(constants.OrderStatusPending),
			Items:                items,
			Payment:              payment,
		}
		if err := store.CreateOrder(ctx, newOrder); err != nil {
			return apperr.Wrap(apperr.InternalErrorCode, "failed to create order", err)
		}

		if err := store.ClearCart(ctx, cart.CartID); err != nil {
			return apperr.Wrap(apperr.InternalErrorCode, "failed to clear cart", err)
		}

		order = newOrder
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, producer.EventOrderPlaced, order)
	return order, nil
}

func (s *OrderService) GetUserOrders(ctx context.Context, userID uint) ([]model.Order, error) {
	orders, err := s.dbDao.GetOrdersByUserID(ctx, userID)
	if err != nil {
		return nil, apperr.Wrap(apperr.InternalErrorCode, "failed to load orders", err)
	}
	return orders, nil
}

// GetOrder 只允許訂單擁有者讀取。為避免洩漏訂單存在與否,
// 非擁有者與不存在的訂單回傳相同的 not found 錯誤。
func (s *OrderService) GetOrder(ctx context.Context, userID, orderID uint) (*model.Order, error) {
	order, err := s.loadOwnedOrder(ctx, s.dbDao, userID, orderID)
	if err != nil {
		return nil, err
	}
	return order, nil
}

// CancelOrder 擁有者取消訂單,只有 PENDING 狀態可以取消
func (s *OrderService) CancelOrder(ctx context.Context, userID, orderID uint) (*model.Order, error) {
	var order *model.Order
	err := s.dbDao.ExecTx(ctx, func(store db.UnifiedStore) error {
		owned, err := s.loadOwnedOrder(ctx, store, userID, orderID)
		if err != nil {
			return err
		}
		if owned.Status != string(constants.OrderStatusPending) {
			return apperr.New(apperr.InvalidStateCode, "only pending orders can be cancelled")
		}
		if err := store.UpdateOrderStatus(ctx, orderID, string(constants.OrderStatusCancelled)); err != nil {
			return apperr.Wrap(apperr.InternalErrorCode, "failed to update order status", err)
		}
		owned.Status = string(constants.OrderStatusCancelled)
		order = owned
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, producer.EventOrderCancelled, order)
	return order, nil
}

func (s *OrderService) GetAllOrders(ctx context.Context) ([]model.Order, error) {
	orders, err := s.dbDao.GetAllOrders(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.InternalErrorCode, "failed to load orders", err)
	}
	return orders, nil
}

// UpdateOrderStatus 管理端設定訂單狀態,狀態值必須是已定義的枚舉
func (s *OrderService) UpdateOrderStatus(ctx context.Context, orderID uint, status string) (*model.Order, error) {
	if !constants.IsValidOrderStatus(status) {
		return nil, apperr.New(apperr.BadRequestCode, "invalid order status")
	}

	var order *model.Order
	err := s.dbDao.ExecTx(ctx, func(store db.UnifiedStore) error {
		existing, err := store.GetOrderByID(ctx, orderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.New(apperr.NotFoundCode, "order not found")
			}
			return apperr.Wrap(apperr.InternalErrorCode, "failed to load order", err)
		}
		if err := store.UpdateOrderStatus(ctx, orderID, status); err != nil {
			return apperr.Wrap(apperr.InternalErrorCode, "failed to update order status", err)
		}
		existing.Status = status
		order = existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, producer.EventOrderStatusChanged, order)
	return order, nil
}

// CancelOrderAdmin 管理端取消任何尚未取消的訂單
func (s *OrderService) CancelOrderAdmin(ctx context.Context, orderID uint) (*model.Order, error) {
	var order *model.Order
	err := s.dbDao.ExecTx(ctx, func(store db.UnifiedStore) error {
		existing, err := store.GetOrderByID(ctx, orderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.New(apperr.NotFoundCode, "order not found")
			}
			return apperr.Wrap(apperr.InternalErrorCode, "failed to load order", err)
		}
		if existing.Status == string(constants.OrderStatusCancelled) {
			return apperr.New(apperr.InvalidStateCode, "order is already cancelled")
		}
		if err := store.UpdateOrderStatus(ctx, orderID, string(constants.OrderStatusCancelled)); err != nil {
			return apperr.Wrap(apperr.InternalErrorCode, "failed to update order status", err)
		}
		existing.Status = string(constants.OrderStatusCancelled)
		order = existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, producer.EventOrderCancelled, order)
	return order, nil
}

func (s *OrderService) loadOwnedOrder(ctx context.Context, store db.UnifiedStore, userID, orderID uint) (*model.Order, error) {
	order, err := store.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFoundCode, "order not found")
		}
		return nil, apperr.Wrap(apperr.InternalErrorCode, "failed to load order", err)
	}
	if order.UserID != userID {
		return nil, apperr.New(apperr.NotFoundCode, "order not found")
	}
	return order, nil
}

// publishEvent is best effort. The transaction already committed, so a
// broker failure only costs the event, never the order.
func (s *OrderService) publishEvent(ctx context.Context, eventType string, order *model.Order) {
	if s.producer == nil || order == nil {
		return
	}
	event := producer.OrderEvent{
		EventType:   eventType,
		OrderID:     order.OrderID,
		UserID:      order.UserID,
		Status:      order.Status,
		TotalAmount: order.TotalAmount,
		OccurredAt:  time.Now().UTC(),
	}
	if err := s.producer.Publish(ctx, event); err != nil {
		log.Warn().Err(err).Uint("order_id", order.OrderID).Str("event_type", eventType).Msg("failed to publish order event")
	}
}

var _ IOrderService = (*OrderService)(nil)

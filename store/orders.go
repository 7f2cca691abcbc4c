package store

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"github.com/amancoderhub/EMS-Event-management-System/models"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Checkout validation messages, in the order they are checked.
const (
	MsgFillAllFields = "Please fill all fields"
	MsgPinCode       = "Pin code must be 6 digits"
	MsgPhone         = "Phone must be 10 digits"
)

var validate = validator.New()

// ValidateCheckout returns "" when details can be used to place an order,
// otherwise the message to show next to the form.
func ValidateCheckout(details models.OrderDetails) string {
	err := validate.Struct(details)
	if err == nil {
		return ""
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return MsgFillAllFields
	}
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			return MsgFillAllFields
		}
	}
	for _, fe := range verrs {
		if fe.Field() == "PinCode" {
			return MsgPinCode
		}
	}
	return MsgPhone
}

// PlaceOrder turns the current cart into a Received order, empties the cart
// and returns the new order id. An empty cart yields a zero-total order.
func (s *Store) PlaceOrder(ctx context.Context, details models.OrderDetails) string {
	s.mu.Lock()
	order := models.Order{
		ID:           "ORD-" + strconv.FormatInt(s.nextIDLocked(), 10),
		OrderDetails: details,
		Items:        append([]models.CartLine{}, s.state.Cart...),
		Total:        models.CartTotal(s.state.Cart),
		Status:       models.OrderStatusReceived,
		CreatedAt:    s.now(),
	}
	s.state.Orders = append(s.state.Orders, order)
	s.state.Cart = []models.CartLine{}
	s.mu.Unlock()

	s.logger.Info("Order placed",
		zap.String("order_id", order.ID),
		zap.Int64("user_id", details.UserID),
		zap.Float64("total", order.Total),
	)
	s.publishOrderEvent(ctx, models.EventOrderPlaced, cloneOrder(order))
	return order.ID
}

// UpdateOrderStatus overwrites the status of orderID. The status is not
// checked against the known values.
func (s *Store) UpdateOrderStatus(ctx context.Context, orderID string, status models.OrderStatus) bool {
	s.mu.Lock()
	var updated *models.Order
	for i := range s.state.Orders {
		if s.state.Orders[i].ID == orderID {
			s.state.Orders[i].Status = status
			o := cloneOrder(s.state.Orders[i])
			updated = &o
			break
		}
	}
	s.mu.Unlock()

	if updated == nil {
		return false
	}
	updated.Items = nil
	s.publishOrderEvent(ctx, models.EventOrderStatusUpdated, *updated)
	return true
}

// Order looks up an order by id.
func (s *Store) Order(orderID string) (models.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, o := range s.state.Orders {
		if o.ID == orderID {
			return cloneOrder(o), true
		}
	}
	return models.Order{}, false
}

// Orders returns every order in placement order.
func (s *Store) Orders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneOrders(s.state.Orders)
}

// OrdersForUser returns the orders placed by userID.
func (s *Store) OrdersForUser(userID int64) []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Order
	for _, o := range s.state.Orders {
		if o.UserID == userID {
			out = append(out, cloneOrder(o))
		}
	}
	return out
}

// VendorTransactions returns orders containing at least one product currently
// in the vendor's catalogue. A deleted vendor has none.
func (s *Store) VendorTransactions(vendorID int64) []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var productIDs []int64
	for _, v := range s.state.Vendors {
		if v.ID == vendorID {
			for _, p := range v.Products {
				productIDs = append(productIDs, p.ID)
			}
			break
		}
	}

	var out []models.Order
	for _, o := range s.state.Orders {
		if o.ContainsAny(productIDs) {
			out = append(out, cloneOrder(o))
		}
	}
	return out
}

func (s *Store) publishOrderEvent(ctx context.Context, eventType string, order models.Order) {
	if s.publisher == nil || s.topicArn == "" {
		s.logger.Debug("SNS publisher not configured, skipping order event", zap.String("event_type", eventType))
		return
	}

	event := models.OrderEvent{
		EventType: eventType,
		OrderID:   order.ID,
		UserID:    order.UserID,
		Status:    order.Status,
		Total:     order.Total,
		Items:     order.Items,
		Timestamp: s.now(),
	}

	eventBytes, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("Failed to marshal order event", zap.Error(err))
		return
	}

	if err := s.publisher.Publish(ctx, s.topicArn, eventBytes); err != nil {
		s.logger.Error("Failed to publish order event",
			zap.String("event_type", eventType),
			zap.String("order_id", order.ID),
			zap.Error(err),
		)
		return
	}
	s.logger.Debug("Published order event", zap.String("event_type", eventType), zap.String("order_id", order.ID))
}

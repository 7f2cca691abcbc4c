package models

import "time"

// OrderStatus is the fulfilment stage of an order.
type OrderStatus string

const (
	OrderStatusReceived         OrderStatus = "Received"
	OrderStatusReadyForShipping OrderStatus = "Ready for Shipping"
	OrderStatusOutForDelivery   OrderStatus = "Out For Delivery"
)

// OrderStatuses lists the recognised statuses in fulfilment order.
func OrderStatuses() []OrderStatus {
	return []OrderStatus{OrderStatusReceived, OrderStatusReadyForShipping, OrderStatusOutForDelivery}
}

// OrderDetails is the customer and delivery information collected at checkout.
type OrderDetails struct {
	UserID        int64  `json:"user_id"`
	Name          string `json:"name" validate:"required"`
	Email         string `json:"email" validate:"required"`
	Number        string `json:"number" validate:"required,number,len=10"`
	Address       string `json:"address" validate:"required"`
	City          string `json:"city" validate:"required"`
	State         string `json:"state" validate:"required"`
	PinCode       string `json:"pin_code" validate:"required,number,len=6"`
	PaymentMethod string `json:"payment_method"`
}

// Order is a placed order. Items is frozen at placement time.
type Order struct {
	ID string `json:"id"`
	OrderDetails
	Items     []CartLine  `json:"items"`
	Total     float64     `json:"total"`
	Status    OrderStatus `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
}

// ContainsAny reports whether any line references one of productIDs.
func (o Order) ContainsAny(productIDs []int64) bool {
	for _, item := range o.Items {
		for _, id := range productIDs {
			if item.ProductID == id {
				return true
			}
		}
	}
	return false
}

// ItemRequest is a request for an item not offered by any vendor.
type ItemRequest struct {
	ID     int64     `json:"id"`
	Item   string    `json:"item"`
	Desc   string    `json:"desc"`
	UserID int64     `json:"user_id"`
	Date   time.Time `json:"date"`
}

// OrderEvent is published when an order is placed or changes status.
type OrderEvent struct {
	EventType string      `json:"event_type"`
	OrderID   string      `json:"order_id"`
	UserID    int64       `json:"user_id"`
	Status    OrderStatus `json:"status"`
	Total     float64     `json:"total"`
	Items     []CartLine  `json:"items,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

const (
	EventOrderPlaced        = "order_placed"
	EventOrderStatusUpdated = "order_status_updated"
)

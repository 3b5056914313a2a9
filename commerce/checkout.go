package commerce

import (
	"context"
)

type OrderItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int64  `json:"quantity"`
}

type OrderRequest struct {
	Items                 []OrderItemRequest `json:"items"`
	UserID                string             `json:"userId"`
	StripePaymentIntentID string             `json:"stripePaymentIntentId"`
	ShippingAddress       string             `json:"shippingAddress"`
	BillingAddress        string             `json:"billingAddress"`
}

// PlaceOrder validates the request, prices it against the current
// product records, persists the order and its line items, and
// decrements stock.
//
// The writes are sequential and not wrapped in a transaction: a
// failure part-way through leaves the order and any already-written
// line items in place, and the stock decrement re-reads each product
// after validation, so two concurrent checkouts of the same product
// can both pass the stock check. Both limitations are accepted here;
// callers must treat checkout as at-least-once.
func (s *Service) PlaceOrder(ctx context.Context, req OrderRequest) (*OrderWithItems, error) {
	if len(req.Items) == 0 {
		return nil, InvalidInputf("Order must contain at least one item")
	}

	// Validate and price every line before writing anything. All items
	// share one order id generated up front.
	orderID := NewOrderID()
	var totalAmount int64
	items := make([]OrderItem, 0, len(req.Items))
	for _, line := range req.Items {
		if line.Quantity <= 0 {
			return nil, InvalidInputf("Invalid quantity for product: %s", line.ProductID)
		}

		var product Product
		found, err := s.store.Get(ctx, s.cols.Products, line.ProductID, &product)
		if err != nil {
			return nil, storeFailure("Failed to create order", err)
		}
		if !found {
			return nil, NotFoundf("Product not found: %s", line.ProductID)
		}
		if product.StockQuantity < line.Quantity {
			return nil, InvalidInputf("Insufficient stock for product: %s", product.Name)
		}

		totalAmount += product.Price * line.Quantity
		items = append(items, OrderItem{
			ID:          NewOrderItemID(),
			OrderID:     orderID,
			ProductID:   line.ProductID,
			Quantity:    line.Quantity,
			Price:       product.Price,
			ProductName: product.Name,
		})
	}

	userID := req.UserID
	if userID == "" {
		userID = AnonymousUserID
	}
	now := s.timestamp()
	order := Order{
		ID:                    orderID,
		UserID:                userID,
		TotalAmount:           totalAmount,
		Status:                OrderStatusPending,
		StripePaymentIntentID: req.StripePaymentIntentID,
		ShippingAddress:       req.ShippingAddress,
		BillingAddress:        req.BillingAddress,
		CreatedAt:             now,
		UpdatedAt:             now,
	}

	if err := s.store.Put(ctx, s.cols.Orders, order); err != nil {
		return nil, storeFailure("Failed to create order", err)
	}

	for _, item := range items {
		if err := s.store.Put(ctx, s.cols.OrderItems, item); err != nil {
			return nil, storeFailure("Failed to create order items", err)
		}
	}

	for _, line := range req.Items {
		var product Product
		found, err := s.store.Get(ctx, s.cols.Products, line.ProductID, &product)
		if err != nil || !found {
			return nil, storeFailure("Failed to update product stock", err)
		}
		newStock := product.StockQuantity - line.Quantity
		err = s.store.Update(ctx, s.cols.Products, line.ProductID, map[string]any{
			"stockQuantity": newStock,
		}, nil)
		if err != nil {
			return nil, storeFailure("Failed to update product stock", err)
		}
	}

	return &OrderWithItems{Order: order, Items: items}, nil
}

package commerce

import "context"

// OrderByID returns the order joined with its line items.
func (s *Service) OrderByID(ctx context.Context, id string) (*OrderWithItems, error) {
	var order Order
	found, err := s.store.Get(ctx, s.cols.Orders, id, &order)
	if err != nil {
		return nil, storeFailure("Failed to load order", err)
	}
	if !found {
		return nil, NotFoundf("Order not found")
	}

	items, err := s.orderItems(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	return &OrderWithItems{Order: order, Items: items}, nil
}

// OrdersByUser returns the user's orders, oldest first per the index
// sort on creation time, each joined with its line items.
func (s *Service) OrdersByUser(ctx context.Context, userID string) ([]OrderWithItems, error) {
	var orders []Order
	if err := s.store.Query(ctx, s.cols.Orders, UserIDIndex, userID, &orders); err != nil {
		return nil, storeFailure("Failed to load orders", err)
	}
	return s.joinItems(ctx, orders)
}

// AllOrders scans every order. Admin use only.
func (s *Service) AllOrders(ctx context.Context) ([]OrderWithItems, error) {
	var orders []Order
	if err := s.store.Scan(ctx, s.cols.Orders, &orders); err != nil {
		return nil, storeFailure("Failed to load orders", err)
	}
	return s.joinItems(ctx, orders)
}

func (s *Service) joinItems(ctx context.Context, orders []Order) ([]OrderWithItems, error) {
	joined := make([]OrderWithItems, 0, len(orders))
	for _, order := range orders {
		items, err := s.orderItems(ctx, order.ID)
		if err != nil {
			return nil, err
		}
		joined = append(joined, OrderWithItems{Order: order, Items: items})
	}
	return joined, nil
}

func (s *Service) orderItems(ctx context.Context, orderID string) ([]OrderItem, error) {
	var items []OrderItem
	if err := s.store.Query(ctx, s.cols.OrderItems, OrderIDIndex, orderID, &items); err != nil {
		return nil, storeFailure("Failed to load order items", err)
	}
	return items, nil
}

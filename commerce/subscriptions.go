package commerce

import "context"

// PlanByID returns the subscription plan or a not-found error.
func (s *Service) PlanByID(ctx context.Context, id string) (*SubscriptionPlan, error) {
	var plan SubscriptionPlan
	found, err := s.store.Get(ctx, s.cols.SubscriptionPlans, id, &plan)
	if err != nil {
		return nil, storeFailure("Failed to load subscription plan", err)
	}
	if !found {
		return nil, NotFoundf("Subscription plan not found")
	}
	return &plan, nil
}

// AllPlans scans the plan catalog.
func (s *Service) AllPlans(ctx context.Context) ([]SubscriptionPlan, error) {
	var plans []SubscriptionPlan
	if err := s.store.Scan(ctx, s.cols.SubscriptionPlans, &plans); err != nil {
		return nil, storeFailure("Failed to load subscription plans", err)
	}
	return plans, nil
}

// SubscriptionsForUser returns the user's subscriptions, possibly none.
func (s *Service) SubscriptionsForUser(ctx context.Context, userID string) ([]UserSubscription, error) {
	var subs []UserSubscription
	if err := s.store.Query(ctx, s.cols.UserSubscriptions, UserIDIndex, userID, &subs); err != nil {
		return nil, storeFailure("Failed to load subscriptions", err)
	}
	return subs, nil
}

package commerce

import (
	"fmt"

	"github.com/hibiscushealth/backend/table"
)

// Secondary index names as provisioned on the backing store.
const (
	SlugIndex     = "slug-index"
	FeaturedIndex = "featured-index"
	UserIDIndex   = "userId-index"
	OrderIDIndex  = "orderId-index"
	EmailIndex    = "email-index"
)

// Collections resolves the per-environment collection set. Collection
// names follow hibiscus-<base>-<environment>.
type Collections struct {
	Users             table.CollectionDefinition
	Products          table.CollectionDefinition
	Orders            table.CollectionDefinition
	OrderItems        table.CollectionDefinition
	SubscriptionPlans table.CollectionDefinition
	UserSubscriptions table.CollectionDefinition
}

func NewCollections(environment string) Collections {
	id := table.KeyDef{Name: "id"}
	return Collections{
		Users: table.CollectionDefinition{
			Name: collectionName("users", environment),
			Key:  id,
			Indexes: []table.SecondaryIndex{
				{Name: EmailIndex, Key: "email"},
			},
		},
		Products: table.CollectionDefinition{
			Name: collectionName("products", environment),
			Key:  id,
			Indexes: []table.SecondaryIndex{
				{Name: SlugIndex, Key: "slug"},
				{Name: FeaturedIndex, Key: "featured"},
			},
		},
		Orders: table.CollectionDefinition{
			Name: collectionName("orders", environment),
			Key:  id,
			Indexes: []table.SecondaryIndex{
				{Name: UserIDIndex, Key: "userId", SortKey: "createdAt"},
			},
		},
		OrderItems: table.CollectionDefinition{
			Name: collectionName("order-items", environment),
			Key:  id,
			Indexes: []table.SecondaryIndex{
				{Name: OrderIDIndex, Key: "orderId"},
			},
		},
		SubscriptionPlans: table.CollectionDefinition{
			Name: collectionName("subscription-plans", environment),
			Key:  id,
		},
		UserSubscriptions: table.CollectionDefinition{
			Name: collectionName("user-subscriptions", environment),
			Key:  id,
			Indexes: []table.SecondaryIndex{
				{Name: UserIDIndex, Key: "userId"},
			},
		},
	}
}

// All lists every collection, in no particular order.
func (c Collections) All() []table.CollectionDefinition {
	return []table.CollectionDefinition{
		c.Users, c.Products, c.Orders, c.OrderItems,
		c.SubscriptionPlans, c.UserSubscriptions,
	}
}

func collectionName(base, environment string) string {
	return fmt.Sprintf("hibiscus-%s-%s", base, environment)
}

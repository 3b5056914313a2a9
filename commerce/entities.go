// Package commerce holds the typed records stored in the backing
// collections and the request-handling logic over them: checkout,
// catalog reads and writes, and subscription lookups.
package commerce

// Attribute names are identical under both tags so a record reads the
// same from DynamoDB and from the local JSON-backed store.

type Product struct {
	ID              string   `json:"id" dynamodbav:"id"`
	Name            string   `json:"name" dynamodbav:"name"`
	Slug            string   `json:"slug" dynamodbav:"slug"`
	Description     string   `json:"description" dynamodbav:"description"`
	LongDescription string   `json:"longDescription,omitempty" dynamodbav:"longDescription,omitempty"`
	Benefits        string   `json:"benefits,omitempty" dynamodbav:"benefits,omitempty"`
	Ingredients     string   `json:"ingredients,omitempty" dynamodbav:"ingredients,omitempty"`
	Dosage          string   `json:"dosage,omitempty" dynamodbav:"dosage,omitempty"`
	Price           int64    `json:"price" dynamodbav:"price"`
	StockQuantity   int64    `json:"stockQuantity" dynamodbav:"stockQuantity"`
	ImageURL        string   `json:"imageUrl,omitempty" dynamodbav:"imageUrl,omitempty"`
	Images          []string `json:"images,omitempty" dynamodbav:"images,omitempty"`
	StripePriceID   string   `json:"stripePriceId,omitempty" dynamodbav:"stripePriceId,omitempty"`
	StripeProductID string   `json:"stripeProductId,omitempty" dynamodbav:"stripeProductId,omitempty"`
	IsFeatured      bool     `json:"isFeatured" dynamodbav:"isFeatured"`
	// Featured mirrors IsFeatured as "true"/"false" because the
	// featured index is keyed on a string attribute.
	Featured  string `json:"featured" dynamodbav:"featured"`
	CreatedAt string `json:"createdAt" dynamodbav:"createdAt"`
	UpdatedAt string `json:"updatedAt" dynamodbav:"updatedAt"`
}

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusPaid      OrderStatus = "PAID"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// AnonymousUserID is recorded on orders placed without a userId.
const AnonymousUserID = "anonymous"

type Order struct {
	ID                    string      `json:"id" dynamodbav:"id"`
	UserID                string      `json:"userId" dynamodbav:"userId"`
	TotalAmount           int64       `json:"totalAmount" dynamodbav:"totalAmount"`
	Status                OrderStatus `json:"status" dynamodbav:"status"`
	StripePaymentIntentID string      `json:"stripePaymentIntentId,omitempty" dynamodbav:"stripePaymentIntentId,omitempty"`
	ShippingAddress       string      `json:"shippingAddress,omitempty" dynamodbav:"shippingAddress,omitempty"`
	BillingAddress        string      `json:"billingAddress,omitempty" dynamodbav:"billingAddress,omitempty"`
	CreatedAt             string      `json:"createdAt" dynamodbav:"createdAt"`
	UpdatedAt             string      `json:"updatedAt" dynamodbav:"updatedAt"`
}

// OrderItem is one line of an order. Price and ProductName are
// snapshots of the product at checkout time and never change after.
type OrderItem struct {
	ID          string `json:"id" dynamodbav:"id"`
	OrderID     string `json:"orderId" dynamodbav:"orderId"`
	ProductID   string `json:"productId" dynamodbav:"productId"`
	Quantity    int64  `json:"quantity" dynamodbav:"quantity"`
	Price       int64  `json:"price" dynamodbav:"price"`
	ProductName string `json:"productName" dynamodbav:"productName"`
}

// OrderWithItems is the wire shape of an order joined with its lines.
type OrderWithItems struct {
	Order
	Items []OrderItem `json:"items"`
}

type SubscriptionPlan struct {
	ID            string   `json:"id" dynamodbav:"id"`
	Name          string   `json:"name" dynamodbav:"name"`
	Description   string   `json:"description,omitempty" dynamodbav:"description,omitempty"`
	Price         int64    `json:"price" dynamodbav:"price"`
	Interval      string   `json:"interval,omitempty" dynamodbav:"interval,omitempty"`
	Features      []string `json:"features,omitempty" dynamodbav:"features,omitempty"`
	StripePriceID string   `json:"stripePriceId,omitempty" dynamodbav:"stripePriceId,omitempty"`
	CreatedAt     string   `json:"createdAt,omitempty" dynamodbav:"createdAt,omitempty"`
	UpdatedAt     string   `json:"updatedAt,omitempty" dynamodbav:"updatedAt,omitempty"`
}

type User struct {
	ID        string `json:"id" dynamodbav:"id"`
	Email     string `json:"email" dynamodbav:"email"`
	Name      string `json:"name,omitempty" dynamodbav:"name,omitempty"`
	Role      string `json:"role,omitempty" dynamodbav:"role,omitempty"`
	CreatedAt string `json:"createdAt,omitempty" dynamodbav:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty" dynamodbav:"updatedAt,omitempty"`
}

type UserSubscription struct {
	ID               string `json:"id" dynamodbav:"id"`
	UserID           string `json:"userId" dynamodbav:"userId"`
	PlanID           string `json:"planId" dynamodbav:"planId"`
	Status           string `json:"status" dynamodbav:"status"`
	CurrentPeriodEnd string `json:"currentPeriodEnd,omitempty" dynamodbav:"currentPeriodEnd,omitempty"`
	CreatedAt        string `json:"createdAt,omitempty" dynamodbav:"createdAt,omitempty"`
	UpdatedAt        string `json:"updatedAt,omitempty" dynamodbav:"updatedAt,omitempty"`
}

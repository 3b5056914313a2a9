package commerce

import (
	"fmt"

	"github.com/google/uuid"
)

// Record ids are a short type prefix plus 32 hex characters.

func NewProductID() string   { return newID("prod") }
func NewOrderID() string     { return newID("order") }
func NewOrderItemID() string { return newID("item") }
func NewPlanID() string      { return newID("plan") }

func newID(prefix string) string {
	u := uuid.New()
	return fmt.Sprintf("%s_%x", prefix, u[:])
}

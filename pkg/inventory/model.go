package inventory

import (
	"fmt"
	"strings"
)

// Item is a single stock line. ID and Name are fixed once the item is added;
// Quantity and Price change through Store.Update.
type Item struct {
	ID       string
	Name     string
	Quantity int
	Price    float64
}

// String renders the item the way the console lists it.
func (i Item) String() string {
	return fmt.Sprintf("ID: %s, Name: %s, Quantity: %d, Price: %.2f", i.ID, i.Name, i.Quantity, i.Price)
}

// Validate rejects items the store must never hold.
func (i Item) Validate() error {
	if strings.TrimSpace(i.ID) == "" {
		return newValidationError("item id is required")
	}
	if i.Quantity < 0 {
		return newValidationError("quantity must not be negative")
	}
	if i.Price < 0 {
		return newValidationError("price must not be negative")
	}
	return nil
}

// Patch carries the mutable fields of an update; nil fields are left untouched.
type Patch struct {
	Quantity *int
	Price    *float64
}

// Empty reports whether the patch changes nothing.
func (p Patch) Empty() bool {
	return p.Quantity == nil && p.Price == nil
}

package models

import (
	"fmt"
	"time"
)

// TaxRate is the fixed GST rate applied to every non-complimentary order.
const TaxRate = 0.05

// OrderItem is a snapshot of a MenuItem inside an order plus a quantity.
// The price may diverge from the catalog when manually overridden on the line.
type OrderItem struct {
	MenuItem
	Quantity int `json:"quantity"`
}

// Order is the live cart. Exactly one order is "current" at a time; saving or
// resetting replaces it with a brand-new order.
type Order struct {
	ID             string      `json:"id"`
	GuestName      string      `json:"guestName"`
	MobileNo       string      `json:"mobileNo"`
	RoomNo         string      `json:"roomNo"`
	TableNo        string      `json:"tableNo"`
	Staff          string      `json:"staff"`
	Items          []OrderItem `json:"items"`
	Subtotal       float64     `json:"subtotal"`
	Tax            float64     `json:"tax"`
	Total          float64     `json:"total"`
	Date           time.Time   `json:"date"`
	IsNC           bool        `json:"isNC"`
	ServiceTime    string      `json:"serviceTime,omitempty"`
	SpecialRequest string      `json:"specialRequest,omitempty"`
}

// NewOrder returns a freshly initialized order with a time-derived id,
// the current timestamp, no items and zeroed totals.
func NewOrder() Order {
	return Order{
		ID:    fmt.Sprintf("ORD-%d", time.Now().UnixMilli()),
		Items: []OrderItem{},
		Date:  time.Now(),
	}
}

// Totals holds the three derived monetary fields of an order.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// ComputeTotals derives subtotal, tax and total from a list of line items.
// A no-charge order is fully zeroed regardless of its items; the item list is
// still kept for kitchen purposes. No rounding happens here: display layers
// round to 2 decimals at presentation time only.
func ComputeTotals(items []OrderItem, isNC bool) Totals {
	if isNC {
		return Totals{}
	}
	var subtotal float64
	for _, item := range items {
		subtotal += item.Price * float64(item.Quantity)
	}
	tax := subtotal * TaxRate
	return Totals{Subtotal: subtotal, Tax: tax, Total: subtotal + tax}
}

// withTotals returns a copy of the order carrying the given items with the
// three derived fields recomputed.
func (o Order) withTotals(items []OrderItem) Order {
	t := ComputeTotals(items, o.IsNC)
	o.Items = items
	o.Subtotal = t.Subtotal
	o.Tax = t.Tax
	o.Total = t.Total
	return o
}

// cloneItems copies the item slice so mutation operations never alias the
// previous order's backing array.
func (o Order) cloneItems() []OrderItem {
	items := make([]OrderItem, len(o.Items))
	copy(items, o.Items)
	return items
}

// AddItem returns a new order with the menu item added. If a line for that
// item id already exists its quantity is incremented by 1, otherwise a new
// line with quantity 1 is appended at the end.
func (o Order) AddItem(item MenuItem) Order {
	items := o.cloneItems()
	for i := range items {
		if items[i].ID == item.ID {
			items[i].Quantity++
			return o.withTotals(items)
		}
	}
	items = append(items, OrderItem{MenuItem: item, Quantity: 1})
	return o.withTotals(items)
}

// UpdateQuantity returns a new order with the line's quantity set exactly.
// A quantity of zero or less removes the line entirely.
func (o Order) UpdateQuantity(itemID, newQuantity int) Order {
	if newQuantity <= 0 {
		items := make([]OrderItem, 0, len(o.Items))
		for _, item := range o.Items {
			if item.ID != itemID {
				items = append(items, item)
			}
		}
		return o.withTotals(items)
	}
	items := o.cloneItems()
	for i := range items {
		if items[i].ID == itemID {
			items[i].Quantity = newQuantity
		}
	}
	return o.withTotals(items)
}

// UpdateItemPrice returns a new order with the line's price overridden,
// independent of the catalog price.
func (o Order) UpdateItemPrice(itemID int, newPrice float64) Order {
	items := o.cloneItems()
	for i := range items {
		if items[i].ID == itemID {
			items[i].Price = newPrice
		}
	}
	return o.withTotals(items)
}

// ApplyMenuItem returns a new order where the line matching the edited
// catalog item picks up its name, description, price, category and veg flag
// while keeping its quantity. An order without that line is returned
// unchanged. A manual price override on the line is overwritten.
func (o Order) ApplyMenuItem(item MenuItem) Order {
	found := false
	for _, line := range o.Items {
		if line.ID == item.ID {
			found = true
			break
		}
	}
	if !found {
		return o
	}
	items := o.cloneItems()
	for i := range items {
		if items[i].ID == item.ID {
			items[i].MenuItem = item
		}
	}
	return o.withTotals(items)
}

// ToggleNC returns a new order with the no-charge flag flipped and totals
// recomputed. Items are untouched.
func (o Order) ToggleNC() Order {
	o.IsNC = !o.IsNC
	return o.withTotals(o.cloneItems())
}

var guestFields = map[string]bool{
	"guestName":      true,
	"mobileNo":       true,
	"roomNo":         true,
	"tableNo":        true,
	"staff":          true,
	"serviceTime":    true,
	"specialRequest": true,
}

// SetGuestField returns a new order with the named scalar field set.
// Totals are unaffected. Unknown fields return an error.
func (o Order) SetGuestField(field, value string) (Order, error) {
	if !guestFields[field] {
		return o, fmt.Errorf("unknown guest field %q", field)
	}
	switch field {
	case "guestName":
		o.GuestName = value
	case "mobileNo":
		o.MobileNo = value
	case "roomNo":
		o.RoomNo = value
	case "tableNo":
		o.TableNo = value
	case "staff":
		o.Staff = value
	case "serviceTime":
		o.ServiceTime = value
	case "specialRequest":
		o.SpecialRequest = value
	}
	return o, nil
}

// ShortID returns the last 6 characters of the order id, as printed on
// receipts.
func (o Order) ShortID() string {
	if len(o.ID) <= 6 {
		return o.ID
	}
	return o.ID[len(o.ID)-6:]
}

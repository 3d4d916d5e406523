// Package receipt renders an order into fixed-width plain text for
// thermal-printer-style output on 58mm paper.
package receipt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lamanila-kanishka/pos-api/models"
	"github.com/lamanila-kanishka/pos-api/utils"
)

// Width is the character budget of one printed row on 58mm paper.
const Width = 32

// Kind selects which document gets rendered.
type Kind string

const (
	// KindKOT is the kitchen-facing preparation slip. No prices.
	KindKOT Kind = "kot"
	// KindBill is the guest-facing tax invoice.
	KindBill Kind = "bill"
)

// ParseKind validates a document kind supplied by a caller.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindKOT, KindBill:
		return Kind(s), nil
	}
	return "", fmt.Errorf("unknown receipt kind %q", s)
}

// Center left-pads text so it sits centered in the receipt width.
// Text wider than the receipt is returned unpadded, never truncated.
func Center(text string) string {
	padding := (Width - len(text)) / 2
	if padding < 0 {
		padding = 0
	}
	return strings.Repeat(" ", padding) + text
}

// SpaceBetween pushes left and right to opposite edges of the row with at
// least one separating space, even when the combined content overflows.
func SpaceBetween(left, right string) string {
	padding := Width - len(left) - len(right)
	if padding < 1 {
		padding = 1
	}
	return left + strings.Repeat(" ", padding) + right
}

// wrapWords splits text into lines of at most width characters using greedy
// word-wrapping. Words longer than the width get a line of their own.
func wrapWords(text string, width int) []string {
	words := strings.Split(text, " ")
	var lines []string
	currentLine := ""

	for _, word := range words {
		switch {
		case currentLine == "":
			currentLine = word
		case len(currentLine)+1+len(word) <= width:
			currentLine += " " + word
		default:
			lines = append(lines, currentLine)
			currentLine = word
		}
	}
	if currentLine != "" {
		lines = append(lines, currentLine)
	}
	return lines
}

// Generate renders the order as receipt text. It is pure and idempotent:
// the same order, kind and settings always yield byte-identical output.
func Generate(order models.Order, kind Kind, settings models.PrintSettings, restaurant models.RestaurantDetails) string {
	isKot := kind == KindKOT
	var b strings.Builder
	separator := strings.Repeat("-", Width) + "\n"

	// Header
	b.WriteString(Center(restaurant.Name) + "\n")
	if settings.ShowAddress {
		for _, line := range strings.Split(restaurant.Address, "\n") {
			b.WriteString(Center(line) + "\n")
		}
	}
	if settings.ShowPhone {
		b.WriteString(Center("Ph: "+restaurant.Phone) + "\n")
	}
	if !isKot && settings.ShowGstin {
		b.WriteString(Center("GSTIN: "+restaurant.Gstin) + "\n")
	}
	b.WriteString(separator)

	// Title
	title := "Tax Invoice"
	if isKot {
		title = "Kitchen Order Ticket"
	} else if order.IsNC {
		title = "NO CHARGE INVOICE"
	}
	b.WriteString(Center(strings.ToUpper(title)) + "\n")
	if isKot && order.IsNC {
		b.WriteString(Center("*** NO CHARGE ORDER ***") + "\n")
	}
	b.WriteString(separator)

	// Order info
	b.WriteString(SpaceBetween("ID: "+order.ShortID(), "Date: "+order.Date.Format("02/01/2006")) + "\n")
	b.WriteString(SpaceBetween("Time: "+order.Date.Format("3:04:05 PM"), "") + "\n")
	if settings.ShowGuestInfo && order.GuestName != "" {
		b.WriteString("Guest: " + order.GuestName + "\n")
	}
	if settings.ShowGuestInfo && order.RoomNo != "" {
		b.WriteString("Room: " + order.RoomNo + "\n")
	}
	if settings.ShowGuestInfo && order.TableNo != "" {
		b.WriteString("Table: " + order.TableNo + "\n")
	}
	if settings.ShowStaffInfo && order.Staff != "" {
		b.WriteString("Staff: " + order.Staff + "\n")
	}

	if isKot && order.ServiceTime != "" {
		b.WriteString("SERVICE TIME: " + utils.FormatTime12Hour(order.ServiceTime) + "\n")
	}

	if isKot && order.SpecialRequest != "" {
		b.WriteString(separator)
		b.WriteString(Center("*** SPECIAL REQUEST ***") + "\n")
		for _, line := range wrapWords(order.SpecialRequest, Width) {
			b.WriteString(Center(line) + "\n")
		}
	}

	b.WriteString(separator)

	// Items header
	if isKot {
		b.WriteString("QTY  ITEM\n")
	} else {
		b.WriteString("QTY ITEM                  AMOUNT\n")
	}
	b.WriteString(separator)

	// Items
	for _, item := range order.Items {
		if isKot {
			writeKotItem(&b, item)
		} else {
			writeBillItem(&b, item)
		}
	}

	b.WriteString(separator)

	// Totals (bill only)
	if !isKot {
		b.WriteString(SpaceBetween("Subtotal:", fmt.Sprintf("Rs. %.2f", order.Subtotal)) + "\n")
		b.WriteString(SpaceBetween("GST @ 5%:", fmt.Sprintf("Rs. %.2f", order.Tax)) + "\n")
		b.WriteString(separator)
		b.WriteString(SpaceBetween("TOTAL:", fmt.Sprintf("Rs. %.2f", order.Total)) + "\n")
		b.WriteString(separator)
	}

	// Footer
	footer := "Thank you for your visit!"
	if isKot {
		footer = "--- Please Prepare Items ---"
	} else if order.IsNC {
		footer = "*** COMPLIMENTARY ***"
	}
	b.WriteString(Center(footer) + "\n")

	return b.String()
}

// writeKotItem renders one kitchen-ticket row: the quantity left-justified in
// a fixed 5-character field, the name wrapped to the remaining width with
// continuation lines indented under the name column.
func writeKotItem(b *strings.Builder, item models.OrderItem) {
	qtyPart := fmt.Sprintf("%-5s", strconv.Itoa(item.Quantity))
	availableWidth := Width - len(qtyPart)

	lines := wrapWords(item.Name, availableWidth)
	if len(lines) == 0 {
		lines = []string{""}
	}

	b.WriteString(qtyPart + lines[0] + "\n")
	for _, line := range lines[1:] {
		b.WriteString(strings.Repeat(" ", len(qtyPart)) + line + "\n")
	}
}

// writeBillItem renders one bill row as "qty x name" against the right-aligned
// line amount, wrapping long names onto indented continuation lines so the
// amount still lands on the final row.
func writeBillItem(b *strings.Builder, item models.OrderItem) {
	itemTotal := fmt.Sprintf("%.2f", item.Price*float64(item.Quantity))
	qtyStr := strconv.Itoa(item.Quantity)
	line1Left := qtyStr + " x " + item.Name

	if len(line1Left)+len(itemTotal) < Width {
		b.WriteString(SpaceBetween(line1Left, itemTotal) + "\n")
		return
	}

	availableWidth := Width - len(qtyStr) - 2
	currentLine := qtyStr + " "
	for _, word := range strings.Split(item.Name, " ") {
		if len(currentLine)+1+len(word) > availableWidth {
			b.WriteString(currentLine + "\n")
			currentLine = "   " + word
		} else {
			if strings.HasSuffix(currentLine, " ") {
				currentLine += word
			} else {
				currentLine += " " + word
			}
		}
	}
	b.WriteString(SpaceBetween(currentLine, itemTotal) + "\n")
}

package services

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/lamanila-kanishka/pos-api/models"
	"github.com/lamanila-kanishka/pos-api/utils"
)

var nonDigits = regexp.MustCompile(`\D`)

// NormalizePhone prepares a guest mobile number for a messaging deep link:
// all non-digit characters are stripped, and a bare 10-digit number gets the
// Indian country calling code prefixed. Any other length is assumed to
// already include a country code and passes through cleaned.
func NormalizePhone(phone string) string {
	cleaned := nonDigits.ReplaceAllString(phone, "")
	if len(cleaned) == 10 {
		return "91" + cleaned
	}
	return cleaned
}

// BuildBillMessage renders the guest-facing bill summary sent over the
// messaging deep link.
func BuildBillMessage(order models.Order, restaurantName string) string {
	var b strings.Builder

	if order.IsNC {
		b.WriteString(fmt.Sprintf("*Complimentary Bill from %s*\n\n", restaurantName))
	} else {
		b.WriteString(fmt.Sprintf("*Bill from %s*\n\n", restaurantName))
	}
	b.WriteString(fmt.Sprintf("Order ID: %s\n", order.ID))
	b.WriteString(fmt.Sprintf("Guest: %s\n\n", order.GuestName))

	for _, item := range order.Items {
		b.WriteString(fmt.Sprintf("%s (x%d) - Rs. %.2f\n", item.Name, item.Quantity, item.Price*float64(item.Quantity)))
	}

	b.WriteString(fmt.Sprintf("\nSubtotal: Rs. %.2f\n", order.Subtotal))
	b.WriteString(fmt.Sprintf("Tax (5%%): Rs. %.2f\n", order.Tax))
	b.WriteString(fmt.Sprintf("*Total: Rs. %.2f*\n\n", order.Total))
	if order.IsNC {
		b.WriteString("This is a complimentary bill. No payment is due.\n\n")
	}
	b.WriteString("Thank you for your visit!")

	return b.String()
}

// BuildKOTMessage renders the kitchen-facing order summary: guest and table
// metadata, service time, the special-request block delimited by banner
// lines, and itemized quantities. No prices.
func BuildKOTMessage(order models.Order, restaurantName string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("*KOT from %s*\n\n", restaurantName))
	if order.IsNC {
		b.WriteString("*--- NO CHARGE ORDER ---*\n\n")
	}
	b.WriteString(fmt.Sprintf("Order ID: %s\n", order.ID))
	if order.GuestName != "" {
		b.WriteString(fmt.Sprintf("Guest: %s\n", order.GuestName))
	}
	if order.RoomNo != "" {
		b.WriteString(fmt.Sprintf("Room: %s\n", order.RoomNo))
	}
	if order.TableNo != "" {
		b.WriteString(fmt.Sprintf("Table: %s\n", order.TableNo))
	}
	if order.Staff != "" {
		b.WriteString(fmt.Sprintf("Staff: %s\n", order.Staff))
	}
	b.WriteString(fmt.Sprintf("Date: %s\n", order.Date.Format("02/01/2006, 3:04:05 PM")))
	if order.ServiceTime != "" {
		b.WriteString(fmt.Sprintf("*Service Time: %s*\n", utils.FormatTime12Hour(order.ServiceTime)))
	}
	if order.SpecialRequest != "" {
		b.WriteString("\n*--- SPECIAL REQUEST ---*\n")
		b.WriteString(order.SpecialRequest + "\n")
		b.WriteString("*-----------------------*\n")
	}
	b.WriteString("\n--- ITEMS ---\n")
	for _, item := range order.Items {
		b.WriteString(fmt.Sprintf("%s  (x %d)\n", item.Name, item.Quantity))
	}
	b.WriteString("\n--------------")

	return b.String()
}

// BillShareLink builds the wa.me deep link carrying the bill message to a
// normalized destination number.
func BillShareLink(normalizedPhone, message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", normalizedPhone, url.QueryEscape(message))
}

// KOTShareLink builds the destination-less share deep link carrying the KOT
// message.
func KOTShareLink(message string) string {
	return fmt.Sprintf("whatsapp://send?text=%s", url.QueryEscape(message))
}

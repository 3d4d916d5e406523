package receipt

import (
	"strings"
	"testing"
	"time"

	"github.com/lamanila-kanishka/pos-api/models"
	"github.com/stretchr/testify/assert"
)

var testRestaurant = models.RestaurantDetails{
	Name:    "La Manila Kanishka",
	Address: "Ranka Rd, near Banjhakri\nWaterfall, Lower, Luing\nGangtok, Sikkim 737103",
	Phone:   "9907975680",
	Gstin:   "11AALFL9987C1Z1",
}

func testOrder() models.Order {
	order := models.Order{
		ID:    "ORD-1717000000123",
		Items: []models.OrderItem{},
		Date:  time.Date(2024, 5, 29, 19, 4, 5, 0, time.Local),
	}
	order = order.AddItem(models.MenuItem{ID: 1, Name: "Butter Naan", Price: 60, Category: "Tandoori Breads & More", IsVeg: true})
	order = order.AddItem(models.MenuItem{ID: 2, Name: "Paneer Butter Masala", Price: 350, Category: "Main Course (Veg)", IsVeg: true})
	return order
}

func TestParseKind(t *testing.T) {
	kind, err := ParseKind("kot")
	assert.NoError(t, err)
	assert.Equal(t, KindKOT, kind)

	kind, err = ParseKind("bill")
	assert.NoError(t, err)
	assert.Equal(t, KindBill, kind)

	_, err = ParseKind("invoice")
	assert.Error(t, err)
	_, err = ParseKind("")
	assert.Error(t, err)
}

func TestCenter(t *testing.T) {
	// Short text gets a left pad of (32-len)/2 and no right pad
	got := Center("ABC")
	assert.Equal(t, strings.Repeat(" ", 14)+"ABC", got)
	assert.Len(t, got, 17)

	// Even-length text
	assert.Equal(t, strings.Repeat(" ", 14)+"ABCD", Center("ABCD"))

	// Text at or beyond the width is returned as-is
	wide := strings.Repeat("x", 32)
	assert.Equal(t, wide, Center(wide))
	wider := strings.Repeat("x", 40)
	assert.Equal(t, wider, Center(wider))
}

func TestSpaceBetween(t *testing.T) {
	got := SpaceBetween("ID: 000123", "Date: 29/05/2024")
	assert.Len(t, got, 32)
	assert.True(t, strings.HasPrefix(got, "ID: 000123"))
	assert.True(t, strings.HasSuffix(got, "Date: 29/05/2024"))

	// Overflowing content still gets exactly one separating space
	left := strings.Repeat("a", 20)
	right := strings.Repeat("b", 20)
	assert.Equal(t, left+" "+right, SpaceBetween(left, right))
}

func TestGenerate_Bill(t *testing.T) {
	order := testOrder()
	text := Generate(order, KindBill, models.DefaultPrintSettings(), testRestaurant)

	assert.Contains(t, text, Center("La Manila Kanishka")+"\n")
	assert.Contains(t, text, Center("Ph: 9907975680")+"\n")
	assert.Contains(t, text, Center("GSTIN: 11AALFL9987C1Z1")+"\n")
	assert.Contains(t, text, Center("TAX INVOICE")+"\n")
	assert.Contains(t, text, "QTY ITEM                  AMOUNT\n")
	assert.Contains(t, text, "Date: 29/05/2024")
	assert.Contains(t, text, "Time: 7:04:05 PM")

	// Line amounts and totals
	assert.Contains(t, text, SpaceBetween("1 x Butter Naan", "60.00")+"\n")
	assert.Contains(t, text, SpaceBetween("1 x Paneer Butter Masala", "350.00")+"\n")
	assert.Contains(t, text, SpaceBetween("Subtotal:", "Rs. 410.00")+"\n")
	assert.Contains(t, text, SpaceBetween("GST @ 5%:", "Rs. 20.50")+"\n")
	assert.Contains(t, text, SpaceBetween("TOTAL:", "Rs. 430.50")+"\n")
	assert.Contains(t, text, Center("Thank you for your visit!")+"\n")

	// Kitchen-only sections stay off the bill
	assert.NotContains(t, text, "KITCHEN ORDER TICKET")
	assert.NotContains(t, text, "SERVICE TIME")
}

func TestGenerate_KOT(t *testing.T) {
	order := testOrder()
	order, _ = order.SetGuestField("guestName", "Tashi")
	order, _ = order.SetGuestField("tableNo", "7")
	order, _ = order.SetGuestField("serviceTime", "19:30")

	text := Generate(order, KindKOT, models.DefaultPrintSettings(), testRestaurant)

	assert.Contains(t, text, Center("KITCHEN ORDER TICKET")+"\n")
	assert.Contains(t, text, "QTY  ITEM\n")
	assert.Contains(t, text, "1    Butter Naan\n")
	assert.Contains(t, text, "1    Paneer Butter Masala\n")
	assert.Contains(t, text, "Guest: Tashi\n")
	assert.Contains(t, text, "Table: 7\n")
	assert.Contains(t, text, "SERVICE TIME: 7:30 PM\n")
	assert.Contains(t, text, Center("--- Please Prepare Items ---")+"\n")

	// No money on a kitchen ticket
	assert.NotContains(t, text, "Rs.")
	assert.NotContains(t, text, "GSTIN")
	assert.NotContains(t, text, "Subtotal")
}

func TestGenerate_NoCharge(t *testing.T) {
	order := testOrder().ToggleNC()

	bill := Generate(order, KindBill, models.DefaultPrintSettings(), testRestaurant)
	assert.Contains(t, bill, Center("NO CHARGE INVOICE")+"\n")
	assert.Contains(t, bill, SpaceBetween("Subtotal:", "Rs. 0.00")+"\n")
	assert.Contains(t, bill, SpaceBetween("TOTAL:", "Rs. 0.00")+"\n")
	assert.Contains(t, bill, Center("*** COMPLIMENTARY ***")+"\n")

	// The kitchen copy still lists every item
	kot := Generate(order, KindKOT, models.DefaultPrintSettings(), testRestaurant)
	assert.Contains(t, kot, Center("*** NO CHARGE ORDER ***")+"\n")
	assert.Contains(t, kot, "1    Butter Naan\n")
	assert.Contains(t, kot, "1    Paneer Butter Masala\n")
}

func TestGenerate_SpecialRequestOnKOTOnly(t *testing.T) {
	order := testOrder()
	order, _ = order.SetGuestField("specialRequest", "No onions in anything, guest is allergic")

	kot := Generate(order, KindKOT, models.DefaultPrintSettings(), testRestaurant)
	assert.Contains(t, kot, Center("*** SPECIAL REQUEST ***")+"\n")
	assert.Contains(t, kot, "No onions")

	bill := Generate(order, KindBill, models.DefaultPrintSettings(), testRestaurant)
	assert.NotContains(t, bill, "SPECIAL REQUEST")
}

func TestGenerate_SettingsHideSections(t *testing.T) {
	order := testOrder()
	order, _ = order.SetGuestField("guestName", "Tashi")
	order, _ = order.SetGuestField("staff", "Karma")

	settings := models.PrintSettings{} // every flag off
	text := Generate(order, KindBill, settings, testRestaurant)

	assert.NotContains(t, text, "Ranka Rd")
	assert.NotContains(t, text, "Ph: ")
	assert.NotContains(t, text, "GSTIN")
	assert.NotContains(t, text, "Guest:")
	assert.NotContains(t, text, "Staff:")

	// The name, totals and items always print
	assert.Contains(t, text, "La Manila Kanishka")
	assert.Contains(t, text, SpaceBetween("TOTAL:", "Rs. 430.50")+"\n")
}

func TestGenerate_LongNameWrapsOnKOT(t *testing.T) {
	order := models.Order{ID: "ORD-1", Items: []models.OrderItem{}, Date: time.Now()}
	order = order.AddItem(models.MenuItem{ID: 9, Name: "Special Hyderabadi Chicken Dum Biryani Family Pack", Price: 950})

	text := Generate(order, KindKOT, models.DefaultPrintSettings(), testRestaurant)

	assert.Contains(t, text, "1    Special Hyderabadi Chicken\n")
	assert.Contains(t, text, "     Dum Biryani Family Pack\n")
}

func TestGenerate_LongNameWrapsOnBill(t *testing.T) {
	order := models.Order{ID: "ORD-1", Items: []models.OrderItem{}, Date: time.Now()}
	order = order.AddItem(models.MenuItem{ID: 9, Name: "Special Hyderabadi Chicken Dum Biryani Family Pack", Price: 950})

	text := Generate(order, KindBill, models.DefaultPrintSettings(), testRestaurant)

	// The name wraps and the amount lands on the final row
	assert.Contains(t, text, "1 Special Hyderabadi Chicken\n")
	assert.Contains(t, text, SpaceBetween("   Dum Biryani Family Pack", "950.00")+"\n")
}

func TestGenerate_Idempotent(t *testing.T) {
	order := testOrder()
	settings := models.DefaultPrintSettings()

	first := Generate(order, KindBill, settings, testRestaurant)
	second := Generate(order, KindBill, settings, testRestaurant)
	assert.Equal(t, first, second)
}

package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/lamanila-kanishka/pos-api/models"
	"github.com/lamanila-kanishka/pos-api/receipt"
	"github.com/lamanila-kanishka/pos-api/utils"
)

// DocumentService renders an order into a paginated styled document and
// saves it locally, returning the file path.
type DocumentService interface {
	// ExportOrder writes the KOT or Bill document for the order and returns
	// the path of the saved file.
	ExportOrder(order models.Order, kind receipt.Kind, settings models.PrintSettings) (string, error)
}

// PDFDocumentService implements DocumentService with gofpdf.
type PDFDocumentService struct {
	restaurant models.RestaurantDetails
	outputDir  string
}

var documentServiceInstance DocumentService

// InitDocumentService initializes the document service with a PDF backend
// writing into outputDir.
func InitDocumentService(restaurant models.RestaurantDetails, outputDir string) DocumentService {
	documentServiceInstance = &PDFDocumentService{
		restaurant: restaurant,
		outputDir:  outputDir,
	}
	return documentServiceInstance
}

// GetDocumentService returns the initialized document service instance.
func GetDocumentService() DocumentService {
	return documentServiceInstance
}

// SetDocumentService sets the document service instance (primarily for testing)
func SetDocumentService(service DocumentService) {
	documentServiceInstance = service
}

const (
	detailsStartX     = 14.0
	detailsValueX     = 40.0
	detailsLineHeight = 5.0
)

// ExportOrder renders the order as a PDF. The conditional-field rules match
// the text receipt: the same PrintSettings flags gate the same sections.
func (s *PDFDocumentService) ExportOrder(order models.Order, kind receipt.Kind, settings models.PrintSettings) (string, error) {
	if len(order.Items) == 0 {
		return "", fmt.Errorf("cannot export an empty order")
	}

	isKot := kind == receipt.KindKOT
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pageW, _ := pdf.GetPageSize()

	centerText := func(y float64, text string) {
		pdf.SetXY(0, y)
		pdf.CellFormat(pageW, 5, text, "", 0, "C", false, 0, "")
	}

	y := 20.0

	// Header
	pdf.SetFont("Helvetica", "B", 20)
	centerText(y, s.restaurant.Name)
	y += 7

	pdf.SetFont("Helvetica", "", 10)
	if settings.ShowAddress {
		for _, line := range strings.Split(s.restaurant.Address, "\n") {
			centerText(y, line)
			y += 4.5
		}
	}
	if settings.ShowPhone {
		centerText(y, "Phone: "+s.restaurant.Phone)
	}
	y += 13

	title := "Tax Invoice"
	if isKot {
		title = "Kitchen Order Ticket (KOT)"
	} else if order.IsNC {
		title = "No Charge Invoice"
	}
	pdf.SetFont("Helvetica", "B", 16)
	centerText(y, title)
	y += 15

	// Order details
	pdf.SetFont("Helvetica", "", 10)
	detail := func(label, value string) {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.Text(detailsStartX, y, label)
		pdf.SetFont("Helvetica", "", 10)
		pdf.Text(detailsValueX, y, value)
		y += detailsLineHeight
	}

	detail("Order ID:", order.ID)
	detail("Date:", order.Date.Format("02/01/2006, 3:04:05 PM"))
	if settings.ShowGuestInfo && order.GuestName != "" {
		detail("Guest:", order.GuestName)
	}
	if settings.ShowGuestInfo && order.RoomNo != "" {
		detail("Room No:", order.RoomNo)
	}
	if settings.ShowGuestInfo && order.TableNo != "" {
		detail("Table No:", order.TableNo)
	}
	if settings.ShowStaffInfo && order.Staff != "" {
		detail("Staff:", order.Staff)
	}

	if isKot && order.IsNC {
		pdf.SetTextColor(200, 0, 0)
		detail("Order Type:", "NO CHARGE / COMPLIMENTARY")
		pdf.SetTextColor(0, 0, 0)
	}
	if isKot && order.ServiceTime != "" {
		pdf.SetTextColor(200, 0, 0)
		detail("Service Time:", utils.FormatTime12Hour(order.ServiceTime))
		pdf.SetTextColor(0, 0, 0)
	}

	if isKot && order.SpecialRequest != "" {
		y += 4
		pdf.SetFont("Helvetica", "B", 12)
		pdf.SetTextColor(200, 0, 0)
		centerText(y, "*** SPECIAL REQUEST ***")
		y += detailsLineHeight * 1.5

		pdf.SetFont("Helvetica", "", 11)
		lines := pdf.SplitText(order.SpecialRequest, pageW-40)
		for _, line := range lines {
			centerText(y, line)
			y += detailsLineHeight
		}
		y += 2

		pdf.SetTextColor(0, 0, 0)
		pdf.SetFont("Helvetica", "", 10)
	}

	y += 5

	finalY := s.writeItemTable(pdf, order, isKot, y)

	if !isKot {
		rightAlign := pageW - detailsStartX
		rightText := func(yy float64, text string) {
			pdf.Text(rightAlign-pdf.GetStringWidth(text), yy, text)
		}

		pdf.SetFont("Helvetica", "", 10)
		pdf.Text(rightAlign-30, finalY+10, "Subtotal:")
		rightText(finalY+10, fmt.Sprintf("Rs. %.2f", order.Subtotal))
		pdf.Text(rightAlign-30, finalY+15, "GST (5%):")
		rightText(finalY+15, fmt.Sprintf("Rs. %.2f", order.Tax))

		pdf.SetFont("Helvetica", "B", 12)
		pdf.Text(rightAlign-30, finalY+25, "Total:")
		rightText(finalY+25, fmt.Sprintf("Rs. %.2f", order.Total))

		pdf.SetFont("Helvetica", "I", 8)
		footer := "Thank you for your visit!"
		if order.IsNC {
			footer = "This is a complimentary bill. No payment is due."
		}
		centerText(finalY+40, footer)
		if settings.ShowGstin {
			centerText(finalY+45, "GSTIN: "+s.restaurant.Gstin)
		}
	}

	fileName := fmt.Sprintf("Bill_%s.pdf", order.ID)
	if isKot {
		fileName = fmt.Sprintf("KOT_%s.pdf", order.ID)
	}
	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}
	path := filepath.Join(s.outputDir, fileName)
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("failed to save %s: %w", fileName, err)
	}
	return path, nil
}

// writeItemTable renders the striped item listing and returns the y position
// below the table. Columns differ between the kitchen ticket and the bill.
func (s *PDFDocumentService) writeItemTable(pdf *gofpdf.Fpdf, order models.Order, isKot bool, startY float64) float64 {
	var headers []string
	var widths []float64
	if isKot {
		headers = []string{"Item Name", "Quantity"}
		widths = []float64{120, 62}
	} else {
		headers = []string{"Item Name", "Price", "Qty", "Amount"}
		widths = []float64{92, 30, 20, 40}
	}

	pdf.SetXY(detailsStartX, startY)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(41, 128, 185)
	pdf.SetTextColor(255, 255, 255)
	for i, header := range headers {
		pdf.CellFormat(widths[i], 8, header, "", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	fill := false
	for _, item := range order.Items {
		pdf.SetX(detailsStartX)
		pdf.SetFillColor(235, 241, 246)
		var cells []string
		if isKot {
			cells = []string{item.Name, fmt.Sprintf("%d", item.Quantity)}
		} else {
			cells = []string{
				item.Name,
				fmt.Sprintf("%.2f", item.Price),
				fmt.Sprintf("%d", item.Quantity),
				fmt.Sprintf("%.2f", item.Price*float64(item.Quantity)),
			}
		}
		for i, cell := range cells {
			pdf.CellFormat(widths[i], 7, cell, "", 0, "L", fill, 0, "")
		}
		pdf.Ln(-1)
		fill = !fill
	}

	return pdf.GetY()
}

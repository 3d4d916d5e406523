package services

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lamanila-kanishka/pos-api/config"
	"github.com/lamanila-kanishka/pos-api/models"
	"github.com/lamanila-kanishka/pos-api/receipt"
)

// Printer is the interface for sending raw receipt data to a thermal
// printer.
type Printer interface {
	// Print sends the rendered receipt bytes to the printer.
	Print(data []byte) error
	// IsConnected returns true if the printer is reachable.
	IsConnected() bool
}

// NewPrinterFromConfig selects a printer backend from configuration.
func NewPrinterFromConfig(cfg *config.Config) (Printer, error) {
	switch cfg.PrinterType {
	case "network":
		return &networkPrinter{address: cfg.PrinterAddress, timeout: 5 * time.Second}, nil
	case "usb":
		path := cfg.PrinterAddress
		if path == "" {
			path = "/dev/usb/lp0"
		}
		return &usbPrinter{path: path}, nil
	case "file":
		dir := cfg.PrinterAddress
		if dir == "" {
			dir = "spool"
		}
		return &filePrinter{dir: dir}, nil
	case "none", "":
		return &nopPrinter{}, nil
	}
	return nil, fmt.Errorf("unknown printer type %q", cfg.PrinterType)
}

// --- Network printer (dials TCP, e.g. 192.168.1.50:9100) ---

type networkPrinter struct {
	address string
	timeout time.Duration
}

func (p *networkPrinter) Print(data []byte) error {
	conn, err := net.DialTimeout("tcp", p.address, p.timeout)
	if err != nil {
		return fmt.Errorf("printer: failed to connect to %s: %w", p.address, err)
	}
	defer conn.Close()

	_ = conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
	if _, err := conn.Write(data); err != nil {
		return fmt.Errorf("printer: failed to write to %s: %w", p.address, err)
	}
	return nil
}

func (p *networkPrinter) IsConnected() bool {
	conn, err := net.DialTimeout("tcp", p.address, p.timeout)
	if err != nil {
		return false
	}
	_ = conn.Close()
	return true
}

// --- USB printer (writes to a device file, e.g. /dev/usb/lp0) ---

type usbPrinter struct {
	path string
}

func (p *usbPrinter) Print(data []byte) error {
	f, err := os.OpenFile(p.path, os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("printer: failed to open USB device %s: %w", p.path, err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("printer: failed to write to USB device %s: %w", p.path, err)
	}
	return nil
}

func (p *usbPrinter) IsConnected() bool {
	_, err := os.Stat(p.path)
	return err == nil
}

// --- File printer (spools each job into a directory; the development default) ---

type filePrinter struct {
	dir string
}

func (p *filePrinter) Print(data []byte) error {
	if err := os.MkdirAll(p.dir, 0o755); err != nil {
		return fmt.Errorf("printer: failed to create spool directory: %w", err)
	}
	name := fmt.Sprintf("job_%d.txt", time.Now().UnixNano())
	if err := os.WriteFile(filepath.Join(p.dir, name), data, 0o644); err != nil {
		return fmt.Errorf("printer: failed to spool job: %w", err)
	}
	return nil
}

func (p *filePrinter) IsConnected() bool {
	return true
}

// --- Disabled printer ---

type nopPrinter struct{}

func (p *nopPrinter) Print(data []byte) error { return nil }
func (p *nopPrinter) IsConnected() bool       { return false }

// PrintState is the lifecycle phase of the single print slot.
type PrintState string

const (
	// PrintIdle means no document is being printed.
	PrintIdle PrintState = "idle"
	// PrintPending means a document has been rendered and is about to be
	// sent to the printer.
	PrintPending PrintState = "pending"
	// PrintPrinting means the document was handed to the printer and the
	// service is awaiting the completion signal.
	PrintPrinting PrintState = "printing"
)

// PrintJob describes the document occupying the print slot.
type PrintJob struct {
	ID       string       `json:"id"`
	Kind     receipt.Kind `json:"kind"`
	State    PrintState   `json:"state"`
	Document string       `json:"document"`
}

// PrintService owns the one-at-a-time print slot: idle -> pending ->
// printing, with completion or cancellation returning to idle.
type PrintService struct {
	mu      sync.Mutex
	printer Printer
	job     *PrintJob
}

var printServiceInstance *PrintService

// InitPrintService initializes the print service with a printer backend.
func InitPrintService(printer Printer) *PrintService {
	printServiceInstance = &PrintService{printer: printer}
	return printServiceInstance
}

// GetPrintService returns the initialized print service instance.
func GetPrintService() *PrintService {
	return printServiceInstance
}

// SetPrintService sets the print service instance (primarily for testing)
func SetPrintService(service *PrintService) {
	printServiceInstance = service
}

// ErrPrintBusy is returned when a print is requested while a document is
// already pending or printing.
var ErrPrintBusy = fmt.Errorf("a print job is already in progress")

// Start renders the order receipt, occupies the print slot and sends the
// document to the printer. The returned job stays in the printing state
// until Complete or Cancel is called.
func (s *PrintService) Start(order models.Order, kind receipt.Kind, settings models.PrintSettings, restaurant models.RestaurantDetails) (PrintJob, error) {
	if len(order.Items) == 0 {
		return PrintJob{}, fmt.Errorf("cannot print an empty %s", kind)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.job != nil {
		return PrintJob{}, ErrPrintBusy
	}

	job := &PrintJob{
		ID:       uuid.NewString(),
		Kind:     kind,
		State:    PrintPending,
		Document: receipt.Generate(order, kind, settings, restaurant),
	}
	s.job = job

	if err := s.printer.Print([]byte(job.Document)); err != nil {
		s.job = nil
		return PrintJob{}, err
	}
	job.State = PrintPrinting
	return *job, nil
}

// Current returns the job occupying the print slot, if any.
func (s *PrintService) Current() (PrintJob, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.job == nil {
		return PrintJob{}, false
	}
	return *s.job, true
}

// Complete acknowledges the platform completion signal for the given job and
// clears the print slot.
func (s *PrintService) Complete(jobID string) error {
	return s.clear(jobID)
}

// Cancel aborts the given job and clears the print slot.
func (s *PrintService) Cancel(jobID string) error {
	return s.clear(jobID)
}

func (s *PrintService) clear(jobID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.job == nil {
		return fmt.Errorf("no print job in progress")
	}
	if s.job.ID != jobID {
		return fmt.Errorf("unknown print job %q", jobID)
	}
	s.job = nil
	return nil
}

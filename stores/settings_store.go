package stores

import (
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/lamanila-kanishka/pos-api/models"
	"gorm.io/gorm"
)

// SettingsStore owns the print-customization flags and the staff roster,
// both persisted locally.
type SettingsStore struct {
	mu       sync.Mutex
	db       *gorm.DB
	settings models.PrintSettings
	staff    []string
}

// NewSettingsStore loads print settings and the staff roster from the local
// store, substituting built-in defaults for missing or malformed data.
func NewSettingsStore(db *gorm.DB) *SettingsStore {
	s := &SettingsStore{
		db:       db,
		settings: models.DefaultPrintSettings(),
		staff:    models.DefaultStaffList(),
	}

	if data, ok := loadValue(db, KeyPrintSettings); ok {
		if settings, err := decodePrintSettings(data); err != nil {
			log.Printf("Using default print settings: %v", err)
		} else {
			s.settings = settings
		}
	}
	if data, ok := loadValue(db, KeyStaffList); ok {
		if staff, err := decodeStrings(data, KeyStaffList); err != nil {
			log.Printf("Using default staff list: %v", err)
		} else {
			s.staff = staff
		}
	}

	return s
}

// PrintSettings returns the current print-customization flags.
func (s *SettingsStore) PrintSettings() models.PrintSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// UpdateFlag toggles a single print-customization flag by its JSON name.
func (s *SettingsStore) UpdateFlag(name string, value bool) (models.PrintSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch name {
	case "showAddress":
		s.settings.ShowAddress = value
	case "showPhone":
		s.settings.ShowPhone = value
	case "showGstin":
		s.settings.ShowGstin = value
	case "showGuestInfo":
		s.settings.ShowGuestInfo = value
	case "showStaffInfo":
		s.settings.ShowStaffInfo = value
	default:
		return s.settings, fmt.Errorf("unknown print setting %q", name)
	}

	saveValue(s.db, KeyPrintSettings, s.settings)
	return s.settings, nil
}

// StaffList returns a copy of the staff roster.
func (s *SettingsStore) StaffList() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	staff := make([]string, len(s.staff))
	copy(staff, s.staff)
	return staff
}

// ReplaceStaffList commits an edited roster as a whole, dropping blank
// entries.
func (s *SettingsStore) ReplaceStaffList(names []string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	staff := make([]string, 0, len(names))
	for _, name := range names {
		if strings.TrimSpace(name) != "" {
			staff = append(staff, name)
		}
	}
	s.staff = staff
	saveValue(s.db, KeyStaffList, s.staff)

	result := make([]string, len(staff))
	copy(result, staff)
	return result
}

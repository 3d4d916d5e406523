package models

// PrintSettings holds the independently togglable print-customization flags.
// They drive both the fixed-width text receipt and the exported PDF.
type PrintSettings struct {
	ShowAddress   bool `json:"showAddress"`
	ShowPhone     bool `json:"showPhone"`
	ShowGstin     bool `json:"showGstin"`
	ShowGuestInfo bool `json:"showGuestInfo"`
	ShowStaffInfo bool `json:"showStaffInfo"`
}

// DefaultPrintSettings returns the built-in defaults: every flag enabled.
func DefaultPrintSettings() PrintSettings {
	return PrintSettings{
		ShowAddress:   true,
		ShowPhone:     true,
		ShowGstin:     true,
		ShowGuestInfo: true,
		ShowStaffInfo: true,
	}
}

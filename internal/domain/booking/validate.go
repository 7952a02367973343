package booking

import (
	"strings"

	"github.com/Ouss77/nabou-booking/internal/validators"
)

// FieldErrors maps field names to human-readable messages; it is returned as
// an error so callers can surface per-field problems inline.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	return "validation failed"
}

// ===============================
// Store form
// ===============================

type StoreForm struct {
	Title       string
	Address     string
	Description string
	Services    []string
	Barbers     []string
}

// ValidateStoreForm returns one human-readable message per failing field.
// An empty map means the form is valid.
func ValidateStoreForm(f StoreForm) map[string]string {
	errs := map[string]string{}

	title := strings.TrimSpace(f.Title)
	if title == "" {
		errs["title"] = "Store name is required"
	} else if len(title) < 3 {
		errs["title"] = "Store name must be at least 3 characters"
	}

	address := strings.TrimSpace(f.Address)
	if address == "" {
		errs["address"] = "Address is required"
	} else if len(address) < 10 {
		errs["address"] = "Please provide a complete address"
	}

	description := strings.TrimSpace(f.Description)
	if description == "" {
		errs["description"] = "Description is required"
	} else if len(description) < 20 {
		errs["description"] = "Description must be at least 20 characters"
	}

	if len(f.Services) == 0 {
		errs["services"] = "At least one service is required"
	}

	if len(f.Barbers) == 0 {
		errs["barbers"] = "At least one barber is required"
	} else {
		for _, b := range f.Barbers {
			if strings.TrimSpace(b) == "" {
				errs["barbers"] = "Barber names cannot be blank"
				break
			}
		}
	}

	return errs
}

// ===============================
// Booking form
// ===============================

type BookingForm struct {
	StoreID       string
	ServiceName   string
	Barber        string
	Date          string
	Time          string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
}

func ValidateBookingForm(f BookingForm) map[string]string {
	errs := map[string]string{}

	if f.StoreID == "" {
		errs["store_id"] = "Store is required"
	}
	if f.ServiceName == "" {
		errs["service_name"] = "Service is required"
	}
	if f.Barber == "" {
		errs["barber"] = "Barber is required"
	}

	if f.Date == "" {
		errs["date"] = "Date is required"
	} else if !ValidDate(f.Date) {
		errs["date"] = "Invalid date"
	}

	if f.Time == "" {
		errs["time"] = "Time is required"
	} else if !ValidSlotTime(f.Time) {
		errs["time"] = "Time must be on the half-hour grid"
	}

	if strings.TrimSpace(f.CustomerName) == "" {
		errs["customer_name"] = "Customer name is required"
	}

	email := strings.TrimSpace(f.CustomerEmail)
	if email == "" {
		errs["customer_email"] = "Email is required"
	} else if !validators.IsEmailValid(email) {
		errs["customer_email"] = "Invalid email format"
	}

	phone := strings.TrimSpace(f.CustomerPhone)
	if phone == "" {
		errs["customer_phone"] = "Phone is required"
	} else if !validators.IsPhoneValid(phone) {
		errs["customer_phone"] = "Invalid phone number"
	}

	return errs
}

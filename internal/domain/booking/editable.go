package booking

import (
	"strconv"
	"strings"

	"github.com/Ouss77/nabou-booking/internal/httperr"
	"github.com/Ouss77/nabou-booking/internal/models"
	"github.com/Ouss77/nabou-booking/internal/validators"
)

// ===============================
// Inline field edits
// ===============================

// EditableField enumerates the appointment columns the admin table may patch
// one at a time. Each variant carries its own validation; there is no
// edit-by-arbitrary-name path.
type EditableField string

const (
	FieldDate          EditableField = "date"
	FieldTime          EditableField = "time"
	FieldBarber        EditableField = "barber"
	FieldServiceName   EditableField = "service_name"
	FieldServicePrice  EditableField = "service_price"
	FieldCustomerName  EditableField = "customer_name"
	FieldCustomerEmail EditableField = "customer_email"
	FieldCustomerPhone EditableField = "customer_phone"
)

func ValidEditableField(f EditableField) bool {
	switch f {
	case FieldDate, FieldTime, FieldBarber, FieldServiceName,
		FieldServicePrice, FieldCustomerName, FieldCustomerEmail,
		FieldCustomerPhone:
		return true
	}
	return false
}

// TouchesSlot reports whether editing f moves the appointment to a different
// booking slot, which requires the availability check to run again.
func (f EditableField) TouchesSlot() bool {
	return f == FieldDate || f == FieldTime || f == FieldBarber
}

// ApplyEdit validates value for the given field and writes it onto ap.
// Validation failures come back as business errors with a field-specific code.
func ApplyEdit(ap *models.Appointment, field EditableField, value string) error {
	value = strings.TrimSpace(value)

	switch field {
	case FieldDate:
		if !ValidDate(value) {
			return httperr.ErrBusiness("invalid_date")
		}
		ap.Date = value

	case FieldTime:
		if !ValidSlotTime(value) {
			return httperr.ErrBusiness("invalid_time")
		}
		ap.Time = value

	case FieldBarber:
		if value == "" {
			return httperr.ErrBusiness("invalid_barber")
		}
		ap.Barber = value

	case FieldServiceName:
		if value == "" {
			return httperr.ErrBusiness("invalid_service_name")
		}
		ap.ServiceName = value

	case FieldServicePrice:
		price, err := strconv.Atoi(value)
		if err != nil || price < 0 {
			return httperr.ErrBusiness("invalid_service_price")
		}
		ap.ServicePrice = price

	case FieldCustomerName:
		if value == "" {
			return httperr.ErrBusiness("invalid_customer_name")
		}
		ap.CustomerName = value

	case FieldCustomerEmail:
		if !validators.IsEmailValid(value) {
			return httperr.ErrBusiness("invalid_customer_email")
		}
		ap.CustomerEmail = value

	case FieldCustomerPhone:
		if !validators.IsPhoneValid(value) {
			return httperr.ErrBusiness("invalid_customer_phone")
		}
		ap.CustomerPhone = value

	default:
		return httperr.ErrBusiness("unknown_field")
	}

	return nil
}

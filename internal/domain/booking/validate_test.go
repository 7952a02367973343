package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validStoreForm() StoreForm {
	return StoreForm{
		Title:       "Nabou Cuts",
		Address:     "12 Rue des Barbiers, Paris",
		Description: "A classic barbershop in the heart of the city.",
		Services:    []string{"Fade Cut", "Beard Trim"},
		Barbers:     []string{"Bob", "Karim"},
	}
}

func TestValidateStoreFormAccepts(t *testing.T) {
	assert.Empty(t, ValidateStoreForm(validStoreForm()))
}

func TestValidateStoreFormTitleLength(t *testing.T) {
	f := validStoreForm()

	f.Title = "ab"
	errs := ValidateStoreForm(f)
	assert.Contains(t, errs, "title")

	f.Title = "abc"
	assert.NotContains(t, ValidateStoreForm(f), "title")

	f.Title = "   "
	assert.Contains(t, ValidateStoreForm(f), "title")
}

func TestValidateStoreFormAddressAndDescription(t *testing.T) {
	f := validStoreForm()

	f.Address = "short"
	assert.Contains(t, ValidateStoreForm(f), "address")

	f = validStoreForm()
	f.Description = "too short here"
	assert.Contains(t, ValidateStoreForm(f), "description")
}

func TestValidateStoreFormCollections(t *testing.T) {
	f := validStoreForm()
	f.Services = nil
	assert.Contains(t, ValidateStoreForm(f), "services")

	f = validStoreForm()
	f.Barbers = []string{}
	assert.Contains(t, ValidateStoreForm(f), "barbers")

	f = validStoreForm()
	f.Barbers = []string{"Bob", "  "}
	assert.Contains(t, ValidateStoreForm(f), "barbers")
}

func validBookingForm() BookingForm {
	return BookingForm{
		StoreID:       "s1",
		ServiceName:   "Fade Cut",
		Barber:        "Bob",
		Date:          "2025-06-20",
		Time:          "10:30",
		CustomerName:  "Alice Martin",
		CustomerEmail: "alice@example.com",
		CustomerPhone: "+33612345678",
	}
}

func TestValidateBookingFormAccepts(t *testing.T) {
	assert.Empty(t, ValidateBookingForm(validBookingForm()))
}

func TestValidateBookingFormRejects(t *testing.T) {
	f := validBookingForm()
	f.Time = "10:15"
	assert.Contains(t, ValidateBookingForm(f), "time")

	f = validBookingForm()
	f.Date = "20-06-2025"
	assert.Contains(t, ValidateBookingForm(f), "date")

	f = validBookingForm()
	f.CustomerEmail = "not-an-email"
	assert.Contains(t, ValidateBookingForm(f), "customer_email")

	f = validBookingForm()
	f.CustomerPhone = "abc"
	assert.Contains(t, ValidateBookingForm(f), "customer_phone")

	errs := ValidateBookingForm(BookingForm{})
	for _, field := range []string{
		"store_id", "service_name", "barber", "date", "time",
		"customer_name", "customer_email", "customer_phone",
	} {
		assert.Contains(t, errs, field)
	}
}

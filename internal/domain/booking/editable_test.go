package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ouss77/nabou-booking/internal/httperr"
	"github.com/Ouss77/nabou-booking/internal/models"
)

func TestApplyEdit(t *testing.T) {
	ap := &models.Appointment{Date: "2025-06-20", Time: "10:00", Barber: "Bob"}

	require.NoError(t, ApplyEdit(ap, FieldDate, "2025-07-01"))
	assert.Equal(t, "2025-07-01", ap.Date)

	require.NoError(t, ApplyEdit(ap, FieldTime, "15:30"))
	assert.Equal(t, "15:30", ap.Time)

	require.NoError(t, ApplyEdit(ap, FieldServicePrice, "40"))
	assert.Equal(t, 40, ap.ServicePrice)

	require.NoError(t, ApplyEdit(ap, FieldCustomerEmail, "new@example.com"))
	assert.Equal(t, "new@example.com", ap.CustomerEmail)
}

func TestApplyEditRejectsBadValues(t *testing.T) {
	ap := &models.Appointment{Date: "2025-06-20", Time: "10:00"}

	err := ApplyEdit(ap, FieldDate, "garbage")
	assert.True(t, httperr.IsBusiness(err, "invalid_date"))
	assert.Equal(t, "2025-06-20", ap.Date, "failed edit must not touch the row")

	err = ApplyEdit(ap, FieldTime, "10:17")
	assert.True(t, httperr.IsBusiness(err, "invalid_time"))

	err = ApplyEdit(ap, FieldServicePrice, "-5")
	assert.True(t, httperr.IsBusiness(err, "invalid_service_price"))

	err = ApplyEdit(ap, FieldCustomerEmail, "nope")
	assert.True(t, httperr.IsBusiness(err, "invalid_customer_email"))

	err = ApplyEdit(ap, EditableField("status"), "completed")
	assert.True(t, httperr.IsBusiness(err, "unknown_field"))
}

func TestTouchesSlot(t *testing.T) {
	assert.True(t, FieldDate.TouchesSlot())
	assert.True(t, FieldTime.TouchesSlot())
	assert.True(t, FieldBarber.TouchesSlot())
	assert.False(t, FieldCustomerName.TouchesSlot())
	assert.False(t, FieldServicePrice.TouchesSlot())
}

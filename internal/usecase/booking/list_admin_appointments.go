package booking

import (
	"context"
	"time"

	domain "github.com/Ouss77/nabou-booking/internal/domain/booking"
	"github.com/Ouss77/nabou-booking/internal/dto"
	"github.com/Ouss77/nabou-booking/internal/timezone"
)

type ListAdminAppointments struct {
	repo domain.Repository
	now  func() time.Time
}

func NewListAdminAppointments(
	repo domain.Repository,
) *ListAdminAppointments {
	return &ListAdminAppointments{
		repo: repo,
		now:  func() time.Time { return timezone.NowIn(timezone.DefaultTimezone) },
	}
}

// Execute fetches every appointment and applies the filter/sort specification
// in memory, mirroring how the admin table works: the full list is loaded
// once and reshaped per interaction.
func (uc *ListAdminAppointments) Execute(
	ctx context.Context,
	filters domain.Filters,
	field domain.SortField,
	order domain.SortOrder,
) ([]dto.AppointmentView, error) {

	appointments, err := uc.repo.ListAppointments(ctx)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	selected := domain.Apply(appointments, filters, field, order, now)

	out := make([]dto.AppointmentView, 0, len(selected))
	for _, ap := range selected {
		out = append(out, dto.NewAppointmentView(ap, now))
	}

	return out, nil
}

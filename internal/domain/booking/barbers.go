package booking

import (
	"sort"

	"github.com/Ouss77/nabou-booking/internal/models"
)

// AllBarbers collects the distinct barber names across every store, sorted.
func AllBarbers(stores []models.Store) []string {
	seen := map[string]struct{}{}
	for _, store := range stores {
		for _, barber := range store.Barbers {
			seen[barber] = struct{}{}
		}
	}

	out := make([]string, 0, len(seen))
	for barber := range seen {
		out = append(out, barber)
	}
	sort.Strings(out)
	return out
}

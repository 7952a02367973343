package booking

// ServiceInfo is the default catalog entry shown on the storefront for
// services a store lists only by name.
type ServiceInfo struct {
	Price       int `json:"price"`
	DurationMin int `json:"duration_min"`
}

var serviceCatalog = map[string]ServiceInfo{
	"Classic Haircut":      {Price: 25, DurationMin: 30},
	"Beard Trim":           {Price: 15, DurationMin: 20},
	"Hot Towel Shave":      {Price: 30, DurationMin: 45},
	"Hair Wash":            {Price: 10, DurationMin: 15},
	"Fade Cut":             {Price: 30, DurationMin: 35},
	"Beard Styling":        {Price: 20, DurationMin: 25},
	"Mustache Trim":        {Price: 12, DurationMin: 15},
	"Scalp Treatment":      {Price: 35, DurationMin: 40},
	"Traditional Shave":    {Price: 40, DurationMin: 50},
	"Pompadour Cut":        {Price: 35, DurationMin: 40},
	"Beard Oil Treatment":  {Price: 25, DurationMin: 30},
	"Straight Razor Shave": {Price: 45, DurationMin: 60},
}

var defaultService = ServiceInfo{Price: 25, DurationMin: 30}

// ServiceDetails looks up the catalog entry for a service name, falling back
// to the default price and duration for unknown services.
func ServiceDetails(name string) ServiceInfo {
	if info, ok := serviceCatalog[name]; ok {
		return info
	}
	return defaultService
}

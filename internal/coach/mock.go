package coach

import "github.com/google/uuid"

// MockProvider is a canned location service for local runs: authorization is
// granted immediately and the fix is a fixed coordinate.
type MockProvider struct {
	Fix    Location
	Status AuthorizationStatus
	Err    error
}

func NewMockProvider(fix Location) *MockProvider {
	return &MockProvider{Fix: fix, Status: StatusAuthorized}
}

func (m *MockProvider) RequestAuthorization(onStatus func(AuthorizationStatus)) {
	onStatus(m.Status)
}

func (m *MockProvider) CurrentLocation(onFix func(Location, error)) {
	onFix(m.Fix, m.Err)
}

// DefaultHotspots is the built-in demo hotspot set.
func DefaultHotspots() []Hotspot {
	return []Hotspot{
		{
			ID:       uuid.New(),
			Name:     "Riverside Bench",
			Location: Location{Lat: 52.3702, Lon: 4.8952},
			RadiusM:  250,
			Insight:  "Big decisions read differently near water. Walk the question once before you answer it.",
		},
		{
			ID:       uuid.New(),
			Name:     "Old Library Steps",
			Location: Location{Lat: 52.3731, Lon: 4.8924},
			RadiusM:  200,
			Insight:  "Somebody already wrote about the exact choice you're facing. Borrow their hindsight.",
		},
		{
			ID:       uuid.New(),
			Name:     "Market Square",
			Location: Location{Lat: 52.3676, Lon: 4.9041},
			RadiusM:  300,
			Insight:  "Watch ten strangers choose something small. Certainty is rarer than it looks.",
		},
	}
}

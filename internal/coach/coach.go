package coach

import (
	"log"
	"math"

	"github.com/google/uuid"
)

// AuthorizationStatus mirrors the platform location permission states the
// provider reports back.
type AuthorizationStatus string

const (
	StatusNotDetermined AuthorizationStatus = "not_determined"
	StatusAuthorized    AuthorizationStatus = "authorized"
	StatusDenied        AuthorizationStatus = "denied"
)

// Location is a WGS84 coordinate pair.
type Location struct {
	Lat float64
	Lon float64
}

// Hotspot is a place with an attached coaching insight. Insights surface only
// when the user's fix lands within RadiusM of the hotspot.
type Hotspot struct {
	ID       uuid.UUID
	Name     string
	Location Location
	RadiusM  float64
	Insight  string
}

// LocationProvider abstracts the platform location service: a permission
// request with a status callback, and a one-shot location fix. There is no
// retry or backoff policy; a failed fix is logged and dropped.
type LocationProvider interface {
	RequestAuthorization(onStatus func(AuthorizationStatus))
	CurrentLocation(onFix func(Location, error))
}

// Coach selects the nearest in-range hotspot for the user's location and
// exposes its insight. Missing permission, a failed fix, or no hotspot in
// range all degrade to an empty insight, never to an error state.
type Coach struct {
	provider LocationProvider
	hotspots []Hotspot

	status  AuthorizationStatus
	fix     *Location
	nearest *Hotspot
}

func NewCoach(provider LocationProvider, hotspots []Hotspot) *Coach {
	return &Coach{provider: provider, hotspots: hotspots, status: StatusNotDetermined}
}

// Start requests authorization and, once granted, a single location fix.
func (c *Coach) Start() {
	if c.provider == nil {
		return
	}
	c.provider.RequestAuthorization(func(status AuthorizationStatus) {
		c.status = status
		if status != StatusAuthorized {
			return
		}
		c.provider.CurrentLocation(func(loc Location, err error) {
			if err != nil {
				log.Printf("coach: location fix failed: %v", err)
				return
			}
			c.fix = &loc
			c.nearest = nearestHotspot(loc, c.hotspots)
		})
	})
}

// Status returns the last authorization status the provider reported.
func (c *Coach) Status() AuthorizationStatus { return c.status }

// Insight returns the insight for the nearest in-range hotspot, or "".
func (c *Coach) Insight() string {
	if c.nearest == nil {
		return ""
	}
	return c.nearest.Insight
}

// Nearest returns the selected hotspot, nil when none is in range.
func (c *Coach) Nearest() *Hotspot { return c.nearest }

func nearestHotspot(loc Location, hotspots []Hotspot) *Hotspot {
	var best *Hotspot
	bestDist := math.MaxFloat64
	for i := range hotspots {
		h := &hotspots[i]
		d := distanceMeters(loc, h.Location)
		if d <= h.RadiusM && d < bestDist {
			best = h
			bestDist = d
		}
	}
	return best
}

// distanceMeters is a haversine great-circle distance.
func distanceMeters(a, b Location) float64 {
	const earthRadiusM = 6371000.0
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180
	h := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusM * math.Asin(math.Sqrt(h))
}

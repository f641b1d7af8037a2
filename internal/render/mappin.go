package render

import (
	"fmt"
	"math/rand/v2"
)

// Map pin bounds. The pin is a random point near the centre of India; the
// address is not geocoded.
const (
	centerLat = 20.5937
	centerLng = 78.9629
	spread    = 8.0

	minLat, maxLat = 6.0, 36.0
	minLng, maxLng = 68.0, 98.0
)

// Pin is an approximate map location for an address.
type Pin struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address"`
}

// PinFor places address at a jittered point within the bounds. r may be nil.
func PinFor(address string, r *rand.Rand) Pin {
	f := rand.Float64
	if r != nil {
		f = r.Float64
	}

	lat := centerLat + (f()-0.5)*spread
	lng := centerLng + (f()-0.5)*spread

	return Pin{
		Lat:     min(max(lat, minLat), maxLat),
		Lng:     min(max(lng, minLng), maxLng),
		Address: address,
	}
}

// String renders the pin as a one-line label with an OpenStreetMap link.
func (p Pin) String() string {
	return fmt.Sprintf("📍 Approximate Location: %s\n   https://www.openstreetmap.org/?mlat=%.4f&mlon=%.4f#map=10/%.4f/%.4f",
		p.Address, p.Lat, p.Lng, p.Lat, p.Lng)
}

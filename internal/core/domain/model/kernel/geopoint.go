package kernel

import (
	"errors"
	"fmt"
	"math"

	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/pkg/errs"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/pkg/guard"
)

const (
	// GeoLatitudeMin is the minimum valid latitude in degrees.
	GeoLatitudeMin = -90.0
	// GeoLatitudeMax is the maximum valid latitude in degrees.
	GeoLatitudeMax = 90.0
	// GeoLongitudeMin is the minimum valid longitude in degrees.
	GeoLongitudeMin = -180.0
	// GeoLongitudeMax is the maximum valid longitude in degrees.
	GeoLongitudeMax = 180.0

	// earthRadiusKm is the mean radius of the Earth used by the haversine formula.
	earthRadiusKm = 6371.0
)

// ErrGeoPointIsNotConstructed is returned when attempting to use an improperly initialized GeoPoint.
// GeoPoints must be created using the NewGeoPoint constructor to ensure validity.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint constructor")

// GeoPoint represents a geographic coordinate pair used for node locations
// and proximity scoring. GeoPoint is an immutable value object; the zero value
// is invalid and will fail validation.
//
// Example:
//
//	point, err := kernel.NewGeoPoint(19.0760, 72.8777)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(point) // Output: GeoPoint(19.076000,72.877700)
type GeoPoint struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint with the specified coordinates.
// Latitude must be within [-90, 90] and longitude within [-180, 180].
//
// Returns:
//   - GeoPoint: A valid coordinate pair
//   - error: Validation error if either coordinate is out of bounds
func NewGeoPoint(latitude, longitude float64) (GeoPoint, error) {
	point := GeoPoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(point.setLatitude(latitude), point.setLongitude(longitude)); err != nil {
		return GeoPoint{}, err
	}

	return point, nil
}

// Validate checks if the GeoPoint was properly constructed using the constructor.
// The zero value of GeoPoint is invalid and will fail this validation.
func (g GeoPoint) Validate() error {
	return g.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Latitude returns the latitude in degrees.
func (g GeoPoint) Latitude() float64 {
	return g.latitude
}

// Longitude returns the longitude in degrees.
func (g GeoPoint) Longitude() float64 {
	return g.longitude
}

// String returns a human-readable representation of the coordinate pair.
// This method implements the fmt.Stringer interface.
func (g GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%f,%f)", g.latitude, g.longitude)
}

// DistanceKm calculates the great-circle distance to another point in
// kilometers using the haversine formula. Both points must be properly
// constructed for the calculation to succeed.
//
// Example:
//
//	mumbai, _ := kernel.NewGeoPoint(19.0760, 72.8777)
//	delhi, _ := kernel.NewGeoPoint(28.7041, 77.1025)
//
//	km, err := mumbai.DistanceKm(delhi)
//	// km ≈ 1154, err = nil
func (g GeoPoint) DistanceKm(other GeoPoint) (float64, error) {
	if err := errors.Join(g.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	lat1 := g.latitude * math.Pi / 180
	lat2 := other.latitude * math.Pi / 180
	dLat := (other.latitude - g.latitude) * math.Pi / 180
	dLon := (other.longitude - g.longitude) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c, nil
}

// setLatitude sets the latitude with bounds validation.
// Note: pointer receiver used for self-encapsulated construction validation.
func (g *GeoPoint) setLatitude(latitude float64) error {
	if latitude < GeoLatitudeMin || latitude > GeoLatitudeMax {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, GeoLatitudeMin, GeoLatitudeMax)
	}

	g.latitude = latitude
	return nil
}

// setLongitude sets the longitude with bounds validation.
// Note: pointer receiver used for self-encapsulated construction validation.
func (g *GeoPoint) setLongitude(longitude float64) error {
	if longitude < GeoLongitudeMin || longitude > GeoLongitudeMax {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, GeoLongitudeMin, GeoLongitudeMax)
	}

	g.longitude = longitude
	return nil
}

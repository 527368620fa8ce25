package ki

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// GeoPoint is a geographic point literal "lat, lon[, alt]". The
// optional altitude is a Length quantity; a bare altitude numeral is
// read as metres.
type GeoPoint struct {
	Lat float64
	Lon float64
	Alt *Quantity
}

// ParseGeoPoint parses a geographic point. reg resolves the altitude
// unit; latitude must be within ±90 and longitude within ±180 degrees.
func ParseGeoPoint(reg *UnitRegistry, s string) (GeoPoint, error) {
	parts := strings.Split(s, ",")
	if len(parts) < 2 || len(parts) > 3 {
		return GeoPoint{}, &ScanError{Msg: fmt.Sprintf("malformed geo point %q: want lat, lon[, alt]", s), Pos: NoPosition}
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return GeoPoint{}, &NumericFormatError{Msg: fmt.Sprintf("invalid latitude in geo point %q", s), Err: err}
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return GeoPoint{}, &NumericFormatError{Msg: fmt.Sprintf("invalid longitude in geo point %q", s), Err: err}
	}
	if lat < -90 || lat > 90 {
		return GeoPoint{}, &ScanError{Msg: fmt.Sprintf("latitude %v out of range", lat), Pos: NoPosition}
	}
	if lon < -180 || lon > 180 {
		return GeoPoint{}, &ScanError{Msg: fmt.Sprintf("longitude %v out of range", lon), Pos: NoPosition}
	}

	g := GeoPoint{Lat: lat, Lon: lon}
	if len(parts) == 3 {
		altText := strings.TrimSpace(parts[2])
		alt, err := reg.ParseQuantity(altText)
		if err != nil {
			var nsu *NoSuchUnitError
			if !errors.As(err, &nsu) {
				return GeoPoint{}, err
			}
			// bare numeral: metres
			m, ok := reg.Lookup("m")
			if !ok {
				return GeoPoint{}, err
			}
			v, perr := ParseNumber(altText, KindDec)
			if perr != nil {
				return GeoPoint{}, perr
			}
			alt = NewQuantity(v, m)
		}
		if alt.Unit.Dim != Length {
			return GeoPoint{}, &IncompatibleDimensionError{A: alt.Unit.Symbol, B: "m"}
		}
		g.Alt = &alt
	}
	return g, nil
}

// String returns the canonical form "lat, lon[, alt]" with shortest
// round-trip coordinate formatting.
func (g GeoPoint) String() string {
	var sb strings.Builder
	sb.WriteString(strconv.FormatFloat(g.Lat, 'f', -1, 64))
	sb.WriteString(", ")
	sb.WriteString(strconv.FormatFloat(g.Lon, 'f', -1, 64))
	if g.Alt != nil {
		sb.WriteString(", ")
		sb.WriteString(g.Alt.String())
	}
	return sb.String()
}

package args

import (
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/eucaby/reqparse"
)

var (
	// EmailRegex matches an email address, ignoring case.
	EmailRegex = regexp.MustCompile(`(?i)^[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,4}$`)
	// LatLngRegex matches "<lat>,<lng>" in decimal degrees.
	LatLngRegex = regexp.MustCompile(`^` + pointPattern + `,` + pointPattern + `$`)
)

const pointPattern = `-?[0-9]+\.?[0-9]*`

// Coercer messages. These are overridden by Help on the catalog arguments
// but surface when the coercers are used on their own.
const (
	MsgEmailFormat  = InvalidEmail
	MsgLatLngFormat = "Latlng should have format: <lat>,<lng>"
	MsgPointRange   = "Latlng is out of range"
)

var (
	// Email accepts an email address and returns it unchanged.
	Email = reqparse.Pattern(EmailRegex, MsgEmailFormat)
	// LatLng accepts "<lat>,<lng>" and returns it unchanged.
	LatLng = reqparse.Pattern(LatLngRegex, MsgLatLngFormat)
	// Coordinates accepts "<lat>,<lng>" and returns a Point within the
	// valid coordinate ranges.
	Coordinates reqparse.Coercer = reqparse.CoerceFunc(coercePoint)
)

// Point is a coordinate pair in decimal degrees.
type Point struct {
	Lat float64 `json:"lat" validate:"latitude"`
	Lng float64 `json:"lng" validate:"longitude"`
}

// String renders p in the latlng wire format.
func (p Point) String() string {
	return strconv.FormatFloat(p.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(p.Lng, 'f', -1, 64)
}

// ParsePoint parses "<lat>,<lng>". The error, when not nil, is a
// *reqparse.ValidationError.
func ParsePoint(s string) (Point, error) {
	if !LatLngRegex.MatchString(s) {
		return Point{}, reqparse.Invalid(MsgLatLngFormat)
	}

	lat, lng, _ := strings.Cut(s, ",")
	var p Point
	var err error
	if p.Lat, err = strconv.ParseFloat(lat, 64); err != nil {
		return Point{}, reqparse.Invalid(MsgLatLngFormat)
	}
	if p.Lng, err = strconv.ParseFloat(lng, 64); err != nil {
		return Point{}, reqparse.Invalid(MsgLatLngFormat)
	}

	if err := getValidator().Struct(p); err != nil {
		return Point{}, reqparse.Invalid(MsgPointRange)
	}
	return p, nil
}

func coercePoint(raw string) (any, error) {
	p, err := ParsePoint(raw)
	if err != nil {
		return nil, err
	}
	return p, nil
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

package manipulator

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const coordinatesDelimiter = ","

const (
	// PointArity - focus point given as x,y
	PointArity = 2
	// BoxArity - crop box given as left,top,right inset,bottom inset
	BoxArity = 4
)

// Coordinates are unit-space values, each one clamped to [0,1]
type Coordinates []float64

// ParseCoordinates splits raw on commas and parses exactly arity floats,
// clamping every value to [0,1] so that client rounding errors are tolerated.
//
// A value made of zeros only is the "nothing supplied" sentinel:
// clients send 0,0 or 0,0,0,0 when no point or box was chosen, so in
// that case ParseCoordinates returns nil coordinates and a nil error.
// A wrong number of tokens or a non-numeric token returns a *ParseError,
// never a partial result.
func ParseCoordinates(raw string, arity int) (Coordinates, error) {
	tokens := strings.Split(raw, coordinatesDelimiter)
	if len(tokens) != arity {
		return nil, &ParseError{
			Value:  raw,
			Reason: fmt.Sprintf("expected %d values, got %d", arity, len(tokens)),
		}
	}

	coordinates := make(Coordinates, arity)
	allZero := true

	for i, token := range tokens {
		v, err := strconv.ParseFloat(strings.TrimSpace(token), 64)
		if err != nil || math.IsNaN(v) {
			return nil, &ParseError{
				Value:  raw,
				Reason: fmt.Sprintf("value #%d is not a number", i+1),
			}
		}

		if v != 0 {
			allZero = false
		}

		coordinates[i] = clampUnit(v)
	}

	if allZero {
		return nil, nil
	}

	return coordinates, nil
}

func clampUnit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

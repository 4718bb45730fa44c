package domain

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Curve describes an easing function as a cubic bezier with two control
// points. Named curves carry their canonical name so they round-trip through
// configuration files; custom curves serialize as "cubic-bezier(x1,y1,x2,y2)".
//
// Curve is a comparable value type, so resolved curves can be compared with
// == in callers and tests.
type Curve struct {
	Name string
	P    [4]float64 // x1, y1, x2, y2
}

// Named curves. CurveEase is the baseline used when nothing else specifies one.
var (
	CurveLinear    = Curve{Name: "linear", P: [4]float64{0, 0, 1, 1}}
	CurveEase      = Curve{Name: "ease", P: [4]float64{0.25, 0.1, 0.25, 1}}
	CurveEaseIn    = Curve{Name: "ease-in", P: [4]float64{0.42, 0, 1, 1}}
	CurveEaseOut   = Curve{Name: "ease-out", P: [4]float64{0, 0, 0.58, 1}}
	CurveEaseInOut = Curve{Name: "ease-in-out", P: [4]float64{0.42, 0, 0.58, 1}}
)

var namedCurves = map[string]Curve{
	CurveLinear.Name:    CurveLinear,
	CurveEase.Name:      CurveEase,
	CurveEaseIn.Name:    CurveEaseIn,
	CurveEaseOut.Name:   CurveEaseOut,
	CurveEaseInOut.Name: CurveEaseInOut,
}

// CubicBezier builds a custom curve from two control points.
func CubicBezier(x1, y1, x2, y2 float64) Curve {
	return Curve{P: [4]float64{x1, y1, x2, y2}}
}

// ParseCurve parses a named curve ("ease-in") or a
// "cubic-bezier(x1,y1,x2,y2)" expression.
func ParseCurve(s string) (Curve, error) {
	s = strings.TrimSpace(s)
	if c, ok := namedCurves[s]; ok {
		return c, nil
	}
	var p [4]float64
	if n, err := fmt.Sscanf(s, "cubic-bezier(%v,%v,%v,%v)", &p[0], &p[1], &p[2], &p[3]); err == nil && n == 4 {
		return Curve{P: p}, nil
	}
	return Curve{}, &ValidationError{Field: "curve", Reason: fmt.Sprintf("unknown curve %q", s)}
}

// IsZero reports whether c is the zero value (no curve specified).
func (c Curve) IsZero() bool {
	return c == Curve{}
}

func (c Curve) String() string {
	if c.Name != "" {
		return c.Name
	}
	return fmt.Sprintf("cubic-bezier(%v,%v,%v,%v)", c.P[0], c.P[1], c.P[2], c.P[3])
}

// MarshalYAML serializes the curve in its string form.
func (c Curve) MarshalYAML() (any, error) {
	return c.String(), nil
}

// UnmarshalYAML parses the string form back into a curve.
func (c *Curve) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseCurve(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalText allows curves inside JSON payloads (debug API, redis records).
func (c Curve) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText parses the string form back into a curve.
func (c *Curve) UnmarshalText(text []byte) error {
	parsed, err := ParseCurve(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

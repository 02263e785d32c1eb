package models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// The backend is loose about JSON types: ids and measurements show up both as
// numbers and as strings, flags as 0/1 or booleans. The types below accept
// every shape seen on the wire and never fail decoding on a bad value.

// FlexString holds an identifier sent either as a JSON number or a JSON string.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	*f = FlexString(string(data))
	return nil
}

func (f FlexString) String() string {
	return string(f)
}

// FlexFloat is a measurement sent as a number or a numeric string.
// Anything unparseable decodes to 0.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	*f = FlexFloat(parseLooseFloat(unquote(data)))
	return nil
}

func (f FlexFloat) Float64() float64 {
	return float64(f)
}

// Flag is the backend's boolean-as-integer. Missing or null means false.
type Flag bool

func (f *Flag) UnmarshalJSON(data []byte) error {
	raw := strings.ToLower(unquote(data))
	switch raw {
	case "1", "true":
		*f = true
	default:
		if v, err := strconv.ParseFloat(raw, 64); err == nil && v != 0 {
			*f = true
			return nil
		}
		*f = false
	}
	return nil
}

func (f Flag) MarshalJSON() ([]byte, error) {
	if f {
		return []byte("1"), nil
	}
	return []byte("0"), nil
}

// Coordinate keeps the raw decimal text of a latitude or longitude.
type Coordinate string

func (c *Coordinate) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*c = ""
		return nil
	}
	*c = Coordinate(unquote(data))
	return nil
}

// Float parses the coordinate strictly. ok is false for empty, malformed,
// NaN or infinite values.
func (c Coordinate) Float() (value float64, ok bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(string(c)), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func (c Coordinate) Valid() bool {
	_, ok := c.Float()
	return ok
}

func unquote(data []byte) string {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err == nil {
			return strings.TrimSpace(s)
		}
	}
	return string(data)
}

func parseLooseFloat(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

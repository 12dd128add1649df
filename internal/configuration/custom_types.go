package configuration

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
)

const rangeSeparator = ".."

// Range is an inclusive interval of actuator signal values.
//
// In a config file it can be given as a list (`[0, 100]`),
// as a string (`"0..100"`) or as a map (`{min: 0, max: 100}`).
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

func (r Range) String() string {
	return fmt.Sprintf("%g%s%g", r.Min, rangeSeparator, r.Max)
}

// ParseRange parses a range in the "min..max" notation
func ParseRange(value string) (Range, error) {
	lower, upper, found := strings.Cut(value, rangeSeparator)
	if !found {
		return Range{}, fmt.Errorf("invalid range '%s', expected format: min%smax", value, rangeSeparator)
	}
	minValue, err := strconv.ParseFloat(strings.TrimSpace(lower), 64)
	if err != nil {
		return Range{}, fmt.Errorf("invalid range '%s': %w", value, err)
	}
	maxValue, err := strconv.ParseFloat(strings.TrimSpace(upper), 64)
	if err != nil {
		return Range{}, fmt.Errorf("invalid range '%s': %w", value, err)
	}
	return Range{Min: minValue, Max: maxValue}, nil
}

// RangeHookFunc returns a mapstructure decode hook that converts lists and
// strings into a Range. Maps are left to the default struct decoding.
func RangeHookFunc() mapstructure.DecodeHookFuncType {
	rangeType := reflect.TypeOf(Range{})

	return func(
		f reflect.Type,
		t reflect.Type,
		data interface{},
	) (interface{}, error) {
		if t != rangeType {
			return data, nil
		}

		switch v := data.(type) {
		case string:
			return ParseRange(v)
		case []float64:
			return rangeFromList(len(v), func(i int) (float64, error) { return v[i], nil })
		case []int:
			return rangeFromList(len(v), func(i int) (float64, error) { return float64(v[i]), nil })
		case []interface{}:
			return rangeFromList(len(v), func(i int) (float64, error) { return anyToFloat(v[i]) })
		}

		return data, nil
	}
}

func rangeFromList(length int, get func(i int) (float64, error)) (Range, error) {
	if length != 2 {
		return Range{}, fmt.Errorf("invalid range, expected exactly 2 values but got %d", length)
	}
	minValue, err := get(0)
	if err != nil {
		return Range{}, err
	}
	maxValue, err := get(1)
	if err != nil {
		return Range{}, err
	}
	return Range{Min: minValue, Max: maxValue}, nil
}

// anyToFloat converts numeric and string values to float64.
func anyToFloat(v interface{}) (float64, error) {
	switch val := v.(type) {
	case int:
		return float64(val), nil
	case int64:
		return float64(val), nil
	case float64:
		return val, nil
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0, fmt.Errorf("cannot parse %q as number: %w", val, err)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("cannot convert %T to number", v)
	}
}

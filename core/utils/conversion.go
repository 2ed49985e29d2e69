package utils

import (
	"database/sql/driver"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ToID converts a cell value to a numeric identifier using explicit type switching.
// Whole floats ("12.0", 12.0) are accepted; fractional, non-numeric and blank
// values report ok=false.
func ToID(val any) (id int64, ok bool) {
	switch v := val.(type) {
	case nil:
		return 0, false
	case int:
		return int64(v), true
	case int64:
		return v, true
	case int32:
		return int64(v), true
	case int16:
		return int64(v), true
	case int8:
		return int64(v), true
	case uint:
		if uint64(v) > math.MaxInt64 {
			return 0, false
		}
		return int64(v), true
	case uint64:
		if v > math.MaxInt64 {
			return 0, false
		}
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint8:
		return int64(v), true
	case float64:
		return floatID(v)
	case float32:
		return floatID(float64(v))
	case string:
		return parseID(v)
	case []byte:
		return parseID(string(v))
	case driver.Valuer:
		// pgtype.Numeric and friends encode to their text form.
		dv, err := v.Value()
		if err != nil {
			return 0, false
		}
		return ToID(dv)
	default:
		return parseID(fmt.Sprintf("%v", v))
	}
}

// parseID accepts integers and whole decimals, ignoring surrounding space.
func parseID(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return floatID(f)
}

func floatID(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, false
	}
	return int64(f), true
}

// ToString converts various types to string.
func ToString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

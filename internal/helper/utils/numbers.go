package utils

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

// CoerceFloat converts a decoded JSON value to float64. Clients send
// rating points and fee amounts as either numbers or numeric strings;
// both are persisted as numbers.
func CoerceFloat(v interface{}) (float64, error) {
	switch n := v.(type) {
	case nil:
		return 0, errors.New("missing numeric value")
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case json.Number:
		return n.Float64()
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0, errors.New("missing numeric value")
		}
		return strconv.ParseFloat(s, 64)
	}
	return 0, errors.New("value is not numeric")
}

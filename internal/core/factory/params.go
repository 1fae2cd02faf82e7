package factory

import (
	"fmt"
	"strconv"
)

// Float reads a numeric parameter. Integers and numeric strings decoded from
// YAML, JSON or CLI flags are accepted. A missing key yields def.
func (p Params) Float(key string, def float64) (float64, error) {
	v, ok := p[key]
	if !ok || v == nil {
		return def, nil
	}
	switch vv := v.(type) {
	case float64:
		return vv, nil
	case float32:
		return float64(vv), nil
	case int:
		return float64(vv), nil
	case int64:
		return float64(vv), nil
	case uint64:
		return float64(vv), nil
	case string:
		f, err := strconv.ParseFloat(vv, 64)
		if err != nil {
			return def, fmt.Errorf("param %q: %q is not a number", key, vv)
		}
		return f, nil
	default:
		return def, fmt.Errorf("param %q: unsupported type %T", key, v)
	}
}

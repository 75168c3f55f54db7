package schema

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// maxSafeInteger bounds numbers that survive a round trip through a float64.
const maxSafeInteger = 1<<53 - 1

var validate = validator.New()

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Values holds normalized field values keyed by field name: strings as string,
// integers as int, numbers as float64 and dates as time.Time (UTC).
type Values map[string]any

// Validate checks payload against every field of the schema and returns the
// normalized values. Only the first violation is reported. Keys that are not
// schema fields are rejected once all fields pass.
func (s *Schema) Validate(payload map[string]any) (Values, error) {
	out := make(Values, len(s.fields))
	for _, f := range s.fields {
		raw, ok := payload[f.Name]
		if !ok {
			return nil, violation(f.Name, RuleRequired, "%s is required")
		}
		v, err := normalize(f, raw)
		if err != nil {
			return nil, err
		}
		out[f.Name] = v
	}

	var unknown []string
	for k := range payload {
		if !s.Has(k) {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, violation(unknown[0], RuleNotAllowed, "%s is not allowed")
	}
	return out, nil
}

func normalize(f Field, raw any) (any, error) {
	switch f.Kind {
	case KindString:
		return normalizeString(f.Name, raw)
	case KindEmail:
		str, err := normalizeString(f.Name, raw)
		if err != nil {
			return nil, err
		}
		if err := validate.Var(str, "email"); err != nil {
			return nil, violation(f.Name, RuleEmail, "%s must be a valid email")
		}
		return str, nil
	case KindInteger:
		n, err := normalizeNumber(f.Name, raw)
		if err != nil {
			return nil, err
		}
		if n != math.Trunc(n) {
			return nil, violation(f.Name, RuleInteger, "%s must be an integer")
		}
		return int(n), nil
	case KindNumber:
		return normalizeNumber(f.Name, raw)
	case KindDate:
		return normalizeDate(f.Name, raw)
	default:
		return nil, fmt.Errorf("schema: field %q has unsupported kind %s", f.Name, f.Kind)
	}
}

func normalizeString(name string, raw any) (string, error) {
	str, ok := raw.(string)
	if !ok {
		return "", violation(name, RuleType, "%s must be a string")
	}
	if str == "" {
		return "", violation(name, RuleEmpty, "%s is not allowed to be empty")
	}
	return str, nil
}

func normalizeNumber(name string, raw any) (float64, error) {
	var (
		n   float64
		err error
	)
	switch v := raw.(type) {
	case json.Number:
		n, err = v.Float64()
	case float64:
		n = v
	case float32:
		n = float64(v)
	case int:
		n = float64(v)
	case int64:
		n = float64(v)
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return 0, violation(name, RuleType, "%s must be a number")
		}
		n, err = strconv.ParseFloat(trimmed, 64)
	default:
		return 0, violation(name, RuleType, "%s must be a number")
	}
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, violation(name, RuleType, "%s must be a number")
	}
	if math.Abs(n) > maxSafeInteger {
		return 0, violation(name, RuleUnsafe, "%s must be a safe number")
	}
	return n, nil
}

func normalizeDate(name string, raw any) (time.Time, error) {
	switch v := raw.(type) {
	case time.Time:
		return v.UTC(), nil
	case string:
		trimmed := strings.TrimSpace(v)
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, trimmed); err == nil {
				return t.UTC(), nil
			}
		}
		if ms, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
			return time.UnixMilli(ms).UTC(), nil
		}
	case json.Number, float64, int, int64:
		n, err := normalizeNumber(name, v)
		if err == nil {
			return time.UnixMilli(int64(n)).UTC(), nil
		}
	}
	return time.Time{}, violation(name, RuleDate, "%s must be a valid date")
}

// Merge copies values onto dst by field name. Fields of dst that have no entry
// in values keep their current content.
func Merge[T any](dst *T, values Values) error {
	raw, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("schema: encode values: %w", err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("schema: merge values: %w", err)
	}
	return nil
}

package msgfmt

import (
	"fmt"
	"reflect"
	"strconv"
	"time"
)

// Args is the argument set a pattern is evaluated against. Format accepts
// either an Args directly or a struct/map value, which it adapts via
// ToArgs.
type Args map[string]any

// ToArgs adapts a struct or map value into an Args map. Each exported
// struct field is stored under its exact field name, or under the name in
// its `msgfmt:"name"` tag when one is set; argument lookup is
// case-sensitive, so no case-insensitive matching is done. A value that
// is already an Args or map[string]any is used as-is (copied defensively
// for a map[string]any). Anything else is rejected.
func ToArgs(v any) (Args, error) {
	switch t := v.(type) {
	case nil:
		return Args{}, nil
	case Args:
		return t, nil
	case map[string]any:
		out := make(Args, len(t))
		for k, val := range t {
			out[k] = val
		}
		return out, nil
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return Args{}, nil
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		out := make(Args, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			key := iter.Key()
			if key.Kind() != reflect.String {
				return nil, fmt.Errorf("msgfmt: unsupported argument map key type %s", key.Kind())
			}
			out[key.String()] = iter.Value().Interface()
		}
		return out, nil
	case reflect.Struct:
		out := make(Args, rv.NumField())
		rt := rv.Type()
		for i := 0; i < rv.NumField(); i++ {
			field := rt.Field(i)
			if !field.IsExported() {
				continue
			}
			name := field.Name
			if tag := field.Tag.Get("msgfmt"); tag != "" && tag != "-" {
				name = tag
			}
			out[name] = rv.Field(i).Interface()
		}
		return out, nil
	default:
		return nil, fmt.Errorf("msgfmt: %T cannot be used as a pattern argument set", v)
	}
}

// coerceNumber coerces an argument value to a float64 for numeric
// placeholders (formatted-number types and plural/selectordinal operands).
func coerceNumber(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int8:
		return float64(t), true
	case int16:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case uint:
		return float64(t), true
	case uint8:
		return float64(t), true
	case uint16:
		return float64(t), true
	case uint32:
		return float64(t), true
	case uint64:
		return float64(t), true
	case string:
		f, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// coerceDecimalString returns v's original decimal text when it has one,
// for operand computation that needs trailing-zero fidelity ("1.50" vs
// "1.5"). ok is false for argument kinds with no stable textual form.
func coerceDecimalString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		if _, err := strconv.ParseFloat(t, 64); err != nil {
			return "", false
		}
		return t, true
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", t), true
	default:
		return "", false
	}
}

// coerceStringKey coerces an argument value to a string for select
// branch-key comparison and for the phone formatter's input.
func coerceStringKey(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case fmt.Stringer:
		return t.String(), true
	default:
		return "", false
	}
}

// coerceTime coerces an argument value to a time.Time for date/time
// placeholders. int, int64 and float64 values are interpreted as Unix
// seconds; other numeric kinds are rejected.
func coerceTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case int64:
		return time.Unix(t, 0), true
	case int:
		return time.Unix(int64(t), 0), true
	case float64:
		whole := int64(t)
		frac := t - float64(whole)
		return time.Unix(whole, int64(frac*1e9)), true
	default:
		return time.Time{}, false
	}
}

// stringify renders an arbitrary argument value as display text, used for
// bare {name} variable placeholders with no declared type.
func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	case float64, float32:
		f, _ := coerceNumber(t)
		return strconv.FormatFloat(f, 'f', -1, 64)
	case time.Time:
		return t.Format(time.RFC3339)
	default:
		return fmt.Sprint(v)
	}
}

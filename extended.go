package msgfmt

import (
	"errors"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// cldrListPatterns holds the CLDR list-join patterns for one locale: the
// two-item pattern, and the start/middle/end patterns used for three or
// more items ("{0}" and "{1}" are substitution points).
type cldrListPatterns struct {
	Pair   string
	Start  string
	Middle string
	End    string
}

type cldrOrdinalRules struct {
	System string
}

type cldrMeasurementData struct {
	Units map[string]string
}

// PhoneDialPlan describes how to group a national significant number for
// display: the country's calling code, an optional national prefix, and
// the digit-group sizes to split the remaining digits into.
type PhoneDialPlan struct {
	CountryCode    string
	NationalPrefix string
	Groups         []int
}

type cldrBundle struct {
	List        cldrListPatterns
	Ordinal     cldrOrdinalRules
	Measurement cldrMeasurementData
	Phone       PhoneDialPlan
}

// cldrBundles is the built-in data backing the extended formatter pack's
// list/ordinal/measurement/phone types. Locales not present here fall back
// to "en" for list/measurement/ordinal; phone falls back to no dial plan
// (the raw string is passed through unchanged).
var cldrBundles = map[string]cldrBundle{
	"en": {
		List: cldrListPatterns{
			Pair:   "{0} and {1}",
			Start:  "{0}, {1}",
			Middle: "{0}, {1}",
			End:    "{0}, and {1}",
		},
		Ordinal: cldrOrdinalRules{System: "english"},
		Measurement: cldrMeasurementData{
			Units: map[string]string{"km": "km", "kg": "kg", "m": "m", "mi": "mi", "lb": "lb"},
		},
		Phone: PhoneDialPlan{CountryCode: "1", NationalPrefix: "1", Groups: []int{3, 3, 4}},
	},
	"es": {
		List: cldrListPatterns{
			Pair:   "{0} y {1}",
			Start:  "{0}, {1}",
			Middle: "{0}, {1}",
			End:    "{0} y {1}",
		},
		Ordinal: cldrOrdinalRules{System: "spanish"},
		Measurement: cldrMeasurementData{
			Units: map[string]string{"km": "km", "kg": "kg", "m": "m", "mi": "millas", "lb": "lb"},
		},
		Phone: PhoneDialPlan{CountryCode: "34", Groups: []int{3, 3, 3}},
	},
	"fr": {
		List: cldrListPatterns{
			Pair:   "{0} et {1}",
			Start:  "{0}, {1}",
			Middle: "{0}, {1}",
			End:    "{0} et {1}",
		},
		Ordinal: cldrOrdinalRules{System: "french"},
		Measurement: cldrMeasurementData{
			Units: map[string]string{"km": "km", "kg": "kg", "m": "m", "mi": "mi", "lb": "lb"},
		},
		Phone: PhoneDialPlan{CountryCode: "33", Groups: []int{1, 2, 2, 2, 2}},
	},
	"de": {
		List: cldrListPatterns{
			Pair:   "{0} und {1}",
			Start:  "{0}, {1}",
			Middle: "{0}, {1}",
			End:    "{0} und {1}",
		},
		Ordinal: cldrOrdinalRules{System: "german"},
		Measurement: cldrMeasurementData{
			Units: map[string]string{"km": "km", "kg": "kg", "m": "m", "mi": "mi", "lb": "lb"},
		},
		Phone: PhoneDialPlan{CountryCode: "49", Groups: []int{3, 3, 4}},
	},
}

func bundleFor(locale string) cldrBundle {
	candidates := append([]string{normalizeLocale(locale)}, localeParentChain(locale)...)
	for _, tag := range candidates {
		if b, ok := cldrBundles[tag]; ok {
			return b
		}
	}
	return cldrBundles["en"]
}

func applyListPattern(pattern, head, tail string) string {
	result := strings.ReplaceAll(pattern, "{0}", head)
	return strings.ReplaceAll(result, "{1}", tail)
}

// listFormatter backs the "list" placeholder type: value must be a
// []string (or []any of stringable items); style is unused.
type listFormatter struct{}

func (listFormatter) Format(value any, style, locale string) (string, error) {
	items, err := coerceStringSlice(value)
	if err != nil {
		return "", newArgumentTypeMismatchError("list", value)
	}

	pattern := bundleFor(locale).List
	end := pattern.End
	if end == "" {
		end = pattern.Pair
	}

	switch len(items) {
	case 0:
		return "", nil
	case 1:
		return items[0], nil
	case 2:
		return applyListPattern(pattern.Pair, items[0], items[1]), nil
	default:
		if pattern.Start == "" || pattern.Middle == "" {
			head := strings.Join(items[:len(items)-1], ", ")
			return applyListPattern(end, head, items[len(items)-1]), nil
		}
		result := applyListPattern(pattern.Start, items[0], items[1])
		for i := 2; i < len(items)-1; i++ {
			result = applyListPattern(pattern.Middle, result, items[i])
		}
		return applyListPattern(end, result, items[len(items)-1]), nil
	}
}

func coerceStringSlice(value any) ([]string, error) {
	switch t := value.(type) {
	case []string:
		return t, nil
	case []any:
		out := make([]string, len(t))
		for i, v := range t {
			out[i] = stringify(v)
		}
		return out, nil
	default:
		return nil, errNotAStringSlice
	}
}

var errNotAStringSlice = errors.New("msgfmt: value is not a list of strings")

// ordinalFormatter backs the "ordinal" placeholder type: renders an
// integer with its locale's ordinal numbering convention (1st, 2º, ...).
// style, if set, overrides the locale's default numbering system.
type ordinalFormatter struct{}

func (ordinalFormatter) Format(value any, style, locale string) (string, error) {
	f, ok := coerceNumber(value)
	if !ok {
		return "", newArgumentTypeMismatchError("ordinal", value)
	}
	n := int64(f)

	system := bundleFor(locale).Ordinal.System
	if style != "" {
		system = style
	}

	switch system {
	case "spanish":
		return strconv.FormatInt(n, 10) + "º", nil
	default:
		return strconv.FormatInt(n, 10) + fallbackOrdinalSuffix(n), nil
	}
}

// measurementFormatter backs the "measurement" placeholder type: value is
// the magnitude, style is the unit code ("km", "kg", ...), localized via
// the bundle's unit abbreviation table when one exists for the unit.
type measurementFormatter struct{}

func (measurementFormatter) Format(value any, style, locale string) (string, error) {
	f, ok := coerceNumber(value)
	if !ok {
		return "", newArgumentTypeMismatchError("measurement", value)
	}

	printer := message.NewPrinter(resolveTag(locale))
	formatted := printer.Sprintf("%v", number.Decimal(f))

	unit := strings.TrimSpace(style)
	if unit == "" {
		return formatted, nil
	}
	if localized, ok := bundleFor(locale).Measurement.Units[strings.ToLower(unit)]; ok && localized != "" {
		unit = localized
	}
	return formatted + " " + unit, nil
}

// PhoneDialPlanRegistry resolves a locale to a PhoneDialPlan: it first
// checks caller-registered overrides (Set) for the locale and each tag in
// its parent chain, then the built-in cldrBundles table for the same
// tags. This replaces the
// teacher's process-wide globalFormatterRegistry() singleton for phone
// dial plans with per-Formatter state, consistent with this package
// carrying no global mutable state.
type PhoneDialPlanRegistry struct {
	mu    sync.RWMutex
	plans map[string]PhoneDialPlan
}

func newPhoneDialPlanRegistry() *PhoneDialPlanRegistry {
	return &PhoneDialPlanRegistry{}
}

// Set registers a dial plan for locale, overriding any built-in default.
func (r *PhoneDialPlanRegistry) Set(locale string, plan PhoneDialPlan) {
	locale = normalizeLocale(locale)
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.plans == nil {
		r.plans = make(map[string]PhoneDialPlan)
	}
	r.plans[locale] = plan
}

func (r *PhoneDialPlanRegistry) lookup(locale string) (PhoneDialPlan, bool) {
	candidates := append([]string{normalizeLocale(locale)}, localeParentChain(locale)...)

	r.mu.RLock()
	for _, tag := range candidates {
		if p, ok := r.plans[tag]; ok {
			r.mu.RUnlock()
			return p, true
		}
	}
	r.mu.RUnlock()

	for _, tag := range candidates {
		if b, ok := cldrBundles[tag]; ok && b.Phone.CountryCode != "" {
			return b.Phone, true
		}
	}
	return PhoneDialPlan{}, false
}

// phoneFormatter backs the "phone" placeholder type.
type phoneFormatter struct {
	registry *PhoneDialPlanRegistry
}

func (f phoneFormatter) Format(value any, style, locale string) (string, error) {
	raw, ok := coerceStringKey(value)
	if !ok {
		return "", newArgumentTypeMismatchError("phone", value)
	}
	raw = strings.TrimSpace(raw)

	plan, ok := f.registry.lookup(locale)
	if !ok {
		return raw, nil
	}
	return formatPhoneWithDialPlan(raw, plan), nil
}

func formatPhoneWithDialPlan(raw string, plan PhoneDialPlan) string {
	digits := extractDigits(raw)
	if len(digits) == 0 {
		return raw
	}

	total := 0
	for _, g := range plan.Groups {
		total += g
	}

	var national string
	switch {
	case strings.HasPrefix(digits, plan.CountryCode) && len(digits) >= len(plan.CountryCode)+total:
		national = digits[len(plan.CountryCode):]
	case len(digits) == total:
		national = digits
	default:
		return raw
	}
	if len(national) < total {
		return raw
	}

	var b strings.Builder
	b.WriteByte('+')
	b.WriteString(plan.CountryCode)
	b.WriteByte(' ')

	pos := 0
	for i, group := range plan.Groups {
		if group <= 0 || pos >= len(national) {
			break
		}
		upper := pos + group
		if upper > len(national) {
			upper = len(national)
		}
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(national[pos:upper])
		pos = upper
	}
	if pos < len(national) {
		b.WriteByte(' ')
		b.WriteString(national[pos:])
	}
	return b.String()
}

func extractDigits(input string) string {
	var b strings.Builder
	for _, r := range input {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// extendedFormatters builds the optional ordinal/list/measurement/phone
// formatter pack, registered through the same register call the three
// built-in types (number, date, time) use.
func extendedFormatters(phoneRegistry *PhoneDialPlanRegistry) map[string]ValueFormatter {
	return map[string]ValueFormatter{
		"list":        listFormatter{},
		"ordinal":     ordinalFormatter{},
		"measurement": measurementFormatter{},
		"phone":       phoneFormatter{registry: phoneRegistry},
	}
}

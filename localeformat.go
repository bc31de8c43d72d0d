package msgfmt

import (
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// resolveTag parses locale into a language.Tag, falling back to
// language.English for an empty or unparseable tag. This is the same
// fallback the teacher's xtextProvider effectively gets from
// language.Make, made explicit here since we call language.Parse directly.
func resolveTag(locale string) language.Tag {
	if locale == "" {
		return language.English
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return language.English
	}
	return tag
}

var dateLayouts = map[string]string{
	"short":  "1/2/06",
	"medium": "Jan 2, 2006",
	"long":   "January 2, 2006",
	"full":   "Monday, January 2, 2006",
}

var timeLayouts = map[string]string{
	"short":  "3:04 PM",
	"medium": "3:04:05 PM",
}

// numberFormatter backs the "number" placeholder type: locale-aware
// rendering via golang.org/x/text/number, with "integer", "currency", and
// "percent" as the recognized styles (spec.md §4.B). Any other style that
// contains '%' is treated as a raw fmt-style numeric verb (e.g. "%.2f")
// applied to the value; any remaining style renders a plain decimal with
// no locale grouping (fallbackFormatNumber).
type numberFormatter struct{}

func (numberFormatter) Format(value any, style, locale string) (string, error) {
	f, ok := coerceNumber(value)
	if !ok {
		return "", newArgumentTypeMismatchError("number", value)
	}

	tag := resolveTag(locale)
	printer := message.NewPrinter(tag)
	switch style {
	case "", "decimal":
		return printer.Sprintf("%v", number.Decimal(f)), nil
	case "integer":
		return printer.Sprintf("%v", number.Decimal(f, number.MaxFractionDigits(0), number.MinFractionDigits(0))), nil
	case "percent":
		return printer.Sprintf("%v%%", number.Decimal(f*100, number.MaxFractionDigits(2), number.MinFractionDigits(0))), nil
	case "currency":
		unit := defaultCurrencyUnit(tag)
		return printer.Sprintf("%v", currency.Symbol(unit.Amount(f))), nil
	default:
		if strings.Contains(style, "%") {
			return printer.Sprintf(style, f), nil
		}
		return fallbackFormatNumber(f, -1), nil
	}
}

// defaultCurrencyUnit resolves the currency a bare "currency" style
// defaults to for tag, by region, falling back to USD when the locale
// carries no region or x/text has no currency on file for it.
func defaultCurrencyUnit(tag language.Tag) currency.Unit {
	if region, conf := tag.Region(); conf != language.No {
		if unit, ok := currency.FromRegion(region); ok {
			return unit
		}
	}
	unit, _ := currency.ParseISO("USD")
	return unit
}

// dateFormatter backs the "date" placeholder type. Recognized styles are
// short/medium/long/full; any other non-empty style is used directly as a
// Go time layout, the raw-pattern passthrough spec.md calls for.
type dateFormatter struct{}

func (dateFormatter) Format(value any, style, locale string) (string, error) {
	t, ok := coerceTime(value)
	if !ok {
		return "", newArgumentTypeMismatchError("date", value)
	}
	return t.Format(resolveLayout(dateLayouts, style, dateLayouts["medium"])), nil
}

// timeFormatter backs the "time" placeholder type, mirroring dateFormatter.
type timeFormatter struct{}

func (timeFormatter) Format(value any, style, locale string) (string, error) {
	t, ok := coerceTime(value)
	if !ok {
		return "", newArgumentTypeMismatchError("time", value)
	}
	return t.Format(resolveLayout(timeLayouts, style, timeLayouts["short"])), nil
}

func resolveLayout(known map[string]string, style, fallback string) string {
	if style == "" {
		return fallback
	}
	if layout, ok := known[style]; ok {
		return layout
	}
	return style
}

func builtinFormatters() map[string]ValueFormatter {
	return map[string]ValueFormatter{
		"number": numberFormatter{},
		"date":   dateFormatter{},
		"time":   timeFormatter{},
	}
}

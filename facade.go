package msgfmt

import "fmt"

// Formatter is the package's facade: a configured pattern cache, formatter
// registry, and plural-rule registry bundled behind a single Format call.
// A zero Formatter is not usable; build one with New.
type Formatter struct {
	cache         *patternCache
	formatters    *formatterRegistry
	pluralizers   *PluralizerRegistry
	phoneRegistry *PhoneDialPlanRegistry
	defaultLocale string
	cacheEnabled  bool
}

// Option mutates a Formatter under construction.
type Option func(*Formatter) error

// New builds a Formatter from opts. The three built-in value-formatter
// types (number, date, time) are always registered; WithExtendedFormatters
// additionally registers ordinal/list/measurement/phone.
func New(opts ...Option) (*Formatter, error) {
	f := &Formatter{
		formatters:    newFormatterRegistry(),
		pluralizers:   newPluralizerRegistry(),
		phoneRegistry: newPhoneDialPlanRegistry(),
		cacheEnabled:  true,
	}

	for typeKeyword, formatter := range builtinFormatters() {
		if err := f.formatters.register(typeKeyword, formatter); err != nil {
			return nil, err
		}
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(f); err != nil {
			return nil, err
		}
	}

	if f.cacheEnabled {
		f.cache = newPatternCache()
	}

	return f, nil
}

// Format parses pattern (using the cache, when enabled), adapts args via
// ToArgs, and evaluates the result against locale. locale is variadic so
// callers may omit it and fall back to the Formatter's default locale; at
// most one value is read.
func (f *Formatter) Format(pattern string, args any, locale ...string) (string, error) {
	p, err := f.cache.getOrParse(pattern)
	if err != nil {
		return "", err
	}

	a, err := ToArgs(args)
	if err != nil {
		return "", err
	}

	effectiveLocale := f.defaultLocale
	if len(locale) > 0 && locale[0] != "" {
		effectiveLocale = locale[0]
	}

	ev := &evaluator{
		args:        a,
		locale:      effectiveLocale,
		formatters:  f.formatters,
		pluralizers: f.pluralizers,
	}
	return ev.run(p)
}

// RegisterFormatter installs or replaces the ValueFormatter for typeKeyword.
// It returns ErrBranchingTypeReserved for "select", "plural", or
// "selectordinal".
func (f *Formatter) RegisterFormatter(typeKeyword string, formatter ValueFormatter) error {
	return f.formatters.register(typeKeyword, formatter)
}

// Pluralizers exposes the Formatter's cardinal/ordinal plural rule registry
// so callers can override or add locale rules at runtime.
func (f *Formatter) Pluralizers() *PluralizerRegistry {
	return f.pluralizers
}

// PhoneDialPlans exposes the Formatter's phone dial-plan registry, usable
// whether or not WithExtendedFormatters registered the "phone" type.
func (f *Formatter) PhoneDialPlans() *PhoneDialPlanRegistry {
	return f.phoneRegistry
}

// WithDefaultLocale sets the locale Format falls back to when called
// without an explicit locale argument.
func WithDefaultLocale(locale string) Option {
	return func(f *Formatter) error {
		f.defaultLocale = locale
		return nil
	}
}

// WithCache toggles the pattern cache. Disabling it means every Format call
// re-parses its pattern; useful for tests exercising fresh parser state.
func WithCache(enabled bool) Option {
	return func(f *Formatter) error {
		f.cacheEnabled = enabled
		return nil
	}
}

// WithValueFormatter registers formatter under typeKeyword at construction
// time, equivalent to calling RegisterFormatter after New.
func WithValueFormatter(typeKeyword string, formatter ValueFormatter) Option {
	return func(f *Formatter) error {
		if formatter == nil {
			return fmt.Errorf("msgfmt: WithValueFormatter(%q): formatter must not be nil", typeKeyword)
		}
		return f.formatters.register(typeKeyword, formatter)
	}
}

// WithPluralizer registers a locale-specific cardinal/ordinal rule pair at
// construction time, equivalent to calling Pluralizers().Set after New.
func WithPluralizer(locale string, cardinal, ordinal PluralFunc) Option {
	return func(f *Formatter) error {
		f.pluralizers.Set(locale, cardinal, ordinal)
		return nil
	}
}

// WithExtendedFormatters registers the optional ordinal/list/measurement/
// phone formatter pack (see extended.go) in addition to the three built-ins.
func WithExtendedFormatters() Option {
	return func(f *Formatter) error {
		for typeKeyword, formatter := range extendedFormatters(f.phoneRegistry) {
			if err := f.formatters.register(typeKeyword, formatter); err != nil {
				return err
			}
		}
		return nil
	}
}

// WithPhoneDialPlan registers a dial plan for locale at construction time,
// equivalent to calling PhoneDialPlans().Set after New.
func WithPhoneDialPlan(locale string, plan PhoneDialPlan) Option {
	return func(f *Formatter) error {
		f.phoneRegistry.Set(locale, plan)
		return nil
	}
}

package msgfmt

import (
	"strings"
	"time"
)

// evaluator walks a parsed Pattern tree and renders it against a fixed
// argument set, locale, formatter registry, and plural rule registry.
type evaluator struct {
	args        Args
	locale      string
	formatters  *formatterRegistry
	pluralizers *PluralizerRegistry
}

func (e *evaluator) run(p *Pattern) (string, error) {
	var b strings.Builder
	if err := e.evalNodes(p.nodes, nil, &b); err != nil {
		return "", err
	}
	return b.String(), nil
}

// evalNodes renders nodes into b. hashValue is the current plural-hash
// substitution value, non-nil only while inside a plural/selectordinal
// branch's sub-pattern.
func (e *evaluator) evalNodes(nodes []Node, hashValue *float64, b *strings.Builder) error {
	for _, n := range nodes {
		if err := e.evalNode(n, hashValue, b); err != nil {
			return err
		}
	}
	return nil
}

func (e *evaluator) evalNode(n Node, hashValue *float64, b *strings.Builder) error {
	switch node := n.(type) {
	case *LiteralNode:
		b.WriteString(node.Text)
		return nil

	case *VariableNode:
		value, ok := e.args[node.Name]
		if !ok {
			return newMissingArgumentError(node.Name)
		}
		out, err := e.formatDefault(value)
		if err != nil {
			return err
		}
		b.WriteString(out)
		return nil

	case *FormattedNode:
		value, ok := e.args[node.Name]
		if !ok {
			return newMissingArgumentError(node.Name)
		}
		formatter, ok := e.formatters.lookup(node.Type)
		if !ok {
			return newUnknownFormatterError(node.Type)
		}
		out, err := formatter.Format(value, node.Style, e.locale)
		if err != nil {
			return asFormatError(node.Type, err)
		}
		b.WriteString(out)
		return nil

	case *BranchingNode:
		return e.evalBranching(node, b)

	case *PluralHashNode:
		if hashValue == nil {
			// Only reachable if a future caller mis-threads context; the
			// parser never emits '#' outside plural/selectordinal bodies.
			b.WriteByte('#')
			return nil
		}
		out, err := numberFormatter{}.Format(*hashValue, "", e.locale)
		if err != nil {
			return asFormatError("number", err)
		}
		b.WriteString(out)
		return nil

	default:
		return nil
	}
}

// formatDefault renders a bare {name} placeholder's value default-formatted
// for its dynamic type: time.Time uses the locale's default date format,
// numeric Go kinds use the locale's default number format, everything else
// falls back to plain stringification.
func (e *evaluator) formatDefault(value any) (string, error) {
	switch value.(type) {
	case time.Time:
		out, err := dateFormatter{}.Format(value, "", e.locale)
		if err != nil {
			return "", asFormatError("date", err)
		}
		return out, nil
	case float64, float32, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		out, err := numberFormatter{}.Format(value, "", e.locale)
		if err != nil {
			return "", asFormatError("number", err)
		}
		return out, nil
	default:
		return stringify(value), nil
	}
}

func (e *evaluator) evalBranching(node *BranchingNode, b *strings.Builder) error {
	value, ok := e.args[node.Name]
	if !ok {
		return newMissingArgumentError(node.Name)
	}

	if node.Kind == BranchSelect {
		key, ok := coerceStringKey(value)
		if !ok {
			return newArgumentTypeMismatchError(node.Name, value)
		}
		branch := selectBranch(node.Branches, node.other, func(br Branch) bool {
			return !br.IsExact && br.Key == key
		})
		return e.evalNodes(branch.Sub.nodes, nil, b)
	}

	n, ok := coerceNumber(value)
	if !ok {
		return newArgumentTypeMismatchError(node.Name, value)
	}

	// "=N" branch keys match the original, pre-offset value (see
	// DESIGN.md's resolution of spec.md's open question on this point).
	for _, br := range node.Branches {
		if br.IsExact && float64(br.ExactN) == n {
			hash := n - float64(node.Offset)
			return e.evalNodes(br.Sub.nodes, &hash, b)
		}
	}

	// The branch keyword is chosen from the plural function applied to the
	// original value, not the offset-adjusted one; only '#' substitution
	// inside the chosen branch uses the adjusted value. Operands are
	// derived from value's own decimal text when it has one, so a string
	// argument like "1.50" keeps its visible trailing zero.
	ops, ok := operandsFromValue(value)
	if !ok {
		ops = operandsFromFloat(n)
	}
	category := e.categoryFor(node.Kind, ops)
	branch := selectBranch(node.Branches, node.other, func(br Branch) bool {
		return !br.IsExact && br.Key == string(category)
	})

	adjusted := n - float64(node.Offset)
	return e.evalNodes(branch.Sub.nodes, &adjusted, b)
}

func (e *evaluator) categoryFor(kind BranchKind, ops PluralOperands) PluralCategory {
	if kind == BranchSelectOrdinal {
		return e.pluralizers.Ordinal(e.locale)(ops)
	}
	return e.pluralizers.Cardinal(e.locale)(ops)
}

// selectBranch returns the first branch in branches matching match, or the
// designated "other" branch (at index otherIdx) if none match.
func selectBranch(branches []Branch, otherIdx int, match func(Branch) bool) Branch {
	for _, br := range branches {
		if match(br) {
			return br
		}
	}
	return branches[otherIdx]
}

func asFormatError(typeKeyword string, err error) error {
	if fe, ok := err.(*FormatError); ok {
		return fe
	}
	return newFormatterFailureError(typeKeyword, err)
}

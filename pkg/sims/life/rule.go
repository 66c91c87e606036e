package life

import (
	"fmt"
	"strings"
)

// Rule holds birth and survival tables indexed by live neighbor count.
type Rule struct {
	Name    string
	Birth   [9]bool
	Survive [9]bool
}

// Next returns the state of a cell with the given neighbor count in the
// following generation.
func (r Rule) Next(alive bool, neighbors int) bool {
	if alive {
		return r.Survive[neighbors]
	}
	return r.Birth[neighbors]
}

// String renders the rule in B/S notation, e.g. "B3/S23".
func (r Rule) String() string {
	var b strings.Builder
	b.WriteByte('B')
	for n, ok := range r.Birth {
		if ok {
			b.WriteByte(byte('0' + n))
		}
	}
	b.WriteString("/S")
	for n, ok := range r.Survive {
		if ok {
			b.WriteByte(byte('0' + n))
		}
	}
	return b.String()
}

// Label returns the rule name, or its notation when it has none.
func (r Rule) Label() string {
	if r.Name != "" {
		return r.Name
	}
	return r.String()
}

func mustRule(name, notation string) Rule {
	r, err := ParseRule(notation)
	if err != nil {
		panic(err)
	}
	r.Name = name
	return r
}

var (
	// ConwayRule is the classic B3/S23 rule.
	ConwayRule = mustRule("conway", "B3/S23")
	// GrowthRule favours expansion and is used when an adaptive world thins out.
	GrowthRule = mustRule("growth", "B36/S236")
	// DecayRule is B3/S23 under the name used by the adaptive controller.
	DecayRule = mustRule("decay", "B3/S23")
)

var rules = []Rule{
	ConwayRule,
	DecayRule,
	GrowthRule,
	mustRule("highlife", "B36/S23"),
	mustRule("seeds", "B2/S"),
	mustRule("daynight", "B3678/S34678"),
}

// Rules returns the named rule catalogue.
func Rules() []Rule {
	return append([]Rule(nil), rules...)
}

// LookupRule resolves a catalogue name, falling back to B/S notation.
func LookupRule(s string) (Rule, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, r := range rules {
		if r.Name == name {
			return r, nil
		}
	}
	return ParseRule(s)
}

// ParseRule parses B/S notation such as "B3/S23" or "S23/B3". Either part may
// list no digits.
func ParseRule(s string) (Rule, error) {
	var r Rule
	parts := strings.Split(strings.ToUpper(strings.TrimSpace(s)), "/")
	if len(parts) != 2 {
		return Rule{}, fmt.Errorf("%w: rule %q must look like B3/S23", ErrInvalidArgument, s)
	}
	var seen [2]bool
	for _, part := range parts {
		if part == "" {
			return Rule{}, fmt.Errorf("%w: rule %q has an empty section", ErrInvalidArgument, s)
		}
		var table *[9]bool
		var slot int
		switch part[0] {
		case 'B':
			table, slot = &r.Birth, 0
		case 'S':
			table, slot = &r.Survive, 1
		default:
			return Rule{}, fmt.Errorf("%w: rule %q section %q must start with B or S", ErrInvalidArgument, s, part)
		}
		if seen[slot] {
			return Rule{}, fmt.Errorf("%w: rule %q repeats section %c", ErrInvalidArgument, s, part[0])
		}
		seen[slot] = true
		for _, ch := range part[1:] {
			if ch < '0' || ch > '8' {
				return Rule{}, fmt.Errorf("%w: rule %q has invalid neighbor count %q", ErrInvalidArgument, s, ch)
			}
			n := int(ch - '0')
			if table[n] {
				return Rule{}, fmt.Errorf("%w: rule %q repeats neighbor count %d", ErrInvalidArgument, s, n)
			}
			table[n] = true
		}
	}
	return r, nil
}

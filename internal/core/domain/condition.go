package domain

import "strings"

// Condition is a predicate over a Resolution that gates a dependency
// declaration. The set of conditions is closed: Always, IfVariant,
// IfVersionInRange and their And/Or combinations. Evaluation is pure.
type Condition interface {
	// Eval reports whether the condition holds for the given resolution.
	Eval(r *Resolution) bool

	// String renders the condition for diagnostics.
	String() string

	// sealed prevents implementations outside this package.
	sealed()
}

type alwaysCondition struct{}

// Always returns the condition that holds for every resolution.
func Always() Condition {
	return alwaysCondition{}
}

func (alwaysCondition) Eval(*Resolution) bool { return true }
func (alwaysCondition) String() string        { return "always" }
func (alwaysCondition) sealed()               {}

type variantCondition struct {
	name    InternedString
	enabled bool
}

// IfVariant returns a condition that holds when the named variant resolves
// to the expected value. A variant absent from the resolution never matches.
func IfVariant(name string, enabled bool) Condition {
	return variantCondition{name: NewInternedString(name), enabled: enabled}
}

func (c variantCondition) Eval(r *Resolution) bool {
	value, ok := r.Variant(c.name)
	return ok && value == c.enabled
}

func (c variantCondition) String() string {
	if c.enabled {
		return "+" + c.name.String()
	}
	return "~" + c.name.String()
}

func (variantCondition) sealed() {}

type versionCondition struct {
	versions VersionRange
}

// IfVersionInRange returns a condition that holds when the resolution's
// selected version lies in the inclusive range. Empty bounds are open.
func IfVersionInRange(lo, hi string) Condition {
	return versionCondition{versions: VersionRange{Lo: lo, Hi: hi}}
}

func (c versionCondition) Eval(r *Resolution) bool {
	return c.versions.Contains(r.VersionID())
}

func (c versionCondition) String() string {
	return "@" + c.versions.Lo + ":" + c.versions.Hi
}

func (versionCondition) sealed() {}

type andCondition []Condition

// And returns the conjunction of the given conditions.
// With no operands it behaves like Always.
func And(conds ...Condition) Condition {
	return andCondition(conds)
}

func (c andCondition) Eval(r *Resolution) bool {
	for _, sub := range c {
		if !sub.Eval(r) {
			return false
		}
	}
	return true
}

func (c andCondition) String() string { return joinConditions(c, " and ") }
func (andCondition) sealed()          {}

type orCondition []Condition

// Or returns the disjunction of the given conditions.
// With no operands it never holds.
func Or(conds ...Condition) Condition {
	return orCondition(conds)
}

func (c orCondition) Eval(r *Resolution) bool {
	for _, sub := range c {
		if sub.Eval(r) {
			return true
		}
	}
	return false
}

func (c orCondition) String() string { return joinConditions(c, " or ") }
func (orCondition) sealed()          {}

func joinConditions(conds []Condition, sep string) string {
	parts := make([]string, len(conds))
	for i, sub := range conds {
		parts[i] = sub.String()
	}
	return "(" + strings.Join(parts, sep) + ")"
}

package view

import (
	"slices"

	"github.com/jask/contactbook/internal/contact"
)

// Compare returns a comparator for spec using the pipeline's collation.
// Equal keys compare as 0 in both directions so stable sorts keep their
// relative order.
func (p *Pipeline) Compare(spec SortSpec) func(a, b contact.Contact) int {
	return func(a, b contact.Contact) int {
		if spec.Direction == Descending {
			return p.coll.CompareString(b.Value(spec.Field), a.Value(spec.Field))
		}
		return p.coll.CompareString(a.Value(spec.Field), b.Value(spec.Field))
	}
}

// Sort stable-sorts seq in place by spec.
func (p *Pipeline) Sort(seq []contact.Contact, spec SortSpec) {
	slices.SortStableFunc(seq, p.Compare(spec))
}

// SortState remembers the last sort control used.
type SortState struct {
	Active bool
	Spec   SortSpec
}

// Toggle applies one press of the sort control for field: a field not used
// last time starts ascending, the same field flips direction.
func (s SortState) Toggle(field contact.Field) SortState {
	if s.Active && s.Spec.Field == field {
		next := Ascending
		if s.Spec.Direction == Ascending {
			next = Descending
		}
		return SortState{Active: true, Spec: SortSpec{Field: field, Direction: next}}
	}
	return SortState{Active: true, Spec: SortSpec{Field: field, Direction: Ascending}}
}

// Indicator returns the arrow shown next to field's sort control, or "".
func (s SortState) Indicator(field contact.Field) string {
	if !s.Active || s.Spec.Field != field {
		return ""
	}
	if s.Spec.Direction == Descending {
		return "▼"
	}
	return "▲"
}

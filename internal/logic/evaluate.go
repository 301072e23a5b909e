package logic

import (
	"slices"
	"strconv"
	"strings"
)

// VisibleFieldIDs returns the IDs of fields a respondent can see. Fields no
// showFields logic targets are always visible; a targeted field appears once
// any showFields logic naming it is fulfilled. Showing a field can fulfil
// further logic, so evaluation repeats until nothing changes.
func VisibleFieldIDs(fields []Field, logics []Logic, inputs Inputs) map[string]struct{} {
	byID := indexFields(fields)

	targeted := make(map[string]struct{})
	for _, l := range logics {
		if l.Type != TypeShowFields {
			continue
		}
		for _, id := range l.Show {
			targeted[id] = struct{}{}
		}
	}

	visible := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if _, ok := targeted[f.ID]; !ok {
			visible[f.ID] = struct{}{}
		}
	}

	for changed := true; changed; {
		changed = false
		for _, l := range logics {
			if l.Type != TypeShowFields || !allFulfilled(l.Conditions, byID, visible, inputs) {
				continue
			}
			for _, id := range l.Show {
				if _, ok := byID[id]; !ok {
					continue
				}
				if _, ok := visible[id]; ok {
					continue
				}
				visible[id] = struct{}{}
				changed = true
			}
		}
	}

	return visible
}

// LogicUnitPreventingSubmit returns the first preventSubmit logic satisfied
// by inputs, or nil when the form may be submitted.
func LogicUnitPreventingSubmit(fields []Field, logics []Logic, inputs Inputs) *Logic {
	byID := indexFields(fields)
	visible := VisibleFieldIDs(fields, logics, inputs)

	for i := range logics {
		l := &logics[i]
		if l.Type != TypePreventSubmit {
			continue
		}
		if allFulfilled(l.Conditions, byID, visible, inputs) {
			return l
		}
	}
	return nil
}

func indexFields(fields []Field) map[string]Field {
	byID := make(map[string]Field, len(fields))
	for _, f := range fields {
		byID[f.ID] = f
	}
	return byID
}

// An empty condition list never fires.
func allFulfilled(conds []Condition, byID map[string]Field, visible map[string]struct{}, inputs Inputs) bool {
	if len(conds) == 0 {
		return false
	}
	for _, c := range conds {
		if !fulfilled(c, byID, visible, inputs) {
			return false
		}
	}
	return true
}

func fulfilled(c Condition, byID map[string]Field, visible map[string]struct{}, inputs Inputs) bool {
	field, ok := byID[c.Field]
	if !ok {
		return false
	}
	if _, ok := visible[c.Field]; !ok {
		return false
	}

	answer, ok := inputs[c.Field]
	if !ok || answer.IsEmpty() {
		return false
	}

	switch c.State {
	case StateEquals:
		if field.Type == FieldTypeCheckbox {
			return sameSet(answer.Values, c.Value.Options())
		}
		if field.Type.IsNumeric() {
			a, okA := parseNumber(answer.Value)
			b, okB := parseNumber(c.Value.Single)
			return okA && okB && a == b
		}
		return strings.TrimSpace(answer.Value) == strings.TrimSpace(c.Value.Single)

	case StateLTE, StateGTE:
		a, okA := parseNumber(answer.Value)
		b, okB := parseNumber(c.Value.Single)
		if !okA || !okB {
			return false
		}
		if c.State == StateLTE {
			return a <= b
		}
		return a >= b

	case StateEither:
		options := c.Value.Options()
		if field.Type == FieldTypeCheckbox {
			for _, v := range answer.Values {
				if slices.Contains(options, v) {
					return true
				}
			}
			return false
		}
		return slices.Contains(options, answer.Value)
	}

	return false
}

func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	return f, err == nil
}

func sameSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	x := slices.Clone(a)
	y := slices.Clone(b)
	slices.Sort(x)
	slices.Sort(y)
	return slices.Equal(x, y)
}

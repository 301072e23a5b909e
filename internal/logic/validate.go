package logic

import (
	"errors"
	"fmt"
)

var ErrInvalidLogic = errors.New("invalid form logic")

// Validate checks that fields and logics form a consistent definition.
// Errors wrap ErrInvalidLogic.
func Validate(fields []Field, logics []Logic) error {
	byID := make(map[string]Field, len(fields))
	for i, f := range fields {
		if f.ID == "" {
			return fmt.Errorf("%w: field %d has no id", ErrInvalidLogic, i)
		}
		if _, dup := byID[f.ID]; dup {
			return fmt.Errorf("%w: duplicate field id %q", ErrInvalidLogic, f.ID)
		}
		if !f.Type.IsValid() {
			return fmt.Errorf("%w: field %q has unknown type %q", ErrInvalidLogic, f.ID, f.Type)
		}
		byID[f.ID] = f
	}

	for i, l := range logics {
		name := l.ID
		if name == "" {
			name = fmt.Sprintf("#%d", i)
		}
		if err := validateLogic(l, byID); err != nil {
			return fmt.Errorf("%w: logic %s: %s", ErrInvalidLogic, name, err.Error())
		}
	}
	return nil
}

func validateLogic(l Logic, byID map[string]Field) error {
	if len(l.Conditions) == 0 {
		return errors.New("no conditions")
	}

	condFields := make(map[string]struct{}, len(l.Conditions))
	for _, c := range l.Conditions {
		if err := validateCondition(c, byID); err != nil {
			return err
		}
		condFields[c.Field] = struct{}{}
	}

	switch l.Type {
	case TypeShowFields:
		if len(l.Show) == 0 {
			return errors.New("showFields logic has no fields to show")
		}
		for _, id := range l.Show {
			if _, ok := byID[id]; !ok {
				return fmt.Errorf("shows unknown field %q", id)
			}
			if _, ok := condFields[id]; ok {
				return fmt.Errorf("field %q cannot show itself", id)
			}
		}
	case TypePreventSubmit:
		if l.PreventSubmitMessage == "" {
			return errors.New("preventSubmit logic has no message")
		}
	default:
		return fmt.Errorf("unknown logic type %q", l.Type)
	}
	return nil
}

func validateCondition(c Condition, byID map[string]Field) error {
	field, ok := byID[c.Field]
	if !ok {
		return fmt.Errorf("condition references unknown field %q", c.Field)
	}
	if !field.Type.IsInput() {
		return fmt.Errorf("field %q cannot be used in a condition", c.Field)
	}
	if !c.State.IsValid() {
		return fmt.Errorf("unknown condition state %q", c.State)
	}
	if c.Value.IsEmpty() {
		return fmt.Errorf("condition on %q has no value", c.Field)
	}

	switch {
	case c.State.IsNumeric():
		if !field.Type.IsNumeric() {
			return fmt.Errorf("state %q requires a numeric field, %q is %s", c.State, c.Field, field.Type)
		}
		if _, ok := parseNumber(c.Value.Single); !ok {
			return fmt.Errorf("state %q requires a numeric value", c.State)
		}
	case c.State == StateEither:
		if !field.Type.HasOptions() {
			return fmt.Errorf("state %q requires an option field, %q is %s", c.State, c.Field, field.Type)
		}
	}
	return nil
}

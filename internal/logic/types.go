// Package logic evaluates form logic: which fields are visible for a given
// set of answers and whether a "prevent submit" unit blocks submission.
package logic

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/invopop/jsonschema"
)

type FieldType string

const (
	FieldTypeShortText FieldType = "textfield"
	FieldTypeLongText  FieldType = "textarea"
	FieldTypeNumber    FieldType = "number"
	FieldTypeDecimal   FieldType = "decimal"
	FieldTypeRating    FieldType = "rating"
	FieldTypeDropdown  FieldType = "dropdown"
	FieldTypeRadio     FieldType = "radiobutton"
	FieldTypeCheckbox  FieldType = "checkbox"
	FieldTypeYesNo     FieldType = "yes_no"
	FieldTypeEmail     FieldType = "email"
	FieldTypeMobile    FieldType = "mobile"
	FieldTypeDate      FieldType = "date"
	FieldTypeSection   FieldType = "section"
	FieldTypeStatement FieldType = "statement"
)

func (t FieldType) IsValid() bool {
	switch t {
	case FieldTypeShortText, FieldTypeLongText, FieldTypeNumber, FieldTypeDecimal,
		FieldTypeRating, FieldTypeDropdown, FieldTypeRadio, FieldTypeCheckbox,
		FieldTypeYesNo, FieldTypeEmail, FieldTypeMobile, FieldTypeDate,
		FieldTypeSection, FieldTypeStatement:
		return true
	}
	return false
}

func (t FieldType) IsNumeric() bool {
	return t == FieldTypeNumber || t == FieldTypeDecimal || t == FieldTypeRating
}

// HasOptions reports whether answers come from a fixed option list.
func (t FieldType) HasOptions() bool {
	return t == FieldTypeDropdown || t == FieldTypeRadio || t == FieldTypeCheckbox || t == FieldTypeYesNo
}

// IsInput is false for purely presentational fields, which can never be
// used in a condition.
func (t FieldType) IsInput() bool {
	return t != FieldTypeSection && t != FieldTypeStatement
}

type Field struct {
	ID          string    `json:"id" jsonschema:"required,minLength=1"`
	Type        FieldType `json:"field_type" jsonschema:"required,enum=textfield,enum=textarea,enum=number,enum=decimal,enum=rating,enum=dropdown,enum=radiobutton,enum=checkbox,enum=yes_no,enum=email,enum=mobile,enum=date,enum=section,enum=statement"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Required    bool      `json:"required"`
	Options     []string  `json:"options,omitempty"`
}

type Type string

const (
	TypeShowFields    Type = "showFields"
	TypePreventSubmit Type = "preventSubmit"
)

type State string

const (
	StateEquals State = "is equals to"
	StateLTE    State = "is less than or equal to"
	StateGTE    State = "is more than or equal to"
	StateEither State = "is either"
)

func (s State) IsValid() bool {
	switch s {
	case StateEquals, StateLTE, StateGTE, StateEither:
		return true
	}
	return false
}

func (s State) IsNumeric() bool {
	return s == StateLTE || s == StateGTE
}

type Condition struct {
	Field string `json:"field" jsonschema:"required"`
	State State  `json:"state" jsonschema:"required,enum=is equals to,enum=is less than or equal to,enum=is more than or equal to,enum=is either"`
	Value Value  `json:"value" jsonschema:"required"`
}

type Logic struct {
	ID                   string      `json:"id"`
	Type                 Type        `json:"logic_type" jsonschema:"required,enum=showFields,enum=preventSubmit"`
	Conditions           []Condition `json:"conditions" jsonschema:"required,minItems=1"`
	Show                 []string    `json:"show,omitempty"`
	PreventSubmitMessage string      `json:"prevent_submit_message,omitempty"`
}

// Value is a condition operand. Clients send a string, a number or, for
// "is either", an array; numbers are kept in their textual form.
type Value struct {
	Single string
	Set    []string
}

// Options returns the operand as a list, wrapping a single value.
func (v Value) Options() []string {
	if v.Set != nil {
		return v.Set
	}
	if v.Single == "" {
		return nil
	}
	return []string{v.Single}
}

func (v Value) IsEmpty() bool {
	return v.Single == "" && len(v.Set) == 0
}

// JSONSchema describes the accepted operand shapes for schema reflection.
func (Value) JSONSchema() *jsonschema.Schema {
	scalar := []*jsonschema.Schema{{Type: "string"}, {Type: "number"}}
	return &jsonschema.Schema{
		OneOf: append(scalar, &jsonschema.Schema{
			Type:  "array",
			Items: &jsonschema.Schema{AnyOf: scalar},
		}),
	}
}

func (v Value) MarshalJSON() ([]byte, error) {
	if v.Set != nil {
		return json.Marshal(v.Set)
	}
	return json.Marshal(v.Single)
}

func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*v = Value{}
		return nil
	}

	if data[0] == '[' {
		var raw []json.RawMessage
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		set := make([]string, 0, len(raw))
		for _, r := range raw {
			s, err := scalarString(r)
			if err != nil {
				return err
			}
			set = append(set, s)
		}
		*v = Value{Set: set}
		return nil
	}

	s, err := scalarString(data)
	if err != nil {
		return err
	}
	*v = Value{Single: s}
	return nil
}

func scalarString(data json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		return n.String(), nil
	}
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		return strconv.FormatBool(b), nil
	}
	return "", fmt.Errorf("unsupported condition value %s", string(data))
}

// Answer is a respondent's input for one field. Checkbox answers use Values.
type Answer struct {
	Value  string   `json:"answer,omitempty"`
	Values []string `json:"answer_array,omitempty"`
}

func (a Answer) IsEmpty() bool {
	return a.Value == "" && len(a.Values) == 0
}

// Inputs maps field ID to answer.
type Inputs map[string]Answer

package logic_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Primesh-FL/FormSG/internal/logic"
)

var _ = Describe("Evaluate", func() {
	fields := []logic.Field{
		{ID: "age", Type: logic.FieldTypeNumber, Title: "Age"},
		{ID: "country", Type: logic.FieldTypeDropdown, Title: "Country", Options: []string{"SG", "MY", "ID"}},
		{ID: "pets", Type: logic.FieldTypeCheckbox, Title: "Pets", Options: []string{"cat", "dog", "fish"}},
		{ID: "nric", Type: logic.FieldTypeShortText, Title: "NRIC"},
		{ID: "dog_name", Type: logic.FieldTypeShortText, Title: "Dog name"},
	}

	showNric := logic.Logic{
		ID:         "show-nric",
		Type:       logic.TypeShowFields,
		Conditions: []logic.Condition{{Field: "country", State: logic.StateEquals, Value: logic.Value{Single: "SG"}}},
		Show:       []string{"nric"},
	}
	showDogName := logic.Logic{
		ID:         "show-dog-name",
		Type:       logic.TypeShowFields,
		Conditions: []logic.Condition{{Field: "pets", State: logic.StateEither, Value: logic.Value{Set: []string{"dog"}}}},
		Show:       []string{"dog_name"},
	}
	blockMinors := logic.Logic{
		ID:                   "block-minors",
		Type:                 logic.TypePreventSubmit,
		Conditions:           []logic.Condition{{Field: "age", State: logic.StateLTE, Value: logic.Value{Single: "17"}}},
		PreventSubmitMessage: "You must be 18 or older",
	}

	Describe("VisibleFieldIDs", func() {
		It("hides targeted fields until their logic is fulfilled", func() {
			visible := logic.VisibleFieldIDs(fields, []logic.Logic{showNric, showDogName}, logic.Inputs{})

			Expect(visible).To(HaveKey("age"))
			Expect(visible).To(HaveKey("country"))
			Expect(visible).NotTo(HaveKey("nric"))
			Expect(visible).NotTo(HaveKey("dog_name"))
		})

		It("shows a targeted field when its conditions are met", func() {
			visible := logic.VisibleFieldIDs(fields, []logic.Logic{showNric}, logic.Inputs{
				"country": {Value: "SG"},
			})

			Expect(visible).To(HaveKey("nric"))
		})

		It("shows a field when any checkbox option is in the set", func() {
			visible := logic.VisibleFieldIDs(fields, []logic.Logic{showDogName}, logic.Inputs{
				"pets": {Values: []string{"cat", "dog"}},
			})

			Expect(visible).To(HaveKey("dog_name"))
		})

		It("follows chains of showFields logic to a fixed point", func() {
			chained := []logic.Logic{
				{
					Type:       logic.TypeShowFields,
					Conditions: []logic.Condition{{Field: "nric", State: logic.StateEquals, Value: logic.Value{Single: "S1234567A"}}},
					Show:       []string{"dog_name"},
				},
				showNric,
			}

			visible := logic.VisibleFieldIDs(fields, chained, logic.Inputs{
				"country": {Value: "SG"},
				"nric":    {Value: "S1234567A"},
			})

			Expect(visible).To(HaveKey("nric"))
			Expect(visible).To(HaveKey("dog_name"))
		})

		It("ignores answers to hidden fields", func() {
			chained := []logic.Logic{
				{
					Type:       logic.TypeShowFields,
					Conditions: []logic.Condition{{Field: "nric", State: logic.StateEquals, Value: logic.Value{Single: "S1234567A"}}},
					Show:       []string{"dog_name"},
				},
				showNric,
			}

			visible := logic.VisibleFieldIDs(fields, chained, logic.Inputs{
				"country": {Value: "MY"},
				"nric":    {Value: "S1234567A"},
			})

			Expect(visible).NotTo(HaveKey("nric"))
			Expect(visible).NotTo(HaveKey("dog_name"))
		})
	})

	Describe("LogicUnitPreventingSubmit", func() {
		It("returns nil when no unit is fulfilled", func() {
			unit := logic.LogicUnitPreventingSubmit(fields, []logic.Logic{blockMinors}, logic.Inputs{
				"age": {Value: "30"},
			})

			Expect(unit).To(BeNil())
		})

		It("returns the fulfilled unit with its message", func() {
			unit := logic.LogicUnitPreventingSubmit(fields, []logic.Logic{blockMinors}, logic.Inputs{
				"age": {Value: "16"},
			})

			Expect(unit).NotTo(BeNil())
			Expect(unit.ID).To(Equal("block-minors"))
			Expect(unit.PreventSubmitMessage).To(Equal("You must be 18 or older"))
		})

		It("does not fire on unanswered fields", func() {
			unit := logic.LogicUnitPreventingSubmit(fields, []logic.Logic{blockMinors}, logic.Inputs{})

			Expect(unit).To(BeNil())
		})

		It("requires every condition to hold", func() {
			both := logic.Logic{
				Type: logic.TypePreventSubmit,
				Conditions: []logic.Condition{
					{Field: "age", State: logic.StateGTE, Value: logic.Value{Single: "65"}},
					{Field: "country", State: logic.StateEither, Value: logic.Value{Set: []string{"MY", "ID"}}},
				},
				PreventSubmitMessage: "Not eligible",
			}

			Expect(logic.LogicUnitPreventingSubmit(fields, []logic.Logic{both}, logic.Inputs{
				"age": {Value: "70"}, "country": {Value: "SG"},
			})).To(BeNil())

			Expect(logic.LogicUnitPreventingSubmit(fields, []logic.Logic{both}, logic.Inputs{
				"age": {Value: "70"}, "country": {Value: "ID"},
			})).NotTo(BeNil())
		})

		It("skips units whose condition field is hidden", func() {
			blockNric := logic.Logic{
				Type:                 logic.TypePreventSubmit,
				Conditions:           []logic.Condition{{Field: "nric", State: logic.StateEquals, Value: logic.Value{Single: "S0000000A"}}},
				PreventSubmitMessage: "Blocked",
			}
			logics := []logic.Logic{showNric, blockNric}

			Expect(logic.LogicUnitPreventingSubmit(fields, logics, logic.Inputs{
				"country": {Value: "MY"}, "nric": {Value: "S0000000A"},
			})).To(BeNil())

			Expect(logic.LogicUnitPreventingSubmit(fields, logics, logic.Inputs{
				"country": {Value: "SG"}, "nric": {Value: "S0000000A"},
			})).NotTo(BeNil())
		})

		It("returns the first fulfilled unit in order", func() {
			other := blockMinors
			other.ID = "second"
			other.PreventSubmitMessage = "second"

			unit := logic.LogicUnitPreventingSubmit(fields, []logic.Logic{blockMinors, other}, logic.Inputs{
				"age": {Value: "10"},
			})

			Expect(unit.ID).To(Equal("block-minors"))
		})
	})

	DescribeTable("condition states",
		func(field logic.Field, cond logic.Condition, answer logic.Answer, want bool) {
			unit := logic.Logic{
				Type:                 logic.TypePreventSubmit,
				Conditions:           []logic.Condition{cond},
				PreventSubmitMessage: "blocked",
			}
			got := logic.LogicUnitPreventingSubmit([]logic.Field{field}, []logic.Logic{unit}, logic.Inputs{field.ID: answer})
			Expect(got != nil).To(Equal(want))
		},
		Entry("number equals",
			logic.Field{ID: "n", Type: logic.FieldTypeNumber},
			logic.Condition{Field: "n", State: logic.StateEquals, Value: logic.Value{Single: "5"}},
			logic.Answer{Value: "5.0"}, true),
		Entry("number not equal",
			logic.Field{ID: "n", Type: logic.FieldTypeNumber},
			logic.Condition{Field: "n", State: logic.StateEquals, Value: logic.Value{Single: "5"}},
			logic.Answer{Value: "6"}, false),
		Entry("lte at boundary",
			logic.Field{ID: "n", Type: logic.FieldTypeDecimal},
			logic.Condition{Field: "n", State: logic.StateLTE, Value: logic.Value{Single: "2.5"}},
			logic.Answer{Value: "2.5"}, true),
		Entry("gte below",
			logic.Field{ID: "n", Type: logic.FieldTypeRating},
			logic.Condition{Field: "n", State: logic.StateGTE, Value: logic.Value{Single: "4"}},
			logic.Answer{Value: "3"}, false),
		Entry("non numeric answer",
			logic.Field{ID: "n", Type: logic.FieldTypeNumber},
			logic.Condition{Field: "n", State: logic.StateLTE, Value: logic.Value{Single: "10"}},
			logic.Answer{Value: "abc"}, false),
		Entry("text equals",
			logic.Field{ID: "t", Type: logic.FieldTypeShortText},
			logic.Condition{Field: "t", State: logic.StateEquals, Value: logic.Value{Single: "yes"}},
			logic.Answer{Value: "yes"}, true),
		Entry("radio either",
			logic.Field{ID: "r", Type: logic.FieldTypeRadio},
			logic.Condition{Field: "r", State: logic.StateEither, Value: logic.Value{Set: []string{"a", "b"}}},
			logic.Answer{Value: "b"}, true),
		Entry("radio either miss",
			logic.Field{ID: "r", Type: logic.FieldTypeRadio},
			logic.Condition{Field: "r", State: logic.StateEither, Value: logic.Value{Set: []string{"a", "b"}}},
			logic.Answer{Value: "c"}, false),
		Entry("checkbox equals same set",
			logic.Field{ID: "c", Type: logic.FieldTypeCheckbox},
			logic.Condition{Field: "c", State: logic.StateEquals, Value: logic.Value{Set: []string{"x", "y"}}},
			logic.Answer{Values: []string{"y", "x"}}, true),
		Entry("checkbox equals subset",
			logic.Field{ID: "c", Type: logic.FieldTypeCheckbox},
			logic.Condition{Field: "c", State: logic.StateEquals, Value: logic.Value{Set: []string{"x", "y"}}},
			logic.Answer{Values: []string{"x"}}, false),
	)
})

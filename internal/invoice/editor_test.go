package invoice

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// fixedIDs always returns the same id, to force collisions.
type fixedIDs string

func (f fixedIDs) Next() string { return string(f) }

func filledForm(qty, price string) FormState {
	s := UpdateField(EmptyForm(), FieldQuantity, qty)
	return UpdateField(s, FieldUnitPrice, price)
}

func TestSubmitCreatesRecord(t *testing.T) {
	t.Parallel()

	ids := NewSequence(0)
	form := filledForm("2", "50")

	list, editing, reset, outcome := Submit(form, "", nil, ids)
	require.Equal(t, Created, outcome)
	require.Len(t, list, 1)
	require.Equal(t, "1", list[0].ID)
	require.Equal(t, form, list[0].FormState)
	require.Empty(t, editing)
	require.Equal(t, EmptyForm(), reset)
}

func TestSubmitUntouchedFormStoresBlankValues(t *testing.T) {
	t.Parallel()

	s, outcome := NewSession().Submit(NewSequence(0))
	require.Equal(t, Created, outcome)
	require.Len(t, s.Records, 1)

	rec := s.Records[0]
	require.Equal(t, "1", rec.ID)
	require.Equal(t, EmptyForm(), rec.FormState)
	require.Empty(t, rec.DiscountAmount)
	require.Empty(t, rec.TaxAmount)
	require.Empty(t, rec.TotalPrice)
	require.Equal(t, "0.00", s.Records.GrandTotal())
}

func TestSubmitTwiceWithoutEditingGivesDistinctIDs(t *testing.T) {
	t.Parallel()

	for _, strategy := range []string{StrategySequence, StrategySnowflake, StrategyUUID} {
		ids, err := NewIDGenerator(strategy, 1)
		require.NoError(t, err)

		s := NewSession()
		s = s.UpdateField(FieldQuantity, "1")
		s, _ = s.Submit(ids)
		s = s.UpdateField(FieldQuantity, "1")
		s, outcome := s.Submit(ids)

		require.Equal(t, Created, outcome)
		require.Len(t, s.Records, 2, strategy)
		require.NotEqual(t, s.Records[0].ID, s.Records[1].ID, strategy)
		require.NotEmpty(t, s.Records[0].ID)
		require.NotEmpty(t, s.Records[1].ID)
	}
}

func TestSubmitCreateGrowsListByOne(t *testing.T) {
	t.Parallel()

	ids := NewSequence(0)
	var list List
	seen := map[string]bool{}
	for i := 0; i < 25; i++ {
		before := len(list)
		list, _, _, _ = Submit(filledForm("1", "1"), "", list, ids)
		require.Len(t, list, before+1)
		id := list[len(list)-1].ID
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestSubmitAvoidsCollidingIDs(t *testing.T) {
	t.Parallel()

	list := List{{ID: "1", FormState: filledForm("1", "1")}}
	list, _, _, outcome := Submit(filledForm("2", "2"), "", list, fixedIDs("1"))
	require.Equal(t, Created, outcome)
	require.Len(t, list, 2)
	require.Equal(t, "1-2", list[1].ID)

	list, _, _, _ = Submit(filledForm("3", "3"), "", list, fixedIDs("1"))
	require.Equal(t, "1-3", list[2].ID)

	list, _, _, _ = Submit(filledForm("4", "4"), "", list, fixedIDs(""))
	require.Equal(t, "record-4", list[3].ID)
}

func TestSubmitUpdatesInPlace(t *testing.T) {
	t.Parallel()

	ids := NewSequence(0)
	s := NewSession()
	for _, qty := range []string{"1", "2", "3"} {
		s = s.UpdateField(FieldQuantity, qty)
		s = s.UpdateField(FieldUnitPrice, "10")
		s, _ = s.Submit(ids)
	}
	require.Len(t, s.Records, 3)
	before := s.Records

	s, ok := s.SelectForEdit("2")
	require.True(t, ok)
	require.True(t, s.IsEditing())
	s = s.UpdateField(FieldQuantity, "7")
	s, outcome := s.Submit(ids)

	require.Equal(t, Updated, outcome)
	require.False(t, s.IsEditing())
	require.Equal(t, EmptyForm(), s.Form)
	require.Len(t, s.Records, 3)
	require.Equal(t, []string{"1", "2", "3"}, []string{s.Records[0].ID, s.Records[1].ID, s.Records[2].ID})
	require.Equal(t, "7", s.Records[1].Quantity)
	require.Equal(t, "70.00", s.Records[1].TotalPrice)
	require.Equal(t, before[0], s.Records[0])
	require.Equal(t, before[2], s.Records[2])

	// the previous list value is not touched
	require.Equal(t, "2", before[1].Quantity)
}

func TestSubmitStaleEditLeavesListAlone(t *testing.T) {
	t.Parallel()

	list := List{{ID: "a", FormState: filledForm("1", "1")}}
	form := filledForm("9", "9")

	got, editing, reset, outcome := Submit(form, "missing", list, NewSequence(0))
	require.Equal(t, Stale, outcome)
	require.Equal(t, list, got)
	require.Empty(t, editing)
	require.Equal(t, EmptyForm(), reset)
}

func TestSelectForEditLoadsStoredValuesVerbatim(t *testing.T) {
	t.Parallel()

	rec := Record{ID: "42", FormState: FormState{
		Quantity:           "2",
		UnitPrice:          "50",
		DiscountPercentage: "10",
		DiscountAmount:     "11.11",
		TaxPercentage:      "5",
		TaxAmount:          "0.01",
		TotalPrice:         "1.23",
	}}

	form, editing := SelectForEdit(rec)
	require.Equal(t, rec.FormState, form)
	require.Equal(t, "42", editing)

	s := Session{Records: List{rec}}
	s, ok := s.SelectForEdit("42")
	require.True(t, ok)
	require.Equal(t, "42", s.Editing)
	require.Equal(t, "1.23", s.Form.TotalPrice)

	// the next keystroke re-derives
	s = s.UpdateField(FieldTaxPercentage, "5")
	require.Equal(t, "94.50", s.Form.TotalPrice)
}

func TestSessionSelectUnknownRecord(t *testing.T) {
	t.Parallel()

	s := NewSession().UpdateField(FieldQuantity, "3")
	got, ok := s.SelectForEdit("nope")
	require.False(t, ok)
	require.Equal(t, s, got)
}

func TestSessionCancelEdit(t *testing.T) {
	t.Parallel()

	ids := NewSequence(0)
	s := NewSession().UpdateField(FieldQuantity, "3")
	s, _ = s.Submit(ids)
	s, ok := s.SelectForEdit(s.LastID())
	require.True(t, ok)
	s = s.UpdateField(FieldQuantity, "4")

	s = s.CancelEdit()
	require.False(t, s.IsEditing())
	require.Equal(t, EmptyForm(), s.Form)
	require.Len(t, s.Records, 1)
	require.Equal(t, "3", s.Records[0].Quantity)
}

func TestOutcomeString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "created", Created.String())
	require.Equal(t, "updated", Updated.String())
	require.Equal(t, "stale", Stale.String())
	require.Equal(t, "unknown", Outcome(99).String())
}

func TestListQueries(t *testing.T) {
	t.Parallel()

	list := List{
		{ID: "a", FormState: FormState{TotalPrice: "94.50"}},
		{ID: "b", FormState: FormState{TotalPrice: "5.50"}},
		{ID: "c", FormState: FormState{TotalPrice: "junk"}},
	}
	require.Equal(t, 1, list.Index("b"))
	require.Equal(t, -1, list.Index(""))
	require.Equal(t, -1, list.Index("z"))
	rec, ok := list.Get("c")
	require.True(t, ok)
	require.Equal(t, "junk", rec.TotalPrice)
	require.Equal(t, "100.00", list.GrandTotal())
	require.Equal(t, "0.00", List(nil).GrandTotal())
	require.Empty(t, Session{}.LastID())
}

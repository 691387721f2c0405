package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fruitSelect() *Select {
	return NewSelect(
		Option{Value: "apple", Label: "Apple"},
		Option{Value: "banana", Label: "Banana", Disabled: true},
		Option{Value: "cherry", Label: "Cherry"},
		Option{Value: "date", Label: "Date"},
		Option{Value: "elder", Label: "Elderberry", Disabled: true},
	)
}

func highlightedValue(t *testing.T, s *Select) string {
	t.Helper()
	opt, ok := s.Highlighted()
	require.True(t, ok)
	return opt.Value
}

func TestSelectNavigationSkipsDisabledAndWraps(t *testing.T) {
	t.Parallel()

	s := fruitSelect()
	s.Open()
	assert.True(t, s.IsOpen())
	assert.Equal(t, "apple", highlightedValue(t, s))

	s.Next()
	assert.Equal(t, "cherry", highlightedValue(t, s))
	s.Next()
	assert.Equal(t, "date", highlightedValue(t, s))
	s.Next()
	assert.Equal(t, "apple", highlightedValue(t, s), "wraps past disabled tail")

	s.Prev()
	assert.Equal(t, "date", highlightedValue(t, s))
}

func TestSelectHomeEnd(t *testing.T) {
	t.Parallel()

	s := fruitSelect()
	s.End()
	assert.Equal(t, "date", highlightedValue(t, s))
	s.Home()
	assert.Equal(t, "apple", highlightedValue(t, s))
}

func TestSelectStepFromNothing(t *testing.T) {
	t.Parallel()

	next := fruitSelect()
	next.Next()
	assert.Equal(t, "apple", highlightedValue(t, next))

	prev := fruitSelect()
	prev.Prev()
	assert.Equal(t, "date", highlightedValue(t, prev))
}

func TestSelectChoose(t *testing.T) {
	t.Parallel()

	s := fruitSelect()
	_, ok := s.Choose()
	assert.False(t, ok, "nothing highlighted")

	s.Open()
	s.Next()
	chosen, ok := s.Choose()
	require.True(t, ok)
	assert.Equal(t, "cherry", chosen.Value)
	assert.False(t, s.IsOpen())

	got, ok := s.Chosen()
	require.True(t, ok)
	assert.Equal(t, "cherry", got.Value)

	s.Home()
	s.Open()
	assert.Equal(t, "apple", highlightedValue(t, s), "open keeps a valid highlight")
}

func TestSelectOpenRestoresChosen(t *testing.T) {
	t.Parallel()

	s := fruitSelect()
	require.True(t, s.Highlight("date"))
	_, ok := s.Choose()
	require.True(t, ok)

	s.highlighted = -1
	s.Open()
	assert.Equal(t, "date", highlightedValue(t, s))
}

func TestSelectHighlightRejectsDisabled(t *testing.T) {
	t.Parallel()

	s := fruitSelect()
	assert.False(t, s.Highlight("banana"))
	assert.False(t, s.Highlight("missing"))
	assert.Equal(t, -1, s.HighlightedIndex())
}

func TestSelectTypeAhead(t *testing.T) {
	t.Parallel()

	tests := []struct {
		prefix string
		want   string
		ok     bool
	}{
		{prefix: "ch", want: "cherry", ok: true},
		{prefix: "D", want: "date", ok: true},
		{prefix: "b", ok: false},
		{prefix: "elder", ok: false},
		{prefix: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.prefix, func(t *testing.T) {
			t.Parallel()
			s := fruitSelect()
			assert.Equal(t, tt.ok, s.TypeAhead(tt.prefix))
			if tt.ok {
				assert.Equal(t, tt.want, highlightedValue(t, s))
			}
		})
	}
}

func TestSelectAllDisabled(t *testing.T) {
	t.Parallel()

	s := NewSelect(Option{Value: "x", Disabled: true})
	s.Open()
	s.Next()
	s.End()
	_, ok := s.Highlighted()
	assert.False(t, ok)

	empty := NewSelect()
	empty.Next()
	empty.Prev()
	assert.Equal(t, -1, empty.HighlightedIndex())
}

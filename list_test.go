package forwardlist_test

import (
	"slices"
	"testing"

	"github.com/davidvella/forwardlist"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requireElements asserts the contents of l and its structural invariants.
func requireElements[T any](t *testing.T, l *forwardlist.List[T], want ...T) {
	t.Helper()
	require.NoError(t, forwardlist.CheckInvariants(l))
	got := slices.Collect(l.All())
	if len(want) == 0 {
		assert.Empty(t, got)
		assert.True(t, l.Empty())
		return
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("elements mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, len(want), l.Len())
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		opts    []forwardlist.Option
		limit   int
		wantErr error
	}{
		{
			name:  "defaults",
			limit: 0,
		},
		{
			name:  "with limit",
			opts:  []forwardlist.Option{forwardlist.WithLimit(3)},
			limit: 3,
		},
		{
			name:    "negative limit",
			opts:    []forwardlist.Option{forwardlist.WithLimit(-1)},
			wantErr: forwardlist.ErrNegativeSize,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := forwardlist.New[int](tt.opts...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, l)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.limit, l.Limit())
			requireElements(t, l)
		})
	}
}

func TestZeroValue(t *testing.T) {
	var l forwardlist.List[string]
	requireElements(t, &l)
	assert.True(t, l.Begin().IsEnd())
	assert.True(t, l.Last().IsBeforeBegin())

	require.NoError(t, l.PushBack("b"))
	require.NoError(t, l.PushFront("a"))
	requireElements(t, &l, "a", "b")
}

func TestPushCountsMatchTraversal(t *testing.T) {
	l := forwardlist.Of[int]()
	for i := range 50 {
		if i%3 == 0 {
			require.NoError(t, l.PushFront(i))
		} else {
			require.NoError(t, l.PushBack(i))
		}
		require.NoError(t, forwardlist.CheckInvariants(l))
		count := 0
		for range l.All() {
			count++
		}
		assert.Equal(t, l.Len(), count)
	}
}

func TestInsertAfter(t *testing.T) {
	t.Run("front, middle and back", func(t *testing.T) {
		l := forwardlist.Of(2, 4)

		_, err := l.InsertAfter(l.BeforeBegin(), 1)
		require.NoError(t, err)
		mid, err := l.InsertAfter(l.Begin().Next(), 3)
		require.NoError(t, err)
		assert.Equal(t, 3, mid.Value())
		last, err := l.InsertAfter(l.Last(), 5)
		require.NoError(t, err)
		assert.Equal(t, l.Last(), last)

		requireElements(t, l, 1, 2, 3, 4, 5)
	})

	t.Run("positions survive insertions", func(t *testing.T) {
		l := forwardlist.Of("a", "c")
		a := l.Begin()
		c := a.Next()

		_, err := l.InsertAfter(a, "b")
		require.NoError(t, err)
		_, err = l.InsertAfter(l.BeforeBegin(), "_")
		require.NoError(t, err)

		assert.Equal(t, "a", a.Value())
		assert.Equal(t, "c", c.Value())
		assert.Equal(t, "b", a.Next().Value())
		requireElements(t, l, "_", "a", "b", "c")
	})

	t.Run("empty list", func(t *testing.T) {
		l := forwardlist.Of[int]()
		pos, err := l.InsertAfter(l.BeforeBegin(), 7)
		require.NoError(t, err)
		assert.Equal(t, l.Begin(), pos)
		assert.Equal(t, l.Last(), pos)
		requireElements(t, l, 7)
	})

	t.Run("values", func(t *testing.T) {
		l := forwardlist.Of('A', 'E')
		last, err := l.InsertAfterValues(l.Begin(), 'B', 'C', 'D')
		require.NoError(t, err)
		assert.Equal(t, 'D', last.Value())
		requireElements(t, l, 'A', 'B', 'C', 'D', 'E')

		same, err := l.InsertAfterValues(l.Begin())
		require.NoError(t, err)
		assert.Equal(t, l.Begin(), same)
	})
}

func TestLimit(t *testing.T) {
	l, err := forwardlist.New[int](forwardlist.WithLimit(3))
	require.NoError(t, err)

	require.NoError(t, l.PushBack(1))
	require.NoError(t, l.PushBack(2))

	_, err = l.InsertAfterValues(l.Last(), 3, 4)
	assert.ErrorIs(t, err, forwardlist.ErrNoMemory)
	requireElements(t, l, 1, 2)

	require.NoError(t, l.PushFront(0))
	assert.ErrorIs(t, l.PushBack(3), forwardlist.ErrNoMemory)
	assert.ErrorIs(t, l.Resize(5), forwardlist.ErrNoMemory)
	assert.ErrorIs(t, l.Assign(1, 2, 3, 4), forwardlist.ErrNoMemory)
	requireElements(t, l, 0, 1, 2)

	_, err = l.PopFront()
	require.NoError(t, err)
	require.NoError(t, l.PushBack(3))
	requireElements(t, l, 1, 2, 3)
}

func TestRemoveAfter(t *testing.T) {
	tests := []struct {
		name    string
		values  []int
		advance int
		want    []int
		removed int
		ok      bool
	}{
		{
			name:    "front",
			values:  []int{1, 2, 3},
			advance: 0,
			want:    []int{2, 3},
			removed: 1,
			ok:      true,
		},
		{
			name:    "middle",
			values:  []int{1, 2, 3},
			advance: 1,
			want:    []int{1, 3},
			removed: 2,
			ok:      true,
		},
		{
			name:    "tail",
			values:  []int{1, 2, 3},
			advance: 2,
			want:    []int{1, 2},
			removed: 3,
			ok:      true,
		},
		{
			name:    "after last",
			values:  []int{1, 2, 3},
			advance: 3,
			want:    []int{1, 2, 3},
		},
		{
			name:    "only element",
			values:  []int{1},
			advance: 0,
			removed: 1,
			ok:      true,
		},
		{
			name: "empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := forwardlist.Of(tt.values...)
			v, ok := l.RemoveAfter(l.BeforeBegin().Advance(tt.advance))
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.removed, v)
			requireElements(t, l, tt.want...)
		})
	}

	t.Run("end position", func(t *testing.T) {
		l := forwardlist.Of(1)
		_, ok := l.RemoveAfter(l.End())
		assert.False(t, ok)
		requireElements(t, l, 1)
	})
}

func TestPositions(t *testing.T) {
	l := forwardlist.Of(1, 2, 3)

	assert.True(t, l.BeforeBegin().IsBeforeBegin())
	assert.Equal(t, l.Begin(), l.BeforeBegin().Next())
	assert.Equal(t, l.End(), l.Last().Next())
	assert.Equal(t, l.End(), l.End().Next())
	assert.Equal(t, l.Last(), l.Begin().Advance(2))
	assert.True(t, l.Begin().Advance(10).IsEnd())

	l.Begin().Set(10)
	*l.Last().Ref() += 20
	requireElements(t, l, 10, 2, 23)

	assert.Panics(t, func() { l.BeforeBegin().Value() })
	assert.Panics(t, func() { l.End().Value() })

	var seen []int
	for pos := range l.Positions() {
		seen = append(seen, pos.Value())
	}
	assert.Equal(t, []int{10, 2, 23}, seen)
}

func TestAllStopsEarly(t *testing.T) {
	l := forwardlist.Of(1, 2, 3, 4)
	var got []int
	for v := range l.All() {
		if v == 3 {
			break
		}
		got = append(got, v)
	}
	assert.Equal(t, []int{1, 2}, got)
}

func TestCloneAndAssign(t *testing.T) {
	l := forwardlist.Of(1, 2, 3)
	c := l.Clone()
	c.Begin().Set(9)
	requireElements(t, l, 1, 2, 3)
	requireElements(t, c, 9, 2, 3)

	tests := []struct {
		name   string
		values []int
	}{
		{name: "shorter", values: []int{4}},
		{name: "same length", values: []int{4, 5, 6}},
		{name: "longer", values: []int{4, 5, 6, 7, 8}},
		{name: "empty"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := forwardlist.Of(1, 2, 3)
			first := l.Begin()
			require.NoError(t, l.Assign(tt.values...))
			requireElements(t, l, tt.values...)
			if len(tt.values) > 0 {
				// The first node is reused in place.
				assert.Equal(t, first, l.Begin())
			}
		})
	}
}

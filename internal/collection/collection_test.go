package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	id    string
	label string
}

func (e entry) EntryID() string { return e.id }

func TestPrepend_NewestFirst(t *testing.T) {
	t.Parallel()

	var list []entry
	list = Prepend(list, entry{id: "a"})
	list = Prepend(list, entry{id: "b"})
	list = Prepend(list, entry{id: "c"})

	require.Len(t, list, 3)
	assert.Equal(t, "c", list[0].id)
	assert.Equal(t, "b", list[1].id)
	assert.Equal(t, "a", list[2].id)
}

func TestPrepend_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	original := []entry{{id: "a"}, {id: "b"}}
	out := Prepend(original, entry{id: "c"})

	assert.Len(t, original, 2)
	assert.Equal(t, "a", original[0].id)
	require.Len(t, out, 3)
	assert.Equal(t, "c", out[0].id)
}

func TestRemoveByID_PreservesOrder(t *testing.T) {
	t.Parallel()

	list := []entry{{id: "c"}, {id: "b"}, {id: "a"}}

	out, ok := RemoveByID(list, "b")
	require.True(t, ok)
	require.Len(t, out, 2)
	assert.Equal(t, "c", out[0].id)
	assert.Equal(t, "a", out[1].id)
}

func TestRemoveByID_NotFoundLeavesListUnchanged(t *testing.T) {
	t.Parallel()

	list := []entry{{id: "a"}, {id: "b"}}

	out, ok := RemoveByID(list, "zzz")
	assert.False(t, ok)
	require.Len(t, out, 2)
	assert.Equal(t, list, out)
}

func TestRemoveByID_FirstMatchOnly(t *testing.T) {
	t.Parallel()

	list := []entry{{id: "a", label: "first"}, {id: "a", label: "second"}}

	out, ok := RemoveByID(list, "a")
	require.True(t, ok)
	require.Len(t, out, 1)
	assert.Equal(t, "second", out[0].label)
}

func TestIndexByID(t *testing.T) {
	t.Parallel()

	list := []entry{{id: "x"}, {id: "y"}}

	assert.Equal(t, 0, IndexByID(list, "x"))
	assert.Equal(t, 1, IndexByID(list, "y"))
	assert.Equal(t, -1, IndexByID(list, "z"))
	assert.True(t, ContainsID(list, "y"))
	assert.False(t, ContainsID(list, "z"))
}

func TestNewID_Unique(t *testing.T) {
	t.Parallel()

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := NewID()
		require.NotEmpty(t, id)
		require.False(t, seen[id])
		seen[id] = true
	}
}

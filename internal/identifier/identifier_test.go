package identifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRoundTrip(t *testing.T) {
	for _, s := range []string{"quit", "file.quit", "basic.log_clicked", "a.b.c.d.e.f.g"} {
		assert.Equal(t, s, Parse(s).String(), "round trip for %q", s)
	}
}

func TestParseSegments(t *testing.T) {
	id := Parse("category2.item1")
	assert.Equal(t, []string{"category2", "item1"}, id.Segments())
	assert.Equal(t, 2, id.Len())
	assert.False(t, id.IsEmpty())
}

func TestParseEmptyString(t *testing.T) {
	id := Parse("")
	assert.True(t, id.IsEmpty())
	assert.Equal(t, 0, id.Len())
	assert.Nil(t, id.Segments())
}

func TestParsePanicsOnEmptySegment(t *testing.T) {
	assert.Panics(t, func() { Parse("a..b") })
	assert.Panics(t, func() { Parse(".a") })

	_, err := TryParse("a.")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptySegment)
}

func TestStructuralEquality(t *testing.T) {
	built := New("file", "quit")
	assert.Equal(t, Parse("file.quit"), built)
	assert.True(t, Parse("file.quit") == built)

	m := map[Identifier]int{Parse("file.quit"): 1}
	assert.Equal(t, 1, m[built])
	assert.NotEqual(t, Parse("file.quit"), Parse("File.quit"), "no case normalization")
}

func TestPushRejectsSeparator(t *testing.T) {
	var id Identifier
	assert.Panics(t, func() { id.Push("a.b") })
	assert.Panics(t, func() { id.Push("") })
	assert.True(t, id.IsEmpty(), "failed push must not modify the identifier")
}

func TestPushDotted(t *testing.T) {
	id := Parse("window")
	id.PushDotted("dock.buttons")
	assert.Equal(t, "window.dock.buttons", id.String())
	assert.Panics(t, func() { id.PushDotted("x..y") })
}

func TestPop(t *testing.T) {
	id := Parse("a.b")
	last, ok := id.Pop()
	require.True(t, ok)
	assert.Equal(t, "b", last)
	last, ok = id.Pop()
	require.True(t, ok)
	assert.Equal(t, "a", last)

	_, ok = id.Pop()
	assert.False(t, ok)
	assert.True(t, id.IsEmpty())

	id.Push("again")
	assert.Equal(t, "again", id.String())
}

func TestChildDoesNotAlias(t *testing.T) {
	parent := Parse("menu")
	child := parent.Child("file")
	assert.Equal(t, "menu", parent.String())
	assert.Equal(t, "menu.file", child.String())
}

func TestCompare(t *testing.T) {
	assert.Equal(t, 0, Compare(Parse("a.b"), Parse("a.b")))
	assert.Equal(t, -1, Compare(Parse("a"), Parse("a.b")))
	assert.Equal(t, 1, Compare(Parse("b"), Parse("a.z")))
	assert.Equal(t, -1, Compare(Parse("a.b"), Parse("a.c")))
}

func TestTextMarshalling(t *testing.T) {
	var id Identifier
	require.NoError(t, id.UnmarshalText([]byte("tab.default")))
	assert.Equal(t, Parse("tab.default"), id)

	out, err := id.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "tab.default", string(out))

	assert.Error(t, id.UnmarshalText([]byte("bad..id")))
}

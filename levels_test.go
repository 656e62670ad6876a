package searchtree

import (
	"cmp"
	"errors"
	"slices"
	"strings"
	"testing"

	qt "github.com/go-quicktest/qt"
	"github.com/stretchr/testify/require"
)

func collectLevels[K cmp.Ordered, V any](t *Tree[K, V]) (levels [][]Entry[K, V]) {
	for level := range t.Levels() {
		// The yielded slice is reused.
		levels = append(levels, slices.Clone(level))
	}
	return
}

func TestLevelsGrouping(t *testing.T) {
	tr := makeNumberTree()
	levels := collectLevels(tr)
	qt.Assert(t, qt.DeepEquals(levels, [][]Entry[int, string]{
		{{5, "five"}},
		{{3, "three"}, {8, "eight"}},
		{{1, "one"}, {4, "four"}, {7, "seven"}, {9, "nine"}},
	}))
}

func TestLevelsLopsided(t *testing.T) {
	tr := New[int, int]()
	// Strictly ascending insertion gives one node per level.
	for k := 1; k <= 4; k++ {
		tr.Insert(k, k)
	}
	levels := collectLevels(tr)
	qt.Assert(t, qt.HasLen(levels, 4))
	for i, level := range levels {
		qt.Assert(t, qt.DeepEquals(level, []Entry[int, int]{{i + 1, i + 1}}))
	}
}

func TestLevelsEmpty(t *testing.T) {
	tr := New[int, int]()
	for range tr.Levels() {
		t.Fatal("empty tree yielded a level")
	}
}

func TestLevelsEarlyStop(t *testing.T) {
	tr := makeNumberTree()
	for range tr.Levels() {
		break
	}
}

func TestWriteLevels(t *testing.T) {
	tr := makeNumberTree()
	var sb strings.Builder
	require.NoError(t, tr.WriteLevels(&sb))
	qt.Assert(t, qt.Equals(sb.String(), "five \nthree eight \none four seven nine \n"))
}

func TestWriteLevelsEmpty(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, New[int, int]().WriteLevels(&sb))
	qt.Assert(t, qt.Equals(sb.String(), ""))
}

type failingWriter struct {
	writesLeft int
}

func (me *failingWriter) Write(p []byte) (int, error) {
	if me.writesLeft == 0 {
		return 0, errWriterFull
	}
	me.writesLeft--
	return len(p), nil
}

var errWriterFull = errors.New("writer full")

func TestWriteLevelsError(t *testing.T) {
	tr := makeNumberTree()
	err := tr.WriteLevels(&failingWriter{writesLeft: 2})
	qt.Assert(t, qt.ErrorIs(err, errWriterFull))
}

package location

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const koala = "I am a koala\n\n  meow\n  meow\n"

func TestResolve(t *testing.T) {
	src := []rune(koala)
	tests := []struct {
		name   string
		offset int
		line   int
		column int
	}{
		{"Start", 0, 1, 1},
		{"SameLine", 2, 1, 3},
		{"NewlineItself", 12, 1, 13},
		{"AfterFirstNewline", 13, 2, 1},
		{"EmptyLine", 14, 3, 1},
		{"ThirdLineEnd", 18, 3, 5},
		{"FourthLineEnd", 25, 4, 5},
		{"EOF", len(src), 5, 1},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			pos := Resolve(src, test.offset)
			assert.Equal(t, test.line, pos.Line)
			assert.Equal(t, test.column, pos.Column)
			assert.Equal(t, test.offset, pos.Offset)
		})
	}
}

func TestResolveEmpty(t *testing.T) {
	require.Equal(t, Position{Line: 1, Column: 1}, Resolve(nil, 0))
}

func TestResolveWithoutTrailingNewline(t *testing.T) {
	src := []rune("ab\ncd")
	require.Equal(t, Position{Offset: 5, Line: 2, Column: 3}, Resolve(src, 5))
}

func TestResolveClampsOffset(t *testing.T) {
	src := []rune("ab")
	assert.Equal(t, Position{Offset: 0, Line: 1, Column: 1}, Resolve(src, -4))
	assert.Equal(t, Position{Offset: 2, Line: 1, Column: 3}, Resolve(src, 10))
}

func TestTableAgreesWithResolve(t *testing.T) {
	for _, text := range []string{"", "\n", "a", koala, "α\nβγ\n\nδ", "no newline at all"} {
		src := []rune(text)
		table := NewTable("test.txt", src)
		for offset := 0; offset <= len(src); offset++ {
			expected := Resolve(src, offset)
			expected.Filename = "test.txt"
			require.Equal(t, expected, table.Position(offset), "%q @ %d", text, offset)
		}
	}
}

func TestTableLines(t *testing.T) {
	assert.Equal(t, 1, NewTable("", nil).Lines())
	assert.Equal(t, 5, NewTable("", []rune(koala)).Lines())
}

func TestPositionString(t *testing.T) {
	assert.Equal(t, "3:4", Position{Line: 3, Column: 4}.String())
	assert.Equal(t, "grammar.txt:3:4", Position{Filename: "grammar.txt", Line: 3, Column: 4}.String())
}

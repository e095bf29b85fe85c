package machine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mask(indices ...int) Mask {
	var m Mask
	for _, i := range indices {
		m = m.With(i)
	}
	return m
}

func TestParseLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Machine
	}{
		{
			name: "full line",
			line: "[#.#] (0,1) (1,2) (0) {5,3,0}",
			want: Machine{
				Lights:  3,
				Target:  mask(0, 2),
				Buttons: []Mask{mask(0), mask(0, 1), mask(1, 2)},
				Joltage: []uint64{5, 3, 0},
			},
		},
		{
			name: "no joltage",
			line: "[##] (0) (1)",
			want: Machine{Lights: 2, Target: mask(0, 1), Buttons: []Mask{mask(0), mask(1)}},
		},
		{
			name: "no buttons",
			line: "[#] {1}",
			want: Machine{Lights: 1, Target: mask(0), Joltage: []uint64{1}},
		},
		{
			name: "identical definitions collapse",
			line: "[##] (0) (0) (1)",
			want: Machine{Lights: 2, Target: mask(0, 1), Buttons: []Mask{mask(0), mask(1)}},
		},
		{
			name: "duplicate index within a button is idempotent",
			line: "[..] (0,0,1)",
			want: Machine{Lights: 2, Buttons: []Mask{mask(0, 1)}},
		},
		{
			name: "empty button dropped",
			line: "[.#] () (1)",
			want: Machine{Lights: 2, Target: mask(1), Buttons: []Mask{mask(1)}},
		},
		{
			name: "surrounding whitespace",
			line: "   [#.]  (0)   {2,0}  ",
			want: Machine{Lights: 2, Target: mask(0), Buttons: []Mask{mask(0)}, Joltage: []uint64{2, 0}},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			m, ok, err := ParseLine(test.line)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, test.want, *m)
		})
	}
}

func TestParseLineSkipped(t *testing.T) {
	for _, line := range []string{"", "   ", "# a comment", "  # indented comment"} {
		m, ok, err := ParseLine(line)
		assert.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, m)
	}
}

func TestParseLineErrors(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"missing opening bracket", ".##] (0)"},
		{"missing closing bracket", "[#.# (0)"},
		{"empty diagram", "[] (0)"},
		{"invalid diagram character", "[#x#] (0)"},
		{"diagram too large", "[" + strings.Repeat("#", MaxCounters+1) + "]"},
		{"missing closing paren", "[##] (0,1"},
		{"garbage between buttons", "[##] (0) x (1)"},
		{"invalid counter index", "[##] (a)"},
		{"index out of range", "[##] (2)"},
		{"negative index", "[##] (-1)"},
		{"missing closing brace", "[##] (0) {1,2"},
		{"invalid joltage value", "[##] (0) {1,x}"},
		{"negative joltage value", "[##] (0) {1,-2}"},
		{"joltage count mismatch", "[##] (0) {1}"},
		{"trailing garbage", "[##] (0) {1,2} x"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, _, err := ParseLine(test.line)
			require.Error(t, err)
			var pe *ParseError
			require.ErrorAs(t, err, &pe)
		})
	}
}

func TestParse(t *testing.T) {
	input := `
# two machines and a comment
[#.#] (0,1) (1,2) (0) {5,3,0}

[##] (0) (1) {2,2}
`
	machines, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, machines, 2)
	assert.Equal(t, []uint64{5, 3, 0}, machines[0].Joltage)
	assert.Equal(t, 2, machines[1].NbButtons())
}

func TestParseReportsLineNumber(t *testing.T) {
	input := "[#] (0)\n[#] (0)\n[#] (7)\n"
	_, err := Parse(strings.NewReader(input))
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 3, pe.Line)
	assert.Contains(t, err.Error(), "line 3")
}

package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisualLen(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"plain", "hello", 5},
		{"empty", "", 0},
		{"bold", "\x1b[1mhello\x1b[0m", 5},
		{"color", "\x1b[31mred\x1b[0m", 3},
		{"multiple sequences", "\x1b[1m\x1b[34mblue bold\x1b[0m", 9},
		{"box drawing", "███░░", 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, visualLen(tc.input))
		})
	}
}

func TestPad(t *testing.T) {
	assert.Equal(t, "hi        ", pad("hi", 10))
	assert.Equal(t, "hello", pad("hello", 5))
	// No truncation.
	assert.Equal(t, "toolong", pad("toolong", 3))
	assert.Equal(t, 6, visualLen(pad("\x1b[31mred\x1b[0m", 6)))
}

func TestTable_Render(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	tbl := NewTable("Name", "Periodicity", "Current Streak")
	tbl.AddRow("Skin Rutin", "daily", "28")
	tbl.AddRow("Work Out", "weekly", "4")

	out := tbl.Render()
	for _, want := range []string{"Name", "Periodicity", "Skin Rutin", "Work Out", "─"} {
		assert.Contains(t, out, want)
	}

	// Header + separator + 2 data rows.
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, 2, tbl.Len())

	// Columns line up: "daily" and "weekly" start at the same offset.
	assert.Equal(t, strings.Index(lines[2], "daily"), strings.Index(lines[3], "weekly"))
}

func TestTable_EmptyHeaders(t *testing.T) {
	assert.Empty(t, NewTable().Render())
}

func TestTable_ShortAndLongRows(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	tbl := NewTable("A", "B")
	tbl.AddRow("only-a")
	tbl.AddRow("x", "y", "dropped")

	out := tbl.String()
	assert.Contains(t, out, "only-a")
	assert.NotContains(t, out, "dropped")
}

func TestSetNoColor(t *testing.T) {
	SetNoColor(true)
	assert.True(t, IsNoColor())
	assert.NotContains(t, StyleHeader.Render("test"), "\x1b[")

	SetNoColor(false)
	assert.False(t, IsNoColor())
}

func TestStreakBar(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	assert.Equal(t, "█████░░░░░ 14/28", StreakBar(14, 28, 10))
	assert.Equal(t, "░░░░░░░░░░ 0/0", StreakBar(0, 0, 10))
	assert.Equal(t, "██████████ 30/28", StreakBar(30, 28, 10))
	assert.Equal(t, 20, visualLen(strings.Fields(StreakBar(1, 2, 0))[0]))
}

func TestTrendArrow(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	assert.Equal(t, "▲ +3", TrendArrow(3))
	assert.Equal(t, "▼ -2", TrendArrow(-2))
	assert.Equal(t, "─", TrendArrow(0))
}

func TestStreakValue(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	assert.Equal(t, "0 (lapsed)", StreakValue(0))
	assert.Equal(t, "7", StreakValue(7))
}

package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_AlignsColumns(t *testing.T) {
	out := NewTable("NAME", "AMOUNT").
		AlignRight(1).
		Row("Rent", "$1500.00").
		Row("Internet", "$60.00").
		Render()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "NAME")
	assert.Contains(t, lines[1], "─")

	// Right-aligned amounts end in the same column.
	assert.Equal(t, len(lines[2]), len(lines[3]))
	assert.True(t, strings.HasSuffix(lines[3], " $60.00"))
	assert.True(t, strings.HasPrefix(lines[3], "Internet"))
}

func TestTable_ShortRowsPad(t *testing.T) {
	out := NewTable("A", "B", "C").Row("x").Render()
	assert.Contains(t, out, "x")
}

func TestRenderTable_Empty(t *testing.T) {
	assert.Empty(t, RenderTable(nil, nil))
	tbl := NewTable("A")
	assert.Equal(t, 0, tbl.Len())
}

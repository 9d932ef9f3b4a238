package label_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/lp-label-api/internal/domain/label"
)

// TestSupportedSizes_Monotonia el tamaño nominal menor produce las dimensiones menores.
func TestSupportedSizes_Monotonia(t *testing.T) {
	sizes := label.SupportedSizes()
	require.Len(t, sizes, 3)

	// de mayor a menor: 4x6, 4x3, 3x2
	for i := 1; i < len(sizes); i++ {
		prev, cur := sizes[i-1], sizes[i]
		assert.GreaterOrEqual(t, prev.Dots.Width, cur.Dots.Width)
		assert.Greater(t, prev.Dots.Height, cur.Dots.Height)
		assert.Greater(t, prev.Dots.Width*prev.Dots.Height, cur.Dots.Width*cur.Dots.Height,
			"%s debe ser mayor que %s", prev.Size, cur.Size)
		assert.Greater(t, prev.WidthInch*prev.HeightInch, cur.WidthInch*cur.HeightInch)
	}
}

func TestLabelSize_Dimensions(t *testing.T) {
	d, ok := label.Size4x6.Dimensions()
	require.True(t, ok)
	assert.Equal(t, label.Dimensions{Width: 812, Height: 1218}, d)
	assert.InDelta(t, 4.0, float64(d.Width)/label.DPI, 0.01)

	_, ok = label.LabelSize("8x10").Dimensions()
	assert.False(t, ok)
	assert.False(t, label.LabelSize("4X6").Valid(), "el tamaño distingue mayúsculas")
}

func TestSplitDocument(t *testing.T) {
	blocks, err := label.SplitDocument("^XA\n^FDa^FS\n^XZ\n\n^XA^FDb^FS^XZ")
	require.NoError(t, err)
	assert.Equal(t, []string{"^XA\n^FDa^FS\n^XZ\n", "^XA^FDb^FS^XZ"}, blocks)
}

func TestSplitDocument_MalFormado(t *testing.T) {
	cases := map[string]string{
		"vacío":        "  \n",
		"sin inicio":   "^FDa^FS^XZ",
		"sin fin":      "^XA^FDa^FS",
		"anidado":      "^XA^XA^FDa^FS^XZ^XZ",
		"basura final": "^XA^XZ\nhola",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := label.SplitDocument(doc)
			assert.ErrorIs(t, err, label.ErrMalformedDocument)
		})
	}
}

func TestLines(t *testing.T) {
	lines := label.Lines(flourLP())
	assert.Equal(t, []string{
		"Flour Type 00 Premium Grade Italian Impo",
		"Batch: BCH-456-2024",
		"Exp: 2025-06-15",
		"500.0 kg",
		"WH-001 / ZONE-A-01",
	}, lines)
}

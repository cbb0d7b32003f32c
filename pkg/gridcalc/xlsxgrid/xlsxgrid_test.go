package xlsxgrid

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/gridcalc-go/pkg/gridcalc/formula"
)

// writeTestWorkbook builds a small workbook with values and a formula cell.
func writeTestWorkbook(t *testing.T) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sheet1"
	require.NoError(t, f.SetCellValue(sheet, "A1", 5))
	require.NoError(t, f.SetCellValue(sheet, "A2", 2.5))
	require.NoError(t, f.SetCellFormula(sheet, "B1", "A1+3"))

	path := filepath.Join(t.TempDir(), "grid.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestLoad(t *testing.T) {
	path := writeTestWorkbook(t)

	g, err := Load(path, "Sheet1")
	require.NoError(t, err)

	assert.Equal(t, "Sheet1", g.Sheet())
	assert.Equal(t, "5", g.RawValue(0, 0))
	assert.Equal(t, "2.5", g.RawValue(1, 0))
	assert.Equal(t, "=A1+3", g.RawValue(0, 1))
	assert.Equal(t, "", g.RawValue(9, 9))
	assert.Equal(t, 3, g.CellCount())
}

func TestLoadActiveSheetDefault(t *testing.T) {
	path := writeTestWorkbook(t)

	g, err := Load(path, "")
	require.NoError(t, err)
	assert.Equal(t, "Sheet1", g.Sheet())
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.xlsx"), "")
		assert.ErrorIs(t, err, ErrFileNotFound)
	})

	t.Run("missing sheet", func(t *testing.T) {
		path := writeTestWorkbook(t)
		_, err := Load(path, "NoSuchSheet")
		assert.ErrorIs(t, err, ErrSheetNotFound)
	})
}

func TestGridFeedsEvaluator(t *testing.T) {
	path := writeTestWorkbook(t)

	g, err := Load(path, "Sheet1")
	require.NoError(t, err)

	v, err := formula.Evaluate(g, "=B1*2")
	require.NoError(t, err)
	assert.Equal(t, 16.0, v)
}

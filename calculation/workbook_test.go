package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func restoreTables(t *testing.T) {
	t.Helper()
	std, stsl, hem := standardTaxTable, stslTaxTable, hemTable
	t.Cleanup(func() {
		standardTaxTable = std
		stslTaxTable = stsl
		hemTable = hem
	})
}

func testWorkbook(t *testing.T) *excelize.File {
	t.Helper()
	f := excelize.NewFile()
	for _, sheet := range []string{sheetStandardTax, sheetSTSLTax} {
		_, err := f.NewSheet(sheet)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"ceiling", "aCoef", "bCoef"}))
		require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{"1,000", 0.2, 50}))
		require.NoError(t, f.SetSheetRow(sheet, "A3", &[]any{"5,000", 0.4, 100}))
	}
	_, err := f.NewSheet(sheetHEM)
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow(sheetHEM, "A1", &[]any{"key", "0-26000", "26000-39000", "39000-52000", "52000+"}))
	require.NoError(t, f.SetSheetRow(sheetHEM, "A2", &[]any{"S0", 1000, 1100, 1200, 1300}))
	require.NoError(t, f.SetSheetRow(sheetHEM, "A3", &[]any{"C0", 2000, 2100, 2200, 2300}))
	return f
}

func TestLoadWorkbookReplacesTables(t *testing.T) {
	restoreTables(t)

	require.NoError(t, loadWorkbookFrom(testWorkbook(t)))

	require.Len(t, standardTaxTable, 2)
	assert.Equal(t, TaxBracket{GrossWeeklyIncome: 1000, ACoef: 0.2, BCoef: 50}, standardTaxTable[0])
	require.Len(t, stslTaxTable, 2)
	assert.Equal(t, float64(5000), stslTaxTable[1].GrossWeeklyIncome)

	assert.Equal(t, float64(1300), hemTable["S0"][bandTop])
	assert.Equal(t, float64(2000), hemTable["C0"][bandLow])

	// loaded tables feed the public lookups immediately
	hem, err := HEMMonthly("Single", 0, 60000)
	require.NoError(t, err)
	assert.Equal(t, float64(1300), hem)
}

func TestLoadWorkbookMissingSheet(t *testing.T) {
	restoreTables(t)

	f := excelize.NewFile()
	_, err := f.NewSheet(sheetStandardTax)
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow(sheetStandardTax, "A2", &[]any{"1000", 0.2, 50}))

	assert.Error(t, loadWorkbookFrom(f))
}

func TestLoadWorkbookBadCell(t *testing.T) {
	restoreTables(t)

	f := testWorkbook(t)
	require.NoError(t, f.SetCellValue(sheetStandardTax, "B2", "not a number"))

	err := loadWorkbookFrom(f)
	require.Error(t, err)
	assert.Contains(t, err.Error(), sheetStandardTax)
}

package calculation

import (
    "fmt"
    "strconv"
    "strings"

    "github.com/xuri/excelize/v2"
)

// Sheet names expected in the reference workbook.
const (
    sheetStandardTax = "StandardTax"
    sheetSTSLTax     = "STSLTax"
    sheetHEM         = "HEM"
)

// LoadWorkbook replaces the built-in tax and HEM constants with the contents
// of the reference spreadsheet. Called once at startup, before any request is
// served; the tables are read-only afterwards.
func LoadWorkbook(path string) error {
    f, err := excelize.OpenFile(path)
    if err != nil {
        return fmt.Errorf("open tables workbook: %w", err)
    }
    defer f.Close()
    return loadWorkbookFrom(f)
}

func loadWorkbookFrom(f *excelize.File) error {
    std, err := readTaxSheet(f, sheetStandardTax)
    if err != nil {
        return err
    }
    stsl, err := readTaxSheet(f, sheetSTSLTax)
    if err != nil {
        return err
    }
    hem, err := readHEMSheet(f)
    if err != nil {
        return err
    }
    standardTaxTable = std
    stslTaxTable = stsl
    hemTable = hem
    return nil
}

// readTaxSheet parses rows of ceiling, aCoef, bCoef below a header row.
func readTaxSheet(f *excelize.File, sheet string) ([]TaxBracket, error) {
    rows, err := f.GetRows(sheet)
    if err != nil {
        return nil, fmt.Errorf("sheet %s: %w", sheet, err)
    }
    var out []TaxBracket
    for i, row := range rows {
        if i == 0 || len(row) < 3 {
            continue
        }
        ceiling, err := cellFloat(row[0])
        if err != nil {
            return nil, fmt.Errorf("sheet %s row %d: %w", sheet, i+1, err)
        }
        a, err := cellFloat(row[1])
        if err != nil {
            return nil, fmt.Errorf("sheet %s row %d: %w", sheet, i+1, err)
        }
        b, err := cellFloat(row[2])
        if err != nil {
            return nil, fmt.Errorf("sheet %s row %d: %w", sheet, i+1, err)
        }
        out = append(out, TaxBracket{GrossWeeklyIncome: ceiling, ACoef: a, BCoef: b})
    }
    if len(out) == 0 {
        return nil, fmt.Errorf("sheet %s: no bracket rows", sheet)
    }
    return out, nil
}

// readHEMSheet parses rows of household key plus one column per income band.
var hemBandOrder = []string{bandLow, bandMid1, bandMid2, bandTop}

func readHEMSheet(f *excelize.File) (map[string]map[string]float64, error) {
    rows, err := f.GetRows(sheetHEM)
    if err != nil {
        return nil, fmt.Errorf("sheet %s: %w", sheetHEM, err)
    }
    out := map[string]map[string]float64{}
    for i, row := range rows {
        if i == 0 || len(row) < 5 {
            continue
        }
        key := strings.TrimSpace(row[0])
        if key == "" {
            continue
        }
        bands := map[string]float64{}
        for j, band := range hemBandOrder {
            v, err := cellFloat(row[j+1])
            if err != nil {
                return nil, fmt.Errorf("sheet %s row %d: %w", sheetHEM, i+1, err)
            }
            bands[band] = v
        }
        out[key] = bands
    }
    if len(out) == 0 {
        return nil, fmt.Errorf("sheet %s: no household rows", sheetHEM)
    }
    return out, nil
}

func cellFloat(s string) (float64, error) {
    return strconv.ParseFloat(strings.TrimSpace(strings.ReplaceAll(s, ",", "")), 64)
}
